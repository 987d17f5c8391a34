package main

import (
	"flag"
	"log"
	"os"

	"github.com/macropower/starship-profiles/pkg/config"
	"github.com/macropower/starship-profiles/pkg/schema"
)

var outFile = flag.String("o", "profiles.schema.json", "Output file for the generated schema")

func main() {
	flag.Parse()

	jsData, err := schema.Generate(config.New())
	if err != nil {
		log.Fatalf("generate JSON schema: %v", err)
	}

	// Write schema file.
	err = os.WriteFile(*outFile, jsData, 0o600)
	if err != nil {
		log.Fatalf("write schema file: %v", err)
	}
}
