package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/macropower/starship-profiles/pkg/config"
	"github.com/macropower/starship-profiles/pkg/resolve"
)

const highlightStyle = "monokai"

// showConfig prints the active profiles configuration followed by the profile
// selected for the current directory.
func showConfig(cmd *cobra.Command, cfg *config.Config, configPath, configDir string, rc resolve.Context) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n", configPath)

	if cfg == nil {
		sb.WriteString("# no profiles config found\n")
	} else {
		b, err := cfg.MarshalTOML()
		if err != nil {
			return err //nolint:wrapcheck // Already wrapped.
		}

		sb.Write(b)
	}

	name, ok, err := resolve.Resolve(cmd.Context(), rc, cfg)
	if err != nil {
		return fmt.Errorf("resolve profile: %w", err)
	}

	sb.WriteString("\n")

	if !ok {
		fmt.Fprintf(&sb, "# no profile selected for %s\n", rc.Cwd)

		return render(cmd.OutOrStdout(), sb.String())
	}

	path, err := resolve.ProfilePath(configDir, name)
	if err != nil {
		fmt.Fprintf(&sb, "# selected profile: %s (%v)\n", name, err)
	} else {
		fmt.Fprintf(&sb, "# selected profile: %s (%s=%s)\n", name, ConfigEnvVar, path)
	}

	return render(cmd.OutOrStdout(), sb.String())
}

// render writes TOML source to w, highlighted when w is a terminal.
func render(w io.Writer, src string) error {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		_, err := io.WriteString(w, src)
		if err != nil {
			return fmt.Errorf("write output: %w", err)
		}

		return nil
	}

	err := quick.Highlight(w, src, "toml", formatterName(), highlightStyle)
	if err != nil {
		return fmt.Errorf("highlight output: %w", err)
	}

	return nil
}

func formatterName() string {
	switch termenv.ColorProfile() {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	case termenv.ANSI:
		return "terminal8"
	}

	return "noop"
}
