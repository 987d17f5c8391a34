package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// envPrefix is prepended to every flag-derived environment variable.
const envPrefix = "STARSHIP_PROFILES"

// ErrInvalidEnvValue is returned for an environment variable that cannot be
// assigned to its flag.
var ErrInvalidEnvValue = errors.New("invalid environment variable value")

// bindEnvVars sets every flag of cmd that was not given on the command line
// from its STARSHIP_PROFILES_<FLAG> environment variable, e.g. --profile from
// $STARSHIP_PROFILES_PROFILE and --log-format from
// $STARSHIP_PROFILES_LOG_FORMAT.
//
// A value that does not parse leaves the flag at its default. Such values are
// returned, joined, so they can be logged once logging is configured; this
// runs on every prompt render and must not fail or write output.
//
// The variable name is appended to each flag's usage, and an environment
// section is added to the long help.
func bindEnvVars(cmd *cobra.Command) error {
	var (
		errs  []error
		names []string
	)

	visit := func(flag *pflag.Flag) {
		envName := flagToEnvName(flag.Name)
		names = append(names, envName)

		if !strings.Contains(flag.Usage, envName) {
			flag.Usage = fmt.Sprintf("%s ($%s)", flag.Usage, envName)
		}

		err := setFlagFromEnv(flag, envName)
		if err != nil {
			errs = append(errs, err)
		}
	}

	cmd.Flags().VisitAll(visit)
	cmd.PersistentFlags().VisitAll(visit)

	cmd.Long = envHelp(cmd.Short, names)

	return errors.Join(errs...)
}

func setFlagFromEnv(flag *pflag.Flag, envName string) error {
	if flag.Changed {
		return nil
	}

	v, ok := os.LookupEnv(envName)
	if !ok {
		return nil
	}

	err := flag.Value.Set(v)
	if err != nil {
		return fmt.Errorf("%w: $%s=%q: %w", ErrInvalidEnvValue, envName, v, err)
	}

	return nil
}

func envHelp(short string, names []string) string {
	var sb strings.Builder

	sb.WriteString(short)
	sb.WriteString("\n\nEnvironment:\n")

	for _, name := range names {
		fmt.Fprintf(&sb, "  %s\n", name)
	}

	fmt.Fprintf(&sb, "  %s is set for starship when a profile is selected.", ConfigEnvVar)

	return sb.String()
}

// flagToEnvName converts a flag name to its environment variable name.
// Example: "starship-help" -> "STARSHIP_PROFILES_STARSHIP_HELP".
func flagToEnvName(flagName string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}
