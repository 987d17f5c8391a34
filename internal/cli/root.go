package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/macropower/starship-profiles/pkg/config"
	"github.com/macropower/starship-profiles/pkg/launch"
	"github.com/macropower/starship-profiles/pkg/log"
	"github.com/macropower/starship-profiles/pkg/resolve"
	"github.com/macropower/starship-profiles/pkg/version"
)

const (
	cmdName = "starship-profiles"
	cmdDesc = `Run starship with a configuration profile chosen by the current directory.`

	cmdExamples = `  # Use in place of starship, e.g. in the output of "starship init":
  starship-profiles prompt --status=0

  # Force the "work" profile:
  starship-profiles --profile work prompt

  # Show starship's own help:
  starship-profiles --starship-help

  # Show the loaded profiles and the profile selected for $PWD:
  starship-profiles --show-config

  # Print what would be run, with debug logs:
  STARSHIP_PROFILES_LOG=debug starship-profiles --dry-run -- prompt`

	// ConfigEnvVar tells the wrapped program which config file to use.
	ConfigEnvVar = "STARSHIP_CONFIG"

	defaultTarget = "starship"
)

type RootArgs struct {
	exec   func(*launch.Command) error
	find   func(name string) (string, error)
	getwd  func() (string, error)
	home   func() (string, error)
	cfgDir func() (string, error)

	// envErr holds environment values that could not be applied to flags.
	envErr error

	Profile      string
	ConfigPath   string
	Target       string
	LogLevel     string
	LogFormat    string
	StarshipHelp bool
	ShowConfig   bool
	DryRun       bool
}

// RootOpt configures [RootArgs].
type RootOpt func(*RootArgs)

// WithExec replaces the function that hands control to the wrapped program.
func WithExec(f func(*launch.Command) error) RootOpt {
	return func(ra *RootArgs) {
		ra.exec = f
	}
}

// WithFinder replaces the executable lookup.
func WithFinder(f func(name string) (string, error)) RootOpt {
	return func(ra *RootArgs) {
		ra.find = f
	}
}

// WithWorkingDir replaces the working directory lookup.
func WithWorkingDir(f func() (string, error)) RootOpt {
	return func(ra *RootArgs) {
		ra.getwd = f
	}
}

// WithHomeDir replaces the home directory lookup.
func WithHomeDir(f func() (string, error)) RootOpt {
	return func(ra *RootArgs) {
		ra.home = f
	}
}

// WithConfigDir replaces the platform config directory lookup.
func WithConfigDir(f func() (string, error)) RootOpt {
	return func(ra *RootArgs) {
		ra.cfgDir = f
	}
}

func NewRootArgs(opts ...RootOpt) *RootArgs {
	ra := &RootArgs{
		exec:   (*launch.Command).Exec,
		find:   launch.FindFromEnv,
		getwd:  os.Getwd,
		home:   config.HomeDir,
		cfgDir: config.Dir,
	}
	for _, opt := range opts {
		opt(ra)
	}

	return ra
}

func (ra *RootArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&ra.Profile, "profile", "p", "", "Force the use of a specific profile (regardless of CWD)")
	cmd.Flags().BoolVar(&ra.StarshipHelp, "starship-help", false,
		"Print starship's help message (instead of this program's help message)")
	cmd.Flags().StringVar(&ra.ConfigPath, "config", "", "Path to the profiles file, default is <config dir>/starship/profiles.toml")
	cmd.Flags().StringVar(&ra.Target, "target", defaultTarget, "Name of the program to run")
	cmd.Flags().BoolVar(&ra.ShowConfig, "show-config", false, "Print the loaded profiles and the selected profile, then exit")
	cmd.Flags().BoolVar(&ra.DryRun, "dry-run", false, "Print the command instead of running it")

	cmd.PersistentFlags().
		StringVar(&ra.LogLevel, "log", string(log.LevelOff), fmt.Sprintf("Log level, one of: %s", log.AllLevels))
	cmd.PersistentFlags().
		StringVar(&ra.LogFormat, "log-format", "text", fmt.Sprintf("Log format, one of: %s", log.AllFormats))

	var err error

	err = cmd.MarkFlagFilename("config", "toml")
	if err != nil {
		panic(fmt.Errorf("mark config flag: %w", err))
	}

	err = cmd.RegisterFlagCompletionFunc("profile", profileCompletion(ra))
	if err != nil {
		panic(err)
	}

	err = cmd.RegisterFlagCompletionFunc("log-format",
		cobra.FixedCompletions(log.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}

	err = cmd.RegisterFlagCompletionFunc("log",
		cobra.FixedCompletions(log.AllLevels, cobra.ShellCompDirectiveNoFileComp),
	)
	if err != nil {
		panic(err)
	}
}

func NewRootCmd(opts ...RootOpt) *cobra.Command {
	args := NewRootArgs(opts...)

	cmd := &cobra.Command{
		Use:               cmdName + " [flags] [--] [starship args...]",
		Short:             cmdDesc,
		Example:           cmdExamples,
		Args:              cobra.ArbitraryArgs,
		PersistentPreRunE: setupLogging(args),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]cobra.Completion, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveDefault
		},
		RunE: func(cmd *cobra.Command, posArgs []string) error {
			return run(cmd, args, posArgs)
		},
	}

	// Everything after the first positional argument belongs to the target.
	cmd.Flags().SetInterspersed(false)

	args.AddFlags(cmd)

	args.envErr = bindEnvVars(cmd)

	return cmd
}

// setupLogging installs the log handler. Logging never stops the launch: an
// invalid level or format is reported on stderr and logging is turned off.
func setupLogging(ra *RootArgs) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		logHandler, err := log.CreateHandlerWithStrings(cmd.ErrOrStderr(), ra.LogLevel, ra.LogFormat)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%s: warning: logging disabled: %v\n", cmdName, err)

			logHandler = slog.DiscardHandler
		}

		logger := slog.New(logHandler)
		slog.SetDefault(logger)

		cmd.SetContext(log.NewContext(cmd.Context(), logger))

		logger.Debug("starting", slog.Any("build", version.LogValue()))

		if ra.envErr != nil {
			logger.Warn("ignoring environment", slog.Any("err", ra.envErr))
		}

		return nil
	}
}

// configPaths returns the profiles file and the directory holding it.
func (ra *RootArgs) configPaths() (string, string, error) {
	if ra.ConfigPath != "" {
		path, err := config.ExpandPath(ra.ConfigPath)
		if err != nil {
			return "", "", err //nolint:wrapcheck // Already wrapped.
		}

		path, err = filepath.Abs(path)
		if err != nil {
			return "", "", fmt.Errorf("resolve config path: %w", err)
		}

		return path, filepath.Dir(path), nil
	}

	dir, err := ra.cfgDir()
	if err != nil {
		return "", "", err
	}

	return filepath.Join(dir, config.FileName), dir, nil
}

func profileCompletion(ra *RootArgs) cobra.CompletionFunc {
	return func(*cobra.Command, []string, string) ([]cobra.Completion, cobra.ShellCompDirective) {
		path, _, err := ra.configPaths()
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		cfg, err := config.Load(path)
		if err != nil || cfg == nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		completions := make([]cobra.Completion, 0, len(cfg.Profiles))
		for _, p := range cfg.Profiles {
			completions = append(completions, cobra.CompletionWithDesc(p.Name, p.String()))
		}

		return completions, cobra.ShellCompDirectiveNoFileComp
	}
}

func run(cmd *cobra.Command, ra *RootArgs, args []string) error {
	ctx := cmd.Context()
	logger := log.WithContext(ctx)

	if ra.StarshipHelp {
		args = append([]string{"--help"}, args...)
	}

	home, err := ra.home()
	if err != nil {
		return err
	}

	configPath, configDir, err := ra.configPaths()
	if err != nil {
		return err
	}

	cwd, err := ra.getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load profiles config: %w", err)
	}

	if cfg == nil {
		logger.Warn("no profiles config found", slog.String("path", configPath))
	} else {
		logger.Debug("loaded profiles config",
			slog.String("path", configPath),
			slog.Any("profiles", cfg),
		)
	}

	rc := resolve.Context{
		Override: ra.Profile,
		Cwd:      cwd,
		Home:     home,
	}

	if ra.ShowConfig {
		return showConfig(cmd, cfg, configPath, configDir, rc)
	}

	target, err := ra.find(ra.Target)
	if err != nil {
		return fmt.Errorf("unable to find %s exec: %w", ra.Target, err)
	}

	c := launch.NewCommand(target, args...)

	profilePath, ok, err := resolve.ProfileConfig(ctx, rc, cfg, configDir)
	if err != nil {
		return fmt.Errorf("resolve profile: %w", err)
	}
	if ok {
		c.SetEnv(ConfigEnvVar, profilePath)
	}

	logger.Debug("running command", slog.Any("command", c))

	if ra.DryRun {
		return printCommand(cmd, c, ok)
	}

	return ra.exec(c)
}

func printCommand(cmd *cobra.Command, c *launch.Command, withConfig bool) error {
	line := c.String()
	if withConfig {
		v, _ := c.LookupEnv(ConfigEnvVar)
		line = fmt.Sprintf("%s=%s %s", ConfigEnvVar, v, line)
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), line)
	if err != nil {
		return fmt.Errorf("write to stdout: %w", err)
	}

	return nil
}
