package cli_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/starship-profiles/internal/cli"
)

func TestBindEnvVars(t *testing.T) {
	tcs := map[string]struct {
		env  map[string]string
		want map[string]string
		args []string
	}{
		"profile override from environment": {
			env:  map[string]string{"STARSHIP_PROFILES_PROFILE": "work"},
			want: map[string]string{"profile": "work", "target": "starship"},
		},
		"flag beats environment": {
			env:  map[string]string{"STARSHIP_PROFILES_PROFILE": "work"},
			args: []string{"--profile", "home"},
			want: map[string]string{"profile": "home"},
		},
		"dashed flag names": {
			env: map[string]string{
				"STARSHIP_PROFILES_LOG_FORMAT":    "json",
				"STARSHIP_PROFILES_STARSHIP_HELP": "true",
				"STARSHIP_PROFILES_DRY_RUN":       "1",
			},
			want: map[string]string{"log-format": "json", "starship-help": "true", "dry-run": "true"},
		},
		"target and config": {
			env: map[string]string{
				"STARSHIP_PROFILES_TARGET": "starship-nightly",
				"STARSHIP_PROFILES_CONFIG": "/etc/starship/profiles.toml",
			},
			want: map[string]string{"target": "starship-nightly", "config": "/etc/starship/profiles.toml"},
		},
		"invalid boolean keeps the default": {
			env:  map[string]string{"STARSHIP_PROFILES_DRY_RUN": "maybe"},
			want: map[string]string{"dry-run": "false"},
		},
		"defaults": {
			want: map[string]string{"profile": "", "log": "off", "log-format": "text", "show-config": "false"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			cmd := cli.NewRootCmd()
			require.NoError(t, cmd.ParseFlags(tc.args))

			for flag, want := range tc.want {
				f := cmd.Flags().Lookup(flag)
				require.NotNil(t, f, flag)
				assert.Equal(t, want, f.Value.String(), flag)
			}
		})
	}
}

func TestBindEnvVars_Usage(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCmd()

	for flag, env := range map[string]string{
		"profile":       "$STARSHIP_PROFILES_PROFILE",
		"config":        "$STARSHIP_PROFILES_CONFIG",
		"starship-help": "$STARSHIP_PROFILES_STARSHIP_HELP",
		"log":           "$STARSHIP_PROFILES_LOG",
	} {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			f = cmd.PersistentFlags().Lookup(flag)
		}

		require.NotNil(t, f, flag)
		assert.Contains(t, f.Usage, env)
	}

	assert.Contains(t, cmd.Long, "Environment:")
	assert.Contains(t, cmd.Long, "STARSHIP_PROFILES_DRY_RUN")
	assert.Contains(t, cmd.Long, cli.ConfigEnvVar)
}

func TestBindEnvVars_InvalidValueIsLogged(t *testing.T) {
	f := newFixture(t, testProfiles, true)
	t.Setenv("STARSHIP_PROFILES_DRY_RUN", "maybe")
	t.Setenv("STARSHIP_PROFILES_LOG", "warn")

	out, err := f.run(t, "prompt")
	require.NoError(t, err)

	require.NotNil(t, f.executed)
	assert.Contains(t, out, "STARSHIP_PROFILES_DRY_RUN")
	assert.Contains(t, out, "maybe")
}
