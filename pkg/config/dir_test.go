package config_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/starship-profiles/pkg/config"
)

func TestDir(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir, err := config.Dir()
	require.NoError(t, err)

	// On Linux os.UserConfigDir honours XDG_CONFIG_HOME.
	if filepath.Dir(dir) == xdg {
		assert.Equal(t, filepath.Join(xdg, config.AppName), dir)
	}

	path, err := config.DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, config.FileName), path)
}

func TestProfilesDir(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		filepath.Join("/cfg", "starship", "profiles"),
		config.ProfilesDir(filepath.Join("/cfg", "starship")),
	)
}

func TestExpandPath(t *testing.T) {
	t.Parallel()

	got, err := config.ExpandPath("/abs/profiles.toml")
	require.NoError(t, err)
	assert.Equal(t, "/abs/profiles.toml", got)

	home, err := config.HomeDir()
	require.NoError(t, err)

	got, err = config.ExpandPath("~/profiles.toml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "profiles.toml"), got)
}
