package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
)

const (
	// AppName is the config subdirectory shared with the wrapped program.
	AppName = "starship"
	// FileName is the name of the profiles file in the config directory.
	FileName = "profiles.toml"
	// ProfilesDirName is the directory holding one config file per profile.
	ProfilesDirName = "profiles"
	// ProfileExt is the extension of per-profile config files.
	ProfileExt = ".toml"
)

// ErrPlatformDirectory is returned when the host cannot supply a home or
// config directory.
var ErrPlatformDirectory = errors.New("platform directory unavailable")

// Dir returns the platform config directory for [AppName], e.g.
// "$XDG_CONFIG_HOME/starship" or "~/Library/Application Support/starship".
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: config directory: %w", ErrPlatformDirectory, err)
	}

	return filepath.Join(dir, AppName), nil
}

// DefaultPath returns the path to the profiles file in [Dir].
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, FileName), nil
}

// HomeDir returns the current user's home directory.
func HomeDir() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("%w: home directory: %w", ErrPlatformDirectory, err)
	}

	return home, nil
}

// ExpandPath expands a leading "~" in a user-supplied path.
func ExpandPath(path string) (string, error) {
	p, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", path, err)
	}

	return p, nil
}

// ProfilesDir returns the directory holding per-profile config files.
func ProfilesDir(configDir string) string {
	return filepath.Join(configDir, ProfilesDirName)
}
