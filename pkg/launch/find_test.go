//go:build !windows

package launch_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/starship-profiles/pkg/launch"
)

func writeExecutable(t *testing.T, dir, name string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0o700))

	return path
}

func TestFind(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		setup   func(t *testing.T) (self, pathEnv, want string)
		wantErr bool
	}{
		"first directory wins": {
			setup: func(t *testing.T) (string, string, string) {
				t.Helper()

				a, b := t.TempDir(), t.TempDir()
				want := writeExecutable(t, a, "starship")
				writeExecutable(t, b, "starship")

				return "", strings.Join([]string{a, b}, string(os.PathListSeparator)), want
			},
		},
		"skips the wrapper itself": {
			setup: func(t *testing.T) (string, string, string) {
				t.Helper()

				a, b := t.TempDir(), t.TempDir()
				self := writeExecutable(t, a, "starship")
				want := writeExecutable(t, b, "starship")

				return self, strings.Join([]string{a, b}, string(os.PathListSeparator)), want
			},
		},
		"skips a symlink to the wrapper": {
			setup: func(t *testing.T) (string, string, string) {
				t.Helper()

				a, b, c := t.TempDir(), t.TempDir(), t.TempDir()
				self := writeExecutable(t, c, "starship-profiles")
				require.NoError(t, os.Symlink(self, filepath.Join(a, "starship")))
				want := writeExecutable(t, b, "starship")

				return self, strings.Join([]string{a, b}, string(os.PathListSeparator)), want
			},
		},
		"skips non-executable files and empty entries": {
			setup: func(t *testing.T) (string, string, string) {
				t.Helper()

				a, b := t.TempDir(), t.TempDir()
				require.NoError(t, os.WriteFile(filepath.Join(a, "starship"), nil, 0o600))
				want := writeExecutable(t, b, "starship")

				return "", strings.Join([]string{"", a, b}, string(os.PathListSeparator)), want
			},
		},
		"only the wrapper on the path": {
			setup: func(t *testing.T) (string, string, string) {
				t.Helper()

				a := t.TempDir()
				self := writeExecutable(t, a, "starship")

				return self, a, ""
			},
			wantErr: true,
		},
		"empty path": {
			setup: func(t *testing.T) (string, string, string) {
				t.Helper()

				return "", "", ""
			},
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			self, pathEnv, want := tc.setup(t)

			got, err := launch.Find("starship", self, pathEnv)
			if tc.wantErr {
				require.ErrorIs(t, err, launch.ErrExecutableNotFound)
				assert.Contains(t, err.Error(), "starship")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}
