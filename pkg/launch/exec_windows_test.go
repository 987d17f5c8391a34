//go:build windows

package launch

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:paralleltest // Overrides the package-level exit function.
func TestCommand_Exec(t *testing.T) {
	orig := exitFunc
	t.Cleanup(func() { exitFunc = orig })

	shell, err := exec.LookPath("cmd")
	require.NoError(t, err)

	tcs := map[string]struct {
		cmd      *Command
		wantCode int
		wantErr  bool
	}{
		"exit status is forwarded": {
			cmd:      &Command{Path: shell, Args: []string{"/c", "exit 3"}},
			wantCode: 3,
		},
		"success exits zero": {
			cmd:      &Command{Path: shell, Args: []string{"/c", "exit 0"}},
			wantCode: 0,
		},
		"failed start": {
			cmd:     &Command{Path: filepath.Join(t.TempDir(), "missing.exe")},
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			code := -1
			exitFunc = func(c int) { code = c }

			err := tc.cmd.Exec()
			if tc.wantErr {
				require.ErrorIs(t, err, ErrLaunch)
				assert.Contains(t, err.Error(), tc.cmd.Path)
				assert.Equal(t, -1, code, "exit must not be called")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantCode, code)
		})
	}
}
