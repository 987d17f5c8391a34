package launch

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// ErrExecutableNotFound is returned when no executable other than the
// wrapper itself is found on the search path.
var ErrExecutableNotFound = errors.New("executable not found")

// Find searches each directory of pathEnv, in order, for an executable named
// name, and returns the first one that is not self.
//
// Comparing against self lets the wrapper be installed under the same name as
// the program it wraps, e.g. as a "starship" earlier in $PATH.
func Find(name, self, pathEnv string) (string, error) {
	selfInfo := statSelf(self)

	for _, dir := range filepath.SplitList(pathEnv) {
		if dir == "" {
			continue
		}

		// A name with a separator is checked directly, with PATHEXT applied on Windows.
		candidate, err := exec.LookPath(filepath.Join(dir, name))
		if err != nil {
			continue
		}

		candidate, err = filepath.Abs(candidate)
		if err != nil {
			continue
		}

		if isSelf(candidate, self, selfInfo) {
			continue
		}

		return candidate, nil
	}

	return "", fmt.Errorf("%w: %s", ErrExecutableNotFound, name)
}

// FindFromEnv calls [Find] with the running executable and $PATH.
func FindFromEnv(name string) (string, error) {
	self, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("get current executable: %w", err)
	}

	return Find(name, self, os.Getenv("PATH"))
}

func statSelf(self string) os.FileInfo {
	if self == "" {
		return nil
	}

	info, err := os.Stat(self)
	if err != nil {
		return nil
	}

	return info
}

func isSelf(candidate, self string, selfInfo os.FileInfo) bool {
	if selfInfo == nil {
		return self != "" && filepath.Clean(candidate) == filepath.Clean(self)
	}

	info, err := os.Stat(candidate)
	if err != nil {
		return false
	}

	return os.SameFile(info, selfInfo)
}
