// Package env locates the llar workspace.
package env

import (
	"os"
	"path/filepath"
)

// HomeEnv names the variable overriding the workspace location.
const HomeEnv = "LLAR_HOME"

// WorkDir returns the workspace directory, creating it if needed. It is
// $LLAR_HOME when set, otherwise .llar under the user cache directory.
func WorkDir() (string, error) {
	dir := os.Getenv(HomeEnv)
	if dir == "" {
		userCacheDir, err := os.UserCacheDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(userCacheDir, ".llar")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}
