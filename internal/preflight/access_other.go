//go:build !unix

package preflight

import (
	"os"
	"path/filepath"
)

// checkAccess falls back to creating and removing a probe file where
// access(2) is unavailable.
func checkAccess(path string) error {
	f, err := os.CreateTemp(path, ".dngconv-probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(filepath.Clean(name))
}
