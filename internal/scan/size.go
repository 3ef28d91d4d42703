package scan

import (
	"io/fs"
	"os"
	"path/filepath"
)

// DirSize returns the total size in bytes of all regular files under path.
// Symlinked entries are skipped entirely — never followed, never counted —
// so the walk cannot escape the tree or double-count. Per-file stat errors
// (permission denied, vanished file) are swallowed and the affected files
// simply omitted from the sum. An unreadable root yields 0. DirSize is a
// best-effort measurement and never returns an error.
func DirSize(path string) int64 {
	info, err := os.Lstat(path)
	if err != nil || info.Mode()&os.ModeSymlink != 0 {
		return 0
	}
	if !info.IsDir() {
		return info.Size()
	}

	var total int64
	_ = filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable directory or vanished entry — skip it.
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if fi, err := d.Info(); err == nil {
			total += fi.Size()
		}
		return nil
	})
	return total
}
