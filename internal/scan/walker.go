package scan

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// hidden entries and everything under them are excluded from candidates
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// Candidates walks root and returns the paths of all regular files,
// relative to root. Hidden entries are skipped along with their
// descendants. An entry that fails to stat or read is dropped from the
// candidate set; only a failure on root itself aborts the walk.
func Candidates(root string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if path == root {
			return nil
		}
		if isHidden(d.Name()) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}
