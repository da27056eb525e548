package preload

import (
	"os"
	"path/filepath"

	"thumbwarm/internal/fileutil"
)

// Enumerate lists the immediate children of dir as canonical classic-form
// absolute paths, in directory order. Entries that fail canonicalization are
// dropped; only a failure to list the directory itself is an error
// (FailedToReadDirectory). An empty result is valid.
func Enumerate(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, NewError(FailedToReadDirectory, err)
	}

	files := make([]string, 0, len(entries))
	for _, entry := range entries {
		canonical, err := fileutil.Canonical(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		files = append(files, canonical)
	}
	return files, nil
}
