// Package walk enumerates the files a search should read.
package walk

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
)

// Files returns a lazy sequence of the regular files under root.
//
// If root is not a directory, including when it cannot be stat'ed at all,
// the sequence yields root itself so that opening it reports the problem.
// For a directory the sequence yields every regular file beneath it.
// Symbolic links are neither followed nor yielded, which also rules out
// cycles. Entries that fail during the walk are dropped silently.
//
// Order is unspecified. Each iteration walks the tree afresh.
func Files(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		if !IsDir(root) {
			yield(root)
			return
		}
		// WalkDir does not follow a symlinked root; a trailing separator
		// makes the OS resolve it.
		start := root
		if info, err := os.Lstat(root); err == nil && info.Mode()&fs.ModeSymlink != 0 {
			start += string(filepath.Separator)
		}

		_ = filepath.WalkDir(start, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				// Unreadable directory: skip its contents, keep walking.
				if d != nil && d.IsDir() && path != start {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// IsDir reports whether path names a directory, following symbolic links.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
