package minigrep

import (
	"errors"
	"fmt"
	"io/fs"
)

// PatternError reports a pattern that failed to compile.
type PatternError struct {
	Pattern string // Pattern as given by the caller
	Err     error  // Underlying syntax error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error {
	return e.Err
}

// FileError reports a file that could not be opened or read to the end.
// It is not fatal: the search skips the file and carries on.
type FileError struct {
	Op   string // "open" or "read"
	Path string // File path, or "(standard input)"
	Err  error  // Underlying I/O error
}

func (e *FileError) Error() string {
	// *fs.PathError repeats the operation and path; keep only its cause.
	cause := e.Err
	var pe *fs.PathError
	if errors.As(cause, &pe) {
		cause = pe.Err
	}
	return fmt.Sprintf("cannot %s %s: %v", e.Op, e.Path, cause)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// WriteError reports a failure to write matches to the output.
// It aborts the whole search.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write error: %v", e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// IsWriteError reports whether err is, or wraps, a WriteError.
func IsWriteError(err error) bool {
	var we *WriteError
	return errors.As(err, &we)
}
