package runtime

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"iter"
	"unicode/utf8"
)

// defaultBufferSize is the read buffer size for LineReader.
const defaultBufferSize = 64 * 1024

// LineReader reads newline-separated lines from an input stream.
// Lines that are not valid UTF-8 are skipped but still counted,
// so reported line numbers always match physical positions.
//
// Unlike bufio.Scanner, LineReader has no maximum line length.
type LineReader struct {
	r      *bufio.Reader
	buf    []byte // Accumulates a line longer than the reader's buffer
	lineNo int
	line   string
	err    error
	done   bool
}

// NewLineReader creates a LineReader over r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReaderSize(r, defaultBufferSize)}
}

// Next advances to the next valid line. It returns false at end of
// input or on the first read error; call Err to tell them apart.
func (lr *LineReader) Next() bool {
	for !lr.done {
		raw, err := lr.readLine()
		if err != nil {
			lr.done = true
			if !errors.Is(err, io.EOF) {
				lr.err = err
				return false
			}
			// Final line without a trailing newline.
			if len(raw) == 0 {
				return false
			}
		}

		lr.lineNo++
		raw = bytes.TrimSuffix(raw, []byte{'\r'})
		if !utf8.Valid(raw) {
			continue
		}
		lr.line = string(raw)
		return true
	}
	return false
}

// readLine returns the next line without its newline. At end of input
// it returns whatever was left together with io.EOF.
func (lr *LineReader) readLine() ([]byte, error) {
	lr.buf = lr.buf[:0]
	for {
		chunk, err := lr.r.ReadSlice('\n')
		if err == nil {
			chunk = chunk[:len(chunk)-1]
			if len(lr.buf) == 0 {
				return chunk, nil
			}
			lr.buf = append(lr.buf, chunk...)
			return lr.buf, nil
		}
		lr.buf = append(lr.buf, chunk...)
		if !errors.Is(err, bufio.ErrBufferFull) {
			return lr.buf, err
		}
	}
}

// Line returns the 1-based number and text of the current line.
func (lr *LineReader) Line() (int, string) {
	return lr.lineNo, lr.line
}

// Err returns the first non-EOF read error.
func (lr *LineReader) Err() error {
	return lr.err
}

// All returns an iterator over the remaining (line number, text) pairs.
// Check Err after the loop ends.
func (lr *LineReader) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for lr.Next() {
			if !yield(lr.Line()) {
				return
			}
		}
	}
}
