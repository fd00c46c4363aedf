package minigrep

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/fatih/color"
	"github.com/kolkov/minigrep/internal/parallel"
	"github.com/kolkov/minigrep/internal/runtime"
	"github.com/kolkov/minigrep/internal/walk"
)

// stdinLabel names standard input in labelled output and warnings.
const stdinLabel = "(standard input)"

// ctxCheckInterval is how many lines a worker scans between checks for
// an aborted run.
const ctxCheckInterval = 1024

// Pattern is a compiled search pattern.
// It is safe for concurrent use.
type Pattern struct {
	re *runtime.Regex
}

// Stats summarizes a finished search.
type Stats struct {
	Files   int // Files opened and scanned
	Failed  int // Files that could not be opened or read to the end
	Matches int // Lines reported
}

// String returns the source text of the pattern.
func (p *Pattern) String() string {
	return p.re.Pattern()
}

// Match reports whether line contains a match anywhere.
func (p *Pattern) Match(line string) bool {
	return p.re.MatchString(line)
}

// MatchIndexes returns the [start, end) byte offsets of every
// non-overlapping match in line, or nil if there is none.
func (p *Pattern) MatchIndexes(line string) [][]int {
	return p.re.FindAllStringIndex(line, -1)
}

// Search reports every matching line of target.
//
// target is a file, a directory or StdinTarget. Directory targets are
// walked recursively and their files searched in parallel; matches are
// prefixed with the file path and appear in line order within a file,
// in no particular order across files. File and standard input targets
// are searched on the calling goroutine without a prefix unless
// config.WithFilename is set.
//
// Files that cannot be opened or read are reported to config.Stderr and
// skipped. The returned error is non-nil only when writing the output
// fails, as a *WriteError, or when ctx is cancelled.
func (p *Pattern) Search(ctx context.Context, target string, config *Config) (Stats, error) {
	cfg := config.withDefaults()
	s := p.newSearch(cfg)

	var err error
	switch {
	case target == StdinTarget:
		err = s.searchReader(ctx, cfg.Stdin, stdinLabel, s.label(stdinLabel, cfg.WithFilename))
	case walk.IsDir(target):
		err = parallel.ForEach(ctx, walk.Files(target), parallel.Config{NumWorkers: cfg.Workers},
			func(ctx context.Context, path string) error {
				return s.searchFile(ctx, path, true)
			})
	default:
		err = s.searchFile(ctx, target, cfg.WithFilename)
	}
	return s.finish(err)
}

// SearchReader reports every matching line read from r.
// name identifies r in warnings and, with config.WithFilename, in output.
func (p *Pattern) SearchReader(ctx context.Context, r io.Reader, name string, config *Config) (Stats, error) {
	cfg := config.withDefaults()
	s := p.newSearch(cfg)
	err := s.searchReader(ctx, r, name, s.label(name, cfg.WithFilename))
	return s.finish(err)
}

// search is the state of one Search call shared by its workers.
type search struct {
	pattern *Pattern
	printer *runtime.Printer

	stderrMu sync.Mutex
	stderr   io.Writer
	warn     *color.Color

	files   atomic.Int64
	failed  atomic.Int64
	matches atomic.Int64
}

func (p *Pattern) newSearch(cfg Config) *search {
	warn := color.New(color.FgYellow)
	if cfg.WarningColor {
		warn.EnableColor()
	} else {
		warn.DisableColor()
	}
	return &search{
		pattern: p,
		printer: runtime.NewPrinter(cfg.Output, runtime.PrinterOptions{
			Color:     cfg.Color,
			Highlight: p.MatchIndexes,
		}),
		stderr: cfg.Stderr,
		warn:   warn,
	}
}

func (s *search) label(name string, labelled bool) string {
	if labelled {
		return name
	}
	return ""
}

// searchFile opens path and scans it. Open failures are warnings.
func (s *search) searchFile(ctx context.Context, path string, labelled bool) error {
	f, err := os.Open(path)
	if err != nil {
		s.warning(&FileError{Op: "open", Path: path, Err: err})
		return nil
	}
	defer f.Close()
	return s.searchReader(ctx, f, path, s.label(path, labelled))
}

// searchReader scans r line by line and prints the matches.
// Only a write error is returned; read errors become warnings.
func (s *search) searchReader(ctx context.Context, r io.Reader, name, label string) error {
	s.files.Add(1)

	lr := runtime.NewLineReader(r)
	scanned := 0
	for lineNo, line := range lr.All() {
		scanned++
		if scanned%ctxCheckInterval == 0 && ctx.Err() != nil {
			return ctx.Err()
		}
		if !s.pattern.Match(line) {
			continue
		}
		s.matches.Add(1)
		if err := s.printer.Print(runtime.Record{Label: label, LineNo: lineNo, Text: line}); err != nil {
			return &WriteError{Err: err}
		}
	}
	if err := lr.Err(); err != nil {
		s.warning(&FileError{Op: "read", Path: name, Err: err})
	}
	return nil
}

// warning writes a non-fatal problem to stderr and counts the file as failed.
func (s *search) warning(err error) {
	s.failed.Add(1)

	msg := s.warn.Sprintf("minigrep: warning: %v", err)
	s.stderrMu.Lock()
	fmt.Fprintln(s.stderr, msg)
	s.stderrMu.Unlock()
}

// finish flushes buffered output and collects the counters.
func (s *search) finish(err error) (Stats, error) {
	if flushErr := s.printer.Flush(); flushErr != nil && err == nil {
		err = &WriteError{Err: flushErr}
	}
	return Stats{
		Files:   int(s.files.Load()),
		Failed:  int(s.failed.Load()),
		Matches: int(s.matches.Load()),
	}, err
}
