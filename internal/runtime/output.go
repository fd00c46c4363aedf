package runtime

import (
	"bufio"
	"io"
	"strconv"
	"sync"

	"github.com/fatih/color"
)

// Record is a single matched line.
type Record struct {
	Label  string // Source path; empty for unlabelled output
	LineNo int    // 1-based line number
	Text   string // Line content without newline
}

// PrinterOptions controls how records are rendered.
type PrinterOptions struct {
	// Color enables ANSI highlighting of the label, line number
	// and the spans returned by Highlight.
	Color bool

	// Highlight returns the match spans of a line.
	// Only consulted when Color is set.
	Highlight func(line string) [][]int
}

// Printer writes records to a shared output stream.
// It is safe for concurrent use: each record is rendered into a private
// buffer and written with a single call while holding the lock, so
// output from different goroutines never interleaves within a line.
type Printer struct {
	mu  sync.Mutex
	w   *bufio.Writer
	err error // First write error; sticky

	opts  PrinterOptions
	label *color.Color
	num   *color.Color
	match *color.Color

	pool sync.Pool
}

// NewPrinter creates a Printer that writes to w.
func NewPrinter(w io.Writer, opts PrinterOptions) *Printer {
	p := &Printer{
		w:     bufio.NewWriter(w),
		opts:  opts,
		label: color.New(color.FgMagenta),
		num:   color.New(color.FgGreen),
		match: color.New(color.FgRed, color.Bold),
	}
	// Colour is decided by the caller, not by fatih/color's own TTY probe.
	for _, c := range []*color.Color{p.label, p.num, p.match} {
		if opts.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	p.pool.New = func() any {
		b := make([]byte, 0, 256)
		return &b
	}
	return p
}

// Print writes one record and flushes it, so output is line-buffered
// even when the consumer is a pipe. It returns the first write error seen
// by this Printer, if any; once a write has failed nothing more is written.
func (p *Printer) Print(rec Record) error {
	bp := p.pool.Get().(*[]byte)
	buf := p.format((*bp)[:0], rec)

	p.mu.Lock()
	if p.err == nil {
		_, p.err = p.w.Write(buf)
	}
	if p.err == nil {
		p.err = p.w.Flush()
	}
	err := p.err
	p.mu.Unlock()

	*bp = buf
	p.pool.Put(bp)
	return err
}

// Flush writes any buffered output.
func (p *Printer) Flush() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err == nil {
		p.err = p.w.Flush()
	}
	return p.err
}

// format renders rec as "label:line: text\n" or "line: text\n".
func (p *Printer) format(buf []byte, rec Record) []byte {
	if !p.opts.Color {
		if rec.Label != "" {
			buf = append(buf, rec.Label...)
			buf = append(buf, ':')
		}
		buf = strconv.AppendInt(buf, int64(rec.LineNo), 10)
		buf = append(buf, ": "...)
		buf = append(buf, rec.Text...)
		return append(buf, '\n')
	}

	if rec.Label != "" {
		buf = append(buf, p.label.Sprint(rec.Label)...)
		buf = append(buf, ':')
	}
	buf = append(buf, p.num.Sprint(rec.LineNo)...)
	buf = append(buf, ": "...)
	buf = p.appendHighlighted(buf, rec.Text)
	return append(buf, '\n')
}

// appendHighlighted appends text with every match span coloured.
func (p *Printer) appendHighlighted(buf []byte, text string) []byte {
	if p.opts.Highlight == nil {
		return append(buf, text...)
	}
	last := 0
	for _, span := range p.opts.Highlight(text) {
		if span[1] == span[0] {
			continue
		}
		buf = append(buf, text[last:span[0]]...)
		buf = append(buf, p.match.Sprint(text[span[0]:span[1]])...)
		last = span[1]
	}
	return append(buf, text[last:]...)
}
