package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kolkov/minigrep"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const longUsage = `Search a file, a directory tree or standard input for lines matching
a regular expression, and print each match with its location.

Matches in a directory are printed as "path:line: text" and are searched
in parallel, so the order across files is not fixed. Matches in a single
file or standard input are printed as "line: text".

Files that cannot be opened are reported on stderr and skipped.

Flags may appear anywhere on the command line. A pattern that starts with
a dash must follow "--".`

const examples = `  minigrep "apple" sample.txt
  minigrep "foo.*bar" ./logs
  cat sample.txt | minigrep "apple" -
  minigrep -i -- "-->" notes.txt`

// usageError is a command-line mistake; it is reported with the usage text.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

type options struct {
	ignoreCase   bool
	jobs         int
	withFilename bool
	color        string
	debug        bool
	version      bool
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCommand(stdin, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprintf(stderr, "minigrep: %s\n\n%s", ue.msg, cmd.UsageString())
		return 1
	}
	fmt.Fprintf(stderr, "minigrep: %v\n", err)
	return 1
}

// newRootCommand creates the minigrep command. Help and usage text go to
// stderr so that stdout carries nothing but matches.
func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{color: "auto"}

	cmd := &cobra.Command{
		Use:     "minigrep <pattern> <file|dir|->",
		Short:   "Search files for lines matching a regular expression",
		Long:    longUsage,
		Example: examples,
		Args:    cobra.ArbitraryArgs,
		// Errors are printed by run, once.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.version {
				printVersion(stdout)
				return nil
			}
			return runSearch(cmd.Context(), opts, args, stdin, stdout, stderr)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stderr)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})

	flags := cmd.Flags()
	flags.BoolVarP(&opts.version, "version", "v", false, "print version information and exit")
	flags.BoolVarP(&opts.ignoreCase, "ignore-case", "i", false, "match regardless of letter case")
	flags.IntVarP(&opts.jobs, "jobs", "j", 0, "number of files searched in parallel (default: number of CPUs)")
	flags.BoolVarP(&opts.withFilename, "with-filename", "H", false, "prefix matches with the file name even for a single file")
	flags.StringVar(&opts.color, "color", opts.color, "highlight output: auto, always or never")
	flags.BoolVar(&opts.debug, "debug", false, "print a search summary to stderr")

	return cmd
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "minigrep %s\n", version)
	if commit != "none" {
		fmt.Fprintf(w, "  commit: %s\n", commit)
		fmt.Fprintf(w, "  built:  %s\n", date)
	}
}

func runSearch(ctx context.Context, opts *options, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) < 2 {
		return &usageError{msg: "expected a pattern and a file, directory or -"}
	}
	if len(args) > 2 {
		return &usageError{msg: fmt.Sprintf("unexpected argument %q", args[2])}
	}
	if opts.jobs < 0 {
		return &usageError{msg: fmt.Sprintf("invalid number of jobs: %d", opts.jobs)}
	}
	colorOut, err := colorEnabled(opts.color, stdout)
	if err != nil {
		return err
	}
	colorErr, _ := colorEnabled(opts.color, stderr)

	pattern, target := args[0], args[1]

	// Compile before touching the target so a bad pattern reads nothing.
	p, err := minigrep.CompileWithOptions(pattern, minigrep.PatternOptions{IgnoreCase: opts.ignoreCase})
	if err != nil {
		return err
	}

	stats, err := p.Search(ctx, target, &minigrep.Config{
		Output:       stdout,
		Stderr:       stderr,
		Stdin:        stdin,
		Workers:      opts.jobs,
		WithFilename: opts.withFilename,
		Color:        colorOut,
		WarningColor: colorErr,
	})
	if opts.debug {
		fmt.Fprintf(stderr, "minigrep: searched %d files, %d failed, %d matching lines\n",
			stats.Files, stats.Failed, stats.Matches)
	}
	return err
}

// colorEnabled resolves a --color mode for the given stream.
func colorEnabled(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false, nil
		}
		return isTerminal(w), nil
	default:
		return false, &usageError{msg: fmt.Sprintf("invalid --color value %q (want auto, always or never)", mode)}
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
