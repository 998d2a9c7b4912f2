package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/ScottMcKellar/catpath/internal/logging"
	"github.com/ScottMcKellar/catpath/internal/pathlist"
	"github.com/ScottMcKellar/catpath/internal/version"
)

// options holds everything the command line can configure.
type options struct {
	cfg       pathlist.Config
	verbosity int
	help      bool
	version   bool
	json      bool
}

// separatorValue is the pflag.Value behind -s. It accepts exactly one
// character and rejects conflicting values across repeated occurrences.
// Repeating the same value is harmless.
type separatorValue struct {
	sep string
	set bool
}

func (v *separatorValue) String() string { return v.sep }

func (v *separatorValue) Set(s string) error {
	sep, err := pathlist.ParseSeparator(s)
	if err != nil {
		return err
	}
	if v.set && sep != v.sep {
		return fmt.Errorf("conflicting separator values %q and %q", v.sep, sep)
	}
	v.sep = sep
	v.set = true
	return nil
}

func (v *separatorValue) Type() string { return "char" }

// newFlagSet declares the full option surface on a fresh FlagSet bound to
// opts. The returned separatorValue carries the -s state.
func newFlagSet(name string, opts *options) (*pflag.FlagSet, *separatorValue) {
	sep := &separatorValue{sep: pathlist.DefaultSeparator}
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.BoolVarP(&opts.cfg.AllowDuplicates, "duplicates", "d", false, "allow duplicate paths")
	fs.BoolVarP(&opts.cfg.Force, "force", "f", false, "include a path even if the directory doesn't exist")
	fs.BoolVarP(&opts.help, "help", "h", false, "display this help text")
	fs.BoolVarP(&opts.json, "json", "j", false, "print the resulting paths as a JSON array")
	fs.VarP(sep, "separator", "s", "character used to separate paths")
	fs.CountVarP(&opts.verbosity, "verbose", "v", "increase diagnostic detail on stderr (repeatable)")
	fs.BoolVarP(&opts.version, "version", "V", false, "print version information")
	fs.BoolVarP(&opts.cfg.ExpandTilde, "expand", "x", false, "replace a leading '~' with the user's home directory")
	return fs, sep
}

// parseArgs turns raw command-line arguments into options plus the
// positional path-list arguments. It touches neither the environment nor
// the filesystem; errors come back for the caller to report.
func parseArgs(name string, args []string) (*options, []string, error) {
	opts := &options{}
	fs, sep := newFlagSet(name, opts)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	opts.cfg.Separator = sep.String()
	return opts, fs.Args(), nil
}

func usage(w io.Writer, name string) {
	fs, _ := newFlagSet(name, &options{})
	fmt.Fprintf(w, "Usage: %s [OPTION...] PATH...\n\n", name)
	fmt.Fprintf(w, "Concatenate directory paths into a list. Each PATH is a list of one\n")
	fmt.Fprintf(w, "or more directory paths, separated by a designated separator\n")
	fmt.Fprintf(w, "character (see -s option).\n\n")
	fmt.Fprintf(w, "Options:\n")
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  catpath /usr/local/bin:/usr/bin \"$PATH\"   # merge, dropping duplicates\n")
	fmt.Fprintf(w, "  catpath -s , one,two,three                # comma-separated lists\n")
	fmt.Fprintf(w, "  catpath -x '~/bin' \"$PATH\"                # expand a leading tilde\n")
	fmt.Fprintf(w, "\nReport %s bugs to mck9@swbell.net\n", name)
}

// run is main minus the process exit: it reports errors on stderr under
// the program name and returns the exit status.
func run(name string, args []string, stdout, stderr io.Writer) int {
	opts, paths, err := parseArgs(name, args)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", name, err)
		return 1
	}

	if opts.help {
		usage(stdout, name)
		return 0
	}

	if opts.version {
		fmt.Fprintf(stdout, "%s version %s\n", name, version.Version)
		return 0
	}

	logging.SetupLogger(opts.verbosity)

	// Each positional argument is a list of one or more directory paths,
	// separated by the designated separator character. Extraneous
	// separators are ignored.
	builder := pathlist.NewBuilder(opts.cfg)
	for _, arg := range paths {
		builder.Add(pathlist.Split(arg, opts.cfg.Separator)...)
	}

	if opts.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		enc.Encode(builder.Entries())
		return 0
	}

	fmt.Fprintln(stdout, builder.String())
	return 0
}

func main() {
	os.Exit(run(filepath.Base(os.Args[0]), os.Args[1:], os.Stdout, os.Stderr))
}
