// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/jose-cantu/MicroSeq/internal/cliutil"
	"github.com/jose-cantu/MicroSeq/internal/version"
)

// Options holds all CLI flags and arguments for a pairing run.
type Options struct {
	// Inputs
	InputDirs []string // directories scanned for read files
	Inputs    []string // explicit read files (positionals, globs expanded)

	// Pairing configuration
	FwdPattern  string
	RevPattern  string
	WellPattern string
	EnforceWell bool
	DupPolicy   string

	// Run mode
	DryRun bool

	// Output
	Output   string // report format on stdout: text | json | xlsx
	Report   string // persist pairing report (TSV) to this path
	Manifest string // persist assembly manifest (TSV) to this path
	Trace    string // persist contig traceability (TSV) to this path
	Header   bool   // true unless --no-header
	Quiet    bool

	// Assembly
	OutDir   string
	Cap3     string
	Cap3Opts []string
	Threads  int

	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: pair forward/reverse Sanger reads by filename and assemble per sample

Version: %s

Usage of %s:
  %s [flags] [read files or globs...]

Patterns are matched against the filename without its extension.

`, name, version.Version, name, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	var dirs stringSlice
	fs.Var(&dirs, "input", "directory of read files (repeatable) [*]")

	fs.StringVar(&opt.FwdPattern, "fwd-pattern", "", "forward primer-token regex; overrides built-ins entirely []")
	fs.StringVar(&opt.RevPattern, "rev-pattern", "", "reverse primer-token regex; overrides built-ins entirely []")
	fs.StringVar(&opt.WellPattern, "well-pattern", "", "plate-well regex (default A1-H12, case-insensitive) []")
	fs.BoolVar(&opt.EnforceWell, "enforce-well", false, "group mates by plate well; mismatched wells never pair [false]")
	fs.StringVar(&opt.DupPolicy, "dup-policy", "error", "duplicate-orientation policy: error | keep-first | keep-last | merge | keep-separate [error]")

	fs.BoolVar(&opt.DryRun, "dry-run", false, "compute pairing and diagnostics only; skip assembly [false]")

	fs.StringVar(&opt.Output, "output", "text", "report format on stdout: text | json | xlsx [text]")
	fs.StringVar(&opt.Report, "report", "", "write pairing report TSV to file []")
	fs.StringVar(&opt.Manifest, "manifest", "", "write assembly manifest TSV to file []")
	fs.StringVar(&opt.Trace, "trace", "", "write contig traceability TSV to file []")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in TSV outputs [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress warnings [false]")

	fs.StringVar(&opt.OutDir, "out-dir", "assembly", "destination directory for per-sample assembly runs [assembly]")
	fs.StringVar(&opt.Cap3, "cap3", "cap3", "contig assembler executable [cap3]")
	var cap3Opts stringSlice
	fs.Var(&cap3Opts, "cap3-opt", "extra assembler argument (repeatable) []")
	fs.IntVar(&opt.Threads, "threads", 0, "concurrent per-sample assemblies (0 = all CPUs) [0]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	// Read files may appear anywhere on the command line, including globs.
	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.InputDirs = dirs
	opt.Cap3Opts = cap3Opts
	opt.Header = !noHeader

	exp, err := cliutil.ExpandPositionals(append(posArgs, fs.Args()...))
	if err != nil {
		return opt, err
	}
	opt.Inputs = exp

	// Validation
	if len(opt.InputDirs) == 0 && len(opt.Inputs) == 0 {
		return opt, errors.New("provide --input or positional read files")
	}
	if opt.Threads < 0 {
		return opt, errors.New("--threads must be ≥ 0")
	}
	switch opt.Output {
	case "text", "json", "xlsx":
	default:
		return opt, fmt.Errorf("invalid --output %q", opt.Output)
	}
	if !opt.DryRun && opt.OutDir == "" {
		return opt, errors.New("--out-dir is required unless --dry-run")
	}
	return opt, nil
}

// stringSlice allows repeatable string flags.
type stringSlice []string

func (s *stringSlice) String() string     { return strings.Join(*s, ",") }
func (s *stringSlice) Set(v string) error { *s = append(*s, v); return nil }
