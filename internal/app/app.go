// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/jose-cantu/MicroSeq/internal/assembly"
	"github.com/jose-cantu/MicroSeq/internal/cli"
	"github.com/jose-cantu/MicroSeq/internal/output"
	"github.com/jose-cantu/MicroSeq/internal/scan"
	"github.com/jose-cantu/MicroSeq/internal/version"
	"github.com/jose-cantu/MicroSeq/internal/writers"
	"github.com/jose-cantu/MicroSeq/pkg/api"
	"microseq-core/classify"
	"microseq-core/diagnose"
	"microseq-core/pairing"
	"microseq-core/token"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	return runContext(parent, "microseq", false, argv, stdout, stderr)
}

// RunContextNamed backs sibling commands that reuse the pairing pipeline
// under their own name. forceDry pins the run to pairing + reporting only.
func RunContextNamed(parent context.Context, name string, forceDry bool, argv []string, stdout, stderr io.Writer) int {
	return runContext(parent, name, forceDry, argv, stdout, stderr)
}

func runContext(parent context.Context, name string, forceDry bool, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		if err := outw.Flush(); writers.IsBrokenPipe(err) {
			return 0
		} else if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			if e := outw.Flush(); writers.IsBrokenPipe(e) {
				return 0
			} else if e != nil {
				_, _ = fmt.Fprintln(stderr, e)
				return 3
			}
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 2
	}

	if forceDry {
		opts.DryRun = true
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return 0
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return 3
		}
		return 0
	}

	reg, err := token.Build(opts.FwdPattern, opts.RevPattern, opts.WellPattern)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	policy, err := pairing.ParsePolicy(opts.DupPolicy)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	paths, err := scan.Inputs(opts.InputDirs, opts.Inputs)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	files := classify.ClassifyAll(paths, reg)
	rep := pairing.Pair(files, pairing.Options{EnforceWell: opts.EnforceWell, Policy: policy})

	// Persisted TSVs are written before the exit decision so a zero-pair
	// run still leaves its report behind for inspection.
	if opts.Report != "" {
		if err := writeFileTSV(opts.Report, func(w io.Writer) error {
			return output.WriteReportTSV(w, rep, opts.Header)
		}); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}
	if opts.Manifest != "" {
		if err := writeFileTSV(opts.Manifest, func(w io.Writer) error {
			return output.WriteManifestTSV(w, rep.Outcomes, opts.Header)
		}); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}

	if err := writers.WriteReport(opts.Output, outw, rep, opts.Header); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return 0
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return 3
	}

	if len(rep.Outcomes) == 0 {
		if !opts.Quiet {
			printDiagnostics(stderr, diagnose.Summarize(rep, files))
		}
		return 1
	}

	if opts.DryRun {
		if err := parent.Err(); err != nil {
			return 130
		}
		return 0
	}

	runner := assembly.New(assembly.Config{
		Cap3:    opts.Cap3,
		Options: opts.Cap3Opts,
		OutDir:  opts.OutDir,
		Threads: opts.Threads,
	})
	results, err := runner.Run(parent, rep.Outcomes)

	if opts.Trace != "" {
		traces := make([]api.TraceV1, 0, len(results))
		for _, r := range results {
			traces = append(traces, api.TraceV1{SampleKey: r.SampleKey, ContigPath: r.ContigPath, Inputs: r.Inputs})
		}
		if werr := writeFileTSV(opts.Trace, func(w io.Writer) error {
			return output.WriteTraceTSV(w, traces, opts.Header)
		}); werr != nil {
			_, _ = fmt.Fprintln(stderr, werr)
			if err == nil {
				err = werr
			}
		}
	}

	if err != nil {
		if errors.Is(err, context.Canceled) || parent.Err() != nil {
			return 130
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func writeFileTSV(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// printDiagnostics renders the zero-pair summary with a highlighted headline
// so it stands out from ordinary warnings on a busy terminal.
func printDiagnostics(w io.Writer, sum *diagnose.Summary) {
	warn := color.New(color.FgYellow, color.Bold)
	_, _ = warn.Fprintln(w, "no pairs formed")
	for _, l := range sum.Lines() {
		_, _ = fmt.Fprintln(w, l)
	}
}
