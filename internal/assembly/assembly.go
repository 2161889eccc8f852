// internal/assembly/assembly.go
package assembly

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/jose-cantu/MicroSeq/internal/seqio"
	"microseq-core/pairing"
)

// Config controls the per-sample assembly pool.
type Config struct {
	Cap3    string   // assembler executable
	Options []string // extra arguments appended to every invocation
	OutDir  string   // one subdirectory per sample key
	Threads int      // concurrent samples (0 = all CPUs)
}

// Result is the traceability record for one completed sample.
type Result struct {
	SampleKey  string
	ContigPath string
	Inputs     []string
}

// Runner executes one external assembly per pairing outcome. Samples are
// independent, so the pool shares nothing between workers.
type Runner struct {
	cfg Config

	// runCmd is swappable in tests so no assembler binary is needed.
	runCmd func(ctx context.Context, dir string, argv []string) error
}

// New creates a Runner for cfg.
func New(cfg Config) *Runner {
	return &Runner{cfg: cfg, runCmd: execRun}
}

func execRun(ctx context.Context, dir string, argv []string) error {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := bytes.TrimSpace(stderr.Bytes()); len(msg) > 0 {
			return fmt.Errorf("%s: %w: %s", argv[0], err, msg)
		}
		return fmt.Errorf("%s: %w", argv[0], err)
	}
	return nil
}

// Run assembles every outcome with a bounded worker pool. Completed results
// are returned even when the run is cancelled or a sample fails; the first
// error encountered is returned alongside them. Results are ordered by
// sample key for reproducible traceability output.
func (r *Runner) Run(ctx context.Context, outcomes []pairing.Outcome) ([]Result, error) {
	threads := r.cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	jobs := make(chan pairing.Outcome, threads)

	type item struct {
		res Result
		err error
	}
	results := make(chan item, threads)

	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case o, ok := <-jobs:
					if !ok {
						return
					}
					res, err := r.assembleOne(ctx, o)
					select {
					case results <- item{res: res, err: err}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	var (
		done  []Result
		first error
		cwg   sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for it := range results {
			if it.err != nil {
				if first == nil {
					first = it.err
				}
				continue
			}
			done = append(done, it.res)
		}
	}()

feed:
	for _, o := range outcomes {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- o:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	sort.Slice(done, func(i, j int) bool { return done[i].SampleKey < done[j].SampleKey })

	if first != nil {
		return done, first
	}
	return done, ctx.Err()
}

// assembleOne writes the combined per-sample FASTA, invokes the assembler
// in the sample directory, and verifies the contig artifact exists.
func (r *Runner) assembleOne(ctx context.Context, o pairing.Outcome) (Result, error) {
	inputs := append(append([]string{}, o.Forward...), o.Reverse...)
	sampleDir := filepath.Join(r.cfg.OutDir, o.Key)
	combined := filepath.Join(sampleDir, o.Key+"_paired.fasta")

	if err := seqio.WriteCombined(combined, inputs); err != nil {
		return Result{}, fmt.Errorf("sample %s: %w", o.Key, err)
	}

	argv := append([]string{r.cfg.Cap3, filepath.Base(combined)}, r.cfg.Options...)
	if err := r.runCmd(ctx, sampleDir, argv); err != nil {
		return Result{}, fmt.Errorf("sample %s: %w", o.Key, err)
	}

	contig := combined + ".cap.contigs"
	if _, err := os.Stat(contig); err != nil {
		return Result{}, fmt.Errorf("sample %s: assembler produced no contigs: %w", o.Key, err)
	}

	return Result{SampleKey: o.Key, ContigPath: contig, Inputs: inputs}, nil
}
