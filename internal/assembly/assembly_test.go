// internal/assembly/assembly_test.go
package assembly

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microseq-core/pairing"
)

func writeRead(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func fakeContig(t *testing.T) func(ctx context.Context, dir string, argv []string) error {
	t.Helper()
	return func(ctx context.Context, dir string, argv []string) error {
		// argv[1] is the combined FASTA relative to dir.
		return os.WriteFile(filepath.Join(dir, argv[1]+".cap.contigs"), []byte(">contig1\nACGT\n"), 0o644)
	}
}

func TestRunAssemblesEachOutcome(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	fwd := writeRead(t, in, "S1_27F.fasta", ">S1_27F\nACGT\n")
	rev := writeRead(t, in, "S1_1492R.fasta", ">S1_1492R\nTTTT\n")

	r := New(Config{Cap3: "cap3", OutDir: out, Threads: 2})
	var calls int32
	inner := fakeContig(t)
	r.runCmd = func(ctx context.Context, dir string, argv []string) error {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "cap3", argv[0])
		return inner(ctx, dir, argv)
	}

	outcomes := []pairing.Outcome{
		{SampleID: "S1", Key: "S1", Forward: []string{fwd}, Reverse: []string{rev}},
	}
	results, err := r.Run(context.Background(), outcomes)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int32(1), calls)
	assert.Equal(t, "S1", results[0].SampleKey)
	assert.Equal(t, []string{fwd, rev}, results[0].Inputs)

	combined, err := os.ReadFile(filepath.Join(out, "S1", "S1_paired.fasta"))
	require.NoError(t, err)
	assert.Contains(t, string(combined), ">S1_27F")
	assert.Contains(t, string(combined), ">S1_1492R")
	assert.FileExists(t, results[0].ContigPath)
}

func TestRunPassesExtraOptions(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	fwd := writeRead(t, in, "S1_27F.fasta", ">f\nAC\n")

	r := New(Config{Cap3: "cap3", Options: []string{"-o", "40"}, OutDir: out, Threads: 1})
	var got []string
	inner := fakeContig(t)
	r.runCmd = func(ctx context.Context, dir string, argv []string) error {
		got = argv
		return inner(ctx, dir, argv)
	}

	_, err := r.Run(context.Background(), []pairing.Outcome{
		{SampleID: "S1", Key: "S1", Forward: []string{fwd}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"cap3", "S1_paired.fasta", "-o", "40"}, got)
}

func TestRunResultsSortedByKey(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	var outcomes []pairing.Outcome
	for _, k := range []string{"S3", "S1", "S2"} {
		f := writeRead(t, in, k+"_27F.fasta", ">f\nAC\n")
		outcomes = append(outcomes, pairing.Outcome{SampleID: k, Key: k, Forward: []string{f}})
	}

	r := New(Config{Cap3: "cap3", OutDir: out, Threads: 3})
	r.runCmd = fakeContig(t)

	results, err := r.Run(context.Background(), outcomes)
	require.NoError(t, err)
	require.Len(t, results, 3)
	keys := make([]string, 0, 3)
	for _, res := range results {
		keys = append(keys, res.SampleKey)
	}
	assert.Equal(t, []string{"S1", "S2", "S3"}, keys)
}

func TestRunReportsAssemblerFailure(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	fwd := writeRead(t, in, "S1_27F.fasta", ">f\nAC\n")

	r := New(Config{Cap3: "cap3", OutDir: out, Threads: 1})
	r.runCmd = func(ctx context.Context, dir string, argv []string) error {
		return errors.New("boom")
	}

	results, err := r.Run(context.Background(), []pairing.Outcome{
		{SampleID: "S1", Key: "S1", Forward: []string{fwd}},
	})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "S1"))
	assert.Empty(t, results)
}

func TestRunMissingContigIsError(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	fwd := writeRead(t, in, "S1_27F.fasta", ">f\nAC\n")

	r := New(Config{Cap3: "cap3", OutDir: out, Threads: 1})
	r.runCmd = func(ctx context.Context, dir string, argv []string) error {
		return nil // assembler "succeeded" without writing contigs
	}

	_, err := r.Run(context.Background(), []pairing.Outcome{
		{SampleID: "S1", Key: "S1", Forward: []string{fwd}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no contigs")
}

func TestRunCancellationKeepsCompleted(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	var outcomes []pairing.Outcome
	for _, k := range []string{"S1", "S2", "S3", "S4"} {
		f := writeRead(t, in, k+"_27F.fasta", ">f\nAC\n")
		outcomes = append(outcomes, pairing.Outcome{SampleID: k, Key: k, Forward: []string{f}})
	}

	r := New(Config{Cap3: "cap3", OutDir: out, Threads: 1})
	var n int32
	inner := fakeContig(t)
	r.runCmd = func(ctx context.Context, dir string, argv []string) error {
		if atomic.AddInt32(&n, 1) == 2 {
			cancel()
		}
		return inner(ctx, dir, argv)
	}

	results, err := r.Run(ctx, outcomes)
	require.ErrorIs(t, err, context.Canceled)
	assert.NotEmpty(t, results)
	assert.Less(t, len(results), len(outcomes))
}
