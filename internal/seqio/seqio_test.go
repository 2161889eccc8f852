package seqio

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/pgzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_PlainAndGzip(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "plain.fasta")
	require.NoError(t, os.WriteFile(plain, []byte(">a\nACGT\n"), 0o644))

	gz := filepath.Join(dir, "reads.fasta.gz")
	fh, err := os.Create(gz)
	require.NoError(t, err)
	zw := pgzip.NewWriter(fh)
	_, err = zw.Write([]byte(">b\nTTTT\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, fh.Close())

	for _, tc := range []struct{ path, want string }{
		{plain, ">a\nACGT\n"},
		{gz, ">b\nTTTT\n"},
	} {
		r, err := Open(tc.path)
		require.NoError(t, err)
		got, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(got))
		require.NoError(t, r.Close())
	}
}

func TestReadFastq(t *testing.T) {
	in := "@read1 well=A01\nACGT\n+\nIIII\n@read2\nTT\n+\nII\n"
	reads, err := ReadFastq(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, reads, 2)
	assert.Equal(t, "read1 well=A01", reads[0].Header)
	assert.Equal(t, "ACGT", reads[0].Sequence)
	assert.Equal(t, "IIII", reads[0].Quality)
}

func TestReadFastq_Malformed(t *testing.T) {
	cases := []string{
		">not_fastq\nACGT\n",
		"@r1\nACGT\n+\nII\n",   // quality too short
		"@r1\nACGT\nX\nIIII\n", // missing '+'
		"@r1\nACGT\n+\n",       // truncated
	}
	for _, in := range cases {
		_, err := ReadFastq(strings.NewReader(in))
		assert.Error(t, err, "input %q", in)
	}
}

func TestWriteCombined_FastaAndFastq(t *testing.T) {
	dir := t.TempDir()

	fa := filepath.Join(dir, "S_27F.fasta")
	require.NoError(t, os.WriteFile(fa, []byte(">f\nAAAA"), 0o644)) // no trailing newline

	fq := filepath.Join(dir, "S_1492R.fastq")
	require.NoError(t, os.WriteFile(fq, []byte("@r\nCCCC\n+\nIIII\n"), 0o644))

	dst := filepath.Join(dir, "out", "S_paired.fasta")
	require.NoError(t, WriteCombined(dst, []string{fa, fq}))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, ">f\nAAAA\n>r\nCCCC\n", string(got))
}

func TestWriteCombined_SkipsEmptySource(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.fasta")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	fa := filepath.Join(dir, "S_27F.fasta")
	require.NoError(t, os.WriteFile(fa, []byte(">f\nAAAA\n"), 0o644))

	dst := filepath.Join(dir, "combined.fasta")
	require.NoError(t, WriteCombined(dst, []string{empty, fa}))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, ">f\nAAAA\n", string(got))
}

func TestWriteCombined_MissingSourceErrors(t *testing.T) {
	dir := t.TempDir()
	err := WriteCombined(filepath.Join(dir, "out.fasta"), []string{filepath.Join(dir, "nope.fasta")})
	assert.Error(t, err)
}
