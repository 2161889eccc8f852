package scan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(">x\nACGT\n"), 0o644))
	return p
}

func TestIsReadFile(t *testing.T) {
	assert.True(t, IsReadFile("a_27F.fasta"))
	assert.True(t, IsReadFile("a_27F.FASTA"))
	assert.True(t, IsReadFile("a_27F.fastq.gz"))
	assert.True(t, IsReadFile("a_27F.ab1"))
	assert.False(t, IsReadFile("a_27F.txt"))
	assert.False(t, IsReadFile("a_27F"))
}

func TestInputs_FiltersAndSorts(t *testing.T) {
	dir := t.TempDir()
	b := touch(t, dir, "b_1492R.fasta")
	a := touch(t, dir, "a_27F.fa")
	touch(t, dir, "notes.txt")

	got, err := Inputs([]string{dir}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, got)
}

func TestInputs_ExplicitFilesBypassFilter(t *testing.T) {
	dir := t.TempDir()
	odd := touch(t, dir, "weird.reads")

	got, err := Inputs(nil, []string{odd})
	require.NoError(t, err)
	assert.Equal(t, []string{odd}, got)
}

func TestInputs_Deduplicates(t *testing.T) {
	dir := t.TempDir()
	a := touch(t, dir, "a_27F.fasta")

	got, err := Inputs([]string{dir}, []string{a})
	require.NoError(t, err)
	assert.Equal(t, []string{a}, got)
}

func TestInputs_MissingDirErrors(t *testing.T) {
	_, err := Inputs([]string{filepath.Join(t.TempDir(), "nope")}, nil)
	assert.Error(t, err)
}

func TestInputs_MissingFileErrors(t *testing.T) {
	_, err := Inputs(nil, []string{"definitely_missing.fasta"})
	assert.Error(t, err)
}
