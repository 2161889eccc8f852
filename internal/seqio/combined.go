// internal/seqio/combined.go
package seqio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

func isFastq(path string) bool {
	p := strings.TrimSuffix(strings.ToLower(path), ".gz")
	ext := filepath.Ext(p)
	return ext == ".fastq" || ext == ".fq"
}

// WriteCombined concatenates source read files into one FASTA at dst, the
// per-sample assembly input. FASTQ sources are converted on the fly; FASTA
// sources are copied through with a guaranteed trailing newline so records
// never run together. Empty sources are skipped.
func WriteCombined(dst string, sources []string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(out)

	for _, src := range sources {
		if err := appendSource(w, src); err != nil {
			_ = out.Close()
			return fmt.Errorf("combine %s: %w", src, err)
		}
	}

	if err := w.Flush(); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func appendSource(w *bufio.Writer, src string) error {
	r, err := Open(src)
	if err != nil {
		return err
	}
	defer r.Close()

	if isFastq(src) {
		reads, err := ReadFastq(r)
		if err != nil {
			return err
		}
		return WriteFastaFromFastq(w, reads)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return nil
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	if data[len(data)-1] != '\n' {
		return w.WriteByte('\n')
	}
	return nil
}
