// internal/seqio/fastq.go
package seqio

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// FastqRead is one FASTQ record.
type FastqRead struct {
	Header   string // without the leading '@'
	Sequence string
	Quality  string
}

// ReadFastq parses all records from r. Four-line records only; multi-line
// FASTQ does not occur in Sanger exports.
func ReadFastq(r io.Reader) ([]FastqRead, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var reads []FastqRead
	line := 0
	for sc.Scan() {
		header := strings.TrimSpace(sc.Text())
		line++
		if header == "" {
			continue
		}
		if !strings.HasPrefix(header, "@") {
			return nil, fmt.Errorf("fastq: line %d: expected '@', got %q", line, header)
		}
		var body [3]string
		for i := 0; i < 3; i++ {
			if !sc.Scan() {
				return nil, fmt.Errorf("fastq: truncated record at line %d", line)
			}
			body[i] = strings.TrimSpace(sc.Text())
			line++
		}
		if !strings.HasPrefix(body[1], "+") {
			return nil, fmt.Errorf("fastq: line %d: expected '+', got %q", line-1, body[1])
		}
		if len(body[2]) != len(body[0]) {
			return nil, fmt.Errorf("fastq: record %q: quality length %d != sequence length %d",
				header, len(body[2]), len(body[0]))
		}
		reads = append(reads, FastqRead{
			Header:   strings.TrimPrefix(header, "@"),
			Sequence: body[0],
			Quality:  body[2],
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return reads, nil
}

// WriteFastaFromFastq writes reads as FASTA records.
func WriteFastaFromFastq(w io.Writer, reads []FastqRead) error {
	for _, r := range reads {
		if _, err := fmt.Fprintf(w, ">%s\n%s\n", r.Header, r.Sequence); err != nil {
			return err
		}
	}
	return nil
}
