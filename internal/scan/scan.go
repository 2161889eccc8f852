// internal/scan/scan.go
package scan

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Extensions recognized as sequence-read inputs. Compressed variants are
// accepted by peeling a trailing .gz first.
var readExts = map[string]bool{
	".fasta": true,
	".fa":    true,
	".fna":   true,
	".fastq": true,
	".fq":    true,
	".ab1":   true,
	".seq":   true,
}

// IsReadFile reports whether name has a recognized read-file extension.
func IsReadFile(name string) bool {
	name = strings.TrimSuffix(strings.ToLower(name), ".gz")
	return readExts[filepath.Ext(name)]
}

// Inputs merges directory scans with explicit files into one stable,
// duplicate-free list. Directories are read non-recursively and filtered by
// extension; explicit files are taken as-is so odd names can still be fed
// in deliberately. The result is sorted: deterministic input order is what
// makes keep-first/keep-last policies reproducible.
func Inputs(dirs, files []string) ([]string, error) {
	seen := map[string]bool{}
	var out []string

	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() || !IsReadFile(e.Name()) {
				continue
			}
			add(filepath.Join(dir, e.Name()))
		}
	}

	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			return nil, fmt.Errorf("input %s: %w", f, err)
		}
		add(f)
	}

	sort.Strings(out)
	return out, nil
}
