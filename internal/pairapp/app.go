// internal/pairapp/app.go
package pairapp

import (
	"context"
	"io"

	"github.com/jose-cantu/MicroSeq/internal/app"
)

// RunContext is the manifest-only entrypoint: it pairs and reports but
// never invokes the assembler, whatever flags the caller passes.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return app.RunContextNamed(ctx, "microseq-pair", true, argv, stdout, stderr)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
