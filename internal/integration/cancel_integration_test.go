// internal/integration/cancel_integration_test.go
package integration

import (
	"bytes"
	"context"
	"testing"

	"github.com/jose-cantu/MicroSeq/internal/app"
)

func TestCancelledContextExit130(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "S1_27F.fasta", ">f\nAC\n")
	write(t, dir, "S1_1492R.fasta", ">r\nGT\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out, errBuf bytes.Buffer
	code := app.RunContext(ctx, []string{"--input", dir, "--dry-run"}, &out, &errBuf)
	if code != 130 {
		t.Fatalf("expected exit 130 on cancel, got %d (err=%s)", code, errBuf.String())
	}
}
