// cmd/microseq-pair/main.go
package main

import (
	"github.com/jose-cantu/MicroSeq/internal/appshell"
	"github.com/jose-cantu/MicroSeq/internal/pairapp"
)

func main() {
	appshell.Main(pairapp.RunContext)
}
