// cmd/microseq/main.go
package main

import (
	"github.com/jose-cantu/MicroSeq/internal/app"
	"github.com/jose-cantu/MicroSeq/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
