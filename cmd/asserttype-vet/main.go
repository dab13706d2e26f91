// Command asserttype-vet runs the asserttype analyzer as a standalone vet
// tool, suitable for "go vet -vettool".
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/funvibe/typeasserts/internal/gohost"
)

func main() { singlechecker.Main(gohost.Analyzer) }
