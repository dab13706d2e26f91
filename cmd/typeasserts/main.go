// Command typeasserts type-checks Go packages and verifies their
// typeasserts.AssertType calls.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/funvibe/typeasserts/pkg/cli"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Main(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()
	os.Exit(code)
}
