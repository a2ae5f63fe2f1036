// Command csvtool parses, validates and generates school CSV files from
// the command line.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"github.com/regression1607/meridian-frontend-sub000/internal/cli"
	_ "github.com/regression1607/meridian-frontend-sub000/internal/core/tables" // Register all templates
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.New(afero.NewOsFs(), os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
