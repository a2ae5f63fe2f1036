// Package cli implements csvtool, the command line front end of the CSV
// engine. Every command reads and writes through an afero.Fs so tests can
// run against memory.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/regression1607/meridian-frontend-sub000/internal/core"
	"github.com/regression1607/meridian-frontend-sub000/internal/logging"
)

// userError is a usage problem reported without a stack of context.
type userError struct {
	msg string
}

func (e userError) Error() string { return e.msg }

func newUserError(format string, args ...any) error {
	return userError{msg: fmt.Sprintf(format, args...)}
}

// app carries state shared by all commands.
type app struct {
	fs       afero.Fs
	out      io.Writer
	maxSize  int64
	logLevel string
}

// New builds the csvtool root command.
func New(fs afero.Fs, out io.Writer) *cobra.Command {
	a := &app{fs: fs, out: out}

	root := &cobra.Command{
		Use:           "csvtool",
		Short:         "Parse, validate and generate school CSV files",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(logging.New(cmd.ErrOrStderr(), a.logLevel, "text"))
		},
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.Int64Var(&a.maxSize, "max-size", core.MaxFileSize, "largest accepted input file in bytes")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(
		a.templatesCmd(),
		a.templateCmd(),
		a.parseCmd(),
		a.validateCmd(),
		a.convertCmd(),
		a.exportCmd(),
	)
	return root
}

// parseFile reads and parses a CSV file from the app filesystem.
func (a *app) parseFile(ctx context.Context, path string) (core.ParseResult, error) {
	f, err := a.fs.Open(path)
	if err != nil {
		return core.ParseResult{}, err
	}
	defer f.Close()

	text, err := core.ReadCSVFile(ctx, filepath.Base(path), f, a.maxSize)
	if err != nil {
		return core.ParseResult{}, err
	}

	result := core.ParseCSV(text)
	logging.FromContext(ctx).Debug("parsed file",
		"file", path,
		"rows", len(result.Data),
		"errors", len(result.Errors),
	)
	return result, nil
}

// writeFile writes content to path, refusing to replace an existing file
// unless force is set.
func (a *app) writeFile(path string, content []byte, force bool) error {
	if !force {
		exists, err := afero.Exists(a.fs, path)
		if err != nil {
			return err
		}
		if exists {
			return newUserError("%s already exists, use --force to replace it", path)
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := a.fs.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := afero.WriteFile(a.fs, path, content, 0o644); err != nil {
		return err
	}

	fmt.Fprintln(a.out, path, "created")
	return nil
}

// printJSON writes v as indented JSON.
func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
