// Command sedmlcheck reads SED-ML files, reports their diagnostics and can
// write them back out in normalized form.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/GodYY/sedml"
	"go.uber.org/zap"
)

// ExitError carries the process exit code of a failed run.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

func main() {
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out io.Writer, args []string) error {
	flagSet := flag.NewFlagSet("sedmlcheck", flag.ContinueOnError)
	flagSet.SetOutput(out)

	flagSet.Usage = func() {
		fmt.Fprint(out, `
sedmlcheck - read and validate SED-ML documents.

Usage:
  sedmlcheck [options] FILE...

Options:
`)
		flagSet.PrintDefaults()
	}

	check := flagSet.Bool("check", false, "Run the consistency check after reading.")
	output := flagSet.String("o", "", "Write the normalized document to this path (single input only).")
	indent := flagSet.String("indent", "  ", "Indentation used when writing.")
	verbose := flagSet.Bool("v", false, "Log decoding at debug level to stderr.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return &ExitError{Code: 2, Message: err.Error()}
	}

	files := flagSet.Args()
	if len(files) == 0 {
		flagSet.Usage()
		return &ExitError{Code: 2, Message: "no input files"}
	}
	if *output != "" && len(files) != 1 {
		return &ExitError{Code: 2, Message: "-o needs exactly one input file"}
	}

	logger := zap.NewNop()
	if *verbose {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			return err
		}
	}
	defer logger.Sync()
	sedml.SetLogger(logger)
	defer sedml.SetLogger(nil)

	errorCount := 0
	for _, path := range files {
		doc, err := sedml.ReadDocumentFile(path)
		if doc == nil {
			fmt.Fprintf(out, "%s: %v\n", path, err)
			errorCount++
			continue
		}

		if *check {
			doc.CheckConsistency()
		}

		for _, d := range doc.ErrorLog().Diagnostics() {
			fmt.Fprintf(out, "%s:%d:%d: %s\n", path, d.Line, d.Column, d.Error())
		}

		n := doc.NumErrors()
		errorCount += n
		logger.Info("checked", zap.String("path", path), zap.Int("errors", n))

		if *output != "" {
			if err := sedml.WriteDocumentFile(*output, doc, sedml.WithIndent(*indent)); err != nil {
				return err
			}
		}
	}

	if errorCount > 0 {
		return &ExitError{Code: 1, Message: fmt.Sprintf("%d error(s)", errorCount)}
	}

	return nil
}
