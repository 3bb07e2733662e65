// SPDX-License-Identifier: Apache-2.0
package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"solgen/internal/blueprint"
	"solgen/internal/builder"
	"solgen/internal/errors"
	"solgen/internal/options"
)

var log = commonlog.GetLogger("solgen")

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options.Options{}

	cmd := &cobra.Command{
		Use:           "solgen <blueprint>",
		Short:         "Generate a Solidity contract from a JSON or YAML blueprint",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Load(cmd.Flags()); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), color.RedString("error: %s", err))
				return err
			}
			return generate(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, args[0])
		},
	}
	opts.BindFlags(cmd.Flags())

	return cmd
}

func generate(stdout, stderr io.Writer, opts *options.Options, path string) error {
	if opts.NoColor {
		color.NoColor = true
	}
	verbosity := 0
	if opts.Verbose {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)
	log.Debug(opts.Dump())

	startTime := time.Now()

	source, code, err := render(opts, path)
	duration := formatDuration(time.Since(startTime))
	if err != nil {
		report(stderr, path, source, err)
		fmt.Fprintln(stderr, color.RedString("Generation failed after %s", duration))
		return err
	}

	if opts.Output == "" {
		fmt.Fprint(stdout, code)
	} else if err := os.WriteFile(opts.Output, []byte(code), 0o644); err != nil {
		fmt.Fprintln(stderr, color.RedString("error: %s", err))
		return err
	}

	fmt.Fprintln(stderr, color.GreenString("Successfully generated %s in %s", path, duration))
	return nil
}

// render returns the blueprint source along with the generated contract
func render(opts *options.Options, path string) (source, code string, err error) {
	bp, source, err := blueprint.LoadFile(path)
	if err != nil {
		return source, "", err
	}
	c, err := blueprint.Build(bp)
	if err != nil {
		return source, "", err
	}
	code, err = builder.Render(c, opts.BuilderOptions()...)
	return source, code, err
}

func report(w io.Writer, path, source string, err error) {
	var genErr *errors.GenerationError
	if stderrors.As(err, &genErr) {
		fmt.Fprint(w, errors.NewErrorReporter(path, source).FormatError(genErr))
		return
	}
	fmt.Fprintln(w, color.RedString("error: %s", err))
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
