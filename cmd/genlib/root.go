// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/db47h/genlib"
	"github.com/db47h/genlib/internal/config"
	"github.com/db47h/genlib/internal/ctxlog"
	"github.com/spf13/cobra"
)

type app struct {
	out    io.Writer
	errOut io.Writer
	cfg    *config.Config

	configFile string
	logLevel   string
	format     string
	skip       bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}
	root := &cobra.Command{
		Use:   "genlib",
		Short: "Read genlib cell libraries.",
		Long: `genlib reads genlib cell libraries, compiles the function of each ` +
			`gate into a truth table and prints the resulting gate catalog.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "HCL configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	pf.BoolVar(&a.skip, "skip-invalid", false, "skip rejected gate declarations")

	dump := newDumpCmd(a)
	dump.Flags().StringVar(&a.format, "format", "", "output format: text or json")
	root.AddCommand(dump, newCheckCmd(a))
	return root
}

// setup loads the configuration, applies command line overrides and sets up
// the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if a.configFile != "" {
		var err error
		if cfg, err = config.Load(a.configFile); err != nil {
			return err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("skip-invalid") {
		cfg.SkipInvalid = a.skip
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	lvl, _ := cfg.Level()
	a.cfg = cfg

	logger := slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: lvl}))
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(ctxlog.WithLogger(ctx, logger))
	return nil
}

// load reads the named library. Rejected declarations are passed to report
// when skipping is enabled.
func (a *app) load(ctx context.Context, name string, report func(err error)) (genlib.Catalog, error) {
	logger := ctxlog.FromContext(ctx)
	var c genlib.Catalog
	b := genlib.NewBuilder(&c)
	b.Logger = logger
	opts := []genlib.Option{genlib.WithLogger(logger)}
	if a.cfg.SkipInvalid {
		opts = append(opts, genlib.SkipInvalid(report))
	}
	if err := genlib.ReadFile(name, b, opts...); err != nil {
		return nil, err
	}
	return c, nil
}
