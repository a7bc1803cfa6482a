// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"fmt"

	"github.com/db47h/genlib/internal/ctxlog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Check a library and report rejected gate declarations.",
		Long: "check reads a library, skipping and reporting every rejected gate " +
			"declaration on standard error. It fails if any declaration was " +
			"rejected. Syntax errors stop the check.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cfg.SkipInvalid = true
			var rejected int
			c, err := a.load(cmd.Context(), args[0], func(err error) {
				rejected++
				fmt.Fprintln(a.errOut, err)
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s: %d gates, %d rejected\n", args[0], len(c), rejected)
			ctxlog.FromContext(cmd.Context()).Debug("check done", "file", args[0], "gates", len(c), "rejected", rejected)
			if rejected > 0 {
				return errors.Errorf("%d gate declarations rejected", rejected)
			}
			return nil
		},
	}
}
