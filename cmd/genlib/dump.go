// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/db47h/genlib"
	"github.com/db47h/genlib/internal/config"
	"github.com/spf13/cobra"
)

func newDumpCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dump <file>",
		Short: "Print the gate catalog of a library.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.load(cmd.Context(), args[0], nil)
			if err != nil {
				return err
			}
			if a.cfg.Format == config.FormatJSON {
				return writeJSON(a.out, c)
			}
			return writeText(a.out, c)
		},
	}
}

func writeText(w io.Writer, c genlib.Catalog) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tAREA\tINPUTS\tFUNCTION\tEXPRESSION")
	for _, g := range c {
		fmt.Fprintf(tw, "%d\t%s\t%g\t%d\t%s\t%s\n", g.ID, g.Name, g.Area, g.NumVars, g.Function.Hex(), g.Expression)
	}
	return tw.Flush()
}

type jsonPin struct {
	Name            string  `json:"name"`
	Phase           string  `json:"phase"`
	InputLoad       float64 `json:"input_load"`
	MaxLoad         float64 `json:"max_load"`
	RiseBlockDelay  float64 `json:"rise_block_delay"`
	RiseFanoutDelay float64 `json:"rise_fanout_delay"`
	FallBlockDelay  float64 `json:"fall_block_delay"`
	FallFanoutDelay float64 `json:"fall_fanout_delay"`
}

type jsonGate struct {
	ID         uint      `json:"id"`
	Name       string    `json:"name"`
	Expression string    `json:"expression"`
	Inputs     int       `json:"inputs"`
	Function   string    `json:"function"`
	Area       float64   `json:"area"`
	Pins       []jsonPin `json:"pins"`
}

func writeJSON(w io.Writer, c genlib.Catalog) error {
	gs := make([]jsonGate, len(c))
	for i, g := range c {
		pins := make([]jsonPin, len(g.Pins))
		for j, p := range g.Pins {
			pins[j] = jsonPin{p.Name, p.Phase.String(), p.InputLoad, p.MaxLoad,
				p.RiseBlockDelay, p.RiseFanoutDelay, p.FallBlockDelay, p.FallFanoutDelay}
		}
		gs[i] = jsonGate{g.ID, g.Name, g.Expression, g.NumVars, g.Function.Hex(), g.Area, pins}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(gs)
}
