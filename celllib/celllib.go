// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package celllib provides a small reference genlib cell library.
//
// The library holds constants, buffers, inverters, NAND/NOR gates up to 4
// and 3 inputs, AND/OR, XOR/XNOR, AOI21/OAI21, a 2:1 multiplexer and a 3-input
// majority gate.
//
//	c, err := celllib.Load()
//	if err != nil {
//		// handle error
//	}
//	nand2, _ := c.Find("nand2")
//
package celllib

import (
	_ "embed"
	"io"
	"strings"

	"github.com/db47h/genlib"
)

// Name is the file name reported in errors for the embedded library.
//
const Name = "cells.genlib"

//go:embed cells.genlib
var source string

// Source returns a reader over the genlib source of the library.
//
func Source() io.Reader {
	return strings.NewReader(source)
}

// Load reads the library into a new catalog.
//
func Load(opts ...genlib.Option) (genlib.Catalog, error) {
	var c genlib.Catalog
	opts = append([]genlib.Option{genlib.WithFilename(Name)}, opts...)
	if err := genlib.Read(Source(), genlib.NewBuilder(&c), opts...); err != nil {
		return nil, err
	}
	return c, nil
}
