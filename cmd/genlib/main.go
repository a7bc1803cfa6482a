// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command genlib reads genlib cell libraries and prints their gate catalog.
//
//	genlib dump [--format text|json] lib.genlib
//	genlib check lib.genlib
//
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
