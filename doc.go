// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

/*
Package genlib reads genlib cell libraries into a catalog of gates.

A genlib library describes the standard cells available to technology mapping:

	GATE nand2 2 O=!(a*b);
	PIN * INV 1 999 1 0.2 1 0.2
	GATE aoi21 3 Y=!(A*B+C);
	PIN A INV 1 999 1.2 0.3 1.2 0.3
	PIN B INV 1 999 1.2 0.3 1.2 0.3
	PIN C INV 1 999 1 0.2 1 0.2

Read parses a library and drives a Handler with one OnGate call per GATE
declaration. A Builder is a Handler that turns each declaration into a Gate,
with its function compiled into a truth table, and appends it to a Catalog
owned by the caller:

	var c genlib.Catalog
	err := genlib.ReadFile("lib.genlib", genlib.NewBuilder(&c))

Gates get sequential IDs in declaration order, starting at 0. A PIN entry named
"*" applies to all inputs of a gate: it is expanded into one pin per input,
named "a", "b", "c" and so on.

The function of a gate only depends on its expression and input count. When
the expression uses the single letter names "a" to "z", "a" is input
variable 0 of the truth table, "b" variable 1, and so on. Otherwise inputs
are numbered in order of first appearance in the expression, so that
"Y=A*!S+B*S" has A, S and B as variables 0, 1 and 2 whatever the order of
its PIN entries.

*/
package genlib
