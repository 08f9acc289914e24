package main

import (
	"fmt"
	"io"
)

// Go has no tuple type. The two things a tuple is used for map onto:
//   • grouping heterogeneous values  → a struct (here with positional names)
//   • returning several values       → multiple return values
//
// A struct of comparable fields is itself comparable, so == works on it.

// triple groups three values of different types.
type triple struct {
	X int32
	Y float64
	Z uint8
}

// Destructure returns the fields as multiple values, the Go way of unpacking.
func (t triple) Destructure() (int32, float64, uint8) {
	return t.X, t.Y, t.Z
}

// nested embeds a triple inside another group.
type nested struct {
	Inner triple
	Label string
}

// unit carries no information. Every value of it is equal to every other,
// and it occupies zero bytes.
type unit struct{}

// nothing does nothing and says so explicitly.
func nothing() unit { return unit{} }

func newTriple() triple {
	return triple{X: 69, Y: 3.14, Z: '1'}
}

func demoTuples(w io.Writer) {
	section(w, "Tuples — structs and multiple return values")

	tup := newTriple()

	// ── Field access by position ─────────────────────────────────────────────
	fmt.Fprintln(w, "  Fields:")
	fmt.Fprintf(w, "  tup.X = %d\n", tup.X)
	fmt.Fprintf(w, "  tup.Y = %v\n", tup.Y)
	fmt.Fprintf(w, "  tup.Z = %d (%q)\n", tup.Z, rune(tup.Z))

	// ── Nesting ──────────────────────────────────────────────────────────────
	n := nested{Inner: tup, Label: "outer"}
	fmt.Fprintln(w, "\n  Nested access:")
	fmt.Fprintf(w, "  n.Inner.Y = %v\n", n.Inner.Y)
	fmt.Fprintf(w, "  n.Label   = %s\n", n.Label)

	// ── Destructuring ────────────────────────────────────────────────────────
	x, y, z := tup.Destructure()
	fmt.Fprintln(w, "\n  Destructured with x, y, z := tup.Destructure():")
	fmt.Fprintf(w, "  x = %d, y = %v, z = %d\n", x, y, z)

	// ── Generic representation ───────────────────────────────────────────────
	fmt.Fprintln(w, "\n  Printed with the generic verbs:")
	fmt.Fprintf(w, "  %%v  → %v\n", n)
	fmt.Fprintf(w, "  %%+v → %+v\n", n)
	fmt.Fprintf(w, "  %%#v → %#v\n", tup)

	// ── Unit ─────────────────────────────────────────────────────────────────
	// A Go function with no result returns nothing at all; there is no value
	// to compare. An explicit zero-sized type gives us one.
	fmt.Fprintln(w, "\n  Unit value:")
	fmt.Fprintf(w, "  nothing() == unit{} → %v\n", nothing() == unit{})
}
