package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"
)

type intKind struct {
	name   string
	bits   string
	signed bool
	min    string
	max    string
}

// intKinds lists every predeclared integer type. int, uint and uintptr take
// the platform word size, which strconv.IntSize reports.
var intKinds = []intKind{
	{"int8", "8", true, strconv.Itoa(math.MinInt8), strconv.Itoa(math.MaxInt8)},
	{"int16", "16", true, strconv.Itoa(math.MinInt16), strconv.Itoa(math.MaxInt16)},
	{"int32 / rune", "32", true, strconv.Itoa(math.MinInt32), strconv.Itoa(math.MaxInt32)},
	{"int64", "64", true, strconv.FormatInt(math.MinInt64, 10), strconv.FormatInt(math.MaxInt64, 10)},
	{"int", "arch", true, strconv.Itoa(math.MinInt), strconv.Itoa(math.MaxInt)},
	{"uint8 / byte", "8", false, "0", strconv.FormatUint(math.MaxUint8, 10)},
	{"uint16", "16", false, "0", strconv.FormatUint(math.MaxUint16, 10)},
	{"uint32", "32", false, "0", strconv.FormatUint(math.MaxUint32, 10)},
	{"uint64", "64", false, "0", strconv.FormatUint(math.MaxUint64, 10)},
	{"uint", "arch", false, "0", strconv.FormatUint(math.MaxUint, 10)},
	{"uintptr", "arch", false, "0", "—"},
}

// demoIntegers prints the integer type table and the numeric literal forms.
func demoIntegers(w io.Writer) {
	section(w, "Integer types — widths, signedness, literals")

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  Type\tBits\tSigned\tMin\tMax")
	for _, k := range intKinds {
		fmt.Fprintf(tw, "  %s\t%s\t%v\t%s\t%s\n", k.name, k.bits, k.signed, k.min, k.max)
	}
	tw.Flush()
	fmt.Fprintf(w, "  (arch = %d bits on this machine; there is no 128-bit integer)\n", strconv.IntSize)

	// ── Literals ─────────────────────────────────────────────────────────────
	// Underscores are allowed between digits in any base.
	fmt.Fprintln(w, "\n  Integer literals:")
	fmt.Fprintf(w, "  decimal  98_222       → %d\n", 98_222)
	fmt.Fprintf(w, "  hex      0xff         → %d\n", 0xff)
	fmt.Fprintf(w, "  octal    0o77         → %d\n", 0o77)
	fmt.Fprintf(w, "  binary   0b1111_0000  → %d\n", 0b1111_0000)
	fmt.Fprintf(w, "  byte     byte('A')    → %d\n", byte('A'))

	// Untyped constants default to int when nothing else fixes the type.
	fmt.Fprintf(w, "\n  x := 42 has type %T\n", 42)
}
