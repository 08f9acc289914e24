package main

import (
	"fmt"
	"io"
)

func demoFloats(w io.Writer) {
	section(w, "Floating-point types — float64 and float32")

	x := 2.0          // float64: the default type of an untyped float constant
	var y float32 = 3 // float32 has to be asked for

	fmt.Fprintf(w, "  x := 2.0           → %v (%T)\n", x, x)
	fmt.Fprintf(w, "  var y float32 = 3  → %v (%T)\n", y, y)

	fmt.Fprintln(w, "\n  Note:")
	fmt.Fprintln(w, "  • both types are IEEE-754; float32 is single, float64 double precision")
	fmt.Fprintln(w, "  • float64 is the default because on modern CPUs it is about as fast")
	fmt.Fprintln(w, "    as float32 while being far more precise")
}
