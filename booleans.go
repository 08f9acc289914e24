package main

import (
	"fmt"
	"io"
)

func demoBooleans(w io.Writer) {
	section(w, "Booleans")

	t := true
	var f bool = false // explicit type; the zero value of bool is also false

	fmt.Fprintf(w, "  t := true           → %v\n", t)
	fmt.Fprintf(w, "  var f bool = false  → %v\n", f)
}
