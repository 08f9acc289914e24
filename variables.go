package main

import (
	"fmt"
	"io"
)

// threeHoursInSeconds is a constant expression, evaluated at compile time.
// Constants are the only bindings in Go that can never be reassigned.
const threeHoursInSeconds = 60 * 60 * 3

// demoShadowing walks through mutation, shadowing and scope exit.
//
// Every variable declared with := or var is mutable. Shadowing happens when
// an inner block declares a new variable with the same name: the outer one is
// hidden, not modified, and comes back when the block ends.
//
//	x := 5        → 5
//	x = 6         → 6   (same variable, new value)
//	{ x := x + 1  → 7   (new variable, initialised from the outer x)
//	  { x := x * 2 → 14 }
//	  x           → 7  }  ("outer scope": the first shadow)
//	x             → 6     (the original variable)
func demoShadowing(w io.Writer) {
	section(w, "Variables — mutation, shadowing and scope")

	// ── Mutation ─────────────────────────────────────────────────────────────
	x := 5
	fmt.Fprintf(w, "  The value of x is: %d\n", x)

	x = 6
	fmt.Fprintf(w, "  The value of x is: %d\n", x)

	// ── Shadowing ────────────────────────────────────────────────────────────
	// Go refuses `x := x + 1` in the same scope ("no new variables on left
	// side of :="), so each shadow needs its own block.
	{
		x := x + 1
		fmt.Fprintf(w, "  The value of x in the first shadow is: %d\n", x)

		{
			x := x * 2
			fmt.Fprintf(w, "  The value of x in the inner scope is: %d\n", x)
		}

		fmt.Fprintf(w, "  The value of x in the outer scope is: %d\n", x)
	}

	// The first shadow is gone; this is the variable that was set to 6.
	fmt.Fprintln(w, "  (leaving the first shadow's block too)")
	fmt.Fprintf(w, "  The value of the original, mutated x is: %d\n", x)

	// ── Constants ────────────────────────────────────────────────────────────
	fmt.Fprintln(w, "\n  Constants:")
	fmt.Fprintf(w, "  const threeHoursInSeconds = 60 * 60 * 3 → %d\n", threeHoursInSeconds)
	fmt.Fprintln(w, "  threeHoursInSeconds = 1  ← compile error: cannot assign to a constant")
	fmt.Fprintln(w, "  the compiler rejects unused local variables; unused constants are fine")
}
