package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

// An array's length is part of its type: [5]int and [6]int are different
// types, and the value is copied on assignment and when passed to a function.

// fill returns a [5]int with every element set to v. Go has no [v; n]
// literal; the zero-valued array is filled in place instead.
func fill(v int) [5]int {
	var a [5]int
	for i := range a {
		a[i] = v
	}
	return a
}

// demoArrays prints the two construction forms and one indexing example, and
// returns the literal array for the index loop.
func demoArrays(w io.Writer) [5]int {
	section(w, "Arrays — fixed length, value semantics")

	a := [5]int{1, 2, 3, 4, 5}
	b := fill(3)

	fmt.Fprintf(w, "  a := [5]int{1, 2, 3, 4, 5}  → %v\n", a)
	fmt.Fprintf(w, "  b := fill(3)                → %v\n", b)
	fmt.Fprintf(w, "  len(a) = %d, type %T\n", len(a), a)

	fmt.Fprintf(w, "\n  a[3] = %d  (indices start at 0)\n", a[3])

	return a
}

// indexLoop keeps asking for an index into a and prints the element.
//
// Input that is not a number is treated as index 0. An index past the end
// stops the loop with *IndexOutOfRangeError. End of input stops it with nil.
func indexLoop(in *bufio.Reader, w io.Writer, log *zap.Logger, a [5]int) error {
	for {
		fmt.Fprintf(w, "\n  Enter an array index (0-%d); any other number leaves the array demo: ", len(a)-1)

		line, err := readLine(in)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(w)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read index: %w", err)
		}

		idx, err := parseChoice(line)
		if err != nil {
			var perr *ParseError
			if errors.As(err, &perr) {
				log.Debug("index is not a number, using 0", zap.String("input", perr.Input), zap.Error(perr.Err))
			}
			fmt.Fprintln(w, "\n  Not a valid number, using index 0.")
			idx = 0
		}

		if idx >= uint64(len(a)) {
			return &IndexOutOfRangeError{Index: idx, Len: len(a)}
		}

		fmt.Fprintf(w, "  The value of the element at index %d is: %d\n", idx, a[idx])
	}
}
