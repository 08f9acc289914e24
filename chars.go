package main

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// demoChars prints an ASCII rune and a multi-byte one.
//
// A rune is an int32 holding one Unicode code point. Its UTF-8 encoding can
// take 1 to 4 bytes, which is why len() of a string counts bytes, not runes.
func demoChars(w io.Writer) {
	section(w, "Characters — runes and UTF-8")

	c := 'z'
	heart := '😻'

	for _, r := range []rune{c, heart} {
		fmt.Fprintf(w, "  %c  code point %U  utf-8 bytes %d\n", r, r, utf8.RuneLen(r))
	}
	fmt.Fprintf(w, "  type of 'z' is %T (alias rune)\n", c)
}
