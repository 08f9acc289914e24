package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseError is returned when a line of input is not a non-negative integer.
// It wraps the strconv error, so errors.Is(err, strconv.ErrSyntax) and
// errors.Is(err, strconv.ErrRange) keep working.
//
// Callers never let it escape: the menu re-prompts and the array loop falls
// back to index 0.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IndexOutOfRangeError ends the array sub-loop. Index is what the user typed,
// Len is the length of the array being indexed.
type IndexOutOfRangeError struct {
	Index uint64
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range [0,%d)", e.Index, e.Len)
}

// readLine returns the next line of r, terminator included. A final line
// without a newline is still returned; io.EOF comes back only once nothing
// is left. Lines have no length limit.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		return line, nil
	}
	return line, err
}

// parseChoice trims a raw input line and parses it as an unsigned integer.
func parseChoice(line string) (uint64, error) {
	s := strings.TrimSpace(line)
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &ParseError{Input: s, Err: err}
	}
	return n, nil
}
