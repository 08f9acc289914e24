package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"
)

const quitChoice = 8

// option is one numbered menu entry.
type option struct {
	title string
	run   func(m *Menu) error
}

// static adapts a demo that only prints.
func static(demo func(io.Writer)) func(*Menu) error {
	return func(m *Menu) error {
		demo(m.out)
		return nil
	}
}

// Menu reads choices from in and runs the matching demo, writing to out.
type Menu struct {
	in      *bufio.Reader
	out     io.Writer
	log     *zap.Logger
	options []option
}

// NewMenu wires the seven demos to choices 1 through 7. Choice 8 quits.
func NewMenu(in io.Reader, out io.Writer, log *zap.Logger) *Menu {
	if log == nil {
		log = zap.NewNop()
	}
	return &Menu{
		in:  bufio.NewReader(in),
		out: out,
		log: log,
		options: []option{
			{"Variables, mutability and shadowing", static(demoShadowing)},
			{"Integer types", static(demoIntegers)},
			{"Floating-point types", static(demoFloats)},
			{"Booleans", static(demoBooleans)},
			{"Characters (runes)", static(demoChars)},
			{"Tuples", static(demoTuples)},
			{"Arrays", (*Menu).arrays},
		},
	}
}

func (m *Menu) arrays() error {
	a := demoArrays(m.out)
	return indexLoop(m.in, m.out, m.log, a)
}

func (m *Menu) printOptions() {
	fmt.Fprintln(m.out, "Choose a topic:")
	for i, o := range m.options {
		fmt.Fprintf(m.out, "  %d. %s\n", i+1, o.title)
	}
	fmt.Fprintf(m.out, "  %d. Quit\n", quitChoice)
	fmt.Fprint(m.out, "> ")
}

// Run loops until the user picks Quit or input ends. Bad input never stops
// the loop; only a failing read does.
func (m *Menu) Run() error {
	for {
		m.printOptions()

		line, err := readLine(m.in)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(m.out)
			m.log.Debug("input closed, leaving menu")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read menu choice: %w", err)
		}

		choice, err := parseChoice(line)
		if err != nil {
			m.log.Debug("menu choice is not a number", zap.Error(err))
			fmt.Fprintln(m.out, "invalid input")
			continue
		}

		quit, err := m.Dispatch(choice)
		if err != nil {
			return err
		}
		if quit {
			m.log.Debug("quit selected")
			return nil
		}
	}
}

// Dispatch runs a single choice. Choices 1-7 print their demo between two
// blank lines, 8 reports quit, anything else prints "invalid input".
//
// A demo that stops on a bad array index is reported and does not end the
// menu; the returned error is reserved for input failures.
func (m *Menu) Dispatch(choice uint64) (quit bool, err error) {
	switch {
	case choice == quitChoice:
		return true, nil
	case choice < 1 || choice > uint64(len(m.options)):
		m.log.Debug("menu choice out of range", zap.Uint64("choice", choice))
		fmt.Fprintln(m.out, "invalid input")
		return false, nil
	}

	o := m.options[choice-1]
	m.log.Debug("running demo", zap.Uint64("choice", choice), zap.String("title", o.title))

	fmt.Fprintln(m.out)
	err = o.run(m)
	var oob *IndexOutOfRangeError
	if errors.As(err, &oob) {
		m.log.Info("array demo ended", zap.Uint64("index", oob.Index), zap.Int("len", oob.Len))
		fmt.Fprintf(m.out, "  Leaving the array demo: %v\n", oob)
		err = nil
	}
	fmt.Fprintln(m.out)

	if err != nil {
		return false, fmt.Errorf("%s: %w", o.title, err)
	}
	return false, nil
}
