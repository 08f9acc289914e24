package main

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"testing"
	"unsafe"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestShadowingOrder(t *testing.T) {
	var out bytes.Buffer
	demoShadowing(&out)

	re := regexp.MustCompile(`(?m): (\d+)$`)
	var got []string
	for _, m := range re.FindAllStringSubmatch(out.String(), -1) {
		got = append(got, m[1])
	}

	want := []string{"5", "6", "7", "14", "7", "6"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("x values (-want +got):\n%s", diff)
	}
	assert.Contains(t, out.String(), "inner scope is: 14\n  The value of x in the outer scope is: 7\n")
	assert.Contains(t, out.String(), "original, mutated x is: 6\n")
	assert.Contains(t, out.String(), "→ 10800")
	assert.Equal(t, 10800, threeHoursInSeconds)
}

func TestIntegerLiterals(t *testing.T) {
	var out bytes.Buffer
	demoIntegers(&out)
	got := out.String()

	for _, want := range []string{"→ 98222", "→ 255", "→ 63", "→ 240", "→ 65", "has type int"} {
		assert.Contains(t, got, want)
	}
	assert.Contains(t, got, "uint64")
	assert.Contains(t, got, "18446744073709551615")
}

func TestFloats(t *testing.T) {
	var out bytes.Buffer
	demoFloats(&out)
	assert.Contains(t, out.String(), "→ 2 (float64)")
	assert.Contains(t, out.String(), "→ 3 (float32)")
}

func TestBooleans(t *testing.T) {
	var out bytes.Buffer
	demoBooleans(&out)
	got := out.String()

	assert.Contains(t, got, "t := true           → true\n")
	assert.Contains(t, got, "var f bool = false  → false\n")
	assert.Equal(t, 2, strings.Count(got, "→"))
}

func TestChars(t *testing.T) {
	var out bytes.Buffer
	demoChars(&out)
	got := out.String()

	assert.Contains(t, got, "z  code point U+007A  utf-8 bytes 1")
	assert.Contains(t, got, "😻  code point U+1F63B  utf-8 bytes 4")
	assert.Contains(t, got, "int32")
}

func TestTupleDestructure(t *testing.T) {
	x, y, z := newTriple().Destructure()

	assert.Equal(t, int32(69), x)
	assert.Equal(t, 3.14, y)
	assert.Equal(t, uint8(49), z)
	assert.Equal(t, uint8('1'), z)
}

func TestTupleDemo(t *testing.T) {
	var out bytes.Buffer
	demoTuples(&out)
	got := out.String()

	assert.Contains(t, got, "x = 69, y = 3.14, z = 49")
	assert.Contains(t, got, "n.Inner.Y = 3.14")
	assert.Contains(t, got, "main.triple{X:69, Y:3.14, Z:0x31}")
	assert.Contains(t, got, "nothing() == unit{} → true")
}

func TestUnit(t *testing.T) {
	assert.Equal(t, unit{}, nothing())
	assert.Zero(t, unsafe.Sizeof(unit{}))
}

func TestArrays(t *testing.T) {
	a := demoArrays(io.Discard)

	if diff := cmp.Diff([5]int{1, 2, 3, 4, 5}, a); diff != "" {
		t.Errorf("literal array (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([5]int{3, 3, 3, 3, 3}, fill(3)); diff != "" {
		t.Errorf("fill(3) (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, a[3])

	var out bytes.Buffer
	demoArrays(&out)
	assert.Contains(t, out.String(), "a[3] = 4")
}
