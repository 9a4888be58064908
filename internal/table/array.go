package table

import (
	"fmt"
	"strconv"
	"strings"

	"map2d-testgen/primitive"
)

// Array is one breakpoint table ready to be declared in the harness.
type Array struct {
	Ref  ArrayRef           `yaml:"ref"`
	Kind primitive.KindEnum `yaml:"-"`
	Type string             `yaml:"type"`
	Axis Axis               `yaml:"axis"`
	Size int                `yaml:"size"`
	// Values holds the scaled literals, without separators or padding.
	Values []string `yaml:"values"`
	// Literal is the aligned initializer, e.g. " { -128,  ...  127 };".
	Literal string `yaml:"literal"`
}

// Multiplier returns the factor applied to raw breakpoints stored as kind.
func Multiplier(kind primitive.KindEnum) int {
	if kind.Storage().Bits() == 8 {
		return NarrowMultiplier
	}

	return WideMultiplier
}

// ColumnWidth returns the width each non-final entry is padded to.
func ColumnWidth(size int) int {
	if size == 8 {
		return 16
	}

	return 8
}

// FormatValue renders one scaled breakpoint as a C literal of the storage kind.
func FormatValue(kind primitive.KindEnum, raw int) string {
	s := strconv.Itoa(raw * Multiplier(kind))
	if kind.Storage().IsFloatLike() {
		s += ".0"
	}

	return s
}

// BuildArray builds the table stored as kind on axis at the given size.
func BuildArray(kind primitive.KindEnum, axis Axis, size int) (Array, error) {
	if !axis.IsValid() {
		return Array{}, fmt.Errorf("unknown axis %q", axis)
	}

	raw, err := Breakpoints(size)
	if err != nil {
		return Array{}, err
	}

	arr := Array{
		Ref:    Derive(kind, axis, size),
		Kind:   kind.Storage(),
		Type:   kind.Storage().Token(),
		Axis:   axis,
		Size:   size,
		Values: make([]string, len(raw)),
	}

	for i, x := range raw {
		arr.Values[i] = FormatValue(kind, x)
	}

	arr.Literal = formatLiteral(arr.Values, ColumnWidth(size))

	return arr, nil
}

func formatLiteral(values []string, width int) string {
	var sb strings.Builder

	sb.WriteString(" { ")

	for i, v := range values {
		if i == len(values)-1 {
			sb.WriteString(v)
			sb.WriteString(" };")

			break
		}

		entry := v + ","
		sb.WriteString(entry)

		if pad := width - len(entry); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
	}

	return sb.String()
}
