package table

import (
	"strconv"

	"map2d-testgen/primitive"
)

// Axis labels one of the two dimensions of a 2D table.
type Axis string

const (
	AxisX Axis = "xs"
	AxisY Axis = "ys"
)

// IsValid reports whether a is one of the known axes.
func (a Axis) IsValid() bool {
	return a == AxisX || a == AxisY
}

// ArrayRef identifies the memory array for one (kind, axis, size) triple.
type ArrayRef struct {
	// Name is the identifier of the declared array, e.g. "xs_float_8".
	Name string `yaml:"name"`
	// Index keys the literal table the array is initialized with, e.g. "8f".
	Index string `yaml:"index"`
	// Setter is the Map2D operation loading the axis, without the "_P" suffix.
	Setter string `yaml:"setter"`
}

// Derive returns the array reference for kind on axis at the given size.
// It is a pure function: declarations and instantiations are rendered in
// separate passes and both call it to agree on names.
func Derive(kind primitive.KindEnum, axis Axis, size int) ArrayRef {
	storage := kind.Storage()
	index := strconv.Itoa(size)

	setter := "setYs"
	if axis == AxisX {
		setter = "setXs"
	}

	if kind.IsFloatLike() {
		index += "f"
		setter += "FromFloat"
	}

	if storage.Bits() == 8 {
		index += "_char"
	}

	return ArrayRef{
		Name:   string(axis) + "_" + storage.Token() + "_" + strconv.Itoa(size),
		Index:  index,
		Setter: setter,
	}
}
