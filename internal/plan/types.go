package plan

import (
	"map2d-testgen/internal/diagnostic"
	"map2d-testgen/internal/table"
	"map2d-testgen/primitive"
)

// LoopVar is the name of the swept index in the generated loop.
const LoopVar = "idx"

// Plan is the final output of the planning pipeline.
// It contains everything needed for code generation, in emission order.
type Plan struct {
	// Config is the normalized configuration the plan was built from.
	Config Config `yaml:"-"`
	// Arrays are the memory array declarations.
	Arrays []table.Array `yaml:"arrays"`
	// Instances are the Map2D objects, X type varying slowest.
	Instances []Instance `yaml:"instances"`
	// Samples are the loop body evaluations, Y type varying slowest.
	Samples []Sample `yaml:"samples"`
	// IntPrints are the integer temporaries printed by the shared printf.
	IntPrints []string `yaml:"int_prints"`
	// FloatPrints are the float-like temporaries printed one by one.
	FloatPrints []string `yaml:"float_prints"`
	// PrintFormat is the format string of the shared printf.
	PrintFormat string `yaml:"print_format"`
	// Sweep is the loop range.
	Sweep Sweep `yaml:"sweep"`
	// Diagnostics contains all warnings and errors from planning.
	Diagnostics diagnostic.Diagnostics `yaml:"-"`
}

// Instance is one Map2D table object in the harness.
type Instance struct {
	// Name is the variable name, e.g. "test_int8_t_Fix16_8".
	Name string `yaml:"name"`
	// TableType is the C++ type, e.g. "Map2D<8,int8_t,Fix16>".
	TableType string             `yaml:"table_type"`
	X         primitive.KindEnum `yaml:"-"`
	Y         primitive.KindEnum `yaml:"-"`
	XType     string             `yaml:"x_type"`
	YType     string             `yaml:"y_type"`
	Size      int                `yaml:"size"`
	XArray    table.ArrayRef     `yaml:"x_array"`
	YArray    table.ArrayRef     `yaml:"y_array"`
}

// Sample is one evaluation of an instance inside the sweep loop.
type Sample struct {
	// Instance is the name of the evaluated instance.
	Instance string `yaml:"instance"`
	// Temp is the temporary receiving the value, e.g. "val_int8_t_Fix16_8".
	Temp string `yaml:"temp"`
	// TempType is the C type of Temp.
	TempType string `yaml:"temp_type"`
	// Arg is the expression the instance is evaluated at.
	Arg string `yaml:"arg"`
	// Float is set when Temp is printed with the dedicated float routine.
	Float bool `yaml:"float"`
}
