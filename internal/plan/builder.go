package plan

import (
	"fmt"
	"strconv"
	"strings"

	"map2d-testgen/internal/common"
	"map2d-testgen/internal/table"
	"map2d-testgen/primitive"
)

// Print formats of the shared printf call.
const (
	indexVerb = "%5d:"
	intVerb   = " %4d"
)

// Build validates cfg and builds the plan. On validation failure the returned
// plan carries the diagnostics and the error summarizes them.
func Build(cfg Config) (*Plan, error) {
	normalized, diags := Validate(cfg)

	p := &Plan{
		Config:      normalized,
		Sweep:       normalized.Sweep,
		Diagnostics: *diags,
	}

	if diags.HasErrors() {
		return p, fmt.Errorf("invalid configuration: %w", diags.Error())
	}

	for _, size := range normalized.Sizes {
		for _, axis := range []table.Axis{table.AxisX, table.AxisY} {
			for _, k := range normalized.MemoryTypes {
				arr, err := table.BuildArray(k, axis, size)
				if err != nil {
					return p, fmt.Errorf("building %s array for %s: %w", axis, k.Token(), err)
				}

				p.Arrays = append(p.Arrays, arr)
			}
		}
	}

	common.Cross(normalized.XTypes, normalized.YTypes, normalized.Sizes,
		func(x, y primitive.KindEnum, size int) {
			p.Instances = append(p.Instances, newInstance(x, y, size))
		})

	format := strings.Builder{}
	format.WriteString(indexVerb)

	common.Cross(normalized.YTypes, normalized.XTypes, normalized.Sizes,
		func(y, x primitive.KindEnum, size int) {
			s := newSample(x, y, size)
			p.Samples = append(p.Samples, s)

			if s.Float {
				p.FloatPrints = append(p.FloatPrints, s.Temp)
			} else {
				p.IntPrints = append(p.IntPrints, s.Temp)
				format.WriteString(intVerb)
			}
		})

	p.PrintFormat = format.String()

	verified := Verify(p)
	p.Diagnostics.Merge(*verified)

	if verified.HasErrors() {
		return p, fmt.Errorf("inconsistent plan: %w", verified.Error())
	}

	return p, nil
}

// InstanceName returns the variable name of the (x, y, size) instance.
func InstanceName(x, y primitive.KindEnum, size int) string {
	return "test_" + suffix(x, y, size)
}

// TempName returns the sample temporary of the (x, y, size) instance.
func TempName(x, y primitive.KindEnum, size int) string {
	return "val_" + suffix(x, y, size)
}

func suffix(x, y primitive.KindEnum, size int) string {
	return x.Token() + "_" + y.Token() + "_" + strconv.Itoa(size)
}

func newInstance(x, y primitive.KindEnum, size int) Instance {
	return Instance{
		Name:      InstanceName(x, y, size),
		TableType: fmt.Sprintf("Map2D<%d,%s,%s>", size, x.Token(), y.Token()),
		X:         x,
		Y:         y,
		XType:     x.Token(),
		YType:     y.Token(),
		Size:      size,
		XArray:    table.Derive(x, table.AxisX, size),
		YArray:    table.Derive(y, table.AxisY, size),
	}
}

// newSample evaluates narrow inputs at a scaled-down index: their arrays are
// not multiplied, so their breakpoints are WideMultiplier times denser.
func newSample(x, y primitive.KindEnum, size int) Sample {
	arg := LoopVar
	if m := table.Multiplier(x); m != table.WideMultiplier {
		arg += "/" + strconv.Itoa(table.WideMultiplier/m)
	}

	return Sample{
		Instance: InstanceName(x, y, size),
		Temp:     TempName(x, y, size),
		TempType: y.TempToken(),
		Arg:      arg,
		Float:    y.IsFloatLike(),
	}
}
