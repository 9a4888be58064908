package plan

import (
	"fmt"
	"strconv"

	"map2d-testgen/internal/common"
	"map2d-testgen/internal/diagnostic"
	"map2d-testgen/internal/table"
	"map2d-testgen/primitive"
)

// Sweep is the integer range the harness loop samples every table over.
type Sweep struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
	Step int `yaml:"step"`
}

// Config holds the type and size lists a harness is generated for.
type Config struct {
	// Sizes are the breakpoint counts; each must divide table.RangeSpan.
	Sizes []int
	// MemoryTypes are the storage types raw arrays are declared with.
	MemoryTypes []primitive.KindEnum
	// XTypes are the element types of the table inputs.
	XTypes []primitive.KindEnum
	// YTypes are the element types of the table outputs.
	YTypes []primitive.KindEnum
	// Sweep is the range of the sampling loop.
	Sweep Sweep
}

// DefaultConfig returns the configuration of the signed 2D maps test.
func DefaultConfig() Config {
	return Config{
		Sizes:       []int{8},
		MemoryTypes: []primitive.KindEnum{primitive.KindInt8, primitive.KindInt16, primitive.KindFloat},
		XTypes:      []primitive.KindEnum{primitive.KindInt8, primitive.KindInt16, primitive.KindFix16},
		YTypes: []primitive.KindEnum{
			primitive.KindInt8, primitive.KindInt16, primitive.KindFix16, primitive.KindFloat,
		},
		Sweep: Sweep{
			From: table.RangeMin * table.WideMultiplier,
			To:   table.RangeMax * table.WideMultiplier,
			Step: table.WideMultiplier,
		},
	}
}

// Validate checks cfg and returns a normalized copy with duplicate entries
// removed. The returned configuration must not be used if the diagnostics
// carry errors.
func Validate(cfg Config) (Config, *diagnostic.Diagnostics) {
	diags := &diagnostic.Diagnostics{}

	sizes, dropped := common.Dedupe(cfg.Sizes)
	for _, size := range dropped {
		diags.AddWarning("duplicate_size", "duplicate size dropped", "sizes", strconv.Itoa(size))
	}

	if common.IsEmpty(sizes) {
		diags.AddError("empty_sizes", "at least one table size is required", "sizes", "")
	}

	for _, size := range sizes {
		if err := table.ValidSize(size); err != nil {
			diags.AddError("invalid_size", err.Error(), "sizes", strconv.Itoa(size))
		}
	}

	res := Config{
		Sizes:       sizes,
		MemoryTypes: dedupeKinds(diags, "mem-types", cfg.MemoryTypes),
		XTypes:      dedupeKinds(diags, "x-types", cfg.XTypes),
		YTypes:      dedupeKinds(diags, "y-types", cfg.YTypes),
		Sweep:       cfg.Sweep,
	}

	validateStorage(diags, res)

	if res.Sweep.Step <= 0 {
		diags.AddError("invalid_sweep", fmt.Sprintf("sweep step must be positive, got %d", res.Sweep.Step),
			"sweep", "")
	}

	if res.Sweep.From > res.Sweep.To {
		diags.AddError("invalid_sweep",
			fmt.Sprintf("sweep start %d is past its end %d", res.Sweep.From, res.Sweep.To), "sweep", "")
	}

	return res, diags
}

func dedupeKinds(diags *diagnostic.Diagnostics, subject string, kinds []primitive.KindEnum) []primitive.KindEnum {
	res, dropped := common.Dedupe(kinds)
	for _, k := range dropped {
		diags.AddWarning("duplicate_type", "duplicate type dropped", subject, kindName(k))
	}

	if common.IsEmpty(res) {
		diags.AddError("empty_types", "at least one type is required", subject, "")
	}

	var valid []primitive.KindEnum

	for _, k := range res {
		if !k.IsValid() {
			diags.AddError("unknown_type", "type is not recognized", subject, kindName(k))
			continue
		}

		valid = append(valid, k)
	}

	return valid
}

// validateStorage makes sure every declared array has a unique identifier and
// every table input or output can be loaded from a declared array.
func validateStorage(diags *diagnostic.Diagnostics, cfg Config) {
	declared := map[primitive.KindEnum]primitive.KindEnum{}

	for _, k := range cfg.MemoryTypes {
		if !k.IsSigned() {
			diags.AddError("unsigned_storage", "breakpoints are signed and cannot be stored as "+k.Token(),
				"mem-types", k.Token())

			continue
		}

		storage := k.Storage()
		if prev, ok := declared[storage]; ok {
			diags.AddError("duplicate_array",
				fmt.Sprintf("%s and %s are both stored as %s", prev.Token(), k.Token(), storage.Token()),
				"mem-types", k.Token())

			continue
		}

		declared[storage] = k
	}

	check := func(subject string, kinds []primitive.KindEnum) {
		for _, k := range kinds {
			if _, ok := declared[k.Storage()]; !ok {
				diags.AddError("missing_array",
					fmt.Sprintf("no memory array of type %s to load %s from", k.Storage().Token(), k.Token()),
					subject, k.Token())
			}
		}
	}

	check("x-types", cfg.XTypes)
	check("y-types", cfg.YTypes)
}

func kindName(k primitive.KindEnum) string {
	if k.IsValid() {
		return k.Token()
	}

	return k.String()
}
