package plan

import (
	"fmt"

	"map2d-testgen/internal/diagnostic"
	"map2d-testgen/internal/table"
)

// Verify checks the cross references of a built plan: identifiers are
// unique, every instance loads declared arrays and is sampled exactly once,
// and the print groups partition the sample temporaries.
func Verify(p *Plan) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if p == nil {
		res.AddError("plan_is_nil", "plan is nil", "", "")
		return res
	}

	arrays := map[string]table.Axis{}

	for _, arr := range p.Arrays {
		if _, ok := arrays[arr.Ref.Name]; ok {
			res.AddError("duplicate_array", "array declared twice", "arrays", arr.Ref.Name)
			continue
		}

		arrays[arr.Ref.Name] = arr.Axis
	}

	sampled := map[string]int{}

	for _, inst := range p.Instances {
		if _, ok := sampled[inst.Name]; ok {
			res.AddError("duplicate_instance", "instance declared twice", "instances", inst.Name)
			continue
		}

		sampled[inst.Name] = 0

		for _, ref := range []struct {
			axis table.Axis
			name string
		}{{table.AxisX, inst.XArray.Name}, {table.AxisY, inst.YArray.Name}} {
			if axis, ok := arrays[ref.name]; !ok || axis != ref.axis {
				res.AddError("dangling_array",
					fmt.Sprintf("%s loads undeclared %s array", inst.Name, ref.axis), "instances", ref.name)
			}
		}
	}

	temps := map[string]bool{}

	for _, s := range p.Samples {
		n, ok := sampled[s.Instance]
		if !ok {
			res.AddError("dangling_instance", "sample of undeclared instance", "samples", s.Instance)
			continue
		}

		sampled[s.Instance] = n + 1
		temps[s.Temp] = s.Float
	}

	for _, inst := range p.Instances {
		if n := sampled[inst.Name]; n != 1 {
			res.AddError("unsampled_instance",
				fmt.Sprintf("instance is sampled %d times, want 1", n), "instances", inst.Name)
		}
	}

	printed := map[string]struct{}{}

	checkPrint := func(subject string, names []string, float bool) {
		for _, name := range names {
			isFloat, ok := temps[name]
			if !ok {
				res.AddError("dangling_print", "print of unknown temporary", subject, name)
				continue
			}

			if isFloat != float {
				res.AddError("misplaced_print", "temporary printed by the wrong routine", subject, name)
			}

			if _, ok := printed[name]; ok {
				res.AddError("duplicate_print", "temporary printed twice", subject, name)
			}

			printed[name] = struct{}{}
		}
	}

	checkPrint("int_prints", p.IntPrints, false)
	checkPrint("float_prints", p.FloatPrints, true)

	for _, s := range p.Samples {
		if _, ok := printed[s.Temp]; !ok {
			res.AddError("unprinted_sample", "sample temporary is never printed", "samples", s.Temp)
		}
	}

	return res
}
