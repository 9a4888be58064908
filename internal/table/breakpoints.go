package table

import "fmt"

// Breakpoint range shared by all generated arrays.
const (
	RangeMin  = -128
	RangeMax  = 127
	RangeSpan = RangeMax - RangeMin + 1
)

// Scaling applied to raw breakpoints depending on the storage width.
const (
	NarrowMultiplier = 1
	WideMultiplier   = 10
)

// ValidSize reports whether size evenly divides the breakpoint range.
func ValidSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("table size must be positive, got %d", size)
	}

	if RangeSpan%size != 0 {
		return fmt.Errorf("table size %d does not divide the breakpoint range %d", size, RangeSpan)
	}

	return nil
}

// Breakpoints returns the raw breakpoints for a table of the given size:
// RangeMin stepping by RangeSpan/size while below RangeMax, then RangeMax
// unless the last step already landed on it.
func Breakpoints(size int) ([]int, error) {
	if err := ValidSize(size); err != nil {
		return nil, err
	}

	step := RangeSpan / size

	res := make([]int, 0, size+1)
	for x := RangeMin; x < RangeMax; x += step {
		res = append(res, x)
	}

	if res[len(res)-1] != RangeMax {
		res = append(res, RangeMax)
	}

	return res, nil
}
