package common

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// Dedupe returns s without repeated elements, keeping first occurrences in
// order, together with the dropped repeats.
func Dedupe[S ~[]E, E comparable](s S) (S, []E) {
	seen := make(map[E]struct{}, len(s))

	var (
		res     S
		dropped []E
	)

	for _, e := range s {
		if _, ok := seen[e]; ok {
			dropped = append(dropped, e)
			continue
		}

		seen[e] = struct{}{}
		res = append(res, e)
	}

	return res, dropped
}

// Cross calls fn for every element of the cartesian product of a, b and c,
// with a varying slowest.
func Cross[A, B, C any](a []A, b []B, c []C, fn func(A, B, C)) {
	for _, x := range a {
		for _, y := range b {
			for _, z := range c {
				fn(x, y, z)
			}
		}
	}
}
