package match

import "strings"

// MaxDistance is the largest edit distance, after normalization, at which a
// candidate is still offered as a suggestion.
const MaxDistance = 2

// NormalizeToken folds case and drops separators and the C "_t" suffix, so
// that "INT8", "int8" and "int8_t" compare equal.
func NormalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimSuffix(s, "_t")

	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(s)
}

// Suggest returns the candidate closest to input, or false when none is
// within MaxDistance. Ties keep the earliest candidate.
func Suggest(input string, candidates []string) (string, bool) {
	norm := NormalizeToken(input)

	best, bestDist := "", MaxDistance+1

	for _, c := range candidates {
		if d := Levenshtein(norm, NormalizeToken(c)); d < bestDist {
			best, bestDist = c, d
		}
	}

	return best, bestDist <= MaxDistance
}
