package primitive

import (
	"fmt"
	"strings"

	"map2d-testgen/internal/match"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt8
	KindUint8
	KindInt16
	KindUint16
	KindInt32
	KindFix16 // 16.16 fixed point, loaded from float tables
	KindFloat
	KindDouble

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt8, KindUint8, KindInt16, KindUint16, KindInt32:
		return true
	}
}

// IsFloatLike reports whether values of the kind are printed and loaded as float.
func (k KindEnum) IsFloatLike() bool {
	switch k {
	default:
		return false
	case KindFix16, KindFloat, KindDouble:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt8, KindInt16, KindInt32, KindFix16, KindFloat, KindDouble:
		return true
	}
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("kind has no meaningful bits amount: " + k.String())
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindFix16, KindFloat:
		return 32
	case KindDouble:
		return 64
	}
}

// Token returns the C type name used in the generated harness.
func (k KindEnum) Token() string {
	switch k {
	default:
		panic("kind has no C token: " + k.String())
	case KindInt8:
		return "int8_t"
	case KindUint8:
		return "uint8_t"
	case KindInt16:
		return "int16_t"
	case KindUint16:
		return "uint16_t"
	case KindInt32:
		return "int32_t"
	case KindFix16:
		return "Fix16"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	}
}

// Storage returns the kind of the raw memory array a table of kind k is
// loaded from. Float-like kinds are always loaded from float arrays.
func (k KindEnum) Storage() KindEnum {
	if k.IsFloatLike() {
		return KindFloat
	}

	return k
}

// TempToken returns the C type of the temporary that receives a sample.
func (k KindEnum) TempToken() string {
	return k.Storage().Token()
}

// ParseKind maps a C type token to its kind. "byte" is accepted as an alias
// for uint8_t.
func ParseKind(token string) (KindEnum, error) {
	token = strings.TrimSpace(token)
	if token == "byte" {
		return KindUint8, nil
	}

	for k := KindEnum(1); int(k) < KindTotal; k++ {
		if k.Token() == token {
			return k, nil
		}
	}

	if hint, ok := match.Suggest(token, knownTokens()); ok {
		return 0, fmt.Errorf("unknown element type %q (did you mean %s?)", token, hint)
	}

	return 0, fmt.Errorf("unknown element type %q", token)
}

func knownTokens() []string {
	res := make([]string, 0, KindTotal)
	for k := KindEnum(1); int(k) < KindTotal; k++ {
		res = append(res, k.Token())
	}

	return res
}

// ParseKinds parses every token, stopping at the first unknown one.
func ParseKinds(tokens []string) ([]KindEnum, error) {
	res := make([]KindEnum, 0, len(tokens))

	for _, token := range tokens {
		k, err := ParseKind(token)
		if err != nil {
			return nil, err
		}

		res = append(res, k)
	}

	return res, nil
}

// Tokens is the inverse of ParseKinds.
func Tokens(kinds []KindEnum) []string {
	res := make([]string, len(kinds))
	for i, k := range kinds {
		res[i] = k.Token()
	}

	return res
}
