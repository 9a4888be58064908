package table

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"map2d-testgen/primitive"
)

// padded builds an expected initializer with the given column width.
func padded(width int, values ...string) string {
	var sb strings.Builder

	sb.WriteString(" { ")

	for _, v := range values[:len(values)-1] {
		sb.WriteString(fmt.Sprintf("%-*s", width, v+","))
	}

	sb.WriteString(values[len(values)-1] + " };")

	return sb.String()
}

func TestBuildArray_Int8(t *testing.T) {
	arr, err := BuildArray(primitive.KindInt8, AxisX, 8)
	require.NoError(t, err)

	assert.Equal(t, "xs_int8_t_8", arr.Ref.Name)
	assert.Equal(t, "int8_t", arr.Type)
	assert.Equal(t, []string{"-128", "-96", "-64", "-32", "0", "32", "64", "96", "127"}, arr.Values)
	assert.Equal(t, padded(16, arr.Values...), arr.Literal)
	assert.True(t, strings.HasPrefix(arr.Literal, " { -128,           -96,"), arr.Literal)
}

func TestBuildArray_Int16IsScaled(t *testing.T) {
	arr, err := BuildArray(primitive.KindInt16, AxisY, 8)
	require.NoError(t, err)

	assert.Equal(t, []string{"-1280", "-960", "-640", "-320", "0", "320", "640", "960", "1270"}, arr.Values)
	assert.True(t, strings.HasSuffix(arr.Literal, "960,            1270 };"), arr.Literal)
}

func TestBuildArray_Float(t *testing.T) {
	arr, err := BuildArray(primitive.KindFloat, AxisY, 8)
	require.NoError(t, err)

	assert.Equal(t, "ys_float_8", arr.Ref.Name)
	assert.Equal(t, "8f", arr.Ref.Index)
	assert.Equal(t, "-1280.0", arr.Values[0])
	assert.Equal(t, "1270.0", arr.Values[len(arr.Values)-1])
	assert.Equal(t, padded(16, arr.Values...), arr.Literal)
}

func TestBuildArray_Size16UsesNarrowColumns(t *testing.T) {
	arr, err := BuildArray(primitive.KindInt16, AxisX, 16)
	require.NoError(t, err)

	require.Len(t, arr.Values, 17)
	assert.Equal(t, "-1120", arr.Values[1])
	assert.Equal(t, padded(8, arr.Values...), arr.Literal)
}

func TestBuildArray_InvalidSize(t *testing.T) {
	_, err := BuildArray(primitive.KindInt8, AxisX, 12)
	require.Error(t, err)
}

func TestFormatLiteral_WideEntriesAreNotTruncated(t *testing.T) {
	got := formatLiteral([]string{"-1280.0", "1270.0"}, 4)
	assert.Equal(t, " { -1280.0,1270.0 };", got)
}

func TestMultiplier(t *testing.T) {
	assert.Equal(t, NarrowMultiplier, Multiplier(primitive.KindInt8))
	assert.Equal(t, NarrowMultiplier, Multiplier(primitive.KindUint8))
	assert.Equal(t, WideMultiplier, Multiplier(primitive.KindInt16))
	assert.Equal(t, WideMultiplier, Multiplier(primitive.KindFix16))
	assert.Equal(t, WideMultiplier, Multiplier(primitive.KindFloat))
}

func TestBuildArray_InvalidAxis(t *testing.T) {
	_, err := BuildArray(primitive.KindInt8, Axis("zs"), 8)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"zs"`)
}
