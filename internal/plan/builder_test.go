package plan

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"map2d-testgen/primitive"
)

func TestBuild_DefaultCounts(t *testing.T) {
	p, err := Build(DefaultConfig())
	require.NoError(t, err)

	assert.Len(t, p.Arrays, 6, "2 axes x 3 memory types")
	assert.Len(t, p.Instances, 12, "3 X types x 4 Y types x 1 size")
	assert.Len(t, p.Samples, 12)
	assert.Len(t, p.IntPrints, 6, spew.Sdump(p.Samples))
	assert.Len(t, p.FloatPrints, 6, spew.Sdump(p.Samples))
	assert.Equal(t, "%5d:"+strings.Repeat(" %4d", 6), p.PrintFormat)
	assert.Empty(t, p.Diagnostics.Errors)
	assert.Empty(t, p.Diagnostics.Warnings)
}

func TestBuild_ArrayOrder(t *testing.T) {
	p, err := Build(DefaultConfig())
	require.NoError(t, err)

	var names []string
	for _, arr := range p.Arrays {
		names = append(names, arr.Ref.Name)
	}

	want := []string{
		"xs_int8_t_8", "xs_int16_t_8", "xs_float_8",
		"ys_int8_t_8", "ys_int16_t_8", "ys_float_8",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("array order mismatch (-want +got):\n%s", diff)
	}
}

func TestBuild_InstanceOrderAndWiring(t *testing.T) {
	p, err := Build(DefaultConfig())
	require.NoError(t, err)

	var names []string
	for _, inst := range p.Instances {
		names = append(names, inst.Name)
	}

	want := []string{
		"test_int8_t_int8_t_8", "test_int8_t_int16_t_8", "test_int8_t_Fix16_8", "test_int8_t_float_8",
		"test_int16_t_int8_t_8", "test_int16_t_int16_t_8", "test_int16_t_Fix16_8", "test_int16_t_float_8",
		"test_Fix16_int8_t_8", "test_Fix16_int16_t_8", "test_Fix16_Fix16_8", "test_Fix16_float_8",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("instance order mismatch (-want +got):\n%s", diff)
	}

	inst := p.Instances[10]
	assert.Equal(t, "Map2D<8,Fix16,Fix16>", inst.TableType)
	assert.Equal(t, "xs_float_8", inst.XArray.Name)
	assert.Equal(t, "setXsFromFloat", inst.XArray.Setter)
	assert.Equal(t, "ys_float_8", inst.YArray.Name)
	assert.Equal(t, "setYsFromFloat", inst.YArray.Setter)
}

func TestBuild_Samples(t *testing.T) {
	p, err := Build(DefaultConfig())
	require.NoError(t, err)

	want := []Sample{
		{Instance: "test_int8_t_int8_t_8", Temp: "val_int8_t_int8_t_8", TempType: "int8_t", Arg: "idx/10"},
		{Instance: "test_int16_t_int8_t_8", Temp: "val_int16_t_int8_t_8", TempType: "int8_t", Arg: "idx"},
		{Instance: "test_Fix16_int8_t_8", Temp: "val_Fix16_int8_t_8", TempType: "int8_t", Arg: "idx"},
	}
	if diff := cmp.Diff(want, p.Samples[:3]); diff != "" {
		t.Errorf("sample mismatch (-want +got):\n%s", diff)
	}

	fix := p.Samples[6]
	assert.Equal(t, "val_int8_t_Fix16_8", fix.Temp)
	assert.Equal(t, "float", fix.TempType)
	assert.True(t, fix.Float)

	assert.Equal(t, []string{
		"val_int8_t_Fix16_8", "val_int16_t_Fix16_8", "val_Fix16_Fix16_8",
		"val_int8_t_float_8", "val_int16_t_float_8", "val_Fix16_float_8",
	}, p.FloatPrints)
	assert.Equal(t, []string{
		"val_int8_t_int8_t_8", "val_int16_t_int8_t_8", "val_Fix16_int8_t_8",
		"val_int8_t_int16_t_8", "val_int16_t_int16_t_8", "val_Fix16_int16_t_8",
	}, p.IntPrints)
}

func TestBuild_PrintGroupsPartitionSamples(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sizes = []int{8, 16}

	p, err := Build(cfg)
	require.NoError(t, err)

	require.Len(t, p.Samples, 24)
	assert.Len(t, p.IntPrints, 12)
	assert.Len(t, p.FloatPrints, 12)

	seen := map[string]int{}
	for _, name := range append(append([]string{}, p.IntPrints...), p.FloatPrints...) {
		seen[name]++
	}

	for _, s := range p.Samples {
		assert.Equal(t, 1, seen[s.Temp], s.Temp)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	a, err := Build(DefaultConfig())
	require.NoError(t, err)

	b, err := Build(DefaultConfig())
	require.NoError(t, err)

	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("plans differ between runs (-first +second):\n%s", diff)
	}
}

func TestBuild_InvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sizes = []int{12}

	p, err := Build(cfg)
	require.Error(t, err)
	require.NotNil(t, p)
	assert.Contains(t, err.Error(), "invalid_size")
	assert.Empty(t, p.Arrays)
	assert.Empty(t, p.Instances)
}

func TestBuild_WideOnlyInputs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.XTypes = []primitive.KindEnum{primitive.KindInt16}
	cfg.YTypes = []primitive.KindEnum{primitive.KindDouble}

	p, err := Build(cfg)
	require.NoError(t, err)

	require.Len(t, p.Samples, 1)
	assert.Equal(t, "idx", p.Samples[0].Arg)
	assert.Equal(t, "float", p.Samples[0].TempType)
	assert.Equal(t, "%5d:", p.PrintFormat)
	assert.Empty(t, p.IntPrints)
}
