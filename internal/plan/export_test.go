package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestExportYAML(t *testing.T) {
	p, err := Build(DefaultConfig())
	require.NoError(t, err)

	data, err := ExportYAML(p)
	require.NoError(t, err)

	var doc Export
	require.NoError(t, yaml.Unmarshal(data, &doc))

	assert.Equal(t, "1", doc.Version)
	assert.Equal(t, []int{8}, doc.Summary.Sizes)
	assert.Equal(t, []string{"int8_t", "int16_t", "float"}, doc.Summary.MemoryTypes)
	assert.Equal(t, []string{"int8_t", "int16_t", "Fix16"}, doc.Summary.XTypes)
	assert.Equal(t, 6, doc.Summary.Arrays)
	assert.Equal(t, 12, doc.Summary.Instances)
	assert.Equal(t, 12, doc.Summary.Samples)

	require.Len(t, doc.Arrays, 6)
	assert.Equal(t, p.Arrays[2].Literal, doc.Arrays[2].Literal)
	require.Len(t, doc.Instances, 12)
	assert.Equal(t, p.Instances[5].XArray, doc.Instances[5].XArray)
	assert.Equal(t, p.PrintFormat, doc.PrintFormat)
	assert.Equal(t, p.FloatPrints, doc.FloatPrints)
	assert.Equal(t, p.Sweep, doc.Sweep)

	assert.Contains(t, string(data), "name: test_Fix16_float_8")
}

func TestExportYAML_Deterministic(t *testing.T) {
	p, err := Build(DefaultConfig())
	require.NoError(t, err)

	a, err := ExportYAML(p)
	require.NoError(t, err)

	b, err := ExportYAML(p)
	require.NoError(t, err)

	assert.Equal(t, string(a), string(b))
}

func TestSummarize_Warnings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sizes = []int{8, 8}

	p, err := Build(cfg)
	require.NoError(t, err)

	s := Summarize(p)
	require.Len(t, s.Warnings, 1)
	assert.Contains(t, s.Warnings[0], "duplicate_size")
}
