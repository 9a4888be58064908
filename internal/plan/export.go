package plan

import (
	"gopkg.in/yaml.v3"

	"map2d-testgen/primitive"
)

// Summary is the header of the YAML export.
type Summary struct {
	Sizes       []int    `yaml:"sizes"`
	MemoryTypes []string `yaml:"mem_types"`
	XTypes      []string `yaml:"x_types"`
	YTypes      []string `yaml:"y_types"`
	Arrays      int      `yaml:"arrays"`
	Instances   int      `yaml:"instances"`
	Samples     int      `yaml:"samples"`
	Warnings    []string `yaml:"warnings,omitempty"`
}

// Export is the document written by ExportYAML.
type Export struct {
	Version string  `yaml:"version"`
	Summary Summary `yaml:"summary"`
	Plan    `yaml:",inline"`
}

// Summarize returns the counts and normalized lists of p.
func Summarize(p *Plan) Summary {
	s := Summary{
		Sizes:       p.Config.Sizes,
		MemoryTypes: primitive.Tokens(p.Config.MemoryTypes),
		XTypes:      primitive.Tokens(p.Config.XTypes),
		YTypes:      primitive.Tokens(p.Config.YTypes),
		Arrays:      len(p.Arrays),
		Instances:   len(p.Instances),
		Samples:     len(p.Samples),
	}

	for _, w := range p.Diagnostics.Warnings {
		s.Warnings = append(s.Warnings, w.String())
	}

	return s
}

// ExportYAML serializes the plan records for review and diffing.
func ExportYAML(p *Plan) ([]byte, error) {
	return yaml.Marshal(Export{
		Version: "1",
		Summary: Summarize(p),
		Plan:    *p,
	})
}
