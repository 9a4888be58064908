package gen

import (
	"bytes"
	"errors"
	"fmt"
	"text/template"

	"map2d-testgen/internal/plan"
)

// Target selects the dialect of the generated harness.
type Target string

const (
	// TargetArduino emits an Arduino sketch printing over Serial.
	TargetArduino Target = "arduino"
	// TargetHost emits a plain C++ program for running the tables on a host.
	TargetHost Target = "host"
)

// Targets lists the supported targets.
var Targets = []Target{TargetArduino, TargetHost}

// ParseTarget maps a target name to a Target.
func ParseTarget(name string) (Target, error) {
	for _, t := range Targets {
		if string(t) == name {
			return t, nil
		}
	}

	return "", fmt.Errorf("unknown target %q (want one of %v)", name, Targets)
}

// Extension returns the file extension of harnesses for t.
func (t Target) Extension() string {
	if t == TargetHost {
		return ".cpp"
	}

	return ".ino"
}

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// Target is the harness dialect.
	Target Target
	// Name is the harness base name, used for the output filename.
	Name string
	// Title is printed in the banner at startup.
	Title string
	// Subtitle is printed under the title.
	Subtitle string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Target:   TargetArduino,
		Name:     "testSigned2D",
		Title:    "      2D Maps test",
		Subtitle: " Signed: int and float types.",
	}
}

// Generator generates harness source from a plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated harness source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "testSigned2D.ino").
	Filename string
	// Content is the harness source.
	Content []byte
}

// Generate renders p. The plan must have been built without errors.
func (g *Generator) Generate(p *plan.Plan) (*GeneratedFile, error) {
	if p == nil {
		return nil, errors.New("plan is nil")
	}

	if p.Diagnostics.HasErrors() {
		return nil, fmt.Errorf("refusing to render an invalid plan: %w", p.Diagnostics.Error())
	}

	tmpl, ok := targetTemplates[g.config.Target]
	if !ok {
		return nil, fmt.Errorf("unknown target %q", g.config.Target)
	}

	data := g.buildTemplateData(p)

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing %s template: %w", g.config.Target, err)
	}

	return &GeneratedFile{
		Filename: g.config.Name + g.config.Target.Extension(),
		Content:  buf.Bytes(),
	}, nil
}

var targetTemplates = map[Target]*template.Template{
	TargetArduino: mustTarget(arduinoTemplate),
	TargetHost:    mustTarget(hostTemplate),
}

func mustTarget(blocks string) *template.Template {
	base := template.Must(template.New("harness").Funcs(templateFuncs).Parse(harnessTemplate))

	return template.Must(base.Parse(blocks))
}
