package gen

import (
	"strings"

	"map2d-testgen/internal/plan"
)

// Column the PROGMEM qualifier of array declarations is aligned to.
const declWidth = 30

// Banner rules printed around the title and after the sweep.
const (
	rule     = "------------------------------"
	wideRule = "------------------------------------------"
)

// templateData holds all data needed for the harness template.
type templateData struct {
	Title     string
	Subtitle  string
	Rule      string
	WideRule  string
	Decls     []declData
	Instances []plan.Instance
	Samples   []plan.Sample
	LoopVar   string
	Sweep     plan.Sweep
	// PrintFormat and PrintArgs make up the shared printf of integer samples.
	PrintFormat string
	PrintArgs   string
	FloatPrints []string
}

// declData is one array declaration: the padded head and its initializer.
type declData struct {
	Head    string
	Literal string
}

// buildTemplateData constructs the template data from a plan.
func (g *Generator) buildTemplateData(p *plan.Plan) *templateData {
	data := &templateData{
		Title:       g.config.Title,
		Subtitle:    g.config.Subtitle,
		Rule:        rule,
		WideRule:    wideRule,
		Instances:   p.Instances,
		Samples:     p.Samples,
		LoopVar:     plan.LoopVar,
		Sweep:       p.Sweep,
		PrintFormat: p.PrintFormat,
		PrintArgs:   strings.Join(append([]string{plan.LoopVar}, p.IntPrints...), ", "),
		FloatPrints: p.FloatPrints,
	}

	for _, arr := range p.Arrays {
		data.Decls = append(data.Decls, declData{
			Head:    declHead(arr.Type, arr.Ref.Name),
			Literal: arr.Literal,
		})
	}

	return data
}

// declHead renders "const <type> <name>[]" padded to declWidth, followed by
// the program memory qualifier.
func declHead(ctype, name string) string {
	head := "const " + ctype + " " + name + "[]"
	if pad := declWidth - len(head); pad > 0 {
		head += strings.Repeat(" ", pad)
	}

	return head + "PROGMEM = "
}
