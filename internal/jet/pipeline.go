package jet

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const DefaultBase = "jet"

// PipelineDef is the YAML form of a derivation pipeline.
type PipelineDef struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description,omitempty"`
	Base        string     `yaml:"base,omitempty"`
	Groups      []GroupDef `yaml:"groups"`
}

type GroupDef struct {
	Prefix string     `yaml:"prefix,omitempty"`
	Colors []ColorDef `yaml:"colors"`
}

// ColorDef binds Expr to Name for later formulas and, unless Hidden, emits a
// row labelled group prefix + Label (Label defaults to Name).
type ColorDef struct {
	Name   string `yaml:"name,omitempty"`
	Label  string `yaml:"label,omitempty"`
	Hidden bool   `yaml:"hidden,omitempty"`
	Expr   string `yaml:"expr"`
}

type PipelineError struct {
	Pipeline string
	Step     int
	Label    string
	Err      error
}

func (e *PipelineError) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("pipeline %s: step %d: %v", e.Pipeline, e.Step, e.Err)
	}
	return fmt.Sprintf("pipeline %s: step %d (%s): %v", e.Pipeline, e.Step, e.Label, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

type step struct {
	label string
	bind  string
	emit  bool
	expr  expr
}

type Pipeline struct {
	Name  string
	Base  string
	steps []step
}

type Entry struct {
	Label string `json:"label"`
	Old   Value  `json:"old"`
	New   Value  `json:"new"`
}

func ParsePipeline(data []byte) (*Pipeline, error) {
	var def PipelineDef
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("pipeline definition is empty")
		}
		return nil, fmt.Errorf("decoding pipeline: %w", err)
	}
	return CompilePipeline(def)
}

func CompilePipeline(def PipelineDef) (*Pipeline, error) {
	p := &Pipeline{Name: def.Name, Base: def.Base}
	if p.Name == "" {
		p.Name = "custom"
	}
	if p.Base == "" {
		p.Base = DefaultBase
	}

	bound := map[string]bool{p.Base: false}
	emitted := make(map[string]bool)
	index := 0

	for _, group := range def.Groups {
		for _, c := range group.Colors {
			index++
			label := c.Label
			if label == "" {
				label = c.Name
			}
			fail := func(err error) (*Pipeline, error) {
				return nil, &PipelineError{Pipeline: p.Name, Step: index, Label: label, Err: err}
			}

			if label == "" {
				return fail(fmt.Errorf("needs a name or a label"))
			}
			if !c.Hidden {
				label = group.Prefix + label
			}

			ast, err := parseFormula(c.Expr)
			if err != nil {
				return fail(err)
			}
			e, err := compile(ast, bound)
			if err != nil {
				return fail(err)
			}

			if c.Name != "" {
				if _, exists := bound[c.Name]; exists {
					return fail(fmt.Errorf("%q is already defined", c.Name))
				}
				bound[c.Name] = e.translucent()
			}
			if !c.Hidden {
				if emitted[label] {
					return fail(fmt.Errorf("label %q is emitted twice", label))
				}
				emitted[label] = true
			}

			p.steps = append(p.steps, step{label: label, bind: c.Name, emit: !c.Hidden, expr: e})
		}
	}

	if len(emitted) == 0 {
		return nil, &PipelineError{Pipeline: p.Name, Err: fmt.Errorf("no rows to emit")}
	}
	return p, nil
}

// Labels lists emitted labels in output order.
func (p *Pipeline) Labels() []string {
	var labels []string
	for _, s := range p.steps {
		if s.emit {
			labels = append(labels, s.label)
		}
	}
	return labels
}

// Evaluate runs every step against one base colour.
func (p *Pipeline) Evaluate(base Color) []Value {
	scope := map[string]Value{p.Base: Opaque(base)}
	var out []Value
	for _, s := range p.steps {
		v := s.expr.eval(scope)
		if s.bind != "" {
			scope[s.bind] = v
		}
		if s.emit {
			out = append(out, v)
		}
	}
	return out
}

// Derive parses both bases before evaluating anything, so a malformed input
// never yields partial output.
func (p *Pipeline) Derive(oldHex, newHex string) ([]Entry, error) {
	oldBase, err := ParseHex(oldHex)
	if err != nil {
		return nil, err
	}
	newBase, err := ParseHex(newHex)
	if err != nil {
		return nil, err
	}

	labels := p.Labels()
	oldValues := p.Evaluate(oldBase)
	newValues := p.Evaluate(newBase)

	entries := make([]Entry, len(labels))
	for i, label := range labels {
		entries[i] = Entry{Label: label, Old: oldValues[i], New: newValues[i]}
	}
	return entries, nil
}
