// Package schema loads the declarative Comprehend service description that
// the model, operation and paginator sources are generated from.
package schema

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

//go:embed comprehend.yaml
var comprehendYAML []byte

// Shape kinds.
const (
	KindStructure = "structure"
	KindRequest   = "request"
	KindResult    = "result"
)

// Service holds the wire-level identity of the service.
type Service struct {
	Name           string `yaml:"name"`
	TargetPrefix   string `yaml:"targetPrefix"`
	SigningName    string `yaml:"signingName"`
	EndpointPrefix string `yaml:"endpointPrefix"`
	APIVersion     string `yaml:"apiVersion"`
}

// Error is a modelled service exception.
type Error struct {
	Name  string `yaml:"name"`
	Doc   string `yaml:"doc"`
	Fault string `yaml:"fault"`
}

// Enum is a string field constrained to a closed set of values.
type Enum struct {
	Name   string   `yaml:"name"`
	Doc    string   `yaml:"doc"`
	Values []string `yaml:"values"`
}

// EnumConst is one generated constant of an Enum.
type EnumConst struct {
	Name  string
	Value string
}

// Field is one member of a shape.
type Field struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Doc         string `yaml:"doc"`
	List        bool   `yaml:"list"`
	Required    bool   `yaml:"required"`
	Min         *int   `yaml:"min"`
	Max         *int   `yaml:"max"`
	Pattern     string `yaml:"pattern"`
	ItemMin     *int   `yaml:"itemMin"`
	ItemMax     *int   `yaml:"itemMax"`
	ItemPattern string `yaml:"itemPattern"`
}

// Shape is a request, result or nested structure.
type Shape struct {
	Name   string  `yaml:"name"`
	Group  string  `yaml:"group"`
	Kind   string  `yaml:"kind"`
	Doc    string  `yaml:"doc"`
	Fields []Field `yaml:"fields"`
}

// Operation is one service API call.
type Operation struct {
	Name             string   `yaml:"name"`
	Doc              string   `yaml:"doc"`
	Paginated        bool     `yaml:"paginated"`
	IdempotencyToken string   `yaml:"idempotencyToken"`
	Errors           []string `yaml:"errors"`
}

// Document is the parsed service description.
type Document struct {
	Service    Service     `yaml:"service"`
	Errors     []Error     `yaml:"errors"`
	Enums      []Enum      `yaml:"enums"`
	Shapes     []Shape     `yaml:"shapes"`
	Operations []Operation `yaml:"operations"`

	shapes    map[string]*Shape
	enums     map[string]*Enum
	validated map[string]bool
}

// Load parses the embedded Comprehend description.
func Load() (*Document, error) {
	return Parse(comprehendYAML)
}

// Parse parses and checks a service description.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse service description: %w", err)
	}
	if err := doc.index(); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (d *Document) index() error {
	d.shapes = make(map[string]*Shape, len(d.Shapes))
	d.enums = make(map[string]*Enum, len(d.Enums))
	errs := make(map[string]bool, len(d.Errors))

	for i := range d.Enums {
		e := &d.Enums[i]
		if _, dup := d.enums[e.Name]; dup {
			return fmt.Errorf("duplicate enum %s", e.Name)
		}
		if len(e.Values) == 0 {
			return fmt.Errorf("enum %s has no values", e.Name)
		}
		d.enums[e.Name] = e
	}
	for i := range d.Shapes {
		s := &d.Shapes[i]
		if _, dup := d.shapes[s.Name]; dup {
			return fmt.Errorf("duplicate shape %s", s.Name)
		}
		if s.Kind == "" {
			s.Kind = KindStructure
		}
		if s.Group == "" {
			return fmt.Errorf("shape %s has no group", s.Name)
		}
		d.shapes[s.Name] = s
	}
	for _, e := range d.Errors {
		errs[e.Name] = true
	}

	for _, s := range d.Shapes {
		seen := make(map[string]bool, len(s.Fields))
		for _, f := range s.Fields {
			if f.Name == "" {
				return fmt.Errorf("shape %s has a field without a name", s.Name)
			}
			if seen[f.Name] {
				return fmt.Errorf("shape %s: duplicate field %s", s.Name, f.Name)
			}
			seen[f.Name] = true
			switch {
			case f.IsEnum():
				if d.enums[f.Ref()] == nil {
					return fmt.Errorf("shape %s field %s: unknown enum %s", s.Name, f.Name, f.Ref())
				}
			case f.IsShape():
				if d.shapes[f.Ref()] == nil {
					return fmt.Errorf("shape %s field %s: unknown shape %s", s.Name, f.Name, f.Ref())
				}
			default:
				if _, ok := scalarTypes[f.Type]; !ok {
					return fmt.Errorf("shape %s field %s: unknown type %q", s.Name, f.Name, f.Type)
				}
			}
		}
	}

	for _, op := range d.Operations {
		in, out := d.shapes[op.Input()], d.shapes[op.Output()]
		if in == nil || in.Kind != KindRequest {
			return fmt.Errorf("operation %s: missing request shape %s", op.Name, op.Input())
		}
		if out == nil || out.Kind != KindResult {
			return fmt.Errorf("operation %s: missing result shape %s", op.Name, op.Output())
		}
		for _, e := range op.Errors {
			if !errs[e] {
				return fmt.Errorf("operation %s: unknown error %s", op.Name, e)
			}
		}
		if op.Paginated && (!in.HasField("NextToken") || !out.HasField("NextToken")) {
			return fmt.Errorf("operation %s: paginated without NextToken", op.Name)
		}
		if op.IdempotencyToken != "" && !in.HasField(op.IdempotencyToken) {
			return fmt.Errorf("operation %s: no idempotency member %s", op.Name, op.IdempotencyToken)
		}
	}

	d.validated = map[string]bool{}
	for _, s := range d.Shapes {
		if s.Kind == KindRequest {
			d.markValidated(s.Name)
		}
	}
	return nil
}

// markValidated flags a shape and every shape reachable from it as input-side.
func (d *Document) markValidated(name string) {
	if d.validated[name] {
		return
	}
	d.validated[name] = true
	for _, f := range d.shapes[name].Fields {
		if f.IsShape() {
			d.markValidated(f.Ref())
		}
	}
}

// Validated reports whether the shape can be part of a request.
func (d *Document) Validated(name string) bool {
	return d.validated[name]
}

// Shape returns the named shape or nil.
func (d *Document) Shape(name string) *Shape {
	return d.shapes[name]
}

// Enum returns the named enum or nil.
func (d *Document) Enum(name string) *Enum {
	return d.enums[name]
}

// Groups returns the shape groups in sorted order.
func (d *Document) Groups() []string {
	set := map[string]bool{}
	for _, s := range d.Shapes {
		set[s.Group] = true
	}
	groups := make([]string, 0, len(set))
	for g := range set {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}

// ShapesInGroup returns the shapes of a group in declaration order.
func (d *Document) ShapesInGroup(group string) []Shape {
	var out []Shape
	for _, s := range d.Shapes {
		if s.Group == group {
			out = append(out, s)
		}
	}
	return out
}

// PaginatedOperations returns the operations that carry a continuation token.
func (d *Document) PaginatedOperations() []Operation {
	var out []Operation
	for _, op := range d.Operations {
		if op.Paginated {
			out = append(out, op)
		}
	}
	return out
}

// Input is the request shape name.
func (o Operation) Input() string { return o.Name + "Request" }

// Output is the result shape name.
func (o Operation) Output() string { return o.Name + "Result" }

// HasField reports whether the shape declares the named field.
func (s Shape) HasField(name string) bool {
	for _, f := range s.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Constants returns the Go constant names and wire values of the enum.
func (e Enum) Constants() []EnumConst {
	out := make([]EnumConst, 0, len(e.Values))
	for _, v := range e.Values {
		out = append(out, EnumConst{Name: e.Name + ConstName(v), Value: v})
	}
	return out
}

// ConstName turns a wire value such as IN_PROGRESS or zh-TW into InProgress or ZhTw.
func ConstName(v string) string {
	var b strings.Builder
	for _, part := range strings.FieldsFunc(v, func(r rune) bool {
		return r == '_' || r == '-' || r == '.' || r == ' '
	}) {
		rs := []rune(strings.ToLower(part))
		rs[0] = unicode.ToUpper(rs[0])
		b.WriteString(string(rs))
	}
	return b.String()
}
