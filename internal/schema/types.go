package schema

import (
	"strconv"
	"strings"
)

// scalarTypes maps description scalar types to Go element types.
var scalarTypes = map[string]string{
	"string":    "string",
	"int32":     "int32",
	"float32":   "float32",
	"float64":   "float64",
	"bool":      "bool",
	"timestamp": "time.Time",
}

// zeroValues maps Go element types to their zero literal.
var zeroValues = map[string]string{
	"string":    `""`,
	"int32":     "0",
	"float32":   "0",
	"float64":   "0",
	"bool":      "false",
	"time.Time": "time.Time{}",
}

// IsEnum reports whether the field is enum-constrained.
func (f Field) IsEnum() bool { return strings.HasPrefix(f.Type, "enum:") }

// IsShape reports whether the field holds a nested shape.
func (f Field) IsShape() bool { return strings.HasPrefix(f.Type, "shape:") }

// IsTimestamp reports whether the field element is a timestamp.
func (f Field) IsTimestamp() bool { return f.Type == "timestamp" }

// Ref is the referenced enum or shape name.
func (f Field) Ref() string {
	if i := strings.IndexByte(f.Type, ':'); i >= 0 {
		return f.Type[i+1:]
	}
	return ""
}

// ElemType is the Go type of a single value of the field.
func (f Field) ElemType() string {
	if f.IsEnum() || f.IsShape() {
		return f.Ref()
	}
	return scalarTypes[f.Type]
}

// GoType is the Go type of the struct member.
func (f Field) GoType() string {
	switch {
	case f.List:
		return "[]" + f.ElemType()
	case f.IsEnum():
		return f.ElemType()
	default:
		return "*" + f.ElemType()
	}
}

// GetterType is the type returned by the generated getter.
func (f Field) GetterType() string {
	if f.List || f.IsShape() {
		return f.GoType()
	}
	return f.ElemType()
}

// Zero is the literal returned by the getter when the field is absent.
func (f Field) Zero() string {
	switch {
	case f.List || f.IsShape():
		return "nil"
	case f.IsEnum():
		return `""`
	default:
		return zeroValues[f.ElemType()]
	}
}

// Tag renders the struct tag of the member. Validation rules are only
// rendered for shapes that can be sent to the service.
func (f Field) Tag(validated bool) string {
	tag := `json:"` + f.Name + `,omitempty"`
	if v := f.ValidateTag(); validated && v != "" {
		tag += ` validate:"` + v + `"`
	}
	return "`" + tag + "`"
}

// ValidateTag renders the validator rules of the documented constraints.
func (f Field) ValidateTag() string {
	var rules []string
	if f.Required {
		rules = append(rules, "required")
	}
	if !f.IsEnum() && !f.IsShape() || f.List {
		if f.Min != nil {
			rules = append(rules, "min="+strconv.Itoa(*f.Min))
		}
		if f.Max != nil {
			rules = append(rules, "max="+strconv.Itoa(*f.Max))
		}
	}
	if f.Pattern != "" && !f.List {
		rules = append(rules, f.Pattern)
	}
	if f.List {
		var item []string
		if f.ItemMin != nil {
			item = append(item, "min="+strconv.Itoa(*f.ItemMin))
		}
		if f.ItemMax != nil {
			item = append(item, "max="+strconv.Itoa(*f.ItemMax))
		}
		if f.ItemPattern != "" {
			item = append(item, f.ItemPattern)
		}
		if len(item) > 0 || f.IsShape() {
			rules = append(rules, append([]string{"dive"}, item...)...)
		}
	}
	if len(rules) == 0 {
		return ""
	}
	if !f.Required {
		rules = append([]string{"omitempty"}, rules...)
	}
	return strings.Join(rules, ",")
}

// HasList reports whether any field of the shape is a list.
func (s Shape) HasList() bool {
	for _, f := range s.Fields {
		if f.List {
			return true
		}
	}
	return false
}

// HasTimestamp reports whether any field of the shape is a timestamp.
func (s Shape) HasTimestamp() bool {
	for _, f := range s.Fields {
		if f.IsTimestamp() {
			return true
		}
	}
	return false
}
