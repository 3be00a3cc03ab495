// Package shapeutil implements the structural methods shared by every
// generated shape: debug formatting, equality and hashing.
//
// A shape is a struct whose exported fields are pointers to scalars,
// named string enums, pointers to nested shapes or slices of either.
// A nil pointer, a nil slice and an empty enum string are absent.
package shapeutil

import (
	"fmt"
	"hash/fnv"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// prime is the multiplier of the accumulated field hash.
const prime = 31

var timeType = reflect.TypeOf(time.Time{})

// Prettify renders v as {Field: value, Other: value}, omitting absent fields.
// Nested shapes render recursively, lists as [a, b] and timestamps in RFC 3339.
func Prettify(v any) string {
	var b strings.Builder
	prettify(reflect.ValueOf(v), &b)
	return b.String()
}

func prettify(v reflect.Value, b *strings.Builder) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			b.WriteString("<nil>")
			return
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Invalid:
		b.WriteString("<nil>")
	case reflect.Struct:
		if v.Type() == timeType {
			b.WriteString(v.Interface().(time.Time).Format(time.RFC3339Nano))
			return
		}
		b.WriteByte('{')
		first := true
		for i := 0; i < v.NumField(); i++ {
			f := v.Type().Field(i)
			fv := v.Field(i)
			if !f.IsExported() || absent(fv) {
				continue
			}
			if !first {
				b.WriteString(", ")
			}
			first = false
			b.WriteString(f.Name)
			b.WriteString(": ")
			prettify(fv, b)
		}
		b.WriteByte('}')
	case reflect.Slice:
		b.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			prettify(v.Index(i), b)
		}
		b.WriteByte(']')
	case reflect.String:
		b.WriteString(v.String())
	case reflect.Float32:
		b.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 32))
	case reflect.Float64:
		b.WriteString(strconv.FormatFloat(v.Float(), 'g', -1, 64))
	default:
		fmt.Fprint(b, v.Interface())
	}
}

// absent reports whether a shape field carries no value.
func absent(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return v.IsNil()
	case reflect.String:
		return v.Len() == 0
	}
	return false
}

// Equal reports whether a and b have the same type and every field is either
// absent in both or present in both with equal values. Timestamps compare by
// instant.
func Equal(a, b any) bool {
	return equal(reflect.ValueOf(a), reflect.ValueOf(b))
}

func equal(a, b reflect.Value) bool {
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}
	if a.Type() != b.Type() {
		return false
	}

	switch a.Kind() {
	case reflect.Pointer, reflect.Interface:
		if a.IsNil() || b.IsNil() {
			return a.IsNil() == b.IsNil()
		}
		return equal(a.Elem(), b.Elem())
	case reflect.Slice:
		if a.IsNil() != b.IsNil() || a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !equal(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		if a.Type() == timeType {
			return a.Interface().(time.Time).Equal(b.Interface().(time.Time))
		}
		for i := 0; i < a.NumField(); i++ {
			if !a.Type().Field(i).IsExported() {
				continue
			}
			if !equal(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true
	case reflect.String:
		return a.String() == b.String()
	case reflect.Float32, reflect.Float64:
		x, y := a.Float(), b.Float()
		return x == y || math.IsNaN(x) && math.IsNaN(y)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() == b.Int()
	case reflect.Bool:
		return a.Bool() == b.Bool()
	}
	return reflect.DeepEqual(a.Interface(), b.Interface())
}

// Hash accumulates the field hashes of v in declaration order as
// h = 31*h + fieldHash, starting from 1. Absent fields contribute 0, so
// values that are Equal hash equally.
func Hash(v any) int {
	return hash(reflect.ValueOf(v))
}

func hash(v reflect.Value) int {
	switch v.Kind() {
	case reflect.Invalid:
		return 0
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return 0
		}
		return hash(v.Elem())
	case reflect.Slice:
		if v.IsNil() {
			return 0
		}
		h := 1
		for i := 0; i < v.Len(); i++ {
			h = prime*h + hash(v.Index(i))
		}
		return h
	case reflect.Struct:
		if v.Type() == timeType {
			n := v.Interface().(time.Time).UnixNano()
			return int(n ^ n>>32)
		}
		h := 1
		for i := 0; i < v.NumField(); i++ {
			if !v.Type().Field(i).IsExported() {
				continue
			}
			h = prime*h + hash(v.Field(i))
		}
		return h
	case reflect.String:
		if v.Len() == 0 {
			return 0
		}
		f := fnv.New32a()
		f.Write([]byte(v.String()))
		return int(f.Sum32())
	case reflect.Float32:
		return int(math.Float32bits(float32(canonicalFloat(v.Float()))))
	case reflect.Float64:
		bits := math.Float64bits(canonicalFloat(v.Float()))
		return int(bits ^ bits>>32)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(v.Int())
	case reflect.Bool:
		if v.Bool() {
			return 1231
		}
		return 1237
	}
	return 0
}

// canonicalFloat folds the values Equal treats as equal onto one bit pattern:
// -0 onto +0 and every NaN onto math.NaN().
func canonicalFloat(f float64) float64 {
	if f == 0 {
		return 0
	}
	if math.IsNaN(f) {
		return math.NaN()
	}
	return f
}
