package protocol

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	smithyjson "github.com/aws/smithy-go/encoding/json"
	smithytime "github.com/aws/smithy-go/time"
)

var timeType = reflect.TypeOf(time.Time{})

// Marshal encodes a shape as an AWS JSON 1.1 document. Absent members are
// omitted and timestamps are written as epoch seconds.
func Marshal(v any) ([]byte, error) {
	enc := smithyjson.NewEncoder()
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return []byte("{}"), nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("marshal %T: not a shape", v)
	}
	if err := encodeValue(enc.Value, rv); err != nil {
		return nil, err
	}
	return enc.Bytes(), nil
}

func encodeValue(dst smithyjson.Value, v reflect.Value) error {
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		if v.Type() == timeType {
			dst.Double(smithytime.FormatEpochSeconds(v.Interface().(time.Time)))
			return nil
		}
		obj := dst.Object()
		defer obj.Close()
		for i := 0; i < v.NumField(); i++ {
			f := v.Type().Field(i)
			fv := v.Field(i)
			if !f.IsExported() || absent(fv) {
				continue
			}
			if err := encodeValue(obj.Key(wireName(f)), fv); err != nil {
				return fmt.Errorf("%s: %w", f.Name, err)
			}
		}
	case reflect.Slice:
		arr := dst.Array()
		defer arr.Close()
		for i := 0; i < v.Len(); i++ {
			if err := encodeValue(arr.Value(), v.Index(i)); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
	case reflect.String:
		dst.String(v.String())
	case reflect.Bool:
		dst.Boolean(v.Bool())
	case reflect.Int32:
		dst.Integer(int32(v.Int()))
	case reflect.Int, reflect.Int64:
		dst.Long(v.Int())
	case reflect.Float32:
		dst.Float(float32(v.Float()))
	case reflect.Float64:
		dst.Double(v.Float())
	default:
		return fmt.Errorf("unsupported kind %s", v.Kind())
	}
	return nil
}

func absent(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return v.IsNil()
	case reflect.String:
		return v.Len() == 0
	}
	return false
}

// wireName is the member name from the json tag, or the Go field name.
func wireName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if i := strings.IndexByte(tag, ','); i >= 0 {
		tag = tag[:i]
	}
	if tag == "" || tag == "-" {
		return f.Name
	}
	return tag
}

// Unmarshal decodes an AWS JSON 1.1 document into the shape pointed to by v.
// Unknown members are ignored and an empty document leaves v untouched.
func Unmarshal(data []byte, v any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("unmarshal into %T: not a shape pointer", v)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return decodeValue(rv.Elem(), doc)
}

func decodeValue(dst reflect.Value, src any) error {
	if src == nil {
		return nil
	}

	if dst.Kind() == reflect.Pointer {
		elem := reflect.New(dst.Type().Elem())
		if err := decodeValue(elem.Elem(), src); err != nil {
			return err
		}
		dst.Set(elem)
		return nil
	}

	switch dst.Kind() {
	case reflect.Struct:
		if dst.Type() == timeType {
			f, err := toFloat(src)
			if err != nil {
				return err
			}
			dst.Set(reflect.ValueOf(smithytime.ParseEpochSeconds(f)))
			return nil
		}
		obj, ok := src.(map[string]any)
		if !ok {
			return fmt.Errorf("expected object, got %T", src)
		}
		for i := 0; i < dst.NumField(); i++ {
			f := dst.Type().Field(i)
			if !f.IsExported() {
				continue
			}
			raw, ok := obj[wireName(f)]
			if !ok {
				continue
			}
			if err := decodeValue(dst.Field(i), raw); err != nil {
				return fmt.Errorf("%s: %w", f.Name, err)
			}
		}
	case reflect.Slice:
		arr, ok := src.([]any)
		if !ok {
			return fmt.Errorf("expected array, got %T", src)
		}
		out := reflect.MakeSlice(dst.Type(), len(arr), len(arr))
		for i, item := range arr {
			if err := decodeValue(out.Index(i), item); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		dst.Set(out)
	case reflect.String:
		s, ok := src.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", src)
		}
		dst.SetString(s)
	case reflect.Bool:
		b, ok := src.(bool)
		if !ok {
			return fmt.Errorf("expected boolean, got %T", src)
		}
		dst.SetBool(b)
	case reflect.Int, reflect.Int32, reflect.Int64:
		n, ok := src.(json.Number)
		if !ok {
			return fmt.Errorf("expected number, got %T", src)
		}
		i, err := n.Int64()
		if err != nil {
			return err
		}
		if dst.OverflowInt(i) {
			return fmt.Errorf("integer %d overflows %s", i, dst.Type())
		}
		dst.SetInt(i)
	case reflect.Float32, reflect.Float64:
		f, err := toFloat(src)
		if err != nil {
			return err
		}
		dst.SetFloat(f)
	default:
		return fmt.Errorf("unsupported kind %s", dst.Kind())
	}
	return nil
}

// toFloat accepts a JSON number or one of the non-finite literals.
func toFloat(src any) (float64, error) {
	switch v := src.(type) {
	case json.Number:
		return v.Float64()
	case string:
		switch v {
		case "NaN":
			return math.NaN(), nil
		case "Infinity":
			return math.Inf(1), nil
		case "-Infinity":
			return math.Inf(-1), nil
		}
	}
	return 0, fmt.Errorf("expected number, got %T", src)
}
