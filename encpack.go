package gendb

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
)

// The pack codec renders a flat all-scalar struct as its field values
// joined by a single delimiter character, in declared field order:
// "100.5;200.3". The delimiter is fixed per type at schema definition
// time and is never escaped, so values must not contain it.
//
// Per-type encodings are built with reflection once and cached.

type packField struct {
	Index  int
	Name   string
	format func(v reflect.Value) string
	parse  func(s string, v reflect.Value) error
}

type packEncoding struct {
	typ    reflect.Type
	fields []*packField
}

var packEncodings sync.Map // reflect.Type => *packEncoding

func packEncodingOf(typ reflect.Type) *packEncoding {
	if e, ok := packEncodings.Load(typ); ok {
		return e.(*packEncoding)
	}
	if typ.Kind() != reflect.Struct {
		panic(fmt.Errorf("gendb: pack requires a flat struct, got %v", typ))
	}
	enc := &packEncoding{typ: typ}
	n := typ.NumField()
	for i := 0; i < n; i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			panic(fmt.Errorf("gendb: pack field %v.%s must be exported", typ, field.Name))
		}
		pf := &packField{Index: i, Name: field.Name}
		ft := field.Type
		switch ft.Kind() {
		case reflect.String:
			pf.format = func(v reflect.Value) string {
				return v.String()
			}
			pf.parse = func(s string, v reflect.Value) error {
				v.SetString(s)
				return nil
			}
		case reflect.Bool:
			pf.format = func(v reflect.Value) string {
				return strconv.FormatBool(v.Bool())
			}
			pf.parse = func(s string, v reflect.Value) error {
				b, err := strconv.ParseBool(s)
				if err != nil {
					return err
				}
				v.SetBool(b)
				return nil
			}
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			bits := ft.Bits()
			pf.format = func(v reflect.Value) string {
				return strconv.FormatInt(v.Int(), 10)
			}
			pf.parse = func(s string, v reflect.Value) error {
				x, err := strconv.ParseInt(s, 10, bits)
				if err != nil {
					return err
				}
				v.SetInt(x)
				return nil
			}
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			bits := ft.Bits()
			pf.format = func(v reflect.Value) string {
				return strconv.FormatUint(v.Uint(), 10)
			}
			pf.parse = func(s string, v reflect.Value) error {
				x, err := strconv.ParseUint(s, 10, bits)
				if err != nil {
					return err
				}
				v.SetUint(x)
				return nil
			}
		case reflect.Float32, reflect.Float64:
			bits := ft.Bits()
			pf.format = func(v reflect.Value) string {
				// Shortest form that round-trips, '.' decimal point, no
				// grouping, regardless of locale: "100.5", "10", "-0.25".
				return strconv.FormatFloat(v.Float(), 'g', -1, bits)
			}
			pf.parse = func(s string, v reflect.Value) error {
				x, err := strconv.ParseFloat(s, bits)
				if err != nil {
					return err
				}
				v.SetFloat(x)
				return nil
			}
		default:
			panic(fmt.Errorf("gendb: pack field %v.%s is %v; pack types must have only scalar fields", typ, field.Name, ft))
		}
		enc.fields = append(enc.fields, pf)
	}
	packEncodings.LoadOrStore(typ, enc)
	return enc
}

// Pack renders v's fields in declared order, joined by delim. v must be
// a flat all-scalar struct or a pointer to one; anything else is a
// programmer error and panics.
func Pack(v any, delim byte) string {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	enc := packEncodingOf(val.Type())
	parts := make([]string, len(enc.fields))
	for i, pf := range enc.fields {
		parts[i] = pf.format(val.Field(pf.Index))
	}
	return strings.Join(parts, string(delim))
}

// Unpack splits s on delim and parses each part positionally into the
// corresponding field of *out. It fails with a PackError wrapping
// ErrPackArity when the part count differs from the field count, and
// with one wrapping ErrPackParse when a part does not parse as its
// field's type; out is left in an unspecified state on failure.
func Unpack(s string, delim byte, out any) error {
	ptrVal := reflect.ValueOf(out)
	if ptrVal.Kind() != reflect.Ptr || ptrVal.IsNil() {
		panic(fmt.Errorf("gendb: Unpack requires a non-nil struct pointer, got %T", out))
	}
	val := ptrVal.Elem()
	enc := packEncodingOf(val.Type())

	parts := strings.Split(s, string(delim))
	if len(parts) != len(enc.fields) {
		return packErrf(enc.typ, "", s,
			fmt.Errorf("%w: got %d, want %d", ErrPackArity, len(parts), len(enc.fields)))
	}
	for i, pf := range enc.fields {
		if err := pf.parse(parts[i], val.Field(pf.Index)); err != nil {
			return packErrf(enc.typ, "."+pf.Name, s, fmt.Errorf("%w: %v", ErrPackParse, err))
		}
	}
	return nil
}

// TryUnpack is Unpack with failure reported as a boolean, for probing
// untrusted input without error plumbing. On failure *out is in an
// unspecified state.
func TryUnpack(s string, delim byte, out any) bool {
	return Unpack(s, delim, out) == nil
}
