package gendb

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrTruncated is wrapped by every decode error caused by a read past
// the end of input. It is the only failure mode of the wire codec.
var ErrTruncated = errors.New("truncated input")

// ErrPackArity is wrapped by unpack errors where the delimiter-split
// part count disagrees with the type's field count.
var ErrPackArity = errors.New("wrong number of packed fields")

// ErrPackParse is wrapped by unpack errors where a part fails to parse
// as its field's type.
var ErrPackParse = errors.New("invalid packed field")

// DataError describes a decode failure against a specific input buffer.
type DataError struct {
	Data []byte
	Off  int
	Err  error
	Msg  string
}

func dataErrf(data []byte, off int, err error, format string, args ...any) error {
	return &DataError{data, off, err, fmt.Sprintf(format, args...)}
}

func (e *DataError) Unwrap() error {
	return e.Err
}

func (e *DataError) Error() string {
	const prefixLen = 64
	const suffixLen = 32
	n := len(e.Data)
	if n <= prefixLen+suffixLen {
		if e.Err != nil {
			return fmt.Sprintf("%s at %d: %v: (%d) %x", e.Msg, e.Off, e.Err, n, e.Data)
		} else {
			return fmt.Sprintf("%s at %d: (%d) %x", e.Msg, e.Off, n, e.Data)
		}
	} else {
		p, s := e.Data[:prefixLen], e.Data[n-suffixLen:]
		if e.Err != nil {
			return fmt.Sprintf("%s at %d: %v: (%d) %x...%x", e.Msg, e.Off, e.Err, n, p, s)
		} else {
			return fmt.Sprintf("%s at %d: (%d) %x...%x", e.Msg, e.Off, n, p, s)
		}
	}
}

// PackError describes an Unpack failure: either an arity mismatch or a
// field that failed to parse. Input is the full packed string.
type PackError struct {
	Type  reflect.Type
	Field string
	Input string
	Err   error
}

func packErrf(typ reflect.Type, field, input string, err error) error {
	return &PackError{typ, field, input, err}
}

func (e *PackError) Unwrap() error {
	return e.Err
}

func (e *PackError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("unpack %v%s: %v in %q", e.Type, e.Field, e.Err, e.Input)
	}
	return fmt.Sprintf("unpack %v: %v in %q", e.Type, e.Err, e.Input)
}
