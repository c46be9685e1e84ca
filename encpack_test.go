package gendb

import (
	"errors"
	"math"
	"testing"
)

// Sample pack-annotated value types the way the generator emits them:
// flat structs of scalars, one fixed delimiter each.

type position struct {
	X float32
	Y float32
}

type position3D struct {
	X float32
	Y float32
	Z float32
}

type color struct {
	R uint8
	G uint8
	B uint8
}

type colorAlpha struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

type size struct {
	Width  int32
	Height int32
}

type valueRange struct {
	Min int64
	Max int64
}

func TestPack(t *testing.T) {
	tests := []struct {
		input    any
		delim    byte
		expected string
	}{
		{position{100.5, 200.3}, ';', "100.5;200.3"},
		{position3D{10, 20, 30}, ';', "10;20;30"},
		{color{255, 128, 64}, ',', "255,128,64"},
		{colorAlpha{255, 255, 255, 128}, '|', "255|255|255|128"},
		{size{800, 600}, ';', "800;600"},
		{valueRange{-100, 100}, '~', "-100~100"},
		{&size{1, 2}, ';', "1;2"}, // pointer works too
	}
	for _, test := range tests {
		if a := Pack(test.input, test.delim); a != test.expected {
			t.Errorf("** Pack(%v) = %q, wanted %q", test.input, a, test.expected)
		}
	}
}

func TestUnpackRoundTrip(t *testing.T) {
	var pos position
	ensure(Unpack("100.5;200.3", ';', &pos))
	if math.Abs(float64(pos.X)-100.5) > 0.01 || math.Abs(float64(pos.Y)-200.3) > 0.01 {
		t.Errorf("position = %v", pos)
	}

	var ca colorAlpha
	ensure(Unpack("255|255|255|128", '|', &ca))
	if ca != (colorAlpha{255, 255, 255, 128}) {
		t.Errorf("colorAlpha = %v", ca)
	}

	var sz size
	ensure(Unpack("800;600", ';', &sz))
	if sz != (size{800, 600}) {
		t.Errorf("size = %v", sz)
	}

	var vr valueRange
	ensure(Unpack("-100~100", '~', &vr))
	if vr != (valueRange{-100, 100}) {
		t.Errorf("range = %v", vr)
	}
}

func TestUnpackErrors(t *testing.T) {
	var pos position

	err := Unpack("invalid", ';', &pos)
	if !errors.Is(err, ErrPackArity) {
		t.Errorf("1 part for 2 fields: %v", err)
	}

	err = Unpack("1;2;3", ';', &pos)
	if !errors.Is(err, ErrPackArity) {
		t.Errorf("3 parts for 2 fields: %v", err)
	}

	err = Unpack("1.0;junk", ';', &pos)
	if !errors.Is(err, ErrPackParse) {
		t.Errorf("unparsable part: %v", err)
	}
	var pe *PackError
	if !errors.As(err, &pe) || pe.Field != ".Y" {
		t.Errorf("error does not name the failing field: %v", err)
	}

	var sz size
	err = Unpack("99999999999;0", ';', &sz)
	if !errors.Is(err, ErrPackParse) {
		t.Errorf("i32 overflow: %v", err)
	}
}

func TestTryUnpack(t *testing.T) {
	var pos position
	if TryUnpack("invalid", ';', &pos) {
		t.Errorf("TryUnpack accepted garbage")
	}
	if !TryUnpack("1.0;2.0", ';', &pos) {
		t.Errorf("TryUnpack rejected valid input")
	}
	if pos.X != 1.0 || pos.Y != 2.0 {
		t.Errorf("position = %v", pos)
	}
}

func TestPackScalarVariety(t *testing.T) {
	type misc struct {
		Name   string
		Level  uint16
		Factor float64
		Live   bool
	}
	v := misc{"boss", 12, -0.25, true}
	packed := Pack(v, ',')
	if packed != "boss,12,-0.25,true" {
		t.Fatalf("packed = %q", packed)
	}
	var got misc
	ensure(Unpack(packed, ',', &got))
	if got != v {
		t.Errorf("round-tripped to %v", got)
	}
}

func TestPackRejectsNonFlatTypes(t *testing.T) {
	type nested struct {
		Items []int
	}
	defer func() {
		if recover() == nil {
			t.Errorf("no panic for a non-scalar field")
		}
	}()
	Pack(nested{}, ';')
}

func TestPackFloatFormIsLocaleIndependent(t *testing.T) {
	// Always '.' decimal point, no grouping, shortest round-trip form.
	cases := map[float64]string{
		1234567.5: "1.2345675e+06",
		0.5:       "0.5",
		-3:        "-3",
	}
	type f struct{ V float64 }
	for in, want := range cases {
		if got := Pack(f{in}, ';'); got != want {
			t.Errorf("** Pack(%v) = %q, wanted %q", in, got, want)
		}
		var out f
		ensure(Unpack(Pack(f{in}, ';'), ';', &out))
		if out.V != in {
			t.Errorf("** %v round-tripped to %v", in, out.V)
		}
	}
}
