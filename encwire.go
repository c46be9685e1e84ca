package gendb

import "math"

// Writer is an append-only byte cursor producing the binary wire
// format. The zero value is ready to use. Writes never fail; the buffer
// grows as needed and existing bytes are never rewritten.
//
// Generated write functions call one Put per field, in declared field
// order. Field order is the entire framing of the format, so producer
// and consumer must be generated from the same schema.
type Writer struct {
	buf []byte
}

// NewWriter returns a writer appending to buf, which may be nil.
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// Bytes returns the encoded bytes accumulated so far.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Reset discards all written bytes, keeping the allocated buffer.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
}

func (w *Writer) PutUint8(v uint8) {
	w.buf = appendUint8(w.buf, v)
}

func (w *Writer) PutUint16(v uint16) {
	w.buf = appendUint16LE(w.buf, v)
}

func (w *Writer) PutUint32(v uint32) {
	w.buf = appendUint32LE(w.buf, v)
}

func (w *Writer) PutUint64(v uint64) {
	w.buf = appendUint64LE(w.buf, v)
}

func (w *Writer) PutInt8(v int8) {
	w.buf = appendUint8(w.buf, uint8(v))
}

func (w *Writer) PutInt16(v int16) {
	w.buf = appendUint16LE(w.buf, uint16(v))
}

func (w *Writer) PutInt32(v int32) {
	w.buf = appendUint32LE(w.buf, uint32(v))
}

func (w *Writer) PutInt64(v int64) {
	w.buf = appendUint64LE(w.buf, uint64(v))
}

// PutFloat32 writes the raw IEEE-754 bit pattern, so the value survives
// the codec bit-for-bit, NaN payloads included.
func (w *Writer) PutFloat32(v float32) {
	w.buf = appendUint32LE(w.buf, math.Float32bits(v))
}

func (w *Writer) PutFloat64(v float64) {
	w.buf = appendUint64LE(w.buf, math.Float64bits(v))
}

// PutBool writes a single byte, 1 for true and 0 for false.
func (w *Writer) PutBool(v bool) {
	if v {
		w.buf = appendUint8(w.buf, 1)
	} else {
		w.buf = appendUint8(w.buf, 0)
	}
}

// PutString writes a u32 byte-length prefix followed by the raw bytes
// of s. No terminator; a zero-length string is just the prefix.
func (w *Writer) PutString(s string) {
	w.buf = appendUint32LE(w.buf, uint32(len(s)))
	w.buf = appendString(w.buf, s)
}

// PutBytes writes a u32 length prefix followed by the raw bytes.
func (w *Writer) PutBytes(b []byte) {
	w.buf = appendUint32LE(w.buf, uint32(len(b)))
	w.buf = appendRaw(w.buf, b)
}

// PutEnum writes the enum's i32 discriminant value.
func PutEnum[E ~int32](w *Writer, v E) {
	w.PutInt32(int32(v))
}

// PutOption writes a one-byte presence flag, then the value via put iff
// v is non-nil.
func PutOption[T any](w *Writer, v *T, put func(*Writer, T)) {
	if v == nil {
		w.PutUint8(0)
	} else {
		w.PutUint8(1)
		put(w, *v)
	}
}

// PutSeq writes a u32 element count, then each element via put, in
// order.
func PutSeq[T any](w *Writer, items []T, put func(*Writer, T)) {
	w.PutUint32(uint32(len(items)))
	for i := range items {
		put(w, items[i])
	}
}

// Reader is a byte cursor consuming the binary wire format. Every read
// either consumes exactly the bytes of the requested kind or fails with
// an error wrapping ErrTruncated, leaving the cursor position
// unspecified; a partially decoded composite must be discarded.
type Reader struct {
	buf []byte
	off int
}

// NewReader returns a reader over buf starting at offset 0.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

func (r *Reader) take(n int, what string) ([]byte, error) {
	if len(r.buf)-r.off < n {
		return nil, dataErrf(r.buf, r.off, ErrTruncated, "reading %s", what)
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.take(1, "u8")
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.take(2, "u16")
	if err != nil {
		return 0, err
	}
	return getUint16LE(b), nil
}

func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.take(4, "u32")
	if err != nil {
		return 0, err
	}
	return getUint32LE(b), nil
}

func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.take(8, "u64")
	if err != nil {
		return 0, err
	}
	return getUint64LE(b), nil
}

func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()
	return int8(v), err
}

func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	return math.Float32frombits(v), err
}

func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	return math.Float64frombits(v), err
}

// ReadBool reads one byte; any nonzero value is true.
func (r *Reader) ReadBool() (bool, error) {
	v, err := r.ReadUint8()
	return v != 0, err
}

// ReadString reads a u32 length prefix and that many raw bytes. The
// payload is returned as-is, without UTF-8 validation.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return "", err
	}
	b, err := r.take(int(n), "string payload")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadBytes reads a u32 length prefix and that many raw bytes. The
// returned slice is a copy, safe to hold after the input buffer is
// reused.
func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	b, err := r.take(int(n), "bytes payload")
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// ReadEnum reads an i32 discriminant and converts it to the enum type.
// The value is not checked against the enum's declared members.
func ReadEnum[E ~int32](r *Reader) (E, error) {
	v, err := r.ReadInt32()
	return E(v), err
}

// ReadOption reads the presence flag and, if set, one value via read.
// Absent decodes to nil.
func ReadOption[T any](r *Reader, read func(*Reader) (T, error)) (*T, error) {
	flag, err := r.ReadUint8()
	if err != nil {
		return nil, err
	}
	if flag == 0 {
		return nil, nil
	}
	v, err := read(r)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// ReadSeq reads a u32 element count, then that many values via read, in
// order. An empty sequence decodes to a non-nil empty slice.
func ReadSeq[T any](r *Reader, read func(*Reader) (T, error)) ([]T, error) {
	count, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	// Cap the preallocation by what could possibly fit in the remaining
	// bytes, so a corrupt count cannot allocate gigabytes up front.
	capHint := int(count)
	if rem := r.Remaining(); capHint > rem {
		capHint = rem
	}
	items := make([]T, 0, capHint)
	for i := uint32(0); i < count; i++ {
		v, err := read(r)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}
