package gendb

func ensureCapacity(buf []byte, minCap int) []byte {
	c := cap(buf)
	if minCap > c {
		if c < 16 {
			c = 16
		}
		for minCap > c {
			c <<= 1
		}
		old := buf
		buf = make([]byte, len(old), c)
		copy(buf, old)
	}
	return buf
}

func grow(buf []byte, n int) (int, []byte) {
	off := len(buf)
	newLen := off + n
	buf = ensureCapacity(buf, newLen)
	return off, buf[:newLen]
}

func appendRaw(buf []byte, chunk []byte) []byte {
	n := len(chunk)
	off, buf := grow(buf, n)
	copy(buf[off:], chunk)
	return buf
}

func appendString(buf []byte, v string) []byte {
	n := len(v)
	off, buf := grow(buf, n)
	copy(buf[off:], v)
	return buf
}

// Little-endian append helpers. The wire format is little-endian
// throughout, unlike typical key encodings which favor big-endian for
// ordering; nothing here relies on byte-wise comparability.

func appendUint8(buf []byte, v uint8) []byte {
	off, buf := grow(buf, 1)
	buf[off] = v
	return buf
}

func appendUint16LE(buf []byte, v uint16) []byte {
	off, buf := grow(buf, 2)
	buf[off+0] = byte(v)
	buf[off+1] = byte(v >> 8)
	return buf
}

func appendUint32LE(buf []byte, v uint32) []byte {
	off, buf := grow(buf, 4)
	buf[off+0] = byte(v)
	buf[off+1] = byte(v >> 8)
	buf[off+2] = byte(v >> 16)
	buf[off+3] = byte(v >> 24)
	return buf
}

func appendUint64LE(buf []byte, v uint64) []byte {
	off, buf := grow(buf, 8)
	buf[off+0] = byte(v)
	buf[off+1] = byte(v >> 8)
	buf[off+2] = byte(v >> 16)
	buf[off+3] = byte(v >> 24)
	buf[off+4] = byte(v >> 32)
	buf[off+5] = byte(v >> 40)
	buf[off+6] = byte(v >> 48)
	buf[off+7] = byte(v >> 56)
	return buf
}

func getUint16LE(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

func getUint32LE(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func getUint64LE(b []byte) uint64 {
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}
