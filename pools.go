package gendb

import "sync"

var writerPool = &sync.Pool{
	New: func() any {
		return &Writer{buf: make([]byte, 0, 65536)}
	},
}

// GetWriter returns an empty pooled Writer. Generated write functions
// that encode many rows in a loop use this to avoid reallocating the
// buffer per row.
func GetWriter() *Writer {
	return writerPool.Get().(*Writer)
}

// PutWriter returns w to the pool. The caller must be done with the
// slice returned by w.Bytes: the buffer is reused.
func PutWriter(w *Writer) {
	w.Reset()
	writerPool.Put(w)
}
