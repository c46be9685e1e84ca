package gendb

import "io"

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func ensure(err error) {
	if err != nil {
		panic(err)
	}
}

type bytesBuilder struct {
	Buf []byte
}

var _ io.Writer = (*bytesBuilder)(nil)

func (bb *bytesBuilder) Write(p []byte) (int, error) {
	bb.Buf = appendRaw(bb.Buf, p)
	return len(p), nil
}
