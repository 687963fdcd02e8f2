package lnwire

import (
	"bytes"
	"io"
	"sync"
)

// bytesBufPool reuses buffers for encodings that are hashed and then dropped.
// This reduces GC pressure by avoiding frequent allocations. We pool *bytes.Buffer
// because they are easily reset and resized.
var bytesBufPool = sync.Pool{
	New: func() any {
		// Lightning messages are capped at 64KiB; most fit well under 4KiB.
		return bytes.NewBuffer(make([]byte, 0, 4096))
	},
}

// Digest returns the double-SHA256 of v's encoding. Fields that carry maps use
// insertion order, so equal values produce equal digests.
func Digest(v io.WriterTo) (DoubleHash, error) {
	buf := bytesBufPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer bytesBufPool.Put(buf)

	if s, ok := v.(Sizer); ok {
		buf.Grow(s.Size())
	}
	if _, err := v.WriteTo(buf); err != nil {
		return DoubleHash{}, err
	}
	return HashOf(buf.Bytes()), nil
}
