package lnwire

import (
	"fmt"
	"io"
)

// MarshalBinaryGeneric provides a generic `encoding.BinaryMarshaler` implementation.
func MarshalBinaryGeneric[T interface {
	Size() int
	io.WriterTo
}](v T) ([]byte, error) {
	expectedSize := v.Size()
	w := NewBytesWriter(make([]byte, expectedSize))
	n, err := v.WriteTo(w)
	if err != nil {
		return nil, err
	}
	if n < int64(expectedSize) {
		return nil, fmt.Errorf("%w: expected %d bytes, but wrote %d", io.ErrShortWrite, expectedSize, n)
	}
	return w.Bytes(), nil
}

// UnmarshalBinaryGeneric provides a generic `UnmarshalBinary` for types implementing `io.ReaderFrom`.
// The wire format has no padding, so any byte left after the value is an error.
func UnmarshalBinaryGeneric[T io.ReaderFrom](v T, data []byte) error {
	r := NewBytesReader(data)
	if _, err := v.ReadFrom(r); err != nil {
		return err
	}
	if rest := r.Available(); rest > 0 {
		return fmt.Errorf("%w: %d bytes", ErrTrailingData, rest)
	}
	return nil
}

// MarshalToGeneric provides a fallback implementation for the MarshalTo method.
func MarshalToGeneric[T interface {
	Size() int
	io.WriterTo
}](v T, p []byte) (int, error) {
	size := v.Size()
	if len(p) < size {
		return 0, io.ErrShortBuffer
	}
	w := NewBytesWriter(p[:size])
	n, err := v.WriteTo(w)
	if err != nil {
		return int(n), err
	}
	if n < int64(size) {
		return int(n), io.ErrShortWrite
	}
	return int(n), nil
}

// Encode writes v to any io.Writer, hinting its size first.
func Encode[T interface {
	Size() int
	io.WriterTo
}](w io.Writer, v T) error {
	Hint(w, v.Size())
	_, err := v.WriteTo(AsSink(w))
	return err
}
