// Package lnwire implements the fixed-layout binary encoding used by Lightning
// peer messages: big-endian integers, fixed-size byte arrays, u16 length-prefixed
// collections and the curve/script types built on top of them.
//
// Every wire type implements Codec. Encoding targets any io.Writer, decoding
// consumes any io.Reader strictly forward and never reads past the bytes a value
// occupies, so values can be composed field by field on a live connection.
package lnwire

import (
	"encoding"
	"io"
)

// Sizer is an interface for types that can report their binary size.
// This is useful for pre-allocating buffers before encoding.
type Sizer interface {
	// Size returns the size of the type in bytes when binary encoded.
	Size() int
}

// SizeHinter is the optional half of the sink capability. A writer that
// implements it is told how many bytes are about to be written; ignoring the
// hint never changes the encoded output.
type SizeHinter interface {
	SizeHint(n int)
}

// Hint forwards a size hint to w if it accepts one. Any other io.Writer is a
// sink as is and the hint is dropped.
func Hint(w io.Writer, n int) {
	if h, ok := w.(SizeHinter); ok && n > 0 {
		h.SizeHint(n)
	}
}

// Marshaler defines the core methods for encoding an object into a byte stream.
type Marshaler interface {
	// encoding.BinaryMarshaler allocates and returns a new byte slice.
	encoding.BinaryMarshaler
	// io.WriterTo writes the value to any sink.
	io.WriterTo

	// MarshalTo encodes the object into a pre-allocated buffer, returning
	// io.ErrShortBuffer if the buffer is too small.
	MarshalTo(buf []byte) (int, error)
}

// Unmarshaler defines the core methods for decoding a byte stream into an object.
type Unmarshaler interface {
	// encoding.BinaryUnmarshaler decodes exactly one value from a byte slice.
	encoding.BinaryUnmarshaler
	// io.ReaderFrom decodes from a stream, consuming only the value's bytes.
	io.ReaderFrom
}

// Codec aggregates all binary serialization and deserialization interfaces.
// A type implementing Codec is a complete, self-sizing binary encoder/decoder.
type Codec interface {
	Sizer
	Marshaler
	Unmarshaler
}
