package lnwire

import (
	"encoding/binary"
	"fmt"
	"io"
	"reflect"

	"github.com/puzpuzpuz/xsync/v4"
)

// sizeCache avoids the high performance cost of reflection in `binary.Size`
// on every call. Using a concurrent map makes it safe across connections.
var sizeCache = xsync.NewMap[reflect.Type, int]()

// Fixed is the single codec for every wire value whose size is part of its type:
// unsigned integers are written big-endian, byte arrays verbatim, with no length prefix.
//
// Constraint: Value MUST NOT contain variable-size fields like slices,
// maps, or strings, as this will cause `binary.Size` to fail.
type Fixed[T any] struct {
	Value T
}

type (
	Uint8  = Fixed[uint8]
	Uint16 = Fixed[uint16]
	Uint32 = Fixed[uint32]
	Uint64 = Fixed[uint64]

	// Bytes32 carries channel ids and HMACs.
	Bytes32 = Fixed[[32]byte]
	// Bytes33 carries raw compressed points.
	Bytes33 = Fixed[[33]byte]
	// Bytes64 carries raw compact signatures.
	Bytes64 = Fixed[[64]byte]
	// OnionPayload carries the per-hop data of an onion packet.
	OnionPayload = Fixed[[1300]byte]
)

// Statically assert that Fixed implements Codec.
var _ Codec = (*Fixed[uint64])(nil)

// NewFixed wraps v for encoding.
func NewFixed[T any](v T) *Fixed[T] { return &Fixed[T]{Value: v} }

// Size returns the fixed size of the value in bytes.
// The result is cached to avoid reflection overhead on subsequent calls.
func (c *Fixed[T]) Size() int {
	valueType := reflect.TypeOf((*T)(nil)).Elem()

	if size, ok := sizeCache.Load(valueType); ok {
		return size
	}

	size := binary.Size(&c.Value)
	sizeCache.Store(valueType, size)
	return size
}

// MarshalBinary implements the standard `encoding.BinaryMarshaler` interface.
// Note: This method allocates a new byte slice. For performance-critical paths,
// use `MarshalTo` or `WriteTo` instead.
func (c *Fixed[T]) MarshalBinary() ([]byte, error) {
	buf := make([]byte, c.Size())
	if _, err := binary.Encode(buf, Order, &c.Value); err != nil {
		return nil, fmt.Errorf("lnwire: encode %T: %w", c.Value, err)
	}
	return buf, nil
}

// UnmarshalBinary implements the standard `encoding.BinaryUnmarshaler` interface.
// data must hold exactly one value.
func (c *Fixed[T]) UnmarshalBinary(data []byte) error {
	size := c.Size()
	if len(data) < size {
		return shortRead(io.ErrUnexpectedEOF)
	}
	if len(data) > size {
		return fmt.Errorf("%w: %d bytes", ErrTrailingData, len(data)-size)
	}
	if _, err := binary.Decode(data, Order, &c.Value); err != nil {
		return shortRead(io.ErrUnexpectedEOF) // binary.Decode only fails on a short buffer
	}
	return nil
}

// ReadFrom implements `io.ReaderFrom`, reading exactly Size bytes from r.
// On a short read the count is what the source actually gave up and the value
// is unchanged.
func (c *Fixed[T]) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, c.Size())
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return int64(n), shortRead(err)
	}
	if _, err := binary.Decode(buf, Order, &c.Value); err != nil {
		return int64(n), shortRead(io.ErrUnexpectedEOF)
	}
	return int64(n), nil
}

// WriteTo implements `io.WriterTo` for allocation-free writing
// directly to a stream (e.g., a network connection or file).
func (c *Fixed[T]) WriteTo(w io.Writer) (int64, error) {
	if err := binary.Write(AsSink(w), Order, &c.Value); err != nil {
		return 0, err
	}
	return int64(c.Size()), nil
}

// MarshalTo marshals the value into the provided slice `p`.
// This is the most performant marshalling option as it avoids memory allocation.
func (c *Fixed[T]) MarshalTo(p []byte) (int, error) {
	n, err := binary.Encode(p, Order, &c.Value)
	if err != nil {
		return n, io.ErrShortBuffer // binary.Encode only fails on a short buffer
	}
	return n, nil
}

// Bool is a strict one-byte boolean: 0 is false, 1 is true, anything else is invalid.
type Bool bool

var _ Codec = (*Bool)(nil)

func (b *Bool) Size() int { return 1 }

func (b *Bool) WriteTo(w io.Writer) (int64, error) {
	var v byte
	if *b {
		v = 1
	}
	n, err := AsSink(w).Write([]byte{v})
	return int64(n), err
}

func (b *Bool) ReadFrom(r io.Reader) (int64, error) {
	rd, err := NewReader(r)
	if err != nil {
		return 0, err
	}
	var v bool
	rd.ReadBool(&v)
	if rd.Err() == nil {
		*b = Bool(v)
	}
	return rd.Result()
}

func (b *Bool) MarshalBinary() ([]byte, error)    { return MarshalBinaryGeneric(b) }
func (b *Bool) UnmarshalBinary(data []byte) error { return UnmarshalBinaryGeneric(b, data) }
func (b *Bool) MarshalTo(p []byte) (int, error)   { return MarshalToGeneric(b, p) }
