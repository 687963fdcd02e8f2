package lnwire

import (
	"encoding/binary"
	"fmt"
	"io"
)

// ReaderPro is the source a Reader consumes: an io.Reader that can also yield
// single bytes.
type ReaderPro interface {
	io.Reader
	io.ByteReader
}

// Reader simplifies reading wire data from a source. It never reads ahead of
// the bytes a value needs, so the source can be handed on to the next decoder.
// It tracks the first error; subsequent reads become no-ops.
type Reader struct {
	r     ReaderPro
	count int64 // total bytes read
	err   error // first error encountered.
	order binary.ByteOrder
}

var _ ReaderPro = (*Reader)(nil)

// NewReader creates a new Reader. Sources that already provide ReadByte, such as
// bytes.Reader, bufio.Reader and BytesReader, are used directly; any other reader
// is read one exact request at a time.
func NewReader(r io.Reader) (*Reader, error) {
	if r == nil {
		return nil, ErrNilIO
	}

	switch src := r.(type) {
	case *Reader:
		return &Reader{r: src.r, order: Order}, nil
	case ReaderPro:
		return &Reader{r: src, order: Order}, nil
	}
	return &Reader{r: &byteSource{Reader: r}, order: Order}, nil
}

// Read implements the io.Reader interface.
func (r *Reader) Read(p []byte) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	n, err := r.r.Read(p)
	r.count += int64(n)
	r.setError(err)
	return n, r.err
}

func (r *Reader) Count() int64 { return r.count }
func (r *Reader) Err() error   { return r.err }

// IsExhausted reports whether the reader stopped because the source had no
// bytes left at the start of a value.
func (r *Reader) IsExhausted() bool { return IsExhausted(r.err) }

// setError records the first non-nil error.
func (r *Reader) setError(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// Fail latches err as if a read had failed with it.
func (r *Reader) Fail(err error) { r.setError(err) }

// Result returns the total bytes read and the final error state.
func (r *Reader) Result() (int64, error) {
	return r.count, r.err
}

// ReadTo decodes a value from this reader through its io.ReaderFrom.
func (r *Reader) ReadTo(w io.ReaderFrom) {
	if r.err != nil {
		return
	}
	if w == nil {
		r.setError(ErrReadToNil)
		return
	}
	n, err := w.ReadFrom(r.r)
	r.count += n
	r.setError(err)
}

// readFull is an internal helper to read an exact number of bytes.
func (r *Reader) readFull(n int) []byte {
	if r.err != nil {
		return nil
	}
	buf := make([]byte, n)
	r.ReadBytesTo(buf)
	if r.err != nil {
		return nil
	}
	return buf
}

// ReadBytes reads exactly n bytes into a new slice. A zero n yields an empty,
// non-nil slice.
func (r *Reader) ReadBytes(n int) []byte {
	if n < 0 {
		r.setError(fmt.Errorf("%w: negative length %d", ErrBadLengthDescriptor, n))
		return nil
	}
	return r.readFull(n)
}

// ReadBytesTo fills dest from the source or records a short read.
func (r *Reader) ReadBytesTo(dest []byte) {
	if r.err != nil || len(dest) == 0 {
		return
	}
	n, err := io.ReadFull(r.r, dest)
	r.count += int64(n)
	r.setError(shortRead(err))
}

// ReadPrefix reads a u16 length prefix.
func (r *Reader) ReadPrefix() int {
	var n uint16
	r.ReadUint16(&n)
	return int(n)
}

// ReadLenPrefixed reads a u16 length followed by that many bytes.
func (r *Reader) ReadLenPrefixed() []byte {
	n := r.ReadPrefix()
	if r.err != nil {
		return nil
	}
	return r.readFull(n)
}

// --- Primitive Read Operations ---

// ReadBool reads a single byte that must be 0 or 1.
func (r *Reader) ReadBool(dest *bool) {
	var b uint8
	r.ReadUint8(&b)
	if r.err != nil {
		return
	}
	switch b {
	case 0:
		*dest = false
	case 1:
		*dest = true
	default:
		r.setError(fmt.Errorf("%w: bool byte 0x%02x", ErrInvalidValue, b))
	}
}

func (r *Reader) ReadByte() (byte, error) {
	if r.err != nil {
		return 0, r.err
	}
	b, err := r.r.ReadByte()
	if err == nil {
		r.count++
	} else {
		r.err = shortRead(err)
	}
	return b, r.err
}

func (r *Reader) ReadUint8(dest *uint8) {
	b, err := r.ReadByte()
	if err == nil {
		*dest = b
	}
}

func (r *Reader) ReadUint16(dest *uint16) {
	var buf [2]byte
	r.ReadBytesTo(buf[:])
	if r.err == nil {
		*dest = r.order.Uint16(buf[:])
	}
}

func (r *Reader) ReadUint32(dest *uint32) {
	var buf [4]byte
	r.ReadBytesTo(buf[:])
	if r.err == nil {
		*dest = r.order.Uint32(buf[:])
	}
}

func (r *Reader) ReadUint64(dest *uint64) {
	var buf [8]byte
	r.ReadBytesTo(buf[:])
	if r.err == nil {
		*dest = r.order.Uint64(buf[:])
	}
}
