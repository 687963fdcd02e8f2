package lnwire

import (
	"fmt"
	"io"
)

// MaxMessageSize is the largest Lightning message payload.
const MaxMessageSize = 65535

// Field is one wire value inside a Record. Fields are pointers so that decoding
// can fill them in place.
type Field interface {
	Sizer
	io.WriterTo
	io.ReaderFrom
}

// Record composes fields in a fixed order into a message body. It owns no bytes
// of its own: no header, no padding, no count.
//
// A field whose absence is signalled by end of stream (see Trailing) may only be
// the last field; NewRecord rejects any other placement, including a nested
// Record that ends with such a field.
type Record struct {
	fields  []Field
	maxSize int64
}

var _ Codec = (*Record)(nil)

// NewRecord returns a record over fields, read and written in order.
func NewRecord(fields ...Field) (*Record, error) {
	for i, f := range fields {
		if f == nil {
			return nil, fmt.Errorf("lnwire: record field %d is nil", i)
		}
		if endsOpen(f) && i != len(fields)-1 {
			return nil, fmt.Errorf("%w: field %d of %d", ErrTrailingField, i, len(fields))
		}
	}
	return &Record{fields: fields}, nil
}

// MustRecord is NewRecord for field lists fixed at compile time.
func MustRecord(fields ...Field) *Record {
	r, err := NewRecord(fields...)
	if err != nil {
		panic(err)
	}
	return r
}

// WithMaxSize bounds how many bytes ReadFrom may consume. Zero means no bound.
func (rec *Record) WithMaxSize(n int64) *Record {
	rec.maxSize = n
	return rec
}

func (rec *Record) Len() int          { return len(rec.fields) }
func (rec *Record) Fields() []Field   { return rec.fields }
func (rec *Record) Field(i int) Field { return rec.fields[i] }

// endsOpen reports whether f may legitimately stop at end of stream.
func endsOpen(f Field) bool {
	switch v := f.(type) {
	case Trailing:
		return true
	case *Record:
		return len(v.fields) > 0 && endsOpen(v.fields[len(v.fields)-1])
	}
	return false
}

// Size calculates the total binary size of the record.
func (rec *Record) Size() int {
	total := 0
	for _, f := range rec.fields {
		total += f.Size()
	}
	return total
}

// WriteTo writes every field in order.
func (rec *Record) WriteTo(writer io.Writer) (int64, error) {
	w, err := NewWriter(writer)
	if err != nil {
		return 0, err
	}
	w.SizeHint(rec.Size())
	for _, f := range rec.fields {
		w.WriteFrom(f)
	}
	return w.Result()
}

// ReadFrom decodes every field in order, stopping at the first error.
func (rec *Record) ReadFrom(reader io.Reader) (int64, error) {
	if rec.maxSize > 0 {
		reader = LimitReader(reader, rec.maxSize)
	}
	r, err := NewReader(reader)
	if err != nil {
		return 0, err
	}
	for i, f := range rec.fields {
		r.ReadTo(f)
		if err := r.Err(); err != nil {
			n, _ := r.Result()
			return n, fmt.Errorf("field %d (%T): %w", i, f, err)
		}
	}
	return r.Result()
}

func (rec *Record) MarshalBinary() ([]byte, error)    { return MarshalBinaryGeneric(rec) }
func (rec *Record) UnmarshalBinary(data []byte) error { return UnmarshalBinaryGeneric(rec, data) }
func (rec *Record) MarshalTo(p []byte) (int, error)   { return MarshalToGeneric(rec, p) }
