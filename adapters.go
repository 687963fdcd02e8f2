package lnwire

import (
	"bytes"
	"io"
)

type (
	bytesBufferWriterAdapter struct{ *bytes.Buffer }

	// byteSource gives a plain io.Reader a ReadByte without reading ahead.
	byteSource struct {
		io.Reader
		b [1]byte
	}

	// exactSink turns a short write from a plain io.Writer into io.ErrShortWrite.
	exactSink struct{ w io.Writer }
)

func (w *bytesBufferWriterAdapter) Flush() error   { return nil }
func (w *bytesBufferWriterAdapter) Size() int      { return w.Available() }
func (w *bytesBufferWriterAdapter) SizeHint(n int) { w.Grow(n) }

// ReadByte reads exactly one byte from the underlying reader.
func (s *byteSource) ReadByte() (byte, error) {
	if _, err := io.ReadFull(s.Reader, s.b[:]); err != nil {
		return 0, err
	}
	return s.b[0], nil
}

// AsSink returns w as a sink that either writes all of a buffer or fails.
// Writers from this package and bytes.Buffer already behave that way and are
// returned unchanged.
func AsSink(w io.Writer) io.Writer {
	switch w.(type) {
	case *Writer, *BytesWriter, *bytes.Buffer, *exactSink:
		return w
	}
	return &exactSink{w: w}
}

func (s *exactSink) Write(p []byte) (int, error) {
	n, err := s.w.Write(p)
	if n < 0 {
		return 0, ErrInvalidWrite
	}
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}

// SizeHint forwards the hint when the wrapped writer accepts one.
func (s *exactSink) SizeHint(n int) { Hint(s.w, n) }
