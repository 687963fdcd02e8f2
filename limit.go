package lnwire

import "io"

// LimitedReader is a source that yields at most N more bytes, then io.EOF.
// It backs Record's message size ceiling.
type LimitedReader struct {
	R ReaderPro
	N int64 // remaining bytes
}

// LimitReader bounds r to n bytes.
func LimitReader(r io.Reader, n int64) *LimitedReader {
	src, ok := r.(ReaderPro)
	if !ok {
		src = &byteSource{Reader: r}
	}
	return &LimitedReader{R: src, N: n}
}

func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.N <= 0 {
		return 0, io.EOF
	}
	if int64(len(p)) > l.N {
		p = p[:l.N]
	}
	n, err := l.R.Read(p)
	l.N -= int64(n)
	return n, err
}

func (l *LimitedReader) ReadByte() (byte, error) {
	if l.N <= 0 {
		return 0, io.EOF
	}
	b, err := l.R.ReadByte()
	if err == nil {
		l.N--
	}
	return b, err
}
