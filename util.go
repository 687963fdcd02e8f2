package lnwire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// Order is the byte order of every multi-byte integer on the wire.
var Order = binary.BigEndian

const (
	// MaxLenPrefix is the largest length a u16 prefix can declare.
	MaxLenPrefix = 1<<16 - 1

	// MaxBufSize caps the byte size a decoded collection may claim.
	MaxBufSize = 64 * 1024

	// sigSizeClass is the per-element multiplier applied to signature vector
	// counts when checking them against MaxBufSize. It is the compressed key
	// size, not the signature size; peers compute the same bound.
	sigSizeClass = 33
)

func Ptr[T any](v T) *T { return &v } // Ptr is a helper function to create a pointer to a value, making test setup cleaner.

// MulChecked returns a*b and whether the product fits in T.
func MulChecked[T constraints.Unsigned](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}

// boundedLen checks that count elements of the given size class stay within MaxBufSize.
func boundedLen(count, class uint) error {
	size, ok := MulChecked(count, class)
	if !ok {
		return fmt.Errorf("%w: %d elements of %d bytes overflow", ErrBadLengthDescriptor, count, class)
	}
	if size > MaxBufSize {
		return fmt.Errorf("%w: %d elements of %d bytes exceed %d", ErrBadLengthDescriptor, count, class, MaxBufSize)
	}
	return nil
}

// prefixLen validates that n can be written as a u16 length prefix.
func prefixLen(n int) (uint16, error) {
	if n < 0 || n > MaxLenPrefix {
		return 0, fmt.Errorf("%w: length %d does not fit a u16 prefix", ErrBadLengthDescriptor, n)
	}
	return uint16(n), nil
}

// shortRead maps the io errors produced by exact reads onto ErrShortRead,
// keeping io.EOF (nothing read) and io.ErrUnexpectedEOF (partial read) in the chain.
func shortRead(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrShortRead):
		return err
	case errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("%w: %w", ErrShortRead, io.ErrUnexpectedEOF)
	case errors.Is(err, io.EOF):
		return fmt.Errorf("%w: %w", ErrShortRead, io.EOF)
	}
	return err
}

// IsExhausted reports whether err is a short read that found the source
// already empty, as opposed to one that ran out partway through a value.
func IsExhausted(err error) bool {
	return errors.Is(err, ErrShortRead) && errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF)
}
