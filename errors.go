package lnwire

import "errors"

var (
	// ErrShortRead indicates the source ended before a value's bytes were available.
	// When the source was already exhausted the error also matches io.EOF, a
	// partial read matches io.ErrUnexpectedEOF.
	ErrShortRead = errors.New("lnwire: short read")

	// ErrBadLengthDescriptor indicates a declared or derived length exceeds its
	// ceiling or cannot be represented in a u16 prefix.
	ErrBadLengthDescriptor = errors.New("lnwire: bad length descriptor")

	// ErrInvalidValue indicates bytes that decode to a value outside the type's domain,
	// such as a bool byte other than 0 or 1.
	ErrInvalidValue = errors.New("lnwire: invalid value")

	// ErrBadPublicKey indicates 33 bytes that are not a compressed curve point.
	ErrBadPublicKey = errors.New("lnwire: bad public key")

	// ErrBadSignature indicates 64 bytes that are not a valid compact signature.
	ErrBadSignature = errors.New("lnwire: bad signature")

	// ErrTrailingData is returned by UnmarshalBinary when bytes remain after the value.
	ErrTrailingData = errors.New("lnwire: trailing data after decoding")

	// ErrTrailingField indicates a trailing-optional field placed before another field.
	ErrTrailingField = errors.New("lnwire: trailing optional field must be last")

	// ErrNilIO indicates that NewReader/NewWriter was called with an nil interface.
	ErrNilIO = errors.New("lnwire: NewReader/NewWriter called with a nil io.Reader/io.Writer")

	// ErrAlreadyBuffered indicates that NewWriter was called with a bufio.Writer that is
	// too small to be reused.
	ErrAlreadyBuffered = errors.New("lnwire: writer is already buffered")

	// ErrReadToNil indicates a ReadTo operation was attempted on a nil io.ReaderFrom.
	ErrReadToNil = errors.New("lnwire: ReadTo called with a nil io.ReaderFrom")

	// ErrInvalidWrite indicates that an io.Writer returned an invalid (negative) count from Write.
	ErrInvalidWrite = errors.New("lnwire: writer returned invalid count from Write")
)
