package lnwire

import (
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/txscript"
)

// Script is an opaque output script, written as a u16 length and its bytes.
type Script []byte

var _ Codec = (*Script)(nil)

// String disassembles the script, falling back to hex for bytes that do not parse.
func (s Script) String() string {
	if dis, err := txscript.DisasmString(s); err == nil {
		return dis
	}
	return fmt.Sprintf("%x", []byte(s))
}

func (s *Script) Size() int { return 2 + len(*s) }

func (s *Script) WriteTo(w io.Writer) (int64, error) {
	return (*VarBytes)(s).WriteTo(w)
}

func (s *Script) ReadFrom(r io.Reader) (int64, error) {
	return (*VarBytes)(s).ReadFrom(r)
}

func (s *Script) MarshalBinary() ([]byte, error)    { return MarshalBinaryGeneric(s) }
func (s *Script) UnmarshalBinary(data []byte) error { return UnmarshalBinaryGeneric(s, data) }
func (s *Script) MarshalTo(p []byte) (int, error)   { return MarshalToGeneric(s, p) }

// Trailing marks a field whose absence is signalled by the end of the stream.
// Such a field is only unambiguous as the final field of a message; Record
// enforces that.
type Trailing interface {
	trailing()
}

// OptionalScript is a script that may be absent, as used for the trailing
// shutdown_scriptpubkey of open_channel and accept_channel.
//
// Absent writes nothing. A present empty script writes 00 00 and decodes back
// as present, so the two stay distinct on decode even though an encoder never
// needs to emit the empty form.
type OptionalScript struct {
	Script  Script
	Present bool
}

var (
	_ Codec    = (*OptionalScript)(nil)
	_ Trailing = (*OptionalScript)(nil)
)

// SomeScript returns a present optional script.
func SomeScript(s Script) OptionalScript { return OptionalScript{Script: s, Present: true} }

func (o *OptionalScript) trailing() {}

func (o *OptionalScript) Size() int {
	if !o.Present {
		return 0
	}
	return o.Script.Size()
}

func (o *OptionalScript) WriteTo(w io.Writer) (int64, error) {
	if !o.Present {
		return 0, nil
	}
	return o.Script.WriteTo(w)
}

// ReadFrom yields an absent script only when the source has no bytes left at
// all. A lone length byte or a payload cut short is still a short read.
//
// Wire compatibility: some decoders treat any short read of the u16 prefix as
// absent, so a message ending in a single stray byte decodes there but fails
// here with ErrShortRead. Encoders never produce that form: an absent script
// writes nothing and a present one writes the full prefix.
func (o *OptionalScript) ReadFrom(r io.Reader) (int64, error) {
	var s Script
	n, err := s.ReadFrom(r)
	switch {
	case err == nil:
		*o = SomeScript(s)
	case n == 0 && IsExhausted(err):
		*o = OptionalScript{}
		err = nil
	case errors.Is(err, ErrShortRead):
		err = fmt.Errorf("optional script: %w", err)
	}
	return n, err
}

func (o *OptionalScript) MarshalBinary() ([]byte, error)    { return MarshalBinaryGeneric(o) }
func (o *OptionalScript) UnmarshalBinary(data []byte) error { return UnmarshalBinaryGeneric(o, data) }
func (o *OptionalScript) MarshalTo(p []byte) (int, error)   { return MarshalToGeneric(o, p) }
