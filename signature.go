package lnwire

import (
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

// SignatureSize is the length of a compact (r || s) signature.
const SignatureSize = 64

// Signature is an ECDSA signature in its 64-byte compact wire form.
type Signature struct {
	r, s btcec.ModNScalar
}

var _ Codec = (*Signature)(nil)

// SignatureFromCompact parses r || s, rejecting scalars that are not below the
// group order.
func SignatureFromCompact(b [SignatureSize]byte) (Signature, error) {
	var sig Signature
	if sig.r.SetByteSlice(b[:32]) {
		return Signature{}, fmt.Errorf("%w: r overflows the group order", ErrBadSignature)
	}
	if sig.s.SetByteSlice(b[32:]) {
		return Signature{}, fmt.Errorf("%w: s overflows the group order", ErrBadSignature)
	}
	return sig, nil
}

// Compact returns the 64-byte wire form.
func (sig *Signature) Compact() [SignatureSize]byte {
	var out [SignatureSize]byte
	r, s := sig.r.Bytes(), sig.s.Bytes()
	copy(out[:32], r[:])
	copy(out[32:], s[:])
	return out
}

// ECDSA returns the signature for verification with btcec.
func (sig *Signature) ECDSA() *ecdsa.Signature {
	return ecdsa.NewSignature(&sig.r, &sig.s)
}

func (sig *Signature) Size() int { return SignatureSize }

func (sig *Signature) WriteTo(w io.Writer) (int64, error) {
	b := sig.Compact()
	n, err := AsSink(w).Write(b[:])
	return int64(n), err
}

func (sig *Signature) ReadFrom(r io.Reader) (int64, error) {
	var raw Bytes64
	n, err := raw.ReadFrom(r)
	if err != nil {
		return n, err
	}
	parsed, err := SignatureFromCompact(raw.Value)
	if err != nil {
		return n, err
	}
	*sig = parsed
	return n, nil
}

func (sig *Signature) MarshalBinary() ([]byte, error)    { return MarshalBinaryGeneric(sig) }
func (sig *Signature) UnmarshalBinary(data []byte) error { return UnmarshalBinaryGeneric(sig, data) }
func (sig *Signature) MarshalTo(p []byte) (int, error)   { return MarshalToGeneric(sig, p) }
