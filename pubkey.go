package lnwire

import (
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
)

// PublicKeySize is the length of a compressed secp256k1 point.
const PublicKeySize = btcec.PubKeyBytesLenCompressed

// PublicKey is a secp256k1 point, always written compressed.
type PublicKey struct {
	*btcec.PublicKey
}

var _ Codec = (*PublicKey)(nil)

// ParsePublicKey validates a 33-byte compressed point.
func ParsePublicKey(b []byte) (PublicKey, error) {
	if len(b) != PublicKeySize {
		return PublicKey{}, fmt.Errorf("%w: %d bytes, want %d", ErrBadPublicKey, len(b), PublicKeySize)
	}
	key, err := btcec.ParsePubKey(b)
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: %v", ErrBadPublicKey, err)
	}
	return PublicKey{key}, nil
}

func (k *PublicKey) Size() int { return PublicKeySize }

func (k *PublicKey) WriteTo(w io.Writer) (int64, error) {
	if k.PublicKey == nil {
		return 0, fmt.Errorf("%w: no key set", ErrBadPublicKey)
	}
	n, err := AsSink(w).Write(k.SerializeCompressed())
	return int64(n), err
}

func (k *PublicKey) ReadFrom(r io.Reader) (int64, error) {
	var raw Bytes33
	n, err := raw.ReadFrom(r)
	if err != nil {
		return n, err
	}
	key, err := ParsePublicKey(raw.Value[:])
	if err != nil {
		return n, err
	}
	*k = key
	return n, nil
}

// Equal reports whether both keys are set and name the same point.
func (k *PublicKey) Equal(other *PublicKey) bool {
	if k.PublicKey == nil || other == nil || other.PublicKey == nil {
		return false
	}
	return k.IsEqual(other.PublicKey)
}

func (k *PublicKey) MarshalBinary() ([]byte, error)    { return MarshalBinaryGeneric(k) }
func (k *PublicKey) UnmarshalBinary(data []byte) error { return UnmarshalBinaryGeneric(k, data) }
func (k *PublicKey) MarshalTo(p []byte) (int, error)   { return MarshalToGeneric(k, p) }
