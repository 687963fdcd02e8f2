package lnwire

import (
	"io"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// DoubleHash is a double-SHA256 digest. Every 32-byte string is a valid value.
type DoubleHash chainhash.Hash

var _ Codec = (*DoubleHash)(nil)

// HashOf returns the double-SHA256 digest of b.
func HashOf(b []byte) DoubleHash { return DoubleHash(chainhash.DoubleHashH(b)) }

// ChainHash converts to the btcd representation.
func (h DoubleHash) ChainHash() chainhash.Hash { return chainhash.Hash(h) }

// String shows the digest in the byte-reversed form used by block explorers.
func (h DoubleHash) String() string { return chainhash.Hash(h).String() }

func (h *DoubleHash) Size() int { return chainhash.HashSize }

func (h *DoubleHash) WriteTo(w io.Writer) (int64, error) {
	n, err := AsSink(w).Write(h[:])
	return int64(n), err
}

func (h *DoubleHash) ReadFrom(r io.Reader) (int64, error) {
	raw := Bytes32{Value: *h}
	n, err := raw.ReadFrom(r)
	if err == nil {
		*h = raw.Value
	}
	return n, err
}

func (h *DoubleHash) MarshalBinary() ([]byte, error)    { return MarshalBinaryGeneric(h) }
func (h *DoubleHash) UnmarshalBinary(data []byte) error { return UnmarshalBinaryGeneric(h, data) }
func (h *DoubleHash) MarshalTo(p []byte) (int, error)   { return MarshalToGeneric(h, p) }
