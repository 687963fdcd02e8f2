package lnwire

import "io"

// Signatures is a u16-counted vector of compact signatures, as carried by
// commitment_signed for HTLC signatures.
//
// Both directions bound count*33 by MaxBufSize before touching the stream, so a
// hostile count is rejected without allocating for it.
type Signatures []Signature

var _ Codec = (*Signatures)(nil)

func (v *Signatures) Size() int { return 2 + len(*v)*SignatureSize }

func (v *Signatures) WriteTo(writer io.Writer) (int64, error) {
	if err := boundedLen(uint(len(*v)), sigSizeClass); err != nil {
		return 0, err
	}
	w, err := NewWriter(writer)
	if err != nil {
		return 0, err
	}
	w.SizeHint(v.Size())
	w.WritePrefix(len(*v))
	for i := range *v {
		w.WriteFrom(&(*v)[i])
	}
	return w.Result()
}

func (v *Signatures) ReadFrom(reader io.Reader) (int64, error) {
	r, err := NewReader(reader)
	if err != nil {
		return 0, err
	}
	count := r.ReadPrefix()
	if r.Err() != nil {
		return r.Result()
	}
	if err := boundedLen(uint(count), sigSizeClass); err != nil {
		r.Fail(err)
		return r.Result()
	}
	sigs := make(Signatures, count)
	for i := range sigs {
		r.ReadTo(&sigs[i])
	}
	if r.Err() == nil {
		*v = sigs
	}
	return r.Result()
}

func (v *Signatures) MarshalBinary() ([]byte, error)    { return MarshalBinaryGeneric(v) }
func (v *Signatures) UnmarshalBinary(data []byte) error { return UnmarshalBinaryGeneric(v, data) }
func (v *Signatures) MarshalTo(p []byte) (int, error)   { return MarshalToGeneric(v, p) }
