package lnwire

import "io"

// VarBytes is a byte vector written as a u16 length followed by the bytes.
type VarBytes []byte

var _ Codec = (*VarBytes)(nil)

func (v *VarBytes) Size() int { return 2 + len(*v) }

// WriteTo fails with ErrBadLengthDescriptor before writing anything if the
// vector is longer than a u16 prefix can describe.
func (v *VarBytes) WriteTo(writer io.Writer) (int64, error) {
	if _, err := prefixLen(len(*v)); err != nil {
		return 0, err
	}
	w, err := NewWriter(writer)
	if err != nil {
		return 0, err
	}
	w.SizeHint(v.Size())
	w.WriteLenPrefixed(*v)
	return w.Result()
}

// ReadFrom reads the prefix and then exactly that many bytes. A source that
// ends early is a short read; v is left unchanged.
func (v *VarBytes) ReadFrom(reader io.Reader) (int64, error) {
	r, err := NewReader(reader)
	if err != nil {
		return 0, err
	}
	buf := r.ReadLenPrefixed()
	if r.Err() == nil {
		*v = buf
	}
	return r.Result()
}

func (v *VarBytes) MarshalBinary() ([]byte, error)    { return MarshalBinaryGeneric(v) }
func (v *VarBytes) UnmarshalBinary(data []byte) error { return UnmarshalBinaryGeneric(v, data) }
func (v *VarBytes) MarshalTo(p []byte) (int, error)   { return MarshalToGeneric(v, p) }
