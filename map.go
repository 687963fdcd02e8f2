package lnwire

import (
	"fmt"
	"io"
	"iter"
)

// codecOf is satisfied by *T when T's pointer is a wire codec. It lets Map
// decode into fresh values of K and V without reflection.
type codecOf[T any] interface {
	*T
	Sizer
	io.WriterTo
	io.ReaderFrom
}

// mapPrealloc bounds the capacity reserved from a declared entry count; beyond it
// the map grows only as entries actually arrive.
const mapPrealloc = 64

// Map is a key/value mapping written as a u16 entry count followed by each key
// and its value. Entries are written in insertion order, so the same map always
// encodes to the same bytes and can be hashed or signed.
//
// Keys are compared by their encoding, not by Go equality: two PublicKey values
// naming the same point are the same key even though their pointers differ. A key
// that cannot be encoded cannot be stored.
type Map[K, V any, PK codecOf[K], PV codecOf[V]] struct {
	keys  []K
	vals  []V
	index map[string]int // key encoding -> position in keys/vals
}

// NewMap returns an empty map. The pointer type parameters are inferred:
//
//	m := lnwire.NewMap[lnwire.Bytes32, lnwire.Uint64]()
func NewMap[K, V any, PK codecOf[K], PV codecOf[V]]() *Map[K, V, PK, PV] {
	return &Map[K, V, PK, PV]{index: make(map[string]int)}
}

// keyOf returns the wire encoding of k, which is its identity in the map.
func keyOf[K any, PK codecOf[K]](k *K) (string, error) {
	b, err := MarshalBinaryGeneric(PK(k))
	if err != nil {
		return "", fmt.Errorf("map key: %w", err)
	}
	return string(b), nil
}

func (m *Map[K, V, PK, PV]) Len() int { return len(m.keys) }

// Set stores v under k. A new key is appended; an existing key keeps its position.
func (m *Map[K, V, PK, PV]) Set(k K, v V) error {
	id, err := keyOf[K, PK](&k)
	if err != nil {
		return err
	}
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[id]; ok {
		m.vals[i] = v
		return nil
	}
	m.index[id] = len(m.keys)
	m.keys = append(m.keys, k)
	m.vals = append(m.vals, v)
	return nil
}

func (m *Map[K, V, PK, PV]) Get(k K) (V, bool) {
	var zero V
	id, err := keyOf[K, PK](&k)
	if err != nil {
		return zero, false
	}
	i, ok := m.index[id]
	if !ok {
		return zero, false
	}
	return m.vals[i], true
}

// Delete removes k, preserving the order of the remaining keys.
func (m *Map[K, V, PK, PV]) Delete(k K) {
	id, err := keyOf[K, PK](&k)
	if err != nil {
		return
	}
	i, ok := m.index[id]
	if !ok {
		return
	}
	delete(m.index, id)
	m.keys = append(m.keys[:i], m.keys[i+1:]...)
	m.vals = append(m.vals[:i], m.vals[i+1:]...)
	for other, j := range m.index {
		if j > i {
			m.index[other] = j - 1
		}
	}
}

// All iterates entries in wire order.
func (m *Map[K, V, PK, PV]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i, k := range m.keys {
			if !yield(k, m.vals[i]) {
				return
			}
		}
	}
}

// Keys returns a copy of the keys in wire order.
func (m *Map[K, V, PK, PV]) Keys() []K {
	return append([]K(nil), m.keys...)
}

func (m *Map[K, V, PK, PV]) Size() int {
	size := 2
	for k, v := range m.All() {
		size += PK(&k).Size() + PV(&v).Size()
	}
	return size
}

func (m *Map[K, V, PK, PV]) WriteTo(writer io.Writer) (int64, error) {
	if _, err := prefixLen(len(m.keys)); err != nil {
		return 0, err
	}
	w, err := NewWriter(writer)
	if err != nil {
		return 0, err
	}
	w.SizeHint(m.Size())
	w.WritePrefix(len(m.keys))
	for k, v := range m.All() {
		w.WriteFrom(PK(&k))
		w.WriteFrom(PV(&v))
	}
	return w.Result()
}

// ReadFrom replaces the map's contents with the decoded entries. A repeated key
// is ErrInvalidValue; on any error the map is left unchanged.
func (m *Map[K, V, PK, PV]) ReadFrom(reader io.Reader) (int64, error) {
	r, err := NewReader(reader)
	if err != nil {
		return 0, err
	}
	count := r.ReadPrefix()
	if r.Err() != nil {
		return r.Result()
	}

	keys := make([]K, 0, min(count, mapPrealloc))
	vals := make([]V, 0, min(count, mapPrealloc))
	index := make(map[string]int, min(count, mapPrealloc))
	for range count {
		var k K
		var v V
		r.ReadTo(PK(&k))
		r.ReadTo(PV(&v))
		if r.Err() != nil {
			return r.Result()
		}
		id, err := keyOf[K, PK](&k)
		if err != nil {
			r.Fail(err)
			return r.Result()
		}
		if _, dup := index[id]; dup {
			r.Fail(fmt.Errorf("%w: duplicate map key at entry %d", ErrInvalidValue, len(keys)))
			return r.Result()
		}
		index[id] = len(keys)
		keys = append(keys, k)
		vals = append(vals, v)
	}

	m.keys, m.vals, m.index = keys, vals, index
	return r.Result()
}

func (m *Map[K, V, PK, PV]) MarshalBinary() ([]byte, error)    { return MarshalBinaryGeneric(m) }
func (m *Map[K, V, PK, PV]) UnmarshalBinary(data []byte) error { return UnmarshalBinaryGeneric(m, data) }
func (m *Map[K, V, PK, PV]) MarshalTo(p []byte) (int, error)   { return MarshalToGeneric(m, p) }
