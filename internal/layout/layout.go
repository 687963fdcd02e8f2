// Package layout describes message bodies as ordered lists of named field kinds
// and builds lnwire records from them.
package layout

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/oy3o/lnwire"
)

var (
	ErrUnknownKind   = errors.New("layout: unknown field kind")
	ErrUnknownLayout = errors.New("layout: unknown layout")
	ErrEmptyLayout   = errors.New("layout: no fields")
	ErrUnknownKey    = errors.New("layout: unknown config key")
)

// Kind names a wire field type, e.g. "u16" or "pubkey".
type Kind string

var kinds = map[Kind]func() lnwire.Field{
	"u8":      func() lnwire.Field { return new(lnwire.Uint8) },
	"u16":     func() lnwire.Field { return new(lnwire.Uint16) },
	"u32":     func() lnwire.Field { return new(lnwire.Uint32) },
	"u64":     func() lnwire.Field { return new(lnwire.Uint64) },
	"bool":    func() lnwire.Field { return new(lnwire.Bool) },
	"bytes32": func() lnwire.Field { return new(lnwire.Bytes32) },
	"bytes33": func() lnwire.Field { return new(lnwire.Bytes33) },
	"bytes64": func() lnwire.Field { return new(lnwire.Bytes64) },
	"onion":   func() lnwire.Field { return new(lnwire.OnionPayload) },
	"bytes":   func() lnwire.Field { return new(lnwire.VarBytes) },
	"pubkey":  func() lnwire.Field { return new(lnwire.PublicKey) },
	"sig":     func() lnwire.Field { return new(lnwire.Signature) },
	"sigs":    func() lnwire.Field { return new(lnwire.Signatures) },
	"hash":    func() lnwire.Field { return new(lnwire.DoubleHash) },
	"script":  func() lnwire.Field { return new(lnwire.Script) },
	"script?": func() lnwire.Field { return new(lnwire.OptionalScript) },
}

// Kinds lists the known kinds in sorted order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// NewField returns a fresh zero field of kind k.
func NewField(k Kind) (lnwire.Field, error) {
	mk, ok := kinds[Kind(strings.TrimSpace(string(k)))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, k)
	}
	return mk(), nil
}

// Layout is a named, ordered list of field kinds.
type Layout struct {
	Name   string
	Fields []Kind
}

// Parse reads a comma separated kind list such as "bytes32,u16,script?".
func Parse(name, list string) (Layout, error) {
	l := Layout{Name: name}
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		l.Fields = append(l.Fields, Kind(part))
	}
	return l, l.Validate()
}

// Validate checks every kind is known. Field ordering is checked by Build.
func (l Layout) Validate() error {
	if len(l.Fields) == 0 {
		return fmt.Errorf("%w: %q", ErrEmptyLayout, l.Name)
	}
	for _, k := range l.Fields {
		if _, err := NewField(k); err != nil {
			return fmt.Errorf("layout %q: %w", l.Name, err)
		}
	}
	return nil
}

// Build returns a record of fresh fields, bounded to a Lightning message size.
func (l Layout) Build() (*lnwire.Record, error) {
	fields := make([]lnwire.Field, 0, len(l.Fields))
	for _, k := range l.Fields {
		f, err := NewField(k)
		if err != nil {
			return nil, fmt.Errorf("layout %q: %w", l.Name, err)
		}
		fields = append(fields, f)
	}
	rec, err := lnwire.NewRecord(fields...)
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", l.Name, err)
	}
	return rec.WithMaxSize(lnwire.MaxMessageSize), nil
}

// Set is a collection of layouts by name.
type Set map[string]Layout

// Get looks up a layout.
func (s Set) Get(name string) (Layout, error) {
	l, ok := s[name]
	if !ok {
		return Layout{}, fmt.Errorf("%w: %q", ErrUnknownLayout, name)
	}
	return l, nil
}

// Names lists the layout names in sorted order.
func (s Set) Names() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Builtin returns layouts for a few BOLT #2 messages whose bodies use only the
// kinds above.
func Builtin() Set {
	return Set{
		"funding_created": {Name: "funding_created", Fields: []Kind{"bytes32", "hash", "u16", "sig"}},
		"funding_signed":  {Name: "funding_signed", Fields: []Kind{"bytes32", "sig"}},
		"funding_locked":  {Name: "funding_locked", Fields: []Kind{"bytes32", "pubkey"}},
		"shutdown":        {Name: "shutdown", Fields: []Kind{"bytes32", "script"}},
		"closing_signed":  {Name: "closing_signed", Fields: []Kind{"bytes32", "u64", "sig"}},
		"commitment_signed": {
			Name:   "commitment_signed",
			Fields: []Kind{"bytes32", "sig", "sigs"},
		},
		"revoke_and_ack": {
			Name:   "revoke_and_ack",
			Fields: []Kind{"bytes32", "bytes32", "pubkey"},
		},
		"update_fee": {Name: "update_fee", Fields: []Kind{"bytes32", "u32"}},
		"update_add_htlc": {
			Name:   "update_add_htlc",
			Fields: []Kind{"bytes32", "u64", "u64", "bytes32", "u32", "u8", "bytes33", "onion", "bytes32"},
		},
		"accept_channel": {
			Name: "accept_channel",
			Fields: []Kind{
				"bytes32", "u64", "u64", "u64", "u64", "u32", "u16", "u16",
				"pubkey", "pubkey", "pubkey", "pubkey", "pubkey", "pubkey", "script?",
			},
		},
	}
}
