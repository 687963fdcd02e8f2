package layout

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// layouts.toml key mapping:
//
//	[layouts.open_channel_tail]
//	fields = ["pubkey", "u8", "script?"]
type fileConfig struct {
	Layouts map[string]fileLayout `toml:"layouts"`
}

type fileLayout struct {
	Fields []string `toml:"fields"`
}

// LoadFile reads layouts from a TOML file and overlays them on the builtin set.
// A file layout with the same name as a builtin replaces it.
func LoadFile(path string) (Set, error) {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("load layouts: %w", err)
	}
	if err := checkKeys(meta); err != nil {
		return nil, fmt.Errorf("load layouts: %w", err)
	}
	return overlay(Builtin(), raw)
}

// Decode reads layouts from TOML text, overlaid on the builtin set.
func Decode(data string) (Set, error) {
	var raw fileConfig
	meta, err := toml.Decode(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("decode layouts: %w", err)
	}
	if err := checkKeys(meta); err != nil {
		return nil, fmt.Errorf("decode layouts: %w", err)
	}
	return overlay(Builtin(), raw)
}

// checkKeys rejects keys the layout schema does not know, so a misspelt
// "fields" is an error rather than an empty layout.
func checkKeys(meta toml.MetaData) error {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: %v", ErrUnknownKey, undecoded)
	}
	return nil
}

func overlay(set Set, raw fileConfig) (Set, error) {
	for name, fl := range raw.Layouts {
		name = strings.TrimSpace(name)
		l := Layout{Name: name}
		for _, k := range fl.Fields {
			l.Fields = append(l.Fields, Kind(strings.TrimSpace(k)))
		}
		if err := l.Validate(); err != nil {
			return nil, err
		}
		if _, err := l.Build(); err != nil {
			return nil, err
		}
		set[name] = l
	}
	return set, nil
}
