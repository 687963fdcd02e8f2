package layout

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/oy3o/lnwire"
)

// onionPreview is how many onion payload bytes Describe prints.
const onionPreview = 16

// Describe renders a decoded field as a single line of text.
func Describe(f lnwire.Field) string {
	switch v := f.(type) {
	case *lnwire.Uint8:
		return strconv.FormatUint(uint64(v.Value), 10)
	case *lnwire.Uint16:
		return strconv.FormatUint(uint64(v.Value), 10)
	case *lnwire.Uint32:
		return strconv.FormatUint(uint64(v.Value), 10)
	case *lnwire.Uint64:
		return strconv.FormatUint(v.Value, 10)
	case *lnwire.Bool:
		return strconv.FormatBool(bool(*v))
	case *lnwire.Bytes32:
		return hex.EncodeToString(v.Value[:])
	case *lnwire.Bytes33:
		return hex.EncodeToString(v.Value[:])
	case *lnwire.Bytes64:
		return hex.EncodeToString(v.Value[:])
	case *lnwire.OnionPayload:
		return fmt.Sprintf("%s... (%d bytes)", hex.EncodeToString(v.Value[:onionPreview]), len(v.Value))
	case *lnwire.VarBytes:
		return hex.EncodeToString(*v)
	case *lnwire.PublicKey:
		if v.PublicKey == nil {
			return "<nil>"
		}
		return hex.EncodeToString(v.SerializeCompressed())
	case *lnwire.Signature:
		b := v.Compact()
		return hex.EncodeToString(b[:])
	case *lnwire.Signatures:
		parts := make([]string, len(*v))
		for i := range *v {
			parts[i] = Describe(&(*v)[i])
		}
		return fmt.Sprintf("%d [%s]", len(parts), strings.Join(parts, " "))
	case *lnwire.DoubleHash:
		return v.String()
	case *lnwire.Script:
		return v.String()
	case *lnwire.OptionalScript:
		if !v.Present {
			return "absent"
		}
		return v.Script.String()
	case *lnwire.Record:
		parts := make([]string, v.Len())
		for i, field := range v.Fields() {
			parts[i] = Describe(field)
		}
		return "{" + strings.Join(parts, ", ") + "}"
	}
	return fmt.Sprintf("%v", f)
}
