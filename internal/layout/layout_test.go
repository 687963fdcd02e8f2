package layout

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oy3o/lnwire"
)

const generatorKey = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"

func TestEveryKindBuilds(t *testing.T) {
	for _, k := range Kinds() {
		f, err := NewField(k)
		require.NoError(t, err, k)
		assert.NotNil(t, f, k)
	}
	_, err := NewField("u128")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestParse(t *testing.T) {
	l, err := Parse("x", " bytes32, u16 ,script?, ")
	require.NoError(t, err)
	assert.Equal(t, []Kind{"bytes32", "u16", "script?"}, l.Fields)

	_, err = Parse("empty", " , ")
	assert.ErrorIs(t, err, ErrEmptyLayout)

	_, err = Parse("bad", "u16,nope")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestBuildRejectsEarlyOptional(t *testing.T) {
	l, err := Parse("bad", "script?,u8")
	require.NoError(t, err, "kinds are valid on their own")
	_, err = l.Build()
	assert.ErrorIs(t, err, lnwire.ErrTrailingField)
}

func TestBuiltinLayoutsBuild(t *testing.T) {
	set := Builtin()
	for _, name := range set.Names() {
		l, err := set.Get(name)
		require.NoError(t, err)
		_, err = l.Build()
		assert.NoError(t, err, name)
	}
	_, err := set.Get("init")
	assert.ErrorIs(t, err, ErrUnknownLayout)
}

func TestFundingLockedDecode(t *testing.T) {
	l, err := Builtin().Get("funding_locked")
	require.NoError(t, err)
	rec, err := l.Build()
	require.NoError(t, err)

	key, _ := hex.DecodeString(generatorKey)
	data := append(bytes.Repeat([]byte{0xAB}, 32), key...)
	require.NoError(t, rec.UnmarshalBinary(data))

	assert.Equal(t, hex.EncodeToString(bytes.Repeat([]byte{0xAB}, 32)), Describe(rec.Field(0)))
	assert.Equal(t, generatorKey, Describe(rec.Field(1)))
}

func TestDescribe(t *testing.T) {
	absent := new(lnwire.OptionalScript)
	sigs := lnwire.Signatures{}
	cases := []struct {
		field lnwire.Field
		want  string
	}{
		{&lnwire.Uint8{Value: 7}, "7"},
		{&lnwire.Uint16{Value: 513}, "513"},
		{&lnwire.Uint32{Value: 70000}, "70000"},
		{&lnwire.Uint64{Value: 1 << 40}, "1099511627776"},
		{lnwire.Ptr(lnwire.Bool(true)), "true"},
		{&lnwire.VarBytes{0xDE, 0xAD}, "dead"},
		{&lnwire.Script{0x51}, "1"},
		{absent, "absent"},
		{lnwire.Ptr(lnwire.SomeScript(lnwire.Script{0x51})), "1"},
		{&sigs, "0 []"},
		{new(lnwire.PublicKey), "<nil>"},
		{lnwire.MustRecord(&lnwire.Uint8{Value: 1}, &lnwire.Uint8{Value: 2}), "{1, 2}"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Describe(tc.field))
	}

	onion := Describe(new(lnwire.OnionPayload))
	assert.Contains(t, onion, "(1300 bytes)")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "layouts.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[layouts.ping_tail]
fields = ["u16", "bytes"]

[layouts.shutdown]
fields = ["bytes32", "script?"]
`), 0o600))

	set, err := LoadFile(path)
	require.NoError(t, err)

	l, err := set.Get("ping_tail")
	require.NoError(t, err)
	assert.Equal(t, []Kind{"u16", "bytes"}, l.Fields)

	l, err = set.Get("shutdown")
	require.NoError(t, err)
	assert.Equal(t, []Kind{"bytes32", "script?"}, l.Fields, "file layouts replace builtins")

	_, err = set.Get("funding_signed")
	assert.NoError(t, err, "builtins stay available")
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	unknownKey := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknownKey, []byte("[layouts.x]\nfields = [\"u8\"]\nextra = 1\n"), 0o600))
	_, err := LoadFile(unknownKey)
	assert.ErrorIs(t, err, ErrUnknownKey)

	badOrder := filepath.Join(dir, "order.toml")
	require.NoError(t, os.WriteFile(badOrder, []byte("[layouts.x]\nfields = [\"script?\", \"u8\"]\n"), 0o600))
	_, err = LoadFile(badOrder)
	assert.ErrorIs(t, err, lnwire.ErrTrailingField)

	_, err = LoadFile(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	_, err = Decode("[layouts.y]\nfields = [\"nope\"]\n")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestDecodeRejectsUnknownKeys(t *testing.T) {
	_, err := Decode("[layouts.x]\nfeilds = [\"u8\"]\n")
	assert.ErrorIs(t, err, ErrUnknownKey)

	_, err = Decode("version = 2\n[layouts.x]\nfields = [\"u8\"]\n")
	assert.ErrorIs(t, err, ErrUnknownKey)

	set, err := Decode("[layouts.x]\nfields = [\"u8\"]\n")
	require.NoError(t, err)
	l, err := set.Get("x")
	require.NoError(t, err)
	assert.Equal(t, []Kind{"u8"}, l.Fields)
}
