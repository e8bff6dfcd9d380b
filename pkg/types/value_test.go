package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_StringRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"ascii", "written by Go"},
		{"empty", ""},
		{"umlauts", "abcd_äöüß"},
		{"symbols", "symbols $£₤€"},
		{"surrogate pair", "beyond BMP 𝄞"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := StringValue(tt.input)
			require.NoError(t, err)
			assert.Equal(t, REG_SZ, v.Type)

			got, err := v.AsString()
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestValue_StringLayout(t *testing.T) {
	v, err := StringValue("Hi")
	require.NoError(t, err)

	// "Hi" in UTF-16LE with trailing NUL.
	assert.Equal(t, []byte{'H', 0, 'i', 0, 0, 0}, v.Data)
}

func TestValue_StringDoubleTerminated(t *testing.T) {
	// Strings with a doubled NUL terminator are common in real
	// registries; every trailing terminator is stripped on decode.
	v := Value{Type: REG_SZ, Data: []byte{'a', 0, 0, 0, 0, 0}}
	got, err := v.AsString()
	require.NoError(t, err)
	assert.Equal(t, "a", got)
}

func TestValue_ExpandString(t *testing.T) {
	v, err := ExpandStringValue("%SystemRoot%\\system32")
	require.NoError(t, err)
	assert.Equal(t, REG_EXPAND_SZ, v.Type)

	// Stored unexpanded; AsString must hand back the reference verbatim.
	got, err := v.AsString()
	require.NoError(t, err)
	assert.Equal(t, "%SystemRoot%\\system32", got)
}

func TestValue_StringRejectsEmbeddedNul(t *testing.T) {
	_, err := StringValue("zero\x00val")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidData))
}

func TestValue_MultiStringRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input []string
	}{
		{"several", []string{"apple", "banana", "carrot"}},
		{"single", []string{"data"}},
		{"empty list", []string{}},
		{"non-ascii", []string{"äöü", "€"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := MultiStringValue(tt.input)
			require.NoError(t, err)
			assert.Equal(t, REG_MULTI_SZ, v.Type)

			got, err := v.AsStrings()
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestValue_MultiStringEmptyListLayout(t *testing.T) {
	v, err := MultiStringValue(nil)
	require.NoError(t, err)

	// The empty list is just the closing terminator.
	assert.Equal(t, []byte{0, 0}, v.Data)
}

func TestValue_MultiStringZeroLengthBuffer(t *testing.T) {
	// Some keys carry zero-length REG_MULTI_SZ data; that is the empty
	// list, not an error.
	v := Value{Type: REG_MULTI_SZ, Data: nil}
	got, err := v.AsStrings()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestValue_MultiStringRejectsEmptyEntry(t *testing.T) {
	_, err := MultiStringValue([]string{"ok", ""})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidData))
}

func TestValue_DWordRoundTrip(t *testing.T) {
	v := DWordValue(0xCAFEBABE)
	assert.Equal(t, REG_DWORD, v.Type)
	assert.Equal(t, []byte{0xBE, 0xBA, 0xFE, 0xCA}, v.Data) // little-endian

	got, err := v.AsDWord()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xCAFEBABE), got)
}

func TestValue_DWordBigEndian(t *testing.T) {
	v := Value{Type: REG_DWORD_BE, Data: []byte{0xCA, 0xFE, 0xBA, 0xBE}}

	got, err := v.AsDWord()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xCAFEBABE), got)
}

func TestValue_QWordRoundTrip(t *testing.T) {
	v := QWordValue(0x0123456789ABCDEF)
	assert.Equal(t, REG_QWORD, v.Type)

	got, err := v.AsQWord()
	require.NoError(t, err)
	assert.Equal(t, uint64(0x0123456789ABCDEF), got)
}

func TestValue_DWordWidensToQWord(t *testing.T) {
	// Lossless widening is the one permitted cross-type decode.
	got, err := DWordValue(42).AsQWord()
	require.NoError(t, err)
	assert.Equal(t, uint64(42), got)
}

func TestValue_QWordDoesNotNarrow(t *testing.T) {
	_, err := QWordValue(42).AsDWord()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTypeMismatch))
}

func TestValue_TypeMismatches(t *testing.T) {
	str, err := StringValue("not a number")
	require.NoError(t, err)

	tests := []struct {
		name   string
		decode func() error
	}{
		{"string as dword", func() error { _, err := str.AsDWord(); return err }},
		{"string as qword", func() error { _, err := str.AsQWord(); return err }},
		{"string as binary", func() error { _, err := str.AsBinary(); return err }},
		{"string as strings", func() error { _, err := str.AsStrings(); return err }},
		{"dword as string", func() error { _, err := DWordValue(1).AsString(); return err }},
		{"binary as strings", func() error { _, err := BinaryValue([]byte{1}).AsStrings(); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decode()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrTypeMismatch), "want TypeMismatch, got %v", err)
		})
	}
}

func TestValue_InvalidDataLengths(t *testing.T) {
	tests := []struct {
		name   string
		value  Value
		decode func(Value) error
	}{
		{
			"short dword",
			Value{Type: REG_DWORD, Data: []byte{1, 2}},
			func(v Value) error { _, err := v.AsDWord(); return err },
		},
		{
			"long dword",
			Value{Type: REG_DWORD, Data: make([]byte, 8)},
			func(v Value) error { _, err := v.AsDWord(); return err },
		},
		{
			"short qword",
			Value{Type: REG_QWORD, Data: make([]byte, 4)},
			func(v Value) error { _, err := v.AsQWord(); return err },
		},
		{
			"odd-length string",
			Value{Type: REG_SZ, Data: []byte{0x41, 0x00, 0x42}},
			func(v Value) error { _, err := v.AsString(); return err },
		},
		{
			"odd-length multisz",
			Value{Type: REG_MULTI_SZ, Data: []byte{0x41}},
			func(v Value) error { _, err := v.AsStrings(); return err },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.decode(tt.value)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidData), "want InvalidData, got %v", err)
		})
	}
}

func TestValue_BinaryAndResourceTypes(t *testing.T) {
	raw := []byte{0xDE, 0xAD, 0xBE, 0xEF}

	for _, typ := range []RegType{
		REG_BINARY, REG_NONE,
		REG_RESOURCE_LIST, REG_FULL_RESOURCE_DESCRIPTOR, REG_RESOURCE_REQUIREMENTS_LIST,
	} {
		t.Run(typ.String(), func(t *testing.T) {
			v := Value{Type: typ, Data: raw}
			got, err := v.AsBinary()
			require.NoError(t, err)
			assert.Equal(t, raw, got)
		})
	}
}

func TestValue_Stringer(t *testing.T) {
	v := DWordValue(7)
	assert.Equal(t, "REG_DWORD (4 bytes)", v.String())
}
