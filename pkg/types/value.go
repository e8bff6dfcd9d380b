package types

import (
	"fmt"

	"github.com/joshuapare/regkit/internal/winenc"
)

// Value is a registry value exactly as stored: a type tag plus the raw
// data bytes in the operating system's own layout. The tag always matches
// the on-disk type code; decoders fail with ErrTypeMismatch when asked for
// a target the tag doesn't cover, except for the lossless DWORD→uint64
// widening.
type Value struct {
	Type RegType
	Data []byte
}

// String implements Stringer for diagnostics. It never decodes the data.
func (v Value) String() string {
	return fmt.Sprintf("%s (%d bytes)", v.Type, len(v.Data))
}

// -----------------------------------------------------------------------------
// Constructors (native Go → tagged value)
// -----------------------------------------------------------------------------

// StringValue encodes s as a REG_SZ value.
func StringValue(s string) (Value, error) {
	return stringValue(REG_SZ, s)
}

// ExpandStringValue encodes s as a REG_EXPAND_SZ value. References like
// %SystemRoot% are stored unexpanded.
func ExpandStringValue(s string) (Value, error) {
	return stringValue(REG_EXPAND_SZ, s)
}

func stringValue(t RegType, s string) (Value, error) {
	data, err := winenc.EncodeString(s)
	if err != nil {
		return Value{}, &Error{Kind: ErrKindData, Msg: "encode string", Err: err}
	}
	return Value{Type: t, Data: data}, nil
}

// MultiStringValue encodes ss as a REG_MULTI_SZ value. The empty list is
// valid and encodes as the closing terminator alone.
func MultiStringValue(ss []string) (Value, error) {
	data, err := winenc.EncodeMultiString(ss)
	if err != nil {
		return Value{}, &Error{Kind: ErrKindData, Msg: "encode multi-string", Err: err}
	}
	return Value{Type: REG_MULTI_SZ, Data: data}, nil
}

// DWordValue encodes v as a little-endian REG_DWORD value.
func DWordValue(v uint32) Value {
	return Value{Type: REG_DWORD, Data: winenc.PutU32LE(v)}
}

// QWordValue encodes v as a little-endian REG_QWORD value.
func QWordValue(v uint64) Value {
	return Value{Type: REG_QWORD, Data: winenc.PutU64LE(v)}
}

// BinaryValue wraps b as a REG_BINARY value. The slice is not copied.
func BinaryValue(b []byte) Value {
	return Value{Type: REG_BINARY, Data: b}
}

// -----------------------------------------------------------------------------
// Decoders (tagged value → native Go)
// -----------------------------------------------------------------------------

// AsString decodes REG_SZ, REG_EXPAND_SZ and REG_LINK data, stripping the
// trailing NUL terminator. REG_EXPAND_SZ is returned unexpanded.
func (v Value) AsString() (string, error) {
	switch v.Type {
	case REG_SZ, REG_EXPAND_SZ, REG_LINK:
		s, err := winenc.DecodeString(v.Data)
		if err != nil {
			return "", &Error{Kind: ErrKindData, Msg: "decode string", Err: err}
		}
		return s, nil
	default:
		return "", typeErr("string", v.Type)
	}
}

// AsStrings decodes REG_MULTI_SZ data into its ordered list of strings.
// A zero-length buffer decodes as the empty list.
func (v Value) AsStrings() ([]string, error) {
	if v.Type != REG_MULTI_SZ {
		return nil, typeErr("multi-string", v.Type)
	}
	ss, err := winenc.DecodeMultiString(v.Data)
	if err != nil {
		return nil, &Error{Kind: ErrKindData, Msg: "decode multi-string", Err: err}
	}
	return ss, nil
}

// AsDWord decodes REG_DWORD and REG_DWORD_BIG_ENDIAN data. The tag carries
// the byte order; both are 32-bit integers.
func (v Value) AsDWord() (uint32, error) {
	switch v.Type {
	case REG_DWORD:
		if len(v.Data) != 4 {
			return 0, lengthErr("REG_DWORD", 4, len(v.Data))
		}
		return winenc.U32LE(v.Data), nil
	case REG_DWORD_BE:
		if len(v.Data) != 4 {
			return 0, lengthErr("REG_DWORD_BE", 4, len(v.Data))
		}
		return winenc.U32BE(v.Data), nil
	default:
		return 0, typeErr("uint32", v.Type)
	}
}

// AsQWord decodes REG_QWORD data. A stored DWORD also decodes here, as the
// widening to 64 bits is lossless; the reverse narrowing is refused.
func (v Value) AsQWord() (uint64, error) {
	switch v.Type {
	case REG_QWORD:
		if len(v.Data) != 8 {
			return 0, lengthErr("REG_QWORD", 8, len(v.Data))
		}
		return winenc.U64LE(v.Data), nil
	case REG_DWORD, REG_DWORD_BE:
		d, err := v.AsDWord()
		if err != nil {
			return 0, err
		}
		return uint64(d), nil
	default:
		return 0, typeErr("uint64", v.Type)
	}
}

// AsBinary returns the raw data of REG_BINARY and REG_NONE values. The
// resource-list types have no documented layout and are exposed raw too.
func (v Value) AsBinary() ([]byte, error) {
	switch v.Type {
	case REG_BINARY, REG_NONE,
		REG_RESOURCE_LIST, REG_FULL_RESOURCE_DESCRIPTOR, REG_RESOURCE_REQUIREMENTS_LIST:
		return v.Data, nil
	default:
		return nil, typeErr("binary", v.Type)
	}
}

func typeErr(want string, got RegType) *Error {
	return &Error{Kind: ErrKindType, Msg: fmt.Sprintf("cannot decode %s as %s", got, want)}
}

func lengthErr(typ string, want, got int) *Error {
	return &Error{Kind: ErrKindData, Msg: fmt.Sprintf("%s data is %d bytes, want %d", typ, got, want)}
}
