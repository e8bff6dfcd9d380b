package winenc

import (
	"errors"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	// ErrOddLength indicates UTF-16 data with an odd byte count.
	ErrOddLength = errors.New("winenc: utf16 data has odd length")

	// ErrEmbeddedNul indicates a string that cannot be stored because it
	// contains a NUL code point, which the registry uses as a terminator.
	ErrEmbeddedNul = errors.New("winenc: string contains embedded NUL")
)

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// EncodeString encodes s as NUL-terminated UTF-16LE, the layout REG_SZ,
// REG_EXPAND_SZ and REG_LINK data uses on disk.
func EncodeString(s string) ([]byte, error) {
	if strings.ContainsRune(s, 0) {
		return nil, ErrEmbeddedNul
	}
	out, _, err := transform.Bytes(utf16le.NewEncoder(), []byte(s))
	if err != nil {
		return nil, err
	}
	return append(out, 0, 0), nil
}

// DecodeString decodes UTF-16LE data into a string. All trailing NUL
// terminators are stripped; real registries routinely hold strings with a
// doubled terminator, and none at all is also tolerated.
func DecodeString(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", ErrOddLength
	}
	for len(b) >= 2 && b[len(b)-2] == 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-2]
	}
	if len(b) == 0 {
		return "", nil
	}
	out, _, err := transform.Bytes(utf16le.NewDecoder(), b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// EncodeMultiString encodes an ordered list of strings as REG_MULTI_SZ
// data: each entry NUL-terminated, with one extra NUL closing the list.
// The empty list encodes as the closing NUL alone. Entries must not be
// empty or contain NUL, since either would corrupt the framing: an empty
// entry is byte-identical to the list terminator, so a list like [""]
// cannot survive a round trip and is refused here rather than silently
// decoding to [].
func EncodeMultiString(ss []string) ([]byte, error) {
	buf := make([]byte, 0, 16)
	for _, s := range ss {
		if s == "" {
			return nil, errors.New("winenc: multi-string entry is empty")
		}
		enc, err := EncodeString(s)
		if err != nil {
			return nil, err
		}
		buf = append(buf, enc...)
	}
	return append(buf, 0, 0), nil
}

// DecodeMultiString splits REG_MULTI_SZ data on NUL terminators and drops
// the final empty entry that closes the list. A zero-length buffer is the
// empty list, not an error.
func DecodeMultiString(b []byte) ([]string, error) {
	if len(b)%2 != 0 {
		return nil, ErrOddLength
	}
	if len(b) == 0 {
		return []string{}, nil
	}

	result := []string{}
	start := 0
	for i := 0; i+1 < len(b); i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			if i == start {
				// Empty entry: the list terminator. Everything after it is
				// padding and ignored, matching what the OS itself does.
				return result, nil
			}
			s, err := DecodeString(b[start:i])
			if err != nil {
				return nil, err
			}
			result = append(result, s)
			start = i + 2
		}
	}
	// Trailing data without a terminator still counts as a final entry.
	if start < len(b) {
		s, err := DecodeString(b[start:])
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}
