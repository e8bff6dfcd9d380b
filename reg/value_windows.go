//go:build windows

package reg

import (
	"errors"

	"golang.org/x/sys/windows"

	"github.com/joshuapare/regkit/pkg/types"
)

// GetValue reads the named value as stored: its type tag plus raw bytes.
// The empty name addresses the key's default value.
func (k *Key) GetValue(name string) (types.Value, error) {
	if k.handle == 0 {
		return types.Value{}, types.ErrClosed
	}
	p, err := utf16Name(name)
	if err != nil {
		return types.Value{}, err
	}

	var vtype uint32
	n := uint32(64)
	for {
		buf := make([]byte, n)
		var data *byte
		if n > 0 {
			data = &buf[0]
		}
		err := regQueryValueEx(k.handle, p, nil, &vtype, data, &n)
		if err == nil {
			return types.Value{Type: types.RegType(vtype), Data: buf[:n]}, nil
		}
		if !errors.Is(err, windows.ERROR_MORE_DATA) {
			return types.Value{}, regError("query value "+name, err)
		}
		// n now holds the required size; retry with the bigger buffer.
	}
}

// SetValue writes the tagged value under the given name, creating or
// replacing it. The bytes go to the OS untouched.
func (k *Key) SetValue(name string, v types.Value) error {
	if k.handle == 0 {
		return types.ErrClosed
	}
	p, err := utf16Name(name)
	if err != nil {
		return err
	}
	var data *byte
	if len(v.Data) > 0 {
		data = &v.Data[0]
	}
	err = regSetValueEx(k.handle, p, 0, uint32(v.Type), data, uint32(len(v.Data)))
	return regError("set value "+name, err)
}

// GetString reads a REG_SZ or REG_EXPAND_SZ value. REG_EXPAND_SZ data is
// returned unexpanded; see GetExpandString.
func (k *Key) GetString(name string) (string, error) {
	v, err := k.GetValue(name)
	if err != nil {
		return "", err
	}
	return v.AsString()
}

// GetExpandString reads a string value and expands %VAR% environment
// references through the OS.
func (k *Key) GetExpandString(name string) (string, error) {
	s, err := k.GetString(name)
	if err != nil {
		return "", err
	}
	return ExpandString(s)
}

// GetStrings reads a REG_MULTI_SZ value as its ordered list of strings.
func (k *Key) GetStrings(name string) ([]string, error) {
	v, err := k.GetValue(name)
	if err != nil {
		return nil, err
	}
	return v.AsStrings()
}

// GetDWord reads a REG_DWORD or REG_DWORD_BIG_ENDIAN value.
func (k *Key) GetDWord(name string) (uint32, error) {
	v, err := k.GetValue(name)
	if err != nil {
		return 0, err
	}
	return v.AsDWord()
}

// GetQWord reads a REG_QWORD value. A stored DWORD widens losslessly.
func (k *Key) GetQWord(name string) (uint64, error) {
	v, err := k.GetValue(name)
	if err != nil {
		return 0, err
	}
	return v.AsQWord()
}

// GetBinary reads a REG_BINARY value.
func (k *Key) GetBinary(name string) ([]byte, error) {
	v, err := k.GetValue(name)
	if err != nil {
		return nil, err
	}
	return v.AsBinary()
}

// SetString writes s as a REG_SZ value.
func (k *Key) SetString(name, s string) error {
	v, err := types.StringValue(s)
	if err != nil {
		return err
	}
	return k.SetValue(name, v)
}

// SetExpandString writes s as a REG_EXPAND_SZ value, unexpanded.
func (k *Key) SetExpandString(name, s string) error {
	v, err := types.ExpandStringValue(s)
	if err != nil {
		return err
	}
	return k.SetValue(name, v)
}

// SetStrings writes ss as a REG_MULTI_SZ value.
func (k *Key) SetStrings(name string, ss []string) error {
	v, err := types.MultiStringValue(ss)
	if err != nil {
		return err
	}
	return k.SetValue(name, v)
}

// SetDWord writes v as a REG_DWORD value.
func (k *Key) SetDWord(name string, v uint32) error {
	return k.SetValue(name, types.DWordValue(v))
}

// SetQWord writes v as a REG_QWORD value.
func (k *Key) SetQWord(name string, v uint64) error {
	return k.SetValue(name, types.QWordValue(v))
}

// SetBinary writes b as a REG_BINARY value.
func (k *Key) SetBinary(name string, b []byte) error {
	return k.SetValue(name, types.BinaryValue(b))
}

// ExpandString expands %VAR% environment references in s the way the OS
// does for REG_EXPAND_SZ consumers. Unknown variables are left as-is.
func ExpandString(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	p, err := utf16Name(s)
	if err != nil {
		return "", err
	}
	n := uint32(len(s)*2 + 1)
	for {
		buf := make([]uint16, n)
		r, err := expandEnvironmentStrings(p, &buf[0], uint32(len(buf)))
		if err != nil {
			return "", regError("expand string", err)
		}
		if r <= uint32(len(buf)) {
			return windows.UTF16ToString(buf[:r]), nil
		}
		// r is the required size, terminator included.
		n = r
	}
}
