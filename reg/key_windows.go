//go:build windows

package reg

import (
	"syscall"
	"time"

	"golang.org/x/sys/windows"

	"github.com/joshuapare/regkit/pkg/types"
)

// Access is a registry access-rights mask. The constants carry the
// Windows-defined values and combine with bitwise OR.
type Access uint32

const (
	KEY_QUERY_VALUE        Access = 0x00001
	KEY_SET_VALUE          Access = 0x00002
	KEY_CREATE_SUB_KEY     Access = 0x00004
	KEY_ENUMERATE_SUB_KEYS Access = 0x00008
	KEY_NOTIFY             Access = 0x00010
	KEY_CREATE_LINK        Access = 0x00020
	KEY_WRITE              Access = 0x20006
	KEY_EXECUTE            Access = 0x20019
	KEY_READ               Access = 0x20019
	KEY_ALL_ACCESS         Access = 0xf003f

	// WOW64 view selectors, OR-able into any mask above.
	KEY_WOW64_64KEY Access = 0x00100
	KEY_WOW64_32KEY Access = 0x00200
)

// Key exclusively owns one open registry key handle. The zero handle is
// the closed state; a Key is never both open and closed, and the handle is
// released at most once regardless of how many times Close is called.
type Key struct {
	handle windows.Handle
	predef bool
}

// Predefined roots. These are fixed OS constants, never opened and never
// really closed; Close on them is a no-op.
var (
	CLASSES_ROOT     = predefined(syscall.HKEY_CLASSES_ROOT)
	CURRENT_USER     = predefined(syscall.HKEY_CURRENT_USER)
	LOCAL_MACHINE    = predefined(syscall.HKEY_LOCAL_MACHINE)
	USERS            = predefined(syscall.HKEY_USERS)
	CURRENT_CONFIG   = predefined(syscall.HKEY_CURRENT_CONFIG)
	PERFORMANCE_DATA = predefined(syscall.HKEY_PERFORMANCE_DATA)
)

func predefined(h syscall.Handle) *Key {
	return &Key{handle: windows.Handle(h), predef: true}
}

// OpenSubkey opens the subkey at path (backslash-separated) relative to k
// with the requested access rights.
func (k *Key) OpenSubkey(path string, access Access) (*Key, error) {
	if k.handle == 0 {
		return nil, types.ErrClosed
	}
	p, err := utf16Name(path)
	if err != nil {
		return nil, err
	}
	var h windows.Handle
	if err := regOpenKeyEx(k.handle, p, 0, uint32(access), &h); err != nil {
		return nil, regError("open subkey "+path, err)
	}
	return &Key{handle: h}, nil
}

// CreateSubkey opens the subkey at path relative to k, creating it first
// when absent. The second result reports whether the key was created.
func (k *Key) CreateSubkey(path string, access Access) (*Key, bool, error) {
	if k.handle == 0 {
		return nil, false, types.ErrClosed
	}
	p, err := utf16Name(path)
	if err != nil {
		return nil, false, err
	}
	var (
		h           windows.Handle
		disposition uint32
	)
	err = regCreateKeyEx(k.handle, p, 0, nil, _REG_OPTION_NON_VOLATILE,
		uint32(access), nil, &h, &disposition)
	if err != nil {
		return nil, false, regError("create subkey "+path, err)
	}
	return &Key{handle: h}, disposition == _REG_CREATED_NEW_KEY, nil
}

const (
	_REG_OPTION_NON_VOLATILE = 0
	_REG_CREATED_NEW_KEY     = 1
)

// Close releases the key handle. It is idempotent: closing an already
// closed Key is a no-op, and predefined roots are never closed.
func (k *Key) Close() error {
	if k.predef || k.handle == 0 {
		return nil
	}
	h := k.handle
	k.handle = 0
	if err := regCloseKey(h); err != nil {
		return regError("close key", err)
	}
	return nil
}

// DeleteSubkey removes the named subkey, which must have no subkeys of its
// own. Deleting an absent subkey reports ErrNotFound.
func (k *Key) DeleteSubkey(path string) error {
	if k.handle == 0 {
		return types.ErrClosed
	}
	p, err := utf16Name(path)
	if err != nil {
		return err
	}
	return regError("delete subkey "+path, regDeleteKey(k.handle, p))
}

// DeleteSubkeyAll removes the named subkey and its entire subtree.
func (k *Key) DeleteSubkeyAll(path string) error {
	if k.handle == 0 {
		return types.ErrClosed
	}
	p, err := utf16Name(path)
	if err != nil {
		return err
	}
	return regError("delete subtree "+path, regDeleteTree(k.handle, p))
}

// DeleteValue removes the named value from k. Deleting an absent value
// reports ErrNotFound.
func (k *Key) DeleteValue(name string) error {
	if k.handle == 0 {
		return types.ErrClosed
	}
	p, err := utf16Name(name)
	if err != nil {
		return err
	}
	return regError("delete value "+name, regDeleteValue(k.handle, p))
}

// Flush writes the key's pending changes to disk. Callers rarely need
// this; the OS flushes lazily on its own.
func (k *Key) Flush() error {
	if k.handle == 0 {
		return types.ErrClosed
	}
	return regError("flush key", regFlushKey(k.handle))
}

// KeyInfo describes a key as reported by the OS.
type KeyInfo struct {
	SubkeyCount     uint32
	MaxSubkeyLen    uint32 // longest subkey name, in UTF-16 characters
	ValueCount      uint32
	MaxValueNameLen uint32 // longest value name, in UTF-16 characters
	MaxValueLen     uint32 // largest value data, in bytes
	LastWrite       time.Time
}

// Stat queries the key's child counts, size bounds and last-write time.
func (k *Key) Stat() (KeyInfo, error) {
	if k.handle == 0 {
		return KeyInfo{}, types.ErrClosed
	}
	var (
		info KeyInfo
		ft   windows.Filetime
	)
	err := regQueryInfoKey(k.handle, nil, nil, nil,
		&info.SubkeyCount, &info.MaxSubkeyLen, nil,
		&info.ValueCount, &info.MaxValueNameLen, &info.MaxValueLen,
		nil, &ft)
	if err != nil {
		return KeyInfo{}, regError("query key info", err)
	}
	info.LastWrite = time.Unix(0, ft.Nanoseconds())
	return info, nil
}
