//go:build windows

package reg

import (
	"errors"
	"syscall"

	"golang.org/x/sys/windows"

	"github.com/joshuapare/regkit/pkg/types"
)

// regError lifts a native status into the types taxonomy. The two statuses
// callers routinely branch on get their own kinds; everything else stays an
// ErrKindOS error carrying the untranslated Errno.
func regError(op string, err error) error {
	if err == nil {
		return nil
	}
	var errno syscall.Errno
	if !errors.As(err, &errno) {
		return types.OSError(op, err)
	}
	switch errno {
	case windows.ERROR_FILE_NOT_FOUND, windows.ERROR_PATH_NOT_FOUND:
		return &types.Error{Kind: types.ErrKindNotFound, Msg: op, Err: errno}
	case windows.ERROR_ACCESS_DENIED:
		return &types.Error{Kind: types.ErrKindAccess, Msg: op, Err: errno}
	}
	return types.OSError(op, errno)
}

// utf16Name converts a key or value name for a W-series call. Interior NUL
// bytes are rejected by the converter; that surfaces as invalid data rather
// than an OS status since the call was never made.
func utf16Name(name string) (*uint16, error) {
	p, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindData, Msg: "name contains NUL", Err: err}
	}
	return p, nil
}
