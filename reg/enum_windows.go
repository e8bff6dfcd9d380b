//go:build windows

package reg

import (
	"errors"

	"golang.org/x/sys/windows"

	"github.com/joshuapare/regkit/pkg/types"
)

// Subkey names are capped at 255 characters and value names at 16383;
// fixed buffers of the maximum size make each step a single OS call.
const (
	maxSubkeyNameLen = 255
	maxValueNameLen  = 16383
)

// SubkeyIterator enumerates a key's subkey names by repeated indexed
// lookups. The sequence is lazy: each Next is one RegEnumKeyEx call.
// Mutating the key while iterating is undefined, as in the native API.
type SubkeyIterator struct {
	k     *Key
	index uint32
	name  string
	err   error
	done  bool
}

// Subkeys returns a cursor over k's subkey names, starting at index 0.
func (k *Key) Subkeys() *SubkeyIterator {
	return &SubkeyIterator{k: k}
}

// Next advances to the next subkey name. It returns false when the OS
// reports no more items, which ends the sequence without error, or when
// an actual error occurred; check Err to tell the two apart.
func (it *SubkeyIterator) Next() bool {
	if it.done || it.err != nil {
		return false
	}
	if it.k.handle == 0 {
		it.err = types.ErrClosed
		return false
	}
	var buf [maxSubkeyNameLen + 1]uint16
	n := uint32(len(buf))
	err := regEnumKeyEx(it.k.handle, it.index, &buf[0], &n, nil, nil, nil, nil)
	if err != nil {
		if errors.Is(err, windows.ERROR_NO_MORE_ITEMS) {
			it.done = true
		} else {
			it.err = regError("enum subkeys", err)
		}
		return false
	}
	it.name = windows.UTF16ToString(buf[:n])
	it.index++
	return true
}

// Name returns the subkey name produced by the last successful Next.
func (it *SubkeyIterator) Name() string { return it.name }

// Err returns the first error hit during iteration, nil after a clean end.
func (it *SubkeyIterator) Err() error { return it.err }

// Reset rewinds the cursor to index 0 for a fresh pass.
func (it *SubkeyIterator) Reset() {
	it.index, it.name, it.err, it.done = 0, "", nil, false
}

// ValueIterator enumerates a key's value names by repeated indexed
// lookups, one RegEnumValue call per step.
type ValueIterator struct {
	k     *Key
	index uint32
	name  string
	vtype types.RegType
	err   error
	done  bool
}

// Values returns a cursor over k's value names, starting at index 0.
func (k *Key) Values() *ValueIterator {
	return &ValueIterator{k: k}
}

// Next advances to the next value name; semantics match SubkeyIterator.
func (it *ValueIterator) Next() bool {
	if it.done || it.err != nil {
		return false
	}
	if it.k.handle == 0 {
		it.err = types.ErrClosed
		return false
	}
	buf := make([]uint16, maxValueNameLen+1)
	n := uint32(len(buf))
	var vtype uint32
	err := regEnumValue(it.k.handle, it.index, &buf[0], &n, nil, &vtype, nil, nil)
	if err != nil {
		if errors.Is(err, windows.ERROR_NO_MORE_ITEMS) {
			it.done = true
		} else {
			it.err = regError("enum values", err)
		}
		return false
	}
	it.name = windows.UTF16ToString(buf[:n])
	it.vtype = types.RegType(vtype)
	it.index++
	return true
}

// Name returns the value name produced by the last successful Next.
func (it *ValueIterator) Name() string { return it.name }

// Type returns the type tag of the value produced by the last Next.
func (it *ValueIterator) Type() types.RegType { return it.vtype }

// Err returns the first error hit during iteration, nil after a clean end.
func (it *ValueIterator) Err() error { return it.err }

// Reset rewinds the cursor to index 0 for a fresh pass.
func (it *ValueIterator) Reset() {
	it.index, it.name, it.vtype, it.err, it.done = 0, "", 0, nil, false
}

// SubkeyNames drains a fresh subkey cursor into a slice.
func (k *Key) SubkeyNames() ([]string, error) {
	it := k.Subkeys()
	names := []string{}
	for it.Next() {
		names = append(names, it.Name())
	}
	return names, it.Err()
}

// ValueNames drains a fresh value cursor into a slice.
func (k *Key) ValueNames() ([]string, error) {
	it := k.Values()
	names := []string{}
	for it.Next() {
		names = append(names, it.Name())
	}
	return names, it.Err()
}
