package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestError_IsMatchesByKind(t *testing.T) {
	err := &Error{Kind: ErrKindNotFound, Msg: "open subkey Foo", Err: errors.New("status 2")}

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrAccessDenied))
	assert.False(t, errors.Is(err, ErrTypeMismatch))
}

func TestError_IsSurvivesWrapping(t *testing.T) {
	inner := &Error{Kind: ErrKindType, Msg: "cannot decode REG_SZ as uint32"}
	wrapped := fmt.Errorf("reading Version: %w", inner)

	assert.True(t, errors.Is(wrapped, ErrTypeMismatch))

	kind, ok := Kind(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrKindType, kind)
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("native status 5")
	err := &Error{Kind: ErrKindAccess, Msg: "open subkey", Err: cause}

	assert.Equal(t, "open subkey: native status 5", err.Error())
	assert.True(t, errors.Is(err, cause))
}

func TestError_MessageWithoutCause(t *testing.T) {
	assert.Equal(t, "not found", ErrNotFound.Error())
}

func TestOSError(t *testing.T) {
	cause := errors.New("status 1017")
	err := OSError("load key", cause)

	kind, ok := Kind(err)
	require.True(t, ok)
	assert.Equal(t, ErrKindOS, kind)
	assert.True(t, errors.Is(err, cause))
}

func TestKind_ForeignError(t *testing.T) {
	_, ok := Kind(errors.New("plain"))
	assert.False(t, ok)
}
