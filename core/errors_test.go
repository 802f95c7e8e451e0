package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	err := Error(ERANGE, "dimension must be more than 0. Wrong input: `%s`.", "0")
	assert.Equal(t, ERANGE, Code(err))
	assert.Equal(t, "dimension must be more than 0. Wrong input: `0`.", UserMessage(err))
	assert.True(t, IsValidationError(err))
	//
	wrapped := fmt.Errorf("matrix: %w", err)
	assert.Equal(t, ERANGE, Code(wrapped), "code must survive wrapping")
	assert.Equal(t, UserMessage(err), UserMessage(wrapped))
}

func TestForeignErrors(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, "", UserMessage(nil))
	plain := errors.New("boom")
	assert.Equal(t, EINTERNAL, Code(plain))
	assert.Equal(t, "internal error", UserMessage(plain))
	assert.False(t, IsValidationError(plain))
}

func TestWrapError(t *testing.T) {
	cause := errors.New("strconv: value out of range")
	err := WrapError(cause, ENOTPOSINT, "level `%s` is not a number", "99999999999999999999")
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, ENOTPOSINT, Code(err))
	err = WrapError(nil, EPATTERN, "no match")
	assert.Equal(t, EPATTERN, Code(err))
	assert.Equal(t, "no match", UserMessage(err))
}
