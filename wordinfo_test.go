package wordinfo_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/wordinfo"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := wordinfo.Errorf(wordinfo.ENOTFOUND, "word %q not found", "test")

	assert.Equal(t, wordinfo.ENOTFOUND, wordinfo.ErrorCode(err))
	assert.Equal(t, "word \"test\" not found", wordinfo.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, wordinfo.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, wordinfo.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch dictionary page: %w", wordinfo.Errorf(wordinfo.EUNAVAILABLE, "connection refused"))

	assert.Equal(t, wordinfo.EUNAVAILABLE, wordinfo.ErrorCode(err))
	assert.Equal(t, "connection refused", wordinfo.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, wordinfo.EINTERNAL, wordinfo.ErrorCode(err))
	assert.Equal(t, "Internal error.", wordinfo.ErrorMessage(err))
}
