// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code lookups

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/fontproxy/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_conversion",
			code:    errors.ErrInvalidConversion,
			message: "no rule from FaceName to UninstalledFontPath",
			wantStr: "[INVALID_CONVERSION] no rule from FaceName to UninstalledFontPath",
		},
		{
			name:    "invalid_target",
			code:    errors.ErrInvalidTarget,
			message: "target font file does not exist",
			wantStr: "[INVALID_TARGET] target font file does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrUnresolvableReference, "cannot resolve %q to %s", "cour.ttf", "FaceName")
	assert.Equal(t, `cannot resolve "cour.ttf" to FaceName`, err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("file does not exist")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrFontRead, "cannot read font")

		require.NotNil(t, err)
		assert.Equal(t, errors.ErrFontRead, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[FONT_READ] cannot read font: file does not exist", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrInvalidConversion, "invalid").
		WithDetail("source", "FaceName").
		WithDetail("target", "UninstalledFontPath")

	assert.Equal(t, "FaceName", err.Details["source"])
	assert.Equal(t, "UninstalledFontPath", err.Details["target"])
	assert.Equal(t, err.Details, errors.GetErrorDetails(err))
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrNotFound, "error 1")
	err2 := errors.New(errors.ErrNotFound, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.True(t, stderrors.Is(err1, err2))
}

func TestIsErrorCode(t *testing.T) {
	missing := errors.New(errors.ErrInvalidTarget, "missing")
	denied := errors.Wrap(stderrors.New("base"), errors.ErrStoreWrite, "denied")

	tests := []struct {
		name     string
		err      error
		codes    []errors.ErrorCode
		expected bool
	}{
		{"matching_code", missing, []errors.ErrorCode{errors.ErrInvalidTarget}, true},
		{"different_code", missing, []errors.ErrorCode{errors.ErrFontRead}, false},
		{"any_of_several", denied, []errors.ErrorCode{errors.ErrStoreRead, errors.ErrStoreWrite}, true},
		{"no_codes", missing, nil, false},
		{"standard_error", stderrors.New("standard error"), []errors.ErrorCode{errors.ErrNotFound}, false},
		{"nil_error", nil, []errors.ErrorCode{errors.ErrNotFound}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.codes...))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrFontRead, errors.GetErrorCode(errors.New(errors.ErrFontRead, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("standard error")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("standard error")))
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	readErr := errors.Wrap(rootCause, errors.ErrFontRead, "cannot read font")
	resolveErr := errors.Wrap(readErr, errors.ErrUnresolvableReference, "cannot resolve reference")

	assert.True(t, errors.IsErrorCode(resolveErr, errors.ErrUnresolvableReference))

	var middle *errors.FontProxyError
	require.True(t, stderrors.As(resolveErr.Unwrap(), &middle))
	assert.Equal(t, errors.ErrFontRead, middle.Code)

	assert.True(t, stderrors.Is(resolveErr, rootCause))
}
