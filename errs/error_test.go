package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"mflix/errs"
)

func TestError_Error(t *testing.T) {
	err := &errs.Error{Code: errs.ENOTFOUND, Message: "movie not found"}

	assert.Equal(t, "application error: code=not_found message=movie not found", err.Error())
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error returns empty string", err: nil, expected: ""},
		{name: "application error returns its code", err: errs.Errorf(errs.EINVALID, "invalid ID"), expected: errs.EINVALID},
		{name: "wrapped application error", err: fmt.Errorf("lookup: %w", errs.Errorf(errs.ENOTFOUND, "gone")), expected: errs.ENOTFOUND},
		{name: "joined application error", err: errors.Join(errs.Errorf(errs.ECONFLICT, "dup")), expected: errs.ECONFLICT},
		{name: "non-application error returns EINTERNAL", err: errors.New("connection reset"), expected: errs.EINTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errs.ErrorCode(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil error returns empty string", err: nil, expected: ""},
		{name: "application error returns its message", err: errs.Errorf(errs.EINVALID, "invalid updates"), expected: "invalid updates"},
		{name: "wrapped application error", err: fmt.Errorf("update: %w", errs.Errorf(errs.ENOTFOUND, "comment not found")), expected: "comment not found"},
		{name: "non-application error is hidden", err: errors.New("disk write error"), expected: "Internal error."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errs.ErrorMessage(tt.err))
		})
	}
}

func TestErrorf(t *testing.T) {
	err := errs.Errorf(errs.ENOTFOUND, "movie %s not found", "573a1390f29313caabcd4135")

	assert.Equal(t, errs.ENOTFOUND, err.Code)
	assert.Equal(t, "movie 573a1390f29313caabcd4135 not found", err.Message)
	assert.Equal(t, "application error: code=not_found message=movie 573a1390f29313caabcd4135 not found", err.Error())
}

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, "conflict", errs.ECONFLICT)
	assert.Equal(t, "internal", errs.EINTERNAL)
	assert.Equal(t, "invalid", errs.EINVALID)
	assert.Equal(t, "not_found", errs.ENOTFOUND)
	assert.Equal(t, "not_implemented", errs.ENOTIMPLEMENTED)
	assert.Equal(t, "unauthorized", errs.EUNAUTHORIZED)
}
