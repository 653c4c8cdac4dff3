package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"domain error", Invalid("op", "bad input"), EINVALID},
		{"wrapped domain error", fmt.Errorf("outer: %w", Gone("op", "closed")), EGONE},
		{"plain error", errors.New("boom"), EINTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorCode(tt.err))
		})
	}
}

func TestErrorMessageHidesInternals(t *testing.T) {
	// Internal errors never leak their underlying cause to the client
	internal := Internal(errors.New("pq: connection refused"), "leadstore.archive", "failed to archive inquiry")
	assert.NotContains(t, ErrorMessage(internal), "pq:")

	plain := errors.New("pq: connection refused")
	assert.NotContains(t, ErrorMessage(plain), "pq:")

	// Non-internal messages pass through verbatim
	invalid := Invalid("lead.submit", "Invalid email")
	assert.Equal(t, "Invalid email", ErrorMessage(invalid))
}

func TestErrorFormatting(t *testing.T) {
	withOp := Invalid("configurator.dispatch", "unknown action")
	assert.Equal(t, "configurator.dispatch: unknown action", withOp.Error())

	withoutOp := &Error{Code: EINVALID, Message: "unknown action"}
	assert.Equal(t, "unknown action", withoutOp.Error())
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Unavailable(cause, "catalog.load", "Catalog is temporarily unavailable. Please reload.")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "catalog.load", ErrorOp(err))
}

func TestNotFoundMessage(t *testing.T) {
	err := NotFound("configurator.session", "session", "abc")
	assert.Equal(t, ENOTFOUND, err.Code)
	assert.Equal(t, `session with ID "abc" not found`, err.Message)
}
