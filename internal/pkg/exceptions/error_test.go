package exceptions

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildNewCustomError(t *testing.T) {
	t.Run("Wraps Plain Error", func(t *testing.T) {
		cause := errors.New("pq: connection refused")

		err := ErrPostgresDBFindData(cause)

		assert.Equal(t, http.StatusInternalServerError, err.StatusCode)
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.DevMessage, "pq: connection refused")
		require.Len(t, err.Locations, 1)
		assert.Contains(t, err.Locations[0].FunctionName, "TestBuildNewCustomError")
	})

	t.Run("Keeps First Custom Error", func(t *testing.T) {
		notFound := ErrPaymentNotFound(nil, "p-1")

		wrapped := ErrPostgresDBFindData(fmt.Errorf("lookup: %w", notFound))

		assert.Same(t, notFound, wrapped)
		assert.Equal(t, http.StatusNotFound, wrapped.StatusCode)
		assert.Len(t, wrapped.Locations, 2)
	})

	t.Run("Invalid State Is Conflict", func(t *testing.T) {
		err := ErrPaymentInvalidState(fmt.Errorf("verify from pending: %w", ErrInvalidState), "verify", "pending")

		assert.Equal(t, http.StatusConflict, err.StatusCode)
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestFormatFirstValidationError(t *testing.T) {
	type payload struct {
		Kind string `validate:"oneof=order appointment"`
		Note string `validate:"max=5"`
	}
	validate := validator.New()

	t.Run("Oneof", func(t *testing.T) {
		err := validate.Struct(payload{Kind: "refund"})
		assert.Equal(t, "kind must be one of [order, appointment]", FormatFirstValidationError(err))
	})

	t.Run("Max", func(t *testing.T) {
		err := validate.Struct(payload{Kind: "order", Note: "too long"})
		assert.Equal(t, "note maximum at 5 characters long", FormatFirstValidationError(err))
	})

	t.Run("Not A Validation Error", func(t *testing.T) {
		assert.NotEmpty(t, FormatFirstValidationError(errors.New("boom")))
	})
}
