package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("customer", "123")

		assert.Equal(t, "customer", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("customer", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: customer, ID is: 123 (cause: database connection failed)",
			err.Error())
	})
}

func TestValueErrors(t *testing.T) {
	t.Run("invalid", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("0 is not positive"))

		assert.Equal(t, "value is invalid: quantity (cause: 0 is not positive)", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("required", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("deliveryAddress")

		assert.Equal(t, "value is required: deliveryAddress", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("out of range", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("rating", 7, 0, 5)

		assert.Equal(t, "value is invalid: 7 is rating, min value is 0, max value is 5", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("out of range value with newlines is flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)

		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestRuleViolationError(t *testing.T) {
	sentinel := errs.NewRuleViolationError("agent not available", "agent must be AVAILABLE")

	t.Run("matches sentinel with a more specific reason", func(t *testing.T) {
		err := sentinel.WithReason("agent %s is BUSY", "a-1")

		assert.Equal(t, "agent not available: agent a-1 is BUSY", err.Error())
		require.ErrorIs(t, err, sentinel)
		require.ErrorIs(t, err, errs.ErrRuleViolation)
	})

	t.Run("different rules do not match", func(t *testing.T) {
		other := errs.NewRuleViolationError("order not placed", "order must be PLACED")

		assert.NotErrorIs(t, other, sentinel)
		require.ErrorIs(t, other, errs.ErrRuleViolation)
	})

	t.Run("survives wrapping", func(t *testing.T) {
		err := fmt.Errorf("assign: %w", sentinel.WithReason("busy"))

		require.ErrorIs(t, err, sentinel)

		var violation *errs.RuleViolationError
		require.ErrorAs(t, err, &violation)
		assert.Equal(t, "busy", violation.Reason)
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "business rule violation", errs.ErrRuleViolation.Error())
	assert.Equal(t, "concurrent update", errs.ErrConcurrentUpdate.Error())
}
