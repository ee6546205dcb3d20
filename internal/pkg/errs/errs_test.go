package errs_test

import (
	"errors"
	"testing"

	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("cuisine")

		assert.Equal(t, "cuisine", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: cuisine", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("cuisine", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: cuisine (cause: invalid format)", err.Error())
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("score", 7, 1, 5)

		assert.Equal(t, "score", err.ParamName)
		assert.Equal(t, 7, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 5, err.Max)
		assert.Equal(t, "value is out of range: 7 is score, min value is 1, max value is 5", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitizes newlines in values", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("customerId")

	assert.Equal(t, "customerId", err.ParamName)
	assert.Equal(t, "value is required: customerId", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())

	cause := errors.New("missing required field")
	withCause := errs.NewValueIsRequiredErrorWithCause("customerId", cause)
	assert.Equal(t, "value is required: customerId (cause: missing required field)", withCause.Error())
}

func TestConflictError(t *testing.T) {
	t.Run("NewConflictError", func(t *testing.T) {
		err := errs.NewConflictError("orderId", "42")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "42", err.ID)
		assert.Equal(t, "conflict: orderId is 42", err.Error())
		assert.Equal(t, errs.ErrConflict, err.Unwrap())
	})

	t.Run("NewConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("active assignment already exists")
		err := errs.NewConflictErrorWithCause("orderId", "42", cause)

		assert.Equal(t,
			"conflict: param is: orderId, ID is: 42 (cause: active assignment already exists)",
			err.Error())
		assert.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("order is not rateable")

	assert.Equal(t, "order is not rateable", err.Reason)
	assert.Equal(t, "forbidden: order is not rateable", err.Error())
	assert.Equal(t, errs.ErrForbidden, err.Unwrap())
}

func TestInvalidStateError(t *testing.T) {
	err := errs.NewInvalidStateError("assignment", "Assigned", "Delivered")

	assert.Equal(t, "Assigned", err.From)
	assert.Equal(t, "Delivered", err.To)
	assert.Equal(t,
		"invalid state transition: assignment cannot move from Assigned to Delivered",
		err.Error())
	assert.Equal(t, errs.ErrInvalidState, err.Unwrap())
}

func TestStorageError(t *testing.T) {
	cause := errors.New("connection reset")
	err := errs.NewStorageError("save order", cause)

	assert.Equal(t, "save order", err.Operation)
	assert.Equal(t, "storage failure: save order (cause: connection reset)", err.Error())
	assert.Equal(t, errs.ErrStorage, err.Unwrap())
}

func TestSentinelErrors(t *testing.T) {
	t.Run("every typed error unwraps to its sentinel", func(t *testing.T) {
		assert.ErrorIs(t, errs.NewValueIsRequiredError("x"), errs.ErrValueIsRequired)
		assert.ErrorIs(t, errs.NewValueIsInvalidError("x"), errs.ErrValueIsInvalid)
		assert.ErrorIs(t, errs.NewValueIsOutOfRangeError("x", 0, 1, 2), errs.ErrValueIsOutOfRange)
		assert.ErrorIs(t, errs.NewObjectNotFoundError("x", "1"), errs.ErrObjectNotFound)
		assert.ErrorIs(t, errs.NewConflictError("x", "1"), errs.ErrConflict)
		assert.ErrorIs(t, errs.NewForbiddenError("x"), errs.ErrForbidden)
		assert.ErrorIs(t, errs.NewInvalidStateError("x", "a", "b"), errs.ErrInvalidState)
		assert.ErrorIs(t, errs.NewStorageError("x", nil), errs.ErrStorage)
	})

	t.Run("sentinels are distinct", func(t *testing.T) {
		assert.NotErrorIs(t, errs.NewConflictError("x", "1"), errs.ErrObjectNotFound)
		assert.NotErrorIs(t, errs.NewForbiddenError("x"), errs.ErrInvalidState)
	})
}
