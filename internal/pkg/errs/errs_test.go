//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"space-booking-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIs(t *testing.T) {
	sentinel := errors.New("domain validation failed")

	t.Run("sees markers attached with Mark", func(t *testing.T) {
		marked := errs.Mark(errors.New("guest count exceeds capacity"), sentinel)

		assert.True(t, errs.Is(marked, sentinel))
		// The marker is not part of the Unwrap chain, so the standard
		// library cannot match it. Handlers must go through errs.Is.
		assert.False(t, errors.Is(marked, sentinel))
	})

	t.Run("still sees the wrapped cause", func(t *testing.T) {
		cause := errors.New("slot already booked")
		marked := errs.Mark(errs.Wrap(cause, "insert failed"), sentinel)

		assert.True(t, errs.Is(marked, cause))
		assert.True(t, errs.Is(marked, sentinel))
	})

	t.Run("plain wrap chains match", func(t *testing.T) {
		cause := errors.New("no rows")
		assert.True(t, errs.Is(errs.Wrap(cause, "find booking"), cause))
	})

	t.Run("unrelated errors do not match", func(t *testing.T) {
		assert.False(t, errs.Is(errors.New("boom"), sentinel))
	})
}

func TestMark(t *testing.T) {
	sentinel := errors.New("database operation failed")

	t.Run("nil error yields the marker itself", func(t *testing.T) {
		err := errs.Mark(nil, sentinel)
		require.ErrorIs(t, err, sentinel)
	})

	t.Run("message comes from the marked error", func(t *testing.T) {
		err := errs.Mark(errors.New("connection reset"), sentinel)
		assert.Equal(t, "connection reset", err.Error())
	})
}
