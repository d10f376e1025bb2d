package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceError_Is(t *testing.T) {
	t.Parallel()

	err := NewSourceError("list orders", context.DeadlineExceeded)

	assert.ErrorIs(t, err, ErrSourceUnavailable)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotErrorIs(t, err, ErrItemNotFound)
	assert.Equal(t, "market data source unavailable: list orders: context deadline exceeded", err.Error())
}

func TestSourceError_WrappedStillMatches(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("compose: %w", NewSourceError("get history", errors.New("esi http 503")))

	var se *SourceError
	assert.True(t, errors.As(wrapped, &se))
	assert.Equal(t, "get history", se.Op)
	assert.ErrorIs(t, wrapped, ErrSourceUnavailable)
}
