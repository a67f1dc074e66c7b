package moltbook_test

import (
	"errors"
	"fmt"
	"testing"

	moltbook "github.com/andyle182810/moltbook-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_MatchesSentinel(t *testing.T) {
	t.Parallel()

	err := moltbook.NewAPIError("duplicate title", 200)

	require.ErrorIs(t, err, moltbook.ErrAPI)
	assert.Equal(t, "duplicate title", err.Error())
}

func TestAPIError_EmptyMessageFallsBackToStatus(t *testing.T) {
	t.Parallel()

	err := moltbook.NewAPIError("", 200)

	assert.Equal(t, "moltbook: api returned status 200", err.Error())
}

func TestIsAPIError_Wrapped(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("listing posts: %w", moltbook.NewAPIError("nope", 200))

	apiErr, ok := moltbook.IsAPIError(wrapped)
	require.True(t, ok)
	assert.Equal(t, "nope", apiErr.Message)
}

func TestIsAPIError_OtherError(t *testing.T) {
	t.Parallel()

	_, ok := moltbook.IsAPIError(errors.New("boom"))
	require.False(t, ok)

	_, ok = moltbook.IsAPIError(moltbook.ErrRateLimit)
	require.False(t, ok)
}
