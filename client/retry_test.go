package client

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"quota exhausted", &googleapi.Error{Code: 403, Message: "quotaExceeded"}, true},
		{"bad credential", &googleapi.Error{Code: 401}, true},
		{"bad request", &googleapi.Error{Code: 400}, true},
		{"not found", &googleapi.Error{Code: 404}, true},
		{"server error", &googleapi.Error{Code: 500}, false},
		{"unavailable", &googleapi.Error{Code: 503}, false},
		{"rate limited", &googleapi.Error{Code: 429}, false},
		{"plain network error", fmt.Errorf("connection reset"), false},
		{"wrapped api error", fmt.Errorf("call failed: %w", &googleapi.Error{Code: 403}), true},
		{"context canceled", context.Canceled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isTerminal(tt.err))
		})
	}
}

func TestWithRetryTransientThenSuccess(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), "test-op", func() error {
		calls++
		if calls < 3 {
			return &googleapi.Error{Code: 503}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetryBoundedAttempts(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), "test-op", func() error {
		calls++
		return &googleapi.Error{Code: 500}
	})

	require.Error(t, err)
	assert.Equal(t, maxRetryAttempts, calls)
}

func TestWithRetryPermanentErrorSurfacesImmediately(t *testing.T) {
	calls := 0
	err := withRetry(context.Background(), "test-op", func() error {
		calls++
		return &googleapi.Error{Code: 403, Message: "quotaExceeded"}
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls, "quota errors must not be retried")

	var apiErr *googleapi.Error
	assert.ErrorAs(t, err, &apiErr)
}

func TestNewDataAPIClientRequiresKey(t *testing.T) {
	_, err := NewDataAPIClient("")
	assert.Error(t, err)

	c, err := NewDataAPIClient("some-key")
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestClientCallsRequireConnect(t *testing.T) {
	c, err := NewDataAPIClient("some-key")
	require.NoError(t, err)

	ctx := context.Background()
	_, err = c.ResolveHandle(ctx, "creator")
	assert.Error(t, err)
	_, err = c.ChannelInfo(ctx, "UCx")
	assert.Error(t, err)
	_, err = c.PlaylistPage(ctx, "UUx", "", 50)
	assert.Error(t, err)
	_, err = c.VideosByID(ctx, []string{"v"})
	assert.Error(t, err)
}
