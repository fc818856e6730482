package mirror_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/pagemirror"
	"github.com/fwojciec/pagemirror/mirror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("implements pagemirror.DomainLimiter interface", func(t *testing.T) {
		t.Parallel()
		var _ pagemirror.DomainLimiter = mirror.NewDomainLimiter(1)
	})

	t.Run("allows immediate request when under limit", func(t *testing.T) {
		t.Parallel()

		limiter := mirror.NewDomainLimiter(10)

		start := time.Now()
		err := limiter.Wait(context.Background(), "example.com")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 50*time.Millisecond, "first request should be immediate")
	})

	t.Run("rate limits requests to same host", func(t *testing.T) {
		t.Parallel()

		limiter := mirror.NewDomainLimiter(10) // 100ms between requests

		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "example.com")

		require.NoError(t, err)
		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond, "should wait for rate limit")
	})

	t.Run("different hosts have independent limits", func(t *testing.T) {
		t.Parallel()

		limiter := mirror.NewDomainLimiter(10)

		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		start := time.Now()
		err := limiter.Wait(context.Background(), "cdn.example.net")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 50*time.Millisecond, "different host should not wait")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := mirror.NewDomainLimiter(1)

		require.NoError(t, limiter.Wait(context.Background(), "example.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		assert.Error(t, limiter.Wait(ctx, "example.com"), "should fail when context times out")
	})
}
