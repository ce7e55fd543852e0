package limiter

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenBucket_Basic(t *testing.T) {
	bucket := NewTokenBucket(&LimiterConfig{
		Capacity:    5,
		RatePS:      2,
		RatePPeriod: 1,
		RefillRate:  time.Hour,
	})
	defer bucket.Stop()

	for i := 0; i < 5; i++ {
		require.True(t, bucket.Allow(), "request %d", i+1)
	}
	// 超過容量
	require.False(t, bucket.Allow())
}

func TestTokenBucket_Refill(t *testing.T) {
	bucket := NewTokenBucket(&LimiterConfig{
		Capacity:    2,
		RatePS:      1,
		RatePPeriod: 1,
		RefillRate:  time.Hour,
	})
	defer bucket.Stop()

	require.True(t, bucket.Allow())
	require.True(t, bucket.Allow())
	require.False(t, bucket.Allow())

	start := bucket.lastRefilled.Load()
	bucket.refill(start + int64(1100*time.Millisecond))

	require.True(t, bucket.Allow())
	require.False(t, bucket.Allow())
}

func TestTokenBucket_CapacityCap(t *testing.T) {
	bucket := NewTokenBucket(&LimiterConfig{
		Capacity:    2,
		RatePS:      10,
		RatePPeriod: 1,
		RefillRate:  time.Hour,
	})
	defer bucket.Stop()

	bucket.Allow()
	bucket.Allow()

	start := bucket.lastRefilled.Load()
	bucket.refill(start + int64(5*time.Second))
	require.Equal(t, int64(2), bucket.Tokens())
}

func TestTokenBucket_Period(t *testing.T) {
	// 每 10 秒 1 個
	bucket := NewTokenBucket(&LimiterConfig{
		Capacity:    1,
		RatePS:      1,
		RatePPeriod: 10,
		RefillRate:  time.Hour,
	})
	defer bucket.Stop()

	require.True(t, bucket.Allow())
	start := bucket.lastRefilled.Load()

	bucket.refill(start + int64(5*time.Second))
	require.False(t, bucket.Allow())

	bucket.refill(start + int64(11*time.Second))
	require.True(t, bucket.Allow())
}

func TestTokenBucket_Concurrent(t *testing.T) {
	bucket := NewTokenBucket(&LimiterConfig{
		Capacity:    50,
		RatePS:      1,
		RatePPeriod: 1,
		RefillRate:  time.Hour,
	})
	defer bucket.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if bucket.Allow() {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 50, allowed)
}

func TestKeyedLimiter(t *testing.T) {
	k := NewKeyedLimiter(LimiterConfig{
		Capacity:    1,
		RatePS:      1,
		RatePPeriod: 60,
		RefillRate:  time.Hour,
	}, time.Minute)
	defer k.Stop()

	require.True(t, k.Allow("10.0.0.1"))
	require.False(t, k.Allow("10.0.0.1"))
	// 不同 key 互不影響
	require.True(t, k.Allow("10.0.0.2"))
	require.Equal(t, 2, k.Len())

	k.evict(time.Now().Add(2 * time.Minute))
	require.Equal(t, 0, k.Len())
	require.True(t, k.Allow("10.0.0.1"))
}
