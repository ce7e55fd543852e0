package limiter

import (
	"sync"
	"sync/atomic"
	"time"
)

type LimiterConfig struct {
	Capacity    int
	RatePS      int           // tokens / RatePPeriod 秒
	RatePPeriod int           // 秒
	RefillRate  time.Duration // 補充時間間隔
}

func GetDefaultLimiterConfig() LimiterConfig {
	return LimiterConfig{
		Capacity:    10,
		RatePS:      1,
		RatePPeriod: 1,
		RefillRate:  time.Second,
	}
}

func (c LimiterConfig) tokensPerSecond() float64 {
	if c.RatePPeriod <= 0 {
		return float64(c.RatePS)
	}
	return float64(c.RatePS) / float64(c.RatePPeriod)
}

/*
請使用 defer 呼叫 Stop()
*/
type TokenBucket struct {
	LimiterConfig
	current      atomic.Int64
	lastRefilled atomic.Int64
	cancel       chan struct{}
	once         sync.Once
}

/*
請使用 defer 呼叫 Stop()
*/
func NewTokenBucket(config *LimiterConfig) *TokenBucket {
	t := &TokenBucket{
		cancel: make(chan struct{}),
	}

	if config != nil {
		t.LimiterConfig = *config
	} else {
		t.LimiterConfig = GetDefaultLimiterConfig()
	}
	if t.RefillRate <= 0 {
		t.RefillRate = time.Second
	}

	t.current.Store(int64(t.Capacity))
	t.lastRefilled.Store(time.Now().UnixNano())
	go t.background()
	return t
}

func (t *TokenBucket) Allow() bool {
	for {
		current := t.current.Load()
		if current <= 0 {
			return false
		}
		if t.current.CompareAndSwap(current, current-1) {
			return true
		}
	}
}

// Tokens 目前剩餘
func (t *TokenBucket) Tokens() int64 {
	return t.current.Load()
}

func (t *TokenBucket) countNewTokens(current int64, now int64) int64 {
	elapsed := time.Duration(now - t.lastRefilled.Load())
	newTokens := current + int64(elapsed.Seconds()*t.tokensPerSecond())
	if newTokens > int64(t.Capacity) {
		newTokens = int64(t.Capacity)
	}
	return newTokens
}

func (t *TokenBucket) refill(now int64) {
	for {
		current := t.current.Load()
		newTokens := t.countNewTokens(current, now)
		if newTokens == current {
			// 已滿時推進時間點, 避免消耗後瞬間補滿
			if current >= int64(t.Capacity) {
				t.lastRefilled.Store(now)
			}
			return
		}
		if t.current.CompareAndSwap(current, newTokens) {
			t.lastRefilled.Store(now)
			return
		}
	}
}

func (t *TokenBucket) background() {
	ticker := time.NewTicker(t.RefillRate)
	defer ticker.Stop()

	for {
		select {
		case <-t.cancel:
			return
		case <-ticker.C:
			t.refill(time.Now().UnixNano())
		}
	}
}

func (t *TokenBucket) Stop() {
	t.once.Do(func() {
		close(t.cancel)
	})
}
