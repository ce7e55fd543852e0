package limiter

import (
	"sync"
	"time"
)

// KeyedLimiter 每個 key (client ip) 一個 TokenBucket
type KeyedLimiter struct {
	config  LimiterConfig
	mu      sync.Mutex
	buckets map[string]*keyedBucket
	idleTTL time.Duration
	cancel  chan struct{}
	once    sync.Once
}

type keyedBucket struct {
	bucket   *TokenBucket
	lastSeen time.Time
}

/*
請使用 defer 呼叫 Stop()
*/
func NewKeyedLimiter(config LimiterConfig, idleTTL time.Duration) *KeyedLimiter {
	if idleTTL <= 0 {
		idleTTL = 10 * time.Minute
	}
	k := &KeyedLimiter{
		config:  config,
		buckets: make(map[string]*keyedBucket),
		idleTTL: idleTTL,
		cancel:  make(chan struct{}),
	}
	go k.evictLoop()
	return k
}

func (k *KeyedLimiter) Allow(key string) bool {
	k.mu.Lock()
	b, ok := k.buckets[key]
	if !ok {
		cf := k.config
		b = &keyedBucket{bucket: NewTokenBucket(&cf)}
		k.buckets[key] = b
	}
	b.lastSeen = time.Now()
	k.mu.Unlock()

	return b.bucket.Allow()
}

func (k *KeyedLimiter) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.buckets)
}

func (k *KeyedLimiter) evict(now time.Time) {
	k.mu.Lock()
	defer k.mu.Unlock()
	for key, b := range k.buckets {
		if now.Sub(b.lastSeen) > k.idleTTL {
			b.bucket.Stop()
			delete(k.buckets, key)
		}
	}
}

func (k *KeyedLimiter) evictLoop() {
	ticker := time.NewTicker(k.idleTTL)
	defer ticker.Stop()
	for {
		select {
		case <-k.cancel:
			return
		case now := <-ticker.C:
			k.evict(now)
		}
	}
}

func (k *KeyedLimiter) Stop() {
	k.once.Do(func() {
		close(k.cancel)
		k.mu.Lock()
		defer k.mu.Unlock()
		for key, b := range k.buckets {
			b.bucket.Stop()
			delete(k.buckets, key)
		}
	})
}
