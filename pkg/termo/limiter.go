package termo

import (
	"sync"

	"golang.org/x/time/rate"
)

// RateLimiterStore manages per-thermometer rate limiters. QR-code driven
// kiosks can hammer the submission endpoint, so each thermometer gets
// its own budget: thermometer_id -> rate limiter.
type RateLimiterStore struct {
	limiters     map[uint]*rate.Limiter
	mu           sync.Mutex
	defaultRate  rate.Limit
	defaultBurst int
}

func NewRateLimiterStore(defaultRate rate.Limit, defaultBurst int) *RateLimiterStore {
	return &RateLimiterStore{
		limiters:     make(map[uint]*rate.Limiter),
		defaultRate:  defaultRate,
		defaultBurst: defaultBurst,
	}
}

func (s *RateLimiterStore) GetLimiter(thermometerID uint) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	limiter, exists := s.limiters[thermometerID]
	if !exists {
		limiter = rate.NewLimiter(s.defaultRate, s.defaultBurst)
		s.limiters[thermometerID] = limiter
	}
	return limiter
}

func (s *RateLimiterStore) SetLimiter(thermometerID uint, limiterRate rate.Limit, limiterBurst int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.limiters[thermometerID] = rate.NewLimiter(limiterRate, limiterBurst)
}
