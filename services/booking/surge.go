package booking

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"homeserve/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// SurgeService resolves the demand multiplier for a category and time
// slot. Lookups are treated as remote: they take a context, may be slow
// or fail, and callers must fail closed to 1.0 when they do.
type SurgeService interface {
	Multiplier(ctx context.Context, category, timeSlot string) (float64, error)
}

// DefaultSurgeService applies a static evening-surge window, fronted by
// a short-lived Redis cache so the rule can later move behind a remote
// pricing service without changing callers.
type DefaultSurgeService struct {
	Cache     *redis.Client // optional; nil skips caching
	StartHour int           // inclusive
	EndHour   int           // inclusive
	Rate      float64
	CacheTTL  time.Duration
}

func NewDefaultSurgeService(cache *redis.Client, startHour, endHour int, rate float64) *DefaultSurgeService {
	return &DefaultSurgeService{
		Cache:     cache,
		StartHour: startHour,
		EndHour:   endHour,
		Rate:      rate,
		CacheTTL:  5 * time.Minute,
	}
}

// Multiplier returns the surge multiplier for the given slot. A
// malformed slot yields (1.0, error) so the caller can quote a safe
// price while flagging the failure.
func (s *DefaultSurgeService) Multiplier(ctx context.Context, category, timeSlot string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 1.0, fmt.Errorf("surge lookup aborted: %w", err)
	}

	cacheKey := utils.SurgeCachePrefix + category + ":" + timeSlot
	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Float64(); err == nil {
			return cached, nil
		}
		// Cache misses and cache errors both fall through to the rule.
	}

	hour, err := parseSlotHour(timeSlot)
	if err != nil {
		return 1.0, err
	}

	multiplier := 1.0
	if hour >= s.StartHour && hour <= s.EndHour {
		multiplier = s.Rate
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, cacheKey, multiplier, s.CacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache surge multiplier", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	return multiplier, nil
}

// parseSlotHour extracts the hour from an "HH:MM" 24-hour string.
func parseSlotHour(timeSlot string) (int, error) {
	parts := strings.Split(timeSlot, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("malformed time slot %q: expected HH:MM", timeSlot)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("malformed time slot %q: invalid hour", timeSlot)
	}
	return hour, nil
}
