package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
)

// ProfileDataSource defines the interface for mentor profile fetching
type ProfileDataSource interface {
	GetAvailableMentorProfiles(ctx context.Context) ([]*models.MentorProfile, error)
}

// ProfileCacheInterface defines the operations the repository layer relies on
type ProfileCacheInterface interface {
	Initialize() error
	IsReady() bool
	Get(ctx context.Context) ([]*models.MentorProfile, error)
	ForceRefresh(ctx context.Context) ([]*models.MentorProfile, error)
	Clear()
}

const (
	availableProfilesKey = "profiles:available"
	cacheCheckPeriod     = 10 * time.Second
	maxRetries           = 3
	initialRetryWait     = 2 * time.Second
)

// ProfileCache keeps the available-mentor list in memory so match queries do
// not hit the database on every call.
type ProfileCache struct {
	cache       *gocache.Cache
	dataSource  ProfileDataSource
	mu          sync.RWMutex
	refreshing  bool
	ready       bool
	ttl         time.Duration
	lastRefresh time.Time
}

var _ ProfileCacheInterface = (*ProfileCache)(nil)

// NewProfileCache creates a new profile cache with the given TTL
func NewProfileCache(dataSource ProfileDataSource, ttlSeconds int) *ProfileCache {
	return &ProfileCache{
		cache:      gocache.New(gocache.NoExpiration, cacheCheckPeriod),
		dataSource: dataSource,
		ttl:        time.Duration(ttlSeconds) * time.Second,
	}
}

// Initialize performs initial cache population (synchronous, blocks until ready)
// Should be called during application startup before accepting requests
func (pc *ProfileCache) Initialize() error {
	logger.Info("Initializing mentor profile cache...")
	startTime := time.Now()

	if err := pc.refreshWithRetry(); err != nil {
		logger.Error("Failed to initialize mentor profile cache", zap.Error(err))
		return err
	}

	pc.mu.Lock()
	pc.ready = true
	pc.lastRefresh = time.Now()
	pc.mu.Unlock()

	logger.Info("Mentor profile cache initialized successfully",
		zap.Duration("duration", time.Since(startTime)))

	go pc.schedulePeriodicRefresh()

	return nil
}

// IsReady returns true if the cache has been successfully initialized
func (pc *ProfileCache) IsReady() bool {
	pc.mu.RLock()
	defer pc.mu.RUnlock()
	return pc.ready
}

// Get returns the cached available-mentor list. On a miss it falls through to
// the data source rather than blocking on a refresh.
func (pc *ProfileCache) Get(ctx context.Context) ([]*models.MentorProfile, error) {
	if !pc.IsReady() {
		return nil, fmt.Errorf("cache not initialized")
	}

	data, found := pc.cache.Get(availableProfilesKey)
	if found {
		if profiles, ok := data.([]*models.MentorProfile); ok {
			metrics.CacheHits.WithLabelValues("available_profiles").Inc()
			return profiles, nil
		}
		logger.Error("Invalid cache data type for available profiles")
		pc.cache.Delete(availableProfilesKey)
	}

	metrics.CacheMisses.WithLabelValues("available_profiles").Inc()
	logger.Debug("Available profiles expired from cache, fetching from store")

	profiles, err := pc.dataSource.GetAvailableMentorProfiles(ctx)
	if err != nil {
		return nil, err
	}

	pc.populateCache(profiles)
	return profiles, nil
}

// ForceRefresh triggers a background refresh and returns the current data
func (pc *ProfileCache) ForceRefresh(ctx context.Context) ([]*models.MentorProfile, error) {
	logger.Info("Force refresh requested, triggering background refresh")

	go func() {
		if err := pc.refreshInBackground(); err != nil {
			logger.Error("Background refresh failed", zap.Error(err))
		}
	}()

	return pc.Get(ctx)
}

// schedulePeriodicRefresh runs background refresh at TTL intervals
func (pc *ProfileCache) schedulePeriodicRefresh() {
	ticker := time.NewTicker(pc.ttl)
	defer ticker.Stop()

	for range ticker.C {
		logger.Debug("Starting scheduled profile cache refresh")

		if err := pc.refreshInBackground(); err != nil {
			logger.Error("Scheduled profile cache refresh failed", zap.Error(err))
			// Scheduler keeps running, next tick retries
		}
	}
}

// refreshInBackground performs non-blocking background refresh
func (pc *ProfileCache) refreshInBackground() error {
	pc.mu.Lock()
	if pc.refreshing {
		pc.mu.Unlock()
		logger.Debug("Refresh already in progress, skipping")
		return nil
	}
	pc.refreshing = true
	pc.mu.Unlock()

	defer func() {
		pc.mu.Lock()
		pc.refreshing = false
		pc.mu.Unlock()
	}()

	startTime := time.Now()

	profiles, err := pc.dataSource.GetAvailableMentorProfiles(context.Background())
	if err != nil {
		logger.Error("Failed to fetch profiles in background refresh", zap.Error(err))
		return err
	}

	pc.populateCache(profiles)

	pc.mu.Lock()
	pc.lastRefresh = time.Now()
	pc.mu.Unlock()

	logger.Info("Background profile refresh completed",
		zap.Int("count", len(profiles)),
		zap.Duration("duration", time.Since(startTime)))

	return nil
}

// refreshWithRetry performs a refresh with exponential backoff
func (pc *ProfileCache) refreshWithRetry() error {
	var err error

	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			//nolint:gosec // G115: attempt bounded by maxRetries (3), max shift is 2, no overflow possible
			waitTime := initialRetryWait * time.Duration(1<<uint(attempt-1))
			logger.Info("Retrying profile cache refresh",
				zap.Int("attempt", attempt+1),
				zap.Int("max_attempts", maxRetries),
				zap.Duration("wait_time", waitTime))
			time.Sleep(waitTime)
		}

		profiles, fetchErr := pc.dataSource.GetAvailableMentorProfiles(context.Background())
		if fetchErr != nil {
			err = fetchErr
			logger.Error("Profile cache refresh attempt failed",
				zap.Int("attempt", attempt+1),
				zap.Error(err))
			continue
		}

		pc.populateCache(profiles)
		return nil
	}

	return fmt.Errorf("failed to refresh profile cache after %d attempts: %w", maxRetries, err)
}

func (pc *ProfileCache) populateCache(profiles []*models.MentorProfile) {
	pc.cache.Set(availableProfilesKey, profiles, pc.ttl)
	metrics.CacheSize.WithLabelValues("available_profiles").Set(float64(len(profiles)))
}

// Clear clears the entire cache
func (pc *ProfileCache) Clear() {
	pc.cache.Flush()
	logger.Info("Profile cache cleared")
}
