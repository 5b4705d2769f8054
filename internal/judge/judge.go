// Package judge coordinates roast generation: a cached, rate-limited
// request pipeline in front of the external judgment service.
package judge

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/rubicon/gylr-go/internal/metrics"
	"github.com/rubicon/gylr-go/internal/models"
)

// Fixed policy values, part of the coordinator's observable contract.
const (
	// RateLimitWindow is the minimum gap between successful dispatches.
	RateLimitWindow = 10 * time.Second

	// CacheTTL is how long a generated roast stays servable from cache.
	CacheTTL = 5 * time.Minute

	// DefaultRequestTimeout bounds the external call.
	DefaultRequestTimeout = 15 * time.Second
)

// Generator is the judgment service boundary: rendered prompts in,
// text out, or an error. The HTTP transport and response parsing live
// behind this interface.
type Generator interface {
	GenerateWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type cacheEntry struct {
	text        string
	generatedAt time.Time
}

// Options configures a Coordinator.
type Options struct {
	// Clock is used for all rate-limit and TTL decisions. Defaults to
	// the real clock; tests inject a fake one.
	Clock clockwork.Clock

	Logger  *slog.Logger
	Metrics *metrics.Collector

	// Timeout bounds each external call. Defaults to DefaultRequestTimeout.
	Timeout time.Duration

	// Personality is the initial judge voice.
	Personality models.Personality
}

// Coordinator decides, per request, whether to serve from cache, reject
// due to rate limiting, or dispatch to the external judgment service.
// At most one dispatch is in flight at a time.
type Coordinator struct {
	gen     Generator
	clock   clockwork.Clock
	logger  *slog.Logger
	metrics *metrics.Collector
	timeout time.Duration

	mu              sync.Mutex
	personality     models.Personality
	lastRequestedAt time.Time
	loading         bool
	cache           map[string]cacheEntry
	lastError       string
}

// NewCoordinator creates a coordinator over the given generator.
// A nil generator means the judgment service is not configured; every
// request will fail fast with ErrNotConfigured.
func NewCoordinator(gen Generator, opts Options) *Coordinator {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultRequestTimeout
	}
	if opts.Personality == "" {
		opts.Personality = models.PersonalitySarcasticFriend
	}
	return &Coordinator{
		gen:         gen,
		clock:       opts.Clock,
		logger:      opts.Logger,
		metrics:     opts.Metrics,
		timeout:     opts.Timeout,
		personality: opts.Personality,
		cache:       make(map[string]cacheEntry),
	}
}

// RequestJudgment runs the full decision pipeline for one roast request.
// Unless forceRefresh is set, the rate-limit window is checked first,
// then the cache; only then is a request dispatched. A failed dispatch
// updates neither the cache nor the rate-limit timer, so an API error
// never costs the user a window.
func (c *Coordinator) RequestJudgment(ctx context.Context, allocations []models.TimeAllocation, period models.TimePeriod, personality models.Personality, forceRefresh bool) (string, error) {
	c.mu.Lock()

	if c.gen == nil {
		c.mu.Unlock()
		return "", ErrNotConfigured
	}

	c.setPersonalityLocked(personality)
	now := c.clock.Now()

	if !forceRefresh && !c.lastRequestedAt.IsZero() {
		elapsed := now.Sub(c.lastRequestedAt)
		if elapsed < RateLimitWindow {
			remaining := int(math.Ceil((RateLimitWindow - elapsed).Seconds()))
			c.mu.Unlock()
			c.metrics.RecordCount(metrics.OpRateLimited)
			return "", &RateLimitError{SecondsRemaining: remaining}
		}
	}

	fingerprint := Fingerprint(allocations, period, personality)
	if !forceRefresh {
		if entry, ok := c.cache[fingerprint]; ok && now.Sub(entry.generatedAt) < CacheTTL {
			c.mu.Unlock()
			c.metrics.RecordCount(metrics.OpCacheHit)
			c.logger.Debug("serving roast from cache", "fingerprint", fingerprint)
			return entry.text, nil
		}
	}
	c.metrics.RecordCount(metrics.OpCacheMiss)

	if c.loading {
		c.mu.Unlock()
		return "", ErrRequestInFlight
	}
	c.loading = true
	c.lastError = ""
	c.mu.Unlock()

	text, err := c.dispatch(ctx, allocations, period, personality)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if err != nil {
		c.lastError = err.Error()
		c.logger.Warn("roast generation failed", "code", Code(err), "error", err)
		return "", err
	}

	generatedAt := c.clock.Now()
	c.cache[fingerprint] = cacheEntry{text: text, generatedAt: generatedAt}
	c.lastRequestedAt = generatedAt
	return text, nil
}

// dispatch performs the bounded external call. Runs without the lock so
// cache reads stay responsive during a slow request.
func (c *Coordinator) dispatch(ctx context.Context, allocations []models.TimeAllocation, period models.TimePeriod, personality models.Personality) (string, error) {
	totalMinutes := 0
	for _, a := range allocations {
		totalMinutes += a.TotalMinutes
	}
	systemPrompt, userPrompt := BuildPrompt(personality, allocations, period, totalMinutes)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	text, err := c.gen.GenerateWithSystem(ctx, systemPrompt, userPrompt)
	c.metrics.RecordTiming(metrics.OpLLMGenerate, time.Since(start))

	if err != nil {
		return "", classifyGenerateError(err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// SetPersonality switches the judge voice. Changing personality clears
// the whole cache so a switched persona can never echo a stale quote
// generated under another voice.
func (c *Coordinator) SetPersonality(p models.Personality) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setPersonalityLocked(p)
}

func (c *Coordinator) setPersonalityLocked(p models.Personality) {
	if p == "" || p == c.personality {
		return
	}
	c.personality = p
	c.cache = make(map[string]cacheEntry)
	c.logger.Debug("personality changed, cache cleared", "personality", p)
}

// ClearCache drops all cached roasts.
func (c *Coordinator) ClearCache() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]cacheEntry)
}

// Loading reports whether a dispatch is currently in flight.
func (c *Coordinator) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// LastError returns the user-facing message of the most recent failure,
// or "" after a success.
func (c *Coordinator) LastError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastError
}

// CanRequest reports whether a request issued now would pass the
// loading and rate-limit gates.
func (c *Coordinator) CanRequest() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loading {
		return false
	}
	if c.lastRequestedAt.IsZero() {
		return true
	}
	return c.clock.Now().Sub(c.lastRequestedAt) >= RateLimitWindow
}

// SecondsUntilNextRequest returns the whole seconds left in the
// rate-limit window, or 0 if a request may be issued now.
func (c *Coordinator) SecondsUntilNextRequest() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lastRequestedAt.IsZero() {
		return 0
	}
	remaining := RateLimitWindow - c.clock.Now().Sub(c.lastRequestedAt)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Seconds()))
}
