package telegram

import (
	"context"
	"sort"
	"sync"
	"time"
)

// messageRequest represents a message to be processed
type messageRequest struct {
	ctx    context.Context
	userID int64
	chatID int64
	text   string
}

// workerPool manages parallel processing of messages
type workerPool struct {
	requestQueue chan *messageRequest
	workerCount  int
	handler      *BotHandler
	wg           sync.WaitGroup
	closeOnce    sync.Once

	// Rate limiting per user
	rateLimiter   map[int64]*userRateLimit
	rateLimiterMu sync.Mutex
	now           func() time.Time
}

// userRateLimit tracks rate limiting per user
type userRateLimit struct {
	lastRequest  time.Time
	requestCount int
}

const (
	maxRequestsPerSecond   = 3
	requestQueueSize       = 100
	defaultWorkerCount     = 8
	buildRequestTimeout    = 45 * time.Second
	rateLimiterCleanupTime = 5 * time.Minute
	rateLimiterMaxIdleTime = 10 * time.Minute
	maxRateLimitersInCache = 10000
)

// newWorkerPool creates a new worker pool
func newWorkerPool(handler *BotHandler, workerCount int) *workerPool {
	if workerCount <= 0 {
		workerCount = defaultWorkerCount
	}
	return &workerPool{
		requestQueue: make(chan *messageRequest, requestQueueSize),
		workerCount:  workerCount,
		handler:      handler,
		rateLimiter:  make(map[int64]*userRateLimit),
		now:          time.Now,
	}
}

// start starts all workers
func (wp *workerPool) start(ctx context.Context) {
	wp.handler.log.Info().Int("workers", wp.workerCount).Msg("worker pool started")
	for i := 0; i < wp.workerCount; i++ {
		wp.wg.Add(1)
		go wp.worker(ctx)
	}
	go wp.cleanupRateLimits(ctx)
}

// worker processes messages from the queue
func (wp *workerPool) worker(ctx context.Context) {
	defer wp.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case req, ok := <-wp.requestQueue:
			if !ok {
				return
			}
			if req == nil {
				continue
			}
			if !wp.checkRateLimit(req.userID) {
				wp.handler.sendMessage(req.chatID, "⚠️ Too many requests. Please wait a moment.")
				continue
			}
			wp.process(req)
		}
	}
}

// process one request with timeout and panic recovery
func (wp *workerPool) process(req *messageRequest) {
	ctx, cancel := context.WithTimeout(req.ctx, buildRequestTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			wp.handler.log.Error().Interface("panic", r).Int64("user_id", req.userID).Msg("panic in message processing")
			wp.handler.sendMessage(req.chatID, "⚠️ Internal error. Please try again.")
		}
	}()

	reply := wp.handler.reply(ctx, req.text)
	if ctx.Err() == context.DeadlineExceeded {
		wp.handler.log.Warn().Int64("user_id", req.userID).Dur("timeout", buildRequestTimeout).Msg("request timed out")
		reply = "⏱️ The request took too long. Please try again."
	}
	if reply != "" {
		wp.handler.sendMessage(req.chatID, reply)
	}
}

// checkRateLimit checks if user is within rate limit
func (wp *workerPool) checkRateLimit(userID int64) bool {
	wp.rateLimiterMu.Lock()
	defer wp.rateLimiterMu.Unlock()

	now := wp.now()
	limiter, exists := wp.rateLimiter[userID]
	if !exists {
		wp.rateLimiter[userID] = &userRateLimit{lastRequest: now, requestCount: 1}
		return true
	}

	// Reset counter if more than 1 second has passed
	if now.Sub(limiter.lastRequest) >= time.Second {
		limiter.requestCount = 1
		limiter.lastRequest = now
		return true
	}
	if limiter.requestCount >= maxRequestsPerSecond {
		wp.handler.log.Debug().Int64("user_id", userID).Msg("rate limit exceeded")
		return false
	}
	limiter.requestCount++
	return true
}

// cleanupRateLimits removes old rate limit entries
func (wp *workerPool) cleanupRateLimits(ctx context.Context) {
	ticker := time.NewTicker(rateLimiterCleanupTime)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			wp.pruneRateLimits()
		}
	}
}

// pruneRateLimits drops idle limiters, then the oldest ones while the cache is over its cap
func (wp *workerPool) pruneRateLimits() int {
	wp.rateLimiterMu.Lock()
	defer wp.rateLimiterMu.Unlock()

	now := wp.now()
	removed := 0
	for userID, limiter := range wp.rateLimiter {
		if now.Sub(limiter.lastRequest) > rateLimiterMaxIdleTime {
			delete(wp.rateLimiter, userID)
			removed++
		}
	}

	if extra := len(wp.rateLimiter) - maxRateLimitersInCache; extra > 0 {
		type userTime struct {
			userID      int64
			lastRequest time.Time
		}
		users := make([]userTime, 0, len(wp.rateLimiter))
		for userID, limiter := range wp.rateLimiter {
			users = append(users, userTime{userID, limiter.lastRequest})
		}
		sort.Slice(users, func(i, j int) bool { return users[i].lastRequest.Before(users[j].lastRequest) })
		for _, u := range users[:extra] {
			delete(wp.rateLimiter, u.userID)
			removed++
		}
	}
	if removed > 0 {
		wp.handler.log.Debug().Int("removed", removed).Int("left", len(wp.rateLimiter)).Msg("rate limiters pruned")
	}
	return removed
}

// submit submits a message to the worker pool
func (wp *workerPool) submit(req *messageRequest) bool {
	select {
	case wp.requestQueue <- req:
		return true
	default:
		wp.handler.log.Warn().Int("queued", len(wp.requestQueue)).Int64("user_id", req.userID).Msg("worker pool queue is full")
		wp.handler.sendMessage(req.chatID, "⚠️ The bot is busy. Please try again shortly.")
		return false
	}
}

// shutdown gracefully shuts down the worker pool
func (wp *workerPool) shutdown() {
	wp.closeOnce.Do(func() {
		wp.handler.log.Info().Int("queued", len(wp.requestQueue)).Msg("shutting down worker pool")
		close(wp.requestQueue)
	})
	wp.wg.Wait()
}
