package service

import (
	"context"
	"sync"
	"time"

	"linguabridge/backend/internal/logger"
	"linguabridge/backend/internal/repository"
)

// Janitor periodically evicts idle sessions and drops the conversations
// they saved. Session state and the conversation store share a lifetime:
// when a session ends, everything it owned goes with it.
type Janitor struct {
	sessions      *SessionManager
	conversations repository.ConversationRepository
	ttl           time.Duration
	interval      time.Duration
	stopCh        chan struct{}
	wg            sync.WaitGroup
}

func NewJanitor(sessions *SessionManager, conversations repository.ConversationRepository, ttl, interval time.Duration) *Janitor {
	return &Janitor{
		sessions:      sessions,
		conversations: conversations,
		ttl:           ttl,
		interval:      interval,
		stopCh:        make(chan struct{}),
	}
}

func (j *Janitor) Start() {
	j.wg.Add(1)
	go j.run()
	logger.Info("janitor started", "module", "janitor", "action", "sweep", "resource", "session", "result", "ok", "ttl_ms", j.ttl.Milliseconds(), "interval_ms", j.interval.Milliseconds())
}

func (j *Janitor) Stop() {
	close(j.stopCh)
	j.wg.Wait()
	logger.Info("janitor stopped", "module", "janitor", "action", "sweep", "resource", "session", "result", "ok")
}

func (j *Janitor) run() {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.sweep()
		case <-j.stopCh:
			return
		}
	}
}

func (j *Janitor) sweep() {
	evicted := j.sessions.SweepIdle(j.ttl)
	if len(evicted) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, id := range evicted {
		if err := j.conversations.DeleteBySession(ctx, id); err != nil {
			logger.Error("evict session conversations failed", "module", "janitor", "action", "sweep", "resource", "session", "result", "failed", "session_id", id, "error", err)
		}
	}
	logger.Info("idle sessions evicted", "module", "janitor", "action", "sweep", "resource", "session", "result", "ok", "count", len(evicted))
}
