package service

import (
	"context"
	"sync"
	"time"

	"github.com/okian/hireboard/internal/domain/model"
	"github.com/okian/hireboard/internal/notify"
	"github.com/okian/hireboard/pkg/logger"
	"github.com/okian/hireboard/pkg/metrics"
)

// EditSession buffers edits against one assessment while a drawer is open.
// Edits mutate a working copy only; the copy commits to the store after a
// debounce window of inactivity, or synchronously on Close. A new edit
// supersedes any pending window (last write wins). One session owns a record
// at a time; nothing here merges concurrent edits because there are none.
type EditSession struct {
	mu  sync.Mutex
	svc *Service
	log logger.Logger

	working model.Assessment
	timer   Handle
	dirty   bool
	closed  bool

	// silentPending is set the moment a silent edit is applied, not when
	// the debounce fires, so closing mid-window still acknowledges it.
	silentPending bool
	// notice is the notification of the latest noisy edit, surfaced only
	// after its debounce window commits.
	notice *notify.Notification
}

// ID returns the id of the assessment being edited.
func (s *EditSession) ID() string {
	return s.working.ID
}

// Assessment returns a copy of the current working state, including
// uncommitted edits.
func (s *EditSession) Assessment() model.Assessment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.working.Clone()
}

// Apply buffers an edit and restarts the debounce window.
func (s *EditSession) Apply(_ context.Context, edit Edit) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrSessionClosed
	}

	edit.apply(&s.working, s.svc.rubric)
	s.dirty = true

	if edit.Silent {
		s.silentPending = true
	} else {
		s.notice = &notify.Notification{Message: edit.Message, Severity: edit.Severity}
	}

	if s.timer != nil && s.timer.Stop() {
		metrics.RecordAutosaveCancel()
	}
	s.timer = s.svc.scheduler.Schedule(s.svc.debounce, s.onDebounce)
	return nil
}

// onDebounce commits the buffered state once the window elapses.
func (s *EditSession) onDebounce() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.timer = nil

	ctx := context.Background()
	if err := s.commit(ctx, "debounce"); err != nil {
		s.log.Error(ctx, "auto-save failed", logger.String("assessment_id", s.working.ID), logger.Error(err))
		return
	}
	if s.notice != nil {
		s.svc.notifier.Notify(ctx, *s.notice)
		s.notice = nil
	}
}

// Flush commits any buffered edits synchronously.
func (s *EditSession) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(ctx, "flush")
}

// Close cancels any pending window, flushes synchronously, and acknowledges
// coalesced silent edits with a single notification. The acknowledgment
// fires only after the flush succeeds.
func (s *EditSession) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}

	if err := s.commit(ctx, "close"); err != nil {
		return err
	}
	if s.silentPending {
		s.svc.notifier.Notify(ctx, notify.Notification{Message: "Changes saved", Severity: notify.Success})
		s.silentPending = false
	}
	return nil
}

// commit writes the working copy through the store. Callers hold the lock.
func (s *EditSession) commit(ctx context.Context, trigger string) error {
	if !s.dirty {
		return nil
	}
	start := time.Now()
	if err := s.svc.store.Update(ctx, s.working); err != nil {
		return err
	}
	metrics.RecordAutosaveLatency(float64(time.Since(start).Milliseconds()))
	metrics.RecordAutosaveFlush(trigger)
	s.dirty = false
	return nil
}
