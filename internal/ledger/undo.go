// Package ledger handles expenses that arrive from other features of
// the household app, e.g. the shopping list converting a purchased item
// into an expense.
//
// Every ingested expense can be undone for a short window. There is
// only a single pending-undo slot: a second ingestion before the window
// closes replaces the slot and the earlier expense becomes permanent
// without further notice.
package ledger

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/household-ledger/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DefaultUndoWindow is how long an ingested expense stays undoable.
const DefaultUndoWindow = 8 * time.Second

var ErrUndoExpired = errors.New("this expense can not be undone anymore")

// PendingUndo is the expense that can currently be undone.
type PendingUndo struct {
	Expense   models.Expense `json:"expense"`   // The undoable expense
	ExpiresAt time.Time      `json:"expiresAt"` // When the undo window closes
}

// Service ingests external expenses and tracks the undo window.
type Service struct {
	db     *gorm.DB
	window time.Duration

	mu      sync.Mutex
	pending *PendingUndo
	timer   *time.Timer
}

// NewService returns a Service persisting to db. A window of 0 uses
// DefaultUndoWindow.
func NewService(db *gorm.DB, window time.Duration) *Service {
	if window == 0 {
		window = DefaultUndoWindow
	}

	return &Service{
		db:     db,
		window: window,
	}
}

// Ingest appends an externally-sourced expense and arms the undo slot
// for it, replacing any pending undo for an earlier expense.
func (s *Service) Ingest(expense models.Expense) (models.Expense, error) {
	expense.External = true

	err := s.db.Create(&expense).Error
	if err != nil {
		return models.Expense{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}

	id := expense.ID
	s.pending = &PendingUndo{
		Expense:   expense,
		ExpiresAt: time.Now().Add(s.window),
	}
	s.timer = time.AfterFunc(s.window, func() {
		s.expire(id)
	})

	log.Debug().Str("expense-id", id.String()).Msg("external expense ingested")

	return expense, nil
}

// Pending returns the currently undoable expense, if any.
func (s *Service) Pending() (PendingUndo, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return PendingUndo{}, false
	}

	return *s.pending, true
}

// Undo removes the expense from the ledger if its undo window is still
// open. The check is against the slot state, not the wall clock: once
// the expiry timer has fired, the expense is permanent even if the
// request raced the timer.
func (s *Service) Undo(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil || s.pending.Expense.ID != id {
		return ErrUndoExpired
	}

	err := s.db.Unscoped().Delete(&models.Expense{}, id).Error
	if err != nil {
		return err
	}

	s.clearLocked()

	return nil
}

// Close stops the expiry timer.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

func (s *Service) expire(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// The slot may already belong to a newer expense
	if s.pending == nil || s.pending.Expense.ID != id {
		return
	}

	s.clearLocked()
}

func (s *Service) clearLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.pending = nil
}
