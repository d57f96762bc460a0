// Package services – FeedbackService
//
// This file implements the FeedbackService, which governs how users rate
// videos (-1 or +1). It enforces business rules (video existence in the
// current snapshot, value range, uniqueness) and persists feedback in the
// database. Service-level errors (ErrInvalidFeedback, ErrVideoNotFound,
// ErrDuplicateFeedback) are returned for predictable cases so handlers can
// map them to HTTP results consistently.
package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/sunidhi090894/kidsvids-backend/internal/ingest"
	"github.com/sunidhi090894/kidsvids-backend/internal/repo"
)

// FeedbackService implements the use-cases around video feedback. It is
// context-aware and safe for concurrent use.
type FeedbackService struct {
	// DB is the database handle used for all feedback operations.
	DB *gorm.DB
	// Store supplies the current snapshot for existence checks. Feedback on
	// IDs outside the loaded dataset is rejected rather than stored blind.
	Store *ingest.Store
}

// Leave records a feedback value for videoID on behalf of userID.
//
// Semantics and validation:
//   - value must be exactly -1 or 1; otherwise ErrInvalidFeedback.
//   - videoID must exist in the current snapshot; otherwise ErrVideoNotFound
//     (ErrNoDataset before the first load).
//   - A user may rate a video at most once; a second attempt yields
//     ErrDuplicateFeedback, enforced by the unique index.
func (s *FeedbackService) Leave(ctx context.Context, userID string, videoID, value int) error {
	if value != -1 && value != 1 {
		return ErrInvalidFeedback
	}

	snap := s.Store.Current()
	if snap == nil {
		return ErrNoDataset
	}
	if videoID < 1 || videoID > len(snap.Videos) {
		return ErrVideoNotFound
	}

	if err := repo.CreateFeedback(ctx, s.DB, videoID, userID, value); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicate(err) {
			return ErrDuplicateFeedback
		}
		return err
	}
	return nil
}

// Totals aggregates the recorded feedback for videoID: the signed sum of all
// values and the number of submissions. A video nobody rated yields (0, 0).
func (s *FeedbackService) Totals(ctx context.Context, videoID int) (int64, int64, error) {
	return repo.FeedbackTotals(ctx, s.DB, videoID)
}

// isDuplicate detects unique-constraint violations across drivers that may
// not map to gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	// SQLite typically: "UNIQUE constraint failed"
	// Postgres typically: "duplicate key value violates unique constraint"
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
