// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Feedback
// model.
//
// The repository follows a "thin" approach: it performs persistence and
// simple query composition, leaving business rules to the services package.
//
// Error semantics:
//   - Duplicate feedback (same video_id,user_id) relies on the database
//     unique constraint and is returned as a raw DB error. The service layer
//     translates that into ErrDuplicateFeedback.
//   - On other DB errors (connectivity, constraints, etc.), the raw gorm
//     error is propagated.
package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sunidhi090894/kidsvids-backend/internal/domain"
)

// CreateFeedback inserts a feedback row for the given video and user.
//
// The combination (video_id, user_id) must be unique, enforced by the
// database schema. Value must be -1 or 1; validation is enforced at the
// service layer and via DB constraints.
func CreateFeedback(ctx context.Context, db *gorm.DB, videoID int, userID string, value int) error {
	fb := &domain.Feedback{
		ID:        uuid.NewString(),
		VideoID:   videoID,
		UserID:    userID,
		Value:     value,
		CreatedAt: time.Now().UTC(),
	}
	return db.WithContext(ctx).Create(fb).Error
}

// FeedbackTotals returns the sum and count of feedback values for a video.
// Both are zero when the video has no feedback yet.
func FeedbackTotals(ctx context.Context, db *gorm.DB, videoID int) (sum int64, count int64, err error) {
	type agg struct {
		Sum   int64
		Count int64
	}
	var a agg
	err = db.WithContext(ctx).
		Model(&domain.Feedback{}).
		Select("COALESCE(SUM(value),0) AS sum, COUNT(*) AS count").
		Where("video_id = ?", videoID).
		Scan(&a).Error
	return a.Sum, a.Count, err
}
