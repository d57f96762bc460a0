// Package domain defines the core data types of the application: the enriched
// video record served by search, and the feedback entity persisted with GORM.
package domain

import (
	"time"

	"gorm.io/gorm"
)

// Video is one enriched record of the loaded dataset. Records are created in
// bulk at load time, enriched once by the classifier rules, and never mutated
// afterwards; a reload replaces the whole collection atomically.
//
// Fields:
//   - ID: stable positive integer assigned by ingestion order (1-based).
//   - Duration: display string ("H:MM:SS" or "M:SS"); DurationSeconds is the
//     derived numeric form used for comparisons.
//   - Views/Likes/Subscribers: display strings as found in the source; use
//     search.ParseCount wherever a magnitude is needed.
//   - Keywords: insertion order is relevance order (most salient first),
//     capped at 5 when derived automatically from the title.
//   - Category/AgeGroup/Difficulty: labels from the closed rule-derived
//     vocabularies in the search package.
//   - EmotionLabel: optional, supplied by the external classifier; absent
//     when that collaborator is unavailable. Absence is never an error.
type Video struct {
	ID              int      `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Channel         string   `json:"channel"`
	ChannelURL      string   `json:"channelUrl"`
	URL             string   `json:"url"`
	Thumbnail       string   `json:"thumbnail"`
	Duration        string   `json:"duration"`
	DurationSeconds int      `json:"durationSeconds"`
	Views           string   `json:"views"`
	Likes           string   `json:"likes"`
	Subscribers     string   `json:"subscribers"`
	Date            string   `json:"date"`
	Keywords        []string `json:"keywords"`
	Category        string   `json:"category"`
	AgeGroup        string   `json:"ageGroup"`
	Difficulty      string   `json:"difficulty"`
	EmotionLabel    string   `json:"emotionLabel,omitempty"`

	// Extra preserves unrecognized source columns verbatim. The core never
	// interprets them.
	Extra map[string]string `json:"-"`
}

// Feedback is a user-provided rating (+1/-1) on a video from the loaded
// dataset. A user can leave at most one rating per video (unique index).
//
// The dataset itself is in-memory only; feedback is the one thing worth
// keeping across restarts, so it lives in SQLite.
type Feedback struct {
	ID        string         `json:"id"       gorm:"type:char(36);primaryKey"`
	VideoID   int            `json:"video_id" gorm:"not null;index;uniqueIndex:ux_feedback_video_user"`
	UserID    string         `json:"user_id"  gorm:"type:varchar(64);not null;index;uniqueIndex:ux_feedback_video_user"`
	Value     int            `json:"value"    gorm:"not null;check:value IN (-1,1)"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"        gorm:"index"`
}

// TableName returns the database table name for Feedback.
func (Feedback) TableName() string { return "feedback" }
