// Package gamification derives streaks, XP, levels, badges, and behavioral
// nudges from a user's transaction history. It is the read/write core behind
// the daily tracker: every qualifying transaction feeds RecordActivity, and
// every dashboard read composes Summary and GenerateNudges.
package gamification

import (
	"time"

	"gorm.io/gorm"
)

// Service is the gamification engine. All operations take an explicit
// username; there is no ambient "current user" state.
type Service struct {
	store Store
	now   func() time.Time
}

// New creates a Service backed by the application database.
func New(db *gorm.DB) *Service {
	return &Service{store: &gormStore{db: db}, now: time.Now}
}

// NewWithStore creates a Service over a custom Store. Tests use it with an
// in-memory store and a fixed clock.
func NewWithStore(store Store) *Service {
	return &Service{store: store, now: time.Now}
}
