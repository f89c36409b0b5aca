package gamification

import (
	"fmt"

	"github.com/finmentor/finmentor/models"
)

// SummaryView is the read-model the dashboard renders: streak, level, and
// earned badges in one shape.
type SummaryView struct {
	Streak          models.Streak  `json:"streak"`
	Level           LevelInfo      `json:"level"`
	Badges          []models.Badge `json:"badges"`
	BadgeCount      int            `json:"badge_count"`
	TotalBadgeCount int            `json:"total_badge_count"`
}

// Summary composes the user's gamification state. Read-only and safe to call
// repeatedly.
func (s *Service) Summary(username string) (SummaryView, error) {
	rec, err := s.store.GetStreak(username)
	if err != nil {
		return SummaryView{}, fmt.Errorf("load streak: %w", err)
	}

	badges, err := s.store.GetBadges(username)
	if err != nil {
		return SummaryView{}, fmt.Errorf("load badges: %w", err)
	}

	return SummaryView{
		Streak:          rec,
		Level:           ResolveLevel(rec.TotalXP),
		Badges:          badges,
		BadgeCount:      len(badges),
		TotalBadgeCount: len(BadgeCatalog),
	}, nil
}
