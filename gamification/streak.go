package gamification

import (
	"fmt"
	"time"

	"github.com/finmentor/finmentor/models"
)

// XP awarded per qualifying saving day: a flat base plus a linear bonus that
// rewards sustained streaks more than isolated activity.
const (
	BaseActivityXP = 10
	StreakBonusXP  = 2
)

// RecordActivity registers one qualifying saving day for the user and returns
// the updated streak record plus the XP earned by this call. When day is
// omitted it defaults to today in the server's local timezone.
//
// A second call for the same calendar day is a no-op (zero XP). The streak
// only ever compares the event date against the single stored last-activity
// date, so backdated or out-of-order entries can advance or reset it
// incorrectly; that matches the product's documented behavior.
func (s *Service) RecordActivity(username string, day ...time.Time) (models.Streak, int, error) {
	eventDate := dateOnly(s.now())
	if len(day) > 0 {
		if day[0].IsZero() {
			return models.Streak{}, 0, fmt.Errorf("%w: zero event date", ErrInvalidInput)
		}
		eventDate = dateOnly(day[0])
	}

	rec, err := s.store.GetStreak(username)
	if err != nil {
		return models.Streak{}, 0, fmt.Errorf("load streak: %w", err)
	}

	if rec.LastActivityDate != nil && dateOnly(*rec.LastActivityDate).Equal(eventDate) {
		// Same-day re-entry: idempotent.
		return rec, 0, nil
	}

	switch {
	case rec.LastActivityDate == nil:
		rec.CurrentStreak = 1
	case daysBetween(*rec.LastActivityDate, eventDate) == 1:
		rec.CurrentStreak++
	default:
		// Gap of more than one day (or a backdated entry): streak restarts.
		rec.CurrentStreak = 1
	}

	if rec.CurrentStreak > rec.LongestStreak {
		rec.LongestStreak = rec.CurrentStreak
	}

	xpEarned := BaseActivityXP + StreakBonusXP*rec.CurrentStreak
	rec.TotalXP += xpEarned
	rec.LastActivityDate = &eventDate

	if err := s.store.UpsertStreak(&rec); err != nil {
		return models.Streak{}, 0, fmt.Errorf("save streak: %w", err)
	}
	return rec, xpEarned, nil
}

// AddXP grants bonus XP outside the streak flow (quiz rewards). Negative
// deltas are rejected so total XP stays monotonic; a zero delta is a no-op.
func (s *Service) AddXP(username string, delta int) (models.Streak, error) {
	if delta < 0 {
		return models.Streak{}, fmt.Errorf("%w: negative xp delta %d", ErrInvalidInput, delta)
	}

	rec, err := s.store.GetStreak(username)
	if err != nil {
		return models.Streak{}, fmt.Errorf("load streak: %w", err)
	}
	if delta == 0 {
		return rec, nil
	}

	rec.TotalXP += delta
	if err := s.store.UpsertStreak(&rec); err != nil {
		return models.Streak{}, fmt.Errorf("save streak: %w", err)
	}
	return rec, nil
}
