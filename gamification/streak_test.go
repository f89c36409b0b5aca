package gamification

import (
	"errors"
	"testing"
	"time"
)

func TestFirstActivityStartsStreak(t *testing.T) {
	svc, _ := newTestService(t)

	rec, xp, err := svc.RecordActivity("asha", day(2026, time.March, 1))
	if err != nil {
		t.Fatalf("RecordActivity: %v", err)
	}
	if rec.CurrentStreak != 1 || rec.LongestStreak != 1 {
		t.Fatalf("streak=%d longest=%d, want 1/1", rec.CurrentStreak, rec.LongestStreak)
	}
	if want := BaseActivityXP + StreakBonusXP; xp != want {
		t.Fatalf("xp=%d, want %d", xp, want)
	}
	if rec.LastActivityDate == nil || !rec.LastActivityDate.Equal(day(2026, time.March, 1)) {
		t.Fatalf("last activity date not recorded: %v", rec.LastActivityDate)
	}
}

func TestSameDayReentryIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)

	first, _, err := svc.RecordActivity("asha", day(2026, time.March, 1))
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, xp, err := svc.RecordActivity("asha", day(2026, time.March, 1))
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if xp != 0 {
		t.Fatalf("second same-day call earned xp=%d, want 0", xp)
	}
	if second.TotalXP != first.TotalXP || second.CurrentStreak != first.CurrentStreak {
		t.Fatalf("state changed on same-day re-entry: %+v vs %+v", second, first)
	}
}

func TestConsecutiveDayExtendsStreak(t *testing.T) {
	svc, _ := newTestService(t)

	if _, _, err := svc.RecordActivity("asha", day(2026, time.March, 1)); err != nil {
		t.Fatalf("day 1: %v", err)
	}
	rec, xp, err := svc.RecordActivity("asha", day(2026, time.March, 2))
	if err != nil {
		t.Fatalf("day 2: %v", err)
	}
	if rec.CurrentStreak != 2 {
		t.Fatalf("streak=%d, want 2", rec.CurrentStreak)
	}
	if xp != 14 {
		t.Fatalf("day-2 xp=%d, want 14", xp)
	}
	if rec.TotalXP != 12+14 {
		t.Fatalf("total xp=%d, want 26", rec.TotalXP)
	}
}

func TestGapResetsStreak(t *testing.T) {
	svc, _ := newTestService(t)

	for d := 1; d <= 3; d++ {
		if _, _, err := svc.RecordActivity("asha", day(2026, time.March, d)); err != nil {
			t.Fatalf("day %d: %v", d, err)
		}
	}
	rec, _, err := svc.RecordActivity("asha", day(2026, time.March, 8))
	if err != nil {
		t.Fatalf("after gap: %v", err)
	}
	if rec.CurrentStreak != 1 {
		t.Fatalf("streak=%d after 5-day gap, want 1", rec.CurrentStreak)
	}
	if rec.LongestStreak != 3 {
		t.Fatalf("longest=%d, want 3 preserved", rec.LongestStreak)
	}
}

func TestLongestStreakNeverDecreases(t *testing.T) {
	svc, _ := newTestService(t)

	days := []time.Time{
		day(2026, time.January, 1),
		day(2026, time.January, 2),
		day(2026, time.January, 3),
		day(2026, time.January, 10),
		day(2026, time.January, 11),
	}
	prevLongest := 0
	for _, d := range days {
		rec, _, err := svc.RecordActivity("asha", d)
		if err != nil {
			t.Fatalf("record %v: %v", d, err)
		}
		if rec.LongestStreak < prevLongest {
			t.Fatalf("longest decreased from %d to %d", prevLongest, rec.LongestStreak)
		}
		if rec.LongestStreak < rec.CurrentStreak {
			t.Fatalf("longest %d < current %d", rec.LongestStreak, rec.CurrentStreak)
		}
		prevLongest = rec.LongestStreak
	}
}

func TestRecordActivityDefaultsToToday(t *testing.T) {
	svc, store := newTestService(t)

	if _, _, err := svc.RecordActivity("asha"); err != nil {
		t.Fatalf("RecordActivity: %v", err)
	}
	rec := store.streaks["asha"]
	if rec.LastActivityDate == nil || !rec.LastActivityDate.Equal(day(2026, time.March, 10)) {
		t.Fatalf("last activity date=%v, want clock date", rec.LastActivityDate)
	}
}

func TestAddXP(t *testing.T) {
	svc, _ := newTestService(t)

	rec, err := svc.AddXP("asha", 25)
	if err != nil {
		t.Fatalf("AddXP: %v", err)
	}
	if rec.TotalXP != 25 {
		t.Fatalf("total xp=%d, want 25", rec.TotalXP)
	}

	if _, err := svc.AddXP("asha", -5); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("negative delta err=%v, want ErrInvalidInput", err)
	}
	rec, err = svc.AddXP("asha", 0)
	if err != nil {
		t.Fatalf("zero delta: %v", err)
	}
	if rec.TotalXP != 25 {
		t.Fatalf("total xp=%d after rejected/zero deltas, want 25", rec.TotalXP)
	}
}
