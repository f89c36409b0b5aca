package gamification

import (
	"errors"
	"testing"
	"time"

	"github.com/finmentor/finmentor/models"
)

func TestEvaluateBadgesFirstSave(t *testing.T) {
	svc, _ := newTestService(t)

	if _, _, err := svc.RecordActivity("asha", day(2026, time.March, 1)); err != nil {
		t.Fatalf("RecordActivity: %v", err)
	}

	newly, err := svc.EvaluateBadges("asha")
	if err != nil {
		t.Fatalf("EvaluateBadges: %v", err)
	}
	if len(newly) != 1 || newly[0] != "First Save" {
		t.Fatalf("newly=%v, want [First Save]", newly)
	}
}

func TestEvaluateBadgesIsIdempotent(t *testing.T) {
	svc, _ := newTestService(t)

	if _, _, err := svc.RecordActivity("asha", day(2026, time.March, 1)); err != nil {
		t.Fatalf("RecordActivity: %v", err)
	}
	if _, err := svc.EvaluateBadges("asha"); err != nil {
		t.Fatalf("first evaluation: %v", err)
	}
	newly, err := svc.EvaluateBadges("asha")
	if err != nil {
		t.Fatalf("second evaluation: %v", err)
	}
	if len(newly) != 0 {
		t.Fatalf("second evaluation returned %v, want none", newly)
	}
}

func TestEvaluateBadgesAllNewConditionsTogether(t *testing.T) {
	svc, store := newTestService(t)

	// 7 straight days, ₹5,200 saved, one quiz: one call must return every
	// newly-true badge at once.
	for d := 1; d <= 7; d++ {
		if _, _, err := svc.RecordActivity("asha", day(2026, time.March, d)); err != nil {
			t.Fatalf("day %d: %v", d, err)
		}
	}
	store.txs["asha"] = []models.Transaction{
		{Username: "asha", Amount: 5200, Type: models.TypeIncome, Category: "Salary", Date: day(2026, time.February, 1)},
	}
	store.quizzes["asha"] = []models.QuizScore{
		{Username: "asha", Topic: "Budgeting Basics", Score: 4, Total: 5},
	}

	newly, err := svc.EvaluateBadges("asha")
	if err != nil {
		t.Fatalf("EvaluateBadges: %v", err)
	}

	want := map[string]bool{
		"First Save": true, "3-Day Streak": true, "7-Day Streak": true,
		"Quiz Starter": true, "₹1K Saved": true, "₹5K Saved": true,
	}
	got := map[string]bool{}
	for _, name := range newly {
		got[name] = true
	}
	for name := range want {
		if !got[name] {
			t.Errorf("missing badge %q in %v", name, newly)
		}
	}
	if got[GoalAchieverBadge] {
		t.Errorf("manual badge %q must never be auto-awarded", GoalAchieverBadge)
	}
	if got["14-Day Streak"] || got["₹10K Saved"] || got["Quiz Master"] {
		t.Errorf("unearned badge awarded: %v", newly)
	}
}

func TestBadgesUseBestStreakAfterReset(t *testing.T) {
	svc, _ := newTestService(t)

	// Earn a 3-day streak, break it, restart. The 3-Day badge still applies
	// because the longest streak is what counts.
	for d := 1; d <= 3; d++ {
		if _, _, err := svc.RecordActivity("asha", day(2026, time.March, d)); err != nil {
			t.Fatalf("day %d: %v", d, err)
		}
	}
	if _, _, err := svc.RecordActivity("asha", day(2026, time.March, 9)); err != nil {
		t.Fatalf("reset day: %v", err)
	}

	newly, err := svc.EvaluateBadges("asha")
	if err != nil {
		t.Fatalf("EvaluateBadges: %v", err)
	}
	found := false
	for _, name := range newly {
		if name == "3-Day Streak" {
			found = true
		}
	}
	if !found {
		t.Fatalf("3-Day Streak missing from %v despite longest streak of 3", newly)
	}
}

func TestBadgePermanence(t *testing.T) {
	svc, store := newTestService(t)

	for d := 1; d <= 7; d++ {
		if _, _, err := svc.RecordActivity("asha", day(2026, time.March, d)); err != nil {
			t.Fatalf("day %d: %v", d, err)
		}
	}
	if _, err := svc.EvaluateBadges("asha"); err != nil {
		t.Fatalf("EvaluateBadges: %v", err)
	}

	// Streak collapses later; the earned badge must survive every read.
	rec := store.streaks["asha"]
	rec.CurrentStreak = 0
	store.streaks["asha"] = rec

	for i := 0; i < 3; i++ {
		badges, err := store.GetBadges("asha")
		if err != nil {
			t.Fatalf("GetBadges: %v", err)
		}
		found := false
		for _, b := range badges {
			if b.Name == "7-Day Streak" {
				found = true
			}
		}
		if !found {
			t.Fatalf("7-Day Streak disappeared from badge list")
		}
	}
}

func TestAwardManual(t *testing.T) {
	svc, _ := newTestService(t)

	inserted, err := svc.AwardManual("asha", GoalAchieverBadge)
	if err != nil {
		t.Fatalf("AwardManual: %v", err)
	}
	if !inserted {
		t.Fatalf("first manual award reported not-new")
	}

	inserted, err = svc.AwardManual("asha", GoalAchieverBadge)
	if err != nil {
		t.Fatalf("second AwardManual: %v", err)
	}
	if inserted {
		t.Fatalf("second manual award must be a no-op")
	}

	if _, err := svc.AwardManual("asha", "No Such Badge"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("unknown badge err=%v, want ErrInvalidInput", err)
	}
}
