package gamification

import (
	"strings"
	"testing"
	"time"

	"github.com/finmentor/finmentor/models"
)

// Clock in tests is pinned to 2026-03-10.

func setStreak(store *fakeStore, current int, last time.Time) {
	d := last
	store.streaks["asha"] = models.Streak{Username: "asha", CurrentStreak: current, LongestStreak: current, LastActivityDate: &d}
}

// quiet history: 20% saving rate, no spike window activity, no milestone.
func quietHistory(store *fakeStore) {
	store.txs["asha"] = []models.Transaction{
		{Username: "asha", Amount: 1000, Type: models.TypeIncome, Category: "Salary", Date: day(2026, time.February, 1)},
		{Username: "asha", Amount: 800, Type: models.TypeExpense, Category: "Food", Date: day(2026, time.February, 2)},
	}
}

func TestNudgesWelcomeOnlyForEmptyHistory(t *testing.T) {
	svc, _ := newTestService(t)

	nudges, err := svc.GenerateNudges("asha")
	if err != nil {
		t.Fatalf("GenerateNudges: %v", err)
	}
	if len(nudges) != 1 {
		t.Fatalf("got %d nudges, want exactly 1 welcome: %v", len(nudges), nudges)
	}
	if nudges[0].Severity != NudgeInfo || !strings.Contains(nudges[0].Message, "Welcome to FinMentor") {
		t.Fatalf("unexpected welcome nudge: %+v", nudges[0])
	}
}

func TestNudgeStreakAtRisk(t *testing.T) {
	svc, store := newTestService(t)
	setStreak(store, 4, day(2026, time.March, 9)) // yesterday
	quietHistory(store)

	nudges, err := svc.GenerateNudges("asha")
	if err != nil {
		t.Fatalf("GenerateNudges: %v", err)
	}
	if len(nudges) != 1 {
		t.Fatalf("got %v, want one at-risk warning", nudges)
	}
	if nudges[0].Severity != NudgeWarning || !strings.Contains(nudges[0].Message, "4-day streak") {
		t.Fatalf("unexpected nudge: %+v", nudges[0])
	}
}

func TestNudgeStreakLapsed(t *testing.T) {
	svc, store := newTestService(t)
	setStreak(store, 4, day(2026, time.March, 5)) // five days ago
	quietHistory(store)

	nudges, err := svc.GenerateNudges("asha")
	if err != nil {
		t.Fatalf("GenerateNudges: %v", err)
	}
	if len(nudges) != 1 {
		t.Fatalf("got %v, want one re-engagement nudge", nudges)
	}
	if nudges[0].Severity != NudgeInfo || !strings.Contains(nudges[0].Message, "Welcome back") {
		t.Fatalf("unexpected nudge: %+v", nudges[0])
	}
}

func TestNudgeMilestoneApproaching(t *testing.T) {
	svc, store := newTestService(t)
	setStreak(store, 6, day(2026, time.March, 10)) // active today
	quietHistory(store)

	nudges, err := svc.GenerateNudges("asha")
	if err != nil {
		t.Fatalf("GenerateNudges: %v", err)
	}
	if len(nudges) != 1 {
		t.Fatalf("got %v, want one approaching nudge", nudges)
	}
	if nudges[0].Severity != NudgeSuccess || !strings.Contains(nudges[0].Message, "7-day streak") {
		t.Fatalf("unexpected nudge: %+v", nudges[0])
	}
}

func TestNudgeMilestoneReached(t *testing.T) {
	svc, store := newTestService(t)
	setStreak(store, 7, day(2026, time.March, 10))
	quietHistory(store)

	nudges, err := svc.GenerateNudges("asha")
	if err != nil {
		t.Fatalf("GenerateNudges: %v", err)
	}
	if len(nudges) != 1 {
		t.Fatalf("got %v, want one celebration nudge", nudges)
	}
	if nudges[0].Severity != NudgeSuccess || !strings.Contains(nudges[0].Message, "7-day saving streak") {
		t.Fatalf("unexpected nudge: %+v", nudges[0])
	}
}

func TestNudgeSpendingSpike(t *testing.T) {
	svc, store := newTestService(t)

	// ₹5,000 spent last week, ₹9,500 this week: a 90% jump.
	store.txs["asha"] = []models.Transaction{
		{Username: "asha", Amount: 10000, Type: models.TypeIncome, Category: "Salary", Date: day(2026, time.February, 20)},
		{Username: "asha", Amount: 5000, Type: models.TypeExpense, Category: "Shopping", Date: day(2026, time.February, 28)},
		{Username: "asha", Amount: 9500, Type: models.TypeExpense, Category: "Shopping", Date: day(2026, time.March, 8)},
	}

	nudges, err := svc.GenerateNudges("asha")
	if err != nil {
		t.Fatalf("GenerateNudges: %v", err)
	}
	if len(nudges) != 2 {
		t.Fatalf("got %v, want spike warning then saving-rate warning", nudges)
	}
	if nudges[0].Severity != NudgeWarning || !strings.Contains(nudges[0].Message, "up 90%") {
		t.Fatalf("unexpected spike nudge: %+v", nudges[0])
	}
	// Expenses now exceed income, so the low-saving-rate rule fires too.
	if nudges[1].Severity != NudgeWarning || !strings.Contains(nudges[1].Message, "50-30-20") {
		t.Fatalf("unexpected saving-rate nudge: %+v", nudges[1])
	}
}

func TestNudgeSavingsMilestoneApproaching(t *testing.T) {
	svc, store := newTestService(t)

	// ₹920 saved: within 90% of the ₹1,000 milestone, ₹80 short.
	store.txs["asha"] = []models.Transaction{
		{Username: "asha", Amount: 920, Type: models.TypeIncome, Category: "Salary", Date: day(2026, time.February, 1)},
	}

	nudges, err := svc.GenerateNudges("asha")
	if err != nil {
		t.Fatalf("GenerateNudges: %v", err)
	}
	last := nudges[len(nudges)-1]
	if last.Severity != NudgeSuccess || !strings.Contains(last.Message, "₹1000") || !strings.Contains(last.Message, "₹80 more") {
		t.Fatalf("unexpected milestone nudge: %+v", last)
	}
	// All income and no spending also triggers the high-saving-rate praise.
	if len(nudges) != 2 || !strings.Contains(nudges[0].Message, "100%") {
		t.Fatalf("got %v, want saving-rate praise then milestone", nudges)
	}
}

func TestNudgeEmissionOrder(t *testing.T) {
	svc, store := newTestService(t)

	// At-risk streak one day short of 3, a spending spike, and a 70% saving
	// rate: four rules fire and their order is fixed.
	setStreak(store, 2, day(2026, time.March, 9))
	store.txs["asha"] = []models.Transaction{
		{Username: "asha", Amount: 1000, Type: models.TypeIncome, Category: "Salary", Date: day(2026, time.February, 1)},
		{Username: "asha", Amount: 100, Type: models.TypeExpense, Category: "Food", Date: day(2026, time.February, 28)},
		{Username: "asha", Amount: 200, Type: models.TypeExpense, Category: "Food", Date: day(2026, time.March, 8)},
	}

	nudges, err := svc.GenerateNudges("asha")
	if err != nil {
		t.Fatalf("GenerateNudges: %v", err)
	}
	if len(nudges) != 4 {
		t.Fatalf("got %d nudges: %v", len(nudges), nudges)
	}
	checks := []struct {
		severity string
		fragment string
	}{
		{NudgeWarning, "2-day streak"},
		{NudgeSuccess, "1 day away from a 3-day streak"},
		{NudgeWarning, "up 100%"},
		{NudgeSuccess, "saving 70%"},
	}
	for i, c := range checks {
		if nudges[i].Severity != c.severity || !strings.Contains(nudges[i].Message, c.fragment) {
			t.Errorf("nudge[%d]=%+v, want %s containing %q", i, nudges[i], c.severity, c.fragment)
		}
	}
}

func TestNudgesCanBeEmpty(t *testing.T) {
	svc, store := newTestService(t)
	setStreak(store, 1, day(2026, time.March, 10)) // active today, no milestone near
	quietHistory(store)

	nudges, err := svc.GenerateNudges("asha")
	if err != nil {
		t.Fatalf("GenerateNudges: %v", err)
	}
	if len(nudges) != 0 {
		t.Fatalf("got %v, want none", nudges)
	}
}
