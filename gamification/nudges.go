package gamification

import (
	"fmt"
	"time"

	"github.com/finmentor/finmentor/models"
)

// Nudge severities.
const (
	NudgeInfo    = "info"
	NudgeSuccess = "success"
	NudgeWarning = "warning"
)

// Nudge is a transient behavioral message. Nudges are recomputed on every
// dashboard read and never persisted.
type Nudge struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

var streakMilestones = []int{3, 7, 14, 30}

var savingsMilestones = []float64{500, 1000, 2000, 5000, 10000, 25000, 50000}

// spendingSpikeRatio: the trailing week must exceed the prior week by more
// than 30% before the spike warning fires.
const spendingSpikeRatio = 1.3

// GenerateNudges derives the user's contextual messages from streak state,
// recent spending, and savings totals. It only reads; a call may return zero
// to many nudges, in a fixed rule order.
func (s *Service) GenerateNudges(username string) ([]Nudge, error) {
	rec, err := s.store.GetStreak(username)
	if err != nil {
		return nil, fmt.Errorf("load streak: %w", err)
	}

	now := s.now()
	var nudges []Nudge

	// Streak at risk vs. lapsed. The day gap is either exactly one (yesterday)
	// or more, so the two rules are mutually exclusive.
	if rec.LastActivityDate != nil {
		switch gap := daysBetween(*rec.LastActivityDate, now); {
		case gap == 1 && rec.CurrentStreak >= 2:
			nudges = append(nudges, Nudge{NudgeWarning,
				fmt.Sprintf("🔥 Don't break your %d-day streak! Log your savings today.", rec.CurrentStreak)})
		case gap > 1:
			nudges = append(nudges, Nudge{NudgeInfo,
				"👋 Welcome back! Start a new saving streak today — every day counts!"})
		}
	}

	// One day short of the next streak milestone; only the first match fires.
	for _, m := range streakMilestones {
		if rec.CurrentStreak == m-1 {
			nudges = append(nudges, Nudge{NudgeSuccess,
				fmt.Sprintf("⚡ You're just 1 day away from a %d-day streak! Keep going!", m)})
			break
		}
	}

	// Milestone reached today.
	for _, m := range streakMilestones {
		if rec.CurrentStreak == m {
			nudges = append(nudges, Nudge{NudgeSuccess,
				fmt.Sprintf("🎉 Amazing! You've reached a %d-day saving streak!", m)})
			break
		}
	}

	txs, err := s.store.GetTransactions(username)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}

	if len(txs) > 0 {
		nudges = append(nudges, spendingNudges(txs, now)...)

		total, err := s.store.GetTotalSavings(username)
		if err != nil {
			return nil, fmt.Errorf("load savings: %w", err)
		}
		// Approaching a round savings figure; stop at the first milestone the
		// user is within 90% of but has not yet crossed.
		for _, m := range savingsMilestones {
			if total >= m*0.9 && total < m {
				nudges = append(nudges, Nudge{NudgeSuccess,
					fmt.Sprintf("🎯 You're almost at ₹%.0f! Just ₹%.0f more to go!", m, m-total)})
				break
			}
		}
	} else {
		nudges = append(nudges, Nudge{NudgeInfo,
			"🚀 Welcome to FinMentor! Start by logging your income in the Daily Tracker to begin your saving journey."})
	}

	return nudges, nil
}

// spendingNudges covers the history-based rules: the week-over-week spending
// spike and the overall saving-rate check.
func spendingNudges(txs []models.Transaction, now time.Time) []Nudge {
	var nudges []Nudge

	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	var recentExpenses, previousExpenses float64
	var income, expense float64
	for _, t := range txs {
		switch t.Type {
		case models.TypeIncome:
			income += t.Amount
		case models.TypeExpense:
			expense += t.Amount
			if !t.Date.Before(weekAgo) {
				recentExpenses += t.Amount
			} else if !t.Date.Before(twoWeeksAgo) {
				previousExpenses += t.Amount
			}
		}
	}

	if previousExpenses > 0 && recentExpenses > previousExpenses*spendingSpikeRatio {
		increase := (recentExpenses - previousExpenses) / previousExpenses * 100
		nudges = append(nudges, Nudge{NudgeWarning,
			fmt.Sprintf("📉 Your spending this week is up %.0f%% from last week. Consider reviewing your expenses.", increase)})
	}

	if income > 0 {
		savingRate := (income - expense) / income * 100
		if savingRate < 10 {
			nudges = append(nudges, Nudge{NudgeWarning,
				"💡 Your saving rate is below 10%. Try the 50-30-20 rule: 50% needs, 30% wants, 20% savings."})
		} else if savingRate >= 30 {
			nudges = append(nudges, Nudge{NudgeSuccess,
				fmt.Sprintf("🌟 Great job! You're saving %.0f%% of your income. Keep it up!", savingRate)})
		}
	}

	return nudges
}
