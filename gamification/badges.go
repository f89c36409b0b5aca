package gamification

import "fmt"

// BadgeStats is the fixed snapshot every badge condition is evaluated over.
type BadgeStats struct {
	BestStreak   int
	TotalSavings float64
	QuizCount    int
}

// BadgeDefinition is one entry of the static badge catalog. A nil Earned
// predicate marks a manual badge, awarded by a feature (the goal tracker)
// rather than by EvaluateBadges.
type BadgeDefinition struct {
	Name        string
	Description string
	Earned      func(BadgeStats) bool
}

// GoalAchieverBadge is awarded manually when a savings goal is reached.
const GoalAchieverBadge = "Goal Achiever"

func streakAtLeast(days int) func(BadgeStats) bool {
	return func(s BadgeStats) bool { return s.BestStreak >= days }
}

func savingsAtLeast(amount float64) func(BadgeStats) bool {
	return func(s BadgeStats) bool { return s.TotalSavings >= amount }
}

func quizzesAtLeast(count int) func(BadgeStats) bool {
	return func(s BadgeStats) bool { return s.QuizCount >= count }
}

// BadgeCatalog is the full set of achievable badges. Conditions are monotonic
// and independent, so evaluation order never changes the outcome.
var BadgeCatalog = []BadgeDefinition{
	{"First Save", "Logged your first saving", streakAtLeast(1)},
	{"3-Day Streak", "Saved for 3 days in a row", streakAtLeast(3)},
	{"7-Day Streak", "Saved for 7 days in a row", streakAtLeast(7)},
	{"14-Day Streak", "Saved for 14 days in a row", streakAtLeast(14)},
	{"30-Day Streak", "Saved for 30 days in a row", streakAtLeast(30)},
	{GoalAchieverBadge, "Reached a savings goal", nil},
	{"Quiz Starter", "Completed your first quiz", quizzesAtLeast(1)},
	{"Quiz Master", "Completed 5 quizzes", quizzesAtLeast(5)},
	{"₹1K Saved", "Total savings reached ₹1,000", savingsAtLeast(1000)},
	{"₹5K Saved", "Total savings reached ₹5,000", savingsAtLeast(5000)},
	{"₹10K Saved", "Total savings reached ₹10,000", savingsAtLeast(10000)},
	{"₹50K Saved", "Total savings reached ₹50,000", savingsAtLeast(50000)},
}

// badgeStats assembles the evaluation snapshot from storage.
func (s *Service) badgeStats(username string) (BadgeStats, error) {
	rec, err := s.store.GetStreak(username)
	if err != nil {
		return BadgeStats{}, fmt.Errorf("load streak: %w", err)
	}
	best := rec.CurrentStreak
	if rec.LongestStreak > best {
		best = rec.LongestStreak
	}

	savings, err := s.store.GetTotalSavings(username)
	if err != nil {
		return BadgeStats{}, fmt.Errorf("load savings: %w", err)
	}

	scores, err := s.store.GetQuizScores(username)
	if err != nil {
		return BadgeStats{}, fmt.Errorf("load quiz scores: %w", err)
	}

	return BadgeStats{BestStreak: best, TotalSavings: savings, QuizCount: len(scores)}, nil
}

// EvaluateBadges checks every unearned catalog badge against the user's
// current stats, awards those whose condition holds, and returns the names of
// badges earned by this call. Re-running with no new activity returns nil.
func (s *Service) EvaluateBadges(username string) ([]string, error) {
	stats, err := s.badgeStats(username)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.GetBadges(username)
	if err != nil {
		return nil, fmt.Errorf("load badges: %w", err)
	}
	earned := make(map[string]bool, len(existing))
	for _, b := range existing {
		earned[b.Name] = true
	}

	var newly []string
	now := s.now()
	for _, def := range BadgeCatalog {
		if def.Earned == nil || earned[def.Name] || !def.Earned(stats) {
			continue
		}
		inserted, err := s.store.AwardBadge(username, def.Name, now)
		if err != nil {
			return newly, fmt.Errorf("award badge %q: %w", def.Name, err)
		}
		// A concurrent evaluator may have inserted first; only the winner
		// reports the badge as new.
		if inserted {
			newly = append(newly, def.Name)
		}
	}
	return newly, nil
}

// AwardManual grants a manual-only badge such as Goal Achiever. Awarding an
// already-earned badge is a no-op; unknown names are rejected.
func (s *Service) AwardManual(username, name string) (bool, error) {
	known := false
	for _, def := range BadgeCatalog {
		if def.Name == name {
			known = true
			break
		}
	}
	if !known {
		return false, fmt.Errorf("%w: unknown badge %q", ErrInvalidInput, name)
	}
	return s.store.AwardBadge(username, name, s.now())
}
