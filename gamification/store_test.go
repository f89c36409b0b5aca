package gamification

import (
	"testing"
	"time"

	"github.com/finmentor/finmentor/models"
)

// fakeStore is an in-memory Store for engine tests.
type fakeStore struct {
	streaks map[string]models.Streak
	badges  map[string][]models.Badge
	txs     map[string][]models.Transaction
	quizzes map[string][]models.QuizScore
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		streaks: map[string]models.Streak{},
		badges:  map[string][]models.Badge{},
		txs:     map[string][]models.Transaction{},
		quizzes: map[string][]models.QuizScore{},
	}
}

func (f *fakeStore) GetStreak(username string) (models.Streak, error) {
	if rec, ok := f.streaks[username]; ok {
		return rec, nil
	}
	return models.Streak{Username: username}, nil
}

func (f *fakeStore) UpsertStreak(rec *models.Streak) error {
	f.streaks[rec.Username] = *rec
	return nil
}

func (f *fakeStore) GetBadges(username string) ([]models.Badge, error) {
	return f.badges[username], nil
}

func (f *fakeStore) AwardBadge(username, name string, earned time.Time) (bool, error) {
	for _, b := range f.badges[username] {
		if b.Name == name {
			return false, nil
		}
	}
	f.badges[username] = append(f.badges[username], models.Badge{Username: username, Name: name, EarnedDate: earned})
	return true, nil
}

func (f *fakeStore) GetTransactions(username string) ([]models.Transaction, error) {
	return f.txs[username], nil
}

func (f *fakeStore) GetTotalSavings(username string) (float64, error) {
	var total float64
	for _, t := range f.txs[username] {
		if t.Type == models.TypeIncome {
			total += t.Amount
		} else {
			total -= t.Amount
		}
	}
	return total, nil
}

func (f *fakeStore) GetQuizScores(username string) ([]models.QuizScore, error) {
	return f.quizzes[username], nil
}

// newTestService returns a Service over a fresh fake store with the clock
// pinned to a fixed day.
func newTestService(t *testing.T) (*Service, *fakeStore) {
	t.Helper()
	store := newFakeStore()
	svc := NewWithStore(store)
	svc.now = func() time.Time { return time.Date(2026, time.March, 10, 15, 4, 5, 0, time.UTC) }
	return svc, store
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
