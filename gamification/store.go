package gamification

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/finmentor/finmentor/models"
)

// Store is the persistence boundary the engine computes over. Implementations
// must make UpsertStreak a single atomic write and AwardBadge an atomic
// insert-if-absent so concurrent callers cannot lose XP or duplicate badges.
type Store interface {
	// GetStreak returns the user's streak record, zero-valued if absent.
	GetStreak(username string) (models.Streak, error)
	UpsertStreak(rec *models.Streak) error
	GetBadges(username string) ([]models.Badge, error)
	// AwardBadge inserts the badge if absent and reports whether it was new.
	AwardBadge(username, name string, earned time.Time) (bool, error)
	// GetTransactions returns the user's full history, newest first.
	GetTransactions(username string) ([]models.Transaction, error)
	// GetTotalSavings returns lifetime income minus lifetime expense.
	GetTotalSavings(username string) (float64, error)
	GetQuizScores(username string) ([]models.QuizScore, error)
}

// gormStore backs Store with the application's MySQL database.
type gormStore struct {
	db *gorm.DB
}

func (s *gormStore) GetStreak(username string) (models.Streak, error) {
	var rec models.Streak
	err := s.db.Where("username = ?", username).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Streak{Username: username}, nil
	}
	if err != nil {
		return models.Streak{}, err
	}
	return rec, nil
}

func (s *gormStore) UpsertStreak(rec *models.Streak) error {
	return s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"current_streak", "longest_streak", "last_activity_date", "total_xp", "updated_at",
		}),
	}).Create(rec).Error
}

func (s *gormStore) GetBadges(username string) ([]models.Badge, error) {
	var badges []models.Badge
	err := s.db.Where("username = ?", username).Order("earned_date ASC").Find(&badges).Error
	return badges, err
}

func (s *gormStore) AwardBadge(username, name string, earned time.Time) (bool, error) {
	badge := models.Badge{Username: username, Name: name, EarnedDate: earned}
	res := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&badge)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *gormStore) GetTransactions(username string) ([]models.Transaction, error) {
	var txs []models.Transaction
	err := s.db.Where("username = ?", username).Order("date DESC").Find(&txs).Error
	return txs, err
}

func (s *gormStore) GetTotalSavings(username string) (float64, error) {
	var total float64
	err := s.db.Model(&models.Transaction{}).
		Where("username = ?", username).
		Select("COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE -amount END), 0)", models.TypeIncome).
		Scan(&total).Error
	return total, err
}

func (s *gormStore) GetQuizScores(username string) ([]models.QuizScore, error) {
	var scores []models.QuizScore
	err := s.db.Where("username = ?", username).Order("created_at DESC").Find(&scores).Error
	return scores, err
}
