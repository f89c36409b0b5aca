package models

import "time"

// Transaction types as stored in the transactions table.
const (
	TypeIncome  = "Income"
	TypeExpense = "Expense"
)

// Categories accepted by the daily tracker.
var TransactionCategories = []string{
	"Food", "Travel", "Shopping", "Bills", "Investment", "Salary", "Freelance", "Other",
}

// Transaction is a single dated income or expense entry, keyed by username.
type Transaction struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:64;index;not null" json:"username"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Type      string    `gorm:"size:16;not null" json:"type"`
	Category  string    `gorm:"size:32;not null" json:"category"`
	Date      time.Time `gorm:"index;not null" json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// IsSavingActivity reports whether the entry counts toward the saving streak:
// any income, or an expense categorized as Investment.
func (t Transaction) IsSavingActivity() bool {
	return t.Type == TypeIncome || (t.Type == TypeExpense && t.Category == "Investment")
}
