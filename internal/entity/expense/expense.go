package expense

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	DefaultCategory = "Other"

	// DateLayout is the human-readable form of the date field stored in
	// the snapshot alongside the machine timestamp.
	DateLayout = "2006-01-02 15:04:05"
)

var (
	ErrNonPositiveAmount = errors.New("amount must be greater than 0")
	ErrEmptyDescription  = errors.New("description cannot be empty")
)

// Expense is one spending record. The remote snapshot is the whole
// slice of these serialized as a JSON array, so every field must
// survive a round trip unchanged.
type Expense struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// Validate checks the user-supplied parts of a new expense.
func Validate(description string, amount float64) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	if strings.TrimSpace(description) == "" {
		return ErrEmptyDescription
	}
	return nil
}

type CategorySummary struct {
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

type Summary struct {
	TotalExpenses int
	TotalAmount   float64
	Categories    map[string]CategorySummary
	MostRecent    []Expense
}
