package ledger

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"

	"github.com/Ashwini-108/expense-tracker-aws/internal/entity/expense"
)

const maxRecent = 5

// Audit actions recorded against the remote log for each operation.
const (
	actionAdd     = "ADD_EXPENSE"
	actionDelete  = "DELETE_EXPENSE"
	actionView    = "VIEW_EXPENSES"
	actionSummary = "VIEW_SUMMARY"
)

type gateway interface {
	WriteSnapshot(ctx context.Context, records []expense.Expense, userID string) bool
	ReadSnapshot(ctx context.Context, userID string) []expense.Expense
	AppendLog(ctx context.Context, level, message string)
}

// Ledger holds one user's expenses in memory for the lifetime of a CLI
// invocation. Every mutation stages a full copy, persists it, and only
// then replaces the in-memory state, so the ledger never diverges from
// the last successfully written snapshot.
type Ledger struct {
	gw       gateway
	userID   string
	expenses []expense.Expense
}

// Load builds a ledger from the user's remote snapshot. A missing or
// unreadable snapshot starts the ledger empty.
func Load(ctx context.Context, gw gateway, userID string) *Ledger {
	return &Ledger{
		gw:       gw,
		userID:   userID,
		expenses: gw.ReadSnapshot(ctx, userID),
	}
}

// Add validates, persists and appends a new expense. Returns false on
// validation failure or when the snapshot write fails; the in-memory
// state is untouched in both cases.
func (l *Ledger) Add(ctx context.Context, description string, amount float64, category string) bool {
	span, ctx := opentracing.StartSpanFromContext(ctx, "ledger.add")
	defer span.Finish()

	if expense.Validate(description, amount) != nil {
		return false
	}

	category = strings.TrimSpace(category)
	if category == "" {
		category = expense.DefaultCategory
	}

	created := time.Now()
	rec := expense.Expense{
		ID:          l.nextID(),
		Description: strings.TrimSpace(description),
		Amount:      round2(amount),
		Category:    category,
		Date:        created.Format(expense.DateLayout),
		CreatedAt:   created,
	}

	staged := make([]expense.Expense, 0, len(l.expenses)+1)
	staged = append(staged, l.expenses...)
	staged = append(staged, rec)

	if !l.gw.WriteSnapshot(ctx, staged, l.userID) {
		return false
	}
	l.expenses = staged

	l.gw.AppendLog(ctx, actionAdd,
		fmt.Sprintf("Added expense: %s - $%.2f (%s)", rec.Description, rec.Amount, rec.Category))
	return true
}

// Delete removes the first expense with the given id, keeping the order
// of the rest. Returns false when no expense matches or the snapshot
// write fails.
func (l *Ledger) Delete(ctx context.Context, id int64) bool {
	span, ctx := opentracing.StartSpanFromContext(ctx, "ledger.delete")
	defer span.Finish()

	idx := -1
	for i, e := range l.expenses {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	removed := l.expenses[idx]

	staged := make([]expense.Expense, 0, len(l.expenses)-1)
	staged = append(staged, l.expenses[:idx]...)
	staged = append(staged, l.expenses[idx+1:]...)

	if !l.gw.WriteSnapshot(ctx, staged, l.userID) {
		return false
	}
	l.expenses = staged

	l.gw.AppendLog(ctx, actionDelete,
		fmt.Sprintf("Deleted expense ID %d: %s - $%.2f", id, removed.Description, removed.Amount))
	return true
}

// Find returns the expense with the given id, if any.
func (l *Ledger) Find(id int64) (expense.Expense, bool) {
	for _, e := range l.expenses {
		if e.ID == id {
			return e, true
		}
	}
	return expense.Expense{}, false
}

// List returns the expenses, filtered case-insensitively by category
// when one is given. Does not mutate state.
func (l *Ledger) List(ctx context.Context, category string) []expense.Expense {
	res := make([]expense.Expense, 0, len(l.expenses))
	for _, e := range l.expenses {
		if category == "" || strings.EqualFold(e.Category, category) {
			res = append(res, e)
		}
	}

	filter := category
	if filter == "" {
		filter = "None"
	}
	l.gw.AppendLog(ctx, actionView,
		fmt.Sprintf("Viewed expenses, filter: %s, count: %d", filter, len(res)))
	return res
}

// Len reports the number of expenses currently held.
func (l *Ledger) Len() int {
	return len(l.expenses)
}

// Summarize aggregates the in-memory expenses. An empty ledger yields a
// zero summary with an empty category map.
func (l *Ledger) Summarize(ctx context.Context) expense.Summary {
	summary := expense.Summary{
		Categories: make(map[string]expense.CategorySummary),
	}
	if len(l.expenses) == 0 {
		return summary
	}

	for _, e := range l.expenses {
		summary.TotalAmount += e.Amount
		cat := summary.Categories[e.Category]
		cat.Count++
		cat.Amount += e.Amount
		summary.Categories[e.Category] = cat
	}
	summary.TotalExpenses = len(l.expenses)
	summary.TotalAmount = round2(summary.TotalAmount)

	recent := make([]expense.Expense, len(l.expenses))
	copy(recent, l.expenses)
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > maxRecent {
		recent = recent[:maxRecent]
	}
	summary.MostRecent = recent

	l.gw.AppendLog(ctx, actionSummary, "Generated expense summary")
	return summary
}

// nextID is monotonic over the current snapshot: one past the highest
// id ever persisted, so deletes never cause reuse.
func (l *Ledger) nextID() int64 {
	var max int64
	for _, e := range l.expenses {
		if e.ID > max {
			max = e.ID
		}
	}
	return max + 1
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
