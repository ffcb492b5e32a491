package ledger

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Ashwini-108/expense-tracker-aws/internal/entity/expense"
)

type fakeGateway struct {
	records    []expense.Expense
	failWrites bool
	writes     int
	logs       []string
}

func (f *fakeGateway) WriteSnapshot(_ context.Context, records []expense.Expense, _ string) bool {
	f.writes++
	if f.failWrites {
		return false
	}
	f.records = append([]expense.Expense(nil), records...)
	return true
}

func (f *fakeGateway) ReadSnapshot(_ context.Context, _ string) []expense.Expense {
	return append([]expense.Expense(nil), f.records...)
}

func (f *fakeGateway) AppendLog(_ context.Context, level, message string) {
	f.logs = append(f.logs, fmt.Sprintf("%s: %s", level, message))
}

func newTestLedger(gw *fakeGateway) *Ledger {
	return Load(context.Background(), gw, "default")
}

func Test_OnAdd_ShouldAppendRoundedRecord(t *testing.T) {
	gw := &fakeGateway{}
	l := newTestLedger(gw)

	ok := l.Add(context.Background(), "  Coffee  ", 4.567, "Food")

	assert.True(t, ok)
	assert.Equal(t, 1, l.Len())
	rec, found := l.Find(1)
	assert.True(t, found)
	assert.Equal(t, "Coffee", rec.Description)
	assert.Equal(t, 4.57, rec.Amount)
	assert.Equal(t, "Food", rec.Category)
	assert.Len(t, gw.records, 1)
}

func Test_OnAddWithoutCategory_ShouldDefaultToOther(t *testing.T) {
	gw := &fakeGateway{}
	l := newTestLedger(gw)

	assert.True(t, l.Add(context.Background(), "Mystery", 10, ""))

	rec, found := l.Find(1)
	assert.True(t, found)
	assert.Equal(t, expense.DefaultCategory, rec.Category)
}

func Test_OnAddInvalidInput_ShouldLeaveLedgerUnchanged(t *testing.T) {
	gw := &fakeGateway{}
	l := newTestLedger(gw)

	assert.False(t, l.Add(context.Background(), "Coffee", 0, "Food"))
	assert.False(t, l.Add(context.Background(), "Coffee", -2, "Food"))
	assert.False(t, l.Add(context.Background(), "   ", 5, "Food"))

	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 0, gw.writes)
}

func Test_OnFailedWrite_ShouldNotCommitAdd(t *testing.T) {
	gw := &fakeGateway{failWrites: true}
	l := newTestLedger(gw)

	assert.False(t, l.Add(context.Background(), "Coffee", 4.5, "Food"))

	assert.Equal(t, 0, l.Len())
	assert.Empty(t, gw.records)
	assert.Equal(t, 1, gw.writes)
}

func Test_OnDeleteExisting_ShouldRemoveExactlyOne(t *testing.T) {
	gw := &fakeGateway{}
	l := newTestLedger(gw)
	assert.True(t, l.Add(context.Background(), "Coffee", 4.5, "Food"))
	assert.True(t, l.Add(context.Background(), "Bus", 2.75, "Transport"))

	assert.True(t, l.Delete(context.Background(), 1))

	assert.Equal(t, 1, l.Len())
	_, found := l.Find(1)
	assert.False(t, found)
	rec, found := l.Find(2)
	assert.True(t, found)
	assert.Equal(t, "Bus", rec.Description)
}

func Test_OnDeleteUnknownID_ShouldReturnFalse(t *testing.T) {
	gw := &fakeGateway{}
	l := newTestLedger(gw)
	assert.True(t, l.Add(context.Background(), "Coffee", 4.5, "Food"))

	assert.False(t, l.Delete(context.Background(), 42))
	assert.Equal(t, 1, l.Len())
}

func Test_OnFailedWrite_ShouldNotCommitDelete(t *testing.T) {
	gw := &fakeGateway{}
	l := newTestLedger(gw)
	assert.True(t, l.Add(context.Background(), "Coffee", 4.5, "Food"))

	gw.failWrites = true
	assert.False(t, l.Delete(context.Background(), 1))

	assert.Equal(t, 1, l.Len())
	rec, found := l.Find(1)
	assert.True(t, found)
	assert.Equal(t, "Coffee", rec.Description)
}

func Test_OnAddAfterDelete_ShouldNotReuseID(t *testing.T) {
	gw := &fakeGateway{}
	l := newTestLedger(gw)
	assert.True(t, l.Add(context.Background(), "Coffee", 4.5, "Food"))
	assert.True(t, l.Add(context.Background(), "Bus", 2.75, "Transport"))

	assert.True(t, l.Delete(context.Background(), 1))
	assert.True(t, l.Add(context.Background(), "Lunch", 12, "Food"))

	rec, found := l.Find(3)
	assert.True(t, found)
	assert.Equal(t, "Lunch", rec.Description)
}

func Test_OnList_ShouldFilterCategoryCaseInsensitively(t *testing.T) {
	gw := &fakeGateway{}
	l := newTestLedger(gw)
	assert.True(t, l.Add(context.Background(), "Coffee", 4.5, "Food"))
	assert.True(t, l.Add(context.Background(), "Bus", 2.75, "Transport"))
	assert.True(t, l.Add(context.Background(), "Lunch", 12, "food"))

	filtered := l.List(context.Background(), "FOOD")
	assert.Len(t, filtered, 2)

	all := l.List(context.Background(), "")
	assert.Len(t, all, 3)
}

func Test_OnSummarize_ShouldGroupByCategory(t *testing.T) {
	gw := &fakeGateway{}
	l := newTestLedger(gw)
	assert.True(t, l.Add(context.Background(), "Lunch", 10.0, "Food"))
	assert.True(t, l.Add(context.Background(), "Bus", 15.0, "Transport"))
	assert.True(t, l.Add(context.Background(), "Snack", 8.0, "Food"))

	summary := l.Summarize(context.Background())

	assert.Equal(t, 3, summary.TotalExpenses)
	assert.Equal(t, 33.0, summary.TotalAmount)
	assert.Equal(t, expense.CategorySummary{Count: 2, Amount: 18.0}, summary.Categories["Food"])
	assert.Equal(t, expense.CategorySummary{Count: 1, Amount: 15.0}, summary.Categories["Transport"])
}

func Test_OnSummarizeEmptyLedger_ShouldReturnZeroSummary(t *testing.T) {
	gw := &fakeGateway{}
	l := newTestLedger(gw)

	summary := l.Summarize(context.Background())

	assert.Equal(t, 0, summary.TotalExpenses)
	assert.Equal(t, 0.0, summary.TotalAmount)
	assert.NotNil(t, summary.Categories)
	assert.Empty(t, summary.Categories)
	assert.Empty(t, summary.MostRecent)
}

func Test_OnSummarize_ShouldKeepAtMostFiveRecent(t *testing.T) {
	gw := &fakeGateway{}
	l := &Ledger{gw: gw, userID: "default"}
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		l.expenses = append(l.expenses, expense.Expense{
			ID:          int64(i + 1),
			Description: fmt.Sprintf("item %d", i+1),
			Amount:      1,
			Category:    "Misc",
			CreatedAt:   base.AddDate(0, 0, i),
		})
	}

	summary := l.Summarize(context.Background())

	assert.Len(t, summary.MostRecent, 5)
	assert.Equal(t, int64(7), summary.MostRecent[0].ID)
	assert.Equal(t, int64(3), summary.MostRecent[4].ID)
}
