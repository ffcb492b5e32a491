package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pkg/errors"

	"github.com/Ashwini-108/expense-tracker-aws/internal/clients/s3store"
	"github.com/Ashwini-108/expense-tracker-aws/internal/entity/expense"
	"github.com/Ashwini-108/expense-tracker-aws/internal/logger"
)

const keyTemplate = "expenses/%s/expenses.json"

// Audit levels written to the remote log stream.
const (
	LevelInfo     = "INFO"
	LevelError    = "ERROR"
	LevelUpload   = "UPLOAD"
	LevelDownload = "DOWNLOAD"
)

type snapshotStore interface {
	PutObject(ctx context.Context, key string, body []byte) error
	GetObject(ctx context.Context, key string) ([]byte, error)
	Ping(ctx context.Context) error
}

type auditLog interface {
	EnsureGroup(ctx context.Context) error
	PutEvent(ctx context.Context, message string) error
	Ping(ctx context.Context) error
}

// Gateway translates ledger operations into remote storage and audit
// log calls. Remote failures never escape as errors: writes and reads
// degrade to a boolean / empty result after logging.
type Gateway struct {
	store snapshotStore
	audit auditLog
}

func New(ctx context.Context, store snapshotStore, audit auditLog) (*Gateway, error) {
	if err := audit.EnsureGroup(ctx); err != nil {
		return nil, errors.Wrap(err, "ensure log group")
	}
	return &Gateway{store: store, audit: audit}, nil
}

// WriteSnapshot overwrites the user's snapshot object with the full
// record list. Returns false on any failure, after an audit entry.
func (g *Gateway) WriteSnapshot(ctx context.Context, records []expense.Expense, userID string) bool {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		g.AppendLog(ctx, LevelError, fmt.Sprintf("Failed to serialize expenses: %v", err))
		return false
	}

	start := time.Now()
	err = g.store.PutObject(ctx, snapshotKey(userID), data)
	observePersist(time.Since(start), err != nil)

	if err != nil {
		logger.Error("snapshot write failed", zap.String("userID", userID), zap.Error(err))
		g.AppendLog(ctx, LevelError, fmt.Sprintf("Failed to upload to S3: %v", err))
		return false
	}
	g.AppendLog(ctx, LevelUpload, fmt.Sprintf("Uploaded expenses for user %s to S3", userID))
	return true
}

// ReadSnapshot fetches and parses the user's snapshot. A missing object
// and any other failure both yield an empty list; only the audit entry
// differs.
func (g *Gateway) ReadSnapshot(ctx context.Context, userID string) []expense.Expense {
	data, err := g.store.GetObject(ctx, snapshotKey(userID))
	if errors.Is(err, s3store.ErrNotFound) {
		g.AppendLog(ctx, LevelInfo, fmt.Sprintf("No expenses file found for user %s, returning empty list", userID))
		return []expense.Expense{}
	}
	if err != nil {
		logger.Error("snapshot read failed", zap.String("userID", userID), zap.Error(err))
		g.AppendLog(ctx, LevelError, fmt.Sprintf("Failed to download from S3: %v", err))
		return []expense.Expense{}
	}

	var records []expense.Expense
	if err = json.Unmarshal(data, &records); err != nil {
		logger.Error("snapshot parse failed", zap.String("userID", userID), zap.Error(err))
		g.AppendLog(ctx, LevelError, fmt.Sprintf("Failed to download from S3: %v", err))
		return []expense.Expense{}
	}

	g.AppendLog(ctx, LevelDownload, fmt.Sprintf("Downloaded expenses for user %s from S3", userID))
	return records
}

// AppendLog writes one best-effort audit entry. Failures are swallowed
// and surface only through the process log and the failure counter.
func (g *Gateway) AppendLog(ctx context.Context, level, message string) {
	body := fmt.Sprintf("[%s] %s - %s", level, time.Now().Format(time.RFC3339), message)
	if err := g.audit.PutEvent(ctx, body); err != nil {
		observeAuditFailure()
		logger.Error("audit log append failed", zap.Error(err))
	}
}

type Status struct {
	StoreOK bool
	LogOK   bool
	Errors  []string
}

// CheckConnectivity probes both remote services independently.
func (g *Gateway) CheckConnectivity(ctx context.Context) Status {
	var status Status

	if err := g.store.Ping(ctx); err != nil {
		status.Errors = append(status.Errors, fmt.Sprintf("S3 Error: %v", err))
	} else {
		status.StoreOK = true
	}

	if err := g.audit.Ping(ctx); err != nil {
		status.Errors = append(status.Errors, fmt.Sprintf("CloudWatch Error: %v", err))
	} else {
		status.LogOK = true
	}

	return status
}

func snapshotKey(userID string) string {
	return fmt.Sprintf(keyTemplate, userID)
}
