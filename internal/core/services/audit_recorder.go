package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/mwalto7/filevault/internal/core/domain"
	portsrepo "github.com/mwalto7/filevault/internal/core/ports/repositories"
	"github.com/mwalto7/filevault/internal/middleware"
)

// AuditRecorder writes audit entries as a best-effort side channel. A
// failed write is logged for operators and discarded; it never propagates
// into the triggering operation's control flow.
type AuditRecorder struct {
	auditRepo portsrepo.AuditRepository
}

// NewAuditRecorder creates a new AuditRecorder.
func NewAuditRecorder(auditRepo portsrepo.AuditRepository) *AuditRecorder {
	return &AuditRecorder{auditRepo: auditRepo}
}

// Record appends one audit entry. oldData and newData are serialized as
// JSON snapshots; either may be nil.
func (a *AuditRecorder) Record(ctx context.Context, userID string, event domain.AuditEvent, oldData, newData any) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry := domain.AuditEntry{
		UserID:    userID,
		EventType: event,
		CreatedAt: time.Now(),
	}

	var err error
	if oldData != nil {
		if entry.OldData, err = json.Marshal(oldData); err != nil {
			logger.Error("Failed to marshal audit snapshot", slog.String("event", string(event)), slog.String("error", err.Error()))
			entry.OldData = nil
		}
	}
	if newData != nil {
		if entry.NewData, err = json.Marshal(newData); err != nil {
			logger.Error("Failed to marshal audit snapshot", slog.String("event", string(event)), slog.String("error", err.Error()))
			entry.NewData = nil
		}
	}

	if err := a.auditRepo.Append(ctx, entry); err != nil {
		logger.Error("Failed to append audit entry",
			slog.String("event", string(event)),
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}
}
