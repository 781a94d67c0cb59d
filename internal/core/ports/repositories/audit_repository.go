package repositories

import (
	"context"

	"github.com/mwalto7/filevault/internal/core/domain"
)

// AuditRepository defines the append-only persistence operation for audit
// entries. Entries are never updated or deleted.
type AuditRepository interface {
	Append(ctx context.Context, entry domain.AuditEntry) error
}
