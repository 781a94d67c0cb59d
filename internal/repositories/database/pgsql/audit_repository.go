package pgsql

import (
	"context"
	"fmt"

	"github.com/mwalto7/filevault/internal/core/domain"
	portsrepo "github.com/mwalto7/filevault/internal/core/ports/repositories"
	"github.com/mwalto7/filevault/internal/models"
)

type PgxAuditRepository struct {
	db PgxPool
}

func NewPgxAuditRepository(db PgxPool) portsrepo.AuditRepository {
	return &PgxAuditRepository{db: db}
}

// Ensure PgxAuditRepository implements portsrepo.AuditRepository
var _ portsrepo.AuditRepository = (*PgxAuditRepository)(nil)

func toModelAuditLog(d domain.AuditEntry) models.AuditLog {
	return models.AuditLog{
		UserID:    d.UserID,
		EventType: string(d.EventType),
		OldData:   d.OldData,
		NewData:   d.NewData,
		CreatedAt: d.CreatedAt,
	}
}

// Append inserts one audit row. There is no update or delete path: the log
// is append-only by construction.
func (r *PgxAuditRepository) Append(ctx context.Context, entry domain.AuditEntry) error {
	modelEntry := toModelAuditLog(entry)
	query := `
        INSERT INTO audit_logs (user_id, event_type, old_data, new_data, created_at)
        VALUES ($1, $2, $3, $4, $5);
    `
	_, err := r.db.Exec(ctx, query,
		modelEntry.UserID,
		modelEntry.EventType,
		modelEntry.OldData,
		modelEntry.NewData,
		modelEntry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}
