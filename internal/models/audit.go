package models

import "time"

// AuditLog is the persistence shape of one audit entry. OldData and
// NewData hold JSON snapshots and may be nil.
type AuditLog struct {
	EntryID   int64     `db:"entry_id"`
	UserID    string    `db:"user_id"`
	EventType string    `db:"event_type"`
	OldData   []byte    `db:"old_data"`
	NewData   []byte    `db:"new_data"`
	CreatedAt time.Time `db:"created_at"`
}
