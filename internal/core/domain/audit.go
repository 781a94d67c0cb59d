package domain

import "time"

// AuditEvent identifies the kind of action recorded in the audit log.
type AuditEvent string

const (
	AuditUserCreate   AuditEvent = "user_create"
	AuditUserSignin   AuditEvent = "user_signin"
	AuditTokenRefresh AuditEvent = "token_refresh"
	AuditUserLogout   AuditEvent = "user_logout"
	AuditFileUpload   AuditEvent = "file_upload"
	AuditFileUpdate   AuditEvent = "file_update"
	AuditFileDelete   AuditEvent = "file_delete"
	AuditFileDownload AuditEvent = "file_download"
)

// AuditEntry is one append-only record of a user action. OldData and
// NewData are JSON snapshots of the state before and after the action;
// either may be nil.
type AuditEntry struct {
	EntryID   int64      `json:"-"`
	UserID    string     `json:"user_id"`
	EventType AuditEvent `json:"event_type"`
	OldData   []byte     `json:"old_data,omitempty"`
	NewData   []byte     `json:"new_data,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
