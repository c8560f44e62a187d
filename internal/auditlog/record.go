package auditlog

import "time"

const (
	ActionSave   = "save"
	ActionDelete = "delete"
)

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// AuditEntry is one recorded change to a tenant's stored theme.
type AuditEntry struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Command   string    `json:"command,omitempty"`
	Action    string    `json:"action"`
	Tenant    string    `json:"tenant"`
	Before    string    `json:"before,omitempty"`
	After     string    `json:"after,omitempty"`
	Outcome   string    `json:"outcome"`
	Detail    string    `json:"detail,omitempty"`
}
