package domain

import "time"

// AuditAction identifies the operation an audit entry records.
type AuditAction string

const (
	AuditLogin      AuditAction = "login"
	AuditRoleCreate AuditAction = "role.create"
	AuditRoleUpdate AuditAction = "role.update"
	AuditRoleToggle AuditAction = "role.toggle"
	AuditRoleDelete AuditAction = "role.delete"
)

// AuditEntry is an append-only record of a security-relevant operation.
// Entries are written asynchronously and best-effort; a write failure never
// fails the request that produced it.
type AuditEntry struct {
	ActorID   string      `json:"actor_id" bson:"actor_id"`
	Action    AuditAction `json:"action" bson:"action"`
	Target    string      `json:"target,omitempty" bson:"target,omitempty"`
	Detail    string      `json:"detail,omitempty" bson:"detail,omitempty"`
	Timestamp time.Time   `json:"timestamp" bson:"timestamp"`
}
