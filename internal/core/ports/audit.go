package ports

import (
	"context"

	"github.com/realtyhub/marketplace-api/internal/core/domain"
)

// AuditRepository persists audit entries.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}

// AuditRecorder is the write side handed to services; the queue dispatcher
// implements it so audit writes never block a request.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}
