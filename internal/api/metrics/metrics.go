// Package metrics defines and registers all custom Prometheus metrics for the
// realty marketplace API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "realty"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "account_inactive",
//     "role_deleted", "role_inactive", "rate_limited"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// AuthzDeniedTotal counts requests rejected by an authorization guard.
// Label:
//   - guard: "permission", "admin", "subadmin"
var AuthzDeniedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "authz_denied_total",
		Help:      "Total number of requests rejected by an authorization guard.",
	},
	[]string{"guard"},
)

// ── Role lifecycle metrics ────────────────────────────────────────────────────

// RoleMutationsTotal counts role lifecycle operations that completed.
// Label:
//   - op: "create", "update", "toggle", "delete"
var RoleMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_mutations_total",
		Help:      "Total number of completed role lifecycle operations.",
	},
	[]string{"op"},
)

// CascadeDeletedUsers counts user accounts removed by role-delete cascades.
var CascadeDeletedUsers = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cascade_deleted_users_total",
		Help:      "Total number of user accounts deleted by role-delete cascades.",
	},
)

// ── Audit metrics ─────────────────────────────────────────────────────────────

// AuditWrittenTotal counts audit entries persisted, by action.
var AuditWrittenTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_written_total",
		Help:      "Total number of audit entries written, by action.",
	},
	[]string{"action"},
)

// AuditDroppedTotal counts audit entries dropped because a worker queue was full.
var AuditDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_dropped_total",
		Help:      "Total number of audit entries dropped due to backpressure.",
	},
)
