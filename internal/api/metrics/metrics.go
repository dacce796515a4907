// Package metrics defines and registers all custom Prometheus metrics for
// the CRM API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register themselves with the default Prometheus registry at
// package init via promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crm"

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// EntityWritesTotal counts successful mutations per entity.
// Labels:
//   - entity: "user" or "customer"
//   - action: "create", "update", or "delete"
var EntityWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_writes_total",
		Help:      "Total number of successful create/update/delete operations, by entity.",
	},
	[]string{"entity", "action"},
)

// MigrationsAppliedTotal counts migration scripts applied during this
// process lifetime. Stays at zero when the schema is already current.
var MigrationsAppliedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "migrations_applied_total",
		Help:      "Total number of migration scripts applied at startup.",
	},
)
