// Package metrics defines and registers all custom Prometheus metrics for
// the plants API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at import
// time via promauto; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "plants"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// TokensIssuedTotal counts minted credentials.
// Label:
//   - flow: "signup" or "login"
var TokensIssuedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of JWT credentials issued, by flow.",
	},
	[]string{"flow"},
)

// AuthFailuresTotal counts rejected requests at the auth gate.
// Label:
//   - reason: "missing_token", "invalid_token", "role_mismatch", "already_authenticated"
var AuthFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_failures_total",
		Help:      "Total number of requests rejected by authentication or role checks.",
	},
	[]string{"reason"},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrderDecisionsTotal counts order authorization decisions.
// Labels:
//   - role: the acting role ("admin", "employee", "client")
//   - decision: "allowed", "denied", "not_found"
var OrderDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "order_decisions_total",
		Help:      "Total number of order authorization decisions, by actor role and outcome.",
	},
	[]string{"role", "decision"},
)

// OrdersCreatedTotal counts newly placed orders.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created.",
	},
)
