// Package metrics defines and registers all custom Prometheus metrics for
// the microblog platform services. It is the single source of truth for
// metric names, labels, and help strings.
//
// Metrics are registered with the default Prometheus registry via
// promauto at package init; the per-service routers expose them on
// GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "microblog"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successfully registered identities.
// Label:
//   - role: "user" or "admin"
var UsersRegisteredTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of identities registered, by role.",
	},
	[]string{"role"},
)

// TokensIssuedTotal counts access tokens minted by successful logins.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of access tokens issued.",
	},
)

// LoginFailuresTotal counts rejected logins.
// Label:
//   - reason: "user_not_found" or "bad_password"
var LoginFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_failures_total",
		Help:      "Total number of rejected login attempts, by reason.",
	},
	[]string{"reason"},
)

// ── Enrichment metrics ────────────────────────────────────────────────────────

// EnrichmentLookupsTotal counts best-effort cross-service lookups.
// Labels:
//   - relation: the relation being resolved ("user" or "post")
//   - result:   "hit" (resolved) or "miss" (absence marker substituted)
var EnrichmentLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "enrichment_lookups_total",
		Help:      "Total number of best-effort enrichment lookups, by relation and result.",
	},
	[]string{"relation", "result"},
)

// DependencyRejectionsTotal counts creations aborted because a required
// cross-service reference could not be confirmed.
// Label:
//   - record: the record type whose creation was rejected ("post" or "comment")
var DependencyRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dependency_rejections_total",
		Help:      "Total number of strict-policy creations rejected by a failed reference check.",
	},
	[]string{"record"},
)
