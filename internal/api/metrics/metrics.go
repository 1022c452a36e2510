// Package metrics defines and registers all custom Prometheus metrics for the
// Maan-Homes accounts API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Collectors register themselves with the default Prometheus registry via
// promauto at package load; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "accounts"

// RegistrationsTotal counts successfully created accounts.
// Label:
//   - actor: "user" or "admin"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created, by actor kind.",
	},
	[]string{"actor"},
)

// LoginsTotal counts login attempts.
// Labels:
//   - actor: "user" or "admin"
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by actor kind and result.",
	},
	[]string{"actor", "result"},
)

// PasswordResetsTotal counts password-reset lifecycle events.
// Label:
//   - stage: "requested", "throttled", "completed" or "rejected"
var PasswordResetsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_resets_total",
		Help:      "Total number of password-reset events, by lifecycle stage.",
	},
	[]string{"stage"},
)

// EmailsTotal counts outbound notification emails.
// Labels:
//   - template: the email template name (e.g. "welcome")
//   - result: "sent" or "failed"
var EmailsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "emails_total",
		Help:      "Total number of notification emails dispatched, by template and result.",
	},
	[]string{"template", "result"},
)

// MailQueueDepth tracks the number of messages waiting in each dispatcher
// worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var MailQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "mail_queue_depth",
		Help:      "Current number of emails pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
