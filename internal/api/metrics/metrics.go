// Package metrics defines and registers all custom Prometheus metrics for
// the portfolio API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the registry is exposed on /metrics by the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portfolio"

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "invalid_credentials", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts created accounts.
// Label:
//   - kind: "bootstrap" for the one-time first admin, "user" otherwise
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created, by kind.",
	},
	[]string{"kind"},
)

// ApplicationsTotal counts career applications.
// Label:
//   - result: "ok", "upload_failed", "notify_failed"
var ApplicationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "applications_total",
		Help:      "Total number of career applications processed, by result.",
	},
	[]string{"result"},
)

// BlobUploadsTotal counts successful blob-store uploads.
// Label:
//   - prefix: storage prefix ("resumes", "projects")
var BlobUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "blob_uploads_total",
		Help:      "Total number of objects uploaded to the blob store, by prefix.",
	},
	[]string{"prefix"},
)

// MailTotal counts outbound notification attempts.
// Label:
//   - result: "ok" or "error"
var MailTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mail_total",
		Help:      "Total number of notification emails attempted, by result.",
	},
	[]string{"result"},
)
