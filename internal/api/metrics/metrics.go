// Package metrics defines and registers the custom Prometheus metrics for
// the backend. It is the single source of truth for metric names, labels,
// and help strings; registration happens at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "vittavardhan"

// SubmissionsReceivedTotal counts accepted public submissions.
// Label:
//   - kind: "contact" or "career"
var SubmissionsReceivedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submissions_received_total",
		Help:      "Total number of form submissions accepted and persisted.",
	},
	[]string{"kind"},
)

// NotificationsSentTotal counts notification emails delivered to the relay.
var NotificationsSentTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_sent_total",
		Help:      "Total number of notification emails handed to the SMTP relay.",
	},
)

// NotificationsFailedTotal counts notification emails that were lost.
// Label:
//   - reason: "send_error" (relay failure or timeout) or "queue_full" (dropped before delivery)
var NotificationsFailedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_failed_total",
		Help:      "Total number of notification emails dropped, by reason.",
	},
	[]string{"reason"},
)

// NotificationQueueDepth tracks messages waiting in the dispatcher buffer.
var NotificationQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of notification emails pending delivery.",
	},
)

// LoginAttemptsTotal counts login attempts on both flows.
// Labels:
//   - flow: "user" or "admin"
//   - outcome: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by flow and outcome.",
	},
	[]string{"flow", "outcome"},
)
