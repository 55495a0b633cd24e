// Package metrics defines and registers all custom Prometheus metrics for
// the blog API. It is the single source of truth for metric names, labels,
// and help strings; metrics register with the default registry at import.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blog"

// PostsCreatedTotal counts successfully created posts.
var PostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of posts created.",
	},
)

// CommentsTotal counts comment mutations.
// Label:
//   - action: "added" or "deleted"
var CommentsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_total",
		Help:      "Total number of comment mutations, labelled by action.",
	},
	[]string{"action"},
)

// LoginAttemptsTotal counts login outcomes.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// UploadsTotal counts files persisted by the upload endpoint.
var UploadsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of files stored by the upload endpoint.",
	},
)

// ActivityQueueDepth tracks the number of activity events waiting in each
// dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index ("0", "1", ...)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity events pending per dispatcher worker.",
	},
	[]string{"worker_id"},
)

// ActivityErrorsTotal counts activity events that failed to persist.
var ActivityErrorsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_errors_total",
		Help:      "Total number of activity events that failed to persist.",
	},
)
