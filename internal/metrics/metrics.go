package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smartplate_requests_created_total",
		Help: "Total number of food requests successfully created.",
	})

	TransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smartplate_transitions_total",
		Help: "Total number of accepted lifecycle transitions, by resulting status.",
	},
		[]string{"status"},
	)

	RejectionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smartplate_rejections_total",
		Help: "Total number of lifecycle operations rejected, by action and reason.",
	},
		[]string{"action", "reason"},
	)

	ConcurrentUpdatesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smartplate_concurrent_updates_total",
		Help: "Total number of compare-and-set writes that lost a race and were retried.",
	})

	AssignmentsDeferredTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "smartplate_assignments_deferred_total",
		Help: "Total number of assignments deferred because no volunteer could be reserved.",
	})

	AssignmentRetriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smartplate_assignment_retries_total",
		Help: "Total number of deferred assignment retries, by outcome.",
	},
		[]string{"outcome"},
	)

	VerificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smartplate_verifications_total",
		Help: "Total number of account verification decisions.",
	},
		[]string{"decision"},
	)

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smartplate_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	RequestCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "smartplate_request_cache_items",
		Help: "Current number of items in the request cache.",
	})

	OutboxPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smartplate_outbox_published_total",
		Help: "Total number of outbox tasks processed, by result.",
	},
		[]string{"result"},
	)

	RelayMessagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smartplate_relay_messages_total",
		Help: "Total number of broker messages handled by event consumers, by consumer and result.",
	},
		[]string{"consumer", "result"},
	)

	EmailsSentTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smartplate_emails_sent_total",
		Help: "Total number of account emails handed to the mail provider, by kind and result.",
	},
		[]string{"kind", "result"},
	)

	NotificationsDeliveredTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smartplate_notifications_delivered_total",
		Help: "Total number of events written to websocket sessions, by event type.",
	},
		[]string{"type"},
	)

	NotificationsDroppedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "smartplate_notifications_dropped_total",
		Help: "Total number of events not written to a session, by reason.",
	},
		[]string{"reason"},
	)

	WebsocketClients = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "smartplate_websocket_clients",
		Help: "Current number of connected websocket sessions.",
	})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "smartplate_http_request_duration_seconds",
		Help:    "HTTP request latency, by route and status code.",
		Buckets: prometheus.DefBuckets,
	},
		[]string{"route", "code"},
	)
)
