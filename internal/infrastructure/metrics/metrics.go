package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bankloan_http_requests_total",
			Help: "HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "code"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bankloan_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: []float64{.005, .01, .05, .1, .25, .5, 1, 2, 5},
		},
		[]string{"method", "route"},
	)

	DocumentsUploaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bankloan_documents_uploaded_total",
			Help: "Verification documents stored, by document type",
		},
		[]string{"type"},
	)

	UsersVerified = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bankloan_users_verified_total",
			Help: "Users that reached the fully verified state",
		},
	)

	ContractsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bankloan_contracts_created_total",
			Help: "Contracts persisted",
		},
	)

	ContractIDCollisions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bankloan_contract_id_collisions_total",
			Help: "Generated contract ids that already existed",
		},
	)

	LoanStatusChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bankloan_loan_status_changes_total",
			Help: "Loan status updates by target status",
		},
		[]string{"status"},
	)

	OutboxRelayed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bankloan_outbox_relayed_total",
			Help: "Outbox events handled by the relay, by result",
		},
		[]string{"result"},
	)
)
