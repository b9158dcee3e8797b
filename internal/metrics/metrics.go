package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landlord_http_requests_total",
			Help: "HTTP requests processed, by method, route and status.",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "landlord_http_request_duration_seconds",
			Help:    "HTTP request latency, by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	OrgOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landlord_org_operations_total",
			Help: "Successful organization operations, by operation.",
		},
		[]string{"operation"},
	)

	Logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "landlord_logins_total",
			Help: "Login attempts, by result.",
		},
		[]string{"result"},
	)

	PartitionMigrations = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "landlord_partition_migrations_total",
			Help: "Completed partition migrations.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDuration,
		OrgOperations,
		Logins,
		PartitionMigrations,
	)
}
