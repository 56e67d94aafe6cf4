package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "crewboard_http_requests_total", Help: "Total HTTP requests by method, path and status"},
		[]string{"method", "path", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "crewboard_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	ApplicationsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "crewboard_applications_submitted_total", Help: "Total job applications submitted"},
	)
	JobsModerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "crewboard_jobs_moderated_total", Help: "Total moderation decisions by outcome"},
		[]string{"outcome"},
	)
	MagicLinksIssued = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "crewboard_magic_links_issued_total", Help: "Total magic-link tokens issued"},
	)
)

func Register() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, ApplicationsSubmitted, JobsModerated, MagicLinksIssued)
}
