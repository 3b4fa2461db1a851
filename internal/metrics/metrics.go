package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	PasswordEvaluations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "password_evaluations_total",
			Help: "Number of password strength evaluations by resulting label and validity.",
		},
		[]string{"label", "valid"},
	)

	MediatorRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mediator_request_duration_seconds",
			Help:    "Duration of mediator requests by request type.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"request", "outcome"},
	)
)

var registerOnce sync.Once

// Init registers the collectors with the default registry. Safe to call
// more than once.
func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(PasswordEvaluations, MediatorRequestDuration)
	})
}

func RecordEvaluation(label string, valid bool) {
	PasswordEvaluations.WithLabelValues(label, strconv.FormatBool(valid)).Inc()
}
