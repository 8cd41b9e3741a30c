package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// Labels to use for rpc requests.
	rpcLabels = []string{"method", "status"}

	// Labels to use for rpc latencies.
	rpcLatencyLabels = []string{"method"}

	// Labels to use for submissions.
	submissionLabels = []string{"status"}
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// RPCMetrics instruments the calls made to the rpc endpoint
// and the outcome of every submitted transaction
type RPCMetrics struct {
	Registry *prometheus.Registry

	// Counts of rpc requests.
	Requests *prometheus.CounterVec

	// Latencies of rpc requests.
	Latencies *prometheus.HistogramVec

	// Counts of submitted transactions.
	Submissions *prometheus.CounterVec
}

// NewRPCMetrics creates the metrics and registers them in a
// registry owned by the returned value
func NewRPCMetrics() *RPCMetrics {
	metrics := &RPCMetrics{
		Registry: prometheus.NewRegistry(),
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "self_transfer_rpc_requests_total",
				Help: "How many rpc requests are made, partitioned by method and status",
			},
			rpcLabels,
		),
		Latencies: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "self_transfer_rpc_latency_seconds",
				Help:    "How long rpc requests take, partitioned by method",
				Buckets: prometheus.DefBuckets,
			},
			rpcLatencyLabels,
		),
		Submissions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "self_transfer_submissions_total",
				Help: "How many transactions are submitted, partitioned by status",
			},
			submissionLabels,
		),
	}

	metrics.Registry.MustRegister(metrics.Requests, metrics.Latencies, metrics.Submissions)
	return metrics
}

// Observe records the outcome of a call to method
func (m *RPCMetrics) Observe(method string, timer *prometheus.Timer, err error) {
	timer.ObserveDuration()
	m.Requests.WithLabelValues(method, status(err)).Inc()
}

// Timer creates a new latency timer for the provided method.
func (m *RPCMetrics) Timer(method string) *prometheus.Timer {
	return prometheus.NewTimer(m.Latencies.WithLabelValues(method))
}

// Submitted records the outcome of a transaction submission
func (m *RPCMetrics) Submitted(err error) {
	m.Submissions.WithLabelValues(status(err)).Inc()
}

func status(err error) string {
	if err != nil {
		return StatusError
	}
	return StatusOK
}
