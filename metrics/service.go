package metrics

import (
	"context"
	"fmt"

	"github.com/oasislabs/solana-self-transfer/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Exporter publishes the metrics gathered during one run. The program
// exits right after submitting, so the metrics are flushed once
// rather than served
type Exporter interface {
	Export(ctx context.Context) error
}

// New creates the exporter for the configured mode
func New(config *MetricsConfig, gatherer prometheus.Gatherer, logger log.Logger) (Exporter, error) {
	switch config.Mode {
	case metricsModeNone, "":
		return stubExporter{}, nil
	case metricsModePush:
		return &pushExporter{
			pusher: push.New(config.PushAddr, config.PushJobName).Gatherer(gatherer),
			logger: logger.ForClass("metrics", "pushExporter"),
		}, nil
	case metricsModeTextfile:
		return &textfileExporter{
			path:     config.TextfilePath,
			gatherer: gatherer,
			logger:   logger.ForClass("metrics", "textfileExporter"),
		}, nil
	default:
		return nil, fmt.Errorf("metrics: unsupported mode: '%v'", config.Mode)
	}
}

type stubExporter struct{}

func (stubExporter) Export(context.Context) error { return nil }

// A push exporter pushes the metrics to a Prometheus push gateway.
type pushExporter struct {
	pusher *push.Pusher
	logger log.Logger
}

func (e *pushExporter) Export(ctx context.Context) error {
	if err := e.pusher.PushContext(ctx); err != nil {
		e.logger.Warn(ctx, "failed to push metrics", log.MapFields{
			"call_type": "PushMetricsFailure",
			"err":       err.Error(),
		})
		return err
	}

	e.logger.Debug(ctx, "", log.MapFields{"call_type": "PushMetricsSuccess"})
	return nil
}

// A textfile exporter writes the metrics in the format expected
// by the node exporter textfile collector.
type textfileExporter struct {
	path     string
	gatherer prometheus.Gatherer
	logger   log.Logger
}

func (e *textfileExporter) Export(ctx context.Context) error {
	if err := prometheus.WriteToTextfile(e.path, e.gatherer); err != nil {
		e.logger.Warn(ctx, "failed to write metrics", log.MapFields{
			"call_type": "WriteMetricsFailure",
			"path":      e.path,
			"err":       err.Error(),
		})
		return err
	}

	e.logger.Debug(ctx, "", log.MapFields{
		"call_type": "WriteMetricsSuccess",
		"path":      e.path,
	})
	return nil
}
