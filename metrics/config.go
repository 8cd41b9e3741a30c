package metrics

import (
	"github.com/oasislabs/solana-self-transfer/config"
	"github.com/oasislabs/solana-self-transfer/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	cfgMetricsMode         = "metrics.mode"
	cfgMetricsPushAddr     = "metrics.push.addr"
	cfgMetricsPushJobName  = "metrics.push.job_name"
	cfgMetricsTextfilePath = "metrics.textfile.path"

	metricsModeNone     = "none"
	metricsModePush     = "push"
	metricsModeTextfile = "textfile"

	defaultPushJobName = "self_transfer"
)

type MetricsConfig struct {
	Mode         string
	PushAddr     string
	PushJobName  string
	TextfilePath string
}

func (m *MetricsConfig) Log(fields log.Fields) {
	fields.Add(cfgMetricsMode, m.Mode)
	fields.Add(cfgMetricsPushAddr, m.PushAddr)
	fields.Add(cfgMetricsPushJobName, m.PushJobName)
	fields.Add(cfgMetricsTextfilePath, m.TextfilePath)
}

func (m *MetricsConfig) Configure(v *viper.Viper) error {
	m.Mode = v.GetString(cfgMetricsMode)
	m.PushAddr = v.GetString(cfgMetricsPushAddr)
	m.PushJobName = v.GetString(cfgMetricsPushJobName)
	m.TextfilePath = v.GetString(cfgMetricsTextfilePath)

	switch m.Mode {
	case metricsModeNone:
	case metricsModePush:
		if len(m.PushAddr) == 0 {
			return config.ErrKeyNotSet{Key: cfgMetricsPushAddr}
		}
	case metricsModeTextfile:
		if len(m.TextfilePath) == 0 {
			return config.ErrKeyNotSet{Key: cfgMetricsTextfilePath}
		}
	default:
		return config.ErrInvalidValue{
			Key:          cfgMetricsMode,
			InvalidValue: m.Mode,
			Values:       []string{metricsModeNone, metricsModePush, metricsModeTextfile},
		}
	}

	return nil
}

func (m *MetricsConfig) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String(cfgMetricsMode, metricsModeNone, "Prometheus metrics mode. Must be one of none, push, textfile.")
	cmd.PersistentFlags().String(cfgMetricsPushAddr, "", "Prometheus push gateway address")
	cmd.PersistentFlags().String(cfgMetricsPushJobName, defaultPushJobName, "Prometheus push job name")
	cmd.PersistentFlags().String(cfgMetricsTextfilePath, "", "file for the node exporter textfile collector")

	return nil
}
