package log

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	cfgLoggingLevel  = "logging.level"
	cfgLoggingFormat = "logging.format"
)

// Config sets how the logger filters and renders entries
type Config struct {
	Level  string
	Format string
}

func (c *Config) Log(fields Fields) {
	fields.Add(cfgLoggingLevel, c.Level)
	fields.Add(cfgLoggingFormat, c.Format)
}

func (c *Config) Configure(v *viper.Viper) error {
	c.Level = v.GetString(cfgLoggingLevel)
	if len(c.Level) == 0 {
		c.Level = "info"
	}

	c.Format = v.GetString(cfgLoggingFormat)
	if len(c.Format) == 0 {
		c.Format = "text"
	}

	return nil
}

func (c *Config) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String(cfgLoggingLevel, "info",
		"sets the minimum logging level for the logger")
	cmd.PersistentFlags().String(cfgLoggingFormat, "text",
		"sets the output format of the logger, one of json or text")
	return nil
}
