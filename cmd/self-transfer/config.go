package main

import (
	"github.com/oasislabs/solana-self-transfer/config"
	"github.com/oasislabs/solana-self-transfer/log"
	"github.com/oasislabs/solana-self-transfer/metrics"
	"github.com/oasislabs/solana-self-transfer/sol"
	"github.com/oasislabs/solana-self-transfer/tx"
	"github.com/oasislabs/solana-self-transfer/wallet"
)

// Config is the general application's configuration
type Config struct {
	LogConfig      log.Config
	RPCConfig      sol.Config
	WalletConfig   wallet.Config
	TransferConfig tx.Config
	MetricsConfig  metrics.MetricsConfig
}

func (c *Config) Log(fields log.Fields) {
	c.LogConfig.Log(fields)
	c.RPCConfig.Log(fields)
	c.WalletConfig.Log(fields)
	c.TransferConfig.Log(fields)
	c.MetricsConfig.Log(fields)
}

func (c *Config) Binders() []config.Binder {
	return []config.Binder{
		&c.LogConfig,
		&c.RPCConfig,
		&c.WalletConfig,
		&c.TransferConfig,
		&c.MetricsConfig,
	}
}
