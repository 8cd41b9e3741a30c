package sol

import (
	"time"

	"github.com/oasislabs/solana-self-transfer/config"
	"github.com/oasislabs/solana-self-transfer/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	cfgRPCURL     = "rpc.url"
	cfgRPCCluster = "rpc.cluster"
	cfgRPCTimeout = "rpc.timeout"

	// EnvRPCURL overrides the endpoint of the cluster
	EnvRPCURL = "SOLANA_RPC_URL"
)

// Config is the configuration for the rpc endpoint
type Config struct {
	// URL for the rpc endpoint. When empty the public endpoint
	// of the Cluster is used
	URL string

	// Cluster the endpoint belongs to. Used to pick the default
	// endpoint and to build explorer links
	Cluster Cluster

	// Timeout bounds every rpc request. Zero means no timeout
	Timeout time.Duration
}

func (c *Config) Log(fields log.Fields) {
	fields.Add(cfgRPCURL, c.URL)
	fields.Add(cfgRPCCluster, string(c.Cluster))
	fields.Add(cfgRPCTimeout, c.Timeout)
}

func (c *Config) Configure(v *viper.Viper) error {
	c.Cluster = Cluster(v.GetString(cfgRPCCluster))
	if !c.Cluster.Valid() {
		return config.ErrInvalidValue{
			Key:          cfgRPCCluster,
			InvalidValue: string(c.Cluster),
			Values:       clusterNames(),
		}
	}

	c.URL = v.GetString(cfgRPCURL)
	if len(c.URL) == 0 {
		c.URL = c.Cluster.Endpoint()
	}

	c.Timeout = v.GetDuration(cfgRPCTimeout)
	return nil
}

func (c *Config) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String(cfgRPCURL, "",
		"url for the rpc endpoint, defaults to the public endpoint of the cluster")
	cmd.PersistentFlags().String(cfgRPCCluster, string(MainnetBeta),
		"cluster to use, one of mainnet-beta, devnet, testnet, localnet")
	cmd.PersistentFlags().Duration(cfgRPCTimeout, 0,
		"timeout for every rpc request, 0 disables it")

	return v.BindEnv(cfgRPCURL, EnvRPCURL)
}
