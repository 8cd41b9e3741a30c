package wallet

import (
	"github.com/oasislabs/solana-self-transfer/config"
	"github.com/oasislabs/solana-self-transfer/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	cfgWalletKeypairPath = "wallet.keypair_path"

	// DefaultKeypairPath is where the solana cli stores its default keypair
	DefaultKeypairPath = "~/.config/solana/id.json"
)

// Config holds the location of the keypair that signs
type Config struct {
	KeypairPath string
}

func (c *Config) Log(fields log.Fields) {
	// only the location, never the key itself
	fields.Add(cfgWalletKeypairPath, c.KeypairPath)
}

func (c *Config) Configure(v *viper.Viper) error {
	c.KeypairPath = v.GetString(cfgWalletKeypairPath)
	if len(c.KeypairPath) == 0 {
		return config.ErrKeyNotSet{Key: cfgWalletKeypairPath}
	}

	return nil
}

func (c *Config) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().String(cfgWalletKeypairPath, DefaultKeypairPath,
		"path to the solana-keygen keypair file of the payer")
	return nil
}
