package tx

import (
	"testing"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oasislabs/solana-self-transfer/config"
)

func configureTransfer(t *testing.T, values map[string]interface{}) (Config, error) {
	v := viper.New()
	cmd := &cobra.Command{}
	c := Config{}
	require.NoError(t, c.Bind(v, cmd))
	require.NoError(t, v.BindPFlags(cmd.PersistentFlags()))
	for key, value := range values {
		v.Set(key, value)
	}
	return c, c.Configure(v)
}

func TestConfigureTransferDefaults(t *testing.T) {
	c, err := configureTransfer(t, nil)

	assert.NoError(t, err)
	assert.Equal(t, Config{Lamports: 1000000, Commitment: rpc.CommitmentConfirmed}, c)
}

func TestConfigureTransferZeroLamports(t *testing.T) {
	_, err := configureTransfer(t, map[string]interface{}{cfgTransferLamports: 0})
	assert.IsType(t, config.ErrInvalidValue{}, err)
}

func TestConfigureTransferInvalidCommitment(t *testing.T) {
	_, err := configureTransfer(t, map[string]interface{}{cfgTransferCommitment: "recent"})
	assert.IsType(t, config.ErrInvalidValue{}, err)
}

func TestConfigureTransferFinalized(t *testing.T) {
	c, err := configureTransfer(t, map[string]interface{}{cfgTransferCommitment: "finalized"})

	assert.NoError(t, err)
	assert.Equal(t, rpc.CommitmentFinalized, c.Commitment)
}
