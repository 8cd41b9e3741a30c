package tx

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/oasislabs/solana-self-transfer/config"
	"github.com/oasislabs/solana-self-transfer/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	cfgTransferLamports   = "transfer.lamports"
	cfgTransferCommitment = "transfer.commitment"

	// DefaultLamports is 0.001 SOL
	DefaultLamports uint64 = solana.LAMPORTS_PER_SOL / 1000
)

// Config sets the amount to move and the commitment used both for
// the blockhash and for the preflight simulation
type Config struct {
	Lamports   uint64
	Commitment rpc.CommitmentType
}

func (c *Config) Log(fields log.Fields) {
	fields.Add(cfgTransferLamports, c.Lamports)
	fields.Add(cfgTransferCommitment, string(c.Commitment))
}

func (c *Config) Configure(v *viper.Viper) error {
	c.Lamports = v.GetUint64(cfgTransferLamports)
	if c.Lamports == 0 {
		return config.ErrInvalidValue{
			Key:          cfgTransferLamports,
			InvalidValue: v.GetString(cfgTransferLamports),
			Values:       []string{"any amount greater than 0"},
		}
	}

	c.Commitment = rpc.CommitmentType(v.GetString(cfgTransferCommitment))
	switch c.Commitment {
	case rpc.CommitmentProcessed, rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
	default:
		return config.ErrInvalidValue{
			Key:          cfgTransferCommitment,
			InvalidValue: string(c.Commitment),
			Values: []string{
				string(rpc.CommitmentProcessed),
				string(rpc.CommitmentConfirmed),
				string(rpc.CommitmentFinalized),
			},
		}
	}

	return nil
}

func (c *Config) Bind(v *viper.Viper, cmd *cobra.Command) error {
	cmd.PersistentFlags().Uint64(cfgTransferLamports, DefaultLamports,
		"amount in lamports the payer transfers to itself")
	cmd.PersistentFlags().String(cfgTransferCommitment, string(rpc.CommitmentConfirmed),
		"commitment for the blockhash and the preflight check")
	return nil
}
