package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oasislabs/solana-self-transfer/config"
	"github.com/oasislabs/solana-self-transfer/errors"
	"github.com/oasislabs/solana-self-transfer/sol"
)

func main() {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "self-transfer",
		Short: "transfer lamports from the payer to itself",
		Long: "Builds a system transfer from the payer to itself, signs it with " +
			"the payer's keypair and submits it to the rpc endpoint. The " +
			"endpoint can be overridden with SOLANA_RPC_URL.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	parser, err := config.Generate(rootCmd, &cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to generate configuration parser ", err.Error())
		os.Exit(1)
	}

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := parser.Configure(); err != nil {
			return err
		}

		return run(context.Background(), RunProps{
			Config:        &cfg,
			ClientFactory: sol.NewClient,
			Stdout:        os.Stdout,
			Stderr:        os.Stderr,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", errors.Root(err))
		os.Exit(1)
	}
}
