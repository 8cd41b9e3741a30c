package main

import (
	"context"
	"fmt"
	"io"

	"github.com/oasislabs/solana-self-transfer/errors"
	"github.com/oasislabs/solana-self-transfer/log"
	"github.com/oasislabs/solana-self-transfer/metrics"
	"github.com/oasislabs/solana-self-transfer/sol"
	"github.com/oasislabs/solana-self-transfer/tx"
	"github.com/oasislabs/solana-self-transfer/wallet"
)

type RunProps struct {
	Config        *Config
	ClientFactory sol.ClientFactory
	Stdout        io.Writer
	Stderr        io.Writer
}

// run loads the payer, submits one self transfer and prints the
// explorer link of the submitted transaction
func run(ctx context.Context, props RunProps) error {
	ctx = log.PutRunID(ctx)
	cfg := props.Config
	logger := log.New(&cfg.LogConfig, props.Stderr)
	logger.Debug(ctx, "configuration parsed", cfg)

	w, werr := wallet.LoadFromFile(cfg.WalletConfig.KeypairPath)
	if werr != nil {
		logger.Error(ctx, "failed to load payer", werr)
		return werr
	}

	fmt.Fprintf(props.Stdout, "Payer address: %s\n\n", w.PublicKey())

	rpcMetrics := metrics.NewRPCMetrics()
	exporter, err := metrics.New(&cfg.MetricsConfig, rpcMetrics.Registry, logger)
	if err != nil {
		return err
	}
	defer func() { _ = exporter.Export(ctx) }()

	client, err := props.ClientFactory.New(ctx, &cfg.RPCConfig)
	if err != nil {
		if _, ok := err.(errors.Error); !ok {
			err = errors.New(errors.ErrDialRPC, err)
		}
		logger.Error(ctx, "failed to create rpc client", log.MapFields{"err": err.Error()})
		return err
	}

	submitter := tx.NewSubmitter(tx.SubmitterProps{
		Client: sol.NewInstrumentedClient(sol.InstrumentedClientProps{
			Client:  client,
			Metrics: rpcMetrics,
			Logger:  logger,
			Timeout: cfg.RPCConfig.Timeout,
		}),
		Wallet:     w,
		Logger:     logger,
		Metrics:    rpcMetrics,
		Commitment: cfg.TransferConfig.Commitment,
	})

	sig, serr := submitter.SubmitSelfTransfer(ctx, cfg.TransferConfig.Lamports)
	if serr != nil {
		logger.Error(ctx, "failed to submit self transfer", serr)
		return serr
	}

	fmt.Fprintln(props.Stdout, "Transaction completed")
	fmt.Fprintln(props.Stdout, sol.ExplorerLink(sol.LinkTransaction, sig.String(), cfg.RPCConfig.Cluster))
	return nil
}
