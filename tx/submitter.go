package tx

import (
	"context"
	stderr "errors"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/oasislabs/solana-self-transfer/errors"
	"github.com/oasislabs/solana-self-transfer/log"
	"github.com/oasislabs/solana-self-transfer/metrics"
	"github.com/oasislabs/solana-self-transfer/sol"
	"github.com/oasislabs/solana-self-transfer/wallet"
)

type SubmitterProps struct {
	Client     sol.Client
	Wallet     wallet.Wallet
	Logger     log.Logger
	Metrics    *metrics.RPCMetrics
	Commitment rpc.CommitmentType
}

// Submitter builds, signs and sends transactions paid and signed
// by a single wallet. Every step waits for the previous one and
// nothing is retried
type Submitter struct {
	client     sol.Client
	wallet     wallet.Wallet
	logger     log.Logger
	metrics    *metrics.RPCMetrics
	commitment rpc.CommitmentType
}

func NewSubmitter(props SubmitterProps) *Submitter {
	commitment := props.Commitment
	if len(commitment) == 0 {
		commitment = rpc.CommitmentConfirmed
	}

	return &Submitter{
		client:     props.Client,
		wallet:     props.Wallet,
		logger:     props.Logger.ForClass("tx", "Submitter"),
		metrics:    props.Metrics,
		commitment: commitment,
	}
}

// SubmitSelfTransfer sends lamports from the wallet to itself and
// returns the signature of the submitted transaction
func (s *Submitter) SubmitSelfTransfer(ctx context.Context, lamports uint64) (solana.Signature, errors.Err) {
	ix, err := NewSelfTransfer(s.wallet.PublicKey(), lamports)
	if err != nil {
		return solana.Signature{}, err
	}

	return s.Submit(ctx, ix)
}

// Submit fetches a fresh blockhash, compiles the instructions into a
// message paid by the wallet, signs it and sends it. Failures carry
// the error returned by the client as their cause
func (s *Submitter) Submit(ctx context.Context, instructions ...solana.Instruction) (solana.Signature, errors.Err) {
	sig, err := s.submit(ctx, instructions)
	if s.metrics != nil {
		s.metrics.Submitted(err)
	}
	if err != nil {
		s.logger.Debug(ctx, "failed to submit transaction", log.MapFields{
			"call_type": "SubmitFailure",
			"payer":     s.wallet.PublicKey().String(),
		}, err)
		return solana.Signature{}, err
	}

	return sig, nil
}

func (s *Submitter) submit(ctx context.Context, instructions []solana.Instruction) (solana.Signature, errors.Err) {
	payer := s.wallet.PublicKey()
	s.logger.Debug(ctx, "", log.MapFields{
		"call_type":    "SubmitAttempt",
		"payer":        payer.String(),
		"instructions": len(instructions),
	})

	if len(instructions) == 0 {
		return solana.Signature{}, errors.New(errors.ErrNoInstructions, nil)
	}

	blockhash, err := s.latestBlockhash(ctx)
	if err != nil {
		return solana.Signature{}, err
	}

	tx, err := Compile(payer, blockhash, instructions...)
	if err != nil {
		return solana.Signature{}, err
	}

	if err := s.wallet.SignTransaction(tx); err != nil {
		return solana.Signature{}, err
	}

	sig, serr := s.client.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		PreflightCommitment: s.commitment,
	})
	if serr != nil {
		return solana.Signature{}, errors.New(errors.ErrSendTransaction, serr)
	}

	s.logger.Info(ctx, "transaction sent", log.MapFields{
		"call_type": "SubmitSuccess",
		"payer":     payer.String(),
		"blockhash": blockhash.String(),
		"signature": sig.String(),
	})

	return sig, nil
}

func (s *Submitter) latestBlockhash(ctx context.Context) (solana.Hash, errors.Err) {
	res, err := s.client.GetLatestBlockhash(ctx, s.commitment)
	if err != nil {
		return solana.Hash{}, errors.New(errors.ErrFetchBlockhash, err)
	}

	if res == nil || res.Value == nil {
		return solana.Hash{}, errors.New(errors.ErrFetchBlockhash, stderr.New("empty getLatestBlockhash result"))
	}

	return res.Value.Blockhash, nil
}
