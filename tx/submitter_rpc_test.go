package tx

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oasislabs/solana-self-transfer/errors"
	"github.com/oasislabs/solana-self-transfer/metrics"
	"github.com/oasislabs/solana-self-transfer/sol"
	"github.com/oasislabs/solana-self-transfer/sol/soltest"
)

func newRPCSubmitter(t *testing.T, url string) *Submitter {
	client, err := sol.NewClient(ctx, &sol.Config{URL: url})
	require.NoError(t, err)

	return NewSubmitter(SubmitterProps{
		Client: sol.NewInstrumentedClient(sol.InstrumentedClientProps{
			Client:  client,
			Metrics: metrics.NewRPCMetrics(),
			Logger:  logger,
		}),
		Wallet: newWallet(t),
		Logger: logger,
	})
}

func TestSubmitSelfTransferOverRPC(t *testing.T) {
	server := soltest.NewServer()
	defer server.Close()
	s := newRPCSubmitter(t, server.URL)

	sig, err := s.SubmitSelfTransfer(ctx, DefaultLamports)

	require.Nil(t, err)
	assert.Equal(t, []string{"getLatestBlockhash", "sendTransaction"}, server.Methods())

	txs := server.Transactions()
	require.Len(t, txs, 1)
	assert.Equal(t, txs[0].Signatures[0], sig)
	assert.NoError(t, txs[0].VerifySignatures())
	assert.Equal(t, solana.MessageVersionV0, txs[0].Message.GetVersion())
	assert.Equal(t, server.Blockhash, txs[0].Message.RecentBlockhash)
	assert.Equal(t, s.wallet.PublicKey(), txs[0].Message.AccountKeys[0])
	assert.Equal(t, sig, solana.MustSignatureFromBase58(sig.String()))
}

func TestSubmitSelfTransferUnreachable(t *testing.T) {
	server := soltest.NewServer()
	url := server.URL
	server.Close()
	s := newRPCSubmitter(t, url)

	sig, err := s.SubmitSelfTransfer(ctx, DefaultLamports)

	require.NotNil(t, err)
	assert.Equal(t, solana.Signature{}, sig)
	assert.Equal(t, errors.ErrFetchBlockhash, err.(errors.Error).ErrorCode)
}

func TestSubmitSelfTransferRejected(t *testing.T) {
	server := soltest.NewServer()
	defer server.Close()
	server.SendError = &soltest.RPCError{
		Code:    -32002,
		Message: "Transaction simulation failed: Attempt to debit an account but found no record of a prior credit.",
	}
	s := newRPCSubmitter(t, server.URL)

	sig, err := s.SubmitSelfTransfer(ctx, DefaultLamports)

	require.NotNil(t, err)
	assert.Equal(t, solana.Signature{}, sig)
	assert.Equal(t, errors.ErrSendTransaction, err.(errors.Error).ErrorCode)
	assert.Contains(t, errors.Root(err).Error(), "found no record of a prior credit")
}
