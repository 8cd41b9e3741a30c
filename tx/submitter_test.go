package tx

import (
	"context"
	stderr "errors"
	"io"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oasislabs/solana-self-transfer/errors"
	"github.com/oasislabs/solana-self-transfer/log"
	"github.com/oasislabs/solana-self-transfer/metrics"
	"github.com/oasislabs/solana-self-transfer/sol"
	"github.com/oasislabs/solana-self-transfer/sol/soltest"
)

var (
	ctx    = context.Background()
	logger = log.NewLogrus(log.LogrusLoggerProperties{
		Level:  logrus.DebugLevel,
		Output: io.Discard,
	})
)

func newSubmitter(client sol.Client, t *testing.T) (*Submitter, *metrics.RPCMetrics) {
	m := metrics.NewRPCMetrics()
	return NewSubmitter(SubmitterProps{
		Client:  client,
		Wallet:  newWallet(t),
		Logger:  logger,
		Metrics: m,
	}), m
}

func TestSubmitSelfTransferOK(t *testing.T) {
	var sent *solana.Transaction
	var opts rpc.TransactionOpts
	client := &soltest.MockClient{}
	soltest.ImplementMockWithOverwrite(client, soltest.MockMethods{
		"GetLatestBlockhash": {
			Arguments: []interface{}{mock.Anything, rpc.CommitmentConfirmed},
			Return:    soltest.DefaultMockMethods["GetLatestBlockhash"].Return,
		},
		"SendTransactionWithOpts": {
			Arguments: []interface{}{mock.Anything, mock.Anything, mock.Anything},
			Return:    []interface{}{solana.Signature{9}, nil},
			Run: func(args mock.Arguments) {
				sent = args.Get(1).(*solana.Transaction)
				opts = args.Get(2).(rpc.TransactionOpts)
			},
		},
	})
	s, m := newSubmitter(client, t)

	sig, err := s.SubmitSelfTransfer(ctx, DefaultLamports)

	require.Nil(t, err)
	assert.Equal(t, solana.Signature{9}, sig)
	require.NotNil(t, sent)
	assert.NoError(t, sent.VerifySignatures())
	assert.Equal(t, soltest.Blockhash, sent.Message.RecentBlockhash)
	assert.Equal(t, s.wallet.PublicKey(), sent.Message.AccountKeys[0])
	assert.Equal(t, rpc.CommitmentConfirmed, opts.PreflightCommitment)
	assert.False(t, opts.SkipPreflight)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Submissions.WithLabelValues(metrics.StatusOK)))
}

func TestSubmitSelfTransferZeroAmount(t *testing.T) {
	client := &soltest.MockClient{}
	s, _ := newSubmitter(client, t)

	_, err := s.SubmitSelfTransfer(ctx, 0)

	require.NotNil(t, err)
	assert.Equal(t, errors.ErrInvalidAmount, err.(errors.Error).ErrorCode)
	client.AssertNotCalled(t, "GetLatestBlockhash", mock.Anything, mock.Anything)
}

func TestSubmitNoInstructions(t *testing.T) {
	client := &soltest.MockClient{}
	s, _ := newSubmitter(client, t)

	_, err := s.Submit(ctx)

	require.NotNil(t, err)
	assert.Equal(t, errors.ErrNoInstructions, err.(errors.Error).ErrorCode)
}

func TestSubmitFetchBlockhashErr(t *testing.T) {
	cause := stderr.New("dial tcp: connection refused")
	client := &soltest.MockClient{}
	soltest.ImplementMockWithOverwrite(client, soltest.MockMethods{
		"GetLatestBlockhash": {
			Arguments: []interface{}{mock.Anything, mock.Anything},
			Return:    []interface{}{nil, cause},
		},
	})
	s, m := newSubmitter(client, t)

	sig, err := s.SubmitSelfTransfer(ctx, DefaultLamports)

	require.NotNil(t, err)
	assert.Equal(t, solana.Signature{}, sig)
	assert.Equal(t, errors.ErrFetchBlockhash, err.(errors.Error).ErrorCode)
	assert.Equal(t, cause, errors.Root(err))
	client.AssertNotCalled(t, "SendTransactionWithOpts", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Submissions.WithLabelValues(metrics.StatusError)))
}

func TestSubmitEmptyBlockhashResult(t *testing.T) {
	client := &soltest.MockClient{}
	soltest.ImplementMockWithOverwrite(client, soltest.MockMethods{
		"GetLatestBlockhash": {
			Arguments: []interface{}{mock.Anything, mock.Anything},
			Return:    []interface{}{&rpc.GetLatestBlockhashResult{}, nil},
		},
	})
	s, _ := newSubmitter(client, t)

	_, err := s.SubmitSelfTransfer(ctx, DefaultLamports)

	require.NotNil(t, err)
	assert.Equal(t, errors.ErrFetchBlockhash, err.(errors.Error).ErrorCode)
}

func TestSubmitSendTransactionErr(t *testing.T) {
	cause := stderr.New("Transaction simulation failed: Attempt to debit an account but found no record of a prior credit.")
	client := &soltest.MockClient{}
	soltest.ImplementMockWithOverwrite(client, soltest.MockMethods{
		"SendTransactionWithOpts": {
			Arguments: []interface{}{mock.Anything, mock.Anything, mock.Anything},
			Return:    []interface{}{solana.Signature{}, cause},
		},
	})
	s, _ := newSubmitter(client, t)

	sig, err := s.SubmitSelfTransfer(ctx, DefaultLamports)

	require.NotNil(t, err)
	assert.Equal(t, solana.Signature{}, sig)
	assert.Equal(t, errors.ErrSendTransaction, err.(errors.Error).ErrorCode)
	assert.True(t, stderr.Is(err, cause))
	assert.Equal(t, cause.Error(), errors.Root(err).Error())
}

func TestNewSubmitterDefaultCommitment(t *testing.T) {
	s, _ := newSubmitter(&soltest.MockClient{}, t)
	assert.Equal(t, rpc.CommitmentConfirmed, s.commitment)
}
