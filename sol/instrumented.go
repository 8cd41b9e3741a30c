package sol

import (
	"context"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/oasislabs/solana-self-transfer/log"
	"github.com/oasislabs/solana-self-transfer/metrics"
)

const (
	methodGetLatestBlockhash = "getLatestBlockhash"
	methodSendTransaction    = "sendTransaction"
)

type InstrumentedClientProps struct {
	Client  Client
	Metrics *metrics.RPCMetrics
	Logger  log.Logger
	Timeout time.Duration
}

// InstrumentedClient logs and measures every request made by the
// underlying client. Errors are returned as the client produced them
type InstrumentedClient struct {
	client  Client
	metrics *metrics.RPCMetrics
	logger  log.Logger
	timeout time.Duration
}

func NewInstrumentedClient(props InstrumentedClientProps) *InstrumentedClient {
	return &InstrumentedClient{
		client:  props.Client,
		metrics: props.Metrics,
		logger:  props.Logger.ForClass("sol", "InstrumentedClient"),
		timeout: props.Timeout,
	}
}

func (c *InstrumentedClient) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

func (c *InstrumentedClient) GetLatestBlockhash(
	ctx context.Context,
	commitment rpc.CommitmentType,
) (*rpc.GetLatestBlockhashResult, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	timer := c.metrics.Timer(methodGetLatestBlockhash)
	res, err := c.client.GetLatestBlockhash(ctx, commitment)
	c.metrics.Observe(methodGetLatestBlockhash, timer, err)
	if err != nil {
		c.logger.Debug(ctx, "client call failed", log.MapFields{
			"call_type":  "GetLatestBlockhashFailure",
			"commitment": string(commitment),
			"err":        err.Error(),
		})
		return nil, err
	}

	fields := log.MapFields{
		"call_type":  "GetLatestBlockhashSuccess",
		"commitment": string(commitment),
	}
	if res.Value != nil {
		fields["blockhash"] = res.Value.Blockhash.String()
		fields["lastValidBlockHeight"] = res.Value.LastValidBlockHeight
	}

	c.logger.Debug(ctx, "", fields)
	return res, nil
}

func (c *InstrumentedClient) SendTransactionWithOpts(
	ctx context.Context,
	transaction *solana.Transaction,
	opts rpc.TransactionOpts,
) (solana.Signature, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	timer := c.metrics.Timer(methodSendTransaction)
	sig, err := c.client.SendTransactionWithOpts(ctx, transaction, opts)
	c.metrics.Observe(methodSendTransaction, timer, err)
	if err != nil {
		c.logger.Debug(ctx, "client call failed", log.MapFields{
			"call_type": "SendTransactionFailure",
			"err":       err.Error(),
		})
		return solana.Signature{}, err
	}

	c.logger.Debug(ctx, "", log.MapFields{
		"call_type": "SendTransactionSuccess",
		"signature": sig.String(),
	})
	return sig, nil
}
