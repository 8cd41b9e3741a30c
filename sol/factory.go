package sol

import (
	"context"
	stderr "errors"
	"net/url"

	"github.com/gagliardetto/solana-go/rpc"

	"github.com/oasislabs/solana-self-transfer/errors"
)

// ClientFactory creates a new instance of a client based
// on the provided configuration
type ClientFactory interface {
	// New creates a new instance of the client
	New(context.Context, *Config) (Client, error)
}

// ClientFactoryFunc allows for functions to act as a ClientFactory
type ClientFactoryFunc func(context.Context, *Config) (Client, error)

// New implementation of ClientFactory for ClientFactoryFunc
func (f ClientFactoryFunc) New(ctx context.Context, config *Config) (Client, error) {
	return f(ctx, config)
}

// NewClient creates a new client with the provided configuration. No
// request is made until the client is used
var NewClient = ClientFactoryFunc(func(ctx context.Context, config *Config) (Client, error) {
	if len(config.URL) == 0 {
		return nil, errors.New(errors.ErrInvalidURL, stderr.New("no url provided for rpc client"))
	}

	u, err := url.Parse(config.URL)
	if err != nil {
		return nil, errors.New(errors.ErrInvalidURL, err)
	}

	if u.Scheme != "https" && u.Scheme != "http" {
		return nil, errors.New(errors.ErrInvalidURL, stderr.New("only schemes supported are http and https"))
	}

	return rpc.New(config.URL), nil
})
