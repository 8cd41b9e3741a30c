package soltest

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/mock"
)

// Blockhash is the blockhash returned by the default mock methods
var Blockhash = solana.Hash{
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16,
	17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32,
}

type MockMethod struct {
	Arguments []interface{}
	Return    []interface{}
	Run       func(mock.Arguments)
}

type MockMethods map[string]MockMethod

var DefaultMockMethods = map[string]MockMethod{
	"GetLatestBlockhash": {
		Arguments: []interface{}{mock.Anything, mock.Anything},
		Return: []interface{}{
			&rpc.GetLatestBlockhashResult{
				Value: &rpc.LatestBlockhashResult{
					Blockhash:            Blockhash,
					LastValidBlockHeight: 150,
				},
			}, nil,
		},
	},
	"SendTransactionWithOpts": {
		Arguments: []interface{}{mock.Anything, mock.Anything, mock.Anything},
		Return:    []interface{}{solana.Signature{}, nil},
	},
}

func OverwriteDefaults(overwrite MockMethods) MockMethods {
	methods := make(MockMethods)

	for key, value := range DefaultMockMethods {
		if o, ok := overwrite[key]; ok {
			methods[key] = o
		} else {
			methods[key] = value
		}
	}

	return methods
}

func ImplementMockWithOverwrite(client *MockClient, overwrite MockMethods) {
	ImplementMockWithMethods(client, OverwriteDefaults(overwrite))
}

func ImplementMockWithMethods(client *MockClient, methods MockMethods) {
	for key, method := range methods {
		call := client.On(key, method.Arguments...)
		if len(method.Return) > 0 {
			call = call.Return(method.Return...)
		}
		if method.Run != nil {
			call.Run(method.Run)
		}
	}
}

func ImplementMock(client *MockClient) {
	ImplementMockWithMethods(client, DefaultMockMethods)
}

type MockClient struct {
	mock.Mock
}

func (m *MockClient) GetLatestBlockhash(
	ctx context.Context,
	commitment rpc.CommitmentType,
) (*rpc.GetLatestBlockhashResult, error) {
	args := m.Called(ctx, commitment)
	if args.Get(1) != nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*rpc.GetLatestBlockhashResult), nil
}

func (m *MockClient) SendTransactionWithOpts(
	ctx context.Context,
	transaction *solana.Transaction,
	opts rpc.TransactionOpts,
) (solana.Signature, error) {
	args := m.Called(ctx, transaction, opts)
	return args.Get(0).(solana.Signature), args.Error(1)
}
