package tx

import (
	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"

	"github.com/oasislabs/solana-self-transfer/errors"
)

// NewSelfTransfer creates a system program transfer that moves lamports
// from owner back to owner. owner must sign the transaction that
// carries the instruction
func NewSelfTransfer(owner solana.PublicKey, lamports uint64) (solana.Instruction, errors.Err) {
	return NewTransfer(owner, owner, lamports)
}

// NewTransfer creates a system program transfer from from to to. Only
// from needs to sign
func NewTransfer(from, to solana.PublicKey, lamports uint64) (solana.Instruction, errors.Err) {
	if lamports == 0 {
		return nil, errors.New(errors.ErrInvalidAmount, nil)
	}

	return system.NewTransferInstruction(lamports, from, to).Build(), nil
}

// Compile builds an unsigned v0 transaction with payer as the fee payer.
// Instructions are kept in the order provided, which is the order in
// which the ledger executes them
func Compile(
	payer solana.PublicKey,
	blockhash solana.Hash,
	instructions ...solana.Instruction,
) (*solana.Transaction, errors.Err) {
	if len(instructions) == 0 {
		return nil, errors.New(errors.ErrNoInstructions, nil)
	}

	tx, err := solana.NewTransaction(instructions, blockhash, solana.TransactionPayer(payer))
	if err != nil {
		return nil, errors.New(errors.ErrCompileMessage, err)
	}

	tx.Message.SetVersion(solana.MessageVersionV0)
	return tx, nil
}
