package wallet

import (
	"bytes"
	"crypto/ed25519"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gagliardetto/solana-go"

	"github.com/oasislabs/solana-self-transfer/errors"
)

// Wallet is an interface for any type that holds an account
// identity and signs transactions on its behalf
type Wallet interface {
	PublicKey() solana.PublicKey
	SignTransaction(tx *solana.Transaction) errors.Err
}

type InternalWallet struct {
	PrivateKey solana.PrivateKey
}

func NewWallet(privateKey solana.PrivateKey) *InternalWallet {
	return &InternalWallet{PrivateKey: privateKey}
}

// LoadFromFile reads a keypair in the format written by solana-keygen,
// a JSON array with the 64 bytes of the ed25519 private key. A leading
// ~ in p is expanded to the home directory
func LoadFromFile(p string) (*InternalWallet, errors.Err) {
	p, err := expandHome(p)
	if err != nil {
		return nil, errors.New(errors.ErrLoadKeypair, err)
	}

	privateKey, err := solana.PrivateKeyFromSolanaKeygenFile(p)
	if err != nil {
		return nil, errors.New(errors.ErrLoadKeypair, err)
	}

	if err := verifyKeypair(privateKey); err != nil {
		return nil, errors.New(errors.ErrLoadKeypair, fmt.Errorf("%s: %s", p, err.Error()))
	}

	return NewWallet(privateKey), nil
}

func (w *InternalWallet) PublicKey() solana.PublicKey {
	return w.PrivateKey.PublicKey()
}

// SignTransaction adds the wallet's signature to tx. It fails if the
// message requires a signature from an account other than the wallet's
func (w *InternalWallet) SignTransaction(tx *solana.Transaction) errors.Err {
	owner := w.PublicKey()
	_, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		if key.Equals(owner) {
			return &w.PrivateKey
		}
		return nil
	})
	if err != nil {
		return errors.New(errors.ErrSignTransaction, err)
	}

	return nil
}

// verifyKeypair checks that the public half stored in the key
// matches the one derived from its seed
func verifyKeypair(privateKey solana.PrivateKey) error {
	if len(privateKey) != ed25519.PrivateKeySize {
		return fmt.Errorf("keypair must be %d bytes, got %d", ed25519.PrivateKeySize, len(privateKey))
	}

	derived := ed25519.NewKeyFromSeed(privateKey[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], privateKey[ed25519.SeedSize:]) {
		return fmt.Errorf("public key does not match the private key")
	}

	return nil
}

func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}
