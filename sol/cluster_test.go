package sol

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const signature = "5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbJLgp8uirBgmQpjKhoR4tjF3ZpRzrFmBV6UjKdiSZkQUW"

func TestExplorerLinkMainnet(t *testing.T) {
	assert.Equal(t,
		"https://explorer.solana.com/tx/"+signature,
		ExplorerLink(LinkTransaction, signature, MainnetBeta))
}

func TestExplorerLinkDevnet(t *testing.T) {
	assert.Equal(t,
		"https://explorer.solana.com/tx/"+signature+"?cluster=devnet",
		ExplorerLink(LinkTransaction, signature, Devnet))
}

func TestExplorerLinkLocalnet(t *testing.T) {
	assert.Equal(t,
		"https://explorer.solana.com/address/11111111111111111111111111111111"+
			"?cluster=custom&customUrl=http%3A%2F%2Flocalhost%3A8899",
		ExplorerLink(LinkAddress, "11111111111111111111111111111111", Localnet))
}

func TestClusterEndpoints(t *testing.T) {
	assert.Equal(t, "https://api.mainnet-beta.solana.com", MainnetBeta.Endpoint())
	assert.Equal(t, "https://api.devnet.solana.com", Devnet.Endpoint())
	assert.Equal(t, "https://api.testnet.solana.com", Testnet.Endpoint())
	assert.Equal(t, "http://localhost:8899", Localnet.Endpoint())
}

func TestClusterValid(t *testing.T) {
	assert.True(t, Testnet.Valid())
	assert.False(t, Cluster("moonnet").Valid())
	assert.False(t, Cluster("").Valid())
}
