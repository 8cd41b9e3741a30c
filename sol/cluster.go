package sol

import (
	"net/url"
)

// Cluster identifies a solana network
type Cluster string

const (
	MainnetBeta Cluster = "mainnet-beta"
	Devnet      Cluster = "devnet"
	Testnet     Cluster = "testnet"
	Localnet    Cluster = "localnet"

	localnetEndpoint = "http://localhost:8899"
	explorerHost     = "explorer.solana.com"
)

var endpoints = map[Cluster]string{
	MainnetBeta: "https://api.mainnet-beta.solana.com",
	Devnet:      "https://api.devnet.solana.com",
	Testnet:     "https://api.testnet.solana.com",
	Localnet:    localnetEndpoint,
}

func clusterNames() []string {
	return []string{string(MainnetBeta), string(Devnet), string(Testnet), string(Localnet)}
}

// Valid returns true if the cluster is one of the known clusters
func (c Cluster) Valid() bool {
	_, ok := endpoints[c]
	return ok
}

// Endpoint returns the public rpc endpoint of the cluster
func (c Cluster) Endpoint() string {
	return endpoints[c]
}

// LinkKind is the kind of entity an explorer link points to
type LinkKind string

const (
	LinkTransaction LinkKind = "tx"
	LinkAddress     LinkKind = "address"
	LinkBlock       LinkKind = "block"
)

// ExplorerLink returns the link to inspect value in the public explorer.
// Links to mainnet-beta carry no cluster parameter and links to
// localnet point the explorer to the local endpoint
func ExplorerLink(kind LinkKind, value string, cluster Cluster) string {
	u := url.URL{
		Scheme: "https",
		Host:   explorerHost,
		Path:   "/" + string(kind) + "/" + value,
	}

	switch cluster {
	case MainnetBeta, "":
	case Localnet:
		u.RawQuery = url.Values{
			"cluster":   []string{"custom"},
			"customUrl": []string{localnetEndpoint},
		}.Encode()
	default:
		u.RawQuery = url.Values{"cluster": []string{string(cluster)}}.Encode()
	}

	return u.String()
}
