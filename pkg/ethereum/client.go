package ethereum

import (
	"context"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/chainsafe/party-search/pkg/config"
)

// Clients holds one JSON-RPC client per configured network
type Clients struct {
	clients map[int64]*ethclient.Client
	logger  *zap.Logger
}

// DialNetworks connects to the RPC endpoint of every network in cfg and checks
// that each endpoint serves the chain id it is configured under. Each network
// gets its own dial_timeout for the connect and chain id round trip.
func DialNetworks(ctx context.Context, cfg *config.EthereumConfig, logger *zap.Logger) (*Clients, error) {
	networks, err := cfg.ByChainID()
	if err != nil {
		return nil, err
	}

	c := &Clients{
		clients: make(map[int64]*ethclient.Client, len(networks)),
		logger:  logger,
	}

	for _, chainID := range cfg.ChainIDs() {
		if err := c.dial(ctx, chainID, networks[chainID]); err != nil {
			c.Close()
			return nil, err
		}
		logger.Info("Connected to Ethereum network", zap.Int64("chain_id", chainID))
	}

	return c, nil
}

func (c *Clients) dial(ctx context.Context, chainID int64, network config.EthereumNetworkConfig) error {
	ctx, cancel := context.WithTimeout(ctx, network.DialTimeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, network.RPCURL)
	if err != nil {
		return fmt.Errorf("failed to connect to network %d: %w", chainID, err)
	}
	c.clients[chainID] = client

	remoteID, err := client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain id of network %d: %w", chainID, err)
	}
	if !remoteID.IsInt64() || remoteID.Int64() != chainID {
		return fmt.Errorf("%w: configured %d, endpoint reports %s", ErrChainIDMismatch, chainID, remoteID.String())
	}
	return nil
}

// Callers returns the clients as contract callers keyed by chain id
func (c *Clients) Callers() map[int64]bind.ContractCaller {
	out := make(map[int64]bind.ContractCaller, len(c.clients))
	for chainID, client := range c.clients {
		out[chainID] = client
	}
	return out
}

// NetworkIDs returns the connected chain ids in ascending order
func (c *Clients) NetworkIDs() []int64 {
	ids := make([]int64, 0, len(c.clients))
	for chainID := range c.clients {
		ids = append(ids, chainID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Close closes all clients
func (c *Clients) Close() {
	for _, client := range c.clients {
		client.Close()
	}
}
