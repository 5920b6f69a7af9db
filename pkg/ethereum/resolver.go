package ethereum

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/chainsafe/party-search/pkg/ethereum/contracts"
)

const defaultCallTimeout = 10 * time.Second

// Resolver reads crowdfund -> party links from chain
type Resolver struct {
	callers     map[int64]bind.ContractCaller
	callTimeout time.Duration
}

// NewResolver creates a resolver over the given per-network callers
func NewResolver(callers map[int64]bind.ContractCaller, callTimeout time.Duration) *Resolver {
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}
	return &Resolver{
		callers:     callers,
		callTimeout: callTimeout,
	}
}

// PartyOf returns the party created by the crowdfund at the given address.
// The zero address means the crowdfund has not created a party yet.
func (r *Resolver) PartyOf(ctx context.Context, networkID int64, crowdfund common.Address) (common.Address, error) {
	caller, ok := r.callers[networkID]
	if !ok {
		return common.Address{}, fmt.Errorf("%w: %d", ErrUnsupportedNetwork, networkID)
	}

	cf, err := contracts.NewCrowdfundCaller(crowdfund, caller)
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to bind crowdfund %s: %w", crowdfund.Hex(), err)
	}

	ctx, cancel := context.WithTimeout(ctx, r.callTimeout)
	defer cancel()

	party, err := cf.Party(&bind.CallOpts{Context: ctx})
	if err != nil {
		return common.Address{}, fmt.Errorf("failed to call party() on %s (network %d): %w", crowdfund.Hex(), networkID, err)
	}
	return party, nil
}
