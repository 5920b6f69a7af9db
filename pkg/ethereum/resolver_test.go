package ethereum

import (
	"context"
	"errors"
	"math/big"
	"testing"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	crowdfundAddr = common.HexToAddress("0xCCCccCCccCcCCccCcccCcCCCccCcCCccCcCcccc1")
	partyAddr     = common.HexToAddress("0xAAAaaAAaaAaAAaaAaaaAaAAAaaAaAAaaAaAaaaa1")
)

// fakeCaller answers eth_call with a fixed ABI-encoded return value.
type fakeCaller struct {
	ret   []byte
	err   error
	calls []ethereum.CallMsg
}

func (f *fakeCaller) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x60, 0x80}, nil
}

func (f *fakeCaller) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	f.calls = append(f.calls, call)
	return f.ret, f.err
}

func encodeAddress(addr common.Address) []byte {
	return common.LeftPadBytes(addr.Bytes(), 32)
}

func TestResolver_PartyOf(t *testing.T) {
	caller := &fakeCaller{ret: encodeAddress(partyAddr)}
	r := NewResolver(map[int64]bind.ContractCaller{1: caller}, 0)

	got, err := r.PartyOf(context.Background(), 1, crowdfundAddr)
	require.NoError(t, err)
	assert.Equal(t, partyAddr, got)

	require.Len(t, caller.calls, 1)
	require.NotNil(t, caller.calls[0].To)
	assert.Equal(t, crowdfundAddr, *caller.calls[0].To)
	assert.Equal(t, common.FromHex("0x354284f2"), caller.calls[0].Data)
}

func TestResolver_ZeroAddressMeansUnlinked(t *testing.T) {
	r := NewResolver(map[int64]bind.ContractCaller{1: &fakeCaller{ret: encodeAddress(common.Address{})}}, 0)

	got, err := r.PartyOf(context.Background(), 1, crowdfundAddr)
	require.NoError(t, err)
	assert.Equal(t, common.Address{}, got)
}

func TestResolver_UnsupportedNetwork(t *testing.T) {
	r := NewResolver(map[int64]bind.ContractCaller{1: &fakeCaller{}}, 0)

	_, err := r.PartyOf(context.Background(), 8453, crowdfundAddr)
	assert.ErrorIs(t, err, ErrUnsupportedNetwork)
}

func TestResolver_CallFailure(t *testing.T) {
	rpcErr := errors.New("execution reverted")
	r := NewResolver(map[int64]bind.ContractCaller{1: &fakeCaller{err: rpcErr}}, 0)

	_, err := r.PartyOf(context.Background(), 1, crowdfundAddr)
	assert.ErrorIs(t, err, rpcErr)
}
