package ingest

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	apperrors "github.com/chainsafe/party-search/pkg/app/errors"
	"github.com/chainsafe/party-search/pkg/auth"
	"github.com/chainsafe/party-search/pkg/ingest/mocks"
	"github.com/chainsafe/party-search/pkg/network"
	"github.com/chainsafe/party-search/pkg/party"
)

// EIP-55 reference addresses
const (
	addrA = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	addrB = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"
	addrC = "0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB"
)

func newTestService(store Store) Service {
	return NewService(store, network.MustDefault(), zap.NewNop())
}

func TestIndexParties_ChecksumsAddresses(t *testing.T) {
	store := mocks.NewStore(t)
	store.EXPECT().UpsertParties(mock.Anything, []party.Party{
		{NetworkID: 1, Address: addrA, DisplayName: "Foo"},
		{NetworkID: 8453, Address: addrB},
	}).Return(nil).Once()

	n, err := newTestService(store).IndexParties(context.Background(), []party.Party{
		{NetworkID: 1, Address: strings.ToLower(addrA), DisplayName: "Foo"},
		{NetworkID: 8453, Address: "0x" + strings.ToUpper(addrB[2:])},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestIndexCrowdfunds_ChecksumsAddresses(t *testing.T) {
	store := mocks.NewStore(t)
	store.EXPECT().UpsertCrowdfunds(mock.Anything, []party.Crowdfund{
		{NetworkID: 1, Address: addrC, PartyAddress: addrA, DisplayName: "Foo CF"},
		{NetworkID: 1, Address: addrB},
	}).Return(nil).Once()

	n, err := newTestService(store).IndexCrowdfunds(context.Background(), []party.Crowdfund{
		{NetworkID: 1, Address: strings.ToLower(addrC), PartyAddress: strings.ToLower(addrA), DisplayName: "Foo CF"},
		{NetworkID: 1, Address: strings.ToLower(addrB)},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestIndex_UnsupportedNetworkRejectsBatch(t *testing.T) {
	store := mocks.NewStore(t)
	svc := newTestService(store)

	_, err := svc.IndexParties(context.Background(), []party.Party{
		{NetworkID: 1, Address: addrA},
		{NetworkID: 424242, Address: addrB},
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))

	var svcErr *apperrors.ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, "unsupported network 424242", svcErr.Message)

	_, err = svc.IndexCrowdfunds(context.Background(), []party.Crowdfund{{NetworkID: 424242, Address: addrA}})
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))

	store.AssertNotCalled(t, "UpsertParties", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "UpsertCrowdfunds", mock.Anything, mock.Anything)
}

func TestIndex_StoreFailure(t *testing.T) {
	store := mocks.NewStore(t)
	dbErr := errors.New("connection refused")
	store.EXPECT().UpsertParties(mock.Anything, mock.Anything).Return(dbErr).Once()

	_, err := newTestService(store).IndexParties(context.Background(), []party.Party{{NetworkID: 1, Address: addrA}})
	assert.ErrorIs(t, err, dbErr)
}

func TestIndex_InvalidAddressRejectsBatch(t *testing.T) {
	store := mocks.NewStore(t)
	svc := newTestService(store)

	_, err := svc.IndexParties(context.Background(), []party.Party{
		{NetworkID: 1, Address: addrA},
		{NetworkID: 1, Address: "0xnot-an-address"},
	})
	var svcErr *apperrors.ServiceError
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, apperrors.CategoryDataError, svcErr.Category)
	assert.Equal(t, `invalid address "0xnot-an-address"`, svcErr.Message)

	_, err = svc.IndexCrowdfunds(context.Background(), []party.Crowdfund{
		{NetworkID: 1, Address: addrC, PartyAddress: "party-a"},
	})
	require.True(t, errors.As(err, &svcErr))
	assert.Equal(t, `invalid party_address "party-a"`, svcErr.Message)

	_, err = svc.IndexCrowdfunds(context.Background(), []party.Crowdfund{
		{NetworkID: 1, Address: addrC[:20]},
	})
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))

	store.AssertNotCalled(t, "UpsertParties", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "UpsertCrowdfunds", mock.Anything, mock.Anything)
}

func TestIndexCrowdfunds_BlankPartyAddressIsUnlinked(t *testing.T) {
	store := mocks.NewStore(t)
	store.EXPECT().UpsertCrowdfunds(mock.Anything, []party.Crowdfund{
		{NetworkID: 1, Address: addrC},
	}).Return(nil).Once()

	n, err := newTestService(store).IndexCrowdfunds(context.Background(), []party.Crowdfund{
		{NetworkID: 1, Address: addrC, PartyAddress: "  "},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestIndex_LogsTokenSubject(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	store := mocks.NewStore(t)
	store.EXPECT().UpsertParties(mock.Anything, mock.Anything).Return(nil).Twice()
	svc := NewService(store, network.MustDefault(), zap.New(core))

	ctx := auth.WithSubject(context.Background(), "indexer-worker")
	_, err := svc.IndexParties(ctx, []party.Party{{NetworkID: 1, Address: addrA}})
	require.NoError(t, err)
	_, err = svc.IndexParties(context.Background(), []party.Party{{NetworkID: 1, Address: addrB}})
	require.NoError(t, err)

	entries := logs.FilterMessage("Indexed parties").AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "indexer-worker", entries[0].ContextMap()["subject"])
	assert.NotContains(t, entries[1].ContextMap(), "subject")
}
