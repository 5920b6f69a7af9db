package linker

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/chainsafe/party-search/pkg/linker/mocks"
	"github.com/chainsafe/party-search/pkg/party"
)

const (
	crowdfundA = "0xCCCccCCccCcCCccCcccCcCCCccCcCCccCcCcccc1"
	crowdfundB = "0xCCCccCCccCcCCccCcccCcCCCccCcCCccCcCcccc2"
	crowdfundC = "0xCCCccCCccCcCCccCcccCcCCCccCcCCccCcCcccc3"
)

var (
	partyA = common.HexToAddress("0xAAAaaAAaaAaAAaaAaaaAaAAAaaAaAAaaAaAaaaa1")
	partyB = common.HexToAddress("0xBBBbbBBbbBbBBbbBbbbBbBBBbbBbBBbbBbBbbbb2")

	networks = []int64{1, 8453}
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRunOnce_SavesResolvedLinks(t *testing.T) {
	store := mocks.NewStore(t)
	resolver := mocks.NewResolver(t)

	store.EXPECT().ListUnlinkedCrowdfunds(mock.Anything, networks, 50).Return([]party.Crowdfund{
		{NetworkID: 1, Address: crowdfundA},
		{NetworkID: 8453, Address: crowdfundB},
	}, nil).Once()
	resolver.EXPECT().PartyOf(mock.Anything, int64(1), common.HexToAddress(crowdfundA)).Return(partyA, nil).Once()
	resolver.EXPECT().PartyOf(mock.Anything, int64(8453), common.HexToAddress(crowdfundB)).Return(partyB, nil).Once()
	store.EXPECT().SaveCrowdfundPartyLink(mock.Anything, &party.Link{
		NetworkID:        1,
		CrowdfundAddress: crowdfundA,
		PartyAddress:     partyA.Hex(),
	}).Return(nil).Once()
	store.EXPECT().SaveCrowdfundPartyLink(mock.Anything, &party.Link{
		NetworkID:        8453,
		CrowdfundAddress: crowdfundB,
		PartyAddress:     partyB.Hex(),
	}).Return(nil).Once()

	linked, err := New(store, resolver, networks, 50, zap.NewNop()).RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, linked)
}

func TestRunOnce_SkipsZeroAddress(t *testing.T) {
	store := mocks.NewStore(t)
	resolver := mocks.NewResolver(t)

	store.EXPECT().ListUnlinkedCrowdfunds(mock.Anything, networks, defaultBatchSize).
		Return([]party.Crowdfund{{NetworkID: 1, Address: crowdfundA}}, nil).Once()
	resolver.EXPECT().PartyOf(mock.Anything, int64(1), common.HexToAddress(crowdfundA)).
		Return(common.Address{}, nil).Once()
	store.EXPECT().MarkLinkAttempted(mock.Anything, int64(1), crowdfundA).Return(nil).Once()

	linked, err := New(store, resolver, networks, 0, zap.NewNop()).RunOnce(context.Background())
	require.NoError(t, err)
	assert.Zero(t, linked)
	store.AssertNotCalled(t, "SaveCrowdfundPartyLink", mock.Anything, mock.Anything)
}

func TestRunOnce_ContinuesPastFailures(t *testing.T) {
	store := mocks.NewStore(t)
	resolver := mocks.NewResolver(t)

	store.EXPECT().ListUnlinkedCrowdfunds(mock.Anything, networks, 10).Return([]party.Crowdfund{
		{NetworkID: 1, Address: "not-an-address"},
		{NetworkID: 1, Address: crowdfundA},
		{NetworkID: 1, Address: crowdfundB},
		{NetworkID: 1, Address: crowdfundC},
	}, nil).Once()
	resolver.EXPECT().PartyOf(mock.Anything, int64(1), common.HexToAddress(crowdfundA)).
		Return(common.Address{}, errors.New("rpc timeout")).Once()
	resolver.EXPECT().PartyOf(mock.Anything, int64(1), common.HexToAddress(crowdfundB)).Return(partyB, nil).Once()
	resolver.EXPECT().PartyOf(mock.Anything, int64(1), common.HexToAddress(crowdfundC)).Return(partyA, nil).Once()
	store.EXPECT().SaveCrowdfundPartyLink(mock.Anything, mock.MatchedBy(func(l *party.Link) bool {
		return l.CrowdfundAddress == crowdfundB
	})).Return(errors.New("deadlock detected")).Once()
	store.EXPECT().SaveCrowdfundPartyLink(mock.Anything, mock.MatchedBy(func(l *party.Link) bool {
		return l.CrowdfundAddress == crowdfundC
	})).Return(nil).Once()
	store.EXPECT().MarkLinkAttempted(mock.Anything, int64(1), "not-an-address").Return(nil).Once()
	store.EXPECT().MarkLinkAttempted(mock.Anything, int64(1), crowdfundA).Return(nil).Once()
	store.EXPECT().MarkLinkAttempted(mock.Anything, int64(1), crowdfundB).Return(errors.New("connection reset")).Once()

	linked, err := New(store, resolver, networks, 10, zap.NewNop()).RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, linked)
}

func TestRunOnce_ListFailure(t *testing.T) {
	store := mocks.NewStore(t)
	store.EXPECT().ListUnlinkedCrowdfunds(mock.Anything, networks, 10).Return(nil, errors.New("connection reset")).Once()

	_, err := New(store, mocks.NewResolver(t), networks, 10, zap.NewNop()).RunOnce(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list unlinked crowdfunds")
}

func TestRunOnce_StopsOnCanceledContext(t *testing.T) {
	store := mocks.NewStore(t)
	resolver := mocks.NewResolver(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store.EXPECT().ListUnlinkedCrowdfunds(mock.Anything, networks, 10).Return([]party.Crowdfund{
		{NetworkID: 1, Address: crowdfundA},
		{NetworkID: 1, Address: crowdfundB},
	}, nil).Once()
	resolver.EXPECT().PartyOf(mock.Anything, int64(1), common.HexToAddress(crowdfundA)).
		RunAndReturn(func(context.Context, int64, common.Address) (common.Address, error) {
			cancel()
			return common.Address{}, nil
		}).Once()
	store.EXPECT().MarkLinkAttempted(mock.Anything, int64(1), crowdfundA).Return(nil).Once()

	linked, err := New(store, resolver, networks, 10, zap.NewNop()).RunOnce(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, linked)
}

// queueStore keeps unlinked crowdfunds in id order and serves the ones never
// attempted first, then by oldest attempt.
type queueStore struct {
	rows     []party.Crowdfund
	attempts map[string]int
	clock    int
	links    map[string]string
}

func newQueueStore(rows ...party.Crowdfund) *queueStore {
	return &queueStore{
		rows:     rows,
		attempts: make(map[string]int),
		links:    make(map[string]string),
	}
}

func (s *queueStore) ListUnlinkedCrowdfunds(_ context.Context, _ []int64, limit int) ([]party.Crowdfund, error) {
	var fresh, tried []party.Crowdfund
	for _, cf := range s.rows {
		if _, ok := s.links[cf.Address]; ok {
			continue
		}
		if _, ok := s.attempts[cf.Address]; ok {
			tried = append(tried, cf)
			continue
		}
		fresh = append(fresh, cf)
	}
	sort.SliceStable(tried, func(i, j int) bool {
		return s.attempts[tried[i].Address] < s.attempts[tried[j].Address]
	})

	out := append(fresh, tried...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *queueStore) MarkLinkAttempted(_ context.Context, _ int64, address string) error {
	s.clock++
	s.attempts[address] = s.clock
	return nil
}

func (s *queueStore) SaveCrowdfundPartyLink(_ context.Context, link *party.Link) error {
	s.links[link.CrowdfundAddress] = link.PartyAddress
	return nil
}

func TestRunOnce_PendingCrowdfundsDoNotStarveLaterRows(t *testing.T) {
	const resolvable = "0xCCCccCCccCcCCccCcccCcCCCccCcCCccCcCcccc4"

	store := newQueueStore(
		party.Crowdfund{NetworkID: 1, Address: crowdfundA},
		party.Crowdfund{NetworkID: 1, Address: crowdfundB},
		party.Crowdfund{NetworkID: 1, Address: crowdfundC},
		party.Crowdfund{NetworkID: 1, Address: resolvable},
	)

	resolver := mocks.NewResolver(t)
	resolver.EXPECT().PartyOf(mock.Anything, int64(1), common.HexToAddress(resolvable)).Return(partyA, nil).Once()
	// the first three never created a party
	resolver.EXPECT().PartyOf(mock.Anything, int64(1), mock.Anything).Return(common.Address{}, nil)

	l := New(store, resolver, networks, 3, zap.NewNop())

	total := 0
	for i := 0; i < 2; i++ {
		linked, err := l.RunOnce(context.Background())
		require.NoError(t, err)
		total += linked
	}

	assert.Equal(t, 1, total)
	assert.Equal(t, partyA.Hex(), store.links[resolvable])
}

func TestStartStop(t *testing.T) {
	store := mocks.NewStore(t)

	ran := make(chan struct{})
	var once sync.Once
	store.EXPECT().ListUnlinkedCrowdfunds(mock.Anything, networks, 10).
		RunAndReturn(func(context.Context, []int64, int) ([]party.Crowdfund, error) {
			once.Do(func() { close(ran) })
			return nil, nil
		}).Maybe()

	l := New(store, mocks.NewResolver(t), networks, 10, zap.NewNop())
	l.Start(5 * time.Millisecond)

	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("backfill did not run")
	}

	l.Stop()
}
