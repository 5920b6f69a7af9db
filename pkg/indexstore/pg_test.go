package indexstore

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/party-search/pkg/party"
	"github.com/chainsafe/party-search/pkg/pgutil"
	mghelper "github.com/chainsafe/party-search/pkg/pgutil/migrations"
)

const (
	partyA     = "0xAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaAaA1"
	partyB     = "0xbBbBBBBbbBBBbbbBbbBbbbbBBbBbbbbBbBbbBBB2"
	crowdfundA = "0xCcCCccccCCCCcCCCCCCcCcCccCcCCCcCcccccCC1"
	crowdfundB = "0xcccCcCCCCcCCCcCcCCcccCCCcCCCcCcCccCCcCc2"
	crowdfundC = "0xCCCCCccCcccCCCcccCCCcccccCCcCCcCCccCcCC3"
	crowdfundD = "0xccCcccCCCcCCcCCcCccCcccCCCCcccCcCcccCCC4"
)

func setupStore(t *testing.T) (context.Context, *pgStore) {
	t.Helper()

	ctx := context.Background()
	db, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	err := mghelper.CreateSchema(ctx, db, &PartyDao{}, &CrowdfundDao{}, &CrowdfundPartyLinkDao{})
	require.NoError(t, err, "failed to create schema")

	return ctx, NewStore(db)
}

func TestContainsPattern_EscapesWildcards(t *testing.T) {
	assert.Equal(t, "%foo%", containsPattern("foo"))
	assert.Equal(t, `%100\%\_off\\%`, containsPattern(`100%_off\`))
}

func TestPGStore_UpsertAndSearchParties(t *testing.T) {
	ctx, store := setupStore(t)

	require.NoError(t, store.UpsertParties(ctx, []party.Party{
		{NetworkID: 1, Address: partyA, DisplayName: "Alpha Club"},
		{NetworkID: 1, Address: partyB, DisplayName: "Beta club house"},
		{NetworkID: 8453, Address: partyA, DisplayName: "Other"},
		{NetworkID: 8453, Address: partyB},
	}))

	got, err := store.SearchParties(ctx, "CLUB", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Alpha Club", got[0].DisplayName)
	assert.Equal(t, "Beta club house", got[1].DisplayName)
	assert.Equal(t, partyA, got[0].Address)

	limited, err := store.SearchParties(ctx, "club", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestPGStore_UpsertPartiesIsIdempotent(t *testing.T) {
	ctx, store := setupStore(t)

	rows := []party.Party{{NetworkID: 1, Address: partyA, DisplayName: "First"}}
	require.NoError(t, store.UpsertParties(ctx, rows))
	require.NoError(t, store.UpsertParties(ctx, rows))
	require.NoError(t, store.UpsertParties(ctx, []party.Party{
		{NetworkID: 1, Address: partyA, DisplayName: "Renamed"},
		{NetworkID: 1, Address: partyA, DisplayName: "Renamed Again"},
	}))

	pgutil.AssertRowCount(t, store.db, "parties", 1)

	got, err := store.SearchParties(ctx, "renamed", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Renamed Again", got[0].DisplayName)
}

func TestPGStore_SearchTreatsWildcardsLiterally(t *testing.T) {
	ctx, store := setupStore(t)

	require.NoError(t, store.UpsertParties(ctx, []party.Party{
		{NetworkID: 1, Address: partyA, DisplayName: "100% Party"},
		{NetworkID: 1, Address: partyB, DisplayName: "1000 Party"},
	}))

	got, err := store.SearchParties(ctx, "100%", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "100% Party", got[0].DisplayName)
}

func TestPGStore_UpsertCrowdfundsKeepsKnownPartyAddress(t *testing.T) {
	ctx, store := setupStore(t)

	require.NoError(t, store.UpsertCrowdfunds(ctx, []party.Crowdfund{
		{NetworkID: 1, Address: crowdfundA, PartyAddress: partyA, DisplayName: "Fund"},
	}))
	require.NoError(t, store.UpsertCrowdfunds(ctx, []party.Crowdfund{
		{NetworkID: 1, Address: crowdfundA, DisplayName: "Fund Renamed"},
	}))

	got, err := store.SearchCrowdfunds(ctx, "fund", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Fund Renamed", got[0].DisplayName)
	assert.Equal(t, partyA, got[0].PartyAddress)
}

func TestPGStore_CrowdfundLinks(t *testing.T) {
	ctx, store := setupStore(t)

	require.NoError(t, store.UpsertCrowdfunds(ctx, []party.Crowdfund{
		{NetworkID: 1, Address: crowdfundA, DisplayName: "Genesis"},
		{NetworkID: 1, Address: crowdfundB, PartyAddress: partyB, DisplayName: "Modern"},
	}))

	unlinked, err := store.ListUnlinkedCrowdfunds(ctx, []int64{1}, 10)
	require.NoError(t, err)
	require.Len(t, unlinked, 1)
	assert.Equal(t, crowdfundA, unlinked[0].Address)

	none, err := store.ListUnlinkedCrowdfunds(ctx, []int64{8453}, 10)
	require.NoError(t, err)
	assert.Empty(t, none)

	require.NoError(t, store.SaveCrowdfundPartyLink(ctx, &party.Link{
		NetworkID:        1,
		CrowdfundAddress: crowdfundA,
		PartyAddress:     partyA,
	}))
	// saving again updates in place
	require.NoError(t, store.SaveCrowdfundPartyLink(ctx, &party.Link{
		NetworkID:        1,
		CrowdfundAddress: crowdfundA,
		PartyAddress:     partyA,
	}))
	pgutil.AssertRowCount(t, store.db, "crowdfund_party_links", 1)

	unlinked, err = store.ListUnlinkedCrowdfunds(ctx, []int64{1}, 10)
	require.NoError(t, err)
	assert.Empty(t, unlinked)

	lowerInput := strings.ToLower(crowdfundA)
	got, err := store.GetPartyAddressesForCrowdfunds(ctx, []string{crowdfundA, lowerInput, crowdfundB})
	require.NoError(t, err)
	assert.Equal(t, party.CrowdfundToParty{
		crowdfundA: partyA,
		lowerInput: partyA,
	}, got)
}

func TestPGStore_ListUnlinkedCrowdfunds_AttemptedRowsGoLast(t *testing.T) {
	ctx, store := setupStore(t)

	require.NoError(t, store.UpsertCrowdfunds(ctx, []party.Crowdfund{
		{NetworkID: 1, Address: crowdfundA, DisplayName: "Lost"},
		{NetworkID: 1, Address: crowdfundB, DisplayName: "Lost too"},
		{NetworkID: 1, Address: crowdfundC, DisplayName: "Lost three"},
		{NetworkID: 1, Address: crowdfundD, DisplayName: "Resolvable"},
	}))

	first, err := store.ListUnlinkedCrowdfunds(ctx, []int64{1}, 3)
	require.NoError(t, err)
	require.Len(t, first, 3)
	for _, cf := range first {
		require.NoError(t, store.MarkLinkAttempted(ctx, cf.NetworkID, cf.Address))
	}

	next, err := store.ListUnlinkedCrowdfunds(ctx, []int64{1}, 3)
	require.NoError(t, err)
	require.Len(t, next, 3)
	assert.Equal(t, crowdfundD, next[0].Address)

	// marking an unknown crowdfund is a no-op
	require.NoError(t, store.MarkLinkAttempted(ctx, 8453, crowdfundA))
}

func TestPGStore_LinksAreScopedByNetwork(t *testing.T) {
	ctx, store := setupStore(t)

	require.NoError(t, store.UpsertCrowdfunds(ctx, []party.Crowdfund{
		{NetworkID: 1, Address: crowdfundA},
		{NetworkID: 8453, Address: crowdfundA},
	}))
	require.NoError(t, store.SaveCrowdfundPartyLink(ctx, &party.Link{
		NetworkID:        1,
		CrowdfundAddress: crowdfundA,
		PartyAddress:     partyA,
	}))

	unlinked, err := store.ListUnlinkedCrowdfunds(ctx, []int64{1, 8453}, 10)
	require.NoError(t, err)
	require.Len(t, unlinked, 1)
	assert.Equal(t, int64(8453), unlinked[0].NetworkID)

	got, err := store.GetPartyAddressesForCrowdfunds(ctx, []string{crowdfundA})
	require.NoError(t, err)
	assert.Equal(t, party.CrowdfundToParty{crowdfundA: partyA}, got)

	require.NoError(t, store.SaveCrowdfundPartyLink(ctx, &party.Link{
		NetworkID:        8453,
		CrowdfundAddress: crowdfundA,
		PartyAddress:     partyB,
	}))
	pgutil.AssertRowCount(t, store.db, "crowdfund_party_links", 2)

	got, err = store.GetPartyAddressesForCrowdfunds(ctx, []string{crowdfundA})
	require.NoError(t, err)
	assert.Empty(t, got, "conflicting links across networks must not resolve")
}

func TestPGStore_GetPartyAddressesForCrowdfunds_Empty(t *testing.T) {
	// No database needed: empty input must not query.
	store := NewStore(nil)

	got, err := store.GetPartyAddressesForCrowdfunds(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
