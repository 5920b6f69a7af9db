package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/party-search/pkg/app/errors"
	"github.com/chainsafe/party-search/pkg/config"
	"github.com/chainsafe/party-search/pkg/network"
	"github.com/chainsafe/party-search/pkg/party"
	"github.com/chainsafe/party-search/pkg/reconciler"
	"github.com/chainsafe/party-search/pkg/search/service/mocks"
)

const (
	partyA     = "0xAAAaaAAaaAaAAaaAaaaAaAAAaaAaAAaaAaAaaaa1"
	partyB     = "0xBBBbbBBbbBbBBbbBbbbBbBBBbbBbBBbbBbBbbbb2"
	crowdfundA = "0xCCCccCCccCcCCccCcccCcCCCccCcCCccCcCcccc1"
	crowdfundB = "0xCCCccCCccCcCCccCcccCcCCCccCcCCccCcCcccc2"
	crowdfundC = "0xCCCccCCccCcCCccCcccCcCCCccCcCCccCcCcccc3"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newTestService(source Source, links LinkLookup) Service {
	return NewService(
		source,
		links,
		reconciler.New(network.MustDefault(), zap.NewNop()),
		config.SearchConfig{DefaultLimit: 20, MaxLimit: 100},
		zap.NewNop(),
	)
}

func TestSearchService_BlankNameRejected(t *testing.T) {
	svc := newTestService(mocks.NewSource(t), mocks.NewLinkLookup(t))

	for _, name := range []string{"", "   ", "\t\n"} {
		_, err := svc.SearchByName(context.Background(), name, 10)
		if !errors.Is(err, ErrNameRequired) {
			t.Fatalf("name %q: expected ErrNameRequired, got %v", name, err)
		}
		if !apperrors.Is(err, apperrors.CategoryDataError) {
			t.Fatalf("name %q: expected CategoryDataError, got %v", name, err)
		}
	}
}

func TestSearchService_LookupSkippedWhenAllCrowdfundsLinked(t *testing.T) {
	source := mocks.NewSource(t)
	links := mocks.NewLinkLookup(t)

	source.EXPECT().SearchParties(mock.Anything, "foo", 20).
		Return([]party.Party{{NetworkID: 1, Address: partyA, DisplayName: "Foo"}}, nil).Once()
	source.EXPECT().SearchCrowdfunds(mock.Anything, "foo", 20).
		Return([]party.Crowdfund{{NetworkID: 1, Address: crowdfundA, PartyAddress: partyA}}, nil).Once()

	got, err := newTestService(source, links).SearchByName(context.Background(), "  foo ", 0)
	if err != nil {
		t.Fatalf("SearchByName() failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	if got[0].CrowdfundAddress == nil || *got[0].CrowdfundAddress != crowdfundA {
		t.Fatalf("expected crowdfund %s merged into party row, got %+v", crowdfundA, got[0])
	}
	links.AssertNotCalled(t, "GetPartyAddressesForCrowdfunds", mock.Anything, mock.Anything)
}

func TestSearchService_LookupOnlyForUnlinkedCrowdfunds(t *testing.T) {
	source := mocks.NewSource(t)
	links := mocks.NewLinkLookup(t)

	source.EXPECT().SearchParties(mock.Anything, "bar", 5).
		Return([]party.Party{{NetworkID: 1, Address: partyB, DisplayName: "Bar"}}, nil).Once()
	source.EXPECT().SearchCrowdfunds(mock.Anything, "bar", 5).
		Return([]party.Crowdfund{
			{NetworkID: 1, Address: crowdfundC},
			{NetworkID: 1, Address: crowdfundA, PartyAddress: partyA},
			{NetworkID: 1, Address: crowdfundB},
			{NetworkID: 8453, Address: crowdfundC},
		}, nil).Once()
	links.EXPECT().GetPartyAddressesForCrowdfunds(mock.Anything, []string{crowdfundC, crowdfundB}).
		Return(party.CrowdfundToParty{crowdfundB: partyB}, nil).Once()

	got, err := newTestService(source, links).SearchByName(context.Background(), "bar", 5)
	if err != nil {
		t.Fatalf("SearchByName() failed: %v", err)
	}

	keys := make([]string, 0, len(got))
	for _, row := range got {
		keys = append(keys, row.Key)
	}
	want := []string{
		"1-0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb2",
		"1-cf-0xccccccccccccccccccccccccccccccccccccccc3",
		"1-cf-0xccccccccccccccccccccccccccccccccccccccc1",
		"8453-cf-0xccccccccccccccccccccccccccccccccccccccc3",
	}
	if len(keys) != len(want) {
		t.Fatalf("expected keys %v, got %v", want, keys)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("expected keys %v, got %v", want, keys)
		}
	}
	if got[0].CrowdfundAddress == nil || *got[0].CrowdfundAddress != crowdfundB {
		t.Fatalf("expected crowdfund %s attached to party row via lookup, got %+v", crowdfundB, got[0])
	}
}

func TestSearchService_PartySearchFailure(t *testing.T) {
	source := mocks.NewSource(t)
	links := mocks.NewLinkLookup(t)
	sourceErr := errors.New("connection refused")

	source.EXPECT().SearchParties(mock.Anything, "foo", 20).Return(nil, sourceErr).Once()
	source.EXPECT().SearchCrowdfunds(mock.Anything, "foo", 20).
		Return([]party.Crowdfund{{NetworkID: 1, Address: crowdfundA}}, nil).Maybe()

	got, err := newTestService(source, links).SearchByName(context.Background(), "foo", 0)
	if got != nil {
		t.Fatalf("expected no partial results, got %+v", got)
	}
	if !apperrors.Is(err, apperrors.CategoryDependencyFailure) {
		t.Fatalf("expected CategoryDependencyFailure, got %v", err)
	}
	if !errors.Is(err, sourceErr) {
		t.Fatalf("expected source error to be wrapped, got %v", err)
	}
	links.AssertNotCalled(t, "GetPartyAddressesForCrowdfunds", mock.Anything, mock.Anything)
}

func TestSearchService_CrowdfundSearchFailure(t *testing.T) {
	source := mocks.NewSource(t)
	links := mocks.NewLinkLookup(t)

	source.EXPECT().SearchParties(mock.Anything, "foo", 20).Return(nil, nil).Maybe()
	source.EXPECT().SearchCrowdfunds(mock.Anything, "foo", 20).Return(nil, errors.New("timeout")).Once()

	_, err := newTestService(source, links).SearchByName(context.Background(), "foo", 0)

	var svcErr *apperrors.ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("expected ServiceError, got %v", err)
	}
	if svcErr.Message != "party search data source may be unavailable" {
		t.Fatalf("unexpected message %q", svcErr.Message)
	}
}

func TestSearchService_LookupFailure(t *testing.T) {
	source := mocks.NewSource(t)
	links := mocks.NewLinkLookup(t)
	lookupErr := errors.New("lookup down")

	source.EXPECT().SearchParties(mock.Anything, "foo", 20).Return(nil, nil).Once()
	source.EXPECT().SearchCrowdfunds(mock.Anything, "foo", 20).
		Return([]party.Crowdfund{{NetworkID: 1, Address: crowdfundA}}, nil).Once()
	links.EXPECT().GetPartyAddressesForCrowdfunds(mock.Anything, []string{crowdfundA}).
		Return(nil, lookupErr).Once()

	got, err := newTestService(source, links).SearchByName(context.Background(), "foo", 0)
	if got != nil {
		t.Fatalf("expected no partial results, got %+v", got)
	}
	if !apperrors.Is(err, apperrors.CategoryDependencyFailure) {
		t.Fatalf("expected CategoryDependencyFailure, got %v", err)
	}
	if !errors.Is(err, lookupErr) {
		t.Fatalf("expected lookup error to be wrapped, got %v", err)
	}
}

func TestSearchService_LimitDefaultsAndCap(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{name: "zero uses default", requested: 0, want: 20},
		{name: "negative uses default", requested: -3, want: 20},
		{name: "within range kept", requested: 7, want: 7},
		{name: "above max capped", requested: 1000, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := mocks.NewSource(t)
			source.EXPECT().SearchParties(mock.Anything, "foo", tt.want).Return(nil, nil).Once()
			source.EXPECT().SearchCrowdfunds(mock.Anything, "foo", tt.want).Return(nil, nil).Once()

			got, err := newTestService(source, mocks.NewLinkLookup(t)).SearchByName(context.Background(), "foo", tt.requested)
			if err != nil {
				t.Fatalf("SearchByName() failed: %v", err)
			}
			if len(got) != 0 {
				t.Fatalf("expected no results, got %d", len(got))
			}
		})
	}
}

func TestNewService_LimitConfigFallbacks(t *testing.T) {
	svc := NewService(nil, nil, nil, config.SearchConfig{DefaultLimit: 500, MaxLimit: 50}, zap.NewNop()).(*searchService)
	if svc.defaultLimit != 50 || svc.maxLimit != 50 {
		t.Fatalf("expected default clamped to max, got default=%d max=%d", svc.defaultLimit, svc.maxLimit)
	}

	svc = NewService(nil, nil, nil, config.SearchConfig{}, zap.NewNop()).(*searchService)
	if svc.defaultLimit != defaultLimit || svc.maxLimit != maxLimit {
		t.Fatalf("expected built-in limits, got default=%d max=%d", svc.defaultLimit, svc.maxLimit)
	}
}

func TestLogService_PassesThrough(t *testing.T) {
	inner := mocks.NewService(t)
	want := []party.SearchResult{{Key: "1-cf-x", Name: party.UnnamedDisplayName}}
	inner.EXPECT().SearchByName(mock.Anything, "foo", 3).Return(want, nil).Once()

	got, err := NewLog(inner, zap.NewNop()).SearchByName(context.Background(), "foo", 3)
	if err != nil {
		t.Fatalf("SearchByName() failed: %v", err)
	}
	if len(got) != 1 || got[0].Key != "1-cf-x" {
		t.Fatalf("unexpected results %+v", got)
	}

	inner.EXPECT().SearchByName(mock.Anything, "bar", 0).Return(nil, errors.New("boom")).Once()
	if _, err := NewLog(inner, zap.NewNop()).SearchByName(context.Background(), "bar", 0); err == nil {
		t.Fatal("expected error to be passed through")
	}
}

func TestUnlinkedCrowdfunds(t *testing.T) {
	got := unlinkedCrowdfunds([]party.Crowdfund{
		{Address: crowdfundB},
		{Address: crowdfundA, PartyAddress: partyA},
		{Address: "0xccccccccccccccccccccccccccccccccccccccc2"},
		{Address: crowdfundC, PartyAddress: "  "},
	})
	want := []string{crowdfundB, crowdfundC}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
