// Package indexstore is the Postgres-backed party index. It serves name
// search, crowdfund to party link lookups, ingestion upserts and the link
// backfill worker.
package indexstore

import (
	"context"

	"github.com/chainsafe/party-search/pkg/party"
)

// SearchStore defines name search over indexed parties and crowdfunds
type SearchStore interface {
	SearchParties(ctx context.Context, name string, limit int) ([]party.Party, error)
	SearchCrowdfunds(ctx context.Context, name string, limit int) ([]party.Crowdfund, error)
}

// LinkStore defines crowdfund to party link persistence
type LinkStore interface {
	GetPartyAddressesForCrowdfunds(ctx context.Context, addresses []string) (party.CrowdfundToParty, error)
	ListUnlinkedCrowdfunds(ctx context.Context, networkIDs []int64, limit int) ([]party.Crowdfund, error)
	MarkLinkAttempted(ctx context.Context, networkID int64, address string) error
	SaveCrowdfundPartyLink(ctx context.Context, link *party.Link) error
}

// IngestStore defines index writes
type IngestStore interface {
	UpsertParties(ctx context.Context, parties []party.Party) error
	UpsertCrowdfunds(ctx context.Context, crowdfunds []party.Crowdfund) error
}

// Store defines the full party index
type Store interface {
	SearchStore
	LinkStore
	IngestStore
}
