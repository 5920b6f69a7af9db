// Package reconciler merges party and crowdfund search rows into a single
// deduplicated result list.
package reconciler

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/chainsafe/party-search/pkg/party"
)

// NetworkNamer resolves a chain id to the network name shown in results.
type NetworkNamer interface {
	Name(chainID int64) (string, bool)
}

// Reconciler links crowdfunds to the parties they created and collapses both
// into one row per network+address.
type Reconciler struct {
	networks NetworkNamer
	logger   *zap.Logger
}

// New creates a new Reconciler
func New(networks NetworkNamer, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{
		networks: networks,
		logger:   logger,
	}
}

// DedupePartyAndCrowdfundResults builds the search result list.
//
// Party rows come first in input order. Each crowdfund is then either merged
// into the row of the party it links to, or appended as a standalone row in
// crowdfund input order. The crowdfund's party link is taken from
// Crowdfund.PartyAddress and falls back to crowdfundToParty for GENESIS-era
// crowdfunds.
//
// Rows on unknown networks and crowdfunds linking to themselves are dropped.
func (r *Reconciler) DedupePartyAndCrowdfundResults(
	parties []party.Party,
	crowdfunds []party.Crowdfund,
	crowdfundToParty party.CrowdfundToParty,
) []party.SearchResult {
	rows := newOrderedRows(len(parties) + len(crowdfunds))

	for _, p := range parties {
		networkName, ok := r.networks.Name(p.NetworkID)
		if !ok {
			r.logger.Debug("Skipping party on unsupported network",
				zap.Int64("network_id", p.NetworkID),
				zap.String("address", p.Address))
			continue
		}

		rows.set(partyKey(p.NetworkID, normalize(p.Address)), &party.SearchResult{
			Name:         party.NameOrUnnamed(p.DisplayName),
			NetworkName:  networkName,
			PartyAddress: stringPtr(p.Address),
		})
	}

	lookup := newLinkLookup(crowdfundToParty)

	for _, cf := range crowdfunds {
		networkName, ok := r.networks.Name(cf.NetworkID)
		if !ok {
			r.logger.Debug("Skipping crowdfund on unsupported network",
				zap.Int64("network_id", cf.NetworkID),
				zap.String("address", cf.Address))
			continue
		}

		// blank party addresses count as unlinked, same as in the lookup request
		linked := strings.TrimSpace(cf.PartyAddress)
		if linked == "" {
			linked = strings.TrimSpace(lookup.get(cf.Address))
		}
		linkedKey := normalize(linked)

		if linkedKey != "" && linkedKey == normalize(cf.Address) {
			r.logger.Debug("Skipping self-referential crowdfund",
				zap.Int64("network_id", cf.NetworkID),
				zap.String("address", cf.Address))
			continue
		}

		if linkedKey != "" {
			if existing, found := rows.get(partyKey(cf.NetworkID, linkedKey)); found {
				existing.CrowdfundAddress = stringPtr(cf.Address)
				continue
			}
		}

		row := &party.SearchResult{
			Name:             party.NameOrUnnamed(cf.DisplayName),
			NetworkName:      networkName,
			CrowdfundAddress: stringPtr(cf.Address),
		}
		if linked != "" {
			row.PartyAddress = stringPtr(linked)
		}
		rows.set(crowdfundKey(cf.NetworkID, normalize(cf.Address)), row)
	}

	return rows.values()
}

func partyKey(networkID int64, addressLower string) string {
	return fmt.Sprintf("%d-%s", networkID, addressLower)
}

func crowdfundKey(networkID int64, addressLower string) string {
	return fmt.Sprintf("%d-cf-%s", networkID, addressLower)
}

// normalize is the single place addresses are canonicalized for comparison.
func normalize(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

func stringPtr(s string) *string {
	return &s
}

// orderedRows keeps result rows in first-insertion order.
type orderedRows struct {
	keys []string
	rows map[string]*party.SearchResult
}

func newOrderedRows(capacity int) *orderedRows {
	return &orderedRows{
		keys: make([]string, 0, capacity),
		rows: make(map[string]*party.SearchResult, capacity),
	}
}

func (o *orderedRows) get(key string) (*party.SearchResult, bool) {
	row, ok := o.rows[key]
	return row, ok
}

func (o *orderedRows) set(key string, row *party.SearchResult) {
	if _, exists := o.rows[key]; !exists {
		o.keys = append(o.keys, key)
	}
	row.Key = key
	o.rows[key] = row
}

func (o *orderedRows) values() []party.SearchResult {
	out := make([]party.SearchResult, 0, len(o.keys))
	for _, key := range o.keys {
		out = append(out, *o.rows[key])
	}
	return out
}

// linkLookup reads crowdfund -> party links by exact key first, then case-insensitively.
type linkLookup struct {
	exact map[string]string
	lower map[string]string
}

func newLinkLookup(m party.CrowdfundToParty) linkLookup {
	lower := make(map[string]string, len(m))
	for cf, p := range m {
		lower[normalize(cf)] = p
	}
	return linkLookup{exact: m, lower: lower}
}

func (l linkLookup) get(crowdfund string) string {
	if p, ok := l.exact[crowdfund]; ok {
		return p
	}
	return l.lower[normalize(crowdfund)]
}
