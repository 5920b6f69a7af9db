package indexstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/uptrace/bun"

	"github.com/chainsafe/party-search/pkg/party"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the party index
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

// containsPattern builds an ILIKE pattern matching name as a literal substring.
func containsPattern(name string) string {
	return "%" + likeEscaper.Replace(name) + "%"
}

func (s *pgStore) SearchParties(ctx context.Context, name string, limit int) ([]party.Party, error) {
	var daos []PartyDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("p.display_name ILIKE ?", containsPattern(name)).
		OrderExpr("p.display_name ASC, p.id ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search parties: %w", err)
	}

	out := make([]party.Party, 0, len(daos))
	for i := range daos {
		out = append(out, toParty(&daos[i]))
	}
	return out, nil
}

func (s *pgStore) SearchCrowdfunds(ctx context.Context, name string, limit int) ([]party.Crowdfund, error) {
	var daos []CrowdfundDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("cf.display_name ILIKE ?", containsPattern(name)).
		OrderExpr("cf.display_name ASC, cf.id ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search crowdfunds: %w", err)
	}

	out := make([]party.Crowdfund, 0, len(daos))
	for i := range daos {
		out = append(out, toCrowdfund(&daos[i]))
	}
	return out, nil
}

// GetPartyAddressesForCrowdfunds returns the linked party of each known
// crowdfund. Keys of the result are the caller's input strings. An address
// linked to different parties on different networks is left out, since the
// caller cannot tell which network it meant.
func (s *pgStore) GetPartyAddressesForCrowdfunds(
	ctx context.Context,
	addresses []string,
) (party.CrowdfundToParty, error) {
	out := make(party.CrowdfundToParty, len(addresses))
	if len(addresses) == 0 {
		return out, nil
	}

	lowered := make([]string, 0, len(addresses))
	seen := make(map[string]struct{}, len(addresses))
	for _, addr := range addresses {
		key := strings.ToLower(strings.TrimSpace(addr))
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		lowered = append(lowered, key)
	}

	var links []CrowdfundPartyLinkDao
	err := s.db.NewSelect().
		Model(&links).
		Where("l.crowdfund_address IN (?)", bun.In(lowered)).
		OrderExpr("l.network_id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get crowdfund links: %w", err)
	}

	byLower := make(map[string]string, len(links))
	ambiguous := make(map[string]struct{})
	for _, link := range links {
		prev, ok := byLower[link.CrowdfundAddress]
		if ok && !strings.EqualFold(prev, link.PartyAddress) {
			ambiguous[link.CrowdfundAddress] = struct{}{}
			continue
		}
		if !ok {
			byLower[link.CrowdfundAddress] = link.PartyAddress
		}
	}
	for key := range ambiguous {
		delete(byLower, key)
	}

	for _, addr := range addresses {
		if p, ok := byLower[strings.ToLower(strings.TrimSpace(addr))]; ok {
			out[addr] = p
		}
	}
	return out, nil
}

// ListUnlinkedCrowdfunds returns crowdfunds on the given networks that have
// neither a direct party address nor a saved link. Crowdfunds never attempted
// come first, then the ones whose last attempt is oldest, so rows that keep
// failing cannot starve the rest.
func (s *pgStore) ListUnlinkedCrowdfunds(ctx context.Context, networkIDs []int64, limit int) ([]party.Crowdfund, error) {
	if len(networkIDs) == 0 {
		return nil, nil
	}

	var daos []CrowdfundDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("cf.party_address IS NULL").
		Where("cf.network_id IN (?)", bun.In(networkIDs)).
		Where("NOT EXISTS (SELECT 1 FROM crowdfund_party_links AS l " +
			"WHERE l.network_id = cf.network_id AND l.crowdfund_address = lower(cf.address))").
		OrderExpr("cf.link_attempted_at ASC NULLS FIRST, cf.id ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unlinked crowdfunds: %w", err)
	}

	out := make([]party.Crowdfund, 0, len(daos))
	for i := range daos {
		out = append(out, toCrowdfund(&daos[i]))
	}
	return out, nil
}

// MarkLinkAttempted records that linking the crowdfund was tried without
// success, moving it behind crowdfunds that were attempted less recently.
func (s *pgStore) MarkLinkAttempted(ctx context.Context, networkID int64, address string) error {
	_, err := s.db.NewUpdate().
		Model((*CrowdfundDao)(nil)).
		Set("link_attempted_at = current_timestamp").
		Where("cf.network_id = ?", networkID).
		Where("cf.address = ?", address).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark link attempt for crowdfund %s: %w", address, err)
	}
	return nil
}

func (s *pgStore) SaveCrowdfundPartyLink(ctx context.Context, link *party.Link) error {
	_, err := s.db.NewInsert().
		Model(toLinkDao(link)).
		On("CONFLICT (network_id, crowdfund_address) DO UPDATE").
		Set("party_address = EXCLUDED.party_address").
		Set("resolved_at = EXCLUDED.resolved_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save crowdfund link %s: %w", link.CrowdfundAddress, err)
	}
	return nil
}

// UpsertParties inserts parties or refreshes the display name of existing
// ones. Within one batch the last row for a network+address wins.
func (s *pgStore) UpsertParties(ctx context.Context, parties []party.Party) error {
	if len(parties) == 0 {
		return nil
	}

	daos := make([]*PartyDao, 0, len(parties))
	index := make(map[string]int, len(parties))
	for i := range parties {
		dao := toPartyDao(&parties[i])
		key := rowKey(dao.NetworkID, dao.Address)
		if at, ok := index[key]; ok {
			daos[at] = dao
			continue
		}
		index[key] = len(daos)
		daos = append(daos, dao)
	}

	_, err := s.db.NewInsert().
		Model(&daos).
		On("CONFLICT (network_id, address) DO UPDATE").
		Set("display_name = EXCLUDED.display_name").
		Set("updated_at = current_timestamp").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert parties: %w", err)
	}
	return nil
}

// UpsertCrowdfunds inserts crowdfunds or refreshes existing ones. A known
// party address is never cleared by a row that lacks one.
func (s *pgStore) UpsertCrowdfunds(ctx context.Context, crowdfunds []party.Crowdfund) error {
	if len(crowdfunds) == 0 {
		return nil
	}

	daos := make([]*CrowdfundDao, 0, len(crowdfunds))
	index := make(map[string]int, len(crowdfunds))
	for i := range crowdfunds {
		dao := toCrowdfundDao(&crowdfunds[i])
		key := rowKey(dao.NetworkID, dao.Address)
		if at, ok := index[key]; ok {
			daos[at] = dao
			continue
		}
		index[key] = len(daos)
		daos = append(daos, dao)
	}

	_, err := s.db.NewInsert().
		Model(&daos).
		On("CONFLICT (network_id, address) DO UPDATE").
		Set("display_name = EXCLUDED.display_name").
		Set("party_address = COALESCE(EXCLUDED.party_address, cf.party_address)").
		Set("updated_at = current_timestamp").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert crowdfunds: %w", err)
	}
	return nil
}

func rowKey(networkID int64, address string) string {
	return fmt.Sprintf("%d-%s", networkID, strings.ToLower(address))
}
