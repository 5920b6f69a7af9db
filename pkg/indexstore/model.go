package indexstore

import (
	"strings"
	"time"

	"github.com/uptrace/bun"

	"github.com/chainsafe/party-search/pkg/party"
)

// PartyDao maps to the 'parties' table.
type PartyDao struct {
	bun.BaseModel `bun:"table:parties,alias:p"`
	ID            int64     `bun:"id,pk,autoincrement"`
	NetworkID     int64     `bun:"network_id,notnull,unique:uq_parties_network_address"`
	Address       string    `bun:"address,notnull,type:varchar(42),unique:uq_parties_network_address"`
	DisplayName   *string   `bun:"display_name,type:varchar(255)"`
	CreatedAt     time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt     time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// CrowdfundDao maps to the 'crowdfunds' table.
// LinkAttemptedAt is set when the backfill worker tried and failed to link
// the crowdfund; rows never attempted sort first.
type CrowdfundDao struct {
	bun.BaseModel   `bun:"table:crowdfunds,alias:cf"`
	ID              int64      `bun:"id,pk,autoincrement"`
	NetworkID       int64      `bun:"network_id,notnull,unique:uq_crowdfunds_network_address"`
	Address         string     `bun:"address,notnull,type:varchar(42),unique:uq_crowdfunds_network_address"`
	PartyAddress    *string    `bun:"party_address,type:varchar(42)"`
	DisplayName     *string    `bun:"display_name,type:varchar(255)"`
	LinkAttemptedAt *time.Time `bun:"link_attempted_at"`
	CreatedAt       time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt       time.Time  `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// CrowdfundPartyLinkDao maps to the 'crowdfund_party_links' table.
// CrowdfundAddress is stored lowercase.
type CrowdfundPartyLinkDao struct {
	bun.BaseModel    `bun:"table:crowdfund_party_links,alias:l"`
	NetworkID        int64     `bun:"network_id,pk"`
	CrowdfundAddress string    `bun:"crowdfund_address,pk,type:varchar(42)"`
	PartyAddress     string    `bun:"party_address,notnull,type:varchar(42)"`
	ResolvedAt       time.Time `bun:"resolved_at,nullzero,notnull,default:current_timestamp"`
}

func toPartyDao(p *party.Party) *PartyDao {
	return &PartyDao{
		NetworkID:   p.NetworkID,
		Address:     p.Address,
		DisplayName: optional(p.DisplayName),
	}
}

func toParty(dao *PartyDao) party.Party {
	return party.Party{
		NetworkID:   dao.NetworkID,
		Address:     dao.Address,
		DisplayName: deref(dao.DisplayName),
	}
}

func toCrowdfundDao(cf *party.Crowdfund) *CrowdfundDao {
	return &CrowdfundDao{
		NetworkID:    cf.NetworkID,
		Address:      cf.Address,
		PartyAddress: optional(cf.PartyAddress),
		DisplayName:  optional(cf.DisplayName),
	}
}

func toCrowdfund(dao *CrowdfundDao) party.Crowdfund {
	return party.Crowdfund{
		NetworkID:    dao.NetworkID,
		Address:      dao.Address,
		PartyAddress: deref(dao.PartyAddress),
		DisplayName:  deref(dao.DisplayName),
	}
}

func toLinkDao(link *party.Link) *CrowdfundPartyLinkDao {
	return &CrowdfundPartyLinkDao{
		CrowdfundAddress: strings.ToLower(link.CrowdfundAddress),
		NetworkID:        link.NetworkID,
		PartyAddress:     link.PartyAddress,
		ResolvedAt:       time.Now().UTC(),
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
