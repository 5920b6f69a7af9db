//go:build ignore

// seed-demo.go - Seed the party index with demo rows for local testing
//
// Writes two parties and three crowdfunds on mainnet and base, covering a
// directly linked crowdfund, a GENESIS-era crowdfund linked only through the
// link table, and a standalone crowdfund.
//
// Prerequisites:
// 1. Postgres is running and migrations are applied (cmd/api-server/migrate up)
//
// Usage:
//   go run scripts/seed-demo.go -config config.yaml
//
// Afterwards `partyctl search club` returns three rows.

package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/chainsafe/party-search/pkg/config"
	"github.com/chainsafe/party-search/pkg/indexstore"
	"github.com/chainsafe/party-search/pkg/party"
	"github.com/chainsafe/party-search/pkg/pgutil"
)

const (
	fooParty      = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	barParty      = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"
	fooCrowdfund  = "0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB"
	barCrowdfund  = "0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb"
	soloCrowdfund = "0x52908400098527886E0F7030069857D2E4169EE7"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadAPIServer(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	store := indexstore.NewStore(db)

	if err := store.UpsertParties(ctx, []party.Party{
		{NetworkID: 1, Address: fooParty, DisplayName: "Foo Club"},
		{NetworkID: 1, Address: barParty, DisplayName: "Bar Club"},
	}); err != nil {
		log.Fatalf("Failed to seed parties: %v", err)
	}

	if err := store.UpsertCrowdfunds(ctx, []party.Crowdfund{
		{NetworkID: 1, Address: fooCrowdfund, PartyAddress: fooParty, DisplayName: "Foo Club Raise"},
		{NetworkID: 1, Address: barCrowdfund, DisplayName: "Bar Club Raise"},
		{NetworkID: 8453, Address: soloCrowdfund, DisplayName: "Solo Club Raise"},
	}); err != nil {
		log.Fatalf("Failed to seed crowdfunds: %v", err)
	}

	if err := store.SaveCrowdfundPartyLink(ctx, &party.Link{
		NetworkID:        1,
		CrowdfundAddress: barCrowdfund,
		PartyAddress:     barParty,
	}); err != nil {
		log.Fatalf("Failed to seed crowdfund link: %v", err)
	}

	log.Println("Seeded 2 parties, 3 crowdfunds and 1 crowdfund link")
}
