package indexdb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	"github.com/chainsafe/party-search/pkg/indexstore"
	mghelper "github.com/chainsafe/party-search/pkg/pgutil/migrations"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating crowdfund_party_links table...")
		if err := mghelper.CreateSchema(ctx, db, &indexstore.CrowdfundPartyLinkDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &indexstore.CrowdfundPartyLinkDao{}, "party_address")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping crowdfund_party_links table...")
		return mghelper.DropTables(ctx, db, &indexstore.CrowdfundPartyLinkDao{})
	})
}
