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
		log.Println("creating crowdfunds table...")
		if err := mghelper.CreateSchema(ctx, db, &indexstore.CrowdfundDao{}); err != nil {
			return err
		}
		if err := mghelper.CreateModelIndexes(ctx, db, &indexstore.CrowdfundDao{}, "party_address", "link_attempted_at"); err != nil {
			return err
		}
		return mghelper.CreateModelExprIndex(ctx, db, &indexstore.CrowdfundDao{}, "display_name_lower", "lower(display_name)")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping crowdfunds table...")
		return mghelper.DropTables(ctx, db, &indexstore.CrowdfundDao{})
	})
}
