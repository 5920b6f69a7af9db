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
		log.Println("creating parties table...")
		if err := mghelper.CreateSchema(ctx, db, &indexstore.PartyDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelExprIndex(ctx, db, &indexstore.PartyDao{}, "display_name_lower", "lower(display_name)")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping parties table...")
		return mghelper.DropTables(ctx, db, &indexstore.PartyDao{})
	})
}
