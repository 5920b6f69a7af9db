package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	"github.com/chainsafe/party-search/pkg/config"
	"github.com/chainsafe/party-search/pkg/migrations/indexdb"
	"github.com/chainsafe/party-search/pkg/pgutil"
	mghelper "github.com/chainsafe/party-search/pkg/pgutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadAPIServer(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("error creating logger: %s", err.Error())
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	// Connect to database
	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer db.Close()

	logger.Info("Running migrations for party index database", zap.String("database", cfg.Database.Database))

	migrator := migrate.NewMigrator(db, indexdb.Migrations)

	// Run migrations with args
	if err := mghelper.RunMigrations(ctx, migrator, logger, flag.Args()...); err != nil {
		mghelper.Exitf("%v", err)
	}
}
