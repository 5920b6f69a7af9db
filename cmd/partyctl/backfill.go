package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chainsafe/party-search/pkg/ethereum"
	"github.com/chainsafe/party-search/pkg/indexstore"
	"github.com/chainsafe/party-search/pkg/linker"
	"github.com/chainsafe/party-search/pkg/pgutil"
)

func newBackfillCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "backfill",
		Short: "Resolve one batch of unlinked crowdfunds on chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := root.load()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			ctx := cmd.Context()

			db, err := pgutil.ConnectDB(ctx, &cfg.Database)
			if err != nil {
				return fmt.Errorf("connect db: %w", err)
			}
			defer db.Close()

			clients, err := ethereum.DialNetworks(ctx, &cfg.Ethereum, logger)
			if err != nil {
				return fmt.Errorf("dial ethereum networks: %w", err)
			}
			defer clients.Close()

			l := linker.New(
				indexstore.NewStore(db),
				ethereum.NewResolver(clients.Callers(), cfg.Ethereum.CallTimeout),
				clients.NetworkIDs(),
				cfg.Linker.BatchSize,
				logger,
			)

			linked, err := l.RunOnce(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "linked %d crowdfunds\n", linked)
			return nil
		},
	}
}
