package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chainsafe/party-search/pkg/config"
	"github.com/chainsafe/party-search/pkg/indexer"
	"github.com/chainsafe/party-search/pkg/indexstore"
	"github.com/chainsafe/party-search/pkg/network"
	"github.com/chainsafe/party-search/pkg/pgutil"
	"github.com/chainsafe/party-search/pkg/reconciler"
	searchservice "github.com/chainsafe/party-search/pkg/search/service"
)

func newSearchCmd(root *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <name>",
		Short: "Search parties and crowdfunds by display name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := root.load()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			overrides, err := cfg.NetworkOverrides()
			if err != nil {
				return err
			}
			networks, err := network.New(overrides)
			if err != nil {
				return err
			}

			var (
				source searchservice.Source
				links  searchservice.LinkLookup
			)
			if cfg.Search.Source == config.SearchSourceRemote {
				client := indexer.NewClient(cfg.Indexer)
				source, links = client, client
			} else {
				db, err := pgutil.ConnectDB(cmd.Context(), &cfg.Database)
				if err != nil {
					return fmt.Errorf("connect db: %w", err)
				}
				defer db.Close()
				store := indexstore.NewStore(db)
				source, links = store, store
			}

			svc := searchservice.NewService(source, links, reconciler.New(networks, logger), cfg.Search, logger)
			results, err := svc.SearchByName(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(&searchservice.SearchResponse{Results: results})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum rows fetched per source (0 uses the configured default)")
	return cmd
}
