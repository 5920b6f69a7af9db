package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chainsafe/party-search/pkg/config"
)

type rootOptions struct {
	configFile string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "partyctl",
		Short:         "Party search command line tool",
		SilenceUsage:  true,
		PersistentPreRun: func(*cobra.Command, []string) {
			// .env is optional
			_ = godotenv.Load()
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "config.yaml", "Path to configuration file")

	cmd.AddCommand(
		newSearchCmd(opts),
		newFeesCmd(),
		newBackfillCmd(opts),
	)
	return cmd
}

func (o *rootOptions) load() (*config.APIServerConfig, *zap.Logger, error) {
	cfg, err := config.LoadAPIServer(o.configFile)
	if err != nil {
		return nil, nil, err
	}
	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
