// Package ingest writes parties and crowdfunds pushed by the indexer into the
// party index.
package ingest

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/chainsafe/party-search/internal/metrics"
	apperrors "github.com/chainsafe/party-search/pkg/app/errors"
	"github.com/chainsafe/party-search/pkg/auth"
	"github.com/chainsafe/party-search/pkg/party"
)

// Store persists index rows
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	UpsertParties(ctx context.Context, parties []party.Party) error
	UpsertCrowdfunds(ctx context.Context, crowdfunds []party.Crowdfund) error
}

// NetworkNamer reports whether a chain id is a supported network
type NetworkNamer interface {
	Name(chainID int64) (string, bool)
}

// Service defines the interface for index ingestion
type Service interface {
	IndexParties(ctx context.Context, parties []party.Party) (int, error)
	IndexCrowdfunds(ctx context.Context, crowdfunds []party.Crowdfund) (int, error)
}

type ingestService struct {
	store    Store
	networks NetworkNamer
	logger   *zap.Logger
}

// NewService creates a new ingestion service
func NewService(store Store, networks NetworkNamer, logger *zap.Logger) Service {
	return &ingestService{
		store:    store,
		networks: networks,
		logger:   logger,
	}
}

// IndexParties checksums and upserts parties. The whole batch is rejected if
// any row is on an unsupported network or carries a malformed address.
func (s *ingestService) IndexParties(ctx context.Context, parties []party.Party) (int, error) {
	rows := make([]party.Party, 0, len(parties))
	for i, p := range parties {
		if err := s.checkNetwork(i, p.NetworkID); err != nil {
			return 0, err
		}
		if err := checkAddress(i, "address", p.Address); err != nil {
			return 0, err
		}
		p.Address = auth.NormalizeAddress(p.Address)
		rows = append(rows, p)
	}

	if err := s.store.UpsertParties(ctx, rows); err != nil {
		return 0, fmt.Errorf("failed to upsert %d parties: %w", len(rows), err)
	}
	metrics.IngestedRowsTotal.WithLabelValues("party").Add(float64(len(rows)))

	s.logger.Info("Indexed parties", zap.Int("count", len(rows)), subjectField(ctx))
	return len(rows), nil
}

// IndexCrowdfunds checksums and upserts crowdfunds. The whole batch is
// rejected if any row is on an unsupported network or carries a malformed
// address. A blank party address is stored as unlinked.
func (s *ingestService) IndexCrowdfunds(ctx context.Context, crowdfunds []party.Crowdfund) (int, error) {
	rows := make([]party.Crowdfund, 0, len(crowdfunds))
	for i, cf := range crowdfunds {
		if err := s.checkNetwork(i, cf.NetworkID); err != nil {
			return 0, err
		}
		if err := checkAddress(i, "address", cf.Address); err != nil {
			return 0, err
		}
		if strings.TrimSpace(cf.PartyAddress) != "" {
			if err := checkAddress(i, "party_address", strings.TrimSpace(cf.PartyAddress)); err != nil {
				return 0, err
			}
		}
		cf.Address = auth.NormalizeAddress(cf.Address)
		cf.PartyAddress = auth.NormalizeOptionalAddress(cf.PartyAddress)
		rows = append(rows, cf)
	}

	if err := s.store.UpsertCrowdfunds(ctx, rows); err != nil {
		return 0, fmt.Errorf("failed to upsert %d crowdfunds: %w", len(rows), err)
	}
	metrics.IngestedRowsTotal.WithLabelValues("crowdfund").Add(float64(len(rows)))

	s.logger.Info("Indexed crowdfunds", zap.Int("count", len(rows)), subjectField(ctx))
	return len(rows), nil
}

func (s *ingestService) checkNetwork(index int, networkID int64) error {
	if _, ok := s.networks.Name(networkID); !ok {
		return apperrors.BadRequestError(
			fmt.Errorf("row %d: unsupported network %d", index, networkID),
			fmt.Sprintf("unsupported network %d", networkID),
		)
	}
	return nil
}

func checkAddress(index int, field, address string) error {
	if !auth.ValidateEVMAddress(address) {
		return apperrors.BadRequestError(
			fmt.Errorf("row %d: invalid %s %q", index, field, address),
			fmt.Sprintf("invalid %s %q", field, address),
		)
	}
	return nil
}

// subjectField names the token subject that pushed the batch
func subjectField(ctx context.Context) zap.Field {
	if sub, ok := auth.SubjectFromContext(ctx); ok {
		return zap.String("subject", sub)
	}
	return zap.Skip()
}
