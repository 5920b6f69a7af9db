// Package service implements party search by name: it fetches parties and
// crowdfunds from a data source, resolves missing crowdfund links and hands
// both lists to the reconciler.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/chainsafe/party-search/internal/metrics"
	apperrors "github.com/chainsafe/party-search/pkg/app/errors"
	"github.com/chainsafe/party-search/pkg/config"
	"github.com/chainsafe/party-search/pkg/party"
)

const (
	defaultLimit = 20
	maxLimit     = 100

	unavailableMessage = "party search data source may be unavailable"
)

// ErrNameRequired is returned for an empty or blank search name.
var ErrNameRequired = errors.New("name is required")

// Source fetches parties and crowdfunds whose display name matches a search term.
//
//go:generate mockery --name Source --output mocks --outpkg mocks --filename mock_source.go --with-expecter
type Source interface {
	SearchParties(ctx context.Context, name string, limit int) ([]party.Party, error)
	SearchCrowdfunds(ctx context.Context, name string, limit int) ([]party.Crowdfund, error)
}

// LinkLookup resolves crowdfund addresses to the party that created them.
//
//go:generate mockery --name LinkLookup --output mocks --outpkg mocks --filename mock_link_lookup.go --with-expecter
type LinkLookup interface {
	GetPartyAddressesForCrowdfunds(ctx context.Context, addresses []string) (party.CrowdfundToParty, error)
}

// Reconciler merges party and crowdfund rows into search results.
type Reconciler interface {
	DedupePartyAndCrowdfundResults(
		parties []party.Party,
		crowdfunds []party.Crowdfund,
		crowdfundToParty party.CrowdfundToParty,
	) []party.SearchResult
}

// Service defines the interface for party search
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	SearchByName(ctx context.Context, name string, limit int) ([]party.SearchResult, error)
}

type searchService struct {
	source       Source
	links        LinkLookup
	reconciler   Reconciler
	defaultLimit int
	maxLimit     int
	logger       *zap.Logger
}

// NewService creates a new search service
func NewService(
	source Source,
	links LinkLookup,
	reconciler Reconciler,
	cfg config.SearchConfig,
	logger *zap.Logger,
) Service {
	s := &searchService{
		source:       source,
		links:        links,
		reconciler:   reconciler,
		defaultLimit: cfg.DefaultLimit,
		maxLimit:     cfg.MaxLimit,
		logger:       logger,
	}
	if s.defaultLimit <= 0 {
		s.defaultLimit = defaultLimit
	}
	if s.maxLimit <= 0 {
		s.maxLimit = maxLimit
	}
	if s.defaultLimit > s.maxLimit {
		s.defaultLimit = s.maxLimit
	}
	return s
}

// SearchByName returns the reconciled parties and crowdfunds matching name.
//
// Parties and crowdfunds are fetched concurrently with the same limit. Once
// both are in, crowdfunds without a direct party link are resolved in one
// batched lookup, which is skipped when every crowdfund is linked. Any data
// source failure aborts the search.
func (s *searchService) SearchByName(ctx context.Context, name string, limit int) (results []party.SearchResult, err error) {
	start := time.Now()
	defer func() {
		metrics.SearchDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.SearchRequestsTotal.WithLabelValues("error").Inc()
			return
		}
		metrics.SearchRequestsTotal.WithLabelValues("ok").Inc()
		metrics.SearchResults.Observe(float64(len(results)))
	}()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.BadRequestError(ErrNameRequired, "name is required")
	}
	limit = s.effectiveLimit(limit)

	var (
		parties    []party.Party
		crowdfunds []party.Crowdfund
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		res, err := s.source.SearchParties(gctx, name, limit)
		if err != nil {
			metrics.SourceErrorsTotal.WithLabelValues("search_parties").Inc()
			return fmt.Errorf("search parties: %w", err)
		}
		parties = res
		return nil
	})
	g.Go(func() error {
		res, err := s.source.SearchCrowdfunds(gctx, name, limit)
		if err != nil {
			metrics.SourceErrorsTotal.WithLabelValues("search_crowdfunds").Inc()
			return fmt.Errorf("search crowdfunds: %w", err)
		}
		crowdfunds = res
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, apperrors.DependencyFailureError(err, unavailableMessage)
	}

	crowdfundToParty := party.CrowdfundToParty{}
	if unlinked := unlinkedCrowdfunds(crowdfunds); len(unlinked) > 0 {
		lookup, err := s.links.GetPartyAddressesForCrowdfunds(ctx, unlinked)
		if err != nil {
			metrics.LinkLookupsTotal.WithLabelValues("error").Inc()
			metrics.SourceErrorsTotal.WithLabelValues("crowdfund_links").Inc()
			return nil, apperrors.DependencyFailureError(
				fmt.Errorf("get party addresses for %d crowdfunds: %w", len(unlinked), err),
				unavailableMessage,
			)
		}
		metrics.LinkLookupsTotal.WithLabelValues("ok").Inc()
		if lookup != nil {
			crowdfundToParty = lookup
		}
	} else {
		metrics.LinkLookupsTotal.WithLabelValues("skipped").Inc()
	}

	s.logger.Debug("Reconciling search rows",
		zap.Int("parties", len(parties)),
		zap.Int("crowdfunds", len(crowdfunds)),
		zap.Int("links", len(crowdfundToParty)))

	return s.reconciler.DedupePartyAndCrowdfundResults(parties, crowdfunds, crowdfundToParty), nil
}

func (s *searchService) effectiveLimit(limit int) int {
	if limit <= 0 {
		return s.defaultLimit
	}
	if limit > s.maxLimit {
		return s.maxLimit
	}
	return limit
}

// unlinkedCrowdfunds returns, in input order and without repeats, the
// addresses of crowdfunds that carry no party address.
func unlinkedCrowdfunds(crowdfunds []party.Crowdfund) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, cf := range crowdfunds {
		if strings.TrimSpace(cf.PartyAddress) != "" {
			continue
		}
		key := strings.ToLower(cf.Address)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, cf.Address)
	}
	return out
}
