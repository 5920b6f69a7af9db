// Package linker backfills crowdfund -> party links for GENESIS-era
// crowdfunds by reading the party address from chain.
package linker

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/chainsafe/party-search/internal/metrics"
	"github.com/chainsafe/party-search/pkg/party"
)

const (
	defaultBatchSize = 100
	runTimeout       = 2 * time.Minute
)

// Store lists crowdfunds without a party link and persists resolved links.
// ListUnlinkedCrowdfunds must return crowdfunds marked by MarkLinkAttempted
// after the ones that were not, oldest attempt first.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	ListUnlinkedCrowdfunds(ctx context.Context, networkIDs []int64, limit int) ([]party.Crowdfund, error)
	MarkLinkAttempted(ctx context.Context, networkID int64, address string) error
	SaveCrowdfundPartyLink(ctx context.Context, link *party.Link) error
}

// Resolver reads the party created by a crowdfund
//
//go:generate mockery --name Resolver --output mocks --outpkg mocks --filename mock_resolver.go --with-expecter
type Resolver interface {
	PartyOf(ctx context.Context, networkID int64, crowdfund common.Address) (common.Address, error)
}

// Linker periodically resolves unlinked crowdfunds
type Linker struct {
	store      Store
	resolver   Resolver
	networkIDs []int64
	batchSize  int
	logger     *zap.Logger

	stopCh chan struct{}
	wg     sync.WaitGroup
}

// New creates a new Linker for the given networks
func New(store Store, resolver Resolver, networkIDs []int64, batchSize int, logger *zap.Logger) *Linker {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Linker{
		store:      store,
		resolver:   resolver,
		networkIDs: networkIDs,
		batchSize:  batchSize,
		logger:     logger,
		stopCh:     make(chan struct{}),
	}
}

// RunOnce resolves one batch of unlinked crowdfunds and returns how many links
// were saved. A failure on one crowdfund is logged and does not stop the batch.
func (l *Linker) RunOnce(ctx context.Context) (int, error) {
	start := time.Now()

	crowdfunds, err := l.store.ListUnlinkedCrowdfunds(ctx, l.networkIDs, l.batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list unlinked crowdfunds: %w", err)
	}

	var linked, pending, failed int
	for _, cf := range crowdfunds {
		if err := ctx.Err(); err != nil {
			return linked, err
		}

		network := strconv.FormatInt(cf.NetworkID, 10)
		status, err := l.link(ctx, cf)
		metrics.LinksResolvedTotal.WithLabelValues(network, status).Inc()

		if status != statusLinked {
			l.markAttempted(ctx, cf)
		}

		switch {
		case err != nil:
			failed++
			l.logger.Warn("Failed to resolve crowdfund party",
				zap.Int64("network_id", cf.NetworkID),
				zap.String("crowdfund", cf.Address),
				zap.Error(err))
		case status == statusPending:
			pending++
		default:
			linked++
		}
	}

	metrics.LinkerLastRun.SetToCurrentTime()

	l.logger.Info("Crowdfund link backfill completed",
		zap.Int("candidates", len(crowdfunds)),
		zap.Int("linked", linked),
		zap.Int("pending", pending),
		zap.Int("failed", failed),
		zap.Duration("duration", time.Since(start)))

	return linked, nil
}

const (
	statusLinked  = "linked"
	statusPending = "pending"
	statusError   = "error"
)

func (l *Linker) link(ctx context.Context, cf party.Crowdfund) (string, error) {
	if !common.IsHexAddress(cf.Address) {
		return statusError, fmt.Errorf("invalid crowdfund address %q", cf.Address)
	}

	partyAddr, err := l.resolver.PartyOf(ctx, cf.NetworkID, common.HexToAddress(cf.Address))
	if err != nil {
		return statusError, err
	}
	if partyAddr == (common.Address{}) {
		return statusPending, nil
	}

	if err := l.store.SaveCrowdfundPartyLink(ctx, &party.Link{
		NetworkID:        cf.NetworkID,
		CrowdfundAddress: cf.Address,
		PartyAddress:     partyAddr.Hex(),
	}); err != nil {
		return statusError, err
	}

	l.logger.Debug("Linked crowdfund to party",
		zap.Int64("network_id", cf.NetworkID),
		zap.String("crowdfund", cf.Address),
		zap.String("party", partyAddr.Hex()))

	return statusLinked, nil
}

// markAttempted moves a crowdfund that could not be linked to the back of
// the queue. A failure here only delays the row, so it is logged.
func (l *Linker) markAttempted(ctx context.Context, cf party.Crowdfund) {
	if err := l.store.MarkLinkAttempted(ctx, cf.NetworkID, cf.Address); err != nil {
		l.logger.Warn("Failed to record crowdfund link attempt",
			zap.Int64("network_id", cf.NetworkID),
			zap.String("crowdfund", cf.Address),
			zap.Error(err))
	}
}

// Start starts a background goroutine that runs the backfill periodically
func (l *Linker) Start(interval time.Duration) {
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		l.logger.Info("Started crowdfund link backfill",
			zap.Duration("interval", interval),
			zap.Int64s("networks", l.networkIDs))

		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
				if _, err := l.RunOnce(ctx); err != nil {
					l.logger.Error("Crowdfund link backfill failed", zap.Error(err))
				}
				cancel()
			case <-l.stopCh:
				l.logger.Info("Stopping crowdfund link backfill")
				return
			}
		}
	}()
}

// Stop stops the periodic backfill and waits for a running batch to finish
func (l *Linker) Stop() {
	close(l.stopCh)
	l.wg.Wait()
}
