package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/chainsafe/party-search/pkg/party"
)

const (
	serviceName = "SearchService"

	logNameMaxLen = 64
)

// logService wraps Service with automatic logging of all method calls
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the search Service.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

// SearchByName wraps the service method with logging
func (ls *logService) SearchByName(ctx context.Context, name string, limit int) (results []party.SearchResult, err error) {
	start := time.Now()

	ls.logger.Debug("SearchByName started",
		zap.String("service", serviceName),
		zap.String("method", "SearchByName"),
		zap.String("name", truncateString(name, logNameMaxLen)),
		zap.Int("limit", limit),
	)

	defer func() {
		duration := time.Since(start)

		if err != nil {
			ls.logger.Error("SearchByName failed",
				zap.String("service", serviceName),
				zap.String("method", "SearchByName"),
				zap.String("name", truncateString(name, logNameMaxLen)),
				zap.Duration("duration", duration),
				zap.Error(err),
			)
			return
		}

		ls.logger.Info("SearchByName completed",
			zap.String("service", serviceName),
			zap.String("method", "SearchByName"),
			zap.String("name", truncateString(name, logNameMaxLen)),
			zap.Int("results", len(results)),
			zap.Duration("duration", duration),
		)
	}()

	return ls.svc.SearchByName(ctx, name, limit)
}

// truncateString limits string length for logging to prevent log spam
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
