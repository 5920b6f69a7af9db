package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SearchRequestsTotal counts name searches by outcome
	SearchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "party_search_requests_total",
			Help: "Total number of party name searches",
		},
		[]string{"status"},
	)

	// SearchDuration tracks end to end search time
	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "party_search_duration_seconds",
			Help:    "Party name search duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// SearchResults tracks the number of rows returned per search
	SearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "party_search_results",
			Help:    "Number of reconciled rows returned per search",
			Buckets: []float64{0, 1, 5, 10, 20, 50, 100, 200},
		},
	)

	// LinkLookupsTotal counts batched crowdfund link lookups by outcome
	LinkLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "party_search_link_lookups_total",
			Help: "Total number of batched crowdfund to party link lookups",
		},
		[]string{"status"},
	)

	// SourceErrorsTotal counts data source failures by operation
	SourceErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "party_search_source_errors_total",
			Help: "Total number of search data source errors",
		},
		[]string{"operation"},
	)

	// FeeQuotesTotal counts fee quotes by outcome
	FeeQuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "party_fee_quotes_total",
			Help: "Total number of fee quotes",
		},
		[]string{"status"},
	)

	// LinksResolvedTotal counts crowdfund links resolved on chain by network and outcome
	LinksResolvedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "party_linker_links_total",
			Help: "Total number of crowdfund to party links resolved by the backfill worker",
		},
		[]string{"network", "status"},
	)

	// LinkerLastRun tracks the unix time of the last completed backfill pass
	LinkerLastRun = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "party_linker_last_run_timestamp_seconds",
			Help: "Unix time of the last completed link backfill pass",
		},
	)

	// IngestedRowsTotal counts rows written through the ingestion API
	IngestedRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "party_index_ingested_rows_total",
			Help: "Total number of rows written through the ingestion API",
		},
		[]string{"kind"},
	)
)
