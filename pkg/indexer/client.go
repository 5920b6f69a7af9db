// Package indexer is an HTTP client for a remote party indexer. It serves the
// same search and link lookup operations as the local party index.
package indexer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/chainsafe/party-search/pkg/config"
	"github.com/chainsafe/party-search/pkg/party"
)

const (
	apiKeyHeader      = "X-API-Key"
	defaultTimeout    = 10 * time.Second
	maxErrorBodyBytes = 512
)

// Client talks to a remote party indexer
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// PartyRow is a party as returned by the indexer
type PartyRow struct {
	NetworkID   int64  `json:"network_id"`
	Address     string `json:"address"`
	DisplayName string `json:"display_name"`
}

// CrowdfundRow is a crowdfund as returned by the indexer
type CrowdfundRow struct {
	NetworkID    int64  `json:"network_id"`
	Address      string `json:"address"`
	PartyAddress string `json:"party_address"`
	DisplayName  string `json:"display_name"`
}

type partiesResponse struct {
	Parties []PartyRow `json:"parties"`
}

type crowdfundsResponse struct {
	Crowdfunds []CrowdfundRow `json:"crowdfunds"`
}

type linksRequest struct {
	Addresses []string `json:"addresses"`
}

type linksResponse struct {
	Parties map[string]string `json:"parties"`
}

// NewClient creates a new indexer client
func NewClient(cfg config.IndexerConfig) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// SearchParties returns parties whose display name contains name
func (c *Client) SearchParties(ctx context.Context, name string, limit int) ([]party.Party, error) {
	var resp partiesResponse
	if err := c.do(ctx, http.MethodGet, "/parties", searchQuery(name, limit), nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to search parties: %w", err)
	}

	out := make([]party.Party, 0, len(resp.Parties))
	for _, row := range resp.Parties {
		out = append(out, party.Party{
			NetworkID:   row.NetworkID,
			Address:     row.Address,
			DisplayName: row.DisplayName,
		})
	}
	return out, nil
}

// SearchCrowdfunds returns crowdfunds whose display name contains name
func (c *Client) SearchCrowdfunds(ctx context.Context, name string, limit int) ([]party.Crowdfund, error) {
	var resp crowdfundsResponse
	if err := c.do(ctx, http.MethodGet, "/crowdfunds", searchQuery(name, limit), nil, &resp); err != nil {
		return nil, fmt.Errorf("failed to search crowdfunds: %w", err)
	}

	out := make([]party.Crowdfund, 0, len(resp.Crowdfunds))
	for _, row := range resp.Crowdfunds {
		out = append(out, party.Crowdfund{
			NetworkID:    row.NetworkID,
			Address:      row.Address,
			PartyAddress: row.PartyAddress,
			DisplayName:  row.DisplayName,
		})
	}
	return out, nil
}

// GetPartyAddressesForCrowdfunds resolves crowdfund addresses to party addresses.
// The result is keyed as returned by the indexer.
func (c *Client) GetPartyAddressesForCrowdfunds(ctx context.Context, addresses []string) (party.CrowdfundToParty, error) {
	if len(addresses) == 0 {
		return party.CrowdfundToParty{}, nil
	}

	var resp linksResponse
	if err := c.do(ctx, http.MethodPost, "/crowdfunds/parties", nil, &linksRequest{Addresses: addresses}, &resp); err != nil {
		return nil, fmt.Errorf("failed to get party addresses for crowdfunds: %w", err)
	}

	out := make(party.CrowdfundToParty, len(resp.Parties))
	for cf, p := range resp.Parties {
		out[cf] = p
	}
	return out, nil
}

func searchQuery(name string, limit int) url.Values {
	q := url.Values{}
	q.Set("name", name)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return q
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, dst any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return fmt.Errorf("indexer returned status %d for %s %s: %s",
			resp.StatusCode, method, path, strings.TrimSpace(string(msg)))
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
