package ingest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/party-search/pkg/app/http"
	"github.com/chainsafe/party-search/pkg/party"
)

// PartiesRequest is the body of POST /index/parties
type PartiesRequest struct {
	Parties []PartyRow `json:"parties" validate:"required,min=1,max=1000,dive"`
}

// PartyRow is a single party to index
type PartyRow struct {
	NetworkID   int64  `json:"network_id" validate:"gt=0"`
	Address     string `json:"address" validate:"required,eth_addr"`
	DisplayName string `json:"display_name" validate:"max=256"`
}

// CrowdfundsRequest is the body of POST /index/crowdfunds
type CrowdfundsRequest struct {
	Crowdfunds []CrowdfundRow `json:"crowdfunds" validate:"required,min=1,max=1000,dive"`
}

// CrowdfundRow is a single crowdfund to index
type CrowdfundRow struct {
	NetworkID    int64  `json:"network_id" validate:"gt=0"`
	Address      string `json:"address" validate:"required,eth_addr"`
	PartyAddress string `json:"party_address" validate:"omitempty,eth_addr"`
	DisplayName  string `json:"display_name" validate:"max=256"`
}

// IndexedResponse reports how many rows were written
type IndexedResponse struct {
	Indexed int `json:"indexed"`
}

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers the ingestion endpoints on the given chi router.
// Callers are expected to mount the router behind authentication.
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Post("/index/parties", apphttp.HandleError(h.indexParties))
	r.Post("/index/crowdfunds", apphttp.HandleError(h.indexCrowdfunds))
}

func (h *HTTP) indexParties(w http.ResponseWriter, r *http.Request) error {
	var req PartiesRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	parties := make([]party.Party, 0, len(req.Parties))
	for _, row := range req.Parties {
		parties = append(parties, party.Party{
			NetworkID:   row.NetworkID,
			Address:     row.Address,
			DisplayName: row.DisplayName,
		})
	}

	n, err := h.service.IndexParties(r.Context(), parties)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, &IndexedResponse{Indexed: n})
	return nil
}

func (h *HTTP) indexCrowdfunds(w http.ResponseWriter, r *http.Request) error {
	var req CrowdfundsRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	crowdfunds := make([]party.Crowdfund, 0, len(req.Crowdfunds))
	for _, row := range req.Crowdfunds {
		crowdfunds = append(crowdfunds, party.Crowdfund{
			NetworkID:    row.NetworkID,
			Address:      row.Address,
			PartyAddress: row.PartyAddress,
			DisplayName:  row.DisplayName,
		})
	}

	n, err := h.service.IndexCrowdfunds(r.Context(), crowdfunds)
	if err != nil {
		return err
	}

	apphttp.WriteJSON(w, http.StatusOK, &IndexedResponse{Indexed: n})
	return nil
}
