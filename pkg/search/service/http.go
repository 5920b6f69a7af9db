package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	apphttp "github.com/chainsafe/party-search/pkg/app/http"
	"github.com/chainsafe/party-search/pkg/party"
)

// SearchRequest holds the query parameters of GET /search.
type SearchRequest struct {
	Name  string
	Limit int `validate:"gte=0"`
}

// SearchResponse is the body returned by GET /search.
type SearchResponse struct {
	Results []party.SearchResult `json:"results"`
}

// HTTP wraps the Service to provide HTTP endpoints
type HTTP struct {
	service Service
	logger  *zap.Logger
}

// RegisterRoutes registers HTTP endpoints for the search service on the given chi router
func RegisterRoutes(r chi.Router, service Service, logger *zap.Logger) {
	h := &HTTP{
		service: service,
		logger:  logger,
	}

	r.Get("/search", apphttp.HandleError(h.search))
}

func (h *HTTP) search(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()

	limit, err := apphttp.QueryInt(query, "limit")
	if err != nil {
		return err
	}

	req := SearchRequest{
		Name:  query.Get("name"),
		Limit: limit,
	}
	if err := apphttp.Validate(&req); err != nil {
		return err
	}

	results, err := h.service.SearchByName(r.Context(), req.Name, req.Limit)
	if err != nil {
		return err
	}
	if results == nil {
		results = []party.SearchResult{}
	}

	apphttp.WriteJSON(w, http.StatusOK, &SearchResponse{Results: results})
	return nil
}
