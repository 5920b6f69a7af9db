package fee

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/chainsafe/party-search/internal/metrics"
	apperrors "github.com/chainsafe/party-search/pkg/app/errors"
	apphttp "github.com/chainsafe/party-search/pkg/app/http"
)

// QuoteRequest is the body of POST /fees/quote.
type QuoteRequest struct {
	Price string          `json:"price" validate:"required"`
	Fees  []FeeRequestRow `json:"fees" validate:"dive"`
}

// FeeRequestRow is a single fee in a quote request.
type FeeRequestRow struct {
	Recipient   string `json:"recipient" validate:"required,eth_addr"`
	BasisPoints int64  `json:"basis_points" validate:"gte=0"`
}

// QuoteResponse is the body returned by POST /fees/quote.
type QuoteResponse struct {
	Price         decimal.Decimal  `json:"price"`
	Fees          []AmountResponse `json:"fees"`
	AdjustedPrice decimal.Decimal  `json:"adjusted_price"`
}

// AmountResponse is a single computed fee.
type AmountResponse struct {
	Recipient   string          `json:"recipient"`
	BasisPoints int64           `json:"basis_points"`
	Amount      decimal.Decimal `json:"amount"`
}

type handler struct {
	logger *zap.Logger
}

// RegisterRoutes registers the fee quote endpoint on the given chi router
func RegisterRoutes(r chi.Router, logger *zap.Logger) {
	h := &handler{logger: logger}
	r.Post("/fees/quote", apphttp.HandleError(h.quote))
}

func (h *handler) quote(w http.ResponseWriter, r *http.Request) error {
	var req QuoteRequest
	if err := apphttp.DecodeJSON(r, &req); err != nil {
		return err
	}

	price, err := ParsePrice(req.Price)
	if err != nil {
		return apperrors.BadRequestError(err, "invalid price")
	}

	fees := make([]Fee, 0, len(req.Fees))
	for _, row := range req.Fees {
		fees = append(fees, Fee{Recipient: row.Recipient, BasisPoints: row.BasisPoints})
	}

	q, err := Compute(price, fees)
	if err != nil {
		metrics.FeeQuotesTotal.WithLabelValues("rejected").Inc()
		if errors.Is(err, ErrInvalidState) {
			return apperrors.BadRequestError(err, "fees must be less than the price")
		}
		return apperrors.BadRequestError(err, err.Error())
	}
	metrics.FeeQuotesTotal.WithLabelValues("ok").Inc()

	h.logger.Debug("Fee quote computed",
		zap.String("price", q.Price.String()),
		zap.Int("fee_count", len(q.Fees)),
		zap.String("adjusted_price", q.AdjustedPrice.String()))

	apphttp.WriteJSON(w, http.StatusOK, toQuoteResponse(q))
	return nil
}

func toQuoteResponse(q *Quote) *QuoteResponse {
	resp := &QuoteResponse{
		Price:         q.Price,
		Fees:          make([]AmountResponse, 0, len(q.Fees)),
		AdjustedPrice: q.AdjustedPrice,
	}
	for _, a := range q.Fees {
		resp.Fees = append(resp.Fees, AmountResponse{
			Recipient:   a.Recipient,
			BasisPoints: a.BasisPoints,
			Amount:      a.Amount,
		})
	}
	return resp
}
