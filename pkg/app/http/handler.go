// Package http holds the request decoding, response writing and server
// lifecycle helpers shared by the HTTP handlers.
package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	apperrors "github.com/chainsafe/party-search/pkg/app/errors"
)

// HandlerFunc is an http.HandlerFunc that reports failure by returning an error
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// ErrorResponse is the body written for every failed request
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      int    `json:"code"`
	RequestID string `json:"request_id,omitempty"`
}

// HandleError adapts h to http.HandlerFunc, writing any returned error with WriteError.
//
//	r.Get("/search", apphttp.HandleError(h.search))
func HandleError(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			WriteError(w, r, err)
		}
	}
}

// WriteError writes err as an ErrorResponse. Errors that are not a
// ServiceError are reported as a general error without their details.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	var svcErr *apperrors.ServiceError
	if !errors.As(err, &svcErr) {
		_ = errors.As(apperrors.GeneralError(err), &svcErr)
	}

	WriteJSON(w, svcErr.StatusCode(), &ErrorResponse{
		Error:     svcErr.Message,
		Code:      svcErr.StatusCode(),
		RequestID: middleware.GetReqID(r.Context()),
	})
}

// NotFound answers requests for unknown routes
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, apperrors.ResourceNotFoundError(nil, "route not found"))
}

// MethodNotAllowed answers requests whose method the route does not accept
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteError(w, r, apperrors.NotSupportedError(nil, "method not allowed"))
}
