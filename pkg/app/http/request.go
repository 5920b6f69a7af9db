package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/chainsafe/party-search/pkg/app/errors"
)

const maxRequestBodyBytes = 1 << 20 // 1MB

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeJSON reads a JSON request body into dst and runs its `validate` struct
// tags. Failures are returned as bad request errors.
func DecodeJSON(r *http.Request, dst any) error {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		return apperrors.BadRequestError(err, "failed to read request")
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return apperrors.BadRequestError(err, "invalid JSON")
	}

	return Validate(dst)
}

// Validate runs the `validate` struct tags of dst.
func Validate(dst any) error {
	if err := validate.Struct(dst); err != nil {
		return apperrors.BadRequestError(err, validationMessage(err))
	}
	return nil
}

// validationMessage renders validator errors as "field: tag" pairs.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request"
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %s", fe.Namespace(), fe.Tag()))
	}
	return "invalid request: " + strings.Join(msgs, "; ")
}

// QueryInt parses an optional integer query parameter. A missing or empty
// parameter yields 0.
func QueryInt(query url.Values, key string) (int, error) {
	raw := strings.TrimSpace(query.Get(key))
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperrors.BadRequestError(err, fmt.Sprintf("invalid %s", key))
	}
	return n, nil
}

// WriteJSON writes data as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
