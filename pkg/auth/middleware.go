package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apperrors "github.com/chainsafe/party-search/pkg/app/errors"
	apphttp "github.com/chainsafe/party-search/pkg/app/http"
)

// TokenValidator validates bearer tokens
//
//go:generate mockery --name TokenValidator --output mocks --outpkg mocks --filename mock_token_validator.go --with-expecter
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (jwt.MapClaims, error)
}

// RequireBearer rejects requests without a valid "Authorization: Bearer" token.
// The token subject is stored in the request context.
func RequireBearer(v TokenValidator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				apphttp.WriteError(w, r, apperrors.UnAuthorizedError(nil, "missing bearer token"))
				return
			}

			claims, err := v.ValidateToken(r.Context(), token)
			if err != nil {
				logger.Debug("Rejected bearer token", zap.Error(err))
				apphttp.WriteError(w, r, apperrors.UnAuthorizedError(err, "invalid bearer token"))
				return
			}

			ctx := r.Context()
			if sub, err := claims.GetSubject(); err == nil && sub != "" {
				ctx = WithSubject(ctx, sub)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
