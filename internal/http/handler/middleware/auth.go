package middleware

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

type AuthMiddleware struct {
	logs      *zap.SugaredLogger
	validator TokenValidator
}

func NewAuthMiddleware(logger *zap.SugaredLogger, validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		logs:      logger,
		validator: validator,
	}
}

// Authorize gates every request behind token verification. The token is the
// raw Authorization header value, no scheme prefix is expected. A missing
// token rejects with 401, a failed verification with 403; valid claims are
// attached to the request context.
func (m *AuthMiddleware) Authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := ""
		if reqIdCtx := r.Context().Value(RequestIDKey); reqIdCtx != nil {
			requestId = reqIdCtx.(string)
		}

		token := r.Header.Get("Authorization")
		if token == "" {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			m.logs.Errorw("missing Authorization header",
				"path", r.URL.Path,
				"request_id", requestId)
			return
		}

		claims, err := m.validator.Validate(token)
		if err != nil {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			m.logs.Errorw("token verification failed",
				"error", err,
				"path", r.URL.Path,
				"request_id", requestId)
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
