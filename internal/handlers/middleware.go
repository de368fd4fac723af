package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/mdayat/prayer-surah-service/configs"
	"github.com/rs/zerolog/log"
)

type MiddlewareHandler interface {
	Logger(next http.Handler) http.Handler
	Authenticate(next http.Handler) http.Handler
}

type middleware struct {
	configs       configs.Configs
	authenticator Authenticator
}

func NewMiddlewareHandler(configs configs.Configs, authenticator Authenticator) MiddlewareHandler {
	return &middleware{
		configs:       configs,
		authenticator: authenticator,
	}
}

func (m middleware) Logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		subLogger := log.
			With().
			Str("request_id", uuid.New().String()).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Str("client_ip", req.RemoteAddr).
			Logger()

		req = req.WithContext(subLogger.WithContext(req.Context()))
		next.ServeHTTP(res, req)
	})
}

type userIdKey struct{}

func withUserId(ctx context.Context, userId uuid.UUID) context.Context {
	return context.WithValue(ctx, userIdKey{}, userId)
}

// UserIdFromContext returns the user resolved by Authenticate.
func UserIdFromContext(ctx context.Context) (uuid.UUID, bool) {
	userId, ok := ctx.Value(userIdKey{}).(uuid.UUID)
	return userId, ok
}

func (m middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		ctx := req.Context()
		logger := log.Ctx(ctx).With().Logger()

		userId, err := m.authenticator.Authenticate(req)
		if err != nil {
			logger.Error().Err(err).Caller().Int("status_code", http.StatusUnauthorized).Msg("failed to authenticate request")
			http.Error(res, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		req = req.WithContext(withUserId(ctx, userId))
		next.ServeHTTP(res, req)
	})
}
