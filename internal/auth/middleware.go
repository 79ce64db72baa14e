package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/saulo-duarte/planner-miniapp/internal/config"
)

type contextKey string

const (
	userIDKey contextKey = "tguser_id"

	SessionCookie  = "session"
	InitDataHeader = "X-Telegram-Init-Data"
)

var ErrUnauthenticated = errors.New("unauthenticated")

func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(userIDKey).(int64)
	if !ok || id == 0 {
		return 0, ErrUnauthenticated
	}
	return id, nil
}

// Middleware resolves the caller's Telegram id once per request. Signed
// initData in the header wins over a session token (bearer or cookie), so a
// stale session never shadows the user Telegram vouches for now. Without
// either, the configured fallback applies, if any.
func Middleware(resolver *Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := config.WithContext(r.Context())

			initData := r.Header.Get(InitDataHeader)
			if token := sessionToken(r); token != "" && initData == "" {
				claims, err := ValidateJWT(token)
				if err != nil {
					log.WithError(err).Warn("Rejected session token")
					http.Error(w, "unauthorized", http.StatusUnauthorized)
					return
				}
				next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), claims.UserID)))
				return
			}

			identity, err := resolver.Resolve(initData)
			if err != nil {
				log.WithError(err).Warn("Could not resolve Telegram user")
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), identity.UserID)))
		})
	}
}

func sessionToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}
