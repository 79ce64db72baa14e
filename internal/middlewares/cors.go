package middlewares

import (
	"net/http"

	"github.com/go-chi/cors"
	"github.com/saulo-duarte/planner-miniapp/internal/auth"
)

// Cors lets the Mini App page call the server from its own origin. Session
// cookies are only allowed when the origins are listed explicitly.
func Cors(allowedOrigins []string) func(http.Handler) http.Handler {
	credentials := true
	for _, o := range allowedOrigins {
		if o == "*" {
			credentials = false
		}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id", auth.InitDataHeader},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: credentials,
		MaxAge:           300,
	})
}
