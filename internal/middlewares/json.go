package middlewares

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// JSONOnly answers 415 to requests whose body is not application/json.
// Requests without a body pass through.
func JSONOnly(next http.Handler) http.Handler {
	return middleware.AllowContentType("application/json")(next)
}
