package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns a middleware granting cross-origin access to every caller.
// Any origin, method, and request header is permitted, and credentials are
// allowed. Because Access-Control-Allow-Origin "*" is rejected by browsers
// when credentials are enabled, the allow function echoes the requesting
// origin instead of using the wildcard.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, _ string) bool {
			return true
		},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
