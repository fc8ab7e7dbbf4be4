package api

import (
	"net/http"

	"github.com/dskvich/image-api/pkg/api/handlers"
	"github.com/rs/cors"
)

// NewRouter assembles the HTTP surface. diagnostics may be nil when the
// service runs without a database.
func NewRouter(generator handlers.ImageGenerator, diagnostics handlers.DatabaseDiagnostics) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handlers.Root())
	mux.HandleFunc("GET /api/hello", handlers.Hello())
	mux.HandleFunc("GET /test", handlers.Health(diagnostics))
	mux.HandleFunc("POST /api/generate", handlers.Generate(generator))

	var h http.Handler = mux
	h = logRequests(h)
	h = requestID(h)

	return cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(h)
}
