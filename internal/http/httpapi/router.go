package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"vibecraft/internal/http/handlers"
	"vibecraft/internal/middleware"
)

// Options configures the middleware stack around the handlers.
type Options struct {
	Logger          zerolog.Logger
	DefaultLocale   string
	AllowedOrigins  []string
	RateLimitPerMin int
	CountryLookup   middleware.CountryLookup
	// Metrics serves /metrics when set.
	Metrics http.Handler
}

func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		middleware.Logger(opts.Logger),
		chimw.Recoverer,
		middleware.CORS(opts.AllowedOrigins),
		middleware.I18N(opts.DefaultLocale, opts.CountryLookup),
	)

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics)
	}

	r.Route("/v1", func(r chi.Router) {
		r.Get("/healthz", app.Health)
		r.Get("/openapi.json", app.OpenAPIJSON)
		r.Get("/docs", app.OpenAPIDocs)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))

			r.Get("/catalog", app.Catalog)
			r.Post("/questions", app.Questions)

			r.Route("/blueprints", func(r chi.Router) {
				r.Post("/", app.BlueprintsCreate)
				r.Get("/", app.BlueprintsList)
				r.Get("/export", app.BlueprintsExport)
				r.Get("/{id}", app.BlueprintsGet)
				r.Delete("/{id}", app.BlueprintsDelete)
			})
		})
	})

	return r
}
