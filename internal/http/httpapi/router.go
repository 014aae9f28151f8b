package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"tfxlab/internal/http/handlers"
	"tfxlab/internal/infra"
	"tfxlab/internal/middleware"
)

// Options carries the router's cross-cutting knobs.
type Options struct {
	Logger             infra.Logger
	Sessions           middleware.SessionLoader
	AllowedOrigins     []string
	AnalyzerRatePerMin int
}

// NewRouter builds the route tree. Every route runs behind the session
// middleware; the analyzer additionally gets a per-IP rate limit.
func NewRouter(app *handlers.App, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimiddleware.RealIP,
		chimiddleware.Recoverer,
		middleware.Logger(opts.Logger),
		middleware.CORS(opts.AllowedOrigins),
		middleware.Session(opts.Sessions),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/auth", func(r chi.Router) {
		r.Post("/signup", app.AuthSignUp)
		r.Post("/login", app.AuthLogIn)
		r.Post("/google", app.AuthGoogle)
		r.Post("/logout", app.AuthLogOut)
	})

	r.Get("/v1/me", app.Me)

	r.Route("/v1/analyzer", func(r chi.Router) {
		if opts.AnalyzerRatePerMin > 0 {
			r.Use(middleware.RateLimit(opts.AnalyzerRatePerMin, time.Minute))
		}
		r.Post("/", app.AnalyzerRun)
		r.Get("/result", app.AnalyzerResult)
	})

	r.Get("/v1/notifications/current", app.NotificationsCurrent)

	r.Route("/v1/signals", func(r chi.Router) {
		r.Get("/", app.SignalsList)
		r.Post("/{id}/copy", app.SignalCopy)
	})

	r.Get("/v1/study", app.StudyList)
	r.Get("/v1/chart", app.Chart)
	r.Get("/v1/support", app.Support)

	return r
}
