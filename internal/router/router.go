package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/GregMSThompson/travel-admin/internal/handlers"
	"github.com/GregMSThompson/travel-admin/internal/middleware"
)

type Options struct {
	Auth         func(http.Handler) http.Handler
	RequestLog   func(http.Handler) http.Handler
	LoginLimit   func(http.Handler) http.Handler
	AllowOrigins []string
}

func NewRouter(deps *handlers.Deps, opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	if opts.RequestLog != nil {
		r.Use(opts.RequestLog)
	}
	r.Use(chimiddleware.Recoverer)

	pkh := handlers.NewPackageHandlers(deps)
	tsh := handlers.NewTestimonialHandlers(deps)
	hlh := handlers.NewHighlightHandlers(deps)
	ath := handlers.NewAuthHandlers(deps)
	sth := handlers.NewSettingsHandlers(deps)
	dbh := handlers.NewDashboardHandlers(deps)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/auth", func(r chi.Router) {
		r.With(orPass(opts.LoginLimit)).Post("/login", ath.Login)
		r.With(opts.Auth).Post("/logout", ath.Logout)
	})

	r.Mount("/packages", pkh.PackageRoutes(opts.Auth))
	r.Mount("/testimonials", tsh.TestimonialRoutes(opts.Auth))
	r.Mount("/destination-highlights", hlh.HighlightRoutes(opts.Auth))

	r.Group(func(r chi.Router) {
		r.Use(opts.Auth)
		r.Mount("/settings", sth.SettingsRoutes())
		r.Mount("/dashboard", dbh.DashboardRoutes())
	})

	return cors.New(cors.Options{
		AllowedOrigins: opts.AllowOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "If-Match"},
		ExposedHeaders: []string{chimiddleware.RequestIDHeader},
	}).Handler(r)
}

// WithMiddleware fills Options from the application middleware.
func WithMiddleware(mw *middleware.Middleware, logMw func(http.Handler) http.Handler, limiter *middleware.RateLimiter, origins []string) Options {
	opts := Options{Auth: mw.FirebaseAuth, RequestLog: logMw, AllowOrigins: origins}
	if limiter != nil {
		opts.LoginLimit = limiter.Limit
	}
	return opts
}

func orPass(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if mw == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return mw
}
