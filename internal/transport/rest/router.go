package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/erp-compare-backend/internal/transport/middleware"
)

// Handlers groups every REST handler mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Catalog  *CatalogHandler
	Systems  *SystemHandler
	Drafts   *DraftHandler
	Compare  *CompareHandler
	Glossary *GlossaryHandler
	Users    *UserAdminHandler
}

// RouterDeps holds the cross-cutting middleware wired around the API.
type RouterDeps struct {
	Logger      *slog.Logger
	Auth        middleware.Middleware
	CORS        middleware.Middleware
	Metrics     middleware.Middleware
	Loaders     middleware.Middleware
	AuthLimit   middleware.Middleware
	MetricsPage http.Handler
}

// NewRouter mounts all routes. Probes and /metrics bypass auth; everything
// under /api runs with the optional bearer auth and per-request loaders.
func NewRouter(h Handlers, deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logger(deps.Logger))
	use(r, deps.Metrics, deps.CORS)

	r.Get("/live", h.Health.Live)
	r.Get("/ready", h.Health.Ready)
	r.Get("/health", h.Health.Health)
	if deps.MetricsPage != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsPage)
	}

	r.Route("/api", func(r chi.Router) {
		use(r, deps.Auth, deps.Loaders)

		r.Group(func(r chi.Router) {
			use(r, deps.AuthLimit)
			r.Post("/auth/register", h.Auth.Register)
			r.Post("/auth/login", h.Auth.Login)
		})
		r.Get("/me", h.Auth.Me)

		r.Get("/catalog/{kind}", h.Catalog.Get)

		r.Route("/systems", func(r chi.Router) {
			r.Get("/", h.Systems.List)
			r.Post("/", h.Systems.Create)
			r.Get("/form", h.Systems.NewForm)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.Systems.Get)
				r.Put("/", h.Systems.Update)
				r.Delete("/", h.Systems.Delete)
				r.Get("/form", h.Systems.EditForm)
				r.Get("/history", h.Systems.History)
				r.Post("/submit", h.Systems.Submit)
				r.Post("/review", h.Systems.Review)
			})
		})

		r.Route("/drafts/{entityKey}", func(r chi.Router) {
			r.Get("/", h.Drafts.Get)
			r.Put("/", h.Drafts.Save)
			r.Delete("/", h.Drafts.Discard)
		})

		r.Get("/compare", h.Compare.Compare)
		r.Route("/compare/sessions", func(r chi.Router) {
			r.Post("/", h.Compare.CreateSession)
			r.Route("/{sid}", func(r chi.Router) {
				r.Get("/", h.Compare.GetSession)
				r.Get("/matrix", h.Compare.SessionMatrix)
				r.Post("/systems", h.Compare.AddSystem)
				r.Delete("/systems", h.Compare.ClearSession)
				r.Delete("/systems/{id}", h.Compare.RemoveSystem)
			})
		})

		r.Get("/glossary", h.Glossary.List)
		r.Get("/glossary/{slug}", h.Glossary.Get)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.RequireAdmin)

			r.Get("/modules", h.Catalog.ListModules)
			r.Post("/modules", h.Catalog.CreateModule)
			r.Put("/modules/{id}", h.Catalog.UpdateModule)
			r.Delete("/modules/{id}", h.Catalog.DeleteModule)
			r.Get("/modules/{id}/fields", h.Catalog.ListModuleFields)
			r.Post("/fields", h.Catalog.CreateField)
			r.Put("/fields/{id}", h.Catalog.UpdateField)
			r.Delete("/fields/{id}", h.Catalog.DeleteField)
			r.Get("/catalog/{kind}/export", h.Catalog.Export)
			r.Post("/catalog/import", h.Catalog.Import)

			r.Post("/glossary", h.Glossary.Create)
			r.Put("/glossary/{id}", h.Glossary.Update)
			r.Delete("/glossary/{id}", h.Glossary.Delete)

			r.Put("/users/{id}/role", h.Users.SetRole)
		})
	})

	return r
}

// use installs the non-nil middlewares in order.
func use(r chi.Router, mws ...middleware.Middleware) {
	for _, mw := range mws {
		if mw != nil {
			r.Use(mw)
		}
	}
}
