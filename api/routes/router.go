package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/arbuz-storefront/api/controllers"
	"github.com/angelmondragon/arbuz-storefront/api/middleware"
	"github.com/angelmondragon/arbuz-storefront/pkg/config"
	"github.com/angelmondragon/arbuz-storefront/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	svc controllers.Storefront,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.HTTP.AllowedOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, svc))
	})

	if cfg.Metrics.Enabled && gatherer != nil {
		r.Method(http.MethodGet, cfg.Metrics.Path, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/", controllers.CatalogList(svc))
			r.Post("/{productId}/toggle", controllers.CatalogToggle(svc, logg))
			r.Put("/{productId}/quantity", controllers.CatalogSetQuantity(svc, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartList(svc))
			r.Post("/add-selected", controllers.CartAddSelected(svc))
		})

		r.Route("/order-form", func(r chi.Router) {
			r.Get("/", controllers.OrderFormFetch(svc))
			r.Patch("/", controllers.OrderFormUpdate(svc, logg))
			r.Post("/open", controllers.OrderFormOpen(svc))
			r.Post("/close", controllers.OrderFormClose(svc))
			r.Post("/confirm", controllers.OrderFormConfirm(svc, logg))
		})
	})

	return r
}
