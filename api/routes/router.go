package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yallashop/yallashop-backend/api/controllers"
	"github.com/yallashop/yallashop-backend/api/middleware"
	cartsvc "github.com/yallashop/yallashop-backend/internal/cart"
	"github.com/yallashop/yallashop-backend/internal/catalog"
	"github.com/yallashop/yallashop-backend/pkg/config"
	"github.com/yallashop/yallashop-backend/pkg/logger"
	"github.com/yallashop/yallashop-backend/pkg/metrics"
	redispkg "github.com/yallashop/yallashop-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	cartStore redispkg.Pinger,
	cat *catalog.Catalog,
	cartService cartsvc.Service,
	httpMetrics *metrics.HTTPMetrics,
	gatherer prometheus.Gatherer,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, cartStore))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/products", func(r chi.Router) {
		r.Get("/", controllers.ProductList(cat, logg))
		r.Get("/facets", controllers.ProductFacets(cat, logg))
		r.Get("/{slug}", controllers.ProductDetail(cat, logg))
	})

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Use(middleware.CartToken(logg))
		r.Get("/", controllers.CartFetch(cartService, logg))
		r.Post("/items", controllers.CartAddItem(cartService, logg))
		r.Patch("/items/{productId}", controllers.CartUpdateItem(cartService, logg))
		r.Delete("/items/{productId}", controllers.CartRemoveItem(cartService, logg))
		r.Put("/visibility", controllers.CartSetVisibility(cartService, logg))
	})

	return r
}
