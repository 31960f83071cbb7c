package routes

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gameshop/catalog-api/api/controllers"
	"github.com/gameshop/catalog-api/api/middleware"
	"github.com/gameshop/catalog-api/internal/brands"
	"github.com/gameshop/catalog-api/internal/categories"
	"github.com/gameshop/catalog-api/internal/images"
	"github.com/gameshop/catalog-api/internal/products"
	"github.com/gameshop/catalog-api/pkg/auth"
	"github.com/gameshop/catalog-api/pkg/config"
	"github.com/gameshop/catalog-api/pkg/logger"
	"github.com/gameshop/catalog-api/pkg/metrics"
	pkgredis "github.com/gameshop/catalog-api/pkg/redis"
)

// Deps carries everything the HTTP surface needs.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	Metrics     *metrics.HTTPMetrics
	DBPinger    controllers.Pinger
	Redis       *pkgredis.Client
	Idempotency pkgredis.IdempotencyStore
	Categories  categories.Service
	Brands      brands.Service
	Products    products.Service
	Images      images.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.Metrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))

		pingers := map[string]controllers.Pinger{"database": deps.DBPinger}
		if deps.Redis != nil {
			pingers["redis"] = deps.Redis
		}
		r.Get("/ready", controllers.HealthReady(cfg, logg, pingers))
	})

	r.Handle("/metrics", promhttp.Handler())

	// uploaded product images, served straight off disk
	imagesDir := filepath.Join(cfg.Blob.Root, "images")
	r.Handle("/images/*", http.StripPrefix("/images/", http.FileServer(http.Dir(imagesDir))))

	idempotencyStore := deps.Idempotency
	if idempotencyStore == nil && deps.Redis != nil {
		idempotencyStore = deps.Redis
	}
	idem := middleware.Idempotency(idempotencyStore, logg)

	// Idempotency runs after the credential checks so auth failures are never
	// recorded and keys are scoped to the authenticated user.
	adminOnly := func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.RequireRole(string(auth.RoleAdmin), logg))
		r.Use(idem)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/categories", func(r chi.Router) {
			r.Use(idem)

			r.Get("/", controllers.ListCategories(deps.Categories, logg))
			r.Get("/{id}", controllers.GetCategory(deps.Categories, logg))
			r.Post("/", controllers.CreateCategory(deps.Categories, logg))
			r.Put("/{id}", controllers.UpdateCategory(deps.Categories, logg))
			r.Delete("/{id}", controllers.DeleteCategory(deps.Categories, logg))
		})

		r.Route("/brands", func(r chi.Router) {
			r.Get("/", controllers.ListBrands(deps.Brands, logg))
			r.Get("/{id}", controllers.GetBrand(deps.Brands, logg))

			r.Group(func(r chi.Router) {
				adminOnly(r)
				r.Post("/", controllers.CreateBrand(deps.Brands, logg))
				r.Put("/{id}", controllers.UpdateBrand(deps.Brands, logg))
				r.Delete("/{id}", controllers.DeleteBrand(deps.Brands, logg))
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(deps.Products, logg))
			r.Get("/{id}", controllers.GetProduct(deps.Products, logg))
			r.Get("/{productId}/images", controllers.ListProductImages(deps.Images, logg))

			r.Group(func(r chi.Router) {
				adminOnly(r)
				r.Post("/", controllers.CreateProduct(deps.Products, logg))
				r.Put("/{id}", controllers.UpdateProduct(deps.Products, logg))
				r.Delete("/{id}", controllers.DeleteProduct(deps.Products, logg))
				r.Post("/{productId}/images", controllers.UploadProductImages(deps.Images, cfg.Blob.MaxUploadBytes(), logg))
				r.Delete("/images/{imageId}", controllers.DeleteProductImage(deps.Images, logg))
			})
		})
	})

	return r
}

// EnsureBlobRoot creates the public image directory tree at boot so the static
// file server has something to serve before the first upload.
func EnsureBlobRoot(cfg *config.Config) error {
	return os.MkdirAll(filepath.Join(cfg.Blob.Root, "images", "products"), 0o755)
}
