package wire

import (
	"net/http"
	"strings"

	"letterhead-service/internal/adaptor"
	"letterhead-service/internal/data/repository"
	"letterhead-service/internal/usecase"
	"letterhead-service/pkg/middleware"
	"letterhead-service/pkg/storage"
	"letterhead-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the assembled HTTP router.
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and the router from the repositories.
func Wiring(
	repo *repository.Repository,
	config *utils.Config,
	files *storage.LocalStorage,
	registry *prometheus.Registry,
	logger *zap.Logger,
) *App {
	tokens := utils.NewTokenManager(config.JWT)
	service := usecase.NewService(repo, tokens, files, logger)
	handler := adaptor.NewHandler(service, config.Upload.MaxBytes(), logger)

	metrics := middleware.NewHTTPMetrics(registry, config.Metrics.Prefix)
	router := setupRouter(handler, tokens, files.Dir(), metrics, registry, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	tokens utils.TokenVerifier,
	uploadDir string,
	metrics *middleware.HTTPMetrics,
	gatherer prometheus.Gatherer,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics(metrics))

	// Uploaded logos
	r.Handle(strings.TrimSuffix(usecase.UploadsPath, "/")+"/*", staticFiles(uploadDir))

	// Apply routes
	wireLetterhead(r, handler.Letterhead)
	wireAuth(r, handler.Auth, tokens, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r
}

// staticFiles serves files from dir under UploadsPath without directory listings.
func staticFiles(dir string) http.Handler {
	fs := http.StripPrefix(usecase.UploadsPath, http.FileServer(http.Dir(dir)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		fs.ServeHTTP(w, r)
	})
}
