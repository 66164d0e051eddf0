package wire

import (
	"net/http"

	"campus-parking/internal/adaptor"
	"campus-parking/internal/data/repository"
	"campus-parking/internal/payment"
	"campus-parking/internal/usecase"
	"campus-parking/pkg/metrics"
	"campus-parking/pkg/middleware"
	"campus-parking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired router.
type App struct {
	Router *chi.Mux
}

// Wiring builds services and handlers on top of repo and mounts them.
func Wiring(repo *repository.Repository, provider payment.Provider, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, provider, logger)
	handler := adaptor.NewHandler(service, logger)

	metrics.Register()

	return &App{
		Router: setupRouter(handler, config, logger),
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	r.Route("/api/parking", func(r chi.Router) {
		wireSlot(r, handler.Slot)
		wireBooking(r, handler.Booking)
		wireReport(r, handler.Report)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, "OK", map[string]string{"app": config.App.Name})
	})

	r.Handle("/metrics", metrics.Handler())

	return r
}
