package apiapp

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/config"
	authsvc "github.com/Sagar2372004/punarmilan-backend-sub001/internal/services/auth"
	discoverysvc "github.com/Sagar2372004/punarmilan-backend-sub001/internal/services/discovery"
	"github.com/Sagar2372004/punarmilan-backend-sub001/internal/transport/http/handlers"
)

type Dependencies struct {
	DiscoveryService *discoverysvc.Service
	JWTManager       *authsvc.JWTManager
	Logger           *zap.Logger
	Config           config.Config
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler()
	discoverHandler := handlers.NewDiscoverHandler(deps.DiscoveryService)
	statsHandler := handlers.NewStatsHandler(deps.DiscoveryService)
	authMW := AuthMiddleware(deps.JWTManager, deps.Logger)

	r.Get("/healthz", healthHandler.Get)

	r.Route("/v1", func(r chi.Router) {
		r.With(authMW).Get("/discover", discoverHandler.Handle)
		r.With(authMW).Get("/discover/stats", statsHandler.Handle)
	})
}
