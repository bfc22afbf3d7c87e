package web

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"historycar/internal/config"
	"historycar/internal/controller"
	"historycar/internal/gateway"
	"historycar/internal/guard"
	"historycar/internal/session"
	"historycar/internal/websocket"
)

type Server struct {
	config   *config.Config
	sessions session.Store
	auth     *gateway.AuthGateway
	registry *controller.Registry
	hub      *websocket.Hub
}

func NewServer(cfg *config.Config, sessions session.Store, auth *gateway.AuthGateway, registry *controller.Registry, hub *websocket.Hub) *Server {
	return &Server{
		config:   cfg,
		sessions: sessions,
		auth:     auth,
		registry: registry,
		hub:      hub,
	}
}

// Routes assembles the full HTTP surface. Page routes sit behind the route
// guard; infrastructure endpoints stay outside it.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(MetricsMiddleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.config.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Get("/health", s.HealthCheckHandler)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/ws", s.ServeWsHandler)

	r.Group(func(r chi.Router) {
		r.Use(guard.Middleware(s.sessions))

		r.Get("/", s.HomeHandler)

		r.Route("/auth", func(r chi.Router) {
			r.Get("/login", s.LoginPageHandler)
			r.Post("/login", s.LoginHandler)
			r.Get("/register", s.RegisterPageHandler)
			r.Post("/register", s.RegisterHandler)
			r.Post("/logout", s.LogoutHandler)
			r.Get("/profile", s.ProfileHandler)
		})

		r.Get("/dashboard", s.DashboardHandler)

		r.Route("/vehicles", func(r chi.Router) {
			r.Get("/", s.VehiclesHandler)
			r.Post("/", s.CreateVehicleHandler)
			r.Delete("/{vehicleId}", s.DeleteVehicleHandler)
			r.Post("/{vehicleId}/maintenance", s.AddVehicleMaintenanceHandler)
		})

		r.Route("/maintenance", func(r chi.Router) {
			r.Get("/", s.MaintenanceHandler)
			r.Post("/", s.CreateMaintenanceHandler)
			r.Delete("/{recordId}", s.DeleteMaintenanceHandler)
		})
	})

	return r
}

// @Summary      Health check
// @Description  Reports whether the frontend service is up.
// @Tags         infra
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (s *Server) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("ERROR: failed to encode response: %v", err)
	}
}
