// @title           HistoryCar Web Frontend
// @version         1.0
// @host            localhost
// @schemes         http https
// @BasePath        /
package main

import (
	"log"
	"net/http"

	"historycar/internal/config"
	"historycar/internal/controller"
	"historycar/internal/gateway"
	"historycar/internal/session"
	"historycar/internal/web"
	"historycar/internal/websocket"

	_ "historycar/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Cannot load configuration: %v", err)
	}

	client := gateway.NewClient(cfg.API.BaseURL, cfg.API.Timeout)
	log.Printf("HistoryCar API at %s", cfg.API.BaseURL)

	wsHub := websocket.NewHub()
	go wsHub.Run()

	sessions := session.NewCookieStore(cfg.Session.CookieName, cfg.Session.Secure)
	registry := controller.NewRegistry(
		gateway.NewVehicleGateway(client),
		gateway.NewMaintenanceGateway(client),
		wsHub,
	)
	defer registry.Shutdown()

	server := web.NewServer(cfg, sessions, gateway.NewAuthGateway(client), registry, wsHub)

	r := server.Routes()
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://"+cfg.AppHost+"/swagger/doc.json"),
	))

	log.Printf("Starting server on %s", cfg.Listen)
	if err := http.ListenAndServe(cfg.Listen, r); err != nil {
		log.Fatalf("Cannot start server: %v", err)
	}
}
