package controller

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"historycar/internal/gateway"
	"historycar/internal/models"
)

// Publisher receives view-state snapshots to push to whoever is watching a
// session (the websocket hub in production).
type Publisher interface {
	Publish(sessionKey string, payload []byte)
}

// PageEvent is the payload pushed on every lifecycle transition.
type PageEvent struct {
	Page  string `json:"page"`
	State any    `json:"state"`
}

// PageSet holds the three page controllers belonging to one session.
type PageSet struct {
	Dashboard   *DashboardController
	Vehicles    *VehiclesController
	Maintenance *MaintenanceController
}

func (p *PageSet) close() {
	p.Dashboard.Close()
	p.Vehicles.Close()
	p.Maintenance.Close()
}

// Registry keys page controllers by session token. Controllers are created
// lazily on first visit and closed when the session ends, so late fetch
// resolutions for a logged-out session are dropped.
type Registry struct {
	mu          sync.Mutex
	sessions    map[string]*PageSet
	vehicles    *gateway.VehicleGateway
	maintenance *gateway.MaintenanceGateway
	pub         Publisher
}

func NewRegistry(vgw *gateway.VehicleGateway, mgw *gateway.MaintenanceGateway, pub Publisher) *Registry {
	return &Registry{
		sessions:    make(map[string]*PageSet),
		vehicles:    vgw,
		maintenance: mgw,
		pub:         pub,
	}
}

func (r *Registry) Pages(token string) *PageSet {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ps, ok := r.sessions[token]; ok {
		return ps
	}

	publish := func(page string, state any) {
		if r.pub == nil {
			return
		}
		payload, err := json.Marshal(PageEvent{Page: page, State: state})
		if err != nil {
			log.Printf("ERROR: failed to marshal %s page event: %v", page, err)
			return
		}
		r.pub.Publish(token, payload)
	}

	ps := &PageSet{
		Vehicles: NewVehiclesController(r.vehicles, r.maintenance, token, func(s Snapshot[models.Vehicle]) {
			publish("vehicles", s)
		}),
		Maintenance: NewMaintenanceController(r.maintenance, token, func(s Snapshot[models.MaintenanceRecord]) {
			publish("maintenance", s)
		}),
	}
	var dash *DashboardController
	dash = NewDashboardController(r.vehicles, r.maintenance, token, func() {
		publish("dashboard", dash.View("", time.Now()))
	})
	ps.Dashboard = dash

	r.sessions[token] = ps
	return ps
}

// Drop closes and forgets a session's controllers.
func (r *Registry) Drop(token string) {
	r.mu.Lock()
	ps, ok := r.sessions[token]
	if ok {
		delete(r.sessions, token)
	}
	r.mu.Unlock()
	if ok {
		ps.close()
	}
}

// Shutdown closes every session's controllers.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*PageSet)
	r.mu.Unlock()
	for _, ps := range sessions {
		ps.close()
	}
}
