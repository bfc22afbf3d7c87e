package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"historycar/internal/controller"
	"historycar/internal/models"
)

// pages resolves the controllers for the request's session. The guard only
// lets sessions with a token through, so a miss here means the middleware
// chain is misconfigured.
func (s *Server) pages(r *http.Request) (*controller.PageSet, bool) {
	token, ok := s.sessions.Token(r)
	if !ok {
		return nil, false
	}
	return s.registry.Pages(token), true
}

type mutationAccepted struct {
	Accepted bool   `json:"accepted"`
	Message  string `json:"message,omitempty"`
}

// @Summary      Dashboard view state
// @Description  Aggregated stats, the recent-maintenance list and the search filter. Passing refresh=true re-runs the fetches.
// @Tags         pages
// @Produce      json
// @Param        q        query     string  false  "Search term matched against vehicle label and service type"
// @Param        refresh  query     bool    false  "Force a re-fetch"
// @Success      200      {object}  controller.DashboardView
// @Failure      401      {string}  string "Unauthorized"
// @Router       /dashboard [get]
func (s *Server) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	pages, ok := s.pages(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if r.URL.Query().Get("refresh") == "true" {
		pages.Dashboard.Reload()
	} else {
		pages.Dashboard.Load()
	}

	view := pages.Dashboard.View(r.URL.Query().Get("q"), time.Now())
	writeJSON(w, http.StatusOK, view)
}

// @Summary      Vehicle list view state
// @Tags         pages
// @Produce      json
// @Param        refresh  query     bool  false  "Force a re-fetch"
// @Success      200      {object}  controller.Snapshot[models.Vehicle]
// @Failure      401      {string}  string "Unauthorized"
// @Router       /vehicles [get]
func (s *Server) VehiclesHandler(w http.ResponseWriter, r *http.Request) {
	pages, ok := s.pages(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if r.URL.Query().Get("refresh") == "true" {
		pages.Vehicles.Reload()
	} else {
		pages.Vehicles.Load()
	}
	writeJSON(w, http.StatusOK, pages.Vehicles.ConsumeState())
}

// @Summary      Create a vehicle
// @Description  Submits a new vehicle. The creation runs asynchronously; progress arrives over the websocket and in subsequent view-state reads.
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        data  body      models.CreateVehicleData  true  "Vehicle data"
// @Success      202   {object}  mutationAccepted
// @Failure      400   {string}  string "Invalid request body"
// @Failure      409   {string}  string "Another mutation is in flight"
// @Router       /vehicles [post]
func (s *Server) CreateVehicleHandler(w http.ResponseWriter, r *http.Request) {
	pages, ok := s.pages(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var data models.CreateVehicleData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	pages.Vehicles.OpenForm()
	if !pages.Vehicles.Create(data) {
		http.Error(w, "A submission is already in progress", http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusAccepted, mutationAccepted{Accepted: true})
}

// @Summary      Delete a vehicle
// @Description  Requires confirm=true, the explicit user confirmation. The list reconciles by re-fetching.
// @Tags         vehicles
// @Produce      json
// @Param        vehicleId  path      string  true  "Vehicle id"
// @Param        confirm    query     bool    true  "Explicit confirmation"
// @Success      202        {object}  mutationAccepted
// @Failure      400        {string}  string "Confirmation required"
// @Failure      409        {string}  string "Another delete is in flight"
// @Router       /vehicles/{vehicleId} [delete]
func (s *Server) DeleteVehicleHandler(w http.ResponseWriter, r *http.Request) {
	pages, ok := s.pages(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "vehicleId")
	confirmed := r.URL.Query().Get("confirm") == "true"
	if !confirmed {
		http.Error(w, "Confirmation required", http.StatusBadRequest)
		return
	}
	if !pages.Vehicles.Delete(id, confirmed) {
		http.Error(w, "Another delete is already in progress", http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusAccepted, mutationAccepted{Accepted: true})
}

// @Summary      Add a maintenance record for a vehicle
// @Tags         vehicles
// @Accept       json
// @Produce      json
// @Param        vehicleId  path      string                        true  "Vehicle id"
// @Param        data       body      models.CreateMaintenanceData  true  "Maintenance data"
// @Success      202        {object}  mutationAccepted
// @Failure      400        {string}  string "Invalid request body"
// @Router       /vehicles/{vehicleId}/maintenance [post]
func (s *Server) AddVehicleMaintenanceHandler(w http.ResponseWriter, r *http.Request) {
	pages, ok := s.pages(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var data models.CreateMaintenanceData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	data.CarFkID = chi.URLParam(r, "vehicleId")

	pages.Vehicles.OpenForm()
	if !pages.Vehicles.AddMaintenance(data) {
		http.Error(w, "A submission is already in progress", http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusAccepted, mutationAccepted{Accepted: true})
}

// @Summary      Maintenance list view state
// @Tags         pages
// @Produce      json
// @Param        refresh  query     bool  false  "Force a re-fetch"
// @Success      200      {object}  controller.Snapshot[models.MaintenanceRecord]
// @Failure      401      {string}  string "Unauthorized"
// @Router       /maintenance [get]
func (s *Server) MaintenanceHandler(w http.ResponseWriter, r *http.Request) {
	pages, ok := s.pages(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if r.URL.Query().Get("refresh") == "true" {
		pages.Maintenance.Reload()
	} else {
		pages.Maintenance.Load()
	}
	writeJSON(w, http.StatusOK, pages.Maintenance.ConsumeState())
}

// @Summary      Create a maintenance record
// @Tags         maintenance
// @Accept       json
// @Produce      json
// @Param        data  body      models.CreateMaintenanceData  true  "Maintenance data"
// @Success      202   {object}  mutationAccepted
// @Failure      400   {string}  string "Invalid request body"
// @Router       /maintenance [post]
func (s *Server) CreateMaintenanceHandler(w http.ResponseWriter, r *http.Request) {
	pages, ok := s.pages(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var data models.CreateMaintenanceData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	pages.Maintenance.OpenForm()
	if !pages.Maintenance.Create(data) {
		http.Error(w, "A submission is already in progress", http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusAccepted, mutationAccepted{Accepted: true})
}

// @Summary      Delete a maintenance record
// @Description  Requires confirm=true. The list reconciles locally, without a re-fetch.
// @Tags         maintenance
// @Produce      json
// @Param        recordId  path      string  true  "Record id"
// @Param        confirm   query     bool    true  "Explicit confirmation"
// @Success      202       {object}  mutationAccepted
// @Failure      400       {string}  string "Confirmation required"
// @Failure      409       {string}  string "Another delete is in flight"
// @Router       /maintenance/{recordId} [delete]
func (s *Server) DeleteMaintenanceHandler(w http.ResponseWriter, r *http.Request) {
	pages, ok := s.pages(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := chi.URLParam(r, "recordId")
	if r.URL.Query().Get("confirm") != "true" {
		http.Error(w, "Confirmation required", http.StatusBadRequest)
		return
	}
	if !pages.Maintenance.Delete(id, true) {
		http.Error(w, "Another delete is already in progress", http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusAccepted, mutationAccepted{Accepted: true})
}
