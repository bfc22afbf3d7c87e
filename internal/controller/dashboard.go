package controller

import (
	"context"
	"strconv"
	"time"

	"historycar/internal/gateway"
	"historycar/internal/models"
)

// Stat is one dashboard counter. When the fetch behind it failed, Err is set
// and Value stays empty: the renderer shows an explicit error marker, never a
// silent zero.
type Stat struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Err   bool   `json:"err,omitempty"`
}

// DashboardView is the derived view state for the dashboard screen. Every
// field is a pure function of the last successful fetches and the search term.
type DashboardView struct {
	Phase  Phase                      `json:"phase"`
	Error  string                     `json:"error,omitempty"`
	Stats  []Stat                     `json:"stats"`
	Recent []models.MaintenanceRecord `json:"recent"`
	Search string                     `json:"search"`
}

const recentLimit = 5

// DashboardController aggregates the vehicle and maintenance collections. It
// owns no mutations; both lists are read-only on this screen.
type DashboardController struct {
	vehicles *Lifecycle[models.Vehicle]
	records  *Lifecycle[models.MaintenanceRecord]
	ctx      context.Context
	cancel   context.CancelFunc
}

func NewDashboardController(vgw *gateway.VehicleGateway, mgw *gateway.MaintenanceGateway, token string, onChange func()) *DashboardController {
	ctx, cancel := context.WithCancel(context.Background())
	c := &DashboardController{ctx: ctx, cancel: cancel}
	c.vehicles = NewLifecycle(LifecycleConfig[models.Vehicle]{
		Fetch: func(ctx context.Context) gateway.Envelope[[]models.Vehicle] {
			return vgw.List(ctx, token, nil)
		},
		IDOf: func(v models.Vehicle) string { return v.ID },
		OnChange: func(Snapshot[models.Vehicle]) {
			if onChange != nil {
				onChange()
			}
		},
	})
	c.records = NewLifecycle(LifecycleConfig[models.MaintenanceRecord]{
		Fetch: func(ctx context.Context) gateway.Envelope[[]models.MaintenanceRecord] {
			return mgw.List(ctx, token, nil)
		},
		IDOf: func(r models.MaintenanceRecord) string { return r.ID },
		OnChange: func(Snapshot[models.MaintenanceRecord]) {
			if onChange != nil {
				onChange()
			}
		},
	})
	return c
}

func (c *DashboardController) Load() {
	if c.vehicles.Snapshot().Phase == PhaseIdle {
		c.vehicles.Refresh(c.ctx)
	}
	if c.records.Snapshot().Phase == PhaseIdle {
		c.records.Refresh(c.ctx)
	}
}

func (c *DashboardController) Reload() {
	c.vehicles.Refresh(c.ctx)
	c.records.Refresh(c.ctx)
}

// View derives the dashboard state for the given search term.
func (c *DashboardController) View(term string, now time.Time) DashboardView {
	vs := c.vehicles.Snapshot()
	rs := c.records.Snapshot()

	view := DashboardView{
		Phase:  combinePhases(vs.Phase, rs.Phase),
		Search: term,
		Stats:  make([]Stat, 0, 3),
	}
	switch {
	case vs.Phase == PhaseFailed:
		view.Error = vs.Error
	case rs.Phase == PhaseFailed:
		view.Error = rs.Error
	}

	if vs.Phase == PhaseFailed {
		view.Stats = append(view.Stats, Stat{Name: "Total Vehicles", Err: true})
	} else {
		view.Stats = append(view.Stats, Stat{Name: "Total Vehicles", Value: strconv.Itoa(len(vs.Items))})
	}
	if rs.Phase == PhaseFailed {
		view.Stats = append(view.Stats,
			Stat{Name: "Maintenance Records", Err: true},
			Stat{Name: "Upcoming Services", Err: true},
		)
	} else {
		view.Stats = append(view.Stats,
			Stat{Name: "Maintenance Records", Value: strconv.Itoa(len(rs.Items))},
			Stat{Name: "Upcoming Services", Value: strconv.Itoa(UpcomingCount(rs.Items, now))},
		)
	}

	filtered := FilterRecords(rs.Items, term)
	view.Recent = RecentRecords(filtered, recentLimit)
	return view
}

func (c *DashboardController) Close() {
	c.vehicles.Close()
	c.records.Close()
	c.cancel()
}

func combinePhases(a, b Phase) Phase {
	switch {
	case a == PhaseLoading || b == PhaseLoading:
		return PhaseLoading
	case a == PhaseFailed || b == PhaseFailed:
		return PhaseFailed
	case a == PhaseReady && b == PhaseReady:
		return PhaseReady
	default:
		return PhaseIdle
	}
}

