package controller

import (
	"context"

	"historycar/internal/gateway"
	"historycar/internal/models"
)

// VehiclesController drives the vehicle list screen: list, create, delete,
// plus the "add maintenance for this vehicle" action the screen offers.
// Deletes reconcile by re-running the full fetch, so the list always reflects
// server-assigned state.
type VehiclesController struct {
	list        *Lifecycle[models.Vehicle]
	vehicles    *gateway.VehicleGateway
	maintenance *gateway.MaintenanceGateway
	token       string
	ctx         context.Context
	cancel      context.CancelFunc
}

func NewVehiclesController(vgw *gateway.VehicleGateway, mgw *gateway.MaintenanceGateway, token string, onChange func(Snapshot[models.Vehicle])) *VehiclesController {
	ctx, cancel := context.WithCancel(context.Background())
	c := &VehiclesController{
		vehicles:    vgw,
		maintenance: mgw,
		token:       token,
		ctx:         ctx,
		cancel:      cancel,
	}
	c.list = NewLifecycle(LifecycleConfig[models.Vehicle]{
		Fetch: func(ctx context.Context) gateway.Envelope[[]models.Vehicle] {
			return vgw.List(ctx, token, nil)
		},
		IDOf:      func(v models.Vehicle) string { return v.ID },
		Reconcile: ReconcileRefetch,
		OnChange:  onChange,
	})
	return c
}

func (c *VehiclesController) State() Snapshot[models.Vehicle] {
	return c.list.Snapshot()
}

// ConsumeState is State plus notification consumption, for page reads.
func (c *VehiclesController) ConsumeState() Snapshot[models.Vehicle] {
	return c.list.DrainState()
}

// Load fetches the list if it has never been fetched; Reload always does.
func (c *VehiclesController) Load() {
	if c.list.Snapshot().Phase == PhaseIdle {
		c.list.Refresh(c.ctx)
	}
}

func (c *VehiclesController) Reload() {
	c.list.Refresh(c.ctx)
}

func (c *VehiclesController) OpenForm()  { c.list.OpenForm() }
func (c *VehiclesController) CloseForm() { c.list.CloseForm() }

// Create submits a new vehicle. On success the form closes and the full list
// is re-fetched so server-assigned fields come back authoritative.
func (c *VehiclesController) Create(data models.CreateVehicleData) bool {
	if !c.list.CreateInit() {
		return false
	}
	go func() {
		env := c.vehicles.Create(c.ctx, c.token, data)
		msg := env.Message
		if msg == "" {
			if env.Success {
				msg = "Veículo adicionado com sucesso!"
			} else {
				msg = "Erro ao adicionar veículo."
			}
		}
		if c.list.ResolveCreate(env.Success, msg) {
			c.list.Refresh(c.ctx)
		}
	}()
	return true
}

// Delete removes a vehicle after explicit confirmation. At most one delete is
// in flight at a time.
func (c *VehiclesController) Delete(id string, confirmed bool) bool {
	if !confirmed {
		return false
	}
	if !c.list.DeleteInit(id) {
		return false
	}
	go func() {
		env := c.vehicles.Delete(c.ctx, c.token, id)
		if c.list.ResolveDelete(id, env, "Veículo excluído com sucesso!") {
			c.list.Refresh(c.ctx)
		}
	}()
	return true
}

// AddMaintenance creates a maintenance record against one of the listed
// vehicles. The vehicle list itself is untouched.
func (c *VehiclesController) AddMaintenance(data models.CreateMaintenanceData) bool {
	if !c.list.CreateInit() {
		return false
	}
	go func() {
		env := c.maintenance.Create(c.ctx, c.token, data)
		msg := env.Message
		if msg == "" {
			if env.Success {
				msg = "Manutenção adicionada com sucesso!"
			} else {
				msg = "Erro ao adicionar manutenção."
			}
		}
		c.list.ResolveCreate(env.Success, msg)
	}()
	return true
}

func (c *VehiclesController) Close() {
	c.list.Close()
	c.cancel()
}
