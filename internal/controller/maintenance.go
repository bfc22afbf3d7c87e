package controller

import (
	"context"

	"historycar/internal/gateway"
	"historycar/internal/models"
)

// MaintenanceController drives the maintenance history screen. Deletes
// reconcile locally: the removed id is filtered out of state without a
// re-fetch, since the record list carries no server-derived aggregates.
type MaintenanceController struct {
	list   *Lifecycle[models.MaintenanceRecord]
	gw     *gateway.MaintenanceGateway
	token  string
	ctx    context.Context
	cancel context.CancelFunc
}

func NewMaintenanceController(gw *gateway.MaintenanceGateway, token string, onChange func(Snapshot[models.MaintenanceRecord])) *MaintenanceController {
	ctx, cancel := context.WithCancel(context.Background())
	c := &MaintenanceController{
		gw:     gw,
		token:  token,
		ctx:    ctx,
		cancel: cancel,
	}
	c.list = NewLifecycle(LifecycleConfig[models.MaintenanceRecord]{
		Fetch: func(ctx context.Context) gateway.Envelope[[]models.MaintenanceRecord] {
			return gw.List(ctx, token, nil)
		},
		IDOf:      func(r models.MaintenanceRecord) string { return r.ID },
		Reconcile: ReconcileRemoveLocal,
		OnChange:  onChange,
	})
	return c
}

func (c *MaintenanceController) State() Snapshot[models.MaintenanceRecord] {
	return c.list.Snapshot()
}

// ConsumeState is State plus notification consumption, for page reads.
func (c *MaintenanceController) ConsumeState() Snapshot[models.MaintenanceRecord] {
	return c.list.DrainState()
}

func (c *MaintenanceController) Load() {
	if c.list.Snapshot().Phase == PhaseIdle {
		c.list.Refresh(c.ctx)
	}
}

func (c *MaintenanceController) Reload() {
	c.list.Refresh(c.ctx)
}

func (c *MaintenanceController) OpenForm()  { c.list.OpenForm() }
func (c *MaintenanceController) CloseForm() { c.list.CloseForm() }

func (c *MaintenanceController) Create(data models.CreateMaintenanceData) bool {
	if !c.list.CreateInit() {
		return false
	}
	go func() {
		env := c.gw.Create(c.ctx, c.token, data)
		msg := env.Message
		if msg == "" {
			if env.Success {
				msg = "Registro criado com sucesso!"
			} else {
				msg = "Falha ao criar registro de manutenção."
			}
		}
		if c.list.ResolveCreate(env.Success, msg) {
			c.list.Refresh(c.ctx)
		}
	}()
	return true
}

func (c *MaintenanceController) Delete(id string, confirmed bool) bool {
	if !confirmed {
		return false
	}
	if !c.list.DeleteInit(id) {
		return false
	}
	go func() {
		env := c.gw.Delete(c.ctx, c.token, id)
		c.list.ResolveDelete(id, env, "Registro excluído com sucesso!")
	}()
	return true
}

func (c *MaintenanceController) Close() {
	c.list.Close()
	c.cancel()
}
