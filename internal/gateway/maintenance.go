package gateway

import (
	"context"
	"net/http"
	"net/url"

	"historycar/internal/models"
)

type MaintenanceGateway struct {
	c *Client
}

func NewMaintenanceGateway(c *Client) *MaintenanceGateway {
	return &MaintenanceGateway{c: c}
}

func (g *MaintenanceGateway) List(ctx context.Context, token string, filters url.Values) Envelope[[]models.MaintenanceRecord] {
	return exchange[[]models.MaintenanceRecord](g.c, ctx, http.MethodGet, "/maintenance/user", token, filters, nil)
}

func (g *MaintenanceGateway) Get(ctx context.Context, token, id string) Envelope[models.MaintenanceRecord] {
	return exchange[models.MaintenanceRecord](g.c, ctx, http.MethodGet, "/maintenance/"+url.PathEscape(id), token, nil, nil)
}

func (g *MaintenanceGateway) Create(ctx context.Context, token string, data models.CreateMaintenanceData) Envelope[models.MaintenanceRecord] {
	return exchange[models.MaintenanceRecord](g.c, ctx, http.MethodPost, "/maintenance/create", token, nil, data)
}

func (g *MaintenanceGateway) Update(ctx context.Context, token, id string, data models.UpdateMaintenanceData) Envelope[models.MaintenanceRecord] {
	return exchange[models.MaintenanceRecord](g.c, ctx, http.MethodPut, "/maintenance/"+url.PathEscape(id), token, nil, data)
}

func (g *MaintenanceGateway) Delete(ctx context.Context, token, id string) Envelope[struct{}] {
	return exchange[struct{}](g.c, ctx, http.MethodDelete, "/maintenance/"+url.PathEscape(id), token, nil, nil)
}
