package gateway

import (
	"context"
	"net/http"
	"net/url"

	"historycar/internal/models"
)

type VehicleGateway struct {
	c *Client
}

func NewVehicleGateway(c *Client) *VehicleGateway {
	return &VehicleGateway{c: c}
}

func (g *VehicleGateway) List(ctx context.Context, token string, filters url.Values) Envelope[[]models.Vehicle] {
	return exchange[[]models.Vehicle](g.c, ctx, http.MethodGet, "/car/user", token, filters, nil)
}

func (g *VehicleGateway) Get(ctx context.Context, token, id string) Envelope[models.Vehicle] {
	return exchange[models.Vehicle](g.c, ctx, http.MethodGet, "/vehicles/"+url.PathEscape(id), token, nil, nil)
}

func (g *VehicleGateway) Create(ctx context.Context, token string, data models.CreateVehicleData) Envelope[models.Vehicle] {
	return exchange[models.Vehicle](g.c, ctx, http.MethodPost, "/car/create", token, nil, data)
}

// Update exists upstream but no screen wires vehicle editing yet.
func (g *VehicleGateway) Update(ctx context.Context, token, id string, data models.UpdateVehicleData) Envelope[models.Vehicle] {
	return exchange[models.Vehicle](g.c, ctx, http.MethodPut, "/vehicles/"+url.PathEscape(id), token, nil, data)
}

func (g *VehicleGateway) Delete(ctx context.Context, token, id string) Envelope[struct{}] {
	return exchange[struct{}](g.c, ctx, http.MethodDelete, "/car/delete/"+url.PathEscape(id), token, nil, nil)
}
