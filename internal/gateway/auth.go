package gateway

import (
	"context"
	"net/http"

	"historycar/internal/models"
)

// AuthGateway talks to the upstream user endpoints. Login and Register are the
// only calls in the system that go out without a session token.
type AuthGateway struct {
	c *Client
}

func NewAuthGateway(c *Client) *AuthGateway {
	return &AuthGateway{c: c}
}

func (g *AuthGateway) Login(ctx context.Context, creds models.LoginCredentials) Envelope[models.AuthResponse] {
	return exchangePublic[models.AuthResponse](g.c, ctx, http.MethodPost, "/user/auth", creds)
}

func (g *AuthGateway) Register(ctx context.Context, data models.RegisterData) Envelope[models.User] {
	return exchangePublic[models.User](g.c, ctx, http.MethodPost, "/user/register", data)
}

func (g *AuthGateway) Profile(ctx context.Context, token string) Envelope[models.User] {
	return exchange[models.User](g.c, ctx, http.MethodGet, "/user/profile", token, nil, nil)
}
