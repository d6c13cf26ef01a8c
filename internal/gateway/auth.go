package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/AlessioVisconti/HotelBear/internal/domain/models"
)

type AuthGateway struct {
	Client *Client
}

func (g AuthGateway) Login(ctx context.Context, dto models.Login) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := g.Client.doJSON(ctx, http.MethodPost, "/api/auth/login", dto, &out, authNone, "login")
	return out, err
}

func (g AuthGateway) RegisterCustomer(ctx context.Context, dto models.RegisterCustomer) (models.AuthResponse, error) {
	var out models.AuthResponse
	err := g.Client.doJSON(ctx, http.MethodPost, "/api/auth/register/customer", dto, &out, authNone, "register customer")
	return out, err
}

// RegisterStaff is admin-only and therefore bearer-gated.
func (g AuthGateway) RegisterStaff(ctx context.Context, dto models.RegisterStaff) (models.StaffUser, error) {
	var out models.StaffUser
	err := g.Client.doJSON(ctx, http.MethodPost, "/api/auth/register/staff", dto, &out, authRequired, "register staff")
	return out, err
}

func (g AuthGateway) ListStaff(ctx context.Context) ([]models.StaffUser, error) {
	var out []models.StaffUser
	err := g.Client.doJSON(ctx, http.MethodGet, "/api/auth/staff", nil, &out, authRequired, "list staff")
	return out, err
}

func (g AuthGateway) DeactivateStaff(ctx context.Context, id string) error {
	return g.Client.doJSON(ctx, http.MethodPut, "/api/auth/staff/"+url.PathEscape(id)+"/deactivate", nil, nil, authRequired, "deactivate staff")
}

func (g AuthGateway) ReactivateStaff(ctx context.Context, id string) error {
	return g.Client.doJSON(ctx, http.MethodPut, "/api/auth/staff/"+url.PathEscape(id)+"/reactivate", nil, nil, authRequired, "reactivate staff")
}
