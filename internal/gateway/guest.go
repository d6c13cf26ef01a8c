package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/AlessioVisconti/HotelBear/internal/domain/models"
)

type GuestGateway struct {
	Client *Client
}

func (g GuestGateway) Create(ctx context.Context, dto models.Guest) (models.Guest, error) {
	var out models.Guest
	err := g.Client.doJSON(ctx, http.MethodPost, "/api/guest", dto, &out, authRequired, "create guest")
	return out, err
}

func (g GuestGateway) Update(ctx context.Context, id string, dto models.Guest) (models.Guest, error) {
	var out models.Guest
	err := g.Client.doJSON(ctx, http.MethodPut, "/api/guest/"+url.PathEscape(id), dto, &out, authRequired, "update guest")
	return out, err
}

func (g GuestGateway) Delete(ctx context.Context, id string) error {
	return g.Client.doJSON(ctx, http.MethodDelete, "/api/guest/"+url.PathEscape(id), nil, nil, authRequired, "delete guest")
}
