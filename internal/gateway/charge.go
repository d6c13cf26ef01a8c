package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/AlessioVisconti/HotelBear/internal/domain/models"
)

type ChargeGateway struct {
	Client *Client
}

func (g ChargeGateway) Create(ctx context.Context, dto models.Charge) (models.Charge, error) {
	var out models.Charge
	err := g.Client.doJSON(ctx, http.MethodPost, "/api/charge", dto, &out, authRequired, "create charge")
	return out, err
}

func (g ChargeGateway) Update(ctx context.Context, id string, dto models.Charge) (models.Charge, error) {
	var out models.Charge
	err := g.Client.doJSON(ctx, http.MethodPut, "/api/charge/"+url.PathEscape(id), dto, &out, authRequired, "update charge")
	return out, err
}

func (g ChargeGateway) Delete(ctx context.Context, id string) error {
	return g.Client.doJSON(ctx, http.MethodDelete, "/api/charge/"+url.PathEscape(id), nil, nil, authRequired, "delete charge")
}
