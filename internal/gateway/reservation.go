package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/AlessioVisconti/HotelBear/internal/domain/models"
)

type ReservationGateway struct {
	Client *Client
}

func (g ReservationGateway) GetByID(ctx context.Context, id string) (models.ReservationDetail, error) {
	var out models.ReservationDetail
	err := g.Client.doJSON(ctx, http.MethodGet, "/api/reservation/"+url.PathEscape(id), nil, &out, authRequired, "reservation detail")
	return out, err
}

// Create carries the token only when a session exists: customers may book
// anonymously, staff bookings are attributed server-side.
func (g ReservationGateway) Create(ctx context.Context, dto models.CreateReservation) (models.ReservationDetail, error) {
	var out models.ReservationDetail
	err := g.Client.doJSON(ctx, http.MethodPost, "/api/reservation", dto, &out, authOptional, "create reservation")
	return out, err
}

func (g ReservationGateway) Update(ctx context.Context, id string, dto models.UpdateReservation) (models.ReservationDetail, error) {
	var out models.ReservationDetail
	err := g.Client.doJSON(ctx, http.MethodPut, "/api/reservation/"+url.PathEscape(id), dto, &out, authRequired, "update reservation")
	return out, err
}

// Cancel is the reservation "delete": the server flips status to Cancelled
// rather than removing the record.
func (g ReservationGateway) Cancel(ctx context.Context, id string) error {
	return g.Client.doJSON(ctx, http.MethodDelete, "/api/reservation/"+url.PathEscape(id), nil, nil, authRequired, "cancel reservation")
}

func (g ReservationGateway) Search(ctx context.Context, dto models.ReservationSearch) ([]models.ReservationList, error) {
	var out []models.ReservationList
	err := g.Client.doJSON(ctx, http.MethodPost, "/api/reservation/search", dto, &out, authRequired, "search reservations")
	return out, err
}
