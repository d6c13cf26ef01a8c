package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/AlessioVisconti/HotelBear/internal/domain/models"
)

type CalendarGateway struct {
	Client *Client
}

// Range returns per-room reservation bars for [startDate, endDate], each bar
// clamped to the range with startsBeforeRange/endsAfterRange flags.
func (g CalendarGateway) Range(ctx context.Context, startDate, endDate string) ([]models.RoomCalendar, error) {
	q := url.Values{}
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)

	var out []models.RoomCalendar
	err := g.Client.doJSON(ctx, http.MethodGet, "/api/room/calendar?"+q.Encode(), nil, &out, authRequired, "room calendar")
	return out, err
}
