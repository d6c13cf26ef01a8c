package gateway

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/AlessioVisconti/HotelBear/internal/domain/models"
)

type RoomGateway struct {
	Client *Client
}

func (g RoomGateway) List(ctx context.Context) ([]models.RoomList, error) {
	var out []models.RoomList
	err := g.Client.doJSON(ctx, http.MethodGet, "/api/room", nil, &out, authNone, "list rooms")
	return out, err
}

func (g RoomGateway) GetByID(ctx context.Context, id string) (models.RoomDetail, error) {
	var out models.RoomDetail
	err := g.Client.doJSON(ctx, http.MethodGet, "/api/room/"+url.PathEscape(id), nil, &out, authNone, "room detail")
	return out, err
}

// Available lists rooms free for the whole date range. Dates are YYYY-MM-DD.
func (g RoomGateway) Available(ctx context.Context, checkIn, checkOut string) ([]models.RoomList, error) {
	q := url.Values{}
	q.Set("checkIn", checkIn)
	q.Set("checkOut", checkOut)

	var out []models.RoomList
	err := g.Client.doJSON(ctx, http.MethodGet, "/api/room/available?"+q.Encode(), nil, &out, authNone, "room availability")
	return out, err
}

func (g RoomGateway) Create(ctx context.Context, dto models.CreateRoom) (models.RoomDetail, error) {
	var out models.RoomDetail
	err := g.Client.doJSON(ctx, http.MethodPost, "/api/room", dto, &out, authRequired, "create room")
	return out, err
}

// Update strips empty and whitespace-only string fields before submission so
// a partial edit never blanks server-side values.
func (g RoomGateway) Update(ctx context.Context, id string, dto models.UpdateRoom) (models.RoomDetail, error) {
	dto.RoomNumber = strings.TrimSpace(dto.RoomNumber)
	dto.RoomName = strings.TrimSpace(dto.RoomName)
	dto.Description = strings.TrimSpace(dto.Description)
	dto.BedsTypes = strings.TrimSpace(dto.BedsTypes)

	var out models.RoomDetail
	err := g.Client.doJSON(ctx, http.MethodPut, "/api/room/"+url.PathEscape(id), dto, &out, authRequired, "update room")
	return out, err
}

func (g RoomGateway) Delete(ctx context.Context, id string) error {
	return g.Client.doJSON(ctx, http.MethodDelete, "/api/room/"+url.PathEscape(id), nil, nil, authRequired, "delete room")
}

// AddPhoto uploads one photo. The photo-count cap is checked by the caller
// before this is reached.
func (g RoomGateway) AddPhoto(ctx context.Context, roomID, fileName string, file io.Reader, isCover bool) error {
	fields := map[string]string{"isCover": strconv.FormatBool(isCover)}
	return g.Client.doMultipart(ctx, "/api/room/"+url.PathEscape(roomID)+"/photos", "file", fileName, file, fields, "upload room photo")
}

func (g RoomGateway) DeletePhoto(ctx context.Context, photoID string) error {
	return g.Client.doJSON(ctx, http.MethodDelete, "/api/room/photos/"+url.PathEscape(photoID), nil, nil, authRequired, "delete room photo")
}

// SetCoverPhoto is idempotent; the server demotes any previous cover.
func (g RoomGateway) SetCoverPhoto(ctx context.Context, photoID string) error {
	return g.Client.doJSON(ctx, http.MethodPatch, "/api/room/photos/"+url.PathEscape(photoID)+"/cover", nil, nil, authRequired, "set cover photo")
}
