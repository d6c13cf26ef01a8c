package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/AlessioVisconti/HotelBear/internal/domain"
	"github.com/AlessioVisconti/HotelBear/internal/domain/models"
	"github.com/AlessioVisconti/HotelBear/internal/gateway"
	"github.com/AlessioVisconti/HotelBear/internal/utils"
)

// RoomService wraps the admin room/photo workflow, keeping the photo cap and
// the empty-field stripping out of the handlers.
type RoomService struct {
	Rooms     gateway.RoomGateway
	RequestID string
}

func (s RoomService) Create(ctx context.Context, dto models.CreateRoom) (models.RoomDetail, error) {
	if strings.TrimSpace(dto.RoomNumber) == "" {
		return models.RoomDetail{}, domain.ValidationError{Field: "roomNumber", Msg: "required"}
	}
	if strings.TrimSpace(dto.RoomName) == "" {
		return models.RoomDetail{}, domain.ValidationError{Field: "roomName", Msg: "required"}
	}
	if dto.Beds < 1 {
		return models.RoomDetail{}, domain.ValidationError{Field: "beds", Msg: "must be at least 1"}
	}
	if dto.PriceForNight <= 0 {
		return models.RoomDetail{}, domain.ValidationError{Field: "priceForNight", Msg: "must be greater than zero"}
	}
	utils.LogEvent(s.RequestID, "room", "create", "number="+dto.RoomNumber)
	return s.Rooms.Create(ctx, dto)
}

func (s RoomService) Update(ctx context.Context, id string, dto models.UpdateRoom) (models.RoomDetail, error) {
	utils.LogEvent(s.RequestID, "room", "update", "id="+id)
	return s.Rooms.Update(ctx, id, dto)
}

func (s RoomService) Delete(ctx context.Context, id string) error {
	utils.LogEvent(s.RequestID, "room", "delete", "id="+id)
	return s.Rooms.Delete(ctx, id)
}

// UploadPhoto refuses the upload client-side once the room already carries
// the maximum number of photos, whatever the file is.
func (s RoomService) UploadPhoto(ctx context.Context, roomID, fileName string, file io.Reader, isCover bool) error {
	room, err := s.Rooms.GetByID(ctx, roomID)
	if err != nil {
		return err
	}
	if len(room.Photos) >= models.MaxRoomPhotos {
		return domain.ValidationError{
			Msg: fmt.Sprintf("room already has %d photos (max %d)", len(room.Photos), models.MaxRoomPhotos),
		}
	}
	utils.LogEvent(s.RequestID, "room", "upload_photo", "room_id="+roomID)
	return s.Rooms.AddPhoto(ctx, roomID, fileName, file, isCover)
}

func (s RoomService) DeletePhoto(ctx context.Context, photoID string) error {
	utils.LogEvent(s.RequestID, "room", "delete_photo", "id="+photoID)
	return s.Rooms.DeletePhoto(ctx, photoID)
}

// SetCover delegates to the server, which demotes any previous cover so that
// exactly one photo of the room carries the flag afterwards.
func (s RoomService) SetCover(ctx context.Context, photoID string) error {
	utils.LogEvent(s.RequestID, "room", "set_cover", "id="+photoID)
	return s.Rooms.SetCoverPhoto(ctx, photoID)
}
