package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AlessioVisconti/HotelBear/internal/domain"
	"github.com/AlessioVisconti/HotelBear/internal/domain/models"
	"github.com/AlessioVisconti/HotelBear/internal/gateway"
	"github.com/AlessioVisconti/HotelBear/internal/http/middleware"
	"github.com/AlessioVisconti/HotelBear/internal/services"
	"github.com/AlessioVisconti/HotelBear/internal/utils"
)

func roomService(c *gin.Context) services.RoomService {
	return services.RoomService{
		Rooms:     gateway.RoomGateway{Client: client(c)},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /rooms
func ListRooms(c *gin.Context) {
	rooms, err := gateway.RoomGateway{Client: client(c)}.List(c.Request.Context())
	if err != nil {
		renderError(c, "rooms.html", nil, err)
		return
	}
	c.HTML(http.StatusOK, "rooms.html", view(c, gin.H{
		"Rooms":    rooms,
		"CanWrite": middleware.GetSession(c).Role == models.RoleAdmin,
	}))
}

// GET /rooms/:id
func ShowRoom(c *gin.Context) {
	room, err := gateway.RoomGateway{Client: client(c)}.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, "rooms.html", nil, err)
		return
	}
	c.HTML(http.StatusOK, "room_detail.html", view(c, gin.H{
		"Room":      room,
		"PhotoCap":  models.MaxRoomPhotos,
		"PhotoFull": len(room.Photos) >= models.MaxRoomPhotos,
		"CanWrite":  middleware.GetSession(c).Role == models.RoleAdmin,
	}))
}

// POST /rooms
func CreateRoom(c *gin.Context) {
	beds, _ := strconv.Atoi(strings.TrimSpace(c.PostForm("beds")))
	price, err := utils.ParseAmount(c.PostForm("priceForNight"))
	if err != nil {
		renderError(c, "rooms.html", nil, domain.ValidationError{Field: "priceForNight", Msg: "invalid amount"})
		return
	}

	dto := models.CreateRoom{
		RoomNumber:    c.PostForm("roomNumber"),
		RoomName:      c.PostForm("roomName"),
		Description:   c.PostForm("description"),
		Beds:          beds,
		BedsTypes:     c.PostForm("bedsTypes"),
		PriceForNight: price,
	}
	room, err := roomService(c).Create(c.Request.Context(), dto)
	if err != nil {
		renderError(c, "rooms.html", nil, err)
		return
	}
	c.Redirect(http.StatusFound, "/rooms/"+room.ID)
}

// POST /rooms/:id
func UpdateRoom(c *gin.Context) {
	id := c.Param("id")

	dto := models.UpdateRoom{
		RoomNumber:  c.PostForm("roomNumber"),
		RoomName:    c.PostForm("roomName"),
		Description: c.PostForm("description"),
		BedsTypes:   c.PostForm("bedsTypes"),
	}
	if raw := strings.TrimSpace(c.PostForm("beds")); raw != "" {
		if beds, err := strconv.Atoi(raw); err == nil {
			dto.Beds = &beds
		}
	}
	if raw := strings.TrimSpace(c.PostForm("priceForNight")); raw != "" {
		if price, err := utils.ParseAmount(raw); err == nil {
			dto.PriceForNight = &price
		}
	}

	if _, err := roomService(c).Update(c.Request.Context(), id, dto); err != nil {
		renderError(c, "room_detail.html", nil, err)
		return
	}
	c.Redirect(http.StatusFound, "/rooms/"+id)
}

// GET /rooms/:id/delete
func ConfirmDeleteRoom(c *gin.Context) {
	room, err := gateway.RoomGateway{Client: client(c)}.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		renderError(c, "rooms.html", nil, err)
		return
	}
	c.HTML(http.StatusOK, "confirm_delete.html", view(c, gin.H{
		"What":   "room " + room.RoomNumber + " (" + room.RoomName + ")",
		"Action": "/rooms/" + room.ID + "/delete",
		"Back":   "/rooms/" + room.ID,
	}))
}

// POST /rooms/:id/delete
func DeleteRoom(c *gin.Context) {
	if err := roomService(c).Delete(c.Request.Context(), c.Param("id")); err != nil {
		renderError(c, "rooms.html", nil, err)
		return
	}
	c.Redirect(http.StatusFound, "/rooms")
}

// POST /rooms/:id/photos
func UploadRoomPhoto(c *gin.Context) {
	id := c.Param("id")

	fh, err := c.FormFile("file")
	if err != nil {
		renderError(c, "room_detail.html", nil, domain.ValidationError{Field: "file", Msg: "choose a photo to upload"})
		return
	}
	src, err := fh.Open()
	if err != nil {
		renderError(c, "room_detail.html", nil, err)
		return
	}
	defer src.Close()

	isCover := c.PostForm("isCover") == "on" || c.PostForm("isCover") == "true"
	if err := roomService(c).UploadPhoto(c.Request.Context(), id, fh.Filename, src, isCover); err != nil {
		renderError(c, "room_detail.html", nil, err)
		return
	}
	c.Redirect(http.StatusFound, "/rooms/"+id)
}

// POST /rooms/:id/photos/:photoId/delete
func DeleteRoomPhoto(c *gin.Context) {
	if err := roomService(c).DeletePhoto(c.Request.Context(), c.Param("photoId")); err != nil {
		renderError(c, "room_detail.html", nil, err)
		return
	}
	c.Redirect(http.StatusFound, "/rooms/"+c.Param("id"))
}

// POST /rooms/:id/photos/:photoId/cover
func SetRoomCover(c *gin.Context) {
	if err := roomService(c).SetCover(c.Request.Context(), c.Param("photoId")); err != nil {
		renderError(c, "room_detail.html", nil, err)
		return
	}
	c.Redirect(http.StatusFound, "/rooms/"+c.Param("id"))
}
