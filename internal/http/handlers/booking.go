package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AlessioVisconti/HotelBear/internal/gateway"
	"github.com/AlessioVisconti/HotelBear/internal/http/middleware"
	"github.com/AlessioVisconti/HotelBear/internal/services"
	"github.com/AlessioVisconti/HotelBear/internal/session"
)

func bookingService(c *gin.Context) services.BookingService {
	cl := client(c)
	return services.BookingService{
		Rooms:        gateway.RoomGateway{Client: cl},
		Reservations: gateway.ReservationGateway{Client: cl},
		RequestID:    middleware.GetRequestID(c),
	}
}

// GET /
//
// The customer landing page: the availability search, and its results when
// both dates are present. Results stay bound to the dates that produced them;
// changing a date means searching again.
func Home(c *gin.Context) {
	checkIn := strings.TrimSpace(c.Query("checkIn"))
	checkOut := strings.TrimSpace(c.Query("checkOut"))

	data := gin.H{"CheckIn": checkIn, "CheckOut": checkOut}
	if checkIn == "" && checkOut == "" {
		c.HTML(http.StatusOK, "home.html", view(c, data))
		return
	}

	result, err := bookingService(c).SearchAvailability(c.Request.Context(), checkIn, checkOut)
	if err != nil {
		renderError(c, "home.html", data, err)
		return
	}
	data["Result"] = result
	c.HTML(http.StatusOK, "home.html", view(c, data))
}

// GET /book
//
// The booking form for one room. Dates arrive fixed from the availability
// search and render read-only; contact fields pre-fill from the session
// identity when one exists.
func ShowBookingForm(c *gin.Context) {
	roomID := c.Query("roomId")
	room, err := gateway.RoomGateway{Client: client(c)}.GetByID(c.Request.Context(), roomID)
	if err != nil {
		renderError(c, "home.html", nil, err)
		return
	}

	data := gin.H{
		"Room":         room,
		"CheckIn":      c.Query("checkIn"),
		"CheckOut":     c.Query("checkOut"),
		"PrefillName":  "",
		"PrefillEmail": "",
	}
	if state := middleware.GetSession(c); state.LoggedIn() {
		if id, err := session.IdentityFromToken(state.Token); err == nil {
			data["PrefillName"] = id.Name
			data["PrefillEmail"] = id.Email
		}
	}
	c.HTML(http.StatusOK, "booking.html", view(c, data))
}

// POST /book
func SubmitBooking(c *gin.Context) {
	form := services.BookingForm{
		RoomID:    c.PostForm("roomId"),
		CheckIn:   c.PostForm("checkIn"),
		CheckOut:  c.PostForm("checkOut"),
		FirstName: c.PostForm("firstName"),
		LastName:  c.PostForm("lastName"),
		Email:     c.PostForm("email"),
		Phone:     c.PostForm("phone"),
		Note:      c.PostForm("note"),
	}

	detail, err := bookingService(c).Book(c.Request.Context(), form)
	if err != nil {
		data := gin.H{"CheckIn": form.CheckIn, "CheckOut": form.CheckOut, "Form": form}
		if room, roomErr := (gateway.RoomGateway{Client: client(c)}).GetByID(c.Request.Context(), form.RoomID); roomErr == nil {
			data["Room"] = room
		}
		renderError(c, "booking.html", data, err)
		return
	}

	c.HTML(http.StatusOK, "booking_confirmed.html", view(c, gin.H{
		"Reservation": detail,
	}))
}
