package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AlessioVisconti/HotelBear/internal/gateway"
)

// GET /calendar
//
// Per-room occupancy bars for a date range, two weeks from today by default.
// Each bar links to the reservation editor.
func CalendarPage(c *gin.Context) {
	start := strings.TrimSpace(c.Query("startDate"))
	end := strings.TrimSpace(c.Query("endDate"))
	if start == "" || end == "" {
		now := time.Now()
		start = now.Format("2006-01-02")
		end = now.AddDate(0, 0, 14).Format("2006-01-02")
	}

	rooms, err := gateway.CalendarGateway{Client: client(c)}.Range(c.Request.Context(), start, end)
	if err != nil {
		renderError(c, "calendar.html", gin.H{"StartDate": start, "EndDate": end}, err)
		return
	}
	c.HTML(http.StatusOK, "calendar.html", view(c, gin.H{
		"StartDate": start,
		"EndDate":   end,
		"Rooms":     rooms,
	}))
}
