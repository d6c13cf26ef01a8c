package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlessioVisconti/HotelBear/internal/domain/models"
	"github.com/AlessioVisconti/HotelBear/internal/session"
	"github.com/AlessioVisconti/HotelBear/internal/utils"
)

const sessionKey = "session_state"

// Route names used by the capability table. One table instead of role string
// comparisons scattered over the handlers.
const (
	RouteBackOffice     = "back-office"
	RouteRoomsRead      = "rooms-read"
	RouteRoomsWrite     = "rooms-write"
	RouteStaffAdmin     = "staff-admin"
	RoutePaymentMethods = "payment-methods"
)

var routeRoles = map[string][]string{
	RouteBackOffice:     {models.RoleAdmin, models.RoleReceptionist},
	RouteRoomsRead:      {models.RoleAdmin, models.RoleReceptionist, models.RoleRoomStaff},
	RouteRoomsWrite:     {models.RoleAdmin},
	RouteStaffAdmin:     {models.RoleAdmin},
	RoutePaymentMethods: {models.RoleAdmin},
}

// CanAccess reports whether role may enter the named route. Unknown routes
// admit nobody.
func CanAccess(route, role string) bool {
	for _, r := range routeRoles[route] {
		if r == role {
			return true
		}
	}
	return false
}

// LoadSession reads the auth cookies into the request context on every page,
// public ones included, so navbars and pre-filled forms can see the identity.
// When the session monitor has flagged the session expired, the cookies are
// cleared and the request continues logged out.
func LoadSession(store session.Store, monitor *session.Monitor) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := store.Read(c)

		sid, _ := c.Cookie(session.IDCookie)
		if state.LoggedIn() && sid != "" && monitor != nil && monitor.Expired(sid) {
			utils.LogEvent(GetRequestID(c), "session", "forced_logout", "session_id="+sid)
			store.Clear(c)
			monitor.Drop(sid)
			state = session.State{}
			c.Set("logged_out", true)
		}

		c.Set(sessionKey, state)
		c.Next()
	}
}

// GetSession returns the state placed by LoadSession.
func GetSession(c *gin.Context) session.State {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(session.State); ok {
			return s
		}
	}
	return session.State{}
}

// Guard gates a route group: no token redirects to the login page, a known
// token with a role outside the allow-set redirects home.
func Guard(route string) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := GetSession(c)

		if !state.LoggedIn() {
			target := "/login"
			if v, ok := c.Get("logged_out"); ok && v == true {
				target = "/login?logged_out=1"
			}
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}
		if !CanAccess(route, state.Role) {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}
