package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AlessioVisconti/HotelBear/internal/config"
	"github.com/AlessioVisconti/HotelBear/internal/domain"
	"github.com/AlessioVisconti/HotelBear/internal/gateway"
	"github.com/AlessioVisconti/HotelBear/internal/http/middleware"
	"github.com/AlessioVisconti/HotelBear/internal/session"
)

// App holds the process-wide dependencies the handlers share. Setup wires it
// once at startup.
type App struct {
	Env     config.Env
	Store   session.Store
	Monitor *session.Monitor
}

var app App

func Setup(a App) { app = a }

// client builds the API client for this request, reading the bearer token
// from the session cookies.
func client(c *gin.Context) *gateway.Client {
	state := middleware.GetSession(c)
	return gateway.NewClient(app.Env.APIBaseURL, app.Env.APITimeout, func() string {
		return state.Token
	})
}

// view merges the per-page data with what every template expects: the session
// identity for the navbar and any flash message carried in the query string.
func view(c *gin.Context, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	state := middleware.GetSession(c)
	data["LoggedIn"] = state.LoggedIn()
	data["Role"] = state.Role
	if state.LoggedIn() {
		if id, err := session.IdentityFromToken(state.Token); err == nil {
			data["Identity"] = id
		}
	}
	if msg := c.Query("msg"); msg != "" {
		data["Flash"] = msg
	}
	return data
}

// renderError shows err on the given template without tearing the page down.
// An unauthenticated failure means the cookies went stale mid-session; it
// redirects to login instead.
func renderError(c *gin.Context, template string, data gin.H, err error) {
	if domain.IsUnauthenticated(err) {
		app.Store.Clear(c)
		c.Redirect(http.StatusFound, "/login?logged_out=1")
		return
	}
	if status, ok := domain.APIStatus(err); ok && status == http.StatusUnauthorized {
		app.Store.Clear(c)
		c.Redirect(http.StatusFound, "/login?logged_out=1")
		return
	}

	if data == nil {
		data = gin.H{}
	}
	data["Error"] = domain.UserMessage(err)
	c.HTML(errStatus(err), template, view(c, data))
}

func errStatus(err error) int {
	if domain.IsValidation(err) {
		return http.StatusBadRequest
	}
	if status, ok := domain.APIStatus(err); ok && status >= 400 && status < 500 {
		return status
	}
	return http.StatusBadGateway
}
