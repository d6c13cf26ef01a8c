package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AlessioVisconti/HotelBear/internal/domain"
	"github.com/AlessioVisconti/HotelBear/internal/domain/models"
	"github.com/AlessioVisconti/HotelBear/internal/gateway"
	"github.com/AlessioVisconti/HotelBear/internal/http/middleware"
	"github.com/AlessioVisconti/HotelBear/internal/session"
	"github.com/AlessioVisconti/HotelBear/internal/utils"
)

// GET /login
func ShowLogin(c *gin.Context) {
	data := gin.H{"Email": ""}
	if c.Query("logged_out") == "1" {
		data["Flash"] = "Your session has expired, please log in again"
	}
	c.HTML(http.StatusOK, "login.html", view(c, data))
}

// POST /login
func Login(c *gin.Context) {
	dto := models.Login{
		Email:    strings.TrimSpace(c.PostForm("email")),
		Password: c.PostForm("password"),
	}
	if dto.Email == "" || dto.Password == "" {
		renderError(c, "login.html", gin.H{"Email": dto.Email}, domain.ValidationError{Msg: "Email and password are required"})
		return
	}

	auth := gateway.AuthGateway{Client: client(c)}
	resp, err := auth.Login(c.Request.Context(), dto)
	if err != nil {
		renderError(c, "login.html", gin.H{"Email": dto.Email}, err)
		return
	}

	startSession(c, resp)
	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "email="+dto.Email)
	c.Redirect(http.StatusFound, homeFor(resp.Role))
}

// startSession persists the token triple and registers the expiry timer.
// The expiration comes from the response when present, from the token claims
// otherwise.
func startSession(c *gin.Context, resp models.AuthResponse) {
	state := session.State{Token: resp.Token, Role: resp.Role}
	if resp.Expiration != "" {
		if t, err := time.Parse(time.RFC3339, resp.Expiration); err == nil {
			state.Expiration = t
		}
	}
	id, err := session.IdentityFromToken(resp.Token)
	if err == nil {
		if state.Expiration.IsZero() {
			state.Expiration = id.ExpiresAt
		}
		if state.Role == "" {
			state.Role = id.Role
		}
	}
	if !models.IsKnownRole(state.Role) {
		state.Role = models.RoleCustomer
	}

	app.Store.Write(c, state)
	sid := session.NewSessionID()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.IDCookie, sid, 0, "/", app.Env.CookieDomain, app.Env.CookieSecure, true)
	app.Monitor.Track(sid, state.Expiration)
}

func homeFor(role string) string {
	switch role {
	case models.RoleAdmin, models.RoleReceptionist:
		return "/dashboard"
	case models.RoleRoomStaff:
		return "/rooms"
	default:
		return "/"
	}
}

// POST /logout
func Logout(c *gin.Context) {
	if sid, err := c.Cookie(session.IDCookie); err == nil && sid != "" {
		app.Monitor.Drop(sid)
	}
	app.Store.Clear(c)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(session.IDCookie, "", -1, "/", app.Env.CookieDomain, app.Env.CookieSecure, true)
	utils.LogEvent(middleware.GetRequestID(c), "auth", "logout", "")
	c.Redirect(http.StatusFound, "/login")
}

// GET /register
func ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", view(c, nil))
}

// POST /register
func RegisterCustomer(c *gin.Context) {
	dto := models.RegisterCustomer{
		FirstName: strings.TrimSpace(c.PostForm("firstName")),
		LastName:  strings.TrimSpace(c.PostForm("lastName")),
		Email:     strings.TrimSpace(c.PostForm("email")),
		Phone:     strings.TrimSpace(c.PostForm("phone")),
		Password:  c.PostForm("password"),
	}
	if dto.FirstName == "" || dto.LastName == "" || dto.Email == "" || dto.Password == "" {
		renderError(c, "register.html", gin.H{"Form": dto}, domain.ValidationError{Msg: "First name, last name, email and password are required"})
		return
	}

	auth := gateway.AuthGateway{Client: client(c)}
	resp, err := auth.RegisterCustomer(c.Request.Context(), dto)
	if err != nil {
		renderError(c, "register.html", gin.H{"Form": dto}, err)
		return
	}

	startSession(c, resp)
	utils.LogEvent(middleware.GetRequestID(c), "auth", "register_customer", "email="+dto.Email)
	c.Redirect(http.StatusFound, "/")
}

// GET /staff
func StaffPage(c *gin.Context) {
	auth := gateway.AuthGateway{Client: client(c)}
	staff, err := auth.ListStaff(c.Request.Context())
	if err != nil {
		renderError(c, "staff.html", nil, err)
		return
	}
	c.HTML(http.StatusOK, "staff.html", view(c, gin.H{
		"Staff": staff,
		"Roles": models.StaffRoles,
	}))
}

// POST /staff
func RegisterStaff(c *gin.Context) {
	dto := models.RegisterStaff{
		FirstName: strings.TrimSpace(c.PostForm("firstName")),
		LastName:  strings.TrimSpace(c.PostForm("lastName")),
		Email:     strings.TrimSpace(c.PostForm("email")),
		Password:  c.PostForm("password"),
		Role:      c.PostForm("role"),
	}
	staffRole := false
	for _, r := range models.StaffRoles {
		if r == dto.Role {
			staffRole = true
			break
		}
	}
	if !staffRole {
		renderError(c, "staff.html", nil, domain.ValidationError{Field: "role", Msg: "unknown staff role"})
		return
	}
	if dto.FirstName == "" || dto.LastName == "" || dto.Email == "" || dto.Password == "" {
		renderError(c, "staff.html", nil, domain.ValidationError{Msg: "All fields are required"})
		return
	}

	auth := gateway.AuthGateway{Client: client(c)}
	if _, err := auth.RegisterStaff(c.Request.Context(), dto); err != nil {
		renderError(c, "staff.html", nil, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), "auth", "register_staff", "email="+dto.Email+" role="+dto.Role)
	c.Redirect(http.StatusFound, "/staff")
}

// POST /staff/:id/deactivate
func DeactivateStaff(c *gin.Context) {
	auth := gateway.AuthGateway{Client: client(c)}
	if err := auth.DeactivateStaff(c.Request.Context(), c.Param("id")); err != nil {
		renderError(c, "staff.html", nil, err)
		return
	}
	c.Redirect(http.StatusFound, "/staff")
}

// POST /staff/:id/reactivate
func ReactivateStaff(c *gin.Context) {
	auth := gateway.AuthGateway{Client: client(c)}
	if err := auth.ReactivateStaff(c.Request.Context(), c.Param("id")); err != nil {
		renderError(c, "staff.html", nil, err)
		return
	}
	c.Redirect(http.StatusFound, "/staff")
}
