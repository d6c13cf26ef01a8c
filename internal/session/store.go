package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Cookie names match the triple the client has always persisted; they are the
// sole authorization signal available on this side of the API.
const (
	TokenCookie      = "auth_token"
	RoleCookie       = "auth_role"
	ExpirationCookie = "auth_expiration"
	IDCookie         = "session_id"
)

// State is the durable part of a session: bearer token, role and expiration.
type State struct {
	Token      string
	Role       string
	Expiration time.Time
}

func (s State) LoggedIn() bool { return s.Token != "" }

// Expired reports whether the stored expiration has elapsed. A session with
// no expiration never expires client-side; the server still rejects its token.
func (s State) Expired(now time.Time) bool {
	return !s.Expiration.IsZero() && !now.Before(s.Expiration)
}

// Store reads and writes the auth cookies on a request.
type Store struct {
	Domain string
	Secure bool
}

func (st Store) Write(c *gin.Context, s State) {
	maxAge := 0
	if !s.Expiration.IsZero() {
		maxAge = int(time.Until(s.Expiration).Seconds())
		if maxAge < 1 {
			maxAge = 1
		}
	}
	st.set(c, TokenCookie, s.Token, maxAge)
	st.set(c, RoleCookie, s.Role, maxAge)
	exp := ""
	if !s.Expiration.IsZero() {
		exp = s.Expiration.UTC().Format(time.RFC3339)
	}
	st.set(c, ExpirationCookie, exp, maxAge)
}

func (st Store) Read(c *gin.Context) State {
	token, _ := c.Cookie(TokenCookie)
	role, _ := c.Cookie(RoleCookie)
	out := State{Token: token, Role: role}
	if raw, err := c.Cookie(ExpirationCookie); err == nil && raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			out.Expiration = t
		}
	}
	return out
}

func (st Store) Clear(c *gin.Context) {
	st.set(c, TokenCookie, "", -1)
	st.set(c, RoleCookie, "", -1)
	st.set(c, ExpirationCookie, "", -1)
}

func (st Store) set(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, value, maxAge, "/", st.Domain, st.Secure, true)
}
