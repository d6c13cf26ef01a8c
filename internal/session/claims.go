package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/AlessioVisconti/HotelBear/internal/utils"
)

// Identity is what the navbar and pre-filled forms show for the logged-in
// user. It is decoded from the token WITHOUT signature verification and must
// never feed an authorization decision; the server validates the real thing
// on every call.
type Identity struct {
	Name      string
	Email     string
	Role      string
	ExpiresAt time.Time
}

// IdentityFromToken parses the unverified JWT claims for display purposes.
// It tolerates the usual claim spellings (.NET tokens use unique_name).
func IdentityFromToken(token string) (Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Identity{}, fmt.Errorf("empty token")
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Identity{}, fmt.Errorf("parsing token claims: %w", err)
	}

	out := Identity{
		Name:  utils.FirstNonEmpty(claimString(claims, "name"), claimString(claims, "unique_name"), claimString(claims, "given_name")),
		Email: utils.FirstNonEmpty(claimString(claims, "email"), claimString(claims, "http://schemas.xmlsoap.org/ws/2005/05/identity/claims/emailaddress")),
		Role:  utils.FirstNonEmpty(claimString(claims, "role"), claimString(claims, "http://schemas.microsoft.com/ws/2008/06/identity/claims/role")),
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
