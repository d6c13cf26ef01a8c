package models

// Roles form a closed enumeration; access policy lives in one capability
// table on the router side instead of scattered string comparisons.
const (
	RoleAdmin        = "Admin"
	RoleReceptionist = "Receptionist"
	RoleRoomStaff    = "RoomStaff"
	RoleCustomer     = "Customer"
)

var StaffRoles = []string{RoleAdmin, RoleReceptionist, RoleRoomStaff}

// IsKnownRole guards against duck-typed role strings leaking in from cookies.
func IsKnownRole(role string) bool {
	switch role {
	case RoleAdmin, RoleReceptionist, RoleRoomStaff, RoleCustomer:
		return true
	}
	return false
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterCustomer struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
}

type RegisterStaff struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// AuthResponse is the login/registration payload. The server supplies the
// display identity alongside the token; when any of it is missing the client
// may fall back to unverified token claims for display only.
type AuthResponse struct {
	Token      string `json:"token"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Role       string `json:"role"`
	Expiration string `json:"expiration"`
}

type StaffUser struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"isActive"`
}
