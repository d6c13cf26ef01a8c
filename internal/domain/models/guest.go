package models

// Guest roles. Primary roles carry the extended registry fields (tax code,
// address, identity document); the remaining roles only need the base
// demographics.
const (
	GuestRoleSingle       = "Single"
	GuestRoleHeadOfFamily = "HeadOfFamily"
	GuestRoleFamilyMember = "FamilyMember"
	GuestRoleGroupLeader  = "GroupLeader"
	GuestRoleGroupMember  = "GroupMember"
)

var GuestRoles = []string{
	GuestRoleSingle,
	GuestRoleHeadOfFamily,
	GuestRoleFamilyMember,
	GuestRoleGroupLeader,
	GuestRoleGroupMember,
}

// IsPrimaryGuestRole reports whether role requires the extended field set.
func IsPrimaryGuestRole(role string) bool {
	switch role {
	case GuestRoleSingle, GuestRoleHeadOfFamily, GuestRoleGroupLeader:
		return true
	}
	return false
}

type Guest struct {
	ID                 string `json:"id,omitempty"`
	ReservationID      string `json:"reservationId"`
	FirstName          string `json:"firstName"`
	LastName           string `json:"lastName"`
	Role               string `json:"role"`
	BirthDate          string `json:"birthDate,omitempty"`
	BirthCity          string `json:"birthCity,omitempty"`
	Citizenship        string `json:"citizenship,omitempty"`
	CityOfResidence    string `json:"cityOfResidence,omitempty"`
	TaxCode            string `json:"taxCode,omitempty"`
	Address            string `json:"address,omitempty"`
	Province           string `json:"province,omitempty"`
	PostalCode         string `json:"postalCode,omitempty"`
	DocumentType       string `json:"documentType,omitempty"`
	DocumentNumber     string `json:"documentNumber,omitempty"`
	DocumentExpiration string `json:"documentExpiration,omitempty"`
}

// DisplayName renders the guest for lists and delete confirmations.
func (g Guest) DisplayName() string {
	if g.FirstName == "" && g.LastName == "" {
		return "guest"
	}
	return g.FirstName + " " + g.LastName
}
