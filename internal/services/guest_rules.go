package services

import (
	"fmt"
	"strings"

	"github.com/AlessioVisconti/HotelBear/internal/domain"
	"github.com/AlessioVisconti/HotelBear/internal/domain/models"
)

type guestField struct {
	name  string
	value func(models.Guest) string
}

// Field order matters: validation fails fast on the FIRST missing field and
// the form highlights it by name.
var guestBaseFields = []guestField{
	{"birthDate", func(g models.Guest) string { return g.BirthDate }},
	{"birthCity", func(g models.Guest) string { return g.BirthCity }},
	{"citizenship", func(g models.Guest) string { return g.Citizenship }},
	{"cityOfResidence", func(g models.Guest) string { return g.CityOfResidence }},
}

var guestExtendedFields = append(guestBaseFields[:4:4], []guestField{
	{"taxCode", func(g models.Guest) string { return g.TaxCode }},
	{"address", func(g models.Guest) string { return g.Address }},
	{"province", func(g models.Guest) string { return g.Province }},
	{"postalCode", func(g models.Guest) string { return g.PostalCode }},
	{"documentType", func(g models.Guest) string { return g.DocumentType }},
	{"documentNumber", func(g models.Guest) string { return g.DocumentNumber }},
	{"documentExpiration", func(g models.Guest) string { return g.DocumentExpiration }},
}...)

// ValidateGuest applies the role-dependent required-field rules: primary
// roles (Single, HeadOfFamily, GroupLeader) need the full registry set of 11
// fields, the others only the base demographics.
func ValidateGuest(g models.Guest) error {
	if strings.TrimSpace(g.FirstName) == "" || strings.TrimSpace(g.LastName) == "" {
		return domain.ValidationError{Msg: "First and Last Name are required"}
	}

	role := strings.TrimSpace(g.Role)
	known := false
	for _, r := range models.GuestRoles {
		if r == role {
			known = true
			break
		}
	}
	if !known {
		return domain.ValidationError{Field: "role", Msg: fmt.Sprintf("unknown guest role %q", role)}
	}

	required := guestBaseFields
	if models.IsPrimaryGuestRole(role) {
		required = guestExtendedFields
	}
	for _, f := range required {
		if strings.TrimSpace(f.value(g)) == "" {
			return domain.ValidationError{
				Field: f.name,
				Msg:   fmt.Sprintf("required for %s", role),
			}
		}
	}
	return nil
}
