package rating

import (
	"fooddelivery/internal/pkg/errs"
)

// SubjectRole tags which party of a delivered order a rating targets.
// Together with the subject id it forms a tagged union over
// {Restaurant, Courier}; each role resolves its subject from the order
// through a dispatch table in the application layer, never through an
// untyped foreign key.
type SubjectRole int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown SubjectRole = iota

	// RoleRestaurant targets the restaurant that prepared the order.
	RoleRestaurant

	// RoleCourier targets the courier that delivered the order.
	RoleCourier
)

func getRoleStrings() map[SubjectRole]string {
	return map[SubjectRole]string{
		RoleUnknown:    "Unknown",
		RoleRestaurant: "Restaurant",
		RoleCourier:    "Courier",
	}
}

// Validate checks that the role is one of the defined subjects.
func (r SubjectRole) Validate() error {
	if r != RoleRestaurant && r != RoleCourier {
		return errs.NewValueIsInvalidError("subject role")
	}
	return nil
}

// String returns the human-readable name of the role.
func (r SubjectRole) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "Unknown"
}

// RoleFromString parses a role name as stored in the database.
func RoleFromString(s string) (SubjectRole, error) {
	switch s {
	case "Restaurant":
		return RoleRestaurant, nil
	case "Courier":
		return RoleCourier, nil
	default:
		return RoleUnknown, errs.NewValueIsInvalidError("subject role")
	}
}
