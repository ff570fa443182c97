package domain

import "time"

// Role enumerates account roles. Dashboard access and API authorization both
// key off this value.
type Role string

const (
	RoleOwner     Role = "owner"
	RoleCaretaker Role = "caretaker"
	RoleAdmin     Role = "admin"
)

// ValidRole reports whether r is a known role.
func ValidRole(r Role) bool {
	switch r {
	case RoleOwner, RoleCaretaker, RoleAdmin:
		return true
	}
	return false
}

// CaretakerProfile carries the caretaker-specific listing fields. Empty for
// owners and admins.
type CaretakerProfile struct {
	ProfilePhoto    string
	Specialization  string
	Experience      string
	Rating          float64
	ServiceCharge   *float64
	CompanyName     string
	CompanyIDNumber string
}

// User is the domain model for every account: pet owners, caretakers and
// administrators. Caretakers start unverified and must be approved by an
// admin before they appear in the directory.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Phone        string
	Address      string
	Pincode      string
	Verified     bool
	Profile      CaretakerProfile
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
