package enums

// RoleType tags how a principal holds a directory role: a permanent
// assignment or a PIM eligibility it may activate.
type RoleType string

const (
	RoleAssigned RoleType = "Assigned"
	RoleEligible RoleType = "Eligible"
)

func (s RoleType) String() string {
	return string(s)
}
