package audit

import "roleaudit/enums"

// ResolvedPrincipal is the human-readable identity behind an opaque
// directory object id.
type ResolvedPrincipal struct {
	Name string
	Type enums.PrincipalType
}

// Membership is one holder of one directory role, either assigned or
// eligible, with its principal already resolved.
type Membership struct {
	RoleId      string
	PrincipalId string
	RoleType    enums.RoleType
	Principal   ResolvedPrincipal
}

// ReportRow is the flat record the report is made of; the field set matches
// the CSV columns exactly.
type ReportRow struct {
	RoleName string
	Name     string
	ID       string
	Type     enums.PrincipalType
	RoleType enums.RoleType
}
