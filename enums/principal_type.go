package enums

// PrincipalType classifies the directory object behind a role holder.
type PrincipalType string

const (
	PrincipalUser             PrincipalType = "User"
	PrincipalServicePrincipal PrincipalType = "ServicePrincipal"
	PrincipalManagedIdentity  PrincipalType = "ManagedIdentity"
	PrincipalGroup            PrincipalType = "Group"
	PrincipalUnknown          PrincipalType = "Unknown"
)

func (s PrincipalType) String() string {
	return string(s)
}
