package azure

// Tenant identifies the directory a collection run is scoped to.
type Tenant struct {
	TenantId    string `json:"tenantId,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}
