package azure

// Entity is the base Microsoft Graph resource type
// https://learn.microsoft.com/en-us/graph/api/resources/entity?view=graph-rest-1.0
type Entity struct {
	Id string `json:"id,omitempty"`
}

// CollectionResponse is the envelope Graph wraps around list results.
type CollectionResponse[T any] struct {
	Count    int    `json:"@odata.count,omitempty"`
	NextLink string `json:"@odata.nextLink,omitempty"`
	Value    []T    `json:"value"`
}
