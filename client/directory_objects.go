// Copyright (C) 2025 The roleaudit Authors
//
// This file is part of roleaudit.
//
// roleaudit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// roleaudit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package client

import (
	"context"
	"fmt"

	"roleaudit/constants"
	"roleaudit/models/azure"
)

// GetAzureADUser https://learn.microsoft.com/en-us/graph/api/user-get?view=graph-rest-1.0
func (s *azureClient) GetAzureADUser(ctx context.Context, objectId string) (*azure.User, error) {
	path := fmt.Sprintf("/%s/users/%s", constants.GraphApiVersion, objectId)
	return getGraphObject[azure.User](ctx, s.msgraph, path)
}

// GetAzureADServicePrincipal https://learn.microsoft.com/en-us/graph/api/serviceprincipal-get?view=graph-rest-1.0
func (s *azureClient) GetAzureADServicePrincipal(ctx context.Context, objectId string) (*azure.ServicePrincipal, error) {
	path := fmt.Sprintf("/%s/servicePrincipals/%s", constants.GraphApiVersion, objectId)
	return getGraphObject[azure.ServicePrincipal](ctx, s.msgraph, path)
}

// GetAzureADGroup https://learn.microsoft.com/en-us/graph/api/group-get?view=graph-rest-1.0
func (s *azureClient) GetAzureADGroup(ctx context.Context, objectId string) (*azure.Group, error) {
	path := fmt.Sprintf("/%s/groups/%s", constants.GraphApiVersion, objectId)
	return getGraphObject[azure.Group](ctx, s.msgraph, path)
}
