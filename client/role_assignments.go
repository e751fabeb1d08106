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

	"roleaudit/client/query"
	"roleaudit/constants"
	"roleaudit/models/azure"
)

// ListAzureADRoleAssignments lists the active assignments of a directory role
// https://learn.microsoft.com/en-us/graph/api/rbacapplication-list-roleassignments?view=graph-rest-1.0
func (s *azureClient) ListAzureADRoleAssignments(ctx context.Context, roleDefinitionId string) ([]azure.UnifiedRoleAssignment, error) {
	var (
		path   = fmt.Sprintf("/%s/roleManagement/directory/roleAssignments", constants.GraphApiVersion)
		params = query.GraphParams{Filter: fmt.Sprintf("roleDefinitionId eq '%s'", roleDefinitionId)}
	)

	return getGraphList[azure.UnifiedRoleAssignment](ctx, s.msgraph, path, params)
}
