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

package azure

// UnifiedRoleAssignment represents the unifiedRoleAssignment resource type,
// a permanent (active) grant of a directory role to a principal
// https://learn.microsoft.com/en-us/graph/api/resources/unifiedroleassignment?view=graph-rest-1.0
type UnifiedRoleAssignment struct {
	Entity

	PrincipalId      string `json:"principalId,omitempty"`
	RoleDefinitionId string `json:"roleDefinitionId,omitempty"`
	DirectoryScopeId string `json:"directoryScopeId,omitempty"`
	AppScopeId       string `json:"appScopeId,omitempty"`
}
