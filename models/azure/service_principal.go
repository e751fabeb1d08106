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

// ServicePrincipal defines the model for the Azure AD service principal
// resource type
// https://learn.microsoft.com/en-us/graph/api/resources/serviceprincipal?view=graph-rest-1.0
type ServicePrincipal struct {
	Entity

	DisplayName          string   `json:"displayName,omitempty"`
	AppId                string   `json:"appId,omitempty"`
	AccountEnabled       bool     `json:"accountEnabled,omitempty"`
	ServicePrincipalType string   `json:"servicePrincipalType,omitempty"`
	Tags                 []string `json:"tags,omitempty"`
}
