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

package constants

import "fmt"

const (
	Name    string = "roleaudit"
	Version string = "v0.3.0"

	AuthorityUrl string = "https://login.microsoftonline.com"
	GraphUrl     string = "https://graph.microsoft.com"

	GraphApiVersion string = "v1.0"

	// Tag marker Entra ID sets on service principals that back a
	// managed identity.
	ManagedIdentityTag string = "ManagedIdentity"
)

func UserAgent() string {
	return fmt.Sprintf("%s/%s", Name, Version)
}
