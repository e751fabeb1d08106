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

package sinks

import (
	"fmt"
	"io"

	"github.com/aquasecurity/table"

	"roleaudit/audit"
)

// RenderConsole prints one table per role in report order.
func RenderConsole(out io.Writer, rows []audit.ReportRow) {
	var (
		roleOrder []string
		perRole   = make(map[string][]audit.ReportRow)
	)

	for _, row := range rows {
		if _, seen := perRole[row.RoleName]; !seen {
			roleOrder = append(roleOrder, row.RoleName)
		}
		perRole[row.RoleName] = append(perRole[row.RoleName], row)
	}

	if len(roleOrder) == 0 {
		fmt.Fprintln(out, "No role holders found.")
		return
	}

	for _, roleName := range roleOrder {
		fmt.Fprintf(out, "\nRole: %s\n", roleName)

		t := table.New(out)
		t.SetHeaders("Name", "ID", "Type", "RoleType")
		for _, row := range perRole[roleName] {
			t.AddRow(row.Name, row.ID, row.Type.String(), row.RoleType.String())
		}
		t.Render()
	}
}
