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

package config

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestOptions(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	Init(cmd, Options())

	t.Run("registered options carry their defaults", func(t *testing.T) {
		require.Equal(t, "admin", RoleFilter.Value())
		require.Equal(t, 0, Verbosity.Value())
		require.Equal(t, false, JsonLogs.Value())
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		t.Setenv("ROLEAUDIT_FILTER", "operator")
		LoadValues(cmd, Options())
		require.Equal(t, "operator", RoleFilter.Value())
	})

	t.Run("environment keys replace dashes with underscores", func(t *testing.T) {
		t.Setenv("ROLEAUDIT_REFRESH_TOKEN", "token-value")
		LoadValues(cmd, Options())
		require.Equal(t, "token-value", RefreshToken.Value())
	})

	t.Run("Set takes effect immediately", func(t *testing.T) {
		OutputFile.Set("report.csv")
		require.Equal(t, "report.csv", OutputFile.Value())
	})
}
