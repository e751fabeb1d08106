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

package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"roleaudit/audit"
	"roleaudit/client/query"
	"roleaudit/config"
	"roleaudit/constants"
	"roleaudit/sinks"
)

var log logr.Logger

func init() {
	config.Init(rootCmd, config.Options())
}

var rootCmd = &cobra.Command{
	Use:               constants.Name,
	Short:             "Report the assigned and eligible holders of Entra ID directory roles",
	Long:              "Enumerates Entra ID directory roles matching a name filter, collects their permanent assignments and PIM eligibilities, resolves every principal, and renders a consolidated report.",
	Version:           constants.Version,
	Run:               rootCmdImpl,
	PersistentPreRunE: persistentPreRunE,
	SilenceUsage:      true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmdImpl(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, os.Kill)
	defer stop()

	azClient := connectAndCreateClient()
	defer azClient.CloseIdleConnections()

	auditor, err := audit.NewAuditor(azClient, config.RoleFilter.Value().(string), log)
	if err != nil {
		exit(err)
	}

	log.V(1).Info("listing directory role definitions", "tenant", azClient.TenantInfo().TenantId)
	roles, err := azClient.ListAzureADRoles(ctx, query.GraphParams{})
	if err != nil {
		exit(fmt.Errorf("unable to list role definitions: %w", err))
	}

	start := time.Now()
	rows, err := auditor.BuildReport(ctx, roles)
	if err != nil {
		exit(err)
	}
	log.V(1).Info("collection completed", "rows", len(rows), "duration", time.Since(start).String())

	sinks.RenderConsole(os.Stdout, rows)

	// The console report is already complete at this point; a failed export
	// is a warning, not a fatal error.
	if path := config.OutputFile.Value().(string); path != "" {
		if err := sinks.WriteCSV(path, rows); err != nil {
			log.Error(err, "failed to write report", "path", path)
		} else {
			log.Info("report written", "path", path, "rows", len(rows))
		}
	}
}
