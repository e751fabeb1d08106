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

package audit

import (
	"context"
	"fmt"
	"regexp"

	"github.com/go-logr/logr"

	"roleaudit/client"
	"roleaudit/models/azure"
)

// Auditor drives the collection across every role whose display name
// matches the configured filter and flattens the results into report rows.
type Auditor struct {
	collector *Collector
	filter    *regexp.Regexp
	log       logr.Logger
}

// NewAuditor compiles nameFilter as a case-insensitive pattern; a plain
// string behaves as a substring match.
func NewAuditor(azClient client.AzureClient, nameFilter string, log logr.Logger) (*Auditor, error) {
	filter, err := regexp.Compile("(?i)" + nameFilter)
	if err != nil {
		return nil, fmt.Errorf("invalid role name filter %q: %w", nameFilter, err)
	}

	resolver := NewPrincipalResolver(azClient, log)
	return &Auditor{
		collector: NewCollector(azClient, resolver, log),
		filter:    filter,
		log:       log,
	}, nil
}

// BuildReport produces one row per (role, principal, membership kind) tuple.
// Row order is a contract: roles in the order given, and within a role the
// assigned holders before the eligible ones, each in source order.
func (s *Auditor) BuildReport(ctx context.Context, roles []azure.UnifiedRoleDefinition) ([]ReportRow, error) {
	var rows []ReportRow

	for _, role := range roles {
		if !s.filter.MatchString(role.DisplayName) {
			continue
		}

		s.log.V(1).Info("auditing role", "role", role.DisplayName, "roleId", role.Id)

		memberships, err := s.collector.CollectRole(ctx, role)
		if err != nil {
			return nil, err
		}

		for _, membership := range memberships {
			rows = append(rows, ReportRow{
				RoleName: role.DisplayName,
				Name:     membership.Principal.Name,
				ID:       membership.PrincipalId,
				Type:     membership.Principal.Type,
				RoleType: membership.RoleType,
			})
		}
	}

	return rows, nil
}
