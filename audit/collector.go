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

	"github.com/go-logr/logr"

	"roleaudit/client"
	"roleaudit/enums"
	"roleaudit/models/azure"
)

// Collector gathers the holders of a single directory role.
type Collector struct {
	client   client.AzureClient
	resolver *PrincipalResolver
	log      logr.Logger
}

func NewCollector(azClient client.AzureClient, resolver *PrincipalResolver, log logr.Logger) *Collector {
	return &Collector{
		client:   azClient,
		resolver: resolver,
		log:      log,
	}
}

// CollectRole returns the resolved memberships of a role: every active
// assignment in source order, then every in-effect eligibility in source
// order. An empty result is a normal outcome for a role nobody holds.
func (s *Collector) CollectRole(ctx context.Context, role azure.UnifiedRoleDefinition) ([]Membership, error) {
	assignments, err := s.client.ListAzureADRoleAssignments(ctx, role.Id)
	if err != nil {
		return nil, fmt.Errorf("unable to list assignments for role %q: %w", role.DisplayName, err)
	}

	eligibilities, err := s.client.ListAzureADRoleEligibilityScheduleInstances(ctx, role.Id)
	if err != nil {
		return nil, fmt.Errorf("unable to list eligibility schedule instances for role %q: %w", role.DisplayName, err)
	}

	s.log.V(2).Info("collected role holders",
		"role", role.DisplayName,
		"assigned", len(assignments),
		"eligible", len(eligibilities),
	)

	memberships := make([]Membership, 0, len(assignments)+len(eligibilities))

	for _, assignment := range assignments {
		memberships = append(memberships, Membership{
			RoleId:      role.Id,
			PrincipalId: assignment.PrincipalId,
			RoleType:    enums.RoleAssigned,
			Principal:   s.resolver.Resolve(ctx, assignment.PrincipalId),
		})
	}

	for _, eligibility := range eligibilities {
		memberships = append(memberships, Membership{
			RoleId:      role.Id,
			PrincipalId: eligibility.PrincipalId,
			RoleType:    enums.RoleEligible,
			Principal:   s.resolver.Resolve(ctx, eligibility.PrincipalId),
		})
	}

	return memberships, nil
}
