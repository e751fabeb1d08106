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
	"errors"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"roleaudit/client"
	"roleaudit/client/mocks"
	"roleaudit/enums"
	"roleaudit/models/azure"
)

func newTestCollector(mockClient *mocks.MockAzureClient) *Collector {
	resolver := NewPrincipalResolver(mockClient, logr.Discard())
	return NewCollector(mockClient, resolver, logr.Discard())
}

func TestCollector_CollectRole(t *testing.T) {
	role := azure.UnifiedRoleDefinition{
		Entity:      azure.Entity{Id: "r1"},
		DisplayName: "Global Administrator",
	}

	t.Run("emits assignments before eligibilities in source order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockClient := mocks.NewMockAzureClient(ctrl)

		mockClient.EXPECT().ListAzureADRoleAssignments(gomock.Any(), "r1").Return([]azure.UnifiedRoleAssignment{
			{PrincipalId: "u1", RoleDefinitionId: "r1"},
			{PrincipalId: "u2", RoleDefinitionId: "r1"},
		}, nil)
		mockClient.EXPECT().ListAzureADRoleEligibilityScheduleInstances(gomock.Any(), "r1").Return([]azure.UnifiedRoleEligibilityScheduleInstance{
			{PrincipalId: "g1", RoleDefinitionId: "r1"},
		}, nil)

		mockClient.EXPECT().GetAzureADUser(gomock.Any(), "u1").Return(&azure.User{DisplayName: "Alice"}, nil)
		mockClient.EXPECT().GetAzureADUser(gomock.Any(), "u2").Return(&azure.User{DisplayName: "Bob"}, nil)
		mockClient.EXPECT().GetAzureADUser(gomock.Any(), "g1").Return(nil, client.ErrNotFound)
		mockClient.EXPECT().GetAzureADServicePrincipal(gomock.Any(), "g1").Return(nil, client.ErrNotFound)
		mockClient.EXPECT().GetAzureADGroup(gomock.Any(), "g1").Return(&azure.Group{DisplayName: "Eng Team"}, nil)

		collector := newTestCollector(mockClient)
		memberships, err := collector.CollectRole(context.Background(), role)

		require.NoError(t, err)
		require.Equal(t, []Membership{
			{RoleId: "r1", PrincipalId: "u1", RoleType: enums.RoleAssigned, Principal: ResolvedPrincipal{Name: "Alice", Type: enums.PrincipalUser}},
			{RoleId: "r1", PrincipalId: "u2", RoleType: enums.RoleAssigned, Principal: ResolvedPrincipal{Name: "Bob", Type: enums.PrincipalUser}},
			{RoleId: "r1", PrincipalId: "g1", RoleType: enums.RoleEligible, Principal: ResolvedPrincipal{Name: "Eng Team", Type: enums.PrincipalGroup}},
		}, memberships)
	})

	t.Run("a role nobody holds yields an empty result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockClient := mocks.NewMockAzureClient(ctrl)

		mockClient.EXPECT().ListAzureADRoleAssignments(gomock.Any(), "r1").Return(nil, nil)
		mockClient.EXPECT().ListAzureADRoleEligibilityScheduleInstances(gomock.Any(), "r1").Return(nil, nil)

		collector := newTestCollector(mockClient)
		memberships, err := collector.CollectRole(context.Background(), role)

		require.NoError(t, err)
		require.Empty(t, memberships)
	})

	t.Run("assignment listing failure is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockClient := mocks.NewMockAzureClient(ctrl)

		mockClient.EXPECT().ListAzureADRoleAssignments(gomock.Any(), "r1").Return(nil, errors.New("InsufficientPrivileges"))

		collector := newTestCollector(mockClient)
		_, err := collector.CollectRole(context.Background(), role)

		require.ErrorContains(t, err, `unable to list assignments for role "Global Administrator"`)
	})

	t.Run("eligibility listing failure is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockClient := mocks.NewMockAzureClient(ctrl)

		mockClient.EXPECT().ListAzureADRoleAssignments(gomock.Any(), "r1").Return(nil, nil)
		mockClient.EXPECT().ListAzureADRoleEligibilityScheduleInstances(gomock.Any(), "r1").Return(nil, errors.New("InsufficientPrivileges"))

		collector := newTestCollector(mockClient)
		_, err := collector.CollectRole(context.Background(), role)

		require.ErrorContains(t, err, `unable to list eligibility schedule instances for role "Global Administrator"`)
	})
}
