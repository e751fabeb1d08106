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

func TestPrincipalResolver_Resolve(t *testing.T) {
	t.Run("user resolves with a single probe", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockClient := mocks.NewMockAzureClient(ctrl)

		mockClient.EXPECT().GetAzureADUser(gomock.Any(), "u1").Return(&azure.User{DisplayName: "Alice"}, nil).Times(1)

		resolver := NewPrincipalResolver(mockClient, logr.Discard())
		resolved := resolver.Resolve(context.Background(), "u1")

		require.Equal(t, "Alice", resolved.Name)
		require.Equal(t, enums.PrincipalUser, resolved.Type)
	})

	t.Run("service principal resolves on the second probe", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockClient := mocks.NewMockAzureClient(ctrl)

		mockClient.EXPECT().GetAzureADUser(gomock.Any(), "sp1").Return(nil, client.ErrNotFound).Times(1)
		mockClient.EXPECT().GetAzureADServicePrincipal(gomock.Any(), "sp1").Return(&azure.ServicePrincipal{DisplayName: "backup-app"}, nil).Times(1)

		resolver := NewPrincipalResolver(mockClient, logr.Discard())
		resolved := resolver.Resolve(context.Background(), "sp1")

		require.Equal(t, "backup-app", resolved.Name)
		require.Equal(t, enums.PrincipalServicePrincipal, resolved.Type)
	})

	t.Run("managed identity tag reclassifies a service principal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockClient := mocks.NewMockAzureClient(ctrl)

		mockClient.EXPECT().GetAzureADUser(gomock.Any(), "mi1").Return(nil, client.ErrNotFound)
		mockClient.EXPECT().GetAzureADServicePrincipal(gomock.Any(), "mi1").Return(&azure.ServicePrincipal{
			DisplayName: "vm-identity",
			Tags:        []string{"WindowsAzureActiveDirectoryIntegratedApp", "ManagedIdentity"},
		}, nil)

		resolver := NewPrincipalResolver(mockClient, logr.Discard())
		resolved := resolver.Resolve(context.Background(), "mi1")

		require.Equal(t, "vm-identity", resolved.Name)
		require.Equal(t, enums.PrincipalManagedIdentity, resolved.Type)
	})

	t.Run("group resolves after all three probes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockClient := mocks.NewMockAzureClient(ctrl)

		mockClient.EXPECT().GetAzureADUser(gomock.Any(), "g1").Return(nil, client.ErrNotFound).Times(1)
		mockClient.EXPECT().GetAzureADServicePrincipal(gomock.Any(), "g1").Return(nil, client.ErrNotFound).Times(1)
		mockClient.EXPECT().GetAzureADGroup(gomock.Any(), "g1").Return(&azure.Group{DisplayName: "Eng Team"}, nil).Times(1)

		resolver := NewPrincipalResolver(mockClient, logr.Discard())
		resolved := resolver.Resolve(context.Background(), "g1")

		require.Equal(t, "Eng Team", resolved.Name)
		require.Equal(t, enums.PrincipalGroup, resolved.Type)
	})

	t.Run("unresolvable id maps to Unknown without error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockClient := mocks.NewMockAzureClient(ctrl)

		mockClient.EXPECT().GetAzureADUser(gomock.Any(), "ghost").Return(nil, client.ErrNotFound)
		mockClient.EXPECT().GetAzureADServicePrincipal(gomock.Any(), "ghost").Return(nil, client.ErrNotFound)
		mockClient.EXPECT().GetAzureADGroup(gomock.Any(), "ghost").Return(nil, client.ErrNotFound)

		resolver := NewPrincipalResolver(mockClient, logr.Discard())
		resolved := resolver.Resolve(context.Background(), "ghost")

		require.Equal(t, UnknownPrincipalName, resolved.Name)
		require.Equal(t, enums.PrincipalUnknown, resolved.Type)
	})

	t.Run("transport faults fall through to Unknown", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockClient := mocks.NewMockAzureClient(ctrl)

		transportErr := errors.New("connection reset by peer")
		mockClient.EXPECT().GetAzureADUser(gomock.Any(), "u2").Return(nil, transportErr)
		mockClient.EXPECT().GetAzureADServicePrincipal(gomock.Any(), "u2").Return(nil, transportErr)
		mockClient.EXPECT().GetAzureADGroup(gomock.Any(), "u2").Return(nil, transportErr)

		resolver := NewPrincipalResolver(mockClient, logr.Discard())
		resolved := resolver.Resolve(context.Background(), "u2")

		require.Equal(t, enums.PrincipalUnknown, resolved.Type)
	})

	t.Run("results are memoized per id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockClient := mocks.NewMockAzureClient(ctrl)

		mockClient.EXPECT().GetAzureADUser(gomock.Any(), "u1").Return(&azure.User{DisplayName: "Alice"}, nil).Times(1)

		resolver := NewPrincipalResolver(mockClient, logr.Discard())
		first := resolver.Resolve(context.Background(), "u1")
		second := resolver.Resolve(context.Background(), "u1")

		require.Equal(t, first, second)
	})
}
