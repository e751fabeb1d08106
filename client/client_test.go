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

package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"roleaudit/client/config"
	"roleaudit/client/query"
)

func newTestClient(t *testing.T, handler http.Handler) AzureClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	azClient, err := NewClient(config.Config{
		Tenant:    "contoso.onmicrosoft.com",
		JWT:       "test-access-token",
		Authority: server.URL,
		Graph:     server.URL,
	})
	require.NoError(t, err)
	return azClient
}

func TestNewClient(t *testing.T) {
	t.Run("requires a tenant", func(t *testing.T) {
		_, err := NewClient(config.Config{JWT: "token"})
		require.ErrorContains(t, err, "no tenant specified")
	})

	t.Run("requires a credential", func(t *testing.T) {
		_, err := NewClient(config.Config{Tenant: "contoso", ApplicationId: "app-id"})
		require.ErrorContains(t, err, "no client secret, certificate or username/password specified")
	})
}

func TestListAzureADRoles(t *testing.T) {
	t.Run("decodes the collection envelope", func(t *testing.T) {
		azClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1.0/roleManagement/directory/roleDefinitions", r.URL.Path)
			require.Equal(t, "Bearer test-access-token", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"value": [
					{"id": "r1", "displayName": "Global Administrator", "isBuiltIn": true},
					{"id": "r2", "displayName": "User", "isBuiltIn": true}
				]
			}`))
		}))

		roles, err := azClient.ListAzureADRoles(context.Background(), query.GraphParams{})
		require.NoError(t, err)
		require.Len(t, roles, 2)
		require.Equal(t, "r1", roles[0].Id)
		require.Equal(t, "Global Administrator", roles[0].DisplayName)
	})

	t.Run("forwards the filter as an OData parameter", func(t *testing.T) {
		azClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "isBuiltIn eq true", r.URL.Query().Get("$filter"))
			w.Write([]byte(`{"value": []}`))
		}))

		_, err := azClient.ListAzureADRoles(context.Background(), query.GraphParams{Filter: "isBuiltIn eq true"})
		require.NoError(t, err)
	})
}

func TestListAzureADRoleAssignments(t *testing.T) {
	azClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1.0/roleManagement/directory/roleAssignments", r.URL.Path)
		require.Equal(t, "roleDefinitionId eq 'r1'", r.URL.Query().Get("$filter"))

		w.Write([]byte(`{"value": [{"id": "a1", "principalId": "u1", "roleDefinitionId": "r1"}]}`))
	}))

	assignments, err := azClient.ListAzureADRoleAssignments(context.Background(), "r1")
	require.NoError(t, err)
	require.Len(t, assignments, 1)
	require.Equal(t, "u1", assignments[0].PrincipalId)
}

func TestListAzureADRoleEligibilityScheduleInstances(t *testing.T) {
	azClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1.0/roleManagement/directory/roleEligibilityScheduleInstances", r.URL.Path)
		require.Equal(t, "roleDefinitionId eq 'r1'", r.URL.Query().Get("$filter"))

		w.Write([]byte(`{"value": [{"id": "e1", "principalId": "g1", "roleDefinitionId": "r1", "memberType": "Direct"}]}`))
	}))

	eligibilities, err := azClient.ListAzureADRoleEligibilityScheduleInstances(context.Background(), "r1")
	require.NoError(t, err)
	require.Len(t, eligibilities, 1)
	require.Equal(t, "g1", eligibilities[0].PrincipalId)
}

func TestGetAzureADUser(t *testing.T) {
	t.Run("decodes the user object", func(t *testing.T) {
		azClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/v1.0/users/u1", r.URL.Path)
			w.Write([]byte(`{"id": "u1", "displayName": "Alice", "userPrincipalName": "alice@contoso.onmicrosoft.com"}`))
		}))

		user, err := azClient.GetAzureADUser(context.Background(), "u1")
		require.NoError(t, err)
		require.Equal(t, "Alice", user.DisplayName)
	})

	t.Run("maps 404 to ErrNotFound", func(t *testing.T) {
		azClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": {"code": "Request_ResourceNotFound"}}`))
		}))

		_, err := azClient.GetAzureADUser(context.Background(), "missing")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("keeps other errors distinct from ErrNotFound", func(t *testing.T) {
		azClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"error": {"code": "Authorization_RequestDenied"}}`))
		}))

		_, err := azClient.GetAzureADUser(context.Background(), "u1")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestGetAzureADServicePrincipal(t *testing.T) {
	azClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1.0/servicePrincipals/sp1", r.URL.Path)
		w.Write([]byte(`{"id": "sp1", "displayName": "vm-identity", "tags": ["ManagedIdentity"]}`))
	}))

	servicePrincipal, err := azClient.GetAzureADServicePrincipal(context.Background(), "sp1")
	require.NoError(t, err)
	require.Equal(t, "vm-identity", servicePrincipal.DisplayName)
	require.Contains(t, servicePrincipal.Tags, "ManagedIdentity")
}

func TestGetAzureADGroup(t *testing.T) {
	azClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1.0/groups/g1", r.URL.Path)
		w.Write([]byte(`{"id": "g1", "displayName": "Eng Team", "securityEnabled": true}`))
	}))

	group, err := azClient.GetAzureADGroup(context.Background(), "g1")
	require.NoError(t, err)
	require.Equal(t, "Eng Team", group.DisplayName)
}

func TestTenantInfo(t *testing.T) {
	azClient := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	require.Equal(t, "contoso.onmicrosoft.com", azClient.TenantInfo().TenantId)
}
