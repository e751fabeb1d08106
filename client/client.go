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

//go:generate go run go.uber.org/mock/mockgen -destination=./mocks/client.go -package=mocks . AzureClient

import (
	"context"
	"errors"
	"fmt"

	"roleaudit/client/config"
	"roleaudit/client/query"
	"roleaudit/client/rest"
	"roleaudit/models/azure"
)

// ErrNotFound indicates the directory holds no object with the requested id.
var ErrNotFound = errors.New("directory object not found")

// AzureClient defines the Microsoft Graph operations the audit needs.
type AzureClient interface {
	ListAzureADRoles(ctx context.Context, params query.GraphParams) ([]azure.UnifiedRoleDefinition, error)
	ListAzureADRoleAssignments(ctx context.Context, roleDefinitionId string) ([]azure.UnifiedRoleAssignment, error)
	ListAzureADRoleEligibilityScheduleInstances(ctx context.Context, roleDefinitionId string) ([]azure.UnifiedRoleEligibilityScheduleInstance, error)
	GetAzureADUser(ctx context.Context, objectId string) (*azure.User, error)
	GetAzureADServicePrincipal(ctx context.Context, objectId string) (*azure.ServicePrincipal, error)
	GetAzureADGroup(ctx context.Context, objectId string) (*azure.Group, error)

	TenantInfo() azure.Tenant
	CloseIdleConnections()
}

func NewClient(config config.Config) (AzureClient, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	} else if msgraph, err := rest.NewRestClient(config.Graph, config); err != nil {
		return nil, err
	} else {
		return &azureClient{
			msgraph: msgraph,
			tenant:  azure.Tenant{TenantId: config.Tenant},
		}, nil
	}
}

type azureClient struct {
	msgraph rest.RestClient
	tenant  azure.Tenant
}

func (s *azureClient) TenantInfo() azure.Tenant {
	return s.tenant
}

func (s *azureClient) CloseIdleConnections() {
	s.msgraph.CloseIdleConnections()
}

// getGraphObject fetches a single directory object by path, mapping a 404
// response to ErrNotFound.
func getGraphObject[T any](ctx context.Context, client rest.RestClient, path string) (*T, error) {
	res, err := client.Get(ctx, path, nil, nil)
	if err != nil {
		if rest.IsNotFoundErr(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, err
	}

	var out T
	if err := rest.Decode(res.Body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func getGraphList[T any](ctx context.Context, client rest.RestClient, path string, params query.GraphParams) ([]T, error) {
	res, err := client.Get(ctx, path, params, nil)
	if err != nil {
		return nil, err
	}

	var list azure.CollectionResponse[T]
	if err := rest.Decode(res.Body, &list); err != nil {
		return nil, err
	}
	return list.Value, nil
}
