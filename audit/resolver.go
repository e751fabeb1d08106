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
	"slices"

	"github.com/go-logr/logr"

	"roleaudit/client"
	"roleaudit/constants"
	"roleaudit/enums"
)

// UnknownPrincipalName is reported for ids no object-type lookup can answer.
const UnknownPrincipalName = "Unknown"

// PrincipalResolver classifies opaque principal ids. Role holders share one
// id namespace across users, service principals and groups with no
// discriminant on the membership record itself, so the resolver probes each
// object-type endpoint in a fixed order until one answers. Results are
// memoized for the lifetime of the resolver; a principal holding several
// roles costs one probe sequence.
type PrincipalResolver struct {
	client client.AzureClient
	log    logr.Logger
	cache  map[string]ResolvedPrincipal
}

func NewPrincipalResolver(azClient client.AzureClient, log logr.Logger) *PrincipalResolver {
	return &PrincipalResolver{
		client: azClient,
		log:    log,
		cache:  make(map[string]ResolvedPrincipal),
	}
}

type principalLookup func(ctx context.Context, objectId string) (ResolvedPrincipal, error)

// Resolve determines the display name and principal type for the given
// object id. It never fails: an id no lookup can answer resolves to the
// Unknown principal type.
func (s *PrincipalResolver) Resolve(ctx context.Context, principalId string) ResolvedPrincipal {
	if resolved, ok := s.cache[principalId]; ok {
		return resolved
	}

	resolved := ResolvedPrincipal{Name: UnknownPrincipalName, Type: enums.PrincipalUnknown}

	// Users first; most role holders are users, so this keeps the common
	// case to a single lookup.
	for _, lookup := range []principalLookup{s.lookupUser, s.lookupServicePrincipal, s.lookupGroup} {
		if principal, err := lookup(ctx, principalId); err == nil {
			resolved = principal
			break
		} else if !errors.Is(err, client.ErrNotFound) {
			s.log.V(1).Info("principal lookup failed", "principalId", principalId, "error", err.Error())
		}
	}

	s.cache[principalId] = resolved
	return resolved
}

func (s *PrincipalResolver) lookupUser(ctx context.Context, objectId string) (ResolvedPrincipal, error) {
	user, err := s.client.GetAzureADUser(ctx, objectId)
	if err != nil {
		return ResolvedPrincipal{}, err
	}
	return ResolvedPrincipal{Name: user.DisplayName, Type: enums.PrincipalUser}, nil
}

func (s *PrincipalResolver) lookupServicePrincipal(ctx context.Context, objectId string) (ResolvedPrincipal, error) {
	servicePrincipal, err := s.client.GetAzureADServicePrincipal(ctx, objectId)
	if err != nil {
		return ResolvedPrincipal{}, err
	}

	principalType := enums.PrincipalServicePrincipal
	if slices.Contains(servicePrincipal.Tags, constants.ManagedIdentityTag) {
		principalType = enums.PrincipalManagedIdentity
	}
	return ResolvedPrincipal{Name: servicePrincipal.DisplayName, Type: principalType}, nil
}

func (s *PrincipalResolver) lookupGroup(ctx context.Context, objectId string) (ResolvedPrincipal, error) {
	group, err := s.client.GetAzureADGroup(ctx, objectId)
	if err != nil {
		return ResolvedPrincipal{}, err
	}
	return ResolvedPrincipal{Name: group.DisplayName, Type: enums.PrincipalGroup}, nil
}
