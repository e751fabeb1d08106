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
	"fmt"
	"strings"
)

// Config holds the session settings for the Microsoft Graph client.
type Config struct {
	ApplicationId string // The Application Id that the client should masquerade as
	Authority     string // The host URL of the authentication provider
	ClientSecret  string // The secret for the application registered in the tenant
	ClientCert    string // The certificate uploaded to the application registered in the tenant
	ClientKey     string // The private key of the certificate
	ClientKeyPass string // The passphrase for the private key
	Graph         string // The host URL of the Microsoft Graph API
	JWT           string // A pre-acquired access token for the Graph API
	Password      string // The password of the user to authenticate as
	ProxyUrl      string // The forward proxy to route requests through
	RefreshToken  string // A refresh token to exchange for an access token
	Tenant        string // The directory tenant to audit, as an Id or domain name
	Username      string // The name of the user to authenticate as
}

func (s Config) AuthorityUrl() string {
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(s.Authority, "/"), s.Tenant)
}

// Validate checks that at least one usable credential is present.
func (s Config) Validate() error {
	if s.Tenant == "" {
		return fmt.Errorf("no tenant specified")
	} else if s.JWT != "" || s.RefreshToken != "" {
		return nil
	} else if s.ApplicationId == "" {
		return fmt.Errorf("no application id specified")
	} else if s.ClientSecret == "" && s.ClientCert == "" && s.Username == "" {
		return fmt.Errorf("no client secret, certificate or username/password specified")
	} else {
		return nil
	}
}
