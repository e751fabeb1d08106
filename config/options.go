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

import "roleaudit/constants"

var (
	ConfigFile = Option{
		Name:       "config",
		Shorthand:  "c",
		Usage:      "Location of the configuration file",
		Persistent: true,
		Default:    "",
	}

	Verbosity = Option{
		Name:       "verbosity",
		Shorthand:  "v",
		Usage:      "Enable verbose output; use -v=2 for trace level",
		Persistent: true,
		Default:    0,
	}

	JsonLogs = Option{
		Name:       "json",
		Usage:      "Output logs as JSON",
		Persistent: true,
		Default:    false,
	}

	LogFile = Option{
		Name:       "log-file",
		Usage:      "Also write logs to this file",
		Persistent: true,
		Default:    "",
	}

	Proxy = Option{
		Name:       "proxy",
		Usage:      "Sets the proxy URL to use when making requests, e.g. http://proxy:8080",
		Persistent: true,
		Default:    "",
	}
)

var (
	AzTenant = Option{
		Name:       "tenant",
		Shorthand:  "t",
		Usage:      "The directory tenant to audit, as an ID or domain name",
		Persistent: true,
		Default:    "",
	}

	AzAppId = Option{
		Name:       "app",
		Shorthand:  "a",
		Usage:      "The Application Id of the app registration to authenticate as",
		Persistent: true,
		Default:    "",
	}

	AzSecret = Option{
		Name:       "secret",
		Shorthand:  "s",
		Usage:      "The client secret of the app registration",
		Persistent: true,
		Default:    "",
	}

	AzCert = Option{
		Name:       "cert",
		Usage:      "Path to the certificate uploaded to the app registration",
		Persistent: true,
		Default:    "",
	}

	AzKey = Option{
		Name:       "key",
		Usage:      "Path to the private key of the certificate",
		Persistent: true,
		Default:    "",
	}

	AzKeyPass = Option{
		Name:       "keypass",
		Usage:      "The passphrase of the private key",
		Persistent: true,
		Default:    "",
	}

	AzUsername = Option{
		Name:       "username",
		Shorthand:  "u",
		Usage:      "The user principal name to authenticate as",
		Persistent: true,
		Default:    "",
	}

	AzPassword = Option{
		Name:       "password",
		Shorthand:  "p",
		Usage:      "The password of the user",
		Persistent: true,
		Default:    "",
	}

	RefreshToken = Option{
		Name:       "refresh-token",
		Shorthand:  "r",
		Usage:      "A refresh token to exchange for Graph access",
		Persistent: true,
		Default:    "",
	}

	JWT = Option{
		Name:       "jwt",
		Shorthand:  "j",
		Usage:      "A pre-acquired access token for the Graph API",
		Persistent: true,
		Default:    "",
	}

	AzAuthUrl = Option{
		Name:       "auth",
		Usage:      "The authentication URL for the identity platform",
		Persistent: true,
		Default:    constants.AuthorityUrl,
	}

	AzGraphUrl = Option{
		Name:       "graph",
		Usage:      "The Microsoft Graph URL",
		Persistent: true,
		Default:    constants.GraphUrl,
	}
)

var (
	RoleFilter = Option{
		Name:      "filter",
		Shorthand: "f",
		Usage:     "Only audit roles whose display name matches this case-insensitive pattern",
		Default:   "admin",
	}

	OutputFile = Option{
		Name:      "output",
		Shorthand: "o",
		Usage:     "Also write the report to this path as CSV",
		Default:   "",
	}
)

func GlobalConfig() []Option {
	return []Option{ConfigFile, Verbosity, JsonLogs, LogFile, Proxy}
}

func AzureConfig() []Option {
	return []Option{
		AzTenant, AzAppId, AzSecret, AzCert, AzKey, AzKeyPass,
		AzUsername, AzPassword, RefreshToken, JWT, AzAuthUrl, AzGraphUrl,
	}
}

func ReportConfig() []Option {
	return []Option{RoleFilter, OutputFile}
}

func Options() []Option {
	options := GlobalConfig()
	options = append(options, AzureConfig()...)
	options = append(options, ReportConfig()...)
	return options
}
