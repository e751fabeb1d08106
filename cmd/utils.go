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

	"github.com/spf13/cobra"
	"golang.org/x/net/proxy"

	"roleaudit/client"
	client_config "roleaudit/client/config"
	"roleaudit/client/rest"
	"roleaudit/config"
	"roleaudit/logger"
)

func init() {
	proxy.RegisterDialerType("http", rest.NewProxyDialer)
	proxy.RegisterDialerType("https", rest.NewProxyDialer)
}

func exit(err error) {
	log.Error(err, "encountered unrecoverable error")
	os.Exit(1)
}

func persistentPreRunE(cmd *cobra.Command, args []string) error {
	// need to set config flag value explicitly
	if cmd != nil {
		if configFlag := cmd.Flag(config.ConfigFile.Name).Value.String(); configFlag != "" {
			config.ConfigFile.Set(configFlag)
		}
	}

	config.LoadValues(cmd, config.Options())

	if logr, err := logger.GetLogger(); err != nil {
		return err
	} else {
		log = *logr

		if config.ConfigFileUsed() != "" {
			log.V(1).Info(fmt.Sprintf("Config File: %v", config.ConfigFileUsed()))
		}

		return nil
	}
}

func testConnections() error {
	proxyUrl, _ := config.Proxy.Value().(string)
	if _, err := rest.Dial(log, proxyUrl, config.AzAuthUrl.Value().(string)); err != nil {
		return fmt.Errorf("unable to connect to %s: %w", config.AzAuthUrl.Value(), err)
	} else if _, err := rest.Dial(log, proxyUrl, config.AzGraphUrl.Value().(string)); err != nil {
		return fmt.Errorf("unable to connect to %s: %w", config.AzGraphUrl.Value(), err)
	} else {
		return nil
	}
}

func newAzureClient() (client.AzureClient, error) {
	var (
		certFile   = config.AzCert.Value()
		keyFile    = config.AzKey.Value()
		clientCert string
		clientKey  string
	)

	if file, ok := certFile.(string); ok && file != "" {
		if content, err := os.ReadFile(file); err != nil {
			return nil, fmt.Errorf("unable to read provided certificate: %w", err)
		} else {
			clientCert = string(content)
		}
	}

	if file, ok := keyFile.(string); ok && file != "" {
		if content, err := os.ReadFile(file); err != nil {
			return nil, fmt.Errorf("unable to read provided key file: %w", err)
		} else {
			clientKey = string(content)
		}
	}

	config := client_config.Config{
		ApplicationId: config.AzAppId.Value().(string),
		Authority:     config.AzAuthUrl.Value().(string),
		ClientSecret:  config.AzSecret.Value().(string),
		ClientCert:    clientCert,
		ClientKey:     clientKey,
		ClientKeyPass: config.AzKeyPass.Value().(string),
		Graph:         config.AzGraphUrl.Value().(string),
		JWT:           config.JWT.Value().(string),
		Password:      config.AzPassword.Value().(string),
		ProxyUrl:      config.Proxy.Value().(string),
		RefreshToken:  config.RefreshToken.Value().(string),
		Tenant:        config.AzTenant.Value().(string),
		Username:      config.AzUsername.Value().(string),
	}
	return client.NewClient(config)
}

func connectAndCreateClient() client.AzureClient {
	log.V(1).Info("testing connections")
	if err := testConnections(); err != nil {
		exit(fmt.Errorf("failed to test connections: %w", err))
	} else if azClient, err := newAzureClient(); err != nil {
		exit(fmt.Errorf("failed to create new Azure client: %w", err))
	} else {
		return azClient
	}

	panic("unexpectedly failed to create azClient without error")
}
