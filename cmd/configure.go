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

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"roleaudit/config"
)

func init() {
	rootCmd.AddCommand(configureCmd)
}

var configureCmd = &cobra.Command{
	Use:               "configure",
	Short:             "Interactively store the tenant and credential settings",
	Run:               configureCmdImpl,
	PersistentPreRunE: persistentPreRunE,
	SilenceUsage:      true,
}

func configureCmdImpl(cmd *cobra.Command, args []string) {
	prompts := []struct {
		option config.Option
		label  string
		mask   rune
	}{
		{option: config.AzTenant, label: "Directory (tenant) ID"},
		{option: config.AzAppId, label: "Application (client) ID"},
		{option: config.AzSecret, label: "Client secret", mask: '*'},
	}

	for _, p := range prompts {
		current, _ := p.option.Value().(string)
		prompt := promptui.Prompt{
			Label:   p.label,
			Default: current,
			Mask:    p.mask,
		}

		if value, err := prompt.Run(); err != nil {
			exit(fmt.Errorf("configuration aborted: %w", err))
		} else if value != "" {
			p.option.Set(value)
		}
	}

	if path, err := config.WriteConfig(); err != nil {
		exit(fmt.Errorf("unable to write configuration: %w", err))
	} else {
		fmt.Printf("Configuration saved to %s\n", path)
	}
}
