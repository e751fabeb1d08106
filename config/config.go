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
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"roleaudit/constants"
)

const EnvPrefix = "ROLEAUDIT"

// Option is a single configuration value resolvable from flag, environment
// variable or config file, in that order of precedence.
type Option struct {
	Name       string
	Shorthand  string
	Usage      string
	Persistent bool
	Required   bool
	Default    interface{}
}

func (s Option) Value() interface{} {
	return viper.Get(s.Name)
}

func (s Option) Set(value interface{}) {
	viper.Set(s.Name, value)
}

// Init registers the given options as cobra flags and binds them to viper.
func Init(cmd *cobra.Command, options []Option) {
	for _, option := range options {
		var flags *pflag.FlagSet
		if option.Persistent {
			flags = cmd.PersistentFlags()
		} else {
			flags = cmd.Flags()
		}

		switch typed := option.Default.(type) {
		case string:
			flags.StringP(option.Name, option.Shorthand, typed, option.Usage)
		case bool:
			flags.BoolP(option.Name, option.Shorthand, typed, option.Usage)
		case int:
			flags.IntP(option.Name, option.Shorthand, typed, option.Usage)
		default:
			panic(fmt.Sprintf("unsupported default type for option %s: %T", option.Name, option.Default))
		}

		if option.Required {
			cmd.MarkFlagRequired(option.Name)
		}

		viper.BindPFlag(option.Name, flags.Lookup(option.Name))
		viper.SetDefault(option.Name, option.Default)
	}
}

// LoadValues wires up environment variables and reads the config file when
// one is present. A missing config file is not an error.
func LoadValues(cmd *cobra.Command, options []Option) {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if path, ok := ConfigFile.Value().(string); ok && path != "" {
		viper.SetConfigFile(path)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("json")
		viper.AddConfigPath(DefaultConfigDir())
	}

	viper.ReadInConfig()
}

func ConfigFileUsed() string {
	return viper.ConfigFileUsed()
}

// DefaultConfigDir is ~/.config/roleaudit, falling back to the working
// directory when the home directory cannot be determined.
func DefaultConfigDir() string {
	if home, err := os.UserHomeDir(); err != nil {
		return "."
	} else {
		return filepath.Join(home, ".config", constants.Name)
	}
}

// WriteConfig persists the current settings to the active config file, or to
// the default location when none was given.
func WriteConfig() (string, error) {
	path, _ := ConfigFile.Value().(string)
	if path == "" {
		path = filepath.Join(DefaultConfigDir(), "config.json")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return "", err
	}
	return path, viper.WriteConfigAs(path)
}
