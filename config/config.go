// Package config registers every setting with its default and loads them through viper.
//
// Precedence, highest first: command line flags bound in cmd, FLIXSTREAM_* environment
// variables, the TOML file under where.Config, then the registered defaults.
package config

import (
	"errors"
	"strings"

	"github.com/flixstream/flixstream/constant"
	"github.com/flixstream/flixstream/filesystem"
	"github.com/flixstream/flixstream/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps setting keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup applies defaults, binds the environment and reads the config file if there is one.
func Setup() error {
	viper.SetFs(filesystem.API())
	viper.SetConfigName(constant.Flixstream)
	viper.SetConfigType("toml")
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Flixstream)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	viper.SetTypeByDefaultValue(true)

	for name, field := range Default {
		viper.SetDefault(name, field.Value)
		if err := viper.BindEnv(name); err != nil {
			return err
		}
	}

	var notFound viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return err
	}
	return nil
}
