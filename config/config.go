// Package config registers the settings of the proxer CLI and loads them with viper.
package config

import (
	"strings"

	"github.com/Ceeox/proxer-go/constant"
	"github.com/Ceeox/proxer-go/filesystem"
	"github.com/Ceeox/proxer-go/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer turns a config key into the suffix of its environment variable.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup binds the environment, applies the defaults and reads the config file if there is one.
func Setup() error {
	viper.SetConfigName(constant.Proxer)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Proxer)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}

	return nil
}
