// Package where resolves the directories the CLI keeps its files in.
package where

import (
	"os"
	"path/filepath"

	"github.com/Ceeox/proxer-go/constant"
	"github.com/Ceeox/proxer-go/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the config directory.
const EnvConfigPath = "PROXER_CONFIG_PATH"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the directory of proxer.toml, or $PROXER_CONFIG_PATH when set.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return mkdir(custom)
	}

	return mkdir(filepath.Join(lo.Must(os.UserConfigDir()), constant.Proxer))
}

// Cache holds the version check cache and the search history.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return mkdir(filepath.Join(base, constant.Proxer))
}

// Queries is the search history file.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Logs holds the rotated log files.
func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// Temp is removed by "proxer clear --temp".
func Temp() string {
	return mkdir(filepath.Join(os.TempDir(), constant.Proxer))
}

// ConfigFile is the location "proxer config write" writes to.
func ConfigFile() string {
	return filepath.Join(Config(), constant.Proxer+".toml")
}
