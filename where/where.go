// Package where resolves the application's filesystem locations.
package where

import (
	"os"
	"path/filepath"

	"github.com/flixstream/flixstream/constant"
	"github.com/flixstream/flixstream/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the configuration directory.
const EnvConfigPath = "FLIXSTREAM_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the configuration directory.
// It follows os.UserConfigDir unless FLIXSTREAM_CONFIG_PATH is set.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Flixstream))
}

// Cache is the directory for data that can be safely removed.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Flixstream))
}

// Logs is the directory log files are written to.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// History is the watch history file.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Queries is the file remembered search queries are stored in.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Temp is a scratch directory for player sockets.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Flixstream))
}
