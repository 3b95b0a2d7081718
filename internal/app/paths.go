package app

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultDataDir returns the default data directory.
func DefaultDataDir() string {
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".domaingate")
	}
	return "/var/lib/domaingate"
}

// ConfigureViper sets up viper with standard config file search paths.
// Config file: domaingate.{yaml,toml}
// Search paths (in order): current directory, ~/.config/domaingate, /etc/domaingate
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		return
	}
	v.SetConfigName("domaingate")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/domaingate")
	v.AddConfigPath("/etc/domaingate")
}
