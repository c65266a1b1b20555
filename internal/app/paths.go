package app

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// DefaultLogDir returns the directory used for the log file when none is configured.
func DefaultLogDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "testnet")
	}
	return filepath.Join(os.TempDir(), "testnet")
}

// ConfigureViper sets up viper with standard config file search paths.
// Config file: testnet.toml
// Search paths (in order): /etc/testnet, ~/.config/testnet, current directory
func ConfigureViper(v *viper.Viper, configPath string) {
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("testnet")
		v.SetConfigType("toml")
		v.AddConfigPath("/etc/testnet")
		v.AddConfigPath("$HOME/.config/testnet")
		v.AddConfigPath(".")
	}
}
