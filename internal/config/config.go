// Package config reads shoplist settings from the environment.
// Command-line flags are applied on top by the cli package.
package config

import "os"

// Config holds the settings shared by every subcommand.
type Config struct {
	ItemsFile string // JSON startup list; empty means the built-in sample
	Theme     string
	LogLevel  string
	LogFile   string
	Sync      bool // filter inline instead of in a tea.Cmd
	NoColor   bool
}

// Load reads Config from the environment, using defaults for unset keys.
func Load() *Config {
	_, noColor := os.LookupEnv("NO_COLOR")
	return &Config{
		ItemsFile: getEnv("SHOPLIST_ITEMS", ""),
		Theme:     getEnv("SHOPLIST_THEME", "classic"),
		LogLevel:  getEnv("SHOPLIST_LOG_LEVEL", "info"),
		LogFile:   getEnv("SHOPLIST_LOG_FILE", ""),
		Sync:      os.Getenv("SHOPLIST_SYNC") == "1",
		NoColor:   noColor,
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
