// Package config is responsible for the program configuration derived
// from the config file and command-line arguments.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

const Version = "v1.0.0"

const (
	configNotify          = "notify"
	configDarkTheme       = "dark_theme"
	configLongSessionMins = "long_session_mins"
	configProjectsDir     = "projects_dir"
)

const defaultLongSessionMins = 60

var (
	configDir        = "psp"
	configFileName   = "config.yml"
	registryFileName = "projects.db"
	logFileName      = "psp.log"

	configFilePath   string
	registryFilePath string
	logFilePath      string
)

var once sync.Once

// Config represents the program configuration from the config file and
// command-line arguments.
type Config struct {
	PathToConfig    string `json:"path_to_config"`
	ProjectsDir     string `json:"projects_dir"`
	LongSessionMins int    `json:"long_session_mins"`
	Notify          bool   `json:"notify"`
	DarkTheme       bool   `json:"dark_theme"`
}

// Threshold returns the long-session notification threshold.
func (c *Config) Threshold() time.Duration {
	return time.Duration(c.LongSessionMins) * time.Minute
}

func init() {
	pspEnv := strings.TrimSpace(os.Getenv("PSP_ENV"))
	if pspEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", pspEnv)
		registryFileName = fmt.Sprintf("projects_%s.db", pspEnv)
		logFileName = fmt.Sprintf("psp_%s.log", pspEnv)
	}
}

// RegistryFilePath returns the path to the recent-project registry.
func RegistryFilePath() string {
	return registryFilePath
}

// LogFilePath returns the path to the application log file.
func LogFilePath() string {
	return logFilePath
}

// ConfigFilePath returns the path to the configuration file.
func ConfigFilePath() string {
	return configFilePath
}

func initialisePaths() error {
	relPath := filepath.Join(configDir, configFileName)

	var err error

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		return err
	}

	registryFilePath = filepath.Join(dataDir, registryFileName)
	logFilePath = filepath.Join(dataDir, "log", logFileName)

	return nil
}

// initConfig loads the configuration file, writing one with the
// default settings first if it does not exist yet.
func initConfig() (*Config, error) {
	if err := initialisePaths(); err != nil {
		return nil, err
	}

	dataDir := filepath.Dir(registryFilePath)

	viper.SetConfigFile(configFilePath)
	viper.SetConfigType("yaml")

	viper.SetDefault(configNotify, true)
	viper.SetDefault(configDarkTheme, true)
	viper.SetDefault(configLongSessionMins, defaultLongSessionMins)
	viper.SetDefault(configProjectsDir, filepath.Join(dataDir, "projects"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !os.IsNotExist(err) {
			return nil, err
		}

		if err := viper.WriteConfigAs(configFilePath); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		PathToConfig:    configFilePath,
		ProjectsDir:     viper.GetString(configProjectsDir),
		LongSessionMins: viper.GetInt(configLongSessionMins),
		Notify:          viper.GetBool(configNotify),
		DarkTheme:       viper.GetBool(configDarkTheme),
	}

	if cfg.LongSessionMins <= 0 {
		cfg.LongSessionMins = defaultLongSessionMins
	}

	if err := os.MkdirAll(cfg.ProjectsDir, 0o755); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Get retrieves the application configuration, initialising it on
// first use. Command-line flags override the file settings.
func Get(ctx *cli.Context) *Config {
	var cfg *Config

	once.Do(func() {
		var err error

		cfg, err = initConfig()
		if err != nil {
			pterm.Error.Printfln("unable to initialise psp settings: %v", err)
			os.Exit(1)
		}

		if ctx != nil {
			if ctx.Bool("disable-notification") {
				cfg.Notify = false
			}

			if ctx.Uint("long-session") > 0 {
				cfg.LongSessionMins = int(ctx.Uint("long-session"))
			}
		}

		current = cfg
	})

	return current
}

var current *Config
