// ABOUTME: Workouts configuration management with backend selection
// ABOUTME: Handles settings, environment overrides, and the storage slot factory

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/harper/workouts/internal/charm"
	"github.com/harper/workouts/internal/models"
	"github.com/harper/workouts/internal/storage"
	"github.com/harper/workouts/internal/view"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendCharm  = "charm"
)

// Backends lists the supported storage backends.
var Backends = []string{BackendFile, BackendSQLite, BackendBadger, BackendCharm}

// Config stores workouts configuration.
type Config struct {
	// Backend selects the storage backend: "file" (default), "sqlite", "badger", or "charm".
	Backend string `json:"backend,omitempty"`

	// DataDir is the root directory for data storage.
	// Supports ~ expansion for home directory. Defaults to ~/.local/share/workouts.
	DataDir string `json:"data_dir,omitempty"`

	// ZoomLevel is the map zoom used for the current location and focus.
	ZoomLevel int `json:"zoom_level,omitempty"`

	// Home is the coordinate reported as the current location.
	// Without it the app runs without a map.
	Home *models.Coordinate `json:"home,omitempty"`

	// IDScheme selects how workout ids are generated: "uuid" (default) or "timestamp".
	IDScheme string `json:"id_scheme,omitempty"`

	LogLevel string `json:"log_level,omitempty"`
}

const (
	defaultFileName   = "workouts.json"
	defaultDBFilename = "workouts.db"
	defaultBadgerDir  = "badger"
)

// GetBackend returns the configured backend, defaulting to "file".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return BackendFile
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return defaultDataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetZoomLevel returns the configured zoom, defaulting to view.DefaultZoom.
func (c *Config) GetZoomLevel() int {
	if c.ZoomLevel <= 0 {
		return view.DefaultZoom
	}
	return c.ZoomLevel
}

// GetLogLevel returns the configured log level, defaulting to "info".
func (c *Config) GetLogLevel() string {
	if c.LogLevel == "" {
		return "info"
	}
	return c.LogLevel
}

// IDGenerator returns the id generator for the configured scheme.
func (c *Config) IDGenerator() (models.IDGenerator, error) {
	gen, ok := models.IDScheme(c.IDScheme)
	if !ok {
		return nil, fmt.Errorf("unknown id scheme: %q (use uuid or timestamp)", c.IDScheme)
	}
	return gen, nil
}

// Validate checks the configured values.
func (c *Config) Validate() error {
	if !slices.Contains(Backends, c.GetBackend()) {
		return fmt.Errorf("unknown backend: %q", c.Backend)
	}
	if c.ZoomLevel < 0 || c.ZoomLevel > 19 {
		return fmt.Errorf("zoom_level must be between 1 and 19, got %d", c.ZoomLevel)
	}
	if _, err := c.IDGenerator(); err != nil {
		return err
	}
	if c.Home != nil {
		if err := models.ValidateCoordinates(c.Home.Lat, c.Home.Lng); err != nil {
			return fmt.Errorf("home: %w", err)
		}
	}
	return nil
}

// ApplyEnv overrides fields from WORKOUTS_* environment variables.
func (c *Config) ApplyEnv() {
	c.Backend = getEnv("WORKOUTS_BACKEND", c.Backend)
	c.DataDir = getEnv("WORKOUTS_DATA_DIR", c.DataDir)
	c.IDScheme = getEnv("WORKOUTS_ID_SCHEME", c.IDScheme)
	c.LogLevel = getEnv("WORKOUTS_LOG_LEVEL", c.LogLevel)
	c.ZoomLevel = getIntEnv("WORKOUTS_ZOOM", c.ZoomLevel)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// defaultDataDir returns the default XDG data directory for workouts.
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "workouts")
}

// defaultFirstRunConfig returns the appropriate default config for first-time runs.
// If an existing SQLite database is found, it keeps SQLite as the backend.
func defaultFirstRunConfig() *Config {
	dbPath := filepath.Join(defaultDataDir(), defaultDBFilename)
	_, err := os.Stat(dbPath)
	switch {
	case err == nil:
		return &Config{Backend: BackendSQLite}
	case !os.IsNotExist(err):
		fmt.Fprintf(os.Stderr, "warning: could not check for existing database: %v\n", err)
	}
	return &Config{Backend: BackendFile}
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenSlot creates the storage slot for the configured backend.
func (c *Config) OpenSlot() (storage.Slot, error) {
	return OpenBackend(c.GetBackend(), c.GetDataDir())
}

// OpenBackend creates the storage slot for backend rooted at dataDir.
func OpenBackend(backend, dataDir string) (storage.Slot, error) {
	switch backend {
	case BackendFile:
		return storage.NewFileSlot(filepath.Join(dataDir, defaultFileName))
	case BackendSQLite:
		return storage.NewSQLiteSlot(filepath.Join(dataDir, defaultDBFilename))
	case BackendBadger:
		return storage.NewBadgerSlot(filepath.Join(dataDir, defaultBadgerDir))
	case BackendCharm:
		return charm.NewClient(charm.DefaultConfig())
	default:
		return nil, fmt.Errorf("unknown backend: %q", backend)
	}
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "workouts", "config.json")
}

// Load reads config from disk and applies environment overrides.
func Load() (*Config, error) {
	cfg, err := loadFile()
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

func loadFile() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := defaultFirstRunConfig()
			if saveErr := cfg.Save(); saveErr != nil {
				fmt.Fprintf(os.Stderr, "warning: could not save default config: %v\n", saveErr)
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return storage.AtomicWrite(path, data)
}
