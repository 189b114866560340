package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	perrors "github.com/oashamkll/Myapp-02/internal/errors"
	"github.com/oashamkll/Myapp-02/internal/logger"
)

// Defaults applied when the config file is missing or leaves a field empty
const (
	DefaultUserName = "You"
	DefaultBotName  = "Bot"

	// MaxNameLength caps the bubble labels so they fit beside the timestamp
	MaxNameLength = 24
)

// Config holds the application configuration
type Config struct {
	Theme                string `json:"theme,omitempty"`                 // UI theme name (e.g., "dark-purple", "nord")
	UserName             string `json:"user_name,omitempty"`             // Label on the user's bubbles
	BotName              string `json:"bot_name,omitempty"`              // Label on the bot's bubbles
	NotificationsEnabled bool   `json:"notifications_enabled,omitempty"` // Desktop notification on bot reply while unfocused
	ShowTimestamps       bool   `json:"show_timestamps"`                 // Render HH:MM next to bubble labels

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".chatmock"), nil
}

// DefaultPath returns the path of the config file in the user's home directory
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// New returns a config with defaults, bound to path for Save
func New(path string) *Config {
	return &Config{
		UserName:       DefaultUserName,
		BotName:        DefaultBotName,
		ShowTimestamps: true,
		filePath:       path,
	}
}

// Load reads the config from the default location, or returns defaults if it
// doesn't exist yet
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, perrors.ConfigLoadFailed("~/.chatmock", err)
	}
	return LoadFrom(path)
}

// LoadFrom reads the config at path. A missing file is not an error.
func LoadFrom(path string) (*Config, error) {
	cfg := New(path)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		logger.WithComponent("config").Debug("no config file, using defaults", "path", path)
		return cfg, nil
	}
	if err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, perrors.ConfigLoadFailed(path, err)
	}

	cfg.ensureDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.WithComponent("config").Info("config loaded", "path", path, "theme", cfg.Theme)
	return cfg, nil
}

// ensureDefaults fills fields a hand-edited file left empty. Only called from
// LoadFrom before the config is shared.
func (c *Config) ensureDefaults() {
	if c.UserName == "" {
		c.UserName = DefaultUserName
	}
	if c.BotName == "" {
		c.BotName = DefaultBotName
	}
}

// Validate checks that the config is internally consistent.
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := validateName("user_name", c.UserName); err != nil {
		return err
	}
	return validateName("bot_name", c.BotName)
}

func validateName(field, name string) error {
	if strings.TrimSpace(name) == "" {
		return perrors.ConfigInvalid(fmt.Sprintf("%s must not be blank", field))
	}
	if n := utf8.RuneCountInString(name); n > MaxNameLength {
		return perrors.ConfigInvalid(fmt.Sprintf("%s is %d characters, max %d", field, n, MaxNameLength))
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	path := c.filePath
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return perrors.ConfigSaveFailed("~/.chatmock", err)
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return perrors.ConfigSaveFailed(path, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return perrors.ConfigSaveFailed(path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return perrors.ConfigSaveFailed(path, err)
	}
	return nil
}

// FilePath returns where Save writes
func (c *Config) FilePath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filePath
}

// SetFilePath changes where Save writes
func (c *Config) SetFilePath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filePath = path
}

// GetTheme returns the current theme name
func (c *Config) GetTheme() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Theme
}

// SetTheme sets the current theme name
func (c *Config) SetTheme(theme string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Theme = theme
}

// GetUserName returns the label for user bubbles
func (c *Config) GetUserName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.UserName == "" {
		return DefaultUserName
	}
	return c.UserName
}

// GetBotName returns the label for bot bubbles
func (c *Config) GetBotName() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.BotName == "" {
		return DefaultBotName
	}
	return c.BotName
}

// GetNotificationsEnabled returns whether desktop notifications are enabled
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}

// SetNotificationsEnabled sets whether desktop notifications are enabled
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetShowTimestamps returns whether bubbles show their send time
func (c *Config) GetShowTimestamps() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ShowTimestamps
}

// SetShowTimestamps sets whether bubbles show their send time
func (c *Config) SetShowTimestamps(show bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ShowTimestamps = show
}
