package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Project is a locally-cloned project linked to a remote on the hub.
type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	RemoteURL string `json:"remote_url,omitempty"`
	LocalRoot string `json:"local_root"`
}

// Config holds the application configuration
type Config struct {
	Projects []Project `json:"projects"`

	// Token is the remembered hub credential, stored when the user logs in
	// with rememberMe. Cleared on logout.
	Token string `json:"token,omitempty"`

	NotificationsEnabled bool `json:"notifications_enabled,omitempty"`

	mu       sync.RWMutex
	filePath string
}

// configDir returns the path to the config directory
func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".labsync"), nil
}

// configPath returns the path to the config file
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or creates a new one if it doesn't exist
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom reads the config from an explicit path. Used by Load and by tests.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{
		Projects: []Project{},
		filePath: path,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	// Ensure slices are initialized (not nil) after unmarshaling
	if cfg.Projects == nil {
		cfg.Projects = []Project{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded config for inconsistencies
func (c *Config) Validate() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool, len(c.Projects))
	for _, p := range c.Projects {
		if p.ID == "" {
			return fmt.Errorf("project %q has no ID", p.Name)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate project ID %s", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if err := os.MkdirAll(filepath.Dir(c.filePath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.filePath, data, 0600)
}

// AddProject registers a new project and returns it. The name defaults to
// the base of the local root when empty.
func (c *Config) AddProject(name, remoteURL, localRoot string) Project {
	c.mu.Lock()
	defer c.mu.Unlock()

	if name == "" {
		name = filepath.Base(localRoot)
	}
	p := Project{
		ID:        uuid.New().String(),
		Name:      name,
		RemoteURL: remoteURL,
		LocalRoot: localRoot,
	}
	c.Projects = append(c.Projects, p)
	return p
}

// GetProjects returns a copy of the project list.
func (c *Config) GetProjects() []Project {
	c.mu.RLock()
	defer c.mu.RUnlock()

	projects := make([]Project, len(c.Projects))
	copy(projects, c.Projects)
	return projects
}

// GetProject returns the project with the given ID, or nil.
func (c *Config) GetProject(id string) *Project {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for i := range c.Projects {
		if c.Projects[i].ID == id {
			p := c.Projects[i]
			return &p
		}
	}
	return nil
}

// RemoveProject deletes the project with the given ID. Returns true if a
// project was removed.
func (c *Config) RemoveProject(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.Projects {
		if c.Projects[i].ID == id {
			c.Projects = append(c.Projects[:i], c.Projects[i+1:]...)
			return true
		}
	}
	return false
}

// SetProjectLocalRoot updates the local root of the project with the given ID.
func (c *Config) SetProjectLocalRoot(id, localRoot string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.Projects {
		if c.Projects[i].ID == id {
			c.Projects[i].LocalRoot = localRoot
			return true
		}
	}
	return false
}

// SetToken stores the remembered credential.
func (c *Config) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Token = strings.TrimSpace(token)
}

// GetToken returns the remembered credential, or "".
func (c *Config) GetToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.Token
}

// ClearToken forgets the remembered credential.
func (c *Config) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Token = ""
}

// SetNotificationsEnabled toggles desktop notifications.
func (c *Config) SetNotificationsEnabled(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.NotificationsEnabled = enabled
}

// GetNotificationsEnabled reports whether desktop notifications are on.
func (c *Config) GetNotificationsEnabled() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.NotificationsEnabled
}
