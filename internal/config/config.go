package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Remote represents one statically configured network registry.
type Remote struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// Config is the in-memory representation of ~/.skillhub/config.yaml.
type Config struct {
	RegistriesDir string   `yaml:"registries_dir"`
	InstallDir    string   `yaml:"install_dir"`
	Remotes       []Remote `yaml:"remotes,omitempty"`
	CacheTTL      string   `yaml:"cache_ttl,omitempty"`
}

// TTL parses CacheTTL, falling back to 24h on empty or malformed values.
func (c *Config) TTL() time.Duration {
	d, err := time.ParseDuration(c.CacheTTL)
	if err != nil || d <= 0 {
		return 24 * time.Hour
	}
	return d
}

// SkillhubDir returns the absolute path to ~/.skillhub/.
func SkillhubDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".skillhub"), nil
}

// ConfigPath returns the absolute path to ~/.skillhub/config.yaml.
func ConfigPath() (string, error) {
	dir, err := SkillhubDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// IndexPath returns the absolute path to the cached index file.
func IndexPath() (string, error) {
	dir, err := SkillhubDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "index.json"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the default Config written on first skillhub init.
func DefaultConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		RegistriesDir: filepath.Join(home, ".skillhub", "registries"),
		InstallDir:    filepath.Join(home, ".skillhub", "skills"),
		Remotes:       []Remote{},
		CacheTTL:      "24h",
	}, nil
}

// Load reads and parses ~/.skillhub/config.yaml.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	if cfg.RegistriesDir, err = ExpandPath(cfg.RegistriesDir); err != nil {
		return nil, err
	}
	if cfg.InstallDir, err = ExpandPath(cfg.InstallDir); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save marshals cfg and writes it to ~/.skillhub/config.yaml.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}
