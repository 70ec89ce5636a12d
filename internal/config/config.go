package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration: where the database and notes live and
// how often the auto-fill check fires. Timeline state itself (birthday,
// events, filled weeks) lives in the database, not here.
type Config struct {
	DatabasePath string `yaml:"database_path"`
	NotesFolder  string `yaml:"notes_folder"`
	AutoFillCron string `yaml:"auto_fill_cron"`
	GlamourStyle string `yaml:"glamour_style"`
}

func DefaultConfig() *Config {
	return &Config{
		DatabasePath: "./lifeweeks.db",
		NotesFolder:  "./notes",
		AutoFillCron: "@hourly",
		GlamourStyle: "dark",
	}
}

// Normalize fills missing fields with defaults so partially written config
// files from older versions keep working.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.DatabasePath == "" {
		c.DatabasePath = def.DatabasePath
	}
	if c.NotesFolder == "" {
		c.NotesFolder = def.NotesFolder
	}
	if c.AutoFillCron == "" {
		c.AutoFillCron = def.AutoFillCron
	}
	if c.GlamourStyle == "" {
		c.GlamourStyle = def.GlamourStyle
	}
}

func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.DatabasePath, validation.Required),
		validation.Field(&c.NotesFolder, validation.Required),
		validation.Field(&c.AutoFillCron, validation.Required),
		validation.Field(&c.GlamourStyle, validation.In("dark", "light", "notty", "auto")),
	)
}

// Load reads the YAML config. A missing file is first-run: the default config
// is written (0600) and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config: path is empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Save writes the config atomically: temp file in the same directory, chmod
// 0600, rename over the target.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errors.New("config: nil config")
	}
	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".lifeweeks-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// FromEnv overlays LIFEWEEKS_* environment variables on top of the loaded
// config. A .env file loaded by the entrypoint feeds through here too.
func FromEnv(base *Config) *Config {
	cfg := *base
	if v := strings.TrimSpace(os.Getenv("LIFEWEEKS_DATABASE_PATH")); v != "" {
		cfg.DatabasePath = v
	}
	if v := strings.TrimSpace(os.Getenv("LIFEWEEKS_NOTES_FOLDER")); v != "" {
		cfg.NotesFolder = v
	}
	if v := strings.TrimSpace(os.Getenv("LIFEWEEKS_AUTO_FILL_CRON")); v != "" {
		cfg.AutoFillCron = v
	}
	if v := strings.TrimSpace(os.Getenv("LIFEWEEKS_GLAMOUR_STYLE")); v != "" {
		cfg.GlamourStyle = v
	}
	return &cfg
}
