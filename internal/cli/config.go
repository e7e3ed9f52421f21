package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/Evgya/anime-analysis/pkg/catalog"
	apperrors "github.com/Evgya/anime-analysis/pkg/errors"
)

// Config holds user settings read from the TOML config file.
type Config struct {
	Catalog CatalogConfig `toml:"catalog"`
	Server  ServerConfig  `toml:"server"`
}

// CatalogConfig configures the MyAnimeList client.
type CatalogConfig struct {
	ClientID string `toml:"client_id"`
	BaseURL  string `toml:"base_url"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr        string `toml:"addr"`
	ArtifactDir string `toml:"artifact_dir"`
}

// defaultConfig returns the settings used when no config file exists.
func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Addr:        ":8080",
			ArtifactDir: "charts",
		},
	}
}

// configPath returns the default config file location
// (~/.config/anime-analysis/config.toml).
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// loadConfig reads the config file at path, falling back to defaults when it
// does not exist. The MAL_CLIENT_ID environment variable overrides the
// catalog client ID. An empty path means the default location.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		p, err := configPath()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, err
	}

	if id := os.Getenv("MAL_CLIENT_ID"); id != "" {
		cfg.Catalog.ClientID = id
	}
	return cfg, nil
}

// newCatalogClient builds a catalog client from the config. It returns an
// error when no client ID is configured or the base URL override is not a
// http(s) URL.
func (cfg Config) newCatalogClient() (*catalog.Client, error) {
	if cfg.Catalog.ClientID == "" {
		return nil, errors.New("no MyAnimeList client ID configured (set MAL_CLIENT_ID or catalog.client_id in config.toml)")
	}
	if cfg.Catalog.BaseURL != "" {
		if err := apperrors.ValidateURL(cfg.Catalog.BaseURL); err != nil {
			return nil, err
		}
	}
	return catalog.NewClient(catalog.Config{
		ClientID: cfg.Catalog.ClientID,
		BaseURL:  cfg.Catalog.BaseURL,
	}), nil
}
