package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const configFileName = ".repoman_config"

// Config is the repository configuration. All fields are optional; absent
// fields fall back to defaults at the accessors.
type Config struct {
	Author        *string `json:"author,omitempty"`
	DefaultRemote *string `json:"defaultRemote,omitempty"`
	DefaultBranch *string `json:"defaultBranch,omitempty"`
	CatalogPath   *string `json:"catalogPath,omitempty"`
}

func configPath(repoRoot string) string {
	return filepath.Join(repoRoot, ".git", configFileName)
}

// Get reads the repository configuration. A missing file yields defaults.
func Get(repoRoot string) (*Config, error) {
	data, err := os.ReadFile(configPath(repoRoot))
	if err != nil {
		return &Config{}, nil
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse repoman config: %w", err)
	}

	return &config, nil
}

// Save writes the repository configuration.
func Save(repoRoot string, config *Config) error {
	configJSON, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(configPath(repoRoot), configJSON, 0600)
}

// GetAuthor returns the configured author name, or "" when unset.
func GetAuthor(repoRoot string) (string, error) {
	config, err := Get(repoRoot)
	if err != nil {
		return "", err
	}
	if config.Author != nil {
		return *config.Author, nil
	}
	return "", nil
}

// SetAuthor stores the author name used for license generation.
func SetAuthor(repoRoot, author string) error {
	config, err := Get(repoRoot)
	if err != nil {
		return err
	}
	config.Author = &author
	return Save(repoRoot, config)
}

// GetDefaultRemote returns the remote used when none is given, "origin" by
// default.
func GetDefaultRemote(repoRoot string) (string, error) {
	config, err := Get(repoRoot)
	if err != nil {
		return "", err
	}
	if config.DefaultRemote != nil && *config.DefaultRemote != "" {
		return *config.DefaultRemote, nil
	}
	return "origin", nil
}

// SetDefaultRemote stores the default remote name.
func SetDefaultRemote(repoRoot, remote string) error {
	config, err := Get(repoRoot)
	if err != nil {
		return err
	}
	config.DefaultRemote = &remote
	return Save(repoRoot, config)
}

// GetDefaultBranch returns the branch used when none is given, "main" by
// default.
func GetDefaultBranch(repoRoot string) (string, error) {
	config, err := Get(repoRoot)
	if err != nil {
		return "", err
	}
	if config.DefaultBranch != nil && *config.DefaultBranch != "" {
		return *config.DefaultBranch, nil
	}
	return "main", nil
}

// SetDefaultBranch stores the default branch name.
func SetDefaultBranch(repoRoot, branch string) error {
	config, err := Get(repoRoot)
	if err != nil {
		return err
	}
	config.DefaultBranch = &branch
	return Save(repoRoot, config)
}

// GetCatalogPath returns the external license catalog path. When unset, the
// conventional licenses.json at the repository root is used.
func GetCatalogPath(repoRoot string) (string, error) {
	config, err := Get(repoRoot)
	if err != nil {
		return "", err
	}
	if config.CatalogPath != nil && *config.CatalogPath != "" {
		if filepath.IsAbs(*config.CatalogPath) {
			return *config.CatalogPath, nil
		}
		return filepath.Join(repoRoot, *config.CatalogPath), nil
	}
	return filepath.Join(repoRoot, "licenses.json"), nil
}
