// Package settings persists user preferences as a YAML file.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/nvalla/walletview/pkg/model"
)

// DefaultAccountName is used when the user has not named the account yet.
const DefaultAccountName = "Wallet 1"

// Settings holds the persisted preferences. Zero values are normalized by
// Load so callers never see an invalid price mode or empty name.
type Settings struct {
	CatalogPath             string          `yaml:"catalog_path,omitempty"`
	PriceMode               model.PriceMode `yaml:"price_mode"`
	AllowThirdPartyKeyboard bool            `yaml:"allow_third_party_keyboard"`
	AccountName             string          `yaml:"account_name"`
}

// Default returns the settings used before any file exists.
func Default() Settings {
	return Settings{
		PriceMode:   model.PriceLastSale,
		AccountName: DefaultAccountName,
	}
}

// Load reads settings from path. A missing file yields defaults; a present
// but unreadable or malformed file is an error.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings: %w", err)
	}
	if !s.PriceMode.IsValid() {
		s.PriceMode = model.PriceLastSale
	}
	if s.AccountName == "" {
		s.AccountName = DefaultAccountName
	}
	return s, nil
}

// Save writes settings to path, creating the directory if needed.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create settings directory: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// DefaultPath returns the settings location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locate config dir: %w", err)
	}
	return filepath.Join(dir, "walletview", "settings.yaml"), nil
}
