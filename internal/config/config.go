package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// CatalogueConfig describes which opcode families and object-creation
// classes a deployment enables, and at what log level, for
// cmd/catalogctl to load at startup before registering anything with
// internal/packet / internal/construct.
type CatalogueConfig struct {
	LogLevel string         `toml:"log_level"`
	Families []string       `toml:"families"`
	Classes  []ClassConfig  `toml:"classes"`
}

// ClassConfig names one object-creation class id this deployment expects
// internal/construct to have a registered constructor for.
type ClassConfig struct {
	Name    string `toml:"name"`
	ClassID uint16 `toml:"class_id"`
}

// LoadCatalogueConfig reads and validates a catalogue descriptor from path.
func LoadCatalogueConfig(path string) (CatalogueConfig, error) {
	var cfg CatalogueConfig
	if err := loadToml(path, &cfg); err != nil {
		return CatalogueConfig{}, err
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if len(cfg.Families) == 0 {
		cfg.Families = []string{"game", "control", "crypto"}
	}
	if err := ValidateCatalogueConfig(cfg); err != nil {
		return CatalogueConfig{}, err
	}
	return cfg, nil
}

func loadToml(path string, out any) error {
	if _, err := toml.DecodeFile(path, out); err != nil {
		return fmt.Errorf("config load failed (%s): %w", path, err)
	}
	return nil
}

// ValidateCatalogueConfig rejects a descriptor naming an unknown family or
// a duplicate class id.
func ValidateCatalogueConfig(cfg CatalogueConfig) error {
	for _, fam := range cfg.Families {
		if err := validateFamilyName(fam); err != nil {
			return err
		}
	}
	seen := make(map[uint16]string, len(cfg.Classes))
	for _, cls := range cfg.Classes {
		if err := ValidateClassEntry(cls); err != nil {
			return fmt.Errorf("class %q invalid: %w", cls.Name, err)
		}
		if prior, ok := seen[cls.ClassID]; ok {
			return fmt.Errorf("class id %#x registered by both %q and %q", cls.ClassID, prior, cls.Name)
		}
		seen[cls.ClassID] = cls.Name
	}
	return nil
}

func validateFamilyName(fam string) error {
	switch strings.ToLower(strings.TrimSpace(fam)) {
	case "game", "control", "crypto":
		return nil
	default:
		return fmt.Errorf("unknown opcode family: %s", fam)
	}
}

// ValidateClassEntry requires a name; a class id of zero is legal (some
// catalogues reserve it for a null/sentinel constructor) but an empty
// name is not.
func ValidateClassEntry(cls ClassConfig) error {
	if strings.TrimSpace(cls.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}
