// Package item loads the prefab catalog: the immutable definitions every item
// instance points at.
package item

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/AlterEgo_Go/internal/domain"
	"github.com/osse101/AlterEgo_Go/internal/logger"
	"github.com/osse101/AlterEgo_Go/internal/validation"
)

// Config represents the JSON prefab catalog
type Config struct {
	Version     string           `json:"version"`
	Description string           `json:"description"`
	Prefabs     []*domain.Prefab `json:"prefabs"`
}

// Loader handles loading and validating the prefab catalog
type Loader interface {
	Load(path string) (*Config, error)
	Parse(data []byte) (*Config, error)
	Validate(config *Config) error
	Build(config *Config) (*Catalog, error)
}

type prefabLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &prefabLoader{
		schemaValidator: validation.NewSchemaValidator(),
	}
}

// Load reads, schema-checks and parses a prefab catalog file
func (l *prefabLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}
	config, err := l.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Parse schema-checks and decodes catalog bytes
func (l *prefabLoader) Parse(data []byte) (*Config, error) {
	if err := l.schemaValidator.ValidateBytes(data, validation.SchemaPrefabs); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidPrefab, err)
	}
	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}
	return &config, nil
}

// Validate checks the rules the schema cannot express
func (l *prefabLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf(ErrFmtConfigNil, domain.ErrInvalidPrefab)
	}
	if len(config.Prefabs) == 0 {
		return fmt.Errorf(ErrFmtNoPrefabs, domain.ErrInvalidPrefab)
	}

	ids := make(map[string]bool, len(config.Prefabs))
	for i, p := range config.Prefabs {
		if err := validation.Struct(p); err != nil {
			return fmt.Errorf(ErrFmtPrefabFields, domain.ErrInvalidPrefab, i, validation.Describe(err))
		}
		if ids[p.ID] {
			return fmt.Errorf(ErrFmtDuplicateID, domain.ErrInvalidPrefab, p.ID)
		}
		ids[p.ID] = true
		if err := validateSlots(p); err != nil {
			return err
		}
	}

	for _, p := range config.Prefabs {
		if p.NextStage == "" {
			continue
		}
		if !ids[p.NextStage] {
			return fmt.Errorf(ErrFmtUnknownNextStage, domain.ErrInvalidPrefab, p.ID, p.NextStage)
		}
		if p.Uses <= 0 {
			return fmt.Errorf(ErrFmtNextStageWithoutUse, domain.ErrInvalidPrefab, p.ID)
		}
	}
	return nil
}

func validateSlots(p *domain.Prefab) error {
	seen := make(map[string]bool, len(p.Inventory))
	for _, s := range p.Inventory {
		if seen[s.Name] {
			return fmt.Errorf(ErrFmtDuplicateSlot, domain.ErrInvalidPrefab, p.ID, s.Name)
		}
		seen[s.Name] = true
	}
	if p.Equippable && len(p.EquipmentSlots) == 0 {
		return fmt.Errorf(ErrFmtNoEquipmentSlots, domain.ErrInvalidPrefab, p.ID)
	}
	return nil
}

// Build resolves next-stage references and indexes a validated config
func (l *prefabLoader) Build(config *Config) (*Catalog, error) {
	if err := l.Validate(config); err != nil {
		return nil, err
	}
	c := newCatalog(len(config.Prefabs))
	for _, p := range config.Prefabs {
		c.add(p)
	}
	for _, p := range config.Prefabs {
		if p.NextStage != "" {
			p.Next = c.byID[p.NextStage]
		}
	}
	return c, nil
}

// LoadCatalog loads, validates and builds the catalog at path
func LoadCatalog(ctx context.Context, path string) (*Catalog, error) {
	l := NewLoader()
	config, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	c, err := l.Build(config)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgCatalogLoaded, "path", path, "prefabs", c.Len(), "version", config.Version)
	return c, nil
}
