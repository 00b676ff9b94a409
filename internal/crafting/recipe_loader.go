package crafting

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/osse101/AlterEgo_Go/internal/domain"
	"github.com/osse101/AlterEgo_Go/internal/logger"
	"github.com/osse101/AlterEgo_Go/internal/validation"
)

// RecipeConfig represents the JSON recipe file
type RecipeConfig struct {
	Version     string      `json:"version"`
	Description string      `json:"description"`
	Recipes     []RecipeDef `json:"recipes" validate:"dive"`
}

// RecipeDef is one recipe as written in the file, with prefabs named by template id
type RecipeDef struct {
	Ingredients          []string `json:"ingredients" validate:"len=2,dive,required"`
	Products             []string `json:"products" validate:"max=2,dive,required"`
	Uncraftable          bool     `json:"uncraftable"`
	CompletedDescription string   `json:"completed_description"`
	UncraftedDescription string   `json:"uncrafted_description"`
}

// PrefabLookup resolves template ids; the item catalog implements it
type PrefabLookup interface {
	Get(id string) (*domain.Prefab, bool)
}

// RecipeLoader handles loading and validating recipe configuration
type RecipeLoader interface {
	Load(path string) (*RecipeConfig, error)
	Parse(data []byte) (*RecipeConfig, error)
	Build(config *RecipeConfig, prefabs PrefabLookup) (*Book, error)
}

type recipeLoader struct {
	schemaValidator validation.SchemaValidator
}

// NewRecipeLoader creates a new RecipeLoader instance
func NewRecipeLoader() RecipeLoader {
	return &recipeLoader{schemaValidator: validation.NewSchemaValidator()}
}

// Load reads and parses a recipe file
func (l *recipeLoader) Load(path string) (*RecipeConfig, error) {
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

// Parse schema-checks and decodes recipe bytes
func (l *recipeLoader) Parse(data []byte) (*RecipeConfig, error) {
	if err := l.schemaValidator.ValidateBytes(data, validation.SchemaRecipes); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidRecipe, err)
	}
	var config RecipeConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}
	return &config, nil
}

// Build resolves every template id against prefabs and indexes the result
func (l *recipeLoader) Build(config *RecipeConfig, prefabs PrefabLookup) (*Book, error) {
	if config == nil {
		return nil, fmt.Errorf(ErrFmtConfigNil, domain.ErrInvalidRecipe)
	}
	recipes := make([]*domain.Recipe, 0, len(config.Recipes))
	for i, def := range config.Recipes {
		if err := validation.Struct(def); err != nil {
			return nil, fmt.Errorf(ErrFmtRecipeFields, domain.ErrInvalidRecipe, i, validation.Describe(err))
		}
		r := &domain.Recipe{
			Uncraftable:          def.Uncraftable,
			CompletedDescription: def.CompletedDescription,
			UncraftedDescription: def.UncraftedDescription,
		}
		for j, id := range def.Ingredients {
			p, ok := prefabs.Get(id)
			if !ok {
				return nil, fmt.Errorf(ErrFmtUnknownPrefab, domain.ErrInvalidRecipe, i, id)
			}
			r.Ingredients[j] = p
		}
		for _, id := range def.Products {
			p, ok := prefabs.Get(id)
			if !ok {
				return nil, fmt.Errorf(ErrFmtUnknownPrefab, domain.ErrInvalidRecipe, i, id)
			}
			r.Products = append(r.Products, p)
		}
		recipes = append(recipes, r)
	}
	return NewBook(recipes...)
}

// LoadBook loads the recipe file at path and resolves it against prefabs
func LoadBook(ctx context.Context, path string, prefabs PrefabLookup) (*Book, error) {
	l := NewRecipeLoader()
	config, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	book, err := l.Build(config, prefabs)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgRecipesLoaded, "path", path, "recipes", book.Len(), "version", config.Version)
	return book, nil
}
