package crafting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AlterEgo_Go/internal/domain"
)

type prefabMap map[string]*domain.Prefab

func (m prefabMap) Get(id string) (*domain.Prefab, bool) {
	p, ok := m[id]
	return p, ok
}

func testPrefabs() prefabMap {
	m := prefabMap{}
	for _, id := range []string{"BREAD", "KNIFE", "SLICED BREAD", "BULLET", "GUN", "LOADED GUN", "DRAIN CLEANER"} {
		m[id] = &domain.Prefab{ID: id, Name: id}
	}
	return m
}

func TestBook_FindIgnoresIngredientOrder(t *testing.T) {
	p := testPrefabs()
	book, err := NewBook(&domain.Recipe{
		Ingredients: [2]*domain.Prefab{p["KNIFE"], p["BREAD"]},
		Products:    []*domain.Prefab{p["KNIFE"], p["SLICED BREAD"]},
	})
	require.NoError(t, err)

	for _, pair := range [][2]string{{"BREAD", "KNIFE"}, {"KNIFE", "BREAD"}} {
		r, ok := book.Find(pair[0], pair[1])
		require.True(t, ok)
		assert.Equal(t, "BREAD", r.Ingredients[0].ID)
		assert.Equal(t, "SLICED BREAD", r.Product(0).ID, "products follow their ingredients")
		assert.Equal(t, "KNIFE", r.Product(1).ID)
	}

	_, ok := book.Find("BREAD", "GUN")
	assert.False(t, ok)
}

func TestBook_Uncraftable(t *testing.T) {
	p := testPrefabs()
	book, err := NewBook(&domain.Recipe{
		Ingredients: [2]*domain.Prefab{p["BULLET"], p["GUN"]},
		Products:    []*domain.Prefab{p["LOADED GUN"]},
		Uncraftable: true,
	})
	require.NoError(t, err)

	r, ok := book.FindUncraftable("LOADED GUN")
	require.True(t, ok)
	assert.Nil(t, r.Product(1))
	_, ok = book.FindUncraftable("GUN")
	assert.False(t, ok)
}

func TestNewBook_Rejections(t *testing.T) {
	p := testPrefabs()
	tests := []struct {
		name    string
		recipes []*domain.Recipe
		message string
	}{
		{
			name: "same pair twice",
			recipes: []*domain.Recipe{
				{Ingredients: [2]*domain.Prefab{p["BREAD"], p["KNIFE"]}, Products: []*domain.Prefab{p["SLICED BREAD"]}},
				{Ingredients: [2]*domain.Prefab{p["KNIFE"], p["BREAD"]}},
			},
			message: "more than one recipe combines BREAD and KNIFE",
		},
		{
			name: "uncraftable with two products",
			recipes: []*domain.Recipe{
				{Ingredients: [2]*domain.Prefab{p["BULLET"], p["GUN"]}, Products: []*domain.Prefab{p["LOADED GUN"], p["GUN"]}, Uncraftable: true},
			},
			message: "must have exactly one product",
		},
		{
			name: "two ways to uncraft one product",
			recipes: []*domain.Recipe{
				{Ingredients: [2]*domain.Prefab{p["BULLET"], p["GUN"]}, Products: []*domain.Prefab{p["LOADED GUN"]}, Uncraftable: true},
				{Ingredients: [2]*domain.Prefab{p["DRAIN CLEANER"], p["GUN"]}, Products: []*domain.Prefab{p["LOADED GUN"]}, Uncraftable: true},
			},
			message: "more than one uncraftable recipe produces LOADED GUN",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBook(tt.recipes...)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidRecipe)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestRecipeLoader(t *testing.T) {
	loader := NewRecipeLoader()
	write := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), ConfigFileName)
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("loads and resolves", func(t *testing.T) {
		config, err := loader.Load(write(t, `{"version": "1", "recipes": [
			{"ingredients": ["BREAD", "KNIFE"], "products": ["SLICED BREAD", "KNIFE"], "completed_description": "You slice the bread."},
			{"ingredients": ["GUN", "BULLET"], "products": ["LOADED GUN"], "uncraftable": true}
		]}`))
		require.NoError(t, err)
		book, err := loader.Build(config, testPrefabs())
		require.NoError(t, err)
		assert.Equal(t, 2, book.Len())

		r, ok := book.Find("KNIFE", "BREAD")
		require.True(t, ok)
		assert.Equal(t, "You slice the bread.", r.CompletedDescription)
		_, ok = book.FindUncraftable("LOADED GUN")
		assert.True(t, ok)
	})

	t.Run("unknown prefab", func(t *testing.T) {
		config, err := loader.Load(write(t, `{"version": "1", "recipes": [{"ingredients": ["BREAD", "SPOON"], "products": []}]}`))
		require.NoError(t, err)
		_, err = loader.Build(config, testPrefabs())
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidRecipe)
		assert.Contains(t, err.Error(), "unknown prefab 'SPOON'")
	})

	t.Run("schema violation", func(t *testing.T) {
		_, err := loader.Load(write(t, `{"version": "1", "recipes": [{"ingredients": ["BREAD"], "products": []}]}`))
		assert.ErrorIs(t, err, domain.ErrInvalidRecipe)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := loader.Load(filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read recipe file")
	})
}
