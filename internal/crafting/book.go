// Package crafting holds the recipe book the inventory engine crafts and
// uncrafts against, and loads it from JSON.
package crafting

import (
	"fmt"

	"github.com/osse101/AlterEgo_Go/internal/domain"
)

// Book indexes recipes by ingredient pair and, for uncraftable recipes, by product.
// It is read-only after construction.
type Book struct {
	recipes   []*domain.Recipe
	byPair    map[[2]string]*domain.Recipe
	byProduct map[string]*domain.Recipe
}

// NewBook indexes recipes, putting each recipe's ingredients in canonical order.
// A second product follows its ingredient when the pair is reordered.
func NewBook(recipes ...*domain.Recipe) (*Book, error) {
	b := &Book{
		byPair:    make(map[[2]string]*domain.Recipe, len(recipes)),
		byProduct: make(map[string]*domain.Recipe),
	}
	for _, r := range recipes {
		if err := b.add(r); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Book) add(r *domain.Recipe) error {
	if r.Ingredients[0].ID > r.Ingredients[1].ID {
		r.Ingredients[0], r.Ingredients[1] = r.Ingredients[1], r.Ingredients[0]
		if len(r.Products) == 2 {
			r.Products[0], r.Products[1] = r.Products[1], r.Products[0]
		}
	}
	key := [2]string{r.Ingredients[0].ID, r.Ingredients[1].ID}
	if _, ok := b.byPair[key]; ok {
		return fmt.Errorf(ErrFmtDuplicatePair, domain.ErrInvalidRecipe, key[0], key[1])
	}
	if r.Uncraftable {
		if len(r.Products) != 1 {
			return fmt.Errorf(ErrFmtUncraftableProducts, domain.ErrInvalidRecipe, key[0], key[1])
		}
		product := r.Products[0].ID
		if _, ok := b.byProduct[product]; ok {
			return fmt.Errorf(ErrFmtDuplicateUncraftable, domain.ErrInvalidRecipe, product)
		}
		b.byProduct[product] = r
	}
	b.byPair[key] = r
	b.recipes = append(b.recipes, r)
	return nil
}

// Find returns the recipe combining the two template ids, in either order.
func (b *Book) Find(a, c string) (*domain.Recipe, bool) {
	a, c = domain.CanonicalIngredients(a, c)
	r, ok := b.byPair[[2]string{a, c}]
	return r, ok
}

// FindUncraftable returns the uncraftable recipe whose single product is productID.
func (b *Book) FindUncraftable(productID string) (*domain.Recipe, bool) {
	r, ok := b.byProduct[productID]
	return r, ok
}

// All returns every recipe in load order.
func (b *Book) All() []*domain.Recipe {
	out := make([]*domain.Recipe, len(b.recipes))
	copy(out, b.recipes)
	return out
}

// Len returns the number of recipes.
func (b *Book) Len() int {
	return len(b.recipes)
}
