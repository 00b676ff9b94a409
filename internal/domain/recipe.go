package domain

import "sort"

// Recipe combines exactly two ingredients into up to two products.
// Ingredients are always stored in canonical (ascending template id) order.
type Recipe struct {
	Ingredients          [2]*Prefab
	Products             []*Prefab
	Uncraftable          bool
	CompletedDescription string
	UncraftedDescription string
}

// CanonicalIngredients orders two template ids ascending for recipe lookup.
func CanonicalIngredients(a, b string) (string, string) {
	ids := []string{a, b}
	sort.Strings(ids)
	return ids[0], ids[1]
}

// Product returns the i-th product, or nil when the recipe yields fewer.
func (r *Recipe) Product(i int) *Prefab {
	if i < len(r.Products) {
		return r.Products[i]
	}
	return nil
}
