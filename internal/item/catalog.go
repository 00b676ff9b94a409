package item

import (
	"strings"

	"github.com/osse101/AlterEgo_Go/internal/domain"
)

// Catalog is the read-only set of prefabs, in file order.
type Catalog struct {
	byID  map[string]*domain.Prefab
	order []*domain.Prefab
}

func newCatalog(size int) *Catalog {
	return &Catalog{byID: make(map[string]*domain.Prefab, size)}
}

func (c *Catalog) add(p *domain.Prefab) {
	c.byID[p.ID] = p
	c.order = append(c.order, p)
}

// Get returns the prefab with the given template id. Lookup ignores case.
func (c *Catalog) Get(id string) (*domain.Prefab, bool) {
	if p, ok := c.byID[id]; ok {
		return p, true
	}
	for _, p := range c.order {
		if strings.EqualFold(p.ID, id) {
			return p, true
		}
	}
	return nil, false
}

// All returns every prefab in file order.
func (c *Catalog) All() []*domain.Prefab {
	out := make([]*domain.Prefab, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of prefabs.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Named adapts a prefab to the name resolver.
type Named struct{ *domain.Prefab }

// MatchKeys returns the template id and display name.
func (n Named) MatchKeys() (string, string, string) { return "", n.ID, n.Name }

// Candidates wraps every prefab for the name resolver.
func (c *Catalog) Candidates() []Named {
	out := make([]Named, len(c.order))
	for i, p := range c.order {
		out[i] = Named{p}
	}
	return out
}
