package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/AlterEgo_Go/internal/domain"
	"github.com/osse101/AlterEgo_Go/internal/logger"
)

// Craft combines the two items in p's hands according to a recipe.
// Products replace the ingredients in place: the first product takes the place of the
// first ingredient in canonical order and the second product the second. An ingredient
// that is also a product loses one use instead and becomes its next stage at zero.
func (e *Engine) Craft(ctx context.Context, p *Player, a, b *HeldItem) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCraftCalled, "player", p.Name, "item1", a.Label(), "item2", b.Label())

	if a == b {
		return nil, e.reject(ctx, "craft", domain.NewGameError(domain.ErrInvalidState, MsgSameItemTwice))
	}
	for _, it := range []*HeldItem{a, b} {
		if err := inHand(p, it); err != nil {
			return nil, e.reject(ctx, "craft", err)
		}
	}
	if a.Prefab.ID > b.Prefab.ID {
		a, b = b, a
	}
	recipe, ok := e.findRecipe(a.Prefab.ID, b.Prefab.ID)
	if !ok {
		return nil, e.reject(ctx, "craft", domain.NewGameError(domain.ErrNotFound, MsgRecipeNotFoundFmt, a.Name(), b.Name()))
	}

	products := [2]*domain.Prefab{recipe.Product(0), recipe.Product(1)}
	var uses [2]*int
	for _, it := range []*HeldItem{a, b} {
		for i := range products {
			if products[i] != nil && it.Prefab == products[i] {
				products[i], uses[i] = consumeUse(it, products[i])
				break
			}
		}
	}

	ingredientLabels := [2]string{a.Label(), b.Label()}
	var made []*HeldItem
	for i, it := range []*HeldItem{a, b} {
		e.replace(it, products[i])
		if products[i] == nil {
			continue
		}
		if uses[i] != nil {
			it.Uses = *uses[i]
			e.refresh(it)
		}
		made = append(made, it)
	}

	var visible, labels, all []string
	for _, it := range made {
		labels = append(labels, it.Label())
		all = append(all, it.Phrase())
		if !it.Prefab.Discreet {
			visible = append(visible, it.Phrase())
		}
	}
	if len(visible) > 0 {
		e.narrate(p, false, fmt.Sprintf(NarrCraftsFmt, p.DisplayName(), strings.Join(visible, " and ")))
	}
	line := LogLineCraftedFmt
	if IsForced(ctx) {
		line = LogLineForceCraftedFmt
	}
	e.narrator.Log(fmt.Sprintf(line, p.Name, joinOr(labels, "nothing"), ingredientLabels[0], ingredientLabels[1]))
	log.Info("Items crafted", "player", p.Name, "products", labels)

	msg := recipe.CompletedDescription
	if msg == "" {
		msg = fmt.Sprintf(MsgYouCraftFmt, joinOr(all, "nothing"))
	}
	res := &Result{Message: msg}
	if len(made) > 0 {
		res.Item = made[0]
	}
	return res, nil
}

// consumeUse decides what an ingredient that is also a product turns into.
// It returns the product to become and, when uses merely drop, the new use count.
func consumeUse(it *HeldItem, product *domain.Prefab) (*domain.Prefab, *int) {
	if it.Uses == domain.UnlimitedUses {
		return product, nil
	}
	if it.Uses-1 == 0 {
		return product.Next, nil
	}
	left := it.Uses - 1
	return product, &left
}

// Uncraft takes apart an item in p's hand. The item becomes the first ingredient and the
// second ingredient appears in p's free hand.
func (e *Engine) Uncraft(ctx context.Context, p *Player, item *HeldItem) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgUncraftCalled, "player", p.Name, "item", item.Label())

	if err := inHand(p, item); err != nil {
		return nil, e.reject(ctx, "uncraft", err)
	}
	recipe, ok := e.findUncraftable(item.Prefab.ID)
	if !ok {
		return nil, e.reject(ctx, "uncraft", domain.NewGameError(domain.ErrNotFound, MsgUncraftNotFoundFmt, item.Name()))
	}
	hand := p.FreeHand()
	if hand == nil {
		return nil, e.reject(ctx, "uncraft", domain.NewGameError(domain.ErrPrerequisiteMissing, MsgNoFreeHandToDismantleFmt, item.Phrase()))
	}

	// A lone discreet ingredient goes first so the narration reads naturally.
	first, second := recipe.Ingredients[1], recipe.Ingredients[0]
	if recipe.Ingredients[0].Discreet != recipe.Ingredients[1].Discreet && recipe.Ingredients[0].Discreet {
		first, second = recipe.Ingredients[0], recipe.Ingredients[1]
	}

	originalLabel, originalPhrase, originalDiscreet := item.Label(), item.Phrase(), item.Prefab.Discreet
	e.replace(item, first)
	other := e.newHeld(second, p, 1, "")
	e.attach(hand, other)

	if !originalDiscreet || !first.Discreet || !second.Discreet {
		var parts []string
		for _, prefab := range []*domain.Prefab{first, second} {
			if !prefab.Discreet && prefab.SingleContainingPhrase != originalPhrase {
				parts = append(parts, prefab.SingleContainingPhrase)
			}
		}
		switch len(parts) {
		case 2:
			e.narrate(p, false, fmt.Sprintf(NarrUncraftFmt, p.DisplayName(), "separates", originalPhrase, " into "+strings.Join(parts, " and ")))
		case 1:
			e.narrate(p, false, fmt.Sprintf(NarrUncraftFmt, p.DisplayName(), "removes", parts[0], " from "+originalPhrase))
		}
	}
	e.log(ctx, fmt.Sprintf(LogLineUncraftedFmt, p.Name, originalLabel, item.Label(), other.Label()))

	msg := recipe.UncraftedDescription
	if msg == "" {
		msg = fmt.Sprintf(MsgYouUncraftFmt, originalPhrase)
	}
	return &Result{Message: msg, Item: item}, nil
}

// replace turns h into an instance of prefab in place, or destroys it when prefab is nil.
// Anything inside h is destroyed; a container prefab gets a fresh identifier.
func (e *Engine) replace(h *HeldItem, prefab *domain.Prefab) {
	if prefab == nil {
		e.detach(h)
		return
	}
	if prefab == h.Prefab {
		return
	}
	e.clearContents(h)
	h.Prefab = prefab
	h.Uses = prefab.InitialUses()
	h.Description = prefab.Description
	h.Identifier = ""
	if prefab.IsContainer() {
		h.Identifier = e.reg.NextIdentifier(prefab.ID)
	}
	h.initSlots(h)
	e.refresh(h)
	e.propagate(h.slot)
}

func (e *Engine) findRecipe(a, b string) (*domain.Recipe, bool) {
	if e.recipes == nil {
		return nil, false
	}
	return e.recipes.Find(a, b)
}

func (e *Engine) findUncraftable(productID string) (*domain.Recipe, bool) {
	if e.recipes == nil {
		return nil, false
	}
	return e.recipes.FindUncraftable(productID)
}

func joinOr(parts []string, empty string) string {
	if len(parts) == 0 {
		return empty
	}
	return strings.Join(parts, " and ")
}
