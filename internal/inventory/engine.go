package inventory

import (
	"context"
	"math"
	"math/rand/v2"

	"github.com/osse101/AlterEgo_Go/internal/domain"
)

// Narrator delivers the human-readable side of a mutation. Implementations queue
// messages for later delivery; the engine never waits on them.
type Narrator interface {
	// Narrate tells everyone in room except actor what happened.
	Narrate(room *Room, actor *Player, text string)
	// Notify sends text to one player.
	Notify(player *Player, text string)
	// Log records a line in the moderators' log channel.
	Log(text string)
}

// RecipeBook looks recipes up by canonical ingredient pair or by product.
type RecipeBook interface {
	Find(a, b string) (*domain.Recipe, bool)
	FindUncraftable(productID string) (*domain.Recipe, bool)
}

// Roller supplies randomness for steal attempts.
type Roller interface {
	// Roll returns an integer in [lo, hi].
	Roll(lo, hi int) int
	// Pick returns an integer in [0, n).
	Pick(n int) int
}

type randomRoller struct{}

func (randomRoller) Roll(lo, hi int) int { return lo + rand.IntN(hi-lo+1) }
func (randomRoller) Pick(n int) int      { return rand.IntN(n) }

// Settings tunes the engine.
type Settings struct {
	DiceMin int
	DiceMax int
}

// DefaultSettings returns the standard six-sided die.
func DefaultSettings() Settings {
	return Settings{DiceMin: domain.DefaultDiceMin, DiceMax: domain.DefaultDiceMax}
}

// Result describes a successful operation.
type Result struct {
	// Message is the reply for the player (or moderator) who issued the command.
	Message string
	// Item is the affected instance in its new location, when there is one.
	Item Entity
	// Outcome is set by Steal.
	Outcome StealOutcome
}

// Engine owns the container graph and performs every mutating operation on it.
//
// The engine is not safe for concurrent use. Callers serialize commands so each
// one runs to completion before the next starts.
type Engine struct {
	reg      *Registry
	recipes  RecipeBook
	narrator Narrator
	roller   Roller
	settings Settings
}

// Option configures an Engine.
type Option func(*Engine)

// WithRoller replaces the random source used by Steal.
func WithRoller(r Roller) Option {
	return func(e *Engine) { e.roller = r }
}

// WithSettings replaces the dice bounds.
func WithSettings(s Settings) Option {
	return func(e *Engine) { e.settings = s }
}

// NewEngine creates an engine over reg.
func NewEngine(reg *Registry, recipes RecipeBook, narrator Narrator, opts ...Option) *Engine {
	e := &Engine{
		reg:      reg,
		recipes:  recipes,
		narrator: narrator,
		roller:   randomRoller{},
		settings: DefaultSettings(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.narrator == nil {
		e.narrator = nopNarrator{}
	}
	return e
}

// Registry exposes the arena for lookups.
func (e *Engine) Registry() *Registry {
	return e.reg
}

type nopNarrator struct{}

func (nopNarrator) Narrate(*Room, *Player, string) {}
func (nopNarrator) Notify(*Player, string)         {}
func (nopNarrator) Log(string)                     {}

type forcedKey struct{}

// WithForced marks ctx as a moderator forcing an operation on a player's behalf.
func WithForced(ctx context.Context) context.Context {
	return context.WithValue(ctx, forcedKey{}, true)
}

// IsForced reports whether ctx was marked by WithForced.
func IsForced(ctx context.Context) bool {
	v, _ := ctx.Value(forcedKey{}).(bool)
	return v
}

func (e *Engine) log(ctx context.Context, line string) {
	if IsForced(ctx) {
		line = LogLineForcedPrefix + line
	}
	e.narrator.Log(line)
}

// narrate announces text to the actor's room unless the item is discreet.
func (e *Engine) narrate(p *Player, discreet bool, text string) {
	if discreet || p.Room == nil {
		return
	}
	e.narrator.Narrate(p.Room, p, text)
}

// statModifier converts a stat into a die modifier scaled to the configured dice.
func (e *Engine) statModifier(stat int) int {
	const statMax = 10.0
	lo, hi := float64(e.settings.DiceMin), float64(e.settings.DiceMax)
	return int(math.Floor(math.Floor((float64(stat)-statMax/3)/2) + (hi-lo)/hi))
}

// ==================== Structural primitives ====================
// Every mutation goes through these so rows, registry and aggregates move together.

// propagate recomputes from s to the root and refreshes the rows of every ancestor whose weight changed.
func (e *Engine) propagate(s *Slot) {
	recomputeAncestors(s)
	for s != nil {
		switch owner := s.owner.(type) {
		case *HeldItem:
			if owner.IsEquipped() {
				e.reg.Held.Update(owner.slot)
			} else {
				e.reg.Held.Update(owner)
			}
			s = owner.slot
		case *WorldItem:
			e.reg.World.Update(owner)
			s = owner.slot
		default:
			s = nil
		}
	}
}

// refresh emits an update for the row ent is persisted in.
func (e *Engine) refresh(ent Entity) {
	if h, ok := ent.(*HeldItem); ok && h.IsEquipped() {
		e.reg.Held.Update(h.slot)
		return
	}
	e.reg.ledgerFor(ent).Update(ent)
}

// clearContents destroys everything inside ent, rows included.
func (e *Engine) clearContents(ent Entity) {
	for _, child := range ent.Base().Children() {
		e.detach(child)
	}
}

// insertRows gives ent (unless it is equipped) and every descendant a row.
func (e *Engine) insertRows(ent Entity) {
	if h, ok := ent.(*HeldItem); ok && h.IsEquipped() {
		e.reg.Held.Update(h.slot)
	} else {
		e.reg.ledgerFor(ent).Insert(ent)
	}
	for _, d := range descendants(ent) {
		e.reg.ledgerFor(d).Insert(d)
	}
}

// removeRows deletes the rows of every descendant of ent and of ent itself.
// An equipped item's row is an equipment slot and is blanked by the caller instead.
func (e *Engine) removeRows(ent Entity) {
	ds := descendants(ent)
	for i := len(ds) - 1; i >= 0; i-- {
		e.reg.ledgerFor(ds[i]).Remove(ds[i])
	}
	if h, ok := ent.(*HeldItem); ok && h.IsEquipped() {
		return
	}
	e.reg.ledgerFor(ent).Remove(ent)
}

// detach removes ent and its subtree from the graph and from the row tables.
func (e *Engine) detach(ent Entity) {
	slot := ent.Base().slot
	if slot == nil {
		return
	}
	e.removeRows(ent)
	slot.remove(ent)
	e.reg.unregisterTree(ent)
	if slot.equipment {
		e.reg.Held.Update(slot)
	}
	e.propagate(slot)
}

// attach places ent into slot, merging it into an identical plain stack when one exists.
// It returns the instance now holding the units.
func (e *Engine) attach(slot *Slot, ent Entity) Entity {
	if slot.equipment {
		slot.equip(ent)
		e.reg.registerTree(ent)
		recomputeTree(ent)
		e.propagate(slot)
		e.insertRows(ent)
		return ent
	}
	for _, existing := range slot.Items {
		if existing.Kind() == ent.Kind() && existing.Base().mergeableWith(ent.Base()) {
			existing.Base().Quantity += ent.Base().Quantity
			e.refresh(existing)
			e.propagate(slot)
			return existing
		}
	}
	slot.add(ent)
	e.reg.registerTree(ent)
	recomputeTree(ent)
	e.propagate(slot)
	e.insertRows(ent)
	return ent
}

// takeUnits removes quantity units from ent. When that empties the stack the whole
// instance is detached and returned as is; otherwise the stack shrinks in place and
// a detached empty copy holding the split units is returned.
func (e *Engine) takeUnits(ent Entity, quantity int) Entity {
	b := ent.Base()
	if quantity >= b.Quantity {
		e.detach(ent)
		return ent
	}
	b.Quantity -= quantity
	e.refresh(ent)
	e.propagate(b.slot)
	split := *b
	split.ID = ""
	split.Quantity = quantity
	split.OwnSlots = nil
	split.slot = nil
	split.row = 0
	split.Identifier = ""
	if b.Prefab.IsContainer() {
		split.Identifier = e.reg.NextIdentifier(b.Prefab.ID)
	}
	if ent.Kind() == KindHeld {
		return newHeldItem(split, ent.(*HeldItem).player)
	}
	return newWorldItem(split)
}

// asHeld converts a detached entity into a held item owned by p, subtree included.
func asHeld(ent Entity, p *Player) *HeldItem {
	if h, ok := ent.(*HeldItem); ok {
		h.setPlayer(p)
		return h
	}
	return convert(ent, func(b Item) Entity { return newHeldItem(b, p) }).(*HeldItem)
}

// asWorld converts a detached entity into a world item, subtree included.
func asWorld(ent Entity) *WorldItem {
	if w, ok := ent.(*WorldItem); ok {
		return w
	}
	return convert(ent, func(b Item) Entity { return newWorldItem(b) }).(*WorldItem)
}

// convert rebuilds ent and everything inside it with mk, preserving ids, prefab, quantity and contents.
func convert(ent Entity, mk func(Item) Entity) Entity {
	b := *ent.Base()
	b.OwnSlots = nil
	b.slot = nil
	b.row = 0
	out := mk(b)
	for i, s := range ent.Base().OwnSlots {
		for _, child := range s.Items {
			out.Base().OwnSlots[i].add(convert(child, mk))
		}
	}
	return out
}
