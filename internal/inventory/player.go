package inventory

import (
	"math"
	"strings"

	"github.com/osse101/AlterEgo_Go/internal/domain"
)

// Pronouns holds the forms used when narrating about a player.
type Pronouns struct {
	Subject    string `yaml:"sbj"`
	Object     string `yaml:"obj"`
	Determiner string `yaml:"dpos"`
	Plural     bool   `yaml:"plural"`
}

// Standard pronoun sets
var (
	PronounsFemale  = Pronouns{Subject: "she", Object: "her", Determiner: "her"}
	PronounsMale    = Pronouns{Subject: "he", Object: "him", Determiner: "his"}
	PronounsNeutral = Pronouns{Subject: "they", Object: "them", Determiner: "their", Plural: true}
)

// PronounsFor maps a short name to a pronoun set, defaulting to they/them.
func PronounsFor(name string) Pronouns {
	switch strings.ToLower(name) {
	case "female", "she", "she/her":
		return PronounsFemale
	case "male", "he", "he/him":
		return PronounsMale
	}
	return PronounsNeutral
}

// verb picks the singular or plural verb form for the pronoun set.
func (p Pronouns) verb(singular, plural string) string {
	if p.Plural {
		return plural
	}
	return singular
}

// Player is the equipment root: a container of named equipment slots with no weight of its own.
// Alias, when set, replaces Name in narration (masks, disguises).
type Player struct {
	Name        string
	Alias       string
	MemberID    string
	Strength    int
	Dexterity   int
	Pronouns    Pronouns
	Room        *Room
	CarryWeight int
	attributes  map[string]bool
	equipment   []*Slot
}

// NewPlayer creates a player with the given equipment slots, in order.
func NewPlayer(name string, equipmentSlots []string) *Player {
	p := &Player{Name: name, Strength: 5, Dexterity: 5, Pronouns: PronounsNeutral, attributes: map[string]bool{}}
	for _, s := range equipmentSlots {
		p.equipment = append(p.equipment, newSlot(p, s, 0, true))
	}
	return p
}

// DisplayName implements Container.
func (p *Player) DisplayName() string {
	if p.Alias != "" {
		return p.Alias
	}
	return p.Name
}

// Slots implements Container; these are the equipment slots.
func (p *Player) Slots() []*Slot { return p.equipment }

// Slot implements Container. An empty name never matches for players.
func (p *Player) Slot(name string) *Slot {
	if name == "" {
		return nil
	}
	return findSlot(p.equipment, name)
}

// ChildContainerName implements Container. Equipped items have no container name.
func (p *Player) ChildContainerName(_ string) string { return "" }

// Location implements Container.
func (p *Player) Location() *Room { return p.Room }

// MatchKeys lets the resolver find players by name.
func (p *Player) MatchKeys() (string, string, string) {
	return p.Name, "", p.DisplayName()
}

// SetAttribute turns a status attribute on or off.
func (p *Player) SetAttribute(attr string, on bool) {
	if on {
		p.attributes[attr] = true
		return
	}
	delete(p.attributes, attr)
}

// HasAttribute reports whether a status attribute is active.
func (p *Player) HasAttribute(attr string) bool {
	return p.attributes[attr]
}

// MaxCarryWeight is derived from strength.
func (p *Player) MaxCarryWeight() int {
	s := float64(p.Strength)
	return int(math.Floor(1.783*s*s - 2*s + 22))
}

// Hand returns the named hand slot.
func (p *Player) Hand(name string) *Slot {
	if !domain.IsHand(strings.ToUpper(name)) {
		return nil
	}
	return p.Slot(name)
}

// FreeHand returns the first empty hand, RIGHT HAND first, or nil.
func (p *Player) FreeHand() *Slot {
	for _, name := range domain.HandSlots {
		if s := p.Slot(name); s != nil && s.Free() {
			return s
		}
	}
	return nil
}

// HeldInHands returns the items in the player's hands, RIGHT HAND first.
func (p *Player) HeldInHands() []*HeldItem {
	var out []*HeldItem
	for _, name := range domain.HandSlots {
		if s := p.Slot(name); s != nil && s.Equipped != nil {
			out = append(out, s.Equipped.(*HeldItem))
		}
	}
	return out
}

// Equipped returns every item directly in an equipment slot, hands included.
func (p *Player) Equipped() []*HeldItem {
	var out []*HeldItem
	for _, s := range p.equipment {
		if s.Equipped != nil {
			out = append(out, s.Equipped.(*HeldItem))
		}
	}
	return out
}

// AllHeld returns every item on the player, equipped and nested, in pre-order.
func (p *Player) AllHeld() []*HeldItem {
	var out []*HeldItem
	for _, top := range p.Equipped() {
		out = append(out, top)
		for _, d := range descendants(top) {
			out = append(out, d.(*HeldItem))
		}
	}
	return out
}

// CoveringItem returns the non-hand equipped item covering slot, if any.
func (p *Player) CoveringItem(slot string) *HeldItem {
	for _, s := range p.equipment {
		if s.Equipped == nil || domain.IsHand(s.Name) || s.Name == slot {
			continue
		}
		if s.Equipped.Base().Prefab.Covers(slot) {
			return s.Equipped.(*HeldItem)
		}
	}
	return nil
}

func (p *Player) recomputeCarryWeight() {
	w := 0
	for _, s := range p.equipment {
		w += s.Weight
	}
	p.CarryWeight = w
}

// possessive is "Vivian's".
func (p *Player) possessive() string {
	return p.DisplayName() + "'s"
}
