package domain

// SlotDefinition is a named compartment a prefab grants to every instance of it.
type SlotDefinition struct {
	Name     string `json:"name" yaml:"name" validate:"required"`
	Capacity int    `json:"capacity" yaml:"capacity" validate:"min=1"`
}

// Prefab is the immutable definition of an item kind.
// Instances share the same *Prefab; nothing mutates it after load.
type Prefab struct {
	ID                     string           `json:"id" validate:"required"`
	Name                   string           `json:"name" validate:"required"`
	PluralName             string           `json:"plural_name,omitempty"`
	SingleContainingPhrase string           `json:"single_containing_phrase" validate:"required"`
	PluralContainingPhrase string           `json:"plural_containing_phrase,omitempty"`
	Discreet               bool             `json:"discreet"`
	Size                   int              `json:"size" validate:"min=0"`
	Weight                 int              `json:"weight" validate:"min=0"`
	Usable                 bool             `json:"usable"`
	Uses                   int              `json:"uses"`
	NextStage              string           `json:"next_stage,omitempty"`
	Equippable             bool             `json:"equippable"`
	EquipmentSlots         []string         `json:"equipment_slots,omitempty"`
	CoveredEquipmentSlots  []string         `json:"covered_equipment_slots,omitempty"`
	Inventory              []SlotDefinition `json:"inventory,omitempty" validate:"dive"`
	Preposition            string           `json:"preposition,omitempty"`
	Description            string           `json:"description,omitempty"`

	// Resolved from NextStage by the catalog loader
	Next *Prefab `json:"-"`
}

// IsContainer reports whether instances of the prefab own slots.
func (p *Prefab) IsContainer() bool {
	return len(p.Inventory) > 0
}

// FitsEquipmentSlot reports whether the prefab may be equipped into the named slot.
func (p *Prefab) FitsEquipmentSlot(slot string) bool {
	for _, s := range p.EquipmentSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Covers reports whether wearing the prefab hides the named equipment slot.
func (p *Prefab) Covers(slot string) bool {
	for _, s := range p.CoveredEquipmentSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// PluralOrName returns the plural display name, falling back to the singular one.
func (p *Prefab) PluralOrName() string {
	if p.PluralName != "" {
		return p.PluralName
	}
	return p.Name
}

// PrepositionOrDefault returns the preposition used when narrating insertion into the prefab.
func (p *Prefab) PrepositionOrDefault() string {
	if p.Preposition != "" {
		return p.Preposition
	}
	return "in"
}

// InitialUses is the uses a fresh instance starts with. Zero or negative means unlimited.
func (p *Prefab) InitialUses() int {
	if p.Uses <= 0 {
		return UnlimitedUses
	}
	return p.Uses
}
