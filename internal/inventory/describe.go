package inventory

import (
	"fmt"
	"strings"
)

// DescribeInventory renders p's equipment slots and everything nested in them.
//
//	__Vivian's inventory:__
//	RIGHT HAND: [TOOL BOX]
//	    TOOL BOX: [4 SCREWDRIVERS] [HAMMER]
//	LEFT HAND: [ ]
//
// With useIDs set, identifiers (or template ids) replace display names.
func (e *Engine) DescribeInventory(p *Player, possessive string, useIDs bool) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "__%s inventory:__\n", possessive)
	for _, s := range p.Slots() {
		if s.Equipped == nil {
			fmt.Fprintf(&sb, "%s: [ ]\n", s.Name)
			continue
		}
		fmt.Fprintf(&sb, "%s: [%s]\n", s.Name, inventoryName(s.Equipped.Base(), useIDs))
		describeContents(&sb, s.Equipped, useIDs, 1)
	}
	return strings.TrimRight(sb.String(), "\n")
}

func describeContents(sb *strings.Builder, ent Entity, useIDs bool, depth int) {
	indent := strings.Repeat("    ", depth)
	for _, s := range ent.Base().OwnSlots {
		sb.WriteString(indent + s.Name + ":")
		if len(s.Items) == 0 {
			sb.WriteString(" [ ]")
		}
		for _, it := range s.Items {
			sb.WriteString(" [" + inventoryName(it.Base(), useIDs) + "]")
		}
		sb.WriteString("\n")
		for _, it := range s.Items {
			if len(it.Base().OwnSlots) > 0 {
				describeContents(sb, it, useIDs, depth+1)
			}
		}
	}
}

func inventoryName(it *Item, useIDs bool) string {
	name := it.Prefab.Name
	if useIDs {
		name = it.Label()
	}
	if it.Quantity == 1 {
		return name
	}
	if !useIDs {
		name = it.Prefab.PluralOrName()
	}
	return fmt.Sprintf("%d %s", it.Quantity, name)
}
