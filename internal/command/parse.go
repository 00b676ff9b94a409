package command

import (
	"strconv"
	"strings"

	"github.com/osse101/AlterEgo_Go/internal/domain"
	"github.com/osse101/AlterEgo_Go/internal/finder"
	"github.com/osse101/AlterEgo_Go/internal/inventory"
)

// place is a container that can also be named in a command.
type place interface {
	inventory.Container
	finder.Candidate
}

// roomPlaces lists what can be named as a container in room: fixtures, then puzzles,
// then items.
func roomPlaces(reg *inventory.Registry, room *inventory.Room) []place {
	if room == nil {
		return nil
	}
	var out []place
	for _, f := range room.Fixtures {
		out = append(out, f)
	}
	for _, pz := range room.Puzzles {
		out = append(out, pz)
	}
	for _, w := range finder.RoomItems(reg, room) {
		out = append(out, w)
	}
	return out
}

// resolveContainer reads "CONTAINER" or "SLOT of CONTAINER". The whole phrase is tried
// first so containers whose names contain "of" still resolve.
func resolveContainer[T place](cands []T, words []string) (T, string, error) {
	c, err := finder.Resolve(cands, strings.Join(words, " "))
	if err == nil {
		return c, "", nil
	}
	slot, _, rest, ok := finder.SplitPreposition(words, wordOf)
	if !ok {
		return c, "", err
	}
	c, err = finder.Resolve(cands, strings.Join(rest, " "))
	if err != nil {
		return c, "", err
	}
	return c, strings.Join(slot, " "), nil
}

// contents returns the items of type T directly inside c, limited to the named slot
// when one is given.
func contents[T inventory.Entity](c inventory.Container, slotName string) []T {
	var out []T
	for _, s := range c.Slots() {
		if slotName != "" && !strings.EqualFold(s.Name, slotName) {
			continue
		}
		for _, ent := range s.Items {
			if t, ok := ent.(T); ok {
				out = append(out, t)
			}
		}
	}
	return out
}

// resolveReachable matches text against the items p can reach first. Unreachable
// matches are still returned so the engine can say why they can't be taken.
func resolveReachable(p *inventory.Player, cands []*inventory.WorldItem, text string) (*inventory.WorldItem, error) {
	open := make([]*inventory.WorldItem, 0, len(cands))
	for _, w := range cands {
		if inventory.CanReach(p, w) {
			open = append(open, w)
		}
	}
	if it, err := finder.Resolve(open, text); err == nil {
		return it, nil
	}
	return finder.Resolve(cands, text)
}

// stashed returns everything on p that sits inside another item.
func stashed(p *inventory.Player) []*inventory.HeldItem {
	var out []*inventory.HeldItem
	for _, h := range finder.Carried(p) {
		if _, nested := h.Parent().(*inventory.HeldItem); nested {
			out = append(out, h)
		}
	}
	return out
}

// without drops one candidate from a list.
func without[T comparable](cands []T, skip T) []T {
	out := make([]T, 0, len(cands))
	for _, c := range cands {
		if c != skip {
			out = append(out, c)
		}
	}
	return out
}

// quantity reads an optional leading count. A missing count is 1.
func quantity(words []string) (int, []string, error) {
	if len(words) == 0 {
		return 1, words, nil
	}
	n, err := strconv.Atoi(words[0])
	if err != nil {
		return 1, words, nil
	}
	if n <= 0 {
		return 0, words, domain.NewGameError(domain.ErrInvalidInput, inventory.MsgInvalidQuantity)
	}
	return n, words[1:], nil
}

func usage(msg string) error {
	return domain.NewGameError(domain.ErrInvalidInput, "%s", msg)
}

func joined(words []string) string {
	return strings.Join(words, " ")
}
