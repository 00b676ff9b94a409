// Package world reads the YAML world seed and builds the container graph from it.
//
// Item rows are listed in persisted row order. A row whose container is another
// item must come after the row defining that item.
package world

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/AlterEgo_Go/internal/domain"
	"github.com/osse101/AlterEgo_Go/internal/validation"
)

// Document is the decoded world file.
type Document struct {
	EquipmentSlots []string    `yaml:"equipment_slots" validate:"min=1,dive,required,upper"`
	Rooms          []RoomDef   `yaml:"rooms" validate:"min=1,dive"`
	Players        []PlayerDef `yaml:"players" validate:"dive"`
	Items          []ItemDef   `yaml:"items" validate:"dive"`
	Inventory      []HeldDef   `yaml:"inventory" validate:"dive"`
}

// RoomDef declares a room with its fixtures and puzzles.
type RoomDef struct {
	Name        string       `yaml:"name" validate:"required"`
	DropFixture string       `yaml:"drop_fixture" validate:"omitempty,upper"`
	Fixtures    []FixtureDef `yaml:"fixtures" validate:"dive"`
	Puzzles     []PuzzleDef  `yaml:"puzzles" validate:"dive"`
}

// FixtureDef declares a fixture. An empty preposition means items can't be put there.
type FixtureDef struct {
	Name        string `yaml:"name" validate:"required,upper"`
	Preposition string `yaml:"preposition" validate:"omitempty,oneof=in on under"`
	Capacity    int    `yaml:"capacity" validate:"min=0"`
	Accessible  *bool  `yaml:"accessible"`
}

// PuzzleDef declares a puzzle, optionally sitting in a fixture of the same room.
type PuzzleDef struct {
	Name       string `yaml:"name" validate:"required,upper"`
	Fixture    string `yaml:"fixture"`
	Capacity   int    `yaml:"capacity" validate:"min=0"`
	Accessible *bool  `yaml:"accessible"`
	Solved     bool   `yaml:"solved"`
}

// PlayerDef declares a player and where they start.
type PlayerDef struct {
	Name       string   `yaml:"name" validate:"required"`
	MemberID   string   `yaml:"member_id"`
	Room       string   `yaml:"room"`
	Strength   int      `yaml:"strength" validate:"min=0"`
	Dexterity  int      `yaml:"dexterity" validate:"min=0"`
	Pronouns   string   `yaml:"pronouns"`
	Attributes []string `yaml:"attributes"`
}

// ItemDef is one row of the world item table.
// Container is empty for the room floor, "Object: NAME", "Puzzle: NAME" or "Item: ID/SLOT".
type ItemDef struct {
	Room        string `yaml:"room" validate:"required"`
	Prefab      string `yaml:"prefab" validate:"required"`
	Identifier  string `yaml:"identifier"`
	Container   string `yaml:"container"`
	Quantity    int    `yaml:"quantity" validate:"min=0"`
	Uses        int    `yaml:"uses"`
	Description string `yaml:"description"`
}

// HeldDef is one row of the inventory table. Container is empty for an item
// equipped in EquipmentSlot, or "Item: ID/SLOT" for a nested item.
type HeldDef struct {
	Player        string `yaml:"player" validate:"required"`
	Prefab        string `yaml:"prefab" validate:"required"`
	Identifier    string `yaml:"identifier"`
	EquipmentSlot string `yaml:"equipment_slot"`
	Container     string `yaml:"container"`
	Quantity      int    `yaml:"quantity" validate:"min=0"`
	Uses          int    `yaml:"uses"`
	Description   string `yaml:"description"`
}

// Parse decodes and field-checks a world document. Unknown keys are rejected.
func Parse(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf(ErrFmtParseFailed, domain.ErrInvalidWorld, err)
	}
	if err := validation.Struct(doc); err != nil {
		return nil, fmt.Errorf(ErrFmtDocumentFields, domain.ErrInvalidWorld, validation.Describe(err))
	}
	return &doc, nil
}

// LoadFile reads and parses the world file at path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrFmtReadFailed, domain.ErrInvalidWorld, err)
	}
	return Parse(bytes.NewReader(data))
}

func accessible(flag *bool) bool {
	return flag == nil || *flag
}
