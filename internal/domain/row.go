package domain

// RowTable names one of the two persisted item tables.
type RowTable string

const (
	// TableItems holds world items, grouped by room
	TableItems RowTable = "items"
	// TableInventory holds equipment slots and held items, grouped by player
	TableInventory RowTable = "inventory_items"
)

// DefaultRowOffset is the row number of the first data row; row 1 is the header.
const DefaultRowOffset = 2

// RowOp is the kind of structural change a delta describes.
type RowOp string

const (
	RowInsert RowOp = "insert"
	RowUpdate RowOp = "update"
	RowDelete RowOp = "delete"
)

// RowRecord is the persisted form of one item instance or equipment slot.
type RowRecord struct {
	Row           int    `json:"row"`
	Group         string `json:"group"`
	PrefabID      string `json:"prefab_id"`
	Identifier    string `json:"identifier"`
	EquipmentSlot string `json:"equipment_slot,omitempty"`
	ContainerName string `json:"container_name"`
	Slot          string `json:"slot,omitempty"`
	Quantity      int    `json:"quantity"`
	Uses          int    `json:"uses"`
	Weight        int    `json:"weight"`
	Description   string `json:"description,omitempty"`
}

// RowDelta is a single structural change to a row table.
// Insert shifts every row at or after Row down by one; Delete shifts every row after Row up by one.
type RowDelta struct {
	Table  RowTable  `json:"table"`
	Op     RowOp     `json:"op"`
	Row    int       `json:"row"`
	Record RowRecord `json:"record"`
}
