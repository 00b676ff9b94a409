package postgres

// ==================== Tables ====================

const tableItemRows = "item_rows"

var rowColumns = []string{
	"table_name",
	"row_num",
	"grp",
	"prefab_id",
	"identifier",
	"equipment_slot",
	"container_name",
	"slot",
	"quantity",
	"uses",
	"weight",
	"description",
}

// ==================== Queries ====================

const (
	queryCountRows = `SELECT COUNT(*) FROM item_rows WHERE table_name = $1`

	queryShiftDown = `UPDATE item_rows SET row_num = row_num + 1 WHERE table_name = $1 AND row_num >= $2`

	queryShiftUp = `UPDATE item_rows SET row_num = row_num - 1 WHERE table_name = $1 AND row_num > $2`

	queryInsertRow = `
		INSERT INTO item_rows (table_name, row_num, grp, prefab_id, identifier, equipment_slot,
		                       container_name, slot, quantity, uses, weight, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	queryUpdateRow = `
		UPDATE item_rows
		SET grp = $3, prefab_id = $4, identifier = $5, equipment_slot = $6, container_name = $7,
		    slot = $8, quantity = $9, uses = $10, weight = $11, description = $12, updated_at = NOW()
		WHERE table_name = $1 AND row_num = $2
	`

	queryDeleteRow = `DELETE FROM item_rows WHERE table_name = $1 AND row_num = $2`

	queryClearTable = `DELETE FROM item_rows WHERE table_name = $1`

	querySelectRows = `
		SELECT row_num, grp, prefab_id, identifier, equipment_slot, container_name,
		       slot, quantity, uses, weight, description
		FROM item_rows
		WHERE table_name = $1
		ORDER BY row_num
	`

	queryJournalDelta = `INSERT INTO row_deltas (table_name, op, row_num, record) VALUES ($1, $2, $3, $4)`

	queryCountJournal = `SELECT COUNT(*) FROM row_deltas WHERE table_name = $1`
)

// ==================== Error Messages ====================

const (
	ErrMsgFailedToCountRows    = "failed to count rows"
	ErrMsgFailedToShiftRows    = "failed to shift rows"
	ErrMsgFailedToInsertRow    = "failed to insert row"
	ErrMsgFailedToUpdateRow    = "failed to update row"
	ErrMsgFailedToDeleteRow    = "failed to delete row"
	ErrMsgFailedToClearTable   = "failed to clear table"
	ErrMsgFailedToCopyRows     = "failed to copy rows"
	ErrMsgFailedToQueryRows    = "failed to query rows"
	ErrMsgFailedToJournalDelta = "failed to journal delta"
)
