package command

// ==================== Player Verbs ====================

const (
	VerbTake      = "take"
	VerbDrop      = "drop"
	VerbEquip     = "equip"
	VerbUnequip   = "unequip"
	VerbStash     = "stash"
	VerbUnstash   = "unstash"
	VerbGive      = "give"
	VerbSteal     = "steal"
	VerbCraft     = "craft"
	VerbUncraft   = "uncraft"
	VerbInventory = "inventory"
	VerbLook      = "look"
	VerbDress     = "dress"
	VerbUndress   = "undress"
)

// ==================== Moderator Verbs ====================

const (
	VerbInstantiate = "instantiate"
	VerbDestroy     = "destroy"
	VerbForce       = "force"
)

// aliases maps every accepted spelling to its canonical verb.
var aliases = map[string]string{
	"take":      VerbTake,
	"get":       VerbTake,
	"drop":      VerbDrop,
	"discard":   VerbDrop,
	"equip":     VerbEquip,
	"wear":      VerbEquip,
	"unequip":   VerbUnequip,
	"remove":    VerbUnequip,
	"stash":     VerbStash,
	"store":     VerbStash,
	"unstash":   VerbUnstash,
	"retrieve":  VerbUnstash,
	"give":      VerbGive,
	"steal":     VerbSteal,
	"craft":     VerbCraft,
	"combine":   VerbCraft,
	"uncraft":   VerbUncraft,
	"dismantle": VerbUncraft,
	"inventory": VerbInventory,
	"i":         VerbInventory,
	"look":      VerbLook,
	"examine":   VerbLook,
	"dress":     VerbDress,
	"redress":   VerbDress,
	"undress":   VerbUndress,
}

// ==================== Grammar ====================

const (
	wordOf   = "OF"
	wordAt   = "AT"
	wordFrom = "FROM"
	wordTo   = "TO"
	wordOn   = "ON"
	wordIn   = "IN"
	wordInto = "INTO"
	wordWith = "WITH"
	wordAnd  = "AND"
)

// ==================== Replies ====================

const (
	MsgUnknownCommandFmt    = "I don't know how to %s."
	MsgEmptyCommand         = "You need to say what you want to do."
	MsgUnconscious          = "You are unconscious."
	MsgNotAPlayer           = "You are not playing this game."
	MsgNoRoom               = "You aren't in a room."
	MsgCannotDropHere       = "You cannot drop items in this room."
	MsgYourPossessive       = "Your"
	MsgPossessiveFmt        = "%s's"
	MsgLookFmt              = "%s is wearing %s and holding %s."
	MsgLookNothing          = "nothing"
	MsgForcedFmt            = "%s: %s"
	MsgUsageStash           = "Say what to stash and where, like \"stash laptop in satchel\"."
	MsgUsageGive            = "Say what to give and to whom, like \"give hammer to Kyra\"."
	MsgUsageSteal           = "Say whose item to steal from, like \"steal from Vivian's satchel\"."
	MsgUsageCraft           = "Name two items you are holding, like \"craft bread with knife\"."
	MsgUsageInstantiate     = "Usage: instantiate [QUANTITY] PREFAB in [SLOT of] CONTAINER at ROOM, or in [SLOT of] PLAYER's ITEM, or to PLAYER's EQUIPMENT SLOT."
	MsgUsageDestroy         = "Usage: destroy [QUANTITY] ITEM at ROOM, or destroy [QUANTITY] ITEM from PLAYER."
	MsgUsageForce           = "Usage: force PLAYER COMMAND."
	MsgUsageDress           = "Say what to dress from, like \"dress wardrobe\" or \"redress main pocket of backpack\"."
	MsgRoomNotFoundFmt      = "Couldn't find room \"%s\"."
	MsgPlayerNotCarryingFmt = "%s isn't carrying \"%s\"."
)

// ==================== Log Messages ====================

const (
	LogMsgCommandReceived  = "Command received"
	LogMsgCommandCompleted = "Command completed"
	LogMsgCommandRejected  = "Command rejected"
	LogMsgCommandFailed    = "Command failed"
)
