package inventory

// DefaultDropFixture is where items dropped without a destination land.
const DefaultDropFixture = "FLOOR"

// ==================== Capacity Messages ====================

const (
	MsgTooLargeForSlotFmt      = "%s will not fit in %s of %s because it is too large."
	MsgTooLargeForContainerFmt = "%s will not fit in %s because it is too large."
	MsgNoSpaceInSlotFmt        = "%s will not fit in %s of %s because there isn't enough space left."
	MsgNoSpaceInContainerFmt   = "%s will not fit in %s because there isn't enough space left."
	MsgTooHeavyFmt             = "You try to take %s, but it is too heavy."
	MsgCarryingTooMuchFmt      = "You try to take %s, but you're carrying too much weight."
	MsgRecipientTooMuchFmt     = "%s is carrying too much weight to take %s."
)

// ==================== Lookup Messages ====================

const (
	MsgNoFreeHand               = "You do not have a free hand. Either drop an item you're currently holding or stash it in one of your equipped items."
	MsgNoFreeHandToDismantleFmt = "You need an empty hand to dismantle %s."
	MsgRecipientNoFreeHandFmt   = "%s does not have a free hand to receive an item."
	MsgNotInHandFmt             = "Couldn't find item \"%s\" in either of your hands."
	MsgHandNotFoundFmt          = "Couldn't find hand \"%s\"."
	MsgEquipmentSlotNotFoundFmt = "Couldn't find equipment slot \"%s\"."
	MsgSlotNotFoundFmt          = "Couldn't find \"%s\" of %s."
	MsgNothingEquippedFmt       = "Nothing is equipped to %s."
	MsgRecipeNotFoundFmt        = "couldn't find recipe requiring %s and %s."
	MsgUncraftNotFoundFmt       = "Couldn't find uncraftable recipe producing %s."
	MsgNothingToStealFmt        = "There's nothing in %s to steal."
	MsgItemGone                 = "That item is no longer there."
	MsgNoEquippableFmt          = "%s has no equippable items."
	MsgNothingToPutOnFmt        = "There is nothing in %s you can put on right now."
	MsgNothingToUndress         = "You aren't wearing or holding anything."
)

// ==================== State Messages ====================

const (
	MsgNotEquippableFmt      = "%s is not equippable."
	MsgWrongEquipmentSlotFmt = "%s can't be equipped to equipment slot %s."
	MsgSlotOccupiedFmt       = "Cannot equip items to %s because %s is already equipped to it."
	MsgCannotUnequipHands    = "You cannot unequip items from either of your hands. To get rid of this item, use the drop command."
	MsgCoveredFmt            = "You cannot unequip the %s because it is covered by the %s."
	MsgCannotHoldItemsFmt    = "%s cannot hold items."
	MsgStashIntoItselfFmt    = "Can't stash %s %s itself."
	MsgNotYourItemFmt        = "%s is not in your inventory."
	MsgGiveToSelf            = "You can't give to yourself."
	MsgStealFromSelf         = "You can't steal from yourself."
	MsgNotInRoomFmt          = "%s isn't in the room with you."
	MsgSameItemTwice         = "You need two different items to craft."
	MsgInvalidQuantity       = "Quantity must be a positive number."
	MsgHandOnlyEquip         = "Items can only be placed in a hand by taking them."
	MsgNotWorldContainerFmt  = "You cannot put items in %s."
	MsgNotStashedFmt         = "%s is not stashed in anything."
	MsgNotAccessibleFmt      = "You can't reach %s."
	MsgVictimNotCarryingFmt  = "%s isn't carrying %s."
)

// ==================== Player Replies ====================

const (
	MsgYouTakeFmt      = "You take %s."
	MsgYouDiscardFmt   = "You discard %s."
	MsgYouEquipFmt     = "You equip the %s."
	MsgYouUnequipFmt   = "You unequip the %s."
	MsgYouStashFmt     = "You stash %s."
	MsgYouUnstashFmt   = "You take %s out of the %s."
	MsgYouGiveFmt      = "You give %s to %s."
	MsgYouReceiveFmt   = "%s gives you %s!"
	MsgYouCraftFmt     = "You craft %s."
	MsgYouUncraftFmt   = "You dismantle %s."
	MsgInstantiatedFmt = "Instantiated %d %s in %s."
	MsgDestroyedFmt    = "Destroyed %d %s."
	MsgYouDressFmt     = "You dress from the %s, putting on %s."
	MsgYouUndressFmt   = "You undress, putting %s %s the %s."
	MsgYourInventory   = "Your inventory"
)

// ==================== Steal Replies ====================

const (
	MsgStealSilentFmt        = "You steal %s from %s without %s noticing!"
	MsgStealNoticedFmt       = "You steal %s from %s, but %s %s to notice."
	MsgStealNoticedVictimFmt = "%s steals %s from %s!"
	MsgStealFailedFmt        = "You try to steal %s from %s, but %s %s you before you can."
	MsgStealFailedVictimFmt  = "%s attempts to steal %s from %s, but you notice in time!"
)

// ==================== Narrations ====================

const (
	NarrTakesFmt     = "%s takes %s."
	NarrPutsFmt      = "%s puts %s %s the %s."
	NarrDropsFmt     = "%s drops %s."
	NarrPutsOnFmt    = "%s puts on %s."
	NarrTakesOffFmt  = "%s takes off %s %s."
	NarrStashesFmt   = "%s stashes %s %s %s %s."
	NarrUnstashesFmt = "%s takes %s out of %s %s."
	NarrGivesFmt     = "%s gives %s to %s."
	NarrStealsFmt    = "%s steals %s from %s."
	NarrCraftsFmt    = "%s crafts %s."
	NarrUncraftFmt   = "%s %s %s%s."
	NarrDressesFmt   = "%s dresses from the %s, putting on %s."
	NarrUndressesFmt = "%s undresses, putting %s %s the %s."
)

// ==================== Moderator Log ====================

const (
	LogLineTookFmt         = "%s took %s from %s in %s"
	LogLineDroppedFmt      = "%s dropped %s in %s in %s"
	LogLineEquippedFmt     = "%s equipped %s to %s"
	LogLineUnequippedFmt   = "%s unequipped %s from %s"
	LogLineStashedFmt      = "%s stashed %s in %s of %s"
	LogLineUnstashedFmt    = "%s unstashed %s from %s of %s"
	LogLineGaveFmt         = "%s gave %s to %s"
	LogLineStoleFmt        = "%s stole %s from %s's %s"
	LogLineStealFailedFmt  = "%s failed to steal %s from %s"
	LogLineCraftedFmt      = "%s crafted %s from %s and %s"
	LogLineForceCraftedFmt = "%s forcibly crafted %s from %s and %s"
	LogLineUncraftedFmt    = "%s uncrafted %s into %s and %s"
	LogLineInstantiatedFmt = "Instantiated %d %s in %s"
	LogLineDestroyedFmt    = "Destroyed %d %s from %s"
	LogLineDressedFmt      = "%s dressed from %s, putting on %s in %s"
	LogLineUndressedFmt    = "%s undressed, putting %s %s %s in %s"
	LogLineForcedPrefix    = "[forced] "
)

// ==================== Log Messages ====================

const (
	LogMsgTakeCalled        = "Take called"
	LogMsgDropCalled        = "Drop called"
	LogMsgEquipCalled       = "Equip called"
	LogMsgUnequipCalled     = "Unequip called"
	LogMsgStashCalled       = "Stash called"
	LogMsgUnstashCalled     = "Unstash called"
	LogMsgGiveCalled        = "Give called"
	LogMsgStealCalled       = "Steal called"
	LogMsgStealRolled       = "Steal rolled"
	LogMsgCraftCalled       = "Craft called"
	LogMsgUncraftCalled     = "Uncraft called"
	LogMsgInstantiateCalled = "Instantiate called"
	LogMsgDestroyCalled     = "Destroy called"
	LogMsgDressCalled       = "Dress called"
	LogMsgUndressCalled     = "Undress called"
	LogMsgOperationRejected = "Operation rejected"
)

// Identifier generation
const identifierFmt = "%s %d"
