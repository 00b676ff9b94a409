package inventory

import (
	"context"
	"fmt"

	"github.com/osse101/AlterEgo_Go/internal/domain"
	"github.com/osse101/AlterEgo_Go/internal/logger"
)

// Give hands the item in one of giver's hands to recipient, who must be in the same room
// with a free hand and enough strength to carry it.
func (e *Engine) Give(ctx context.Context, giver *Player, item *HeldItem, recipient *Player) (*Result, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgGiveCalled, "giver", giver.Name, "item", item.Label(), "recipient", recipient.Name)

	hand, err := giveTarget(giver, item, recipient)
	if err != nil {
		return nil, e.reject(ctx, "give", err)
	}

	e.detach(item)
	received := asHeld(item, recipient)
	e.attach(hand, received)

	e.narrate(giver, item.Prefab.Discreet, fmt.Sprintf(NarrGivesFmt, giver.DisplayName(), item.Phrase(), recipient.DisplayName()))
	e.narrator.Notify(recipient, fmt.Sprintf(MsgYouReceiveFmt, giver.DisplayName(), item.Phrase()))
	e.log(ctx, fmt.Sprintf(LogLineGaveFmt, giver.Name, item.Label(), recipient.Name))
	return &Result{Message: fmt.Sprintf(MsgYouGiveFmt, item.Phrase(), recipient.DisplayName()), Item: received}, nil
}

func giveTarget(giver *Player, item *HeldItem, recipient *Player) (*Slot, error) {
	if giver == recipient {
		return nil, domain.NewGameError(domain.ErrInvalidState, MsgGiveToSelf)
	}
	if err := inHand(giver, item); err != nil {
		return nil, err
	}
	if err := together(giver, recipient); err != nil {
		return nil, err
	}
	hand := recipient.FreeHand()
	if hand == nil {
		return nil, domain.NewGameError(domain.ErrPrerequisiteMissing, MsgRecipientNoFreeHandFmt, recipient.DisplayName())
	}
	if recipient.CarryWeight+item.TotalWeight() > recipient.MaxCarryWeight() {
		return nil, domain.NewGameError(domain.ErrCapacityExceeded, MsgRecipientTooMuchFmt, recipient.DisplayName(), item.Phrase())
	}
	return hand, nil
}
