package narration

import (
	"context"
	"fmt"

	"github.com/osse101/AlterEgo_Go/internal/inventory"
	"github.com/osse101/AlterEgo_Go/internal/logger"
	"github.com/osse101/AlterEgo_Go/internal/metrics"
	"github.com/osse101/AlterEgo_Go/internal/worker"
)

// Sender delivers one message to the chat transport.
type Sender interface {
	Send(ctx context.Context, to Destination, text string) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, to Destination, text string) error

// Send calls f.
func (f SenderFunc) Send(ctx context.Context, to Destination, text string) error {
	return f(ctx, to, text)
}

// Dispatcher implements inventory.Narrator. Every message goes onto the queue
// and a delivery job goes onto the pool; each job delivers whatever is most
// urgent at the moment it runs.
type Dispatcher struct {
	queue  *Queue
	pool   *worker.Pool
	sender Sender
}

var _ inventory.Narrator = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher. The caller starts and stops pool.
func NewDispatcher(sender Sender, pool *worker.Pool) *Dispatcher {
	return &Dispatcher{queue: NewQueue(), pool: pool, sender: sender}
}

// Narrate sends text to room's channel and a spectator copy to every other occupant.
func (d *Dispatcher) Narrate(room *inventory.Room, actor *inventory.Player, text string) {
	if room == nil {
		return
	}
	d.Post(Message{Priority: PriorityRoom, To: Destination{Kind: KindRoom, Name: room.Name}, Text: text})
	for _, p := range room.Occupants {
		if p == actor {
			continue
		}
		d.Post(Message{Priority: PrioritySpectator, To: spectatorOf(p), Text: text})
	}
}

// Notify sends text to player and copies it to the player's spectator channel.
func (d *Dispatcher) Notify(player *inventory.Player, text string) {
	if player == nil {
		return
	}
	d.Post(Message{
		Priority: PriorityNotification,
		To:       Destination{Kind: KindPlayer, Name: player.Name, Member: player.MemberID},
		Text:     text,
	})
	d.Post(Message{Priority: PrioritySpectator, To: spectatorOf(player), Text: text})
}

// Log sends text to the moderators' log channel.
func (d *Dispatcher) Log(text string) {
	d.Post(Message{Priority: PriorityMechanic, To: Destination{Kind: KindLog}, Text: text})
}

// Post queues m for delivery.
func (d *Dispatcher) Post(m Message) {
	d.queue.Push(m)
	metrics.NarrationQueueDepth.Set(float64(d.queue.Len()))
	if !d.pool.Enqueue(worker.JobFunc(d.deliverNext)) {
		logger.FromContext(context.Background()).Warn(LogMsgNarrationDropped,
			"kind", m.To.Kind, "name", m.To.Name)
	}
}

// Pending returns the number of undelivered messages.
func (d *Dispatcher) Pending() int {
	return d.queue.Len()
}

func (d *Dispatcher) deliverNext(ctx context.Context) error {
	m, ok := d.queue.Pop()
	metrics.NarrationQueueDepth.Set(float64(d.queue.Len()))
	if !ok {
		return nil
	}
	if err := d.sender.Send(ctx, m.To, m.Text); err != nil {
		metrics.NarrationFailures.Inc()
		return fmt.Errorf(ErrFmtSendFailed, m.Priority, m.To.Kind, m.To.Name, err)
	}
	metrics.NarrationsSent.WithLabelValues(m.Priority.String()).Inc()
	return nil
}

func spectatorOf(p *inventory.Player) Destination {
	return Destination{Kind: KindSpectator, Name: p.Name, Member: p.MemberID}
}
