package narration

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/AlterEgo_Go/internal/inventory"
	"github.com/osse101/AlterEgo_Go/internal/worker"
)

type sent struct {
	To   Destination
	Text string
}

type recordingSender struct {
	mu   sync.Mutex
	msgs []sent
}

func (r *recordingSender) Send(_ context.Context, to Destination, text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, sent{To: to, Text: text})
	return nil
}

func newRoom() (*inventory.Room, *inventory.Player, *inventory.Player, *inventory.Player) {
	room := inventory.NewRoom("KITCHEN")
	vivian := inventory.NewPlayer("Vivian", []string{"RIGHT HAND", "LEFT HAND"})
	kyra := inventory.NewPlayer("Kyra", []string{"RIGHT HAND", "LEFT HAND"})
	nero := inventory.NewPlayer("Nero", []string{"RIGHT HAND", "LEFT HAND"})
	vivian.MemberID = "111"
	kyra.MemberID = "222"
	for _, p := range []*inventory.Player{vivian, kyra, nero} {
		p.Room = room
		room.Occupants = append(room.Occupants, p)
	}
	return room, vivian, kyra, nero
}

func TestDispatcher_DeliversByPriority(t *testing.T) {
	rec := &recordingSender{}
	pool := worker.NewPool(1, 32)
	d := NewDispatcher(rec, pool)
	room, vivian, kyra, nero := newRoom()

	// Nothing runs until the pool starts, so every message competes in the queue.
	d.Narrate(room, vivian, "Vivian takes a KNIFE from the COUNTER.")
	d.Notify(vivian, "You take a KNIFE.")
	d.Log("Vivian took KNIFE from COUNTER in KITCHEN")
	require.Equal(t, 5, d.Pending())

	pool.Start()
	pool.Stop()

	require.Len(t, rec.msgs, 5)
	assert.Equal(t, sent{Destination{Kind: KindLog}, "Vivian took KNIFE from COUNTER in KITCHEN"}, rec.msgs[0])
	assert.Equal(t, sent{Destination{KindPlayer, "Vivian", "111"}, "You take a KNIFE."}, rec.msgs[1])
	assert.Equal(t, sent{Destination{Kind: KindRoom, Name: "KITCHEN"}, "Vivian takes a KNIFE from the COUNTER."}, rec.msgs[2])
	assert.Equal(t, sent{Destination{KindSpectator, kyra.Name, "222"}, "Vivian takes a KNIFE from the COUNTER."}, rec.msgs[3])
	assert.Equal(t, sent{Destination{Kind: KindSpectator, Name: nero.Name}, "Vivian takes a KNIFE from the COUNTER."}, rec.msgs[4])
	assert.Zero(t, d.Pending())
}

func TestDispatcher_NilTargetsIgnored(t *testing.T) {
	rec := &recordingSender{}
	pool := worker.NewPool(1, 4)
	d := NewDispatcher(rec, pool)

	d.Narrate(nil, nil, "nobody hears this")
	d.Notify(nil, "nor this")

	assert.Zero(t, d.Pending())
	pool.Start()
	pool.Stop()
	assert.Empty(t, rec.msgs)
}

func TestDispatcher_SendFailureReachesErrorHandler(t *testing.T) {
	var (
		mu   sync.Mutex
		errs []error
	)
	boom := errors.New("discord unavailable")
	pool := worker.NewPool(1, 4, worker.WithErrorHandler(func(_ context.Context, err error) {
		mu.Lock()
		defer mu.Unlock()
		errs = append(errs, err)
	}))
	d := NewDispatcher(SenderFunc(func(context.Context, Destination, string) error { return boom }), pool)

	pool.Start()
	d.Log("Vivian took KNIFE")
	pool.Stop()

	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], boom)
	assert.Contains(t, errs[0].Error(), "mechanic")
}

func TestDispatcher_PostAfterStopKeepsMessage(t *testing.T) {
	pool := worker.NewPool(1, 1)
	d := NewDispatcher(LogSender{}, pool)
	pool.Start()
	pool.Stop()

	d.Log("too late")

	assert.Equal(t, 1, d.Pending())
}
