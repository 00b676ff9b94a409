package narration

import (
	"container/heap"
	"sync"
)

// Destination addresses a message. Member is the chat id of a player, when known.
type Destination struct {
	Kind   Kind
	Name   string
	Member string
}

// Message is one queued outbound line.
type Message struct {
	Priority Priority
	To       Destination
	Text     string
	seq      uint64
}

// Queue is a concurrency-safe priority queue of messages. Messages of equal
// priority come out in the order they were pushed.
type Queue struct {
	mu    sync.Mutex
	items messageHeap
	seq   uint64
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push adds m.
func (q *Queue) Push(m Message) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.seq++
	m.seq = q.seq
	heap.Push(&q.items, m)
}

// Pop removes the most urgent message.
func (q *Queue) Pop() (Message, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.items) == 0 {
		return Message{}, false
	}
	return heap.Pop(&q.items).(Message), true
}

// Len returns the number of waiting messages.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

type messageHeap []Message

func (h messageHeap) Len() int { return len(h) }

func (h messageHeap) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority > h[j].Priority
	}
	return h[i].seq < h[j].seq
}

func (h messageHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *messageHeap) Push(x any) { *h = append(*h, x.(Message)) }

func (h *messageHeap) Pop() any {
	old := *h
	n := len(old)
	m := old[n-1]
	*h = old[:n-1]
	return m
}
