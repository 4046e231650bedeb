package event

import "sync"

// Event is a domain event published after a successful write. Handlers run
// synchronously in the publishing goroutine, replacing hidden persistence
// hooks with explicit dispatch.
type Event interface {
	Name() string
}

type Handler func(e Event)

type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

func (b *Bus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
}

func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	handlers := b.handlers[e.Name()]
	b.mu.RUnlock()
	for _, h := range handlers {
		h(e)
	}
}
