package core

// Event represents a game event
type Event struct {
	Type    EventType
	Tick    uint64
	Payload interface{}
}

type EventType uint16

const (
	EvtGameStart EventType = iota
	EvtTick
	EvtFoodEaten
	EvtDirectionChanged
	EvtGameOver
	EvtRestart
)

// FoodEaten is the payload of EvtFoodEaten
type FoodEaten struct {
	Cell  Cell
	Score int
}

// GameOver is the payload of EvtGameOver
type GameOver struct {
	Reason EndReason
	Score  int
	Length int
}

// DirectionChanged is the payload of EvtDirectionChanged
type DirectionChanged struct {
	From, To Direction
}

// EventBus dispatches events to listeners
type EventBus struct {
	listeners map[EventType][]EventHandler
	queue     []Event
}

type EventHandler func(e Event)

func NewEventBus() *EventBus {
	return &EventBus{
		listeners: make(map[EventType][]EventHandler),
	}
}

// On registers a handler for an event type
func (eb *EventBus) On(t EventType, h EventHandler) {
	eb.listeners[t] = append(eb.listeners[t], h)
}

// Emit queues an event for dispatch
func (eb *EventBus) Emit(e Event) {
	eb.queue = append(eb.queue, e)
}

// Pending returns the number of queued events
func (eb *EventBus) Pending() int {
	return len(eb.queue)
}

// Dispatch processes all queued events. Handlers may emit; those events
// are delivered on the next Dispatch.
func (eb *EventBus) Dispatch() {
	queue := eb.queue
	eb.queue = nil
	for _, e := range queue {
		if handlers, ok := eb.listeners[e.Type]; ok {
			for _, h := range handlers {
				h(e)
			}
		}
	}
	if eb.queue == nil {
		eb.queue = queue[:0]
	}
}
