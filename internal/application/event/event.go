package event

// Kind identifies an event emitted by the simulation.
type Kind int

const (
	GameOver Kind = iota
	FlashbackCollected
	DoorReached
	BossDefeated
	FinalBossDefeated
	LevelLoaded
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case GameOver:
		return "GameOver"
	case FlashbackCollected:
		return "FlashbackCollected"
	case DoorReached:
		return "DoorReached"
	case BossDefeated:
		return "BossDefeated"
	case FinalBossDefeated:
		return "FinalBossDefeated"
	case LevelLoaded:
		return "LevelLoaded"
	default:
		return "Unknown"
	}
}

// Event is a discrete notification from the core to its collaborators.
type Event struct {
	Kind Kind
	// Level is the level number the event happened in.
	Level int
	// Nb and Text describe a collected flashback object.
	Nb   string
	Text string
}

// Handler receives dispatched events.
type Handler func(Event)

// Bus queues events raised during a tick and dispatches them afterwards,
// in emission order. It is not safe for concurrent use.
type Bus struct {
	handlers []Handler
	queue    []Event
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe registers h for every event.
func (b *Bus) Subscribe(h Handler) {
	b.handlers = append(b.handlers, h)
}

// Emit queues e until the next Flush.
func (b *Bus) Emit(e Event) {
	b.queue = append(b.queue, e)
}

// Pending returns the number of queued events.
func (b *Bus) Pending() int {
	return len(b.queue)
}

// Flush dispatches queued events. Events emitted by handlers are
// dispatched in the same flush after the ones already queued.
func (b *Bus) Flush() {
	for i := 0; i < len(b.queue); i++ {
		e := b.queue[i]
		for _, h := range b.handlers {
			h(e)
		}
	}
	b.queue = b.queue[:0]
}

// Discard drops queued events without dispatching them.
func (b *Bus) Discard() {
	b.queue = b.queue[:0]
}
