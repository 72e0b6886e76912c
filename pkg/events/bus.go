package events

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pluqqy/pluqqy-board/pkg/observer"
)

// Bus dispatches comment events synchronously to its subscribers.
// It is not safe for concurrent use; everything runs on the UI loop.
type Bus struct {
	topic    observer.Topic[Event]
	disabled int
	group    string
	logger   *zap.Logger
}

// NewBus creates an enabled bus. A nil logger is replaced with a no-op one.
func NewBus(logger *zap.Logger) *Bus {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bus{logger: logger}
}

// Fire stamps the current group on e (unless it already has one) and
// delivers it. Events fired while the bus is disabled are dropped.
func (b *Bus) Fire(e Event) {
	if !b.IsEnabled() {
		return
	}
	if e.Group() == "" {
		e.SetGroup(b.group)
	}
	b.logger.Debug("Firing event",
		zap.String("event", Describe(e)),
		zap.String("comment", e.CommentID()),
		zap.String("group", e.Group()))
	b.topic.Publish(e)
}

// Subscribe registers fn for every future event
func (b *Bus) Subscribe(fn func(Event)) observer.ListenerID {
	return b.topic.Subscribe(fn)
}

// Unsubscribe removes a subscription
func (b *Bus) Unsubscribe(id observer.ListenerID) bool {
	return b.topic.Unsubscribe(id)
}

// Disable stops delivery until a matching Enable call. Calls nest.
func (b *Bus) Disable() {
	b.disabled++
}

// Enable undoes one Disable call
func (b *Bus) Enable() {
	if b.disabled > 0 {
		b.disabled--
	}
}

// IsEnabled reports whether events are currently delivered
func (b *Bus) IsEnabled() bool {
	return b.disabled == 0
}

// Group returns the group stamped on events fired now
func (b *Bus) Group() string {
	return b.group
}

// SetGroup sets the group stamped on subsequent events; "" clears it
func (b *Bus) SetGroup(group string) {
	b.group = group
}

// NewGroup starts a fresh group and returns its id
func (b *Bus) NewGroup() string {
	b.group = uuid.NewString()
	return b.group
}

// WithGroup runs fn with a group active. If a group is already open the
// events join it, otherwise a new one is opened and closed around fn.
func (b *Bus) WithGroup(fn func()) {
	if b.group != "" {
		fn()
		return
	}
	b.NewGroup()
	defer b.SetGroup("")
	fn()
}

// Silently runs fn with delivery disabled
func (b *Bus) Silently(fn func()) {
	b.Disable()
	defer b.Enable()
	fn()
}
