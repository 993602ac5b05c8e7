package entx

// Stream is the global component-disposed notification stream. Components
// publish themselves when their Dispose is triggered; the Manager subscribes
// once at construction to route each notification into the owning entity's
// deferred-disposal queue.
//
// Delivery is synchronous and ordered: subscribers run in registration order,
// in the publisher's call stack, before Publish returns.
type Stream struct {
	subscribers []func(Component)
}

func NewStream() *Stream {
	return &Stream{}
}

func (s *Stream) Subscribe(fn func(Component)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Stream) Publish(c Component) {
	for _, fn := range s.subscribers {
		fn(c)
	}
}
