package gallery

// EventKind identifies an item interaction
type EventKind int

const (
	EventClick EventKind = iota
	EventDoubleClick
)

// String returns a readable event name
func (k EventKind) String() string {
	switch k {
	case EventClick:
		return "click"
	case EventDoubleClick:
		return "double-click"
	default:
		return "unknown"
	}
}

// Handler receives the registry index of the item the event happened on
type Handler func(index int)

// Events maps item indices to interaction handlers. Widgets only report
// events; the handlers are subscribed separately from widget construction.
type Events struct {
	perItem map[int]map[EventKind][]Handler
	any     map[EventKind][]Handler
}

// NewEvents creates an empty subscription table
func NewEvents() *Events {
	return &Events{
		perItem: make(map[int]map[EventKind][]Handler),
		any:     make(map[EventKind][]Handler),
	}
}

// Subscribe registers h for kind on the item at index
func (e *Events) Subscribe(index int, kind EventKind, h Handler) {
	if h == nil {
		return
	}
	kinds, ok := e.perItem[index]
	if !ok {
		kinds = make(map[EventKind][]Handler)
		e.perItem[index] = kinds
	}
	kinds[kind] = append(kinds[kind], h)
}

// SubscribeAll registers h for kind on every item
func (e *Events) SubscribeAll(kind EventKind, h Handler) {
	if h == nil {
		return
	}
	e.any[kind] = append(e.any[kind], h)
}

// ResetItems drops per-item subscriptions. Handlers registered with
// SubscribeAll survive a reload.
func (e *Events) ResetItems() {
	e.perItem = make(map[int]map[EventKind][]Handler)
}

// Dispatch calls the per-item handlers and then the global ones, and returns
// how many ran
func (e *Events) Dispatch(index int, kind EventKind) int {
	called := 0
	for _, h := range e.perItem[index][kind] {
		h(index)
		called++
	}
	for _, h := range e.any[kind] {
		h(index)
		called++
	}
	return called
}
