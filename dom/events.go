package dom

import "sync"

// Event is a dispatched DOM event. ClientX and ClientY are viewport
// coordinates for pointer events and zero otherwise.
type Event struct {
	Type    string
	Target  *Element
	ClientX float64
	ClientY float64
}

// EventListener handles a dispatched event.
type EventListener func(*Event)

// registeredListener pairs a listener with the id handed back from
// AddEventListener, since funcs are not comparable for removal.
type registeredListener struct {
	id int
	fn EventListener
}

// EventTarget manages event listeners for one element.
type EventTarget struct {
	mu        sync.Mutex
	listeners map[string][]registeredListener
	nextID    int
}

func (e *Element) eventTarget() *EventTarget {
	d := e.elementData
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.events == nil {
		d.events = &EventTarget{
			listeners: make(map[string][]registeredListener),
			nextID:    1,
		}
	}
	return d.events
}

// AddEventListener registers a listener for the given event type and returns
// an id for later removal.
func (e *Element) AddEventListener(eventType string, fn EventListener) int {
	t := e.eventTarget()
	t.mu.Lock()
	defer t.mu.Unlock()
	id := t.nextID
	t.nextID++
	t.listeners[eventType] = append(t.listeners[eventType], registeredListener{id: id, fn: fn})
	return id
}

// RemoveEventListener removes the listener registered under id for the given
// event type. Unknown ids are ignored.
func (e *Element) RemoveEventListener(eventType string, id int) {
	t := e.eventTarget()
	t.mu.Lock()
	defer t.mu.Unlock()
	regs := t.listeners[eventType]
	for i := range regs {
		if regs[i].id == id {
			t.listeners[eventType] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// DispatchEvent invokes the element's listeners for ev.Type in registration
// order. Dispatch does not bubble.
func (e *Element) DispatchEvent(ev *Event) {
	if ev == nil {
		return
	}
	ev.Target = e
	t := e.eventTarget()
	t.mu.Lock()
	regs := make([]registeredListener, len(t.listeners[ev.Type]))
	copy(regs, t.listeners[ev.Type])
	t.mu.Unlock()
	for _, reg := range regs {
		reg.fn(ev)
	}
}

// ListenerCount returns the number of listeners registered for the given
// event type.
func (e *Element) ListenerCount(eventType string) int {
	t := e.eventTarget()
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.listeners[eventType])
}
