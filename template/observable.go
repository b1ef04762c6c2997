package template

import (
	"sync"
)

// Observable is the interface implemented by the prototypes that notify about their changes.
// The templates initialized from an observable prototype recapture it on each change.
type Observable interface {
	// Observe registers the 'listener' called with the changed property name.
	// The returned function removes the listener.
	Observe(listener func(property string)) (unsubscribe func())
}

// Notifier is the embeddable Observable implementation.
// The zero value is ready to use.
type Notifier struct {
	listeners map[int]func(property string)
	next      int
	lock      sync.Mutex
}

// Observe implements Observable interface.
func (n *Notifier) Observe(listener func(property string)) func() {
	n.lock.Lock()
	defer n.lock.Unlock()

	if n.listeners == nil {
		n.listeners = map[int]func(string){}
	}
	id := n.next
	n.next++
	n.listeners[id] = listener
	return func() {
		n.lock.Lock()
		defer n.lock.Unlock()
		delete(n.listeners, id)
	}
}

// Notify calls all the listeners with the changed 'property' name.
func (n *Notifier) Notify(property string) {
	n.lock.Lock()
	listeners := make([]func(string), 0, len(n.listeners))
	for i := 0; i < n.next; i++ {
		if listener, ok := n.listeners[i]; ok {
			listeners = append(listeners, listener)
		}
	}
	n.lock.Unlock()

	for _, listener := range listeners {
		listener(property)
	}
}

// Listeners gets the number of the registered listeners.
func (n *Notifier) Listeners() int {
	n.lock.Lock()
	defer n.lock.Unlock()
	return len(n.listeners)
}
