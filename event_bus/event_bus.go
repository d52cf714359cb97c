package event_bus

import (
	"fmt"
	"reflect"
	"sort"

	geventError "github.com/bassbeaver/gevent/error"
	"github.com/bassbeaver/gevent/event_bus/event"
	"github.com/bassbeaver/gevent/event_bus/listener"
)

type listenersChainElement struct {
	priority             int
	listenerReflectValue reflect.Value
}

// EventBus is a dispatch table over a kinds registry: one priority-sorted
// listeners chain per event kind, stored in a slice indexed by kind ordinal
// so dispatch lookup is O(1). Listener registration is expected to happen
// during single-threaded bootstrap, Dispatch is read-only afterwards.
type EventBus struct {
	kindsRegistry *KindsRegistry
	chains        [][]*listenersChainElement
}

// AppendListener adds listenerFunc to the chain of the given kind.
// listenerFunc must be convertible to the kind's capability type. Lower
// priority values run first.
func (b *EventBus) AppendListener(kind *Kind, listenerFunc interface{}, priority int) error {
	if nil == kind || nil == listenerFunc {
		return geventError.NewInvalidArgumentError("event kind and listener must be non-nil")
	}

	if _, resolveError := b.kindsRegistry.ResolveByName(kind.Name()); nil != resolveError {
		return resolveError
	}

	if !listener.IsListenerOf(listenerFunc, kind.CapabilityType()) {
		return geventError.NewInvalidArgumentError(
			fmt.Sprintf(
				"%s is not a listener for event kind %s, capability %s required",
				reflect.TypeOf(listenerFunc).String(),
				kind.Name(),
				kind.CapabilityType().String(),
			),
		)
	}

	// Custom kinds can be registered after the bus was created, grow the
	// table up to the kind's ordinal.
	for kind.Ordinal() >= len(b.chains) {
		b.chains = append(b.chains, nil)
	}

	chain := append(
		b.chains[kind.Ordinal()],
		&listenersChainElement{
			priority:             priority,
			listenerReflectValue: reflect.ValueOf(listenerFunc),
		},
	)
	sort.SliceStable(chain, func(i, j int) bool {
		return chain[i].priority < chain[j].priority
	})
	b.chains[kind.Ordinal()] = chain

	return nil
}

// Dispatch runs the listeners chain of the given kind against eventObj, in
// priority order, until the chain is exhausted or propagation is stopped.
// Dispatching an event object incompatible with the kind's capability is a
// programming error and panics.
func (b *EventBus) Dispatch(kind *Kind, eventObj event.Event) {
	if nil == kind || nil == eventObj {
		return
	}

	if kind.Ordinal() >= len(b.chains) {
		return
	}

	chain := b.chains[kind.Ordinal()]
	if 0 == len(chain) {
		return
	}

	eventReflectValue := reflect.ValueOf(eventObj)
	if !eventReflectValue.Type().AssignableTo(kind.CapabilityType().In(0)) {
		panic(
			fmt.Sprintf(
				"%s is not compatible with event kind %s, %s expected",
				eventReflectValue.Type().String(),
				kind.Name(),
				kind.CapabilityType().In(0).String(),
			),
		)
	}

	for _, chainElement := range chain {
		chainElement.listenerReflectValue.Call([]reflect.Value{eventReflectValue})

		if eventObj.IsPropagationStopped() {
			return
		}
	}
}

//--------------------

// NewEventBus creates a dispatch table sized to the registry's current kind
// count. Chains for kinds registered later are allocated on first
// AppendListener.
func NewEventBus(kindsRegistry *KindsRegistry) *EventBus {
	return &EventBus{
		kindsRegistry: kindsRegistry,
		chains:        make([][]*listenersChainElement, kindsRegistry.Count()),
	}
}
