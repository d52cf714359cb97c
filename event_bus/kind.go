package event_bus

import (
	"reflect"
)

// Kind describes one recognized kind of persistence lifecycle event: a unique
// name, the capability type its listeners must satisfy and a dense zero-based
// ordinal. Ordinals are assigned in creation order with no gaps and no reuse,
// so dispatch tables can be plain arrays indexed by Ordinal().
type Kind struct {
	name           string
	capabilityType reflect.Type
	ordinal        int
}

func (k *Kind) Name() string {
	return k.name
}

// CapabilityType returns the listener function type every listener of this
// kind must be convertible to.
func (k *Kind) CapabilityType() reflect.Type {
	return k.capabilityType
}

// Ordinal returns the unique index of this kind, starting at 0 and growing by
// one per created kind. For the total number of kinds see KindsRegistry.Count.
func (k *Kind) Ordinal() int {
	return k.ordinal
}

func (k *Kind) String() string {
	return k.name
}

//--------------------

var builtinOrdinalCounter int

// create allocates a built-in Kind with the next sequential ordinal. Runs
// during package initialization only, before any registry is exposed, so no
// synchronization is needed. Callers are responsible for using distinct
// literal names.
func create[L any](name string) *Kind {
	kindObj := &Kind{
		name:           name,
		capabilityType: capabilityTypeOf[L](),
		ordinal:        builtinOrdinalCounter,
	}
	builtinOrdinalCounter++

	return kindObj
}

func capabilityTypeOf[L any]() reflect.Type {
	return reflect.TypeOf((*L)(nil)).Elem()
}
