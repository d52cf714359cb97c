package event_bus

import (
	"reflect"
	"sync"

	geventError "github.com/bassbeaver/gevent/error"
	"github.com/rs/zerolog/log"
)

// KindsRegistry is the catalog of known event kinds: all built-in kinds plus
// any custom kinds registered at runtime. The registry is append-only, kinds
// are never removed or rebound. Safe for concurrent use.
type KindsRegistry struct {
	byName        map[string]*Kind
	nextOrdinal   int
	registryMutex sync.RWMutex
}

// RegisterCustom adds a new event kind under the given name. Registering an
// already known name with the same capability type is idempotent and returns
// the stored kind without allocating a new ordinal. Registering a known name
// with a different capability type fails and leaves the registry unchanged.
func (r *KindsRegistry) RegisterCustom(name string, capabilityType reflect.Type) (*Kind, error) {
	if "" == name || nil == capabilityType {
		return nil, geventError.NewInvalidArgumentError("custom event kind name and capability type must be non-empty")
	}

	r.registryMutex.Lock()
	defer r.registryMutex.Unlock()

	if registeredKind, kindExists := r.byName[name]; kindExists {
		// There is no way to tell a deliberate re-registration from a name
		// collision, so a matching capability type counts as the same kind.
		if registeredKind.capabilityType == capabilityType {
			return registeredKind, nil
		}

		return nil, geventError.NewConflictingRegistrationError(name, registeredKind.capabilityType, capabilityType)
	}

	// Ordinal is allocated only on this path, a rejected registration must
	// not leave a gap in the ordinal sequence.
	kindObj := &Kind{
		name:           name,
		capabilityType: capabilityType,
		ordinal:        r.nextOrdinal,
	}
	r.nextOrdinal++
	r.byName[name] = kindObj

	log.Debug().
		Str("kind", name).
		Int("ordinal", kindObj.ordinal).
		Str("capability", capabilityType.String()).
		Msg("registered custom event kind")

	return kindObj, nil
}

// ResolveByName finds an event kind by its name.
func (r *KindsRegistry) ResolveByName(name string) (*Kind, error) {
	if "" == name {
		return nil, geventError.NewInvalidArgumentError("event kind name to resolve must be non-empty")
	}

	r.registryMutex.RLock()
	defer r.registryMutex.RUnlock()

	if kindObj, kindExists := r.byName[name]; kindExists {
		return kindObj, nil
	}

	return nil, geventError.NewUnknownEventKindError(name)
}

// Values returns a snapshot of all currently known kinds. Order follows map
// iteration and is not ordinal order, sort explicitly when ordinal order
// matters.
func (r *KindsRegistry) Values() []*Kind {
	r.registryMutex.RLock()
	defer r.registryMutex.RUnlock()

	kinds := make([]*Kind, 0, len(r.byName))
	for _, kindObj := range r.byName {
		kinds = append(kinds, kindObj)
	}

	return kinds
}

// Count returns the number of known kinds. Because ordinals are dense this is
// also one past the highest ordinal in use.
func (r *KindsRegistry) Count() int {
	r.registryMutex.RLock()
	defer r.registryMutex.RUnlock()

	return len(r.byName)
}

//--------------------

// NewDefaultRegistry creates a registry pre-populated with all built-in
// kinds. Built-in kinds are package-level singletons, every registry shares
// the same instances.
func NewDefaultRegistry() *KindsRegistry {
	registry := &KindsRegistry{
		byName:      make(map[string]*Kind, len(builtinKinds)),
		nextOrdinal: len(builtinKinds),
	}

	for _, kindObj := range builtinKinds {
		registry.byName[kindObj.name] = kindObj
	}

	return registry
}

// RegisterCustomKind is a typed convenience wrapper over
// KindsRegistry.RegisterCustom capturing the capability type from the type
// parameter.
func RegisterCustomKind[L any](registry *KindsRegistry, name string) (*Kind, error) {
	return registry.RegisterCustom(name, capabilityTypeOf[L]())
}
