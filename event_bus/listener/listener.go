package listener

import (
	"reflect"

	"github.com/bassbeaver/gevent/event_bus/event"
)

// Capability types of the built-in event kinds. A listener for a kind must be
// convertible to the kind's capability type: a function with one argument,
// that argument is a pointer to the kind's event object.

type Load func(*event.Load)

type ResolveNaturalID func(*event.ResolveNaturalID)

type InitializeCollection func(*event.InitializeCollection)

type SaveOrUpdate func(*event.SaveOrUpdate)

type Persist func(*event.Persist)

type Merge func(*event.Merge)

type Delete func(*event.Delete)

type Replicate func(*event.Replicate)

type Flush func(*event.Flush)

type AutoFlush func(*event.AutoFlush)

type DirtyCheck func(*event.DirtyCheck)

type FlushEntity func(*event.FlushEntity)

type Clear func(*event.Clear)

type Evict func(*event.Evict)

type Lock func(*event.Lock)

type Refresh func(*event.Refresh)

type PreLoad func(*event.PreLoad)

type PreDelete func(*event.PreDelete)

type PreUpdate func(*event.PreUpdate)

type PreInsert func(*event.PreInsert)

type PostLoad func(*event.PostLoad)

type PostDelete func(*event.PostDelete)

type PostUpdate func(*event.PostUpdate)

type PostInsert func(*event.PostInsert)

type PreCollectionRecreate func(*event.PreCollectionRecreate)

type PreCollectionRemove func(*event.PreCollectionRemove)

type PreCollectionUpdate func(*event.PreCollectionUpdate)

type PostCollectionRecreate func(*event.PostCollectionRecreate)

type PostCollectionRemove func(*event.PostCollectionRemove)

type PostCollectionUpdate func(*event.PostCollectionUpdate)

//--------------------

// IsListenerOf reports whether listenerFunc can serve as a listener for a
// kind with the given capability type. The check is signature-based: a
// function type is accepted if it converts to the capability type.
func IsListenerOf(listenerFunc interface{}, capabilityType reflect.Type) bool {
	if nil == listenerFunc || nil == capabilityType {
		return false
	}

	if reflect.Func != capabilityType.Kind() {
		return false
	}

	listenerType := reflect.TypeOf(listenerFunc)
	if reflect.Func != listenerType.Kind() || listenerType.NumIn() != 1 {
		return false
	}

	return listenerType.ConvertibleTo(capabilityType)
}
