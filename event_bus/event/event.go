package event

type Event interface {
	StopPropagation()
	IsPropagationStopped() bool
}

//--------------------

type Propagator struct {
	propagationStopped bool
}

func (e *Propagator) StopPropagation() {
	e.propagationStopped = true
}

func (e *Propagator) IsPropagationStopped() bool {
	return e.propagationStopped
}

//--------------------

// EntityHolder carries the entity a lifecycle event is about.
type EntityHolder struct {
	entityName string
	entityObj  interface{}
}

func (h *EntityHolder) GetEntityName() string {
	return h.entityName
}

func (h *EntityHolder) GetEntity() interface{} {
	return h.entityObj
}

//--------------------

// CollectionHolder carries the collection a collection lifecycle event is
// about, together with its role and owning entity.
type CollectionHolder struct {
	role          string
	collectionObj interface{}
	ownerObj      interface{}
}

func (h *CollectionHolder) GetRole() string {
	return h.role
}

func (h *CollectionHolder) GetCollection() interface{} {
	return h.collectionObj
}

func (h *CollectionHolder) GetOwner() interface{} {
	return h.ownerObj
}
