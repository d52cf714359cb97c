package event

// snapshotHolder carries the identifier and field state snapshot of the
// entity a pre-/post- mutation event is about.
type snapshotHolder struct {
	entityId interface{}
	state    []interface{}
}

func (h *snapshotHolder) GetEntityId() interface{} {
	return h.entityId
}

func (h *snapshotHolder) GetState() []interface{} {
	return h.state
}

//--------------------

type PreLoad struct {
	Propagator
	EntityHolder
	snapshotHolder
}

func NewPreLoad(entityName string, entityObj, entityId interface{}, state []interface{}) *PreLoad {
	return &PreLoad{
		EntityHolder:   EntityHolder{entityName: entityName, entityObj: entityObj},
		snapshotHolder: snapshotHolder{entityId: entityId, state: state},
	}
}

//--------------------

type PostLoad struct {
	Propagator
	EntityHolder
	snapshotHolder
}

func NewPostLoad(entityName string, entityObj, entityId interface{}) *PostLoad {
	return &PostLoad{
		EntityHolder:   EntityHolder{entityName: entityName, entityObj: entityObj},
		snapshotHolder: snapshotHolder{entityId: entityId},
	}
}

//--------------------

type PreInsert struct {
	Propagator
	EntityHolder
	snapshotHolder
}

func NewPreInsert(entityName string, entityObj, entityId interface{}, state []interface{}) *PreInsert {
	return &PreInsert{
		EntityHolder:   EntityHolder{entityName: entityName, entityObj: entityObj},
		snapshotHolder: snapshotHolder{entityId: entityId, state: state},
	}
}

//--------------------

type PostInsert struct {
	Propagator
	EntityHolder
	snapshotHolder
}

func NewPostInsert(entityName string, entityObj, entityId interface{}, state []interface{}) *PostInsert {
	return &PostInsert{
		EntityHolder:   EntityHolder{entityName: entityName, entityObj: entityObj},
		snapshotHolder: snapshotHolder{entityId: entityId, state: state},
	}
}

//--------------------

type PreUpdate struct {
	Propagator
	EntityHolder
	snapshotHolder
	oldState []interface{}
}

func (e *PreUpdate) GetOldState() []interface{} {
	return e.oldState
}

//--------------------

func NewPreUpdate(entityName string, entityObj, entityId interface{}, state, oldState []interface{}) *PreUpdate {
	return &PreUpdate{
		EntityHolder:   EntityHolder{entityName: entityName, entityObj: entityObj},
		snapshotHolder: snapshotHolder{entityId: entityId, state: state},
		oldState:       oldState,
	}
}

//--------------------

type PostUpdate struct {
	Propagator
	EntityHolder
	snapshotHolder
	oldState []interface{}
}

func (e *PostUpdate) GetOldState() []interface{} {
	return e.oldState
}

//--------------------

func NewPostUpdate(entityName string, entityObj, entityId interface{}, state, oldState []interface{}) *PostUpdate {
	return &PostUpdate{
		EntityHolder:   EntityHolder{entityName: entityName, entityObj: entityObj},
		snapshotHolder: snapshotHolder{entityId: entityId, state: state},
		oldState:       oldState,
	}
}

//--------------------

type PreDelete struct {
	Propagator
	EntityHolder
	snapshotHolder
}

func NewPreDelete(entityName string, entityObj, entityId interface{}, state []interface{}) *PreDelete {
	return &PreDelete{
		EntityHolder:   EntityHolder{entityName: entityName, entityObj: entityObj},
		snapshotHolder: snapshotHolder{entityId: entityId, state: state},
	}
}

//--------------------

type PostDelete struct {
	Propagator
	EntityHolder
	snapshotHolder
}

func NewPostDelete(entityName string, entityObj, entityId interface{}, state []interface{}) *PostDelete {
	return &PostDelete{
		EntityHolder:   EntityHolder{entityName: entityName, entityObj: entityObj},
		snapshotHolder: snapshotHolder{entityId: entityId, state: state},
	}
}
