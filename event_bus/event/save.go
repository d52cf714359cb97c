package event

type SaveOrUpdate struct {
	Propagator
	EntityHolder
	requestedId interface{}
}

func (e *SaveOrUpdate) GetRequestedId() interface{} {
	return e.requestedId
}

//--------------------

func NewSaveOrUpdate(entityName string, entityObj, requestedId interface{}) *SaveOrUpdate {
	return &SaveOrUpdate{
		EntityHolder: EntityHolder{
			entityName: entityName,
			entityObj:  entityObj,
		},
		requestedId: requestedId,
	}
}

//--------------------

type Persist struct {
	Propagator
	EntityHolder
}

func NewPersist(entityName string, entityObj interface{}) *Persist {
	return &Persist{
		EntityHolder: EntityHolder{
			entityName: entityName,
			entityObj:  entityObj,
		},
	}
}

//--------------------

type Merge struct {
	Propagator
	EntityHolder
	mergedObj interface{}
}

func (e *Merge) GetMerged() interface{} {
	return e.mergedObj
}

func (e *Merge) SetMerged(mergedObj interface{}) {
	e.mergedObj = mergedObj
}

//--------------------

func NewMerge(entityName string, entityObj interface{}) *Merge {
	return &Merge{
		EntityHolder: EntityHolder{
			entityName: entityName,
			entityObj:  entityObj,
		},
	}
}

//--------------------

type Delete struct {
	Propagator
	EntityHolder
}

func NewDelete(entityName string, entityObj interface{}) *Delete {
	return &Delete{
		EntityHolder: EntityHolder{
			entityName: entityName,
			entityObj:  entityObj,
		},
	}
}

//--------------------

type Replicate struct {
	Propagator
	EntityHolder
	replicationMode string
}

func (e *Replicate) GetReplicationMode() string {
	return e.replicationMode
}

//--------------------

func NewReplicate(entityName string, entityObj interface{}, replicationMode string) *Replicate {
	return &Replicate{
		EntityHolder: EntityHolder{
			entityName: entityName,
			entityObj:  entityObj,
		},
		replicationMode: replicationMode,
	}
}
