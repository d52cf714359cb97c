package event

type Load struct {
	Propagator
	entityName string
	entityId   interface{}
	resultObj  interface{}
}

func (e *Load) GetEntityName() string {
	return e.entityName
}

func (e *Load) GetEntityId() interface{} {
	return e.entityId
}

func (e *Load) GetResult() interface{} {
	return e.resultObj
}

func (e *Load) SetResult(resultObj interface{}) {
	e.resultObj = resultObj
}

//--------------------

func NewLoad(entityName string, entityId interface{}) *Load {
	return &Load{
		entityName: entityName,
		entityId:   entityId,
	}
}

//--------------------

type ResolveNaturalID struct {
	Propagator
	entityName      string
	naturalIdValues map[string]interface{}
	entityId        interface{}
}

func (e *ResolveNaturalID) GetEntityName() string {
	return e.entityName
}

func (e *ResolveNaturalID) GetNaturalIdValues() map[string]interface{} {
	return e.naturalIdValues
}

func (e *ResolveNaturalID) GetEntityId() interface{} {
	return e.entityId
}

func (e *ResolveNaturalID) SetEntityId(entityId interface{}) {
	e.entityId = entityId
}

//--------------------

func NewResolveNaturalID(entityName string, naturalIdValues map[string]interface{}) *ResolveNaturalID {
	return &ResolveNaturalID{
		entityName:      entityName,
		naturalIdValues: naturalIdValues,
	}
}

//--------------------

type InitializeCollection struct {
	Propagator
	CollectionHolder
}

func NewInitializeCollection(role string, collectionObj, ownerObj interface{}) *InitializeCollection {
	return &InitializeCollection{
		CollectionHolder: CollectionHolder{
			role:          role,
			collectionObj: collectionObj,
			ownerObj:      ownerObj,
		},
	}
}
