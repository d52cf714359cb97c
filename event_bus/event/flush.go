package event

type Flush struct {
	Propagator
	numberOfEntities    int
	numberOfCollections int
}

func (e *Flush) GetNumberOfEntities() int {
	return e.numberOfEntities
}

func (e *Flush) GetNumberOfCollections() int {
	return e.numberOfCollections
}

//--------------------

func NewFlush(numberOfEntities, numberOfCollections int) *Flush {
	return &Flush{
		numberOfEntities:    numberOfEntities,
		numberOfCollections: numberOfCollections,
	}
}

//--------------------

type AutoFlush struct {
	Propagator
	querySpaces   []string
	flushRequired bool
}

func (e *AutoFlush) GetQuerySpaces() []string {
	return e.querySpaces
}

func (e *AutoFlush) IsFlushRequired() bool {
	return e.flushRequired
}

func (e *AutoFlush) SetFlushRequired(flushRequired bool) {
	e.flushRequired = flushRequired
}

//--------------------

func NewAutoFlush(querySpaces []string) *AutoFlush {
	return &AutoFlush{
		querySpaces: querySpaces,
	}
}

//--------------------

type DirtyCheck struct {
	Propagator
	dirty bool
}

func (e *DirtyCheck) IsDirty() bool {
	return e.dirty
}

func (e *DirtyCheck) SetDirty(dirty bool) {
	e.dirty = dirty
}

//--------------------

func NewDirtyCheck() *DirtyCheck {
	return &DirtyCheck{}
}

//--------------------

type FlushEntity struct {
	Propagator
	EntityHolder
}

func NewFlushEntity(entityName string, entityObj interface{}) *FlushEntity {
	return &FlushEntity{
		EntityHolder: EntityHolder{
			entityName: entityName,
			entityObj:  entityObj,
		},
	}
}
