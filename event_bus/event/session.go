package event

type Clear struct {
	Propagator
}

func NewClear() *Clear {
	return &Clear{}
}

//--------------------

type Evict struct {
	Propagator
	EntityHolder
}

func NewEvict(entityName string, entityObj interface{}) *Evict {
	return &Evict{
		EntityHolder: EntityHolder{
			entityName: entityName,
			entityObj:  entityObj,
		},
	}
}

//--------------------

type Lock struct {
	Propagator
	EntityHolder
	lockMode string
}

func (e *Lock) GetLockMode() string {
	return e.lockMode
}

//--------------------

func NewLock(entityName string, entityObj interface{}, lockMode string) *Lock {
	return &Lock{
		EntityHolder: EntityHolder{
			entityName: entityName,
			entityObj:  entityObj,
		},
		lockMode: lockMode,
	}
}

//--------------------

type Refresh struct {
	Propagator
	EntityHolder
}

func NewRefresh(entityName string, entityObj interface{}) *Refresh {
	return &Refresh{
		EntityHolder: EntityHolder{
			entityName: entityName,
			entityObj:  entityObj,
		},
	}
}
