package event

type PreCollectionRecreate struct {
	Propagator
	CollectionHolder
}

func NewPreCollectionRecreate(role string, collectionObj, ownerObj interface{}) *PreCollectionRecreate {
	return &PreCollectionRecreate{
		CollectionHolder: CollectionHolder{role: role, collectionObj: collectionObj, ownerObj: ownerObj},
	}
}

//--------------------

type PostCollectionRecreate struct {
	Propagator
	CollectionHolder
}

func NewPostCollectionRecreate(role string, collectionObj, ownerObj interface{}) *PostCollectionRecreate {
	return &PostCollectionRecreate{
		CollectionHolder: CollectionHolder{role: role, collectionObj: collectionObj, ownerObj: ownerObj},
	}
}

//--------------------

type PreCollectionRemove struct {
	Propagator
	CollectionHolder
}

func NewPreCollectionRemove(role string, collectionObj, ownerObj interface{}) *PreCollectionRemove {
	return &PreCollectionRemove{
		CollectionHolder: CollectionHolder{role: role, collectionObj: collectionObj, ownerObj: ownerObj},
	}
}

//--------------------

type PostCollectionRemove struct {
	Propagator
	CollectionHolder
}

func NewPostCollectionRemove(role string, collectionObj, ownerObj interface{}) *PostCollectionRemove {
	return &PostCollectionRemove{
		CollectionHolder: CollectionHolder{role: role, collectionObj: collectionObj, ownerObj: ownerObj},
	}
}

//--------------------

type PreCollectionUpdate struct {
	Propagator
	CollectionHolder
}

func NewPreCollectionUpdate(role string, collectionObj, ownerObj interface{}) *PreCollectionUpdate {
	return &PreCollectionUpdate{
		CollectionHolder: CollectionHolder{role: role, collectionObj: collectionObj, ownerObj: ownerObj},
	}
}

//--------------------

type PostCollectionUpdate struct {
	Propagator
	CollectionHolder
}

func NewPostCollectionUpdate(role string, collectionObj, ownerObj interface{}) *PostCollectionUpdate {
	return &PostCollectionUpdate{
		CollectionHolder: CollectionHolder{role: role, collectionObj: collectionObj, ownerObj: ownerObj},
	}
}
