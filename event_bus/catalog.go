package event_bus

import (
	"github.com/bassbeaver/gevent/event_bus/listener"
)

// Built-in event kinds. Declaration order defines ordinal order: the first
// kind declared here gets ordinal 0. Names match the listener-name-based
// configuration format, do not change them without migrating configs.
var (
	Load             = create[listener.Load]("load")
	ResolveNaturalID = create[listener.ResolveNaturalID]("resolve-natural-id")

	InitCollection = create[listener.InitializeCollection]("load-collection")

	SaveUpdate     = create[listener.SaveOrUpdate]("save-update")
	Update         = create[listener.SaveOrUpdate]("update")
	Save           = create[listener.SaveOrUpdate]("save")
	Persist        = create[listener.Persist]("create")
	PersistOnFlush = create[listener.Persist]("create-onflush")

	Merge = create[listener.Merge]("merge")

	Delete = create[listener.Delete]("delete")

	Replicate = create[listener.Replicate]("replicate")

	Flush       = create[listener.Flush]("flush")
	AutoFlush   = create[listener.AutoFlush]("auto-flush")
	DirtyCheck  = create[listener.DirtyCheck]("dirty-check")
	FlushEntity = create[listener.FlushEntity]("flush-entity")

	Clear = create[listener.Clear]("clear")
	Evict = create[listener.Evict]("evict")

	Lock = create[listener.Lock]("lock")

	Refresh = create[listener.Refresh]("refresh")

	PreLoad   = create[listener.PreLoad]("pre-load")
	PreDelete = create[listener.PreDelete]("pre-delete")
	PreUpdate = create[listener.PreUpdate]("pre-update")
	PreInsert = create[listener.PreInsert]("pre-insert")

	PostLoad   = create[listener.PostLoad]("post-load")
	PostDelete = create[listener.PostDelete]("post-delete")
	PostUpdate = create[listener.PostUpdate]("post-update")
	PostInsert = create[listener.PostInsert]("post-insert")

	PostCommitDelete = create[listener.PostDelete]("post-commit-delete")
	PostCommitUpdate = create[listener.PostUpdate]("post-commit-update")
	PostCommitInsert = create[listener.PostInsert]("post-commit-insert")

	PreCollectionRecreate = create[listener.PreCollectionRecreate]("pre-collection-recreate")
	PreCollectionRemove   = create[listener.PreCollectionRemove]("pre-collection-remove")
	PreCollectionUpdate   = create[listener.PreCollectionUpdate]("pre-collection-update")

	PostCollectionRecreate = create[listener.PostCollectionRecreate]("post-collection-recreate")
	PostCollectionRemove   = create[listener.PostCollectionRemove]("post-collection-remove")
	PostCollectionUpdate   = create[listener.PostCollectionUpdate]("post-collection-update")
)

// builtinKinds is the explicit ordered catalog NewDefaultRegistry populates
// the name map from. Must list every kind declared above, in ordinal order.
var builtinKinds = []*Kind{
	Load,
	ResolveNaturalID,
	InitCollection,
	SaveUpdate,
	Update,
	Save,
	Persist,
	PersistOnFlush,
	Merge,
	Delete,
	Replicate,
	Flush,
	AutoFlush,
	DirtyCheck,
	FlushEntity,
	Clear,
	Evict,
	Lock,
	Refresh,
	PreLoad,
	PreDelete,
	PreUpdate,
	PreInsert,
	PostLoad,
	PostDelete,
	PostUpdate,
	PostInsert,
	PostCommitDelete,
	PostCommitUpdate,
	PostCommitInsert,
	PreCollectionRecreate,
	PreCollectionRemove,
	PreCollectionUpdate,
	PostCollectionRecreate,
	PostCollectionRemove,
	PostCollectionUpdate,
}
