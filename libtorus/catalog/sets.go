package catalog

import (
	"github.com/2x3systems/gotorus/libtorus/graph"
	"github.com/2x3systems/gotorus/libtorus/graph6"
	"github.com/dgraph-io/badger/v3"
)

// KeySet allows adding graphs and returning if an equivalent graph has already been added.
type KeySet interface {

	// TryAdd adds the given graph if it is not already present.
	//
	// If the canonic version of X already is in this KeySet, this call has no effect and TryAdd() returns false.
	// If X isn't in this set, X is added and TryAdd() returns true.
	//
	// After one or more calls to TryAdd(), call Close() for cleanup.
	TryAdd(X *graph.Graph) bool

	// Close removes all previously added items from this set.
	Close()
}

// NewKeySet returns an in-memory KeySet. If canonize is nil, graphs are compared by graph6 encoding.
func NewKeySet(canonize func(X graph.Graph) graph.Graph) KeySet {
	return &graphSet{
		canonize: canonize,
	}
}

type graphSet struct {
	lsmSet
	canonize func(X graph.Graph) graph.Graph
}

func (gs *graphSet) TryAdd(X *graph.Graph) bool {
	canon := *X
	if gs.canonize != nil {
		canon = gs.canonize(canon)
	}
	return gs.tryAdd([]byte(graph6.Format(&canon)))
}

type lsmSet struct {
	db *badger.DB
}

func (set *lsmSet) autoOpen() {
	if set.db == nil {
		dbOpts := badger.DefaultOptions("").WithInMemory(true)
		dbOpts.Logger = nil
		dbOpts.MetricsEnabled = false

		var err error
		set.db, err = badger.Open(dbOpts)
		if err != nil {
			panic(err)
		}
	}
}

func (set *lsmSet) tryAdd(key []byte) bool {
	set.autoOpen()

	txn := set.db.NewTransaction(true)
	defer txn.Commit()

	added := false
	_, err := txn.Get(key)
	if err == nil {
		// no-op since the key is already in the db
	} else if err == badger.ErrKeyNotFound {
		err = txn.Set(key, nil)
		added = true
	}

	if err != nil {
		panic(err)
	}

	return added
}

func (set *lsmSet) Close() {
	if set.db != nil {
		set.db.Close()
		set.db = nil
	}
}
