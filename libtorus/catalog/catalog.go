// Package catalog stores classified graphs in a badger db keyed by vertex count and graph6.
package catalog

import (
	"runtime"

	"github.com/2x3systems/gotorus/gotorus"
	"github.com/2x3systems/gotorus/libtorus/graph"
	"github.com/2x3systems/gotorus/libtorus/graph6"
	"github.com/dgraph-io/badger/v3"
	"github.com/gogo/protobuf/proto"
	"github.com/pkg/errors"
)

/***

Catalog database format:

	gCatalogStateKey => State

	NumVertices (byte), graph6 of the (canonized) graph  => Record   (UserMeta holds Flag_*)
	...

Since the first key byte is the vertex count, Select seeks straight to the smallest vertex count wanted
and stops once past the largest.

***/

var (
	gCatalogStateKey = []byte{0x00, 0x00, 0x01}
)

const (
	kMajorVers = 2026
	kMinorVers = 1
)

// Record flags, stored as badger UserMeta so that Select can filter without decoding values.
const (
	Flag_Planar byte = 1 << iota
	Flag_Toroidal
	Flag_NotEmbeddable
	Flag_Obstruction
)

// Selector specifies which records Select returns.
type Selector struct {
	MinVertices      int
	MaxVertices      int
	Planar           bool // select genus 0 records
	Toroidal         bool // select genus 1 records
	NotEmbeddable    bool // select records with no embedding of genus <= 1
	ObstructionsOnly bool // only select records flagged as torus obstructions
}

// DefaultSelector selects every record.
var DefaultSelector = Selector{
	MinVertices:   0,
	MaxVertices:   gotorus.MaxVertices,
	Planar:        true,
	Toroidal:      true,
	NotEmbeddable: true,
}

// Catalog is a db wrapper for classified graphs.
//
// TryAdd is not safe for concurrent use; Get and Select are.
type Catalog struct {
	// Canonize, if set, maps a graph to the representative of its isomorphism class before it is keyed.
	// When nil, graphs are keyed by their graph6 encoding as given (vertex IDs compacted).
	Canonize func(X graph.Graph) graph.Graph

	readOnly   bool
	stateDirty bool
	state      State
	db         *badger.DB
}

// Open opens (or creates) the catalog at opts.DbPathName, or an in-memory catalog if no path is given.
func Open(opts gotorus.CatalogOpts) (*Catalog, error) {
	cat := &Catalog{
		readOnly: opts.ReadOnly,
	}

	dbOpts := badger.DefaultOptions(opts.DbPathName)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false // not needed so disable for performance
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	// Badger for windows currently does not support read-only mode
	if runtime.GOOS == "windows" {
		dbOpts.ReadOnly = false
	}

	if len(opts.DbPathName) == 0 {
		if opts.ReadOnly {
			return nil, errors.Wrap(gotorus.ErrBadCatalogParam, "DbPathName must be specified for read-only catalog")
		}
		dbOpts.InMemory = true
	}

	var err error
	cat.db, err = badger.Open(dbOpts)
	if err != nil {
		return nil, err
	}

	err = cat.loadState()
	if err == badger.ErrKeyNotFound {
		err = nil
		cat.stateDirty = !cat.readOnly
		cat.state.MajorVers = kMajorVers
		cat.state.MinorVers = kMinorVers
	}
	if err == nil && (cat.state.MajorVers != kMajorVers || cat.state.MinorVers != kMinorVers) {
		err = errors.Wrapf(gotorus.ErrBadCatalogParam, "catalog version %d.%d is incompatible", cat.state.MajorVers, cat.state.MinorVers)
	}
	if err != nil {
		cat.Close()
		return nil, err
	}

	if n := len(cat.state.NumRecords); n <= gotorus.MaxVertices {
		cat.state.NumRecords = append(cat.state.NumRecords, make([]uint64, gotorus.MaxVertices+1-n)...)
	}
	return cat, nil
}

func (cat *Catalog) loadState() error {
	return cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(gCatalogStateKey)
		if err == nil {
			err = item.Value(func(val []byte) error {
				return proto.Unmarshal(val, &cat.state)
			})
		}
		return err
	})
}

func (cat *Catalog) flushState() error {
	if !cat.stateDirty {
		return nil
	}
	err := cat.db.Update(func(txn *badger.Txn) error {
		stateBuf, err := proto.Marshal(&cat.state)
		if err != nil {
			return err
		}
		return txn.Set(gCatalogStateKey, stateBuf)
	})
	if err == nil {
		cat.stateDirty = false
	}
	return err
}

// Close flushes the catalog header and closes the db.
func (cat *Catalog) Close() error {
	if cat.db == nil {
		return nil
	}
	err := cat.flushState()
	if closeErr := cat.db.Close(); err == nil {
		err = closeErr
	}
	cat.db = nil
	return err
}

func (cat *Catalog) IsReadOnly() bool {
	return cat.readOnly
}

// Count returns the number of records with the given vertex count, or of all records if numVerts < 0.
func (cat *Catalog) Count(numVerts int) int64 {
	if numVerts >= len(cat.state.NumRecords) {
		return 0
	}
	if numVerts >= 0 {
		return int64(cat.state.NumRecords[numVerts])
	}
	total := int64(0)
	for _, n := range cat.state.NumRecords {
		total += int64(n)
	}
	return total
}

func (cat *Catalog) formKey(X *graph.Graph) (key []byte, Xg6 string) {
	canon := *X
	if cat.Canonize != nil {
		canon = cat.Canonize(canon)
	}
	Xg6 = graph6.Format(&canon)
	key = make([]byte, 0, 1+len(Xg6))
	key = append(key, byte(canon.NodeCount()))
	key = append(key, Xg6...)
	return key, Xg6
}

func flagsFor(c gotorus.Classification) byte {
	var flags byte
	switch c.Genus {
	case 0:
		flags = Flag_Planar
	case 1:
		flags = Flag_Toroidal
	default:
		flags = Flag_NotEmbeddable
	}
	if c.Obstruction {
		flags |= Flag_Obstruction
	}
	return flags
}

// TryAdd adds a record for X classified as c, returning false if X is already present.
func (cat *Catalog) TryAdd(X *graph.Graph, c gotorus.Classification) (bool, error) {
	if X == nil {
		return false, gotorus.ErrNilGraph
	}
	if cat.readOnly {
		return false, gotorus.ErrCatalogReadOnly
	}

	key, Xg6 := cat.formKey(X)

	txn := cat.db.NewTransaction(true)
	defer txn.Discard()

	_, err := txn.Get(key)
	if err == nil {
		return false, nil
	}
	if err != badger.ErrKeyNotFound {
		return false, err
	}

	rec := Record{
		Graph6:      Xg6,
		NumVertices: uint32(X.NodeCount()),
		NumEdges:    uint32(X.EdgeCount()),
		Genus:       int32(c.Genus),
		Obstruction: c.Obstruction,
		Label:       c.Label,
	}
	val, err := proto.Marshal(&rec)
	if err != nil {
		return false, err
	}
	if err = txn.SetEntry(badger.NewEntry(key, val).WithMeta(flagsFor(c))); err != nil {
		return false, err
	}
	if err = txn.Commit(); err != nil {
		return false, err
	}

	cat.state.NumRecords[key[0]]++
	cat.stateDirty = true
	return true, nil
}

// Get returns the record for X, if present.
func (cat *Catalog) Get(X *graph.Graph) (*Record, bool, error) {
	if X == nil {
		return nil, false, gotorus.ErrNilGraph
	}
	key, _ := cat.formKey(X)

	rec := &Record{}
	err := cat.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return proto.Unmarshal(val, rec)
		})
	})
	if err == badger.ErrKeyNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return rec, true, nil
}

func (sel *Selector) match(flags byte) bool {
	if sel.ObstructionsOnly && flags&Flag_Obstruction == 0 {
		return false
	}
	var want byte
	if sel.Planar {
		want |= Flag_Planar
	}
	if sel.Toroidal {
		want |= Flag_Toroidal
	}
	if sel.NotEmbeddable {
		want |= Flag_NotEmbeddable
	}
	return flags&want != 0
}

// Select sends every record matching sel to onHit, in order of vertex count and then graph6.
// The caller is responsible for closing onHit once Select returns.
func (cat *Catalog) Select(sel Selector, onHit chan<- *Record) error {
	if sel.MinVertices < 0 {
		sel.MinVertices = 0
	}
	minKey := [1]byte{byte(sel.MinVertices)}

	txn := cat.db.NewTransaction(false)
	defer txn.Discard()

	it := txn.NewIterator(badger.IteratorOptions{
		PrefetchValues: true,
		PrefetchSize:   100,
	})
	defer it.Close()

	for it.Seek(minKey[:]); it.Valid(); it.Next() {
		item := it.Item()
		key := item.Key()

		// Stop when the vtx count is over the max
		if int(key[0]) > sel.MaxVertices {
			break
		}
		if len(key) == len(gCatalogStateKey) && key[0] == 0 && key[1] == 0 {
			continue
		}
		if !sel.match(item.UserMeta()) {
			continue
		}

		rec := &Record{}
		err := item.Value(func(val []byte) error {
			return proto.Unmarshal(val, rec)
		})
		if err != nil {
			return err
		}
		onHit <- rec
	}
	return nil
}
