package bridges

import (
	"github.com/2x3systems/gotorus/gotorus"
	"github.com/2x3systems/gotorus/libtorus/embedding"
	"github.com/2x3systems/gotorus/libtorus/graph"
)

// Tracker holds the pending bridges and current faces of a partial embedding together with the
// admissibility relation between them: bridge b is admissible in face f if every attachment
// vertex of b lies on the boundary of f.
//
// A bounded Tracker addresses at most gotorus.SlotCapacity bridges and faces at once and
// returns gotorus.ErrCapacityExceeded past that; an unbounded one has no limit.
type Tracker struct {
	newSet     func() slotSet
	bridges    arena[Bridge]
	faces      arena[embedding.Face]
	faceNodes  []graph.Set
	admFaces   []slotSet // by bridge handle
	admBridges []slotSet // by face handle
	forced     slotSet   // bridges admissible in exactly one face
}

func NewTracker(bounded bool) *Tracker {
	newSet, limit := newTreeSet, 0
	if bounded {
		newSet, limit = newWordSet, gotorus.SlotCapacity
	}
	return &Tracker{
		newSet:  newSet,
		bridges: newArena[Bridge](newSet, limit),
		faces:   newArena[embedding.Face](newSet, limit),
		forced:  newSet(),
	}
}

// AddFace registers face f whose boundary holds the given vertices.
func (t *Tracker) AddFace(f embedding.Face, nodes graph.Set) (int, error) {
	id, err := t.faces.push(f)
	if err != nil {
		return -1, err
	}
	for len(t.faceNodes) <= id {
		t.faceNodes = append(t.faceNodes, 0)
		t.admBridges = append(t.admBridges, nil)
	}
	t.faceNodes[id] = nodes
	t.admBridges[id] = t.newSet()
	return id, nil
}

// AddBridge registers b as pending, admissible nowhere until Admit is called.
func (t *Tracker) AddBridge(b Bridge) (int, error) {
	id, err := t.bridges.push(b)
	if err != nil {
		return -1, err
	}
	for len(t.admFaces) <= id {
		t.admFaces = append(t.admFaces, nil)
	}
	t.admFaces[id] = t.newSet()
	return id, nil
}

// Admit links bridge b to each of the given faces whose boundary covers its attachments.
// It returns false if b is left with no admissible face.
func (t *Tracker) Admit(b int, faces []int) bool {
	attach := t.bridges.items[b].Attach
	for _, f := range faces {
		if t.faceNodes[f].Contains(attach) {
			t.admFaces[b].Add(f)
			t.admBridges[f].Add(b)
		}
	}
	return t.settle(b)
}

// Readmit calls Admit for each of the given bridges, stopping at the first one left with no face.
func (t *Tracker) Readmit(bridges []int, faces []int) bool {
	for _, b := range bridges {
		if !t.Admit(b, faces) {
			return false
		}
	}
	return true
}

func (t *Tracker) settle(b int) bool {
	n := t.admFaces[b].Len()
	if n == 1 {
		t.forced.Add(b)
	} else {
		t.forced.Remove(b)
	}
	return n > 0
}

// Next removes and returns the next bridge to place with the handles of its admissible faces
// in ascending order.  Bridges admissible in exactly one face go first.
func (t *Tracker) Next() (Bridge, []int, bool) {
	id := t.forced.Min()
	if id < 0 {
		id = t.bridges.live.Min()
	}
	if id < 0 {
		return Bridge{}, nil, false
	}
	faces := t.admFaces[id].Slice()
	for _, f := range faces {
		t.admBridges[f].Remove(id)
	}
	t.admFaces[id] = nil
	t.forced.Remove(id)
	return t.bridges.take(id), faces, true
}

// TakeFace removes face f and returns it with the handles of the bridges that were admissible in it.
func (t *Tracker) TakeFace(f int) (embedding.Face, []int) {
	stranded := t.admBridges[f].Slice()
	for _, b := range stranded {
		t.admFaces[b].Remove(f)
		t.settle(b)
	}
	t.admBridges[f] = nil
	t.faceNodes[f] = 0
	return t.faces.take(f), stranded
}

func (t *Tracker) Face(f int) embedding.Face {
	return t.faces.items[f]
}

func (t *Tracker) FaceNodes(f int) graph.Set {
	return t.faceNodes[f]
}

// SetFaceNodes updates the boundary vertices of face f after an edge was added inside it.
func (t *Tracker) SetFaceNodes(f int, nodes graph.Set) {
	t.faceNodes[f] = nodes
}

// FaceIDs returns the handles of all current faces.
func (t *Tracker) FaceIDs() []int {
	return t.faces.live.Slice()
}

func (t *Tracker) BridgeCount() int {
	return t.bridges.live.Len()
}

func (t *Tracker) FaceCount() int {
	return t.faces.live.Len()
}

// AdmissibleFaces returns the handles of the faces admitting bridge b.
func (t *Tracker) AdmissibleFaces(b int) []int {
	return t.admFaces[b].Slice()
}

// Clone returns an independent copy of t.
func (t *Tracker) Clone() *Tracker {
	dup := &Tracker{
		newSet:     t.newSet,
		bridges:    t.bridges.clone(),
		faces:      t.faces.clone(),
		faceNodes:  append([]graph.Set(nil), t.faceNodes...),
		admFaces:   cloneSets(t.admFaces),
		admBridges: cloneSets(t.admBridges),
		forced:     t.forced.Clone(),
	}
	return dup
}

func cloneSets(sets []slotSet) []slotSet {
	out := make([]slotSet, len(sets))
	for i, s := range sets {
		if s != nil {
			out[i] = s.Clone()
		}
	}
	return out
}

// Fold adds the bridges of G relative to H, admitting each against the given faces.
// It returns false as soon as one of them fits none of the faces.
func (t *Tracker) Fold(G, H *graph.Graph, faces []int) (bool, error) {
	for _, b := range Compute(G, H) {
		id, err := t.AddBridge(b)
		if err != nil {
			return false, err
		}
		if !t.Admit(id, faces) {
			return false, nil
		}
	}
	return true, nil
}
