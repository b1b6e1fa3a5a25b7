package catalog

import (
	"github.com/gogo/protobuf/proto"
)

// Record is the catalog entry for one classified graph.
// Genus is 0, 1, or -1 when the graph has no embedding of genus <= 1.
type Record struct {
	Graph6      string `protobuf:"bytes,1,opt,name=Graph6,proto3" json:"Graph6,omitempty"`
	NumVertices uint32 `protobuf:"varint,2,opt,name=NumVertices,proto3" json:"NumVertices,omitempty"`
	NumEdges    uint32 `protobuf:"varint,3,opt,name=NumEdges,proto3" json:"NumEdges,omitempty"`
	Genus       int32  `protobuf:"zigzag32,4,opt,name=Genus,proto3" json:"Genus,omitempty"`
	Obstruction bool   `protobuf:"varint,5,opt,name=Obstruction,proto3" json:"Obstruction,omitempty"`
	Label       string `protobuf:"bytes,6,opt,name=Label,proto3" json:"Label,omitempty"`
}

func (m *Record) Reset()         { *m = Record{} }
func (m *Record) String() string { return proto.CompactTextString(m) }
func (*Record) ProtoMessage()    {}

// State is the catalog header stored under gCatalogStateKey.
type State struct {
	MajorVers  uint32   `protobuf:"varint,1,opt,name=MajorVers,proto3" json:"MajorVers,omitempty"`
	MinorVers  uint32   `protobuf:"varint,2,opt,name=MinorVers,proto3" json:"MinorVers,omitempty"`
	NumRecords []uint64 `protobuf:"varint,3,rep,packed,name=NumRecords,proto3" json:"NumRecords,omitempty"`
}

func (m *State) Reset()         { *m = State{} }
func (m *State) String() string { return proto.CompactTextString(m) }
func (*State) ProtoMessage()    {}

func init() {
	proto.RegisterType((*Record)(nil), "gotorus.catalog.Record")
	proto.RegisterType((*State)(nil), "gotorus.catalog.State")
}
