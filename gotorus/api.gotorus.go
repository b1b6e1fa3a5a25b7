package gotorus

const (

	// MaxVertices is the vertex capacity of a graph; vertex IDs are 0..MaxVertices-1.
	MaxVertices = 64

	// SlotCapacity is the number of bridge or face handles available to a bounded search
	// before it fails with ErrCapacityExceeded.
	SlotCapacity = 64
)

// Genus is the genus of an orientable surface embedding.
type Genus int8

// NoEmbedding denotes that no embedding of genus <= 1 exists.
const NoEmbedding Genus = -1

func (g Genus) String() string {
	switch g {
	case 0:
		return "planar"
	case 1:
		return "toroidal"
	case NoEmbedding:
		return "none"
	}
	return "genus?"
}

// Verdict is the outcome of an embedding query.
type Verdict int8

const (
	VerdictUnknown Verdict = iota
	VerdictEmbedded
	VerdictNotEmbeddable
)

// EmbedOpts specifies params for the planar and toroidal embedders
type EmbedOpts struct {
	Workers  int  // number of goroutines searching certificate embeddings (<= 1 is sequential)
	Bounded  bool // if set, searches start on the fixed-capacity representation
	Validate bool // if set, rotation invariants are checked after each placement
}

// DefaultEmbedOpts{}
var DefaultEmbedOpts = EmbedOpts{
	Workers: 1,
	Bounded: true,
}

// CatalogOpts specifies params for opening a classification Catalog
type CatalogOpts struct {
	DbPathName string // omit for in-memory db
	ReadOnly   bool   // open in read-only mode
}

// PrintOpts specifies what is printed for each classified graph
type PrintOpts struct {
	Label    string // Prefix label
	Graph6   bool   // If set, prints the graph6 encoding
	Rotation bool   // If set, prints the rotation system of the embedding found
}

// DefaultPrintOpts{}
var DefaultPrintOpts = PrintOpts{
	Graph6: true,
}

// Classification is the result of classifying a graph by the smallest genus it embeds in.
type Classification struct {
	Label       string
	Graph6      string
	Genus       Genus
	Verdict     Verdict
	Obstruction bool // set when the graph is known to be a minor-minimal torus obstruction
}
