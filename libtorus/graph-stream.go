package libtorus

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/2x3systems/gotorus/gotorus"
	"github.com/2x3systems/gotorus/libtorus/catalog"
	"github.com/2x3systems/gotorus/libtorus/embedding"
	"github.com/2x3systems/gotorus/libtorus/graph"
	"github.com/2x3systems/gotorus/libtorus/graph6"
	"github.com/2x3systems/gotorus/libtorus/obstruction"
	"github.com/2x3systems/gotorus/libtorus/viz"
	"github.com/plan-systems/klog"
)

// GraphState is a graph travelling through a GraphStream along with what is known about it so far.
type GraphState struct {
	Graph     graph.Graph
	Class     gotorus.Classification
	Embedding *embedding.Embedding // set once classified and embeddable
	Err       error                // set if reading or classifying the graph failed
}

// GraphAdder is implemented by catalog.Catalog.
type GraphAdder interface {

	// Tries to add the given graph to this catalog.
	// If true is returned, X did not exist and was added.
	TryAdd(X *graph.Graph, c gotorus.Classification) (bool, error)
}

type GraphStream struct {
	Outlet chan *GraphState
}

func NewGraphStream() *GraphStream {
	stream := &GraphStream{
		Outlet: make(chan *GraphState),
	}
	return stream
}

// StreamGraphs returns a stream emitting the given graphs, labelled by position.
func StreamGraphs(Xs ...graph.Graph) *GraphStream {
	next := NewGraphStream()

	go func() {
		for i, X := range Xs {
			next.Outlet <- &GraphState{
				Graph: X,
				Class: gotorus.Classification{Label: strconv.Itoa(i + 1)},
			}
		}
		next.Close()
	}()

	return next
}

// ReadGraphs returns a stream emitting a graph for each non-empty line of in (see ParseGraph).
// Lines starting with '#' are skipped, and a line that fails to parse is emitted with Err set.
func ReadGraphs(in io.Reader, label string) *GraphStream {
	next := NewGraphStream()

	go func() {
		scanner := bufio.NewScanner(in)
		lineNum := 0
		for scanner.Scan() {
			lineNum++
			line := strings.TrimSpace(scanner.Text())
			if len(line) == 0 || line[0] == '#' {
				continue
			}
			X, err := ParseGraph(line)
			next.Outlet <- &GraphState{
				Graph: X,
				Class: gotorus.Classification{Label: fmt.Sprintf("%s:%d", label, lineNum)},
				Err:   err,
			}
		}
		if err := scanner.Err(); err != nil {
			klog.Errorf("reading %s: %v", label, err)
		}
		next.Close()
	}()

	return next
}

func (stream *GraphStream) Close() {
	if stream.Outlet != nil {
		close(stream.Outlet)
	}
}

func (stream *GraphStream) PullAll() int {
	count := int(0)
	for range stream.Outlet {
		count++
	}
	return count
}

// Classify classifies each graph with the given oracle using the given number of goroutines.
// Graphs leave the stream in the order they arrived.
func (stream *GraphStream) Classify(ctx context.Context, oracle Oracle, workers int) *GraphStream {
	if workers < 1 {
		workers = 1
	}
	next := &GraphStream{
		Outlet: make(chan *GraphState, 1),
	}

	type job struct {
		X    *GraphState
		done chan struct{}
	}
	jobs := make(chan job)
	order := make(chan job, workers)

	wg := sync.WaitGroup{}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				j.X.classify(ctx, oracle)
				close(j.done)
			}
		}()
	}

	go func() {
		for X := range stream.Outlet {
			j := job{X, make(chan struct{})}
			order <- j
			jobs <- j
		}
		close(jobs)
		close(order)
	}()

	go func() {
		for j := range order {
			<-j.done
			next.Outlet <- j.X
		}
		wg.Wait()
		next.Close()
	}()

	return next
}

func (X *GraphState) classify(ctx context.Context, oracle Oracle) {
	if X.Err != nil {
		return
	}
	label := X.Class.Label
	X.Class, X.Embedding, X.Err = oracle.Classify(ctx, &X.Graph)
	X.Class.Label = label
	klog.V(3).Infof("%s: %v (%s)", label, X.Class.Genus, X.Class.Graph6)
}

// MarkObstructions sets Class.Obstruction on each graph with no torus embedding that is a
// minor-minimal torus obstruction.  If minimize is set, other such graphs are first replaced by
// an obstruction they contain.
func (stream *GraphStream) MarkObstructions(checker obstruction.Checker, minimize bool) *GraphStream {
	next := &GraphStream{
		Outlet: make(chan *GraphState, 1),
	}

	go func() {
		for X := range stream.Outlet {
			if X.Err == nil && X.Class.Verdict == gotorus.VerdictNotEmbeddable {
				X.markObstruction(checker, minimize)
			}
			next.Outlet <- X
		}
		next.Close()
	}()

	return next
}

func (X *GraphState) markObstruction(checker obstruction.Checker, minimize bool) {
	ok, err := checker.IsMinorObstruction(&X.Graph)
	if err == nil && !ok && minimize {
		var M graph.Graph
		if M, ok, err = checker.Minimize(&X.Graph); ok && err == nil {
			klog.V(2).Infof("%s: minimized %d/%d to %d/%d", X.Class.Label, X.Graph.NodeCount(), X.Graph.EdgeCount(), M.NodeCount(), M.EdgeCount())
			X.Graph = M
			X.Class.Graph6 = graph6.Format(&M)
		}
	}
	X.Class.Obstruction = ok
	X.Err = err
}

// Dedupe drops graphs already added to the given set.
func (stream *GraphStream) Dedupe(set catalog.KeySet) *GraphStream {
	next := &GraphStream{
		Outlet: make(chan *GraphState, 1),
	}

	go func() {
		for X := range stream.Outlet {
			if X.Err != nil || set.TryAdd(&X.Graph) {
				next.Outlet <- X
			}
		}
		next.Close()
	}()

	return next
}

// AddTo adds each classified graph to target and passes on the ones that were not already present.
func (stream *GraphStream) AddTo(target GraphAdder) *GraphStream {
	next := &GraphStream{
		Outlet: make(chan *GraphState, 1),
	}

	go func() {
		for X := range stream.Outlet {
			if X.Err == nil {
				wasAdded, err := target.TryAdd(&X.Graph, X.Class)
				if err != nil {
					X.Err = err
				} else if !wasAdded {
					continue
				}
			}
			next.Outlet <- X
		}
		next.Close()
	}()

	return next
}

// SelectFromCatalog streams the records of cat matching sel.
func SelectFromCatalog(cat *catalog.Catalog, sel catalog.Selector) *GraphStream {
	next := &GraphStream{
		Outlet: make(chan *GraphState, 1),
	}

	onHit := make(chan *catalog.Record, 4)

	go func() {
		if err := cat.Select(sel, onHit); err != nil {
			klog.Errorf("catalog select: %v", err)
		}
		close(onHit)
	}()

	go func() {
		for rec := range onHit {
			X, err := graph6.Parse(rec.Graph6)
			verdict := gotorus.VerdictEmbedded
			if rec.Genus < 0 {
				verdict = gotorus.VerdictNotEmbeddable
			}
			next.Outlet <- &GraphState{
				Graph: X,
				Class: gotorus.Classification{
					Label:       rec.Label,
					Graph6:      rec.Graph6,
					Genus:       gotorus.Genus(rec.Genus),
					Verdict:     verdict,
					Obstruction: rec.Obstruction,
				},
				Err: err,
			}
		}
		next.Close()
	}()

	return next
}

// Print writes a line for each graph: label, count, genus, and optionally graph6 and rotation system.
func (stream *GraphStream) Print(
	out io.Writer,
	opts gotorus.PrintOpts) *GraphStream {

	next := &GraphStream{
		Outlet: make(chan *GraphState, 1),
	}

	go func() {
		buf := strings.Builder{}
		buf.Grow(256)

		count := 0
		for X := range stream.Outlet {
			if len(opts.Label) > 0 {
				buf.WriteString(opts.Label)
			}
			buf.WriteByte(',')

			count++
			fmt.Fprintf(&buf, "%06d,", count)
			X.WriteAsString(&buf, opts)
			buf.WriteByte('\n')
			out.Write([]byte(buf.String()))
			buf.Reset()
			next.Outlet <- X
		}
		next.Close()
	}()

	return next
}

// WriteAsString writes "label,genus[,graph6][,rotation]" or "label,error,message".
func (X *GraphState) WriteAsString(out *strings.Builder, opts gotorus.PrintOpts) {
	out.WriteString(X.Class.Label)
	out.WriteByte(',')
	if X.Err != nil {
		out.WriteString("error,")
		out.WriteString(strconv.Quote(X.Err.Error()))
		return
	}
	out.WriteString(X.Class.Genus.String())
	if X.Class.Obstruction {
		out.WriteString(",obstruction")
	}
	if opts.Graph6 {
		out.WriteByte(',')
		out.WriteString(graph6.Format(&X.Graph))
	}
	if opts.Rotation && X.Embedding != nil {
		out.WriteByte(',')
		X.Embedding.Nodes().ForEach(func(u int) {
			if u != X.Embedding.Nodes().Min() {
				out.WriteByte(' ')
			}
			out.WriteString(viz.RotationLabel(X.Embedding, u))
			out.WriteByte(';')
		})
	}
}

// WriteDot passes graphs through unchanged and, once the stream ends, writes every embedded graph
// as dot to out.
func (stream *GraphStream) WriteDot(out io.Writer, dot viz.Dot) *GraphStream {
	next := &GraphStream{
		Outlet: make(chan *GraphState, 1),
	}

	go func() {
		var snaps []viz.Snapshot
		for X := range stream.Outlet {
			if X.Embedding != nil {
				snaps = append(snaps, viz.Snapshot{
					Name:       X.Class.Label,
					Graph:      X.Graph,
					Embeddings: []*embedding.Embedding{X.Embedding},
				})
			}
			next.Outlet <- X
		}
		if err := dot.Fprint(out, snaps...); err != nil {
			klog.Errorf("writing dot: %v", err)
		}
		next.Close()
	}()

	return next
}
