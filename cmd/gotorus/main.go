package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/2x3systems/gotorus/gotorus"
	"github.com/2x3systems/gotorus/libtorus"
	"github.com/2x3systems/gotorus/libtorus/catalog"
	"github.com/2x3systems/gotorus/libtorus/obstruction"
	"github.com/2x3systems/gotorus/libtorus/viz"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/pflag"
)

const usage = `usage: gotorus [flags] <command> [file ...]

commands:
  classify     classify each graph as planar, toroidal or none
  obstruction  classify, then flag graphs that are minor-minimal torus obstructions
  list         print the graphs stored in --catalog

Graphs are read one per line from the given files (or stdin) as graph6, "n bits"
upper-triangular adjacency, or edge runs such as "0-1-2-0, 2-3".

flags:
`

type config struct {
	embed    gotorus.EmbedOpts
	print    gotorus.PrintOpts
	catalog  gotorus.CatalogOpts
	jobs     int
	dedupe   bool
	minimize bool
	dotFile  string
	sel      catalog.Selector
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "1")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	defer klog.Flush()

	cfg := config{
		embed: gotorus.DefaultEmbedOpts,
		print: gotorus.DefaultPrintOpts,
		sel:   catalog.DefaultSelector,
	}
	unbounded := false

	flags := pflag.NewFlagSet("gotorus", pflag.ContinueOnError)
	flags.AddGoFlagSet(fset)
	flags.IntVarP(&cfg.embed.Workers, "workers", "w", 1, "goroutines per toroidal search")
	flags.IntVarP(&cfg.jobs, "jobs", "j", 1, "graphs classified concurrently")
	flags.BoolVar(&unbounded, "unbounded", false, "skip the fixed-capacity representation")
	flags.BoolVar(&cfg.embed.Validate, "validate", false, "check rotation invariants during the search")
	flags.StringVarP(&cfg.catalog.DbPathName, "catalog", "c", "", "catalog db path to add results to (or list)")
	flags.BoolVar(&cfg.dedupe, "dedupe", false, "drop repeated graphs (by graph6)")
	flags.BoolVar(&cfg.minimize, "minimize", false, "obstruction: shrink non-toroidal graphs to an obstruction")
	flags.StringVar(&cfg.dotFile, "dot", "", "write embeddings found to this dot file")
	flags.StringVarP(&cfg.print.Label, "label", "l", "", "prefix for each output line")
	flags.BoolVarP(&cfg.print.Rotation, "rotation", "r", false, "print the rotation system of each embedding")
	flags.IntVar(&cfg.sel.MinVertices, "min", 0, "list: min vertex count")
	flags.IntVar(&cfg.sel.MaxVertices, "max", gotorus.MaxVertices, "list: max vertex count")
	flags.BoolVar(&cfg.sel.ObstructionsOnly, "obstructions", false, "list: only obstructions")
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}
	cfg.embed.Bounded = !unbounded

	if flags.NArg() < 1 {
		flags.Usage()
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var err error
	switch cmd := flags.Arg(0); cmd {
	case "classify", "obstruction":
		err = classify(ctx, cfg, cmd == "obstruction", flags.Args()[1:], stdin, stdout)
	case "list":
		err = list(cfg, stdout)
	default:
		flags.Usage()
		return 2
	}
	if err != nil {
		klog.Errorf("%v", err)
		return 1
	}
	return 0
}

func classify(ctx context.Context, cfg config, obstructions bool, files []string, stdin io.Reader, stdout io.Writer) error {
	var cat *catalog.Catalog
	if len(cfg.catalog.DbPathName) > 0 {
		var err error
		if cat, err = catalog.Open(cfg.catalog); err != nil {
			return err
		}
		defer cat.Close()
	}

	var dot io.WriteCloser
	if len(cfg.dotFile) > 0 {
		var err error
		if dot, err = os.Create(cfg.dotFile); err != nil {
			return err
		}
		defer dot.Close()
	}

	var seen catalog.KeySet
	if cfg.dedupe {
		seen = catalog.NewKeySet(nil)
		defer seen.Close()
	}

	oracle := libtorus.NewOracle(cfg.embed)
	checker := obstruction.Checker{Ctx: ctx, Opts: cfg.embed}

	classifyFrom := func(in io.Reader, label string) int {
		stream := libtorus.ReadGraphs(in, label)
		if seen != nil {
			stream = stream.Dedupe(seen)
		}
		stream = stream.Classify(ctx, oracle, cfg.jobs)
		if obstructions {
			stream = stream.MarkObstructions(checker, cfg.minimize)
		}
		if cat != nil {
			stream = stream.AddTo(cat)
		}
		if dot != nil {
			stream = stream.WriteDot(dot, viz.DefaultDot)
		}
		return stream.Print(stdout, cfg.print).PullAll()
	}

	total := 0
	if len(files) == 0 {
		total += classifyFrom(stdin, "stdin")
	}
	for _, pathname := range files {
		file, err := os.Open(pathname)
		if err != nil {
			return err
		}
		total += classifyFrom(file, filepath.Base(pathname))
		file.Close()
	}
	klog.V(1).Infof("classified %d graphs", total)
	return ctx.Err()
}

func list(cfg config, stdout io.Writer) error {
	if len(cfg.catalog.DbPathName) == 0 {
		return errors.Wrap(gotorus.ErrBadCatalogParam, "list requires --catalog")
	}
	cfg.catalog.ReadOnly = true
	cat, err := catalog.Open(cfg.catalog)
	if err != nil {
		return err
	}
	defer cat.Close()

	count := libtorus.SelectFromCatalog(cat, cfg.sel).Print(stdout, cfg.print).PullAll()
	klog.V(1).Infof("listed %d of %d graphs", count, cat.Count(-1))
	return nil
}
