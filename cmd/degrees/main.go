// Command degrees samples vertex pairs of an undirected social graph and
// reports their shortest-path distances ("degrees of separation") computed
// with BFS and with Dijkstra.
//
// Usage:
//
//	degrees [-config degrees.toml] [-edges musae_git_edges.csv] [-sample 200]
//	        [-seed N] [-workers N] [-out DIR] [-timing] [-synthetic N -p P]
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/katalvlaran/degrees/builder"
	"github.com/katalvlaran/degrees/config"
	"github.com/katalvlaran/degrees/core"
	"github.com/katalvlaran/degrees/edgelist"
	"github.com/katalvlaran/degrees/report"
	"github.com/katalvlaran/degrees/sampling"
	"github.com/katalvlaran/degrees/stats"
)

// algorithm binds a configured name to its engine and report metadata.
type algorithm struct {
	title  string
	file   string
	source sampling.SingleSource
	set    sampling.VertexSet
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("degrees: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("degrees", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "TOML configuration file (default $"+config.EnvConfigPath+")")
		envFile    = fs.String("env", "", ".env file to load before resolving the configuration")
		edgesPath  = fs.String("edges", "", "edge list file (.csv, .gz or .zst)")
		sampleSize = fs.Int("sample", 0, "number of vertices to sample")
		seed       = fs.Int64("seed", 0, "random seed; 0 seeds from the clock")
		workers    = fs.Int("workers", 0, "concurrent single-source runs")
		outDir     = fs.String("out", "", "directory for report files")
		timing     = fs.Bool("timing", false, "run the repeated-trial timing mode")
		listing    = fs.Bool("list", false, "print every sampled distance to stdout")
		synthetic  = fs.Int("synthetic", 0, "generate a random graph with this many vertices instead of reading -edges")
		density    = fs.Float64("p", 0.01, "edge probability for -synthetic")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *envFile != "" {
		if err := config.LoadEnv(*envFile); err != nil {
			return err
		}
	} else if err := config.LoadEnv(); err != nil {
		return err
	}
	cfg, err := config.Load(config.Path(*configPath))
	if err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "edges":
			cfg.Input.Path = *edgesPath
		case "sample":
			cfg.Sampling.Size = *sampleSize
		case "seed":
			cfg.Sampling.Seed = *seed
		case "workers":
			cfg.Sampling.Workers = *workers
		case "out":
			cfg.Output.Dir = *outDir
		case "timing":
			cfg.Timing.Enabled = *timing
		case "list":
			cfg.Output.Listing = *listing
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	if l := cfg.Logging.SetLogger(); l != nil {
		defer l.Close()
	}
	if cfg.Sampling.Seed == 0 {
		cfg.Sampling.Seed = time.Now().UnixNano()
	}
	log.Printf("sampling %d vertices with seed %d on %d worker(s)", cfg.Sampling.Size, cfg.Sampling.Seed, cfg.Sampling.Workers)

	edges, err := loadEdges(&cfg, *synthetic, *density)
	if err != nil {
		return err
	}
	adj := core.Build(edges)

	fmt.Fprintln(stdout, "Welcome to the GitHub Degrees of Separation")
	fmt.Fprintln(stdout)
	if err := report.PrintGraph(stdout, len(edges), adj.Len()); err != nil {
		return err
	}

	algos := selectAlgorithms(cfg.Sampling.Algorithms, adj)
	opts := []sampling.Option{
		sampling.WithSeed(cfg.Sampling.Seed),
		sampling.WithWorkers(cfg.Sampling.Workers),
	}
	for _, a := range algos {
		if err := runOne(stdout, &cfg, a, len(edges), opts); err != nil {
			return err
		}
	}

	if cfg.Timing.Enabled {
		for _, a := range algos {
			log.Printf("timing %s over sizes %v", a.title, cfg.Timing.Sizes)
			timings, err := sampling.Time(a.set, cfg.Timing.Sizes, cfg.Timing.Iterations, a.source, opts...)
			if err != nil {
				return err
			}
			if err := report.PrintTimings(stdout, a.title, timings); err != nil {
				return err
			}
		}
	}
	return nil
}

// loadEdges reads the configured edge list, or generates one when n > 0.
func loadEdges(cfg *config.Config, n int, p float64) ([]core.Edge, error) {
	if n > 0 {
		log.Printf("generating synthetic graph: n=%d p=%g", n, p)
		return builder.RandomSparse(n, p, builder.WithSeed(cfg.Sampling.Seed))
	}
	opts := []edgelist.Option{edgelist.WithComma(cfg.CommaRune())}
	if !cfg.Input.Header {
		opts = append(opts, edgelist.WithoutHeader())
	}
	log.Printf("reading edges from %s", cfg.Input.Path)
	return edgelist.ReadFile(cfg.Input.Path, opts...)
}

// selectAlgorithms builds the engines named in the configuration. The
// weighted arena is derived once, on first use.
func selectAlgorithms(names []string, adj *core.Adjacency) []algorithm {
	var weighted *core.Weighted
	out := make([]algorithm, 0, len(names))
	for _, name := range names {
		switch name {
		case config.AlgorithmBFS:
			out = append(out, algorithm{
				title:  "Breadth First Search Algorithm",
				file:   "BFS.txt",
				source: sampling.BFS(adj),
				set:    adj,
			})
		case config.AlgorithmDijkstra:
			if weighted == nil {
				weighted = core.BuildWeighted(adj)
			}
			out = append(out, algorithm{
				title:  "Dijkstras Algorithm",
				file:   "Dijkstras.txt",
				source: sampling.Dijkstra(weighted),
				set:    weighted,
			})
		}
	}
	return out
}

// runOne samples, aggregates and reports a single algorithm.
func runOne(stdout io.Writer, cfg *config.Config, a algorithm, edgeCount int, opts []sampling.Option) error {
	fmt.Fprintf(stdout, "\n\n")

	start := time.Now()
	pairs, err := sampling.Run(a.set, cfg.Sampling.Size, a.source, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", a.title, err)
	}
	elapsed := time.Since(start)

	if cfg.Output.Listing {
		for _, p := range pairs {
			fmt.Fprintln(stdout, p.String())
		}
	}

	summary, err := stats.Aggregate(pairs)
	if err != nil {
		return fmt.Errorf("%s: %w", a.title, err)
	}
	r := report.Report{
		Algorithm: a.title,
		Edges:     edgeCount,
		Vertices:  a.set.Len(),
		Summary:   summary,
		Pairs:     pairs,
		Elapsed:   elapsed,
	}
	if err := report.PrintSummary(stdout, r); err != nil {
		return err
	}

	path := filepath.Join(cfg.Output.Dir, a.file)
	if err := report.WriteFile(path, r); err != nil {
		return err
	}
	log.Printf("%s: %d pairs in %v, report written to %s", a.title, summary.Count, elapsed, path)
	return nil
}
