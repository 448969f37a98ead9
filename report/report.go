// Package report renders the outcome of a sampling run as text: a full
// report file listing every distance, and a short console summary.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/degrees/sampling"
	"github.com/katalvlaran/degrees/stats"
)

// Report is everything known about one algorithm's run.
type Report struct {
	Algorithm string
	Edges     int
	Vertices  int
	Summary   stats.Summary
	Pairs     []sampling.DistancePair
	Elapsed   time.Duration
}

// Write renders r in the report file layout.
func Write(w io.Writer, r Report) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Algorithm: %s\n\n", r.Algorithm)
	fmt.Fprintln(bw, "Graph Statistics:")
	fmt.Fprintf(bw, "  Number of edges: %d\n", r.Edges)
	fmt.Fprintf(bw, "  Number of vertices: %d\n\n", r.Vertices)
	fmt.Fprintln(bw, "Run Statistics:")
	fmt.Fprintf(bw, "  Number of distances computed: %d\n", r.Summary.Count)
	fmt.Fprintf(bw, "  Mean distance: %.2f\n", r.Summary.Mean)
	fmt.Fprintf(bw, "  Std. Dev of distances: %.3f\n\n", r.Summary.StdDev)
	fmt.Fprintln(bw, "\n------ All Shortest Distances ------")
	for _, p := range r.Pairs {
		fmt.Fprintln(bw, p.String())
	}

	return bw.Flush()
}

// WriteFile creates (or truncates) path and writes r to it.
func WriteFile(path string, r Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	if err := Write(f, r); err != nil {
		f.Close()
		return fmt.Errorf("report: write %s: %w", path, err)
	}
	return f.Close()
}

// PrintSummary writes the console summary of r.
func PrintSummary(w io.Writer, r Report) error {
	_, err := fmt.Fprintf(w,
		"--> %s\n"+
			"Total pairs: %s\n"+
			"Unreachable pairs: %s\n"+
			"Mean Distance: %.2f\n"+
			"Standard Deviation: %.3f\n"+
			"Elapsed Time: %v\n",
		r.Algorithm,
		humanize.Comma(int64(r.Summary.Count)),
		humanize.Comma(int64(r.Summary.Unreachable)),
		r.Summary.Mean,
		r.Summary.StdDev,
		r.Elapsed,
	)
	return err
}

// PrintGraph writes the graph statistics banner.
func PrintGraph(w io.Writer, edges, vertices int) error {
	_, err := fmt.Fprintf(w, "Graph Statistics:\n  Number of edges: %s\n  Number of vertices: %s\n",
		humanize.Comma(int64(edges)), humanize.Comma(int64(vertices)))
	return err
}

// PrintTimings writes one line per averaged sample size.
func PrintTimings(w io.Writer, algorithm string, timings []sampling.Timing) error {
	if _, err := fmt.Fprintf(w, "%s Timings\n", algorithm); err != nil {
		return err
	}
	for _, t := range timings {
		if _, err := fmt.Fprintf(w, "  size = %d; avg time over %d runs = %v\n", t.Size, t.Iterations, t.Mean); err != nil {
			return err
		}
	}
	return nil
}
