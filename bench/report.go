package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteText renders the report as an aligned table.
func (r *Report) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "cpu: %s (%d cores, GOMAXPROCS=%d)\n", r.CPU, r.Cores, r.Procs); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "graph: %d nodes, %d arcs, %d cells opened; %d queries, heuristic %s, %d verified\n\n",
		r.Nodes, r.Edges, r.Opened, r.Queries, r.Heuristic, r.Verified); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "mode\tfound\toptimal\tinvalid\tinexact\tmax excess\tmean µs\tp50 µs\tstd µs\tpushes\texpansions\tspeedup\t")
	for _, m := range r.Modes {
		fmt.Fprintf(tw, "%s\t%d\t%.1f%%\t%d\t%d\t%.3f\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\t%.2fx\t\n",
			m.Name, m.Found, 100*m.OptimalRate(), m.Invalid, m.Inexact, m.MaxExcess,
			m.MeanMicros, m.P50Micros, m.StdMicros, m.MeanPushes, m.MeanExpansions, m.Speedup)
	}

	return tw.Flush()
}
