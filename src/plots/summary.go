package plots

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/nseay/ns-3-DCTCP-plus/src/trace"
)

// Summarize writes one row per protocol and flow count with the trial count, mean,
// sample standard deviation and throughput. It reads the same files as Run and
// fails the same way, but renders nothing.
func Summarize(w io.Writer, opts Options) error {
	protocols := trace.Protocols
	if opts.Protocol != "" {
		p, err := trace.ParseProtocol(opts.Protocol)
		if err != nil {
			return err
		}
		protocols = []trace.Protocol{p}
	}
	ds := make([]derived, 0, len(protocols))
	for _, p := range protocols {
		d, err := load(opts.Dir, p)
		if err != nil {
			return err
		}
		ds = append(ds, d)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "protocol\tflows\ttrials\tmean_ms\tstddev_ms\tthroughput_mbps")
	for _, d := range ds {
		for i, smp := range d.series.Samples {
			fmt.Fprintf(tw, "%s\t%g\t%d\t%.3f\t%.3f\t%.3f\n", d.series.Protocol, smp.FlowCount, smp.Trials(), smp.Mean(), smp.StdDev(), d.throughput[i])
		}
	}
	return tw.Flush()
}
