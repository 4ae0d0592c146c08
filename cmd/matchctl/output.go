package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/MikeSquared-Agency/Optiwork/internal/matching"
)

type outputOptions struct {
	top     int
	reasons bool
	asJSON  bool
}

func printMatches(w io.Writer, results []matching.MatchResult, opts outputOptions) error {
	if opts.top > 0 && len(results) > opts.top {
		results = results[:opts.top]
	}
	if opts.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "no employees in roster")
		return err
	}

	rd := matching.TextRenderer{}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tEMPLOYEE\tSCORE\tTIER\tSKILLS\tWORKLOAD\tPERF\tSHIFT")
	for i, r := range results {
		avail := "off"
		if r.Availability {
			avail = "on"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%.0f%%\t%.0f\t%.0f\t%s (%s)\n",
			i+1, displayName(r.Employee), r.MatchScore, matching.Tier(float64(r.MatchScore)),
			r.SkillMatch, r.WorkloadScore, r.PerformanceScore, r.Employee.Shift, avail)
		if opts.reasons {
			for _, label := range matching.RenderAll(rd, r.Reasons) {
				fmt.Fprintf(tw, "\t  %s\t\t\t\t\t\t\n", label)
			}
		}
	}
	return tw.Flush()
}

func displayName(e matching.Employee) string {
	if e.Name == "" {
		return e.ID
	}
	return e.Name
}
