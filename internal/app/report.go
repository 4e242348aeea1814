package app

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/tmsennott/velolog/internal/notebook"
)

// WriteReport prints the notebook's tables and statistics as plain text,
// the non-serving counterpart of the REST API.
func WriteReport(w io.Writer, nb *notebook.Notebook) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "RIDES")
	fmt.Fprintln(tw, "date\tyear\ttitle\thours\tmiles\tfeet\tmph\tvam\tfpm\tpct\tkms")
	for _, r := range nb.Rides {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%.4f\t%.2f\t%.0f\t%.2f\t%.0f\t%.0f\t%.2f\t%.2f\n",
			r.Date, r.Year, r.Title, r.Hours, r.Miles, r.Feet, r.MPH, r.VAM, r.FPM, r.Pct, r.Kms)
	}

	if len(nb.Attempts) > 0 {
		fmt.Fprintln(tw, "\nSEGMENT ATTEMPTS")
		fmt.Fprintln(tw, "segment\thours\tmiles\tfeet\tmph\tvam\tfpm\tpct")
		for _, a := range nb.Attempts {
			fmt.Fprintf(tw, "%s\t%.4f\t%.2f\t%.0f\t%.2f\t%.0f\t%.0f\t%.2f\n",
				a.Segment, a.Hours, a.Miles, a.Feet, a.MPH, a.VAM, a.FPM, a.Pct)
		}
	}

	if nb.Coverage != nil {
		fmt.Fprintln(tw, "\nPLACES")
		for _, cat := range nb.Coverage.Categories {
			fmt.Fprintf(tw, ":%s:\n", cat)
			for _, e := range nb.Coverage.Entries[cat] {
				fmt.Fprintf(tw, "%s\t%.1f mi\t%.1f%%\n", e.Name, e.Miles, e.Latest())
			}
		}
	}

	ed := nb.Eddington(0)
	fmt.Fprintln(tw, "\nEDDINGTON")
	fmt.Fprintf(tw, "number\t%d\n", ed.Number)
	for _, g := range ed.Gaps {
		fmt.Fprintf(tw, "to reach %d\t%d more rides over %d miles\n", g.Target, g.Gap, g.Target)
	}

	fmt.Fprintln(tw, "\nYEARLY SUMMARY")
	fmt.Fprintln(tw, "year\trides\tmiles\tfeet\tmean mph\tmedian miles")
	for _, s := range nb.Summaries() {
		fmt.Fprintf(tw, "%d\t%d\t%.1f\t%.0f\t%.2f\t%.1f\n",
			s.Year, s.Rides, s.TotalMiles, s.TotalFeet, s.MeanMPH, s.MedianMiles)
	}

	return tw.Flush()
}
