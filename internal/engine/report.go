package engine

import (
	"fmt"
	"io"
)

// ReportHeader is the column line printed under every day heading.
const ReportHeader = "name, sellIn, quality"

// WriteReport prints one day in the shop's daily report format:
//
//	-------- day 3 --------
//	name, sellIn, quality
//	Aged Brie, -1, 4
//
// followed by a blank line.
func WriteReport(w io.Writer, snap Snapshot) error {
	if _, err := fmt.Fprintf(w, "-------- day %d --------\n%s\n", snap.Day, ReportHeader); err != nil {
		return err
	}
	for _, it := range snap.Items {
		if _, err := fmt.Fprintln(w, it.String()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// ReportObserver returns an Observer that writes each snapshot to w.
func ReportObserver(w io.Writer) Observer {
	return func(s Snapshot) error {
		return WriteReport(w, s)
	}
}
