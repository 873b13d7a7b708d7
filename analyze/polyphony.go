package analyze

import (
	"fmt"
	"sort"

	"annoscape/constants"
	"annoscape/model"
)

// boundary is one endpoint of an event interval: weight +1 for an arrival,
// -1 for a departure.
type boundary struct {
	t float64
	w int
}

// MaxPolyphony returns the maximum number of foreground events active at any
// single instant of the annotation's timeline. Background events (and any
// other non-foreground role) never influence the count. An annotation with no
// foreground events has polyphony 0.
//
// At equal timestamps arrivals come before departures, so an event starting
// exactly when another ends counts as simultaneous with it, and a zero-length
// event is active at its own instant.
func MaxPolyphony(ann *model.Annotation) (int, error) {
	if err := checkIntervals(ann); err != nil {
		return 0, err
	}

	var starts, ends []float64
	for _, ev := range ann.Events {
		if ev.Value.Role != constants.RoleForeground {
			continue
		}
		starts = append(starts, ev.Start)
		ends = append(ends, ev.End)
	}
	if len(starts) == 0 {
		return 0, nil
	}

	// Arrivals and departures are sorted as two independent sequences.
	// Counting concurrency only needs the boundary order, not which
	// departure belongs to which arrival.
	sort.Float64s(starts)
	sort.Float64s(ends)

	entries := make([]boundary, 0, 2*len(starts))
	for _, t := range starts {
		entries = append(entries, boundary{t: t, w: +1})
	}
	for _, t := range ends {
		entries = append(entries, boundary{t: t, w: -1})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].t < entries[j].t
	})

	var active, peak int
	for _, b := range entries {
		active += b.w
		if active > peak {
			peak = active
		}
	}
	return peak, nil
}

// checkIntervals rejects events whose interval runs backwards. Both analysis
// functions fail fast on such input instead of producing garbage.
func checkIntervals(ann *model.Annotation) error {
	for _, ev := range ann.Events {
		if ev.End < ev.Start {
			return fmt.Errorf("%w: [%v, %v]", ErrMalformedInterval, ev.Start, ev.End)
		}
	}
	return nil
}
