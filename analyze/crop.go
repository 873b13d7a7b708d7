package analyze

import (
	"fmt"
	"math"

	"annoscape/constants"
	"annoscape/model"
)

// Crop returns a copy of ann restricted to the centered window of the given
// duration. The window start maps to time zero in the result and the result's
// duration equals crop. Events entirely outside the window are dropped;
// events straddling a window edge are clipped to it before shifting. Value
// bags survive verbatim regardless of role. Cropping to a duration at or
// above the annotation's own duration returns an unchanged copy.
//
// The input annotation is never mutated.
func Crop(ann *model.Annotation, crop float64) (*model.Annotation, error) {
	if ann.Namespace != constants.NamespaceSoundEvent {
		return nil, fmt.Errorf("%w: %q (only %q is supported)",
			ErrInvalidNamespace, ann.Namespace, constants.NamespaceSoundEvent)
	}
	if math.IsNaN(crop) || math.IsInf(crop, 0) || crop <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidCropDuration, crop)
	}
	if err := checkIntervals(ann); err != nil {
		return nil, err
	}

	out := ann.Clone()
	if crop >= ann.Duration {
		return out, nil
	}

	cropStart := (ann.Duration - crop) / 2
	cropEnd := ann.Duration - cropStart

	// The window is half-open: an event ending exactly at its start or
	// starting exactly at its end does not survive.
	kept := out.Events[:0]
	for _, ev := range out.Events {
		if ev.End <= cropStart || ev.Start >= cropEnd {
			continue
		}
		ev.Start = math.Max(ev.Start, cropStart) - cropStart
		ev.End = math.Min(ev.End, cropEnd) - cropStart
		kept = append(kept, ev)
	}
	out.Events = kept
	out.Duration = crop
	return out, nil
}
