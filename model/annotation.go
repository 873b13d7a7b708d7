package model

// Value is the attribute bag attached to an annotated event. Role is the only
// attribute the analysis functions inspect; everything else rides along
// untouched.
type Value struct {
	Label      string
	Role       string
	Source     string
	SourceTime float64
	SNR        float64
	Confidence float64
}

// Event is one annotated sound event: an interval in seconds plus its value.
type Event struct {
	Start float64
	End   float64
	Value Value
}

// Duration returns the length of the event interval in seconds.
func (e Event) Duration() float64 {
	return e.End - e.Start
}

// Annotation is an ordered collection of events over a timeline. Duration is
// the total timeline length and may exceed the last event offset. Events
// carry no ordering guarantee; consumers that need one sort for themselves.
type Annotation struct {
	Namespace string
	Duration  float64
	Events    []Event
}

// Append adds an event to the annotation.
func (a *Annotation) Append(ev Event) {
	a.Events = append(a.Events, ev)
}

// Clone returns a deep copy. The copy shares nothing with the original, so
// callers can hand it out without aliasing hazards.
func (a *Annotation) Clone() *Annotation {
	out := *a
	out.Events = make([]Event, len(a.Events))
	copy(out.Events, a.Events)
	return &out
}
