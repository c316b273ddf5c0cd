// Package localtime converts the UTC timestamps carried by notes into the
// local calendar domain used for journal bucketing.
//
// The conversion exists because a note created at 23:xx local time is
// already past midnight in UTC (or vice versa); bucketing by the UTC date
// would file it under the wrong journal day.
package localtime

import "time"

// Normalizer converts UTC timestamps to a fixed local zone. The zone is
// injectable so tests can pin it; production code passes nil to use the
// process's local timezone configuration.
type Normalizer struct {
	loc *time.Location
}

// New returns a Normalizer for loc, defaulting to time.Local when nil.
func New(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.Local
	}
	return &Normalizer{loc: loc}
}

// Location returns the zone the normalizer converts into.
func (n *Normalizer) Location() *time.Location {
	return n.loc
}

// ToLocal returns t expressed in the local zone.
func (n *Normalizer) ToLocal(t time.Time) time.Time {
	return t.In(n.loc)
}

// DateOf returns the local calendar date t falls on.
func (n *Normalizer) DateOf(t time.Time) (year int, month time.Month, day int) {
	return t.In(n.loc).Date()
}

// SameLocalDay reports whether a and b fall on the same local calendar
// date.
func (n *Normalizer) SameLocalDay(a, b time.Time) bool {
	ay, am, ad := n.DateOf(a)
	by, bm, bd := n.DateOf(b)
	return ay == by && am == bm && ad == bd
}
