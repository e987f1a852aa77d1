// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package riseset locates rise, set, transit and antitransit times for
// celestial targets by sampling apparent altitude over a bounded search
// window and refining the brackets the samples reveal. A coarse grid
// finds candidate events, linear interpolation refines horizon
// crossings and a parabolic fit refines culminations. Geometries in
// which no event exists, such as circumpolar targets, are reported as
// outcomes rather than errors.
package riseset

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloudeng.io/astro/ephemeris"
	"github.com/soniakeys/unit"
)

// EventKind identifies the event to search for.
type EventKind int

const (
	// Rise is the upward crossing of the operative horizon.
	Rise EventKind = iota
	// Set is the downward crossing of the operative horizon.
	Set
	// Transit is the upper culmination, a local maximum of altitude.
	Transit
	// Antitransit is the lower culmination, a local minimum of
	// altitude.
	Antitransit
)

func (k EventKind) String() string {
	switch k {
	case Rise:
		return "rise"
	case Set:
		return "set"
	case Transit:
		return "transit"
	case Antitransit:
		return "antitransit"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Direction locates the returned event relative to the reference time.
type Direction int

const (
	// Nearest searches a window centered on the reference time and
	// returns the event closest to it.
	Nearest Direction = iota
	// Next searches forward from the reference time and returns the
	// first event.
	Next
	// Previous searches backward from the reference time and returns
	// the last event.
	Previous
)

func (d Direction) String() string {
	switch d {
	case Nearest:
		return "nearest"
	case Next:
		return "next"
	case Previous:
		return "previous"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Outcome reports whether a search found an event and, when it did not,
// the geometry responsible.
type Outcome int

const (
	// Found reports that the requested event was located and that
	// Result.Time holds it.
	Found Outcome = iota
	// Circumpolar reports that the target stayed above the operative
	// horizon for the entire window.
	Circumpolar
	// NeverRises reports that the target never climbed above the
	// operative horizon during the window.
	NeverRises
	// NoEvent reports that the window saw altitudes of both signs but
	// did not contain the requested event.
	NoEvent
)

func (o Outcome) String() string {
	switch o {
	case Found:
		return "found"
	case Circumpolar:
		return "circumpolar"
	case NeverRises:
		return "never-rises"
	case NoEvent:
		return "no-event"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Result is the outcome of a search. Time is meaningful only when
// Outcome is Found; it preserves the time.Location of the reference
// time passed to Find.
type Result struct {
	Time    time.Time
	Outcome Outcome
}

// Event reports whether the result carries an event time.
func (r Result) Event() bool {
	return r.Outcome == Found
}

// ErrShortWindow is returned when the search window is shorter than the
// coarse sampling cadence can usefully divide.
var ErrShortWindow = errors.New("window too short for sampling cadence")

type options struct {
	window        time.Duration
	samplesPerDay int
	concurrency   int
}

// Option represents an option to Find.
type Option func(*options)

// WithWindow sets the span of the search window, 24 hours by default.
// The window extends forwards or backwards from the reference time for
// Next and Previous, and is centered on it for Nearest.
func WithWindow(w time.Duration) Option {
	return func(o *options) {
		o.window = w
	}
}

// WithSamplesPerDay sets the density of the coarse altitude grid, 288
// samples per day by default, one every five minutes. Events that rise
// and fall again between adjacent samples are missed.
func WithSamplesPerDay(n int) Option {
	return func(o *options) {
		o.samplesPerDay = n
	}
}

// WithConcurrency sets the number of goroutines used to evaluate the
// altitude grid. Values below 2 evaluate the grid sequentially, which
// is the default.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// AltitudeFunc reports the altitude of some target relative to the
// operative horizon at time t. An event is a zero crossing or a local
// extremum of the function. Implementations must be safe for concurrent
// use when Find is configured with WithConcurrency.
type AltitudeFunc func(t time.Time) (unit.Angle, error)

// Find locates the event of the given kind for an ephemeris target seen
// from o, measuring altitude against o's operative horizon. See the
// package level Find for the search semantics.
func (o Observer) Find(ctx context.Context, target ephemeris.Target, ref time.Time, kind EventKind, dir Direction, opts ...Option) (Result, error) {
	return Find(ctx, func(tm time.Time) (unit.Angle, error) {
		alt, err := o.Altitude(target, tm)
		if err != nil {
			return 0, err
		}
		return alt - o.horizon, nil
	}, ref, kind, dir, opts...)
}
