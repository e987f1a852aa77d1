// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package riseset

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"
)

const (
	defaultWindow        = 24 * time.Hour
	defaultSamplesPerDay = 288
)

// Find locates the event of the given kind nearest to, next after or
// previous to the reference time ref, searching a window whose span and
// placement are controlled by dir and WithWindow. The altitude function
// defines the event geometry: rises and sets are zero crossings,
// transits and antitransits are local extrema.
//
// The returned error is non-nil only for unusable windows
// (ErrShortWindow), altitude evaluation failures and context
// cancellation. The absence of an event in a valid window is reported
// through Result.Outcome. Evaluation failures are returned wrapped and
// are never retried.
func Find(ctx context.Context, alt AltitudeFunc, ref time.Time, kind EventKind, dir Direction, opts ...Option) (Result, error) {
	opt := options{
		window:        defaultWindow,
		samplesPerDay: defaultSamplesPerDay,
		concurrency:   1,
	}
	for _, fn := range opts {
		fn(&opt)
	}
	start, window := searchSpan(ref, dir, opt.window)
	intervals := gridIntervals(window, opt.samplesPerDay)
	if intervals < minIntervals(kind) {
		return Result{}, fmt.Errorf("%v at %v samples per day cannot bracket a %v: %w",
			window, opt.samplesPerDay, kind, ErrShortWindow)
	}
	spacing := window / time.Duration(intervals)
	logger := ctxlog.Logger(ctx).With("pkg", "cloudeng.io/astro/riseset")
	logger.Debug("find: sampling", "kind", kind, "dir", dir, "start", start,
		"window", window, "samples", intervals+1, "concurrency", opt.concurrency)

	rel, err := sampleAltitudes(ctx, alt, start, spacing, intervals+1, opt.concurrency)
	if err != nil {
		return Result{}, err
	}

	var brackets []int
	switch kind {
	case Rise, Set:
		brackets = crossings(rel, kind)
	default:
		brackets = culminations(rel, kind)
	}
	if len(brackets) == 0 {
		out := NoEvent
		if kind == Rise || kind == Set {
			out = classify(rel)
		}
		logger.Debug("find: no bracket", "kind", kind, "outcome", out)
		return Result{Outcome: out}, nil
	}

	pick := brackets[0]
	switch dir {
	case Previous:
		pick = brackets[len(brackets)-1]
	case Nearest:
		// Ties go to the earlier bracket.
		refOff := ref.Sub(start)
		best := (bracketCenter(pick, kind, spacing) - refOff).Abs()
		for _, i := range brackets[1:] {
			if d := (bracketCenter(i, kind, spacing) - refOff).Abs(); d < best {
				best, pick = d, i
			}
		}
	}

	var off time.Duration
	if kind == Rise || kind == Set {
		off = refineCrossing(pick, rel, spacing)
	} else {
		off = refineCulmination(pick, rel, spacing)
	}
	when := start.Add(off)
	logger.Debug("find: refined", "kind", kind, "brackets", len(brackets), "time", when)
	return Result{Time: when, Outcome: Found}, nil
}

// searchSpan returns the start and span of the window to be sampled.
func searchSpan(ref time.Time, dir Direction, window time.Duration) (time.Time, time.Duration) {
	switch dir {
	case Next:
		return ref, window
	case Previous:
		return ref.Add(-window), window
	}
	return ref.Add(-window / 2), window
}

// gridIntervals returns the number of grid intervals that cover window
// at the requested sampling density.
func gridIntervals(window time.Duration, samplesPerDay int) int {
	if window <= 0 || samplesPerDay <= 0 {
		return 0
	}
	return int(float64(samplesPerDay) * window.Hours() / 24)
}

// minIntervals is the smallest grid that can bracket an event of the
// given kind: two samples for a crossing, three for a culmination.
func minIntervals(kind EventKind) int {
	if kind == Transit || kind == Antitransit {
		return 2
	}
	return 1
}

// sampleAltitudes evaluates alt on the n point grid starting at start,
// in parallel when concurrency admits it. Results are merged by index
// so the returned samples are independent of evaluation order. The
// first evaluation failure cancels the remaining work.
func sampleAltitudes(ctx context.Context, alt AltitudeFunc, start time.Time, spacing time.Duration, n, concurrency int) ([]float64, error) {
	rel := make([]float64, n)
	if concurrency < 2 {
		for i := range rel {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			tm := start.Add(spacing * time.Duration(i))
			a, err := alt(tm)
			if err != nil {
				return nil, fmt.Errorf("altitude at %v: %w", tm.Format(time.RFC3339), err)
			}
			rel[i] = a.Rad()
		}
		return rel, nil
	}
	g, gctx := errgroup.WithContext(ctx)
	g = errgroup.WithConcurrency(g, concurrency)
	for i := range rel {
		g.Go(func() error {
			if gctx.Err() != nil {
				// A failed sibling already carries the error.
				return nil
			}
			tm := start.Add(spacing * time.Duration(i))
			a, err := alt(tm)
			if err != nil {
				return fmt.Errorf("altitude at %v: %w", tm.Format(time.RFC3339), err)
			}
			rel[i] = a.Rad()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rel, nil
}

// crossings returns the indices i for which the grid interval [i, i+1]
// brackets the requested crossing. The inequalities are strict: a
// sample exactly on the horizon forms no bracket, so grazing contacts
// are reported as non events.
func crossings(rel []float64, kind EventKind) []int {
	var idx []int
	for i := 0; i+1 < len(rel); i++ {
		a, b := rel[i], rel[i+1]
		if kind == Rise && a < 0 && b > 0 {
			idx = append(idx, i)
		}
		if kind == Set && a > 0 && b < 0 {
			idx = append(idx, i)
		}
	}
	return idx
}

// culminations returns the indices of interior samples strictly higher
// (Transit) or strictly lower (Antitransit) than both neighbours.
func culminations(rel []float64, kind EventKind) []int {
	var idx []int
	for i := 1; i+1 < len(rel); i++ {
		a, b, c := rel[i-1], rel[i], rel[i+1]
		if kind == Transit && b > a && b > c {
			idx = append(idx, i)
		}
		if kind == Antitransit && b < a && b < c {
			idx = append(idx, i)
		}
	}
	return idx
}

// classify reports the geometry of a crossing search that found no
// bracket. A target pinned exactly to the horizon never leaves it, so
// the all at or below case takes precedence for a constant zero
// altitude.
func classify(rel []float64) Outcome {
	below, above := true, true
	for _, a := range rel {
		if a > 0 {
			below = false
		}
		if a < 0 {
			above = false
		}
	}
	switch {
	case below:
		return NeverRises
	case above:
		return Circumpolar
	}
	return NoEvent
}

// bracketCenter returns the representative offset of a bracket, used to
// order candidates by distance from the reference time.
func bracketCenter(i int, kind EventKind, spacing time.Duration) time.Duration {
	if kind == Rise || kind == Set {
		return spacing*time.Duration(i) + spacing/2
	}
	return spacing * time.Duration(i)
}

// refineCrossing linearly interpolates the zero crossing within bracket
// i. At typical grid spacings the residual against the true crossing is
// a few arc seconds of altitude.
func refineCrossing(i int, rel []float64, spacing time.Duration) time.Duration {
	a, b := rel[i], rel[i+1]
	frac := a / (a - b)
	return spacing*time.Duration(i) + time.Duration(frac*float64(spacing))
}

// refineCulmination fits a parabola through the three samples around
// grid point i and returns the offset of its vertex, clamped to the
// bracket. A degenerate fit falls back to the central sample.
func refineCulmination(i int, rel []float64, spacing time.Duration) time.Duration {
	a, b, c := rel[i-1], rel[i], rel[i+1]
	den := a - 2*b + c
	x := 0.0
	if den != 0 {
		x = (a - c) / (2 * den)
		if x < -1 {
			x = -1
		} else if x > 1 {
			x = 1
		}
	}
	return spacing*time.Duration(i) + time.Duration(x*float64(spacing))
}
