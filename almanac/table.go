// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package almanac

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/astro/ephemeris"
	"cloudeng.io/astro/riseset"
	"cloudeng.io/datetime"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"
	"github.com/soniakeys/unit"
)

// Day holds the events of a single calendar date. Found times are in
// the place's time zone. Dawn and Dusk parallel the twilight horizons
// the table was built with.
type Day struct {
	Date    datetime.CalendarDate
	Rise    riseset.Result
	Set     riseset.Result
	Transit riseset.Result
	Dawn    []riseset.Result
	Dusk    []riseset.Result
}

// Table is a per day almanac of a single target over a date range, seen
// from one place.
type Table struct {
	Target    string
	Place     datetime.Place
	Twilights []unit.Angle
	Days      []Day
}

type tableOptions struct {
	concurrency int
	twilights   []unit.Angle
	horizon     unit.Angle
	horizonSet  bool
}

// TableOption represents an option to NewTable.
type TableOption func(*tableOptions)

// WithTwilights adds dawn and dusk columns at the given solar horizons
// to each day; CivilTwilight, NauticalTwilight and
// AstronomicalTwilight are the customary values. The columns refer to
// the sun regardless of the table's target.
func WithTwilights(horizons ...unit.Angle) TableOption {
	return func(o *tableOptions) {
		o.twilights = horizons
	}
}

// WithTableConcurrency sets the number of days computed concurrently.
// The default computes days sequentially.
func WithTableConcurrency(n int) TableOption {
	return func(o *tableOptions) {
		o.concurrency = n
	}
}

// WithTargetHorizon overrides the operative horizon used for the
// target's rise and set events. The default is SolarHorizon for the
// sun, LunarHorizon at the day's parallax for the moon and
// StellarHorizon otherwise.
func WithTargetHorizon(h0 unit.Angle) TableOption {
	return func(o *tableOptions) {
		o.horizon = h0
		o.horizonSet = true
	}
}

// parallaxer is implemented by targets whose horizontal parallax
// materially moves the operative horizon, ie. the moon.
type parallaxer interface {
	Parallax(t time.Time) (unit.Angle, error)
}

// NewTable computes the almanac of target for each date in cdr, seen
// from place. Days are searched from local midnight to local midnight.
// Days on which the ephemeris fails are left zeroed and contribute one
// error each to the returned error; the remaining days are still
// computed.
func NewTable(ctx context.Context, target ephemeris.Target, place datetime.Place, cdr datetime.CalendarDateRange, opts ...TableOption) (Table, error) {
	opt := tableOptions{concurrency: 1}
	for _, fn := range opts {
		fn(&opt)
	}
	var dates []datetime.CalendarDate
	for cd := range cdr.Dates() {
		dates = append(dates, cd)
	}
	tbl := Table{
		Target:    target.Name(),
		Place:     place,
		Twilights: opt.twilights,
		Days:      make([]Day, len(dates)),
	}
	logger := ctxlog.Logger(ctx).With("pkg", "cloudeng.io/astro/almanac")
	logger.Debug("table: computing", "target", tbl.Target, "days", len(dates), "concurrency", opt.concurrency)
	g := &errgroup.T{}
	if opt.concurrency > 1 {
		g = errgroup.WithConcurrency(g, opt.concurrency)
	}
	for i, cd := range dates {
		g.Go(func() error {
			day, err := dayEvents(ctx, target, place, cd, opt)
			if err != nil {
				logger.Debug("table: day failed", "date", cd, "error", err)
				return fmt.Errorf("%v: %w", cd, err)
			}
			tbl.Days[i] = day
			return nil
		})
	}
	return tbl, g.Wait()
}

func dayEvents(ctx context.Context, target ephemeris.Target, place datetime.Place, cd datetime.CalendarDate, opt tableOptions) (Day, error) {
	day := Day{Date: cd}
	start := cd.Time(datetime.NewTimeOfDay(0, 0, 0), place.TimeLocation)
	h0, err := targetHorizon(target, start, opt)
	if err != nil {
		return Day{Date: cd}, err
	}
	obs := riseset.ObserverAt(place).WithHorizon(h0)
	for _, ev := range []struct {
		kind riseset.EventKind
		res  *riseset.Result
	}{
		{riseset.Rise, &day.Rise},
		{riseset.Set, &day.Set},
		{riseset.Transit, &day.Transit},
	} {
		res, err := obs.Find(ctx, target, start, ev.kind, riseset.Next)
		if err != nil {
			return Day{Date: cd}, err
		}
		if res.Event() {
			res.Time = res.Time.In(place.TimeLocation)
		}
		*ev.res = res
	}
	for _, h := range opt.twilights {
		dawn, dusk, err := Twilight(ctx, cd, place, h)
		if err != nil {
			return Day{Date: cd}, err
		}
		day.Dawn = append(day.Dawn, dawn)
		day.Dusk = append(day.Dusk, dusk)
	}
	return day, nil
}

// targetHorizon selects the operative horizon for a day's search, using
// the parallax capability when the target offers it.
func targetHorizon(target ephemeris.Target, start time.Time, opt tableOptions) (unit.Angle, error) {
	if opt.horizonSet {
		return opt.horizon, nil
	}
	switch tgt := target.(type) {
	case ephemeris.Sun:
		return riseset.SolarHorizon, nil
	case parallaxer:
		par, err := tgt.Parallax(start.Add(12 * time.Hour))
		if err != nil {
			return 0, err
		}
		return riseset.LunarHorizon(par), nil
	}
	return riseset.StellarHorizon, nil
}
