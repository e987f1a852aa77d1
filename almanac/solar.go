// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package almanac derives calendar oriented quantities from the riseset
// search engine and the ephemeris targets: daily solar events,
// twilights, seasons, per day event tables and iCalendar exports. Its
// dynamic types plug into cloudeng.io/datetime's scheduling machinery.
package almanac

import (
	"context"
	"time"

	"cloudeng.io/astro/ephemeris"
	"cloudeng.io/astro/riseset"
	"cloudeng.io/datetime"
	"github.com/nathan-osman/go-sunrise"
	"github.com/soniakeys/unit"
)

// Twilight horizons, the altitude of the center of the solar disk at
// which each twilight begins or ends.
var (
	CivilTwilight        = unit.AngleFromDeg(-6)
	NauticalTwilight     = unit.AngleFromDeg(-12)
	AstronomicalTwilight = unit.AngleFromDeg(-18)
)

// SunRiseAndSet returns the times of sunrise and sunset for the
// specified date and place, computed with the NOAA method, in the
// place's time zone. The returned times are zero on days when the sun
// does not cross the horizon.
func SunRiseAndSet(date datetime.CalendarDate, place datetime.Place) (rise, set time.Time) {
	rise, set = sunrise.SunriseSunset(
		place.Latitude, place.Longitude,
		date.Year(), time.Month(date.Month()), date.Day())
	if !rise.IsZero() {
		rise = rise.In(place.TimeLocation)
	}
	if !set.IsZero() {
		set = set.In(place.TimeLocation)
	}
	return
}

// ApparentSolarNoon returns the time of the apparent solar noon (aka
// Zenith) for the specified date and place, in the place's time zone.
func ApparentSolarNoon(date datetime.CalendarDate, place datetime.Place) time.Time {
	rise, set := sunrise.SunriseSunset(
		place.Latitude, place.Longitude, date.Year(), time.Month(date.Month()), date.Day())
	return rise.Add(set.Sub(rise) / 2).In(place.TimeLocation)
}

// Twilight returns the dawn and dusk times for the given date and place
// at the supplied twilight horizon, in the place's time zone. At high
// latitudes one or both may not occur; the Outcome field of each result
// distinguishes the cases.
func Twilight(ctx context.Context, date datetime.CalendarDate, place datetime.Place, horizon unit.Angle) (dawn, dusk riseset.Result, err error) {
	obs := riseset.ObserverAt(place).WithHorizon(horizon)
	start := date.Time(datetime.NewTimeOfDay(0, 0, 0), place.TimeLocation)
	if dawn, err = obs.Find(ctx, ephemeris.Sun{}, start, riseset.Rise, riseset.Next); err != nil {
		return
	}
	if dusk, err = obs.Find(ctx, ephemeris.Sun{}, start, riseset.Set, riseset.Next); err != nil {
		return
	}
	if dawn.Event() {
		dawn.Time = dawn.Time.In(place.TimeLocation)
	}
	if dusk.Event() {
		dusk.Time = dusk.Time.In(place.TimeLocation)
	}
	return
}
