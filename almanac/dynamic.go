// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package almanac

import (
	"context"

	"cloudeng.io/astro/ephemeris"
	"cloudeng.io/astro/riseset"
	"cloudeng.io/datetime"
	"github.com/soniakeys/unit"
)

// SunRise implements datetime.DynamicTimeOfDay for sunrise.
type SunRise struct{}

func (s SunRise) Name() string {
	return "SunRise"
}

func (s SunRise) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	rise, _ := SunRiseAndSet(cd, place)
	return datetime.TimeOfDayFromTime(rise.In(place.TimeLocation))
}

// SunSet implements datetime.DynamicTimeOfDay for sunset.
type SunSet struct{}

func (s SunSet) Name() string {
	return "SunSet"
}

func (s SunSet) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	_, set := SunRiseAndSet(cd, place)
	return datetime.TimeOfDayFromTime(set.In(place.TimeLocation))
}

// SolarNoon implements datetime.DynamicTimeOfDay for the solar noon
// (aka Zenith).
type SolarNoon struct{}

func (s SolarNoon) Name() string {
	return "SolarNoon"
}

func (s SolarNoon) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return datetime.TimeOfDayFromTime(ApparentSolarNoon(cd, place))
}

// dawnAt returns the time of day at which the sun rises through the
// given horizon. On days without that crossing the result is clamped to
// the start of the day under a sky that is already light and to the end
// of the day under one that never gets there, which keeps dawn to dusk
// scheduling ranges sensible at polar latitudes.
func dawnAt(cd datetime.CalendarDate, place datetime.Place, horizon unit.Angle) datetime.TimeOfDay {
	obs := riseset.ObserverAt(place).WithHorizon(horizon)
	start := cd.Time(datetime.NewTimeOfDay(0, 0, 0), place.TimeLocation)
	res, err := obs.Find(context.Background(), ephemeris.Sun{}, start, riseset.Rise, riseset.Next)
	if err == nil && res.Event() {
		return datetime.TimeOfDayFromTime(res.Time.In(place.TimeLocation))
	}
	if err == nil && res.Outcome == riseset.Circumpolar {
		return datetime.NewTimeOfDay(0, 0, 0)
	}
	return datetime.NewTimeOfDay(23, 59, 59)
}

// duskAt mirrors dawnAt for the evening crossing.
func duskAt(cd datetime.CalendarDate, place datetime.Place, horizon unit.Angle) datetime.TimeOfDay {
	obs := riseset.ObserverAt(place).WithHorizon(horizon)
	start := cd.Time(datetime.NewTimeOfDay(0, 0, 0), place.TimeLocation)
	res, err := obs.Find(context.Background(), ephemeris.Sun{}, start, riseset.Set, riseset.Next)
	if err == nil && res.Event() {
		return datetime.TimeOfDayFromTime(res.Time.In(place.TimeLocation))
	}
	if err == nil && res.Outcome == riseset.Circumpolar {
		return datetime.NewTimeOfDay(23, 59, 59)
	}
	return datetime.NewTimeOfDay(0, 0, 0)
}

// CivilDawn implements datetime.DynamicTimeOfDay for the morning end of
// civil twilight.
type CivilDawn struct{}

func (c CivilDawn) Name() string {
	return "CivilDawn"
}

func (c CivilDawn) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return dawnAt(cd, place, CivilTwilight)
}

// CivilDusk implements datetime.DynamicTimeOfDay for the evening start
// of civil twilight.
type CivilDusk struct{}

func (c CivilDusk) Name() string {
	return "CivilDusk"
}

func (c CivilDusk) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return duskAt(cd, place, CivilTwilight)
}

// NauticalDawn implements datetime.DynamicTimeOfDay for the morning end
// of nautical twilight.
type NauticalDawn struct{}

func (n NauticalDawn) Name() string {
	return "NauticalDawn"
}

func (n NauticalDawn) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return dawnAt(cd, place, NauticalTwilight)
}

// NauticalDusk implements datetime.DynamicTimeOfDay for the evening
// start of nautical twilight.
type NauticalDusk struct{}

func (n NauticalDusk) Name() string {
	return "NauticalDusk"
}

func (n NauticalDusk) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return duskAt(cd, place, NauticalTwilight)
}

// AstronomicalDawn implements datetime.DynamicTimeOfDay for the morning
// end of astronomical twilight.
type AstronomicalDawn struct{}

func (a AstronomicalDawn) Name() string {
	return "AstronomicalDawn"
}

func (a AstronomicalDawn) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return dawnAt(cd, place, AstronomicalTwilight)
}

// AstronomicalDusk implements datetime.DynamicTimeOfDay for the evening
// start of astronomical twilight.
type AstronomicalDusk struct{}

func (a AstronomicalDusk) Name() string {
	return "AstronomicalDusk"
}

func (a AstronomicalDusk) Evaluate(cd datetime.CalendarDate, place datetime.Place) datetime.TimeOfDay {
	return duskAt(cd, place, AstronomicalTwilight)
}
