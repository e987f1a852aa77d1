// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package riseset

import (
	"math"
	"time"

	"cloudeng.io/astro/ephemeris"
	"cloudeng.io/datetime"
	"github.com/mooncaker816/learnmeeus/v3/coord"
	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/rise"
	"github.com/mooncaker816/learnmeeus/v3/sidereal"
	"github.com/soniakeys/unit"
)

// Standard altitudes, that is operative horizons that account for mean
// refraction at the horizon and, for the Sun, the angular radius of the
// disk.
var (
	// StellarHorizon is the standard operative horizon for stars and
	// planets, -34 arc minutes.
	StellarHorizon = rise.Stdh0Stellar
	// SolarHorizon is the standard operative horizon for the upper limb
	// of the Sun, -50 arc minutes.
	SolarHorizon = rise.Stdh0Solar
)

// LunarHorizon returns the operative horizon for the upper limb of the
// Moon given its horizontal parallax, typically obtained from
// ephemeris.Moon.Parallax.
func LunarHorizon(parallax unit.Angle) unit.Angle {
	return rise.Stdh0Lunar(parallax)
}

// Dip returns the depression of the sea horizon for an observer
// elevation meters above it, using the standard estimate of 1.76 arc
// minutes per square root meter. Add it to an operative horizon for an
// elevated site overlooking a sea level horizon.
func Dip(elevation float64) unit.Angle {
	if elevation <= 0 {
		return 0
	}
	return -unit.AngleFromMin(1.76 * math.Sqrt(elevation))
}

// Observer is a terrestrial observing position together with the
// operative horizon against which rise and set events are measured.
// The zero value is an observer at 0N 0E at sea level with a geometric
// horizon. Observers are immutable; the With methods return modified
// copies.
type Observer struct {
	lat, long float64 // degrees, north and east positive
	elevation float64 // meters
	horizon   unit.Angle
}

// NewObserver returns an observer at the given latitude and longitude,
// in degrees with north and east positive.
func NewObserver(lat, long float64) Observer {
	return Observer{lat: lat, long: long}
}

// ObserverAt returns an observer for the location described by p.
func ObserverAt(p datetime.Place) Observer {
	return NewObserver(p.Latitude, p.Longitude)
}

// WithHorizon returns a copy of o with the operative horizon set to h0.
// Events occur when the target's altitude crosses h0.
func (o Observer) WithHorizon(h0 unit.Angle) Observer {
	o.horizon = h0
	return o
}

// WithElevation returns a copy of o at the given elevation in meters
// above sea level. Elevation does not enter the altitude computation;
// use Dip to fold the resulting horizon depression into the operative
// horizon where appropriate.
func (o Observer) WithElevation(m float64) Observer {
	o.elevation = m
	return o
}

func (o Observer) Latitude() float64 {
	return o.lat
}

func (o Observer) Longitude() float64 {
	return o.long
}

func (o Observer) Elevation() float64 {
	return o.elevation
}

// Horizon returns the operative horizon.
func (o Observer) Horizon() unit.Angle {
	return o.horizon
}

// AltAz returns the apparent direction to target at time tm, with
// azimuth measured westward from south and altitude above the
// geometric horizon, following the conventions of Meeus chapter 13.
// Atmospheric refraction is not applied; rise and set searches absorb
// mean horizon refraction into the operative horizon instead.
func (o Observer) AltAz(target ephemeris.Target, tm time.Time) (coord.Horizontal, error) {
	eq, err := target.Apparent(tm)
	if err != nil {
		return coord.Horizontal{}, err
	}
	st := sidereal.Apparent(julian.TimeToJD(tm))
	lat := unit.AngleFromDeg(o.lat)
	// Meeus reckons longitude positive west of Greenwich.
	long := unit.AngleFromDeg(-o.long)
	az, alt := coord.EqToHz(eq.RA, eq.Dec, lat, long, st)
	return coord.Horizontal{Az: az, Alt: alt}, nil
}

// Altitude returns the apparent altitude of target above the geometric
// horizon at time tm.
func (o Observer) Altitude(target ephemeris.Target, tm time.Time) (unit.Angle, error) {
	hz, err := o.AltAz(target, tm)
	if err != nil {
		return 0, err
	}
	return hz.Alt, nil
}
