// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package ephemeris provides apparent equatorial positions for the
// celestial targets used by cloudeng.io/astro: fixed catalog objects,
// the Sun and the Moon. Positions are computed with the algorithms from
// Meeus, "Astronomical Algorithms", as implemented by
// github.com/mooncaker816/learnmeeus/v3.
package ephemeris

import (
	"errors"
	"fmt"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/coord"
	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/soniakeys/unit"
)

// ErrOutOfRange is returned when a position is requested for a time
// outside the range over which the underlying series are trustworthy.
var ErrOutOfRange = errors.New("time outside supported ephemeris range")

// The truncated periodic series degrade beyond their stated accuracy
// outside of these bounds.
var (
	minJD = julian.CalendarGregorianToJD(1000, 1, 1)
	maxJD = julian.CalendarGregorianToJD(3000, 12, 31)
)

// Target is anything that can report its apparent geocentric equatorial
// position at a given time. It is the sole capability consumed by the
// riseset package.
type Target interface {
	Name() string
	// Apparent returns the apparent right ascension and declination at
	// time t, referred to the equinox of date.
	Apparent(t time.Time) (coord.Equatorial, error)
}

// julianDay bounds checks t and converts it to a Julian day. Civil time
// stands in for dynamical time; over the supported range the difference
// is below the accuracy of the series and is not modeled.
func julianDay(t time.Time, name string) (float64, error) {
	jd := julian.TimeToJD(t)
	if jd < minJD || jd > maxJD {
		return 0, fmt.Errorf("%v at %v: %w", name, t.Format(time.RFC3339), ErrOutOfRange)
	}
	return jd, nil
}

// Fixed is a target whose equatorial coordinates do not change: a
// catalog star or any other object distant enough that proper motion
// can be ignored.
type Fixed struct {
	name string
	eq   coord.Equatorial
}

// NewFixed returns a fixed target with the supplied catalog position.
func NewFixed(name string, ra unit.RA, dec unit.Angle) Fixed {
	return Fixed{name: name, eq: coord.Equatorial{RA: ra, Dec: dec}}
}

func (f Fixed) Name() string {
	return f.name
}

func (f Fixed) Apparent(time.Time) (coord.Equatorial, error) {
	return f.eq, nil
}
