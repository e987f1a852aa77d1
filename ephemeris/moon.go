// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ephemeris

import (
	"math"
	"time"

	"github.com/mooncaker816/learnmeeus/v3/coord"
	"github.com/mooncaker816/learnmeeus/v3/moonposition"
	"github.com/mooncaker816/learnmeeus/v3/nutation"
	"github.com/soniakeys/unit"
)

// Moon is the apparent Moon. Positions are geocentric; the large lunar
// parallax is absorbed into the standard altitude at rise and set time
// via riseset.LunarHorizon rather than by computing topocentric places.
type Moon struct{}

func (Moon) Name() string {
	return "moon"
}

// Apparent returns the Moon's position from the abridged ELP-2000/82
// series of Meeus chapter 47, good to about 10 arc seconds in
// longitude.
func (Moon) Apparent(t time.Time) (coord.Equatorial, error) {
	jd, err := julianDay(t, "moon")
	if err != nil {
		return coord.Equatorial{}, err
	}
	lon, lat, _ := moonposition.Position(jd)
	dPsi, dEps := nutation.Nutation(jd)
	obl := nutation.MeanObliquity(jd) + dEps
	sObl, cObl := math.Sincos(obl.Rad())
	ra, dec := coord.EclToEq(lon+dPsi, lat, sObl, cObl)
	return coord.Equatorial{RA: ra, Dec: dec}, nil
}

// Parallax returns the Moon's equatorial horizontal parallax at time t,
// suitable for riseset.LunarHorizon.
func (Moon) Parallax(t time.Time) (unit.Angle, error) {
	jd, err := julianDay(t, "moon")
	if err != nil {
		return 0, err
	}
	_, _, dist := moonposition.Position(jd)
	return moonposition.Parallax(dist), nil
}
