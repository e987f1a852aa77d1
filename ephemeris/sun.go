// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package ephemeris

import (
	"time"

	"github.com/mooncaker816/learnmeeus/v3/coord"
	"github.com/mooncaker816/learnmeeus/v3/solar"
)

// Sun is the apparent geocentric Sun.
type Sun struct{}

func (Sun) Name() string {
	return "sun"
}

// Apparent returns the Sun's position from the low accuracy solar
// theory of Meeus chapter 25, good to about 0.01 degrees.
func (Sun) Apparent(t time.Time) (coord.Equatorial, error) {
	jd, err := julianDay(t, "sun")
	if err != nil {
		return coord.Equatorial{}, err
	}
	ra, dec := solar.ApparentEquatorial(jd)
	return coord.Equatorial{RA: ra, Dec: dec}, nil
}
