// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package almanac_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"cloudeng.io/astro/almanac"
	"cloudeng.io/astro/ephemeris"
	"cloudeng.io/astro/riseset"
	"cloudeng.io/datetime"
	"github.com/soniakeys/unit"
)

func TestICS(t *testing.T) {
	ctx := context.Background()
	place := cupertino(t)
	cdr := dateRange(t, "Jan-01-2024:Jan-01-2024")
	tbl, err := almanac.NewTable(ctx, ephemeris.Sun{}, place, cdr,
		almanac.WithTwilights(almanac.CivilTwilight))
	if err != nil {
		t.Fatal(err)
	}
	stamp := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	out := almanac.ICS(tbl, stamp)
	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"METHOD:PUBLISH",
		"PRODID:-//cloudeng.io/astro//almanac//EN",
		"DTSTAMP:20240115T120000Z",
		"SUMMARY:sun rise",
		"SUMMARY:sun set",
		"SUMMARY:sun transit",
		"SUMMARY:sun civil dawn",
		"SUMMARY:sun civil dusk",
		"END:VCALENDAR",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %v", want)
		}
	}
	if got, want := strings.Count(out, "BEGIN:VEVENT"), 5; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	// A fixed stamp makes the document reproducible.
	if again := almanac.ICS(tbl, stamp); again != out {
		t.Errorf("serialization not reproducible")
	}
}

func TestICSSentinels(t *testing.T) {
	when := time.Date(2024, 6, 21, 11, 0, 0, 0, time.UTC)
	tbl := almanac.Table{
		Target:    "sun",
		Twilights: []unit.Angle{almanac.CivilTwilight, unit.AngleFromDeg(-9)},
		Days: []almanac.Day{{
			Date:    datetime.NewCalendarDate(2024, 6, 21),
			Rise:    riseset.Result{Outcome: riseset.Circumpolar},
			Set:     riseset.Result{Outcome: riseset.Circumpolar},
			Transit: riseset.Result{Time: when, Outcome: riseset.Found},
			Dawn: []riseset.Result{
				{Outcome: riseset.Circumpolar},
				{Time: when.Add(-8 * time.Hour), Outcome: riseset.Found},
			},
			Dusk: []riseset.Result{
				{Outcome: riseset.Circumpolar},
				{Time: when.Add(8 * time.Hour), Outcome: riseset.Found},
			},
		}},
	}
	out := almanac.ICS(tbl, when)
	// The sentinel outcomes contribute no events.
	if got, want := strings.Count(out, "BEGIN:VEVENT"), 3; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, want := range []string{
		"SUMMARY:sun transit",
		"SUMMARY:sun dawn at -9.0 degrees",
		"SUMMARY:sun dusk at -9.0 degrees",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %v", want)
		}
	}
}
