// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package almanac_test

import (
	"testing"
	"time"

	"cloudeng.io/astro/almanac"
	"cloudeng.io/datetime"
)

func TestSolstice(t *testing.T) {

	if got, want := almanac.December(2024), datetime.NewCalendarDate(2024, 12, 21); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if got, want := almanac.March(1900), datetime.NewCalendarDate(1900, 03, 21); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if got, want := almanac.June(2022), datetime.NewCalendarDate(2022, 06, 21); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	if got, want := almanac.September(2023), datetime.NewCalendarDate(2023, 9, 23); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSolsticeInstants(t *testing.T) {
	// The 2024 December solstice fell at 09:21 UTC.
	ds := almanac.DecemberSolstice(2024)
	lo := time.Date(2024, 12, 21, 9, 10, 0, 0, time.UTC)
	hi := time.Date(2024, 12, 21, 9, 35, 0, 0, time.UTC)
	if ds.Before(lo) || ds.After(hi) {
		t.Errorf("%v outside [%v, %v]", ds, lo, hi)
	}

	march := almanac.MarchEquinox(2024)
	june := almanac.JuneSolstice(2024)
	september := almanac.SeptemberEquinox(2024)
	if !march.Before(june) || !june.Before(september) || !september.Before(ds) {
		t.Errorf("instants out of order: %v, %v, %v, %v", march, june, september, ds)
	}

	// The instants and the date functions agree on the UTC day.
	for _, tc := range []struct {
		instant time.Time
		date    datetime.CalendarDate
	}{
		{march, almanac.March(2024)},
		{june, almanac.June(2024)},
		{september, almanac.September(2024)},
		{ds, almanac.December(2024)},
	} {
		y, m, d := tc.instant.UTC().Date()
		if got, want := datetime.NewCalendarDate(y, datetime.Month(m), d), tc.date; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestSeasonRanges(t *testing.T) {
	winter := (almanac.Winter{}).Evaluate(2024)
	if got, want := winter.From(), almanac.December(2024); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := winter.To(), almanac.March(2025); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	spring := (almanac.Spring{}).Evaluate(2024)
	if got, want := spring.From(), almanac.March(2024); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := spring.To(), almanac.June(2024); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	summer := (almanac.Summer{}).Evaluate(2024)
	if got, want := summer.From(), almanac.June(2024); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	autumn := (almanac.Autumn{}).Evaluate(2024)
	if got, want := autumn.To(), almanac.December(2024); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	solstice := (almanac.SummerSolstice{}).Evaluate(2024)
	if got, want := solstice.From(), solstice.To(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := solstice.From(), almanac.June(2024); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	for _, tc := range []struct {
		dyn  datetime.DynamicDateRange
		name string
	}{
		{almanac.SummerSolstice{}, "SummerSolstice"},
		{almanac.WinterSolstice{}, "WinterSolstice"},
		{almanac.SpringEquinox{}, "SpringEquinox"},
		{almanac.AutumnEquinox{}, "AutumnEquinox"},
		{almanac.Winter{}, "Winter"},
		{almanac.Spring{}, "Spring"},
		{almanac.Summer{}, "Summer"},
		{almanac.Autumn{}, "Autumn"},
	} {
		if got, want := tc.dyn.Name(), tc.name; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}
