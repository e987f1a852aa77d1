// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package almanac

import (
	"fmt"
	"time"

	"cloudeng.io/astro/riseset"
	ics "github.com/arran4/golang-ical"
	"github.com/soniakeys/unit"
)

// ICS renders a table as an iCalendar (RFC 5545) document with one zero
// length event per found rise, set, transit, dawn and dusk. Sentinel
// outcomes produce no events. The stamp becomes each event's DTSTAMP,
// so a fixed stamp makes the output reproducible.
func ICS(tbl Table, stamp time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//cloudeng.io/astro//almanac//EN")
	for _, day := range tbl.Days {
		addEvent(cal, tbl.Target, "rise", day.Rise, stamp)
		addEvent(cal, tbl.Target, "set", day.Set, stamp)
		addEvent(cal, tbl.Target, "transit", day.Transit, stamp)
		for i, dawn := range day.Dawn {
			addEvent(cal, "sun", twilightLabel(tbl.Twilights[i], "dawn"), dawn, stamp)
		}
		for i, dusk := range day.Dusk {
			addEvent(cal, "sun", twilightLabel(tbl.Twilights[i], "dusk"), dusk, stamp)
		}
	}
	return cal.Serialize()
}

func addEvent(cal *ics.Calendar, target, label string, res riseset.Result, stamp time.Time) {
	if !res.Event() {
		return
	}
	uid := fmt.Sprintf("%v-%v-%v@astro.cloudeng.io",
		target, label, res.Time.UTC().Format("20060102T150405Z"))
	ev := cal.AddEvent(uid)
	ev.SetDtStampTime(stamp)
	ev.SetStartAt(res.Time)
	ev.SetEndAt(res.Time)
	ev.SetSummary(fmt.Sprintf("%v %v", target, label))
}

func twilightLabel(h unit.Angle, phase string) string {
	switch h {
	case CivilTwilight:
		return "civil " + phase
	case NauticalTwilight:
		return "nautical " + phase
	case AstronomicalTwilight:
		return "astronomical " + phase
	}
	return fmt.Sprintf("%v at %.1f degrees", phase, h.Deg())
}
