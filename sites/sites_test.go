// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package sites_test

import (
	"errors"
	"strings"
	"testing"

	"cloudeng.io/astro/sites"
)

func TestBuiltin(t *testing.T) {
	db := sites.Builtin()
	site, ok := db.Lookup("mauna-kea")
	if !ok {
		t.Fatalf("mauna-kea not found")
	}
	if got, want := site.Latitude, 19.8207; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := site.Longitude, -155.4681; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := site.Elevation, 4205.0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := site.TZ, "Pacific/Honolulu"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// Lookups normalize case, spacing and punctuation, and aliases
	// resolve to the same site.
	for _, name := range []string{"Mauna Kea", "MAUNAKEA", "mauna_kea", "mko"} {
		alt, ok := db.Lookup(name)
		if !ok {
			t.Errorf("%v: not found", name)
			continue
		}
		if got, want := alt.Name, site.Name; got != want {
			t.Errorf("%v: got %v, want %v", name, got, want)
		}
	}

	if _, ok := db.Lookup("atlantis"); ok {
		t.Errorf("unexpected site")
	}

	names := db.Names()
	if len(names) < 10 {
		t.Errorf("got %v sites, want at least 10", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %v >= %v", names[i-1], names[i])
		}
	}
}

func TestObserverAndPlace(t *testing.T) {
	db := sites.Builtin()
	obs, err := db.Observer("palomar")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := obs.Latitude(), 33.3564; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := obs.Longitude(), -116.8650; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := obs.Elevation(), 1712.0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	_, err = db.Observer("no-such-place")
	if err == nil || !errors.Is(err, sites.ErrUnknownSite) {
		t.Errorf("missing or wrong error: %v", err)
	}

	site, _ := db.Lookup("greenwich")
	place, err := site.Place()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := place.TimeLocation.String(), "Europe/London"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := place.Latitude, 51.4769; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	// An empty tz falls back to UTC.
	place, err = sites.Site{Name: "nowhere"}.Place()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := place.TimeLocation.String(), "UTC"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	_, err = sites.Site{Name: "bad", TZ: "Nowhere/Nowhere"}.Place()
	if err == nil {
		t.Errorf("expected an error")
	}
}

func TestLoad(t *testing.T) {
	db := sites.NewDB()
	data := strings.Join([]string{
		"# comment",
		"",
		"backyard	home	37.25	-121.9	120	America/Los_Angeles",
		"minimal		-10.5	30.25",
		"bad-lat	x	ninety	0",
		"bad-long		0	200",
		"too-few	1.0",
	}, "\n")
	err := db.Load([]byte(data))
	if err == nil {
		t.Fatalf("expected errors for malformed lines")
	}
	for _, want := range []string{"line 5", "line 6", "line 7"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %v: %v", want, err)
		}
	}

	// Valid lines load despite the malformed ones.
	site, ok := db.Lookup("backyard")
	if !ok {
		t.Fatalf("backyard not found")
	}
	if got, want := site.Elevation, 120.0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, ok := db.Lookup("home"); !ok {
		t.Errorf("alias not registered")
	}
	site, ok = db.Lookup("minimal")
	if !ok {
		t.Fatalf("minimal not found")
	}
	if got, want := site.TZ, ""; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := site.Longitude, 30.25; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if _, ok := db.Lookup("bad-lat"); ok {
		t.Errorf("malformed line was registered")
	}
}

func TestLoadYAML(t *testing.T) {
	db := sites.NewDB()
	spec := `
- name: hilltop
  aliases: [the-hill]
  latitude: 46.1
  longitude: 7.98
  elevation: 3100
  tz: Europe/Zurich
- name: sealevel
  latitude: -33.85
  longitude: 151.2
`
	if err := db.LoadYAML([]byte(spec)); err != nil {
		t.Fatal(err)
	}
	site, ok := db.Lookup("The Hill")
	if !ok {
		t.Fatalf("alias lookup failed")
	}
	if got, want := site.Name, "hilltop"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := site.Elevation, 3100.0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if err := db.LoadYAML([]byte("not: [valid")); err == nil {
		t.Errorf("expected an error")
	}

	// Later loads override earlier entries for the same name.
	if err := db.LoadYAML([]byte("- {name: hilltop, latitude: 1, longitude: 2}")); err != nil {
		t.Fatal(err)
	}
	site, _ = db.Lookup("hilltop")
	if got, want := site.Latitude, 1.0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
