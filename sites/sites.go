// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package sites provides named observing site lookups, with a built in
// catalog of well known observatories and loaders for tabular and YAML
// site lists.
package sites

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/astro/riseset"
	"cloudeng.io/datetime"
	"cloudeng.io/errors"
	"gopkg.in/yaml.v3"
)

// ErrUnknownSite is returned for lookups of sites not in the registry.
var ErrUnknownSite = errors.New("unknown site")

// Site is a named observing location.
type Site struct {
	Name      string   `yaml:"name"`
	Aliases   []string `yaml:"aliases,omitempty"`
	Latitude  float64  `yaml:"latitude"`            // degrees, north positive
	Longitude float64  `yaml:"longitude"`           // degrees, east positive
	Elevation float64  `yaml:"elevation,omitempty"` // meters
	TZ        string   `yaml:"tz,omitempty"`        // IANA time zone name
}

// Observer returns an observer positioned at the site.
func (s Site) Observer() riseset.Observer {
	return riseset.NewObserver(s.Latitude, s.Longitude).WithElevation(s.Elevation)
}

// Place returns the site as a datetime.Place. Sites without a time zone
// are placed in UTC.
func (s Site) Place() (datetime.Place, error) {
	loc := time.UTC
	if s.TZ != "" {
		var err error
		if loc, err = time.LoadLocation(s.TZ); err != nil {
			return datetime.Place{}, fmt.Errorf("site %v: %w", s.Name, err)
		}
	}
	return datetime.Place{
		TimeLocation: loc,
		Latitude:     s.Latitude,
		Longitude:    s.Longitude,
	}, nil
}

type DB struct {
	sites map[string]Site
}

func NewDB() *DB {
	return &DB{sites: make(map[string]Site)}
}

//go:embed builtin.tsv
var builtinTSV []byte

// Builtin returns a registry of well known observatories.
func Builtin() *DB {
	db := NewDB()
	if err := db.Load(builtinTSV); err != nil {
		panic(err)
	}
	return db
}

// Load parses tab separated site definitions, merging them into the
// registry. Each line carries the fields:
//
//	name<TAB>aliases<TAB>latitude<TAB>longitude<TAB>elevation<TAB>tz
//
// with aliases a comma separated list, possibly empty, and elevation
// and tz optional. Blank lines and lines beginning with # are skipped.
// Malformed lines are reported in the returned error, one entry per
// line, without preventing valid lines from loading.
func (db *DB) Load(data []byte) error {
	errs := &errors.M{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if len(text) == 0 || strings.HasPrefix(text, "#") {
			continue
		}
		site, err := parseLine(scanner.Text())
		if err != nil {
			errs.Append(fmt.Errorf("line %v: %w", line, err))
			continue
		}
		db.add(site)
	}
	errs.Append(scanner.Err())
	return errs.Err()
}

// LoadYAML parses a YAML list of sites, merging them into the registry.
func (db *DB) LoadYAML(data []byte) error {
	var sites []Site
	if err := yaml.Unmarshal(data, &sites); err != nil {
		return fmt.Errorf("failed to parse site list: %w", err)
	}
	for _, s := range sites {
		db.add(s)
	}
	return nil
}

// Lookup returns the site registered under the given name or alias.
// Lookups are insensitive to case, spacing and punctuation, so "Mauna
// Kea" finds the site registered as mauna-kea.
func (db *DB) Lookup(name string) (Site, bool) {
	site, ok := db.sites[normalize(name)]
	return site, ok
}

// Observer returns an observer positioned at the named site.
func (db *DB) Observer(name string) (riseset.Observer, error) {
	site, ok := db.Lookup(name)
	if !ok {
		return riseset.Observer{}, fmt.Errorf("%q: %w", name, ErrUnknownSite)
	}
	return site.Observer(), nil
}

// Names returns the canonical names of the registered sites, sorted.
func (db *DB) Names() []string {
	seen := make(map[string]bool, len(db.sites))
	names := make([]string, 0, len(db.sites))
	for _, s := range db.sites {
		if !seen[s.Name] {
			seen[s.Name] = true
			names = append(names, s.Name)
		}
	}
	sort.Strings(names)
	return names
}

func (db *DB) add(site Site) {
	db.sites[normalize(site.Name)] = site
	for _, alias := range site.Aliases {
		db.sites[normalize(alias)] = site
	}
}

func normalize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch r {
		case ' ', '-', '_', '.', '\'':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func parseLine(text string) (Site, error) {
	parts := strings.Split(text, "\t")
	if len(parts) < 4 {
		return Site{}, fmt.Errorf("wrong number of fields: (%v < 4) %v", len(parts), text)
	}
	site := Site{Name: strings.TrimSpace(parts[0])}
	if a := strings.TrimSpace(parts[1]); a != "" {
		site.Aliases = strings.Split(a, ",")
	}
	lat, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return Site{}, fmt.Errorf("invalid latitude: %v: %v", parts[2], err)
	}
	if lat < -90 || lat > 90 {
		return Site{}, fmt.Errorf("latitude out of range: %v", lat)
	}
	long, err := strconv.ParseFloat(parts[3], 64)
	if err != nil {
		return Site{}, fmt.Errorf("invalid longitude: %v: %v", parts[3], err)
	}
	if long < -180 || long > 180 {
		return Site{}, fmt.Errorf("longitude out of range: %v", long)
	}
	site.Latitude, site.Longitude = lat, long
	if len(parts) > 4 && strings.TrimSpace(parts[4]) != "" {
		elev, err := strconv.ParseFloat(parts[4], 64)
		if err != nil {
			return Site{}, fmt.Errorf("invalid elevation: %v: %v", parts[4], err)
		}
		site.Elevation = elev
	}
	if len(parts) > 5 {
		site.TZ = strings.TrimSpace(parts[5])
	}
	return site, nil
}
