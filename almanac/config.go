// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package almanac

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloudeng.io/astro/ephemeris"
	"cloudeng.io/astro/sites"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/datetime"
	"github.com/soniakeys/unit"
)

// TargetConfig selects the target of a table: "sun", "moon", or any
// other name taken as a label for the fixed position given by RA in
// hours and Dec in degrees.
type TargetConfig struct {
	Name string  `yaml:"name"`
	RA   float64 `yaml:"ra,omitempty"`
	Dec  float64 `yaml:"dec,omitempty"`
}

// Config describes a table in YAML form, for example:
//
//	site: mauna-kea
//	target:
//	  name: sirius
//	  ra: 6.752472
//	  dec: -16.716111
//	range: Jan-01-2024:Jan-31-2024
//	twilights: [civil, astronomical]
//
// Either a site known to the registry or explicit coordinates with an
// optional time zone locate the observer.
type Config struct {
	Site      string       `yaml:"site,omitempty"`
	Latitude  float64      `yaml:"latitude,omitempty"`
	Longitude float64      `yaml:"longitude,omitempty"`
	TZ        string       `yaml:"tz,omitempty"`
	Target    TargetConfig `yaml:"target"`
	Range     string       `yaml:"range"`
	Twilights []string     `yaml:"twilights,omitempty"`
	// Horizon optionally overrides the operative horizon for the
	// target, in degrees.
	Horizon *float64 `yaml:"horizon,omitempty"`
}

// ParseConfigFile reads a YAML table configuration.
func ParseConfigFile(path string) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFile(context.Background(), path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseConfig reads a YAML table configuration from spec.
func ParseConfig(spec []byte) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfig(spec, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewTableFromConfig resolves cfg against the site registry, which may
// be nil when the configuration carries explicit coordinates, and
// computes the resulting table. Options derived from the configuration
// are appended to opts.
func NewTableFromConfig(ctx context.Context, cfg Config, registry *sites.DB, opts ...TableOption) (Table, error) {
	place, err := cfg.place(registry)
	if err != nil {
		return Table{}, err
	}
	target, err := cfg.target()
	if err != nil {
		return Table{}, err
	}
	var cdr datetime.CalendarDateRange
	if err := cdr.Parse(cfg.Range); err != nil {
		return Table{}, fmt.Errorf("range %q: %w", cfg.Range, err)
	}
	twilights, err := cfg.twilights()
	if err != nil {
		return Table{}, err
	}
	if len(twilights) > 0 {
		opts = append(opts, WithTwilights(twilights...))
	}
	if cfg.Horizon != nil {
		opts = append(opts, WithTargetHorizon(unit.AngleFromDeg(*cfg.Horizon)))
	}
	return NewTable(ctx, target, place, cdr, opts...)
}

func (c Config) place(registry *sites.DB) (datetime.Place, error) {
	if c.Site != "" {
		if registry == nil {
			return datetime.Place{}, fmt.Errorf("site %q: no site registry supplied", c.Site)
		}
		site, ok := registry.Lookup(c.Site)
		if !ok {
			return datetime.Place{}, fmt.Errorf("site %q: %w", c.Site, sites.ErrUnknownSite)
		}
		return site.Place()
	}
	loc := time.UTC
	if c.TZ != "" {
		var err error
		if loc, err = time.LoadLocation(c.TZ); err != nil {
			return datetime.Place{}, fmt.Errorf("time zone %q: %w", c.TZ, err)
		}
	}
	return datetime.Place{
		TimeLocation: loc,
		Latitude:     c.Latitude,
		Longitude:    c.Longitude,
	}, nil
}

func (c Config) target() (ephemeris.Target, error) {
	switch strings.ToLower(c.Target.Name) {
	case "":
		return nil, fmt.Errorf("no target specified")
	case "sun":
		return ephemeris.Sun{}, nil
	case "moon":
		return ephemeris.Moon{}, nil
	}
	return ephemeris.NewFixed(c.Target.Name,
		unit.RAFromHour(c.Target.RA), unit.AngleFromDeg(c.Target.Dec)), nil
}

func (c Config) twilights() ([]unit.Angle, error) {
	var horizons []unit.Angle
	for _, name := range c.Twilights {
		switch strings.ToLower(name) {
		case "civil":
			horizons = append(horizons, CivilTwilight)
		case "nautical":
			horizons = append(horizons, NauticalTwilight)
		case "astronomical":
			horizons = append(horizons, AstronomicalTwilight)
		default:
			return nil, fmt.Errorf("unrecognised twilight %q", name)
		}
	}
	return horizons, nil
}
