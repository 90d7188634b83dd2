package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// FlightTimeLayout is the display format of flight departure and arrival times.
	FlightTimeLayout = "2006-01-02 15:04"
	// HotelTimeLayout is the display format of hotel check-in and check-out times.
	HotelTimeLayout = "2006-01-02 03:04 PM"

	// Input layouts also accept unpadded month, day and hour ("2025-8-11 9:05").
	flightInputLayout = "2006-1-2 15:04"
	hotelInputLayout  = "2006-1-2 3:04 PM"
)

var (
	ErrUnknownZone     = errors.New("time zone does not match the trip zone")
	ErrNonexistentTime = errors.New("local time does not exist")
)

// TripClock parses and formats trip timestamps in a single zone. Flight times
// are displayed with the zone label appended ("2025-08-11 16:00 CET").
type TripClock struct {
	loc   *time.Location
	label string
}

func NewTripClock(loc *time.Location) TripClock {
	if loc == nil {
		loc = time.UTC
	}
	return TripClock{loc: loc, label: loc.String()}
}

// Label is the zone name shown after flight times.
func (c TripClock) Label() string { return c.label }

// ParseFlight parses "YYYY-MM-DD HH:MM" with an optional trailing zone word,
// so a value copied from a displayed flight time parses again. The zone word
// must be the trip zone's label or its abbreviation at that instant.
func (c TripClock) ParseFlight(s string) (time.Time, error) {
	parts := strings.Fields(s)
	var zone string
	switch len(parts) {
	case 2:
	case 3:
		zone = parts[2]
	default:
		return time.Time{}, fmt.Errorf("parsing flight time %q: want %q", s, FlightTimeLayout)
	}

	t, err := c.parse(flightInputLayout, parts[0]+" "+parts[1])
	if err != nil {
		return time.Time{}, err
	}
	if zone != "" && !strings.EqualFold(zone, c.label) {
		if abbr, _ := t.Zone(); !strings.EqualFold(zone, abbr) {
			return time.Time{}, fmt.Errorf("%w: %s", ErrUnknownZone, zone)
		}
	}
	return t, nil
}

func (c TripClock) FormatFlight(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(c.loc).Format(FlightTimeLayout) + " " + c.label
}

// ParseHotel parses "YYYY-MM-DD HH:MM AM/PM"; the meridiem is case-insensitive.
func (c TripClock) ParseHotel(s string) (time.Time, error) {
	return c.parse(hotelInputLayout, strings.ToUpper(strings.TrimSpace(s)))
}

func (c TripClock) FormatHotel(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(c.loc).Format(HotelTimeLayout)
}

// parse reads value in the trip zone and rejects wall times skipped by a
// daylight saving transition, which time.ParseInLocation would shift.
func (c TripClock) parse(layout, value string) (time.Time, error) {
	wall, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, err
	}
	t := time.Date(wall.Year(), wall.Month(), wall.Day(), wall.Hour(), wall.Minute(), 0, 0, c.loc)
	if t.Hour() != wall.Hour() || t.Minute() != wall.Minute() || t.Day() != wall.Day() {
		return time.Time{}, fmt.Errorf("%w: %s in %s", ErrNonexistentTime, value, c.label)
	}
	return t, nil
}
