package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cet(t *testing.T) TripClock {
	t.Helper()
	loc, err := time.LoadLocation("CET")
	require.NoError(t, err)
	return NewTripClock(loc)
}

func TestTripClock_FlightRoundTrip(t *testing.T) {
	c := cet(t)

	for _, in := range []string{
		"2025-08-11 16:00 CET",
		"2025-08-12 08:05 CET",
		"2025-01-31 23:59 CET",
	} {
		parsed, err := c.ParseFlight(in)
		require.NoError(t, err, in)
		assert.Equal(t, in, c.FormatFlight(parsed))
	}
}

func TestTripClock_ParseFlightWithoutZone(t *testing.T) {
	c := cet(t)

	got, err := c.ParseFlight("2025-08-11 16:00")
	require.NoError(t, err)

	// CEST in August.
	assert.Equal(t, time.Date(2025, 8, 11, 14, 0, 0, 0, time.UTC), got.UTC())
	assert.Equal(t, "2025-08-11 16:00 CET", c.FormatFlight(got))
}

func TestTripClock_ParseFlightRejects(t *testing.T) {
	c := cet(t)

	for _, in := range []string{"", "2025-08-11", "11/08/2025 16:00", "2025-08-11 16h00", "2025-08-11 16:00 +0200"} {
		_, err := c.ParseFlight(in)
		assert.Error(t, err, in)
	}
}

func TestTripClock_HotelRoundTrip(t *testing.T) {
	c := cet(t)

	for _, in := range []string{"2025-08-12 03:00 PM", "2025-08-17 11:00 AM", "2025-08-13 12:30 AM"} {
		parsed, err := c.ParseHotel(in)
		require.NoError(t, err, in)
		assert.Equal(t, in, c.FormatHotel(parsed))
	}
}

func TestTripClock_HotelMeridiemCase(t *testing.T) {
	c := cet(t)

	got, err := c.ParseHotel("2025-08-12 03:00 pm")
	require.NoError(t, err)
	assert.Equal(t, 15, got.Hour())
}

func TestTripClock_ZeroFormatsEmpty(t *testing.T) {
	c := cet(t)

	assert.Empty(t, c.FormatFlight(time.Time{}))
	assert.Empty(t, c.FormatHotel(time.Time{}))
}

func TestNewTripClock_NilLocation(t *testing.T) {
	c := NewTripClock(nil)
	assert.Equal(t, "UTC", c.Label())
}

func TestTripClock_UnpaddedInput(t *testing.T) {
	c := cet(t)

	f, err := c.ParseFlight("2025-8-11 9:05")
	require.NoError(t, err)
	assert.Equal(t, "2025-08-11 09:05 CET", c.FormatFlight(f))

	h, err := c.ParseHotel("2025-03-15 3:00 PM")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-15 03:00 PM", c.FormatHotel(h))
}

func TestTripClock_FlightZoneWord(t *testing.T) {
	c := cet(t)

	summer, err := c.ParseFlight("2025-08-11 16:00 CEST")
	require.NoError(t, err)
	assert.Equal(t, "2025-08-11 16:00 CET", c.FormatFlight(summer))

	_, err = c.ParseFlight("2025-08-11 16:00 cet")
	assert.NoError(t, err)

	_, err = c.ParseFlight("2025-08-11 16:00 PST")
	assert.ErrorIs(t, err, ErrUnknownZone)
}

func TestTripClock_RejectsSkippedWallTime(t *testing.T) {
	c := cet(t)

	_, err := c.ParseFlight("2025-03-30 02:30 CET")
	assert.ErrorIs(t, err, ErrNonexistentTime)

	_, err = c.ParseHotel("2025-03-30 02:30 AM")
	assert.ErrorIs(t, err, ErrNonexistentTime)

	got, err := c.ParseFlight("2025-03-30 03:30 CET")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-30 03:30 CET", c.FormatFlight(got))
}
