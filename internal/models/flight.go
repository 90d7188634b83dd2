package models

import (
	"fmt"
	"time"

	"github.com/AnshRaj112/tripboard-backend/internal/store"
)

type Flight struct {
	ID            string    `json:"id"`
	Departure     string    `json:"departure"`
	Arrival       string    `json:"arrival"`
	DepartureTime time.Time `json:"departure_time"`
	ArrivalTime   time.Time `json:"arrival_time"`
	FlightNumber  string    `json:"flight_number"`
}

func (f Flight) Fields() store.Fields {
	return store.Fields{
		"departure":      f.Departure,
		"arrival":        f.Arrival,
		"departure_time": f.DepartureTime.UTC(),
		"arrival_time":   f.ArrivalTime.UTC(),
		"flight_number":  f.FlightNumber,
	}
}

func FlightFromFields(id string, doc store.Fields) Flight {
	return Flight{
		ID:            id,
		Departure:     doc.String("departure"),
		Arrival:       doc.String("arrival"),
		DepartureTime: doc.Time("departure_time"),
		ArrivalTime:   doc.Time("arrival_time"),
		FlightNumber:  doc.String("flight_number"),
	}
}

// FlightForm carries flight times as text in FlightTimeLayout.
type FlightForm struct {
	Departure     string `json:"departure" yaml:"departure" validate:"required"`
	Arrival       string `json:"arrival" yaml:"arrival" validate:"required"`
	DepartureTime string `json:"departure_time" yaml:"departure_time" validate:"required"`
	ArrivalTime   string `json:"arrival_time" yaml:"arrival_time" validate:"required"`
	FlightNumber  string `json:"flight_number" yaml:"flight_number" validate:"required"`
}

func FlightFormFrom(f Flight, c TripClock) FlightForm {
	return FlightForm{
		Departure:     f.Departure,
		Arrival:       f.Arrival,
		DepartureTime: c.FormatFlight(f.DepartureTime),
		ArrivalTime:   c.FormatFlight(f.ArrivalTime),
		FlightNumber:  f.FlightNumber,
	}
}

// FlightTimeFormatMessage is shown when either flight time fails to parse.
func FlightTimeFormatMessage(c TripClock) string {
	return fmt.Sprintf("Invalid time format. Please use 'YYYY-MM-DD HH:MM' format in %s.", c.Label())
}

// Flight validates the form and parses both times. A parse failure of either
// time rejects the whole form.
func (f FlightForm) Flight(c TripClock) (Flight, error) {
	if err := check(f, "Please fill out all flight details before saving."); err != nil {
		return Flight{}, err
	}
	dep, depErr := c.ParseFlight(f.DepartureTime)
	arr, arrErr := c.ParseFlight(f.ArrivalTime)
	if depErr != nil || arrErr != nil {
		return Flight{}, timeFormatError(FlightTimeFormatMessage(c), "departure_time", "arrival_time")
	}
	return Flight{
		Departure:     f.Departure,
		Arrival:       f.Arrival,
		DepartureTime: dep,
		ArrivalTime:   arr,
		FlightNumber:  f.FlightNumber,
	}, nil
}

// WithoutTimes clears both time fields.
func (f FlightForm) WithoutTimes() FlightForm {
	f.DepartureTime = ""
	f.ArrivalTime = ""
	return f
}
