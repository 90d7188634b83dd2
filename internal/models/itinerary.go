package models

import "github.com/AnshRaj112/tripboard-backend/internal/store"

// ItineraryEntry is one day (or span of days) of the trip.
type ItineraryEntry struct {
	Date       string `json:"date" yaml:"date"`
	Location   string `json:"location" yaml:"location"`
	Activities string `json:"activities" yaml:"activities"`
}

func (e ItineraryEntry) Fields() store.Fields {
	return store.Fields{
		"Date":       e.Date,
		"Location":   e.Location,
		"Activities": e.Activities,
	}
}

func ItineraryEntryFromFields(f store.Fields) ItineraryEntry {
	return ItineraryEntry{
		Date:       f.String("Date"),
		Location:   f.String("Location"),
		Activities: f.String("Activities"),
	}
}

// ItineraryAddForm adds a row; every field is required.
type ItineraryAddForm struct {
	Date       string `json:"date" yaml:"date" validate:"required"`
	Location   string `json:"location" yaml:"location" validate:"required"`
	Activities string `json:"activities" yaml:"activities" validate:"required"`
}

func (f ItineraryAddForm) Entry() (ItineraryEntry, error) {
	if err := check(f, "Please fill out all fields to add a new entry."); err != nil {
		return ItineraryEntry{}, err
	}
	return ItineraryEntry{Date: f.Date, Location: f.Location, Activities: f.Activities}, nil
}

// ItineraryEditForm edits the location and activities of a row. The date of
// a row never changes.
type ItineraryEditForm struct {
	Location   string `json:"location" yaml:"location" validate:"required"`
	Activities string `json:"activities" yaml:"activities" validate:"required"`
}

func (f ItineraryEditForm) Validate() error {
	return check(f, "Please fill out both location and activities.")
}
