package views

import (
	"errors"
	"fmt"

	"github.com/AnshRaj112/tripboard-backend/internal/apperror"
	"github.com/AnshRaj112/tripboard-backend/internal/models"
	"github.com/AnshRaj112/tripboard-backend/internal/store"
)

func FlightSchema(clock models.TripClock) Schema[models.Flight, models.FlightForm] {
	return Schema[models.Flight, models.FlightForm]{
		Collection: store.Flights,
		Slug:       "flights",
		Title:      "Flights - Detailed Flight Information",
		Empty:      "No flights yet. Add your first flight below.",
		Decode:     models.FlightFromFields,
		Encode:     models.Flight.Fields,
		ID:         func(f models.Flight) string { return f.ID },
		Build:      func(form models.FlightForm) (models.Flight, error) { return form.Flight(clock) },
		Prefill:    func(f models.Flight) models.FlightForm { return models.FlightFormFrom(f, clock) },
		Label:      func(f models.Flight) string { return "Flight " + f.FlightNumber },
		Less:       func(a, b models.Flight) bool { return a.DepartureTime.Before(b.DepartureTime) },
		Echo: func(form models.FlightForm, err error) models.FlightForm {
			if errors.Is(err, apperror.ErrInvalidFormat) {
				return form.WithoutTimes()
			}
			return form
		},
		Messages: Messages[models.Flight]{
			Added: func(f models.Flight) string {
				return fmt.Sprintf("Flight from %s to %s added successfully!", f.Departure, f.Arrival)
			},
			Updated: func(f models.Flight) string { return fmt.Sprintf("Flight %s updated successfully!", f.FlightNumber) },
			Removed: func(f models.Flight) string { return fmt.Sprintf("Flight %s removed successfully!", f.FlightNumber) },
		},
	}
}

func HotelSchema(clock models.TripClock) Schema[models.HotelStay, models.HotelForm] {
	return Schema[models.HotelStay, models.HotelForm]{
		Collection: store.Hotels,
		Slug:       "hotels",
		Title:      "Hotels - Where You Sleep",
		Empty:      "No hotels yet. Add your first stay below.",
		Decode:     models.HotelStayFromFields,
		Encode:     models.HotelStay.Fields,
		ID:         func(h models.HotelStay) string { return h.ID },
		Build:      func(form models.HotelForm) (models.HotelStay, error) { return form.HotelStay(clock) },
		Prefill:    func(h models.HotelStay) models.HotelForm { return models.HotelFormFrom(h, clock) },
		Label:      func(h models.HotelStay) string { return h.Name },
		Less:       func(a, b models.HotelStay) bool { return a.CheckInTime.Before(b.CheckInTime) },
		Echo: func(form models.HotelForm, err error) models.HotelForm {
			if errors.Is(err, apperror.ErrInvalidFormat) {
				return form.WithoutTimes()
			}
			return form
		},
		Messages: Messages[models.HotelStay]{
			Added:   func(h models.HotelStay) string { return fmt.Sprintf("Hotel %s added successfully!", h.Name) },
			Updated: func(h models.HotelStay) string { return fmt.Sprintf("Hotel %s updated successfully!", h.Name) },
			Removed: func(h models.HotelStay) string { return fmt.Sprintf("Hotel %s removed successfully!", h.Name) },
		},
	}
}

func NoteSchema() Schema[models.Note, models.NoteForm] {
	return Schema[models.Note, models.NoteForm]{
		Collection: store.Notes,
		Slug:       "notes",
		Title:      "Notes - Add and Edit Notes",
		Empty:      "No notes found. Start by adding one below.",
		Decode:     models.NoteFromFields,
		Encode:     models.Note.Fields,
		ID:         func(n models.Note) string { return n.ID },
		Build:      models.NoteForm.Note,
		Prefill:    models.NoteFormFrom,
		Label:      func(n models.Note) string { return n.Section },
		Less:       func(a, b models.Note) bool { return a.Section < b.Section },
		Messages: Messages[models.Note]{
			Added:   func(n models.Note) string { return fmt.Sprintf("New note '%s' added!", n.Section) },
			Updated: func(n models.Note) string { return fmt.Sprintf("Updated note: %s", n.Section) },
			Removed: func(n models.Note) string { return fmt.Sprintf("Note '%s' deleted!", n.Section) },
		},
	}
}

func FoodSchema() Schema[models.FoodRecommendation, models.FoodForm] {
	return Schema[models.FoodRecommendation, models.FoodForm]{
		Collection: store.Foods,
		Slug:       "foods",
		Title:      "Must Try Eat",
		Empty:      "Nothing on the must-try list yet.",
		Decode:     models.FoodRecommendationFromFields,
		Encode:     models.FoodRecommendation.Fields,
		ID:         func(r models.FoodRecommendation) string { return r.ID },
		Build:      models.FoodForm.FoodRecommendation,
		Prefill:    models.FoodFormFrom,
		Label:      func(r models.FoodRecommendation) string { return r.Food },
		Less:       func(a, b models.FoodRecommendation) bool { return a.Food < b.Food },
		Messages: Messages[models.FoodRecommendation]{
			Added: func(r models.FoodRecommendation) string {
				return fmt.Sprintf("Added %s to your must-try list!", r.Food)
			},
			Updated: func(r models.FoodRecommendation) string { return fmt.Sprintf("Updated %s!", r.Food) },
			Removed: func(r models.FoodRecommendation) string { return fmt.Sprintf("Removed %s successfully!", r.Food) },
		},
	}
}

func PackingSchema() Schema[models.PackingItem, models.PackingForm] {
	return Schema[models.PackingItem, models.PackingForm]{
		Collection: store.Packing,
		Slug:       "packing",
		Title:      "What to Pack",
		Empty:      "Your packing list is empty.",
		Decode:     models.PackingItemFromFields,
		Encode:     models.PackingItem.Fields,
		ID:         func(p models.PackingItem) string { return p.ID },
		Build:      models.PackingForm.PackingItem,
		Prefill:    models.PackingFormFrom,
		Label:      func(p models.PackingItem) string { return p.Item },
		Less:       func(a, b models.PackingItem) bool { return a.Item < b.Item },
		PrepareAdd: func(p models.PackingItem) models.PackingItem {
			p.Checked = false
			return p
		},
		Messages: Messages[models.PackingItem]{
			Added:   func(models.PackingItem) string { return "New item added to the packing list!" },
			Updated: func(p models.PackingItem) string { return fmt.Sprintf("Item %s updated!", p.Item) },
			Removed: func(p models.PackingItem) string { return fmt.Sprintf("Item %s removed successfully!", p.Item) },
		},
	}
}
