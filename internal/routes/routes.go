package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/AnshRaj112/tripboard-backend/internal/handlers"
	"github.com/AnshRaj112/tripboard-backend/internal/middleware"
	"github.com/AnshRaj112/tripboard-backend/internal/models"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Home      *handlers.HomeHandler
	Session   *handlers.SessionHandler
	Itinerary *handlers.ItineraryHandler
	Flights   *handlers.SectionHandler[models.Flight, models.FlightForm]
	Hotels    *handlers.SectionHandler[models.HotelStay, models.HotelForm]
	Notes     *handlers.SectionHandler[models.Note, models.NoteForm]
	Foods     *handlers.SectionHandler[models.FoodRecommendation, models.FoodForm]
	Packing   *handlers.PackingHandler

	// PassphraseHash gates the trip data when set.
	PassphraseHash string
}

// SetupRoutes mounts the API. The router must already carry the Sessions
// middleware; /health and /static are mounted outside it.
func SetupRoutes(r chi.Router, h Handlers) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/sections", h.Home.Sections)
		r.Get("/session", h.Session.Status)
		r.Post("/session", h.Session.Unlock)
		r.Delete("/session", h.Session.End)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUnlocked(h.PassphraseHash))

			r.Get("/home", h.Home.Home)
			r.Route("/itinerary", h.Itinerary.Routes)
			r.Route("/flights", h.Flights.Routes)
			r.Route("/hotels", h.Hotels.Routes)
			r.Route("/notes", h.Notes.Routes)
			r.Route("/foods", h.Foods.Routes)
			r.Route("/packing", h.Packing.Routes)
		})
	})
}
