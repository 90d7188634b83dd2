package views

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/AnshRaj112/tripboard-backend/internal/apperror"
	"github.com/AnshRaj112/tripboard-backend/internal/logger"
	"github.com/AnshRaj112/tripboard-backend/internal/models"
	"github.com/AnshRaj112/tripboard-backend/internal/services"
	"github.com/AnshRaj112/tripboard-backend/internal/store"
)

const itineraryTitle = "Travel Itinerary - South Korea"

// ItineraryRowView is one row of the trip overview table.
type ItineraryRowView struct {
	Index      int    `json:"index"`
	Heading    string `json:"heading"`
	Date       string `json:"date"`
	Location   string `json:"location"`
	Activities string `json:"activities"`
	Saved      bool   `json:"saved"`
}

// MapConfig tells the client where to centre the map and where to fetch
// markers from; geocoding only happens when the markers are requested.
type MapConfig struct {
	Center     [2]float64 `json:"center"`
	Zoom       int        `json:"zoom"`
	MarkersURL string     `json:"markers_url"`
}

type ItineraryView struct {
	Section   string                               `json:"section"`
	Title     string                               `json:"title"`
	Map       MapConfig                            `json:"map"`
	Rows      []ItineraryRowView                   `json:"rows"`
	EditForms []EditForm[models.ItineraryEditForm] `json:"edit_forms"`
	AddForm   models.ItineraryAddForm              `json:"add_form"`
	Notice    *Notice                              `json:"notice,omitempty"`
}

type MapView struct {
	Center   [2]float64        `json:"center"`
	Zoom     int               `json:"zoom"`
	Markers  []services.Marker `json:"markers"`
	Problems []string          `json:"problems,omitempty"`
}

// Itinerary is the controller of the session-cached itinerary. Rows live in
// the session; the store only receives a copy of each edited or added row.
type Itinerary struct {
	sessions *services.SessionManager
	store    store.Store
	geocoder services.PlaceResolver
	log      *zap.Logger
}

func NewItinerary(sessions *services.SessionManager, st store.Store, geocoder services.PlaceResolver, log *zap.Logger) *Itinerary {
	return &Itinerary{
		sessions: sessions,
		store:    st,
		geocoder: geocoder,
		log:      logger.Named(log, "itinerary"),
	}
}

// Render builds the itinerary view from the session table.
func (it *Itinerary) Render(s *services.Session) ItineraryView {
	view := ItineraryView{
		Section: "itinerary",
		Title:   itineraryTitle,
		Map: MapConfig{
			Center:     services.MapCenter,
			Zoom:       services.MapZoom,
			MarkersURL: "/api/itinerary/map",
		},
		Rows:      make([]ItineraryRowView, 0, len(s.Itinerary)),
		EditForms: make([]EditForm[models.ItineraryEditForm], 0, len(s.Itinerary)),
	}
	for i, row := range s.Itinerary {
		view.Rows = append(view.Rows, ItineraryRowView{
			Index:      i,
			Heading:    fmt.Sprintf("%s - %s", row.Date, row.Location),
			Date:       row.Date,
			Location:   row.Location,
			Activities: row.Activities,
			Saved:      row.StoreID != "",
		})
		view.EditForms = append(view.EditForms, EditForm[models.ItineraryEditForm]{
			ID:    strconv.Itoa(i),
			Label: fmt.Sprintf("Save changes for %s", row.Date),
			Values: models.ItineraryEditForm{
				Location:   row.Location,
				Activities: row.Activities,
			},
		})
	}
	return view
}

// Edit replaces the location and activities of row index. The session keeps
// the edit even when the store rejects it. The first persisted edit of a row
// creates a document; later edits overwrite that document.
func (it *Itinerary) Edit(ctx context.Context, sessionID string, index int, form models.ItineraryEditForm) (*services.Session, Outcome, error) {
	if err := form.Validate(); err != nil {
		return nil, rejectedOutcome(form, err), err
	}

	var outcome Outcome
	s, err := it.sessions.Update(ctx, sessionID, func(s *services.Session) error {
		if index < 0 || index >= len(s.Itinerary) {
			err := apperror.Invalid(fmt.Sprintf("Itinerary row %d does not exist.", index))
			outcome = Outcome{Message: err.Message}
			return err
		}

		row := &s.Itinerary[index]
		row.Location = form.Location
		row.Activities = form.Activities

		if err := it.persist(ctx, row); err != nil {
			outcome = Outcome{Message: fmt.Sprintf("Updated entry for %s locally, but saving failed: %v", row.Date, err)}
			return err
		}
		outcome = Outcome{Success: true, Message: fmt.Sprintf("Updated entry for %s!", row.Date)}
		return nil
	})
	return s, sessionOutcome(s, outcome, err), err
}

// Add appends a row and creates its document.
func (it *Itinerary) Add(ctx context.Context, sessionID string, form models.ItineraryAddForm) (*services.Session, Outcome, error) {
	entry, err := form.Entry()
	if err != nil {
		return nil, rejectedOutcome(form, err), err
	}

	var outcome Outcome
	s, err := it.sessions.Update(ctx, sessionID, func(s *services.Session) error {
		s.Itinerary = append(s.Itinerary, services.ItineraryRow{ItineraryEntry: entry})
		row := &s.Itinerary[len(s.Itinerary)-1]

		if err := it.persist(ctx, row); err != nil {
			outcome = Outcome{Message: fmt.Sprintf("Added new entry for %s locally, but saving failed: %v", entry.Date, err)}
			return err
		}
		outcome = Outcome{Success: true, Message: fmt.Sprintf("Added new entry for %s", entry.Date)}
		return nil
	})
	return s, sessionOutcome(s, outcome, err), err
}

// sessionOutcome turns a successful row action into a failure when the
// session itself could not be loaded or saved afterwards.
func sessionOutcome(s *services.Session, outcome Outcome, err error) Outcome {
	switch {
	case err == nil:
		return outcome
	case s == nil && outcome.Message == "":
		return Outcome{Message: fmt.Sprintf("Session error: %v", err)}
	case outcome.Success:
		return Outcome{Message: fmt.Sprintf("%s But the session could not be saved: %v", outcome.Message, err)}
	default:
		return outcome
	}
}

// persist writes row to its document, creating the document on first save.
func (it *Itinerary) persist(ctx context.Context, row *services.ItineraryRow) error {
	if row.StoreID == "" {
		id, err := it.store.Create(ctx, store.Itinerary, row.Fields())
		if err != nil {
			it.log.Error("failed to create itinerary document", zap.String("date", row.Date), zap.Error(err))
			return err
		}
		row.StoreID = id
		return nil
	}
	if err := it.store.Set(ctx, store.Itinerary, row.StoreID, row.Fields()); err != nil {
		it.log.Error("failed to update itinerary document", zap.String("id", row.StoreID), zap.Error(err))
		return err
	}
	return nil
}

// Map geocodes every row location into markers.
func (it *Itinerary) Map(ctx context.Context, s *services.Session) MapView {
	markers, problems := services.BuildMarkers(ctx, it.geocoder, s.Entries(), it.log)
	return MapView{
		Center:   services.MapCenter,
		Zoom:     services.MapZoom,
		Markers:  markers,
		Problems: problems,
	}
}
