package views

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/AnshRaj112/tripboard-backend/internal/apperror"
	"github.com/AnshRaj112/tripboard-backend/internal/models"
	"github.com/AnshRaj112/tripboard-backend/internal/store"
)

var qr160 = models.FlightForm{
	Departure:     "CPH",
	Arrival:       "ICN",
	DepartureTime: "2025-08-11 16:00",
	ArrivalTime:   "2025-08-12 10:05",
	FlightNumber:  "QR160",
}

func TestFlights_AddCreatesOneDocument(t *testing.T) {
	st := newSpyStore()
	flights := NewSection(FlightSchema(cetClock(t)), st, nil)
	ctx := context.Background()

	out, err := flights.Add(ctx, qr160)
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "Flight from CPH to ICN added successfully!", out.Message)

	docs := listCollection(t, st, store.Flights)
	require.Len(t, docs, 1)
	for id, doc := range docs {
		assert.NotEmpty(t, id)
		assert.Equal(t, "QR160", doc["flight_number"])
		assert.Equal(t, time.Date(2025, 8, 11, 14, 0, 0, 0, time.UTC), doc["departure_time"])
	}

	view := flights.Render(ctx)
	require.Len(t, view.Records, 1)
	require.Len(t, view.EditForms, 1)
	assert.Nil(t, view.Notice)
	assert.Equal(t, "Flight QR160", view.EditForms[0].Label)
	assert.Equal(t, "2025-08-11 16:00 CET", view.EditForms[0].Values.DepartureTime)
	assert.Equal(t, "2025-08-12 10:05 CET", view.EditForms[0].Values.ArrivalTime)
	assert.Equal(t, models.FlightForm{}, view.AddForm)
}

func TestFlights_BadTimeClearsBothFields(t *testing.T) {
	st := newSpyStore()
	flights := NewSection(FlightSchema(cetClock(t)), st, nil)

	form := qr160
	form.ArrivalTime = "12/08/2025 10:05"

	out, err := flights.Add(context.Background(), form)

	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.False(t, out.Success)
	assert.Equal(t, "Invalid time format. Please use 'YYYY-MM-DD HH:MM' format in CET.", out.Message)
	echoed, ok := out.Form.(models.FlightForm)
	require.True(t, ok)
	assert.Empty(t, echoed.DepartureTime)
	assert.Empty(t, echoed.ArrivalTime)
	assert.Equal(t, "QR160", echoed.FlightNumber)
	assert.Empty(t, st.Mutations())
}

func TestFlights_EditWithEmptyFieldDoesNotWrite(t *testing.T) {
	st := newSpyStore()
	flights := NewSection(FlightSchema(cetClock(t)), st, nil)
	ctx := context.Background()
	_, err := flights.Add(ctx, qr160)
	require.NoError(t, err)
	id := flights.Render(ctx).Records[0].ID

	form := qr160
	form.Arrival = ""
	out, err := flights.Save(ctx, id, form)

	require.Error(t, err)
	assert.Equal(t, map[string]string{"arrival": "is required"}, out.Fields)
	assert.Equal(t, []string{"create flights"}, st.Mutations())
	assert.Equal(t, "ICN", listCollection(t, st, store.Flights)[id]["arrival"])
}

func TestFlights_SaveOverwritesAtID(t *testing.T) {
	st := newSpyStore()
	flights := NewSection(FlightSchema(cetClock(t)), st, nil)
	ctx := context.Background()
	_, err := flights.Add(ctx, qr160)
	require.NoError(t, err)
	id := flights.Render(ctx).Records[0].ID

	form := flights.Render(ctx).EditForms[0].Values
	form.FlightNumber = "QR161"
	out, err := flights.Save(ctx, id, form)

	require.NoError(t, err)
	assert.Equal(t, "Flight QR161 updated successfully!", out.Message)
	docs := listCollection(t, st, store.Flights)
	require.Len(t, docs, 1)
	assert.Equal(t, "QR161", docs[id]["flight_number"])
	assert.Equal(t, time.Date(2025, 8, 11, 14, 0, 0, 0, time.UTC), docs[id]["departure_time"])
}

func TestFlights_SortedByDeparture(t *testing.T) {
	st := newSpyStore()
	flights := NewSection(FlightSchema(cetClock(t)), st, nil)
	ctx := context.Background()

	home := models.FlightForm{Departure: "ICN", Arrival: "CPH", DepartureTime: "2025-08-25 01:30", ArrivalTime: "2025-08-25 13:40", FlightNumber: "QR859"}
	_, err := flights.Add(ctx, home)
	require.NoError(t, err)
	_, err = flights.Add(ctx, qr160)
	require.NoError(t, err)

	view := flights.Render(ctx)
	require.Len(t, view.Records, 2)
	assert.Equal(t, "QR160", view.Records[0].FlightNumber)
	assert.Equal(t, "QR859", view.Records[1].FlightNumber)
}

func TestNotes_DeleteUnknownIsNoop(t *testing.T) {
	st := newSpyStore()
	notes := NewSection(NoteSchema(), st, nil)

	out, err := notes.Remove(context.Background(), "abc123")

	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "Document abc123 deleted successfully.", out.Message)
	assert.Empty(t, listCollection(t, st, store.Notes))
}

func TestNotes_DeleteExisting(t *testing.T) {
	st := newSpyStore()
	notes := NewSection(NoteSchema(), st, nil)
	ctx := context.Background()
	_, err := notes.Add(ctx, models.NoteForm{Section: "Visa", Subsection: "K-ETA approved"})
	require.NoError(t, err)
	id := notes.Render(ctx).Records[0].ID

	out, err := notes.Remove(ctx, id)

	require.NoError(t, err)
	assert.Equal(t, "Note 'Visa' deleted!", out.Message)
	assert.NotContains(t, listCollection(t, st, store.Notes), id)
}

func TestNotes_RenderEmptyAndSorted(t *testing.T) {
	st := newSpyStore()
	notes := NewSection(NoteSchema(), st, nil)
	ctx := context.Background()

	view := notes.Render(ctx)
	require.NotNil(t, view.Notice)
	assert.Equal(t, LevelWarning, view.Notice.Level)
	assert.Equal(t, "No notes found. Start by adding one below.", view.Notice.Message)
	assert.NotNil(t, view.Records)

	for _, section := range []string{"Transport", "Money", "Visa"} {
		_, err := notes.Add(ctx, models.NoteForm{Section: section, Subsection: "-"})
		require.NoError(t, err)
	}
	_, err := st.Create(ctx, store.Notes, store.Fields{})
	require.NoError(t, err)

	view = notes.Render(ctx)
	var sections []string
	for _, n := range view.Records {
		sections = append(sections, n.Section)
	}
	assert.Equal(t, []string{"Money", "Transport", "Untitled", "Visa"}, sections)
}

func TestSection_ReadErrorDegrades(t *testing.T) {
	st := newSpyStore()
	st.readErr = errors.New("connection refused")
	hotels := NewSection(HotelSchema(cetClock(t)), st, nil)

	view := hotels.Render(context.Background())

	require.NotNil(t, view.Notice)
	assert.Equal(t, LevelError, view.Notice.Level)
	assert.Contains(t, view.Notice.Message, "connection refused")
	assert.Empty(t, view.Records)
	assert.NotNil(t, view.EditForms)
}

func TestSection_WriteErrorReported(t *testing.T) {
	st := newSpyStore()
	core, logs := observer.New(zapcore.InfoLevel)
	foods := NewSection(FoodSchema(), st, zap.New(core))
	ctx := context.Background()
	_, err := foods.Add(ctx, models.FoodForm{Food: "Tteokbokki", WhereToGet: "Myeongdong"})
	require.NoError(t, err)
	id := foods.Render(ctx).Records[0].ID

	st.writeErr = errors.New("quota exceeded")
	out, err := foods.Save(ctx, id, models.FoodForm{Food: "Hotteok", WhereToGet: "Nampo"})

	var we *apperror.WriteError
	require.ErrorAs(t, err, &we)
	assert.False(t, out.Success)
	assert.Contains(t, out.Message, "quota exceeded")
	assert.Equal(t, 1, logs.FilterMessage("failed to update record").Len())
	assert.Equal(t, "Tteokbokki", listCollection(t, st.Store, store.Foods)[id]["food"])
}

func TestSection_DeleteErrorReported(t *testing.T) {
	st := newSpyStore()
	st.deleteErr = errors.New("permission denied")
	hotels := NewSection(HotelSchema(cetClock(t)), st, nil)

	out, err := hotels.Remove(context.Background(), "66b8c1f0a1b2c3d4e5f60718")

	var de *apperror.DeleteError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, 502, apperror.Status(err))
	assert.Contains(t, out.Message, "Error deleting document")
}

func TestSection_MissingID(t *testing.T) {
	notes := NewSection(NoteSchema(), newSpyStore(), nil)

	_, err := notes.Save(context.Background(), "", models.NoteForm{Section: "a", Subsection: "b"})
	assert.True(t, apperror.IsValidation(err))
	_, err = notes.Remove(context.Background(), "")
	assert.True(t, apperror.IsValidation(err))
}

func TestHotels_NoOrderingCheck(t *testing.T) {
	st := newSpyStore()
	hotels := NewSection(HotelSchema(cetClock(t)), st, nil)

	out, err := hotels.Add(context.Background(), models.HotelForm{
		Name:         "Hanok Stay",
		Location:     "Gyeongju",
		CheckInTime:  "2025-08-19 03:00 PM",
		CheckOutTime: "2025-08-18 11:00 AM",
	})

	require.NoError(t, err)
	assert.Equal(t, "Hotel Hanok Stay added successfully!", out.Message)
}
