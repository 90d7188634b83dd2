package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/AnshRaj112/tripboard-backend/internal/models"
	"github.com/AnshRaj112/tripboard-backend/internal/store"
)

// SampleItinerary is the itinerary every new session starts from.
func SampleItinerary() []models.ItineraryEntry {
	return []models.ItineraryEntry{
		{Date: "11 August", Location: "Flight to South Korea", Activities: "Boarding and flight details"},
		{Date: "12 August", Location: "Arrival in South Korea", Activities: "Arrival and check-in"},
		{Date: "13-18 August", Location: "Seoul", Activities: "Explore Seoul: Gyeongbokgung Palace, N Seoul Tower, etc."},
		{Date: "18-19 August", Location: "Gyeongju", Activities: "Visit historic sites: Bulguksa Temple, Cheomseongdae Observatory"},
		{Date: "19-21 August", Location: "Busan", Activities: "Explore Busan: Haeundae Beach, Jagalchi Fish Market"},
		{Date: "24-25 August", Location: "Return to Denmark", Activities: "Flight back home"},
	}
}

// TripFile is the YAML layout shared by SEED_FILE and tripctl import:
// collection name to a list of records written the way the forms take them.
//
//	itinerary:
//	  - date: 11 August
//	    location: Flight to South Korea
//	    activities: Boarding and flight details
//	flights:
//	  - departure: CPH
//	    departure_time: 2025-08-11 16:00
type TripFile map[string][]yaml.Node

// ReadTripFile decodes a TripFile, rejecting unknown collection names.
func ReadTripFile(r io.Reader) (TripFile, error) {
	var f TripFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse trip file: %w", err)
	}
	for name := range f {
		if !store.IsCollection(name) {
			return nil, fmt.Errorf("unknown collection %q", name)
		}
	}
	return f, nil
}

// LoadSeed returns the itinerary seed: the sample rows when path is empty,
// otherwise the itinerary section of the YAML file at path.
func LoadSeed(path string) ([]models.ItineraryEntry, error) {
	if path == "" {
		return SampleItinerary(), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer fh.Close()

	f, err := ReadTripFile(fh)
	if err != nil {
		return nil, err
	}
	entries := make([]models.ItineraryEntry, 0, len(f[store.Itinerary]))
	for i, node := range f[store.Itinerary] {
		var form models.ItineraryAddForm
		if err := node.Decode(&form); err != nil {
			return nil, fmt.Errorf("itinerary[%d]: %w", i, err)
		}
		e, err := form.Entry()
		if err != nil {
			return nil, fmt.Errorf("itinerary[%d]: %w", i, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ImportResult counts the documents created per collection.
type ImportResult map[string]int

// Import validates every record in f and creates one document per record.
// Nothing is written when any record is invalid.
func Import(ctx context.Context, st store.Store, clock models.TripClock, f TripFile) (ImportResult, error) {
	type pending struct {
		collection string
		doc        store.Fields
	}
	var docs []pending

	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		for i, node := range f[name] {
			doc, err := decodeRecord(name, node, clock)
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", name, i, err)
			}
			docs = append(docs, pending{collection: name, doc: doc})
		}
	}

	result := make(ImportResult)
	for _, p := range docs {
		if _, err := st.Create(ctx, p.collection, p.doc); err != nil {
			return result, err
		}
		result[p.collection]++
	}
	return result, nil
}

func decodeRecord(collection string, node yaml.Node, clock models.TripClock) (store.Fields, error) {
	switch collection {
	case store.Itinerary:
		var form models.ItineraryAddForm
		if err := node.Decode(&form); err != nil {
			return nil, err
		}
		e, err := form.Entry()
		return e.Fields(), err
	case store.Flights:
		var form models.FlightForm
		if err := node.Decode(&form); err != nil {
			return nil, err
		}
		f, err := form.Flight(clock)
		return f.Fields(), err
	case store.Hotels:
		var form models.HotelForm
		if err := node.Decode(&form); err != nil {
			return nil, err
		}
		h, err := form.HotelStay(clock)
		return h.Fields(), err
	case store.Notes:
		var form models.NoteForm
		if err := node.Decode(&form); err != nil {
			return nil, err
		}
		n, err := form.Note()
		return n.Fields(), err
	case store.Foods:
		var form models.FoodForm
		if err := node.Decode(&form); err != nil {
			return nil, err
		}
		r, err := form.FoodRecommendation()
		return r.Fields(), err
	case store.Packing:
		var form models.PackingForm
		if err := node.Decode(&form); err != nil {
			return nil, err
		}
		p, err := form.PackingItem()
		return p.Fields(), err
	default:
		return nil, fmt.Errorf("unknown collection %q", collection)
	}
}
