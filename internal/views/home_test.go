package views

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeImages struct {
	url string
	err error
}

func (f fakeImages) ImageURL(publicID string) (string, error) {
	return f.url + publicID, f.err
}

func TestNewHome(t *testing.T) {
	view := NewHome(nil, "southKoreaHero", nil)
	assert.Equal(t, "/static/southKoreaHero.jpg", view.Hero.URL)
	assert.Equal(t, "Welcome to Your Travel Itinerary!", view.Title)
	assert.Equal(t, 700, view.Hero.Width)

	view = NewHome(fakeImages{url: "https://res.cloudinary.com/demo/image/upload/"}, "southKoreaHero", nil)
	assert.Equal(t, "https://res.cloudinary.com/demo/image/upload/southKoreaHero", view.Hero.URL)

	view = NewHome(fakeImages{err: errors.New("bad config")}, "southKoreaHero", nil)
	assert.Equal(t, "/static/southKoreaHero.jpg", view.Hero.URL)
}

func TestSidebar(t *testing.T) {
	var names []string
	for _, s := range Sidebar {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Home", "Itinerary", "Flights", "Notes", "Hotels", "Must Try Eat", "What to Pack"}, names)
}
