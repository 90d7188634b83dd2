package views

import (
	"go.uber.org/zap"

	"github.com/AnshRaj112/tripboard-backend/internal/services"
)

// SidebarItem is one entry of the overview menu.
type SidebarItem struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Sidebar lists the sections in menu order.
var Sidebar = []SidebarItem{
	{Name: "Home", Slug: "home"},
	{Name: "Itinerary", Slug: "itinerary"},
	{Name: "Flights", Slug: "flights"},
	{Name: "Notes", Slug: "notes"},
	{Name: "Hotels", Slug: "hotels"},
	{Name: "Must Try Eat", Slug: "foods"},
	{Name: "What to Pack", Slug: "packing"},
}

type HeroImage struct {
	URL     string `json:"url"`
	Caption string `json:"caption"`
	Width   int    `json:"width"`
}

type HomeView struct {
	Section string    `json:"section"`
	Title   string    `json:"title"`
	Text    string    `json:"text"`
	Hero    HeroImage `json:"hero"`
}

// ImageSource resolves an image public id to a delivery URL.
type ImageSource interface {
	ImageURL(publicID string) (string, error)
}

// NewHome builds the static home view. Without an image source, or when the
// source fails, the hero image is served from /static.
func NewHome(images ImageSource, heroID string, log *zap.Logger) HomeView {
	url := "/static/" + heroID + ".jpg"
	if images != nil {
		if u, err := images.ImageURL(heroID); err != nil {
			if log != nil {
				log.Warn("failed to build hero image URL", zap.Error(err))
			}
		} else {
			url = u
		}
	}
	return HomeView{
		Section: "home",
		Title:   "Welcome to Your Travel Itinerary!",
		Text:    "Here, you can manage your travel plans, locations, and activities. Navigate through the sidebar to edit your itinerary, add notes, and more.",
		Hero: HeroImage{
			URL:     url,
			Caption: "Your Trip Awaits!",
			Width:   services.HeroWidth,
		},
	}
}
