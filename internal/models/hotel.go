package models

import (
	"time"

	"github.com/AnshRaj112/tripboard-backend/internal/store"
)

// HotelTimeFormatMessage is shown when either hotel time fails to parse.
const HotelTimeFormatMessage = "Invalid time format. Please use 'YYYY-MM-DD HH:MM AM/PM' format."

// HotelStay is a booked hotel. Check-out is not required to follow check-in.
type HotelStay struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	CheckInTime  time.Time `json:"check_in_time"`
	CheckOutTime time.Time `json:"check_out_time"`
}

func (h HotelStay) Fields() store.Fields {
	return store.Fields{
		"name":           h.Name,
		"location":       h.Location,
		"check_in_time":  h.CheckInTime.UTC(),
		"check_out_time": h.CheckOutTime.UTC(),
	}
}

func HotelStayFromFields(id string, doc store.Fields) HotelStay {
	return HotelStay{
		ID:           id,
		Name:         doc.String("name"),
		Location:     doc.String("location"),
		CheckInTime:  doc.Time("check_in_time"),
		CheckOutTime: doc.Time("check_out_time"),
	}
}

type HotelForm struct {
	Name         string `json:"name" yaml:"name" validate:"required"`
	Location     string `json:"location" yaml:"location" validate:"required"`
	CheckInTime  string `json:"check_in_time" yaml:"check_in_time" validate:"required"`
	CheckOutTime string `json:"check_out_time" yaml:"check_out_time" validate:"required"`
}

func HotelFormFrom(h HotelStay, c TripClock) HotelForm {
	return HotelForm{
		Name:         h.Name,
		Location:     h.Location,
		CheckInTime:  c.FormatHotel(h.CheckInTime),
		CheckOutTime: c.FormatHotel(h.CheckOutTime),
	}
}

func (f HotelForm) HotelStay(c TripClock) (HotelStay, error) {
	if err := check(f, "Please fill out all hotel details before saving."); err != nil {
		return HotelStay{}, err
	}
	in, inErr := c.ParseHotel(f.CheckInTime)
	out, outErr := c.ParseHotel(f.CheckOutTime)
	if inErr != nil || outErr != nil {
		return HotelStay{}, timeFormatError(HotelTimeFormatMessage, "check_in_time", "check_out_time")
	}
	return HotelStay{Name: f.Name, Location: f.Location, CheckInTime: in, CheckOutTime: out}, nil
}

// WithoutTimes clears both time fields.
func (f HotelForm) WithoutTimes() HotelForm {
	f.CheckInTime = ""
	f.CheckOutTime = ""
	return f
}
