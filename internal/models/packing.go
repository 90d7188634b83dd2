package models

import "github.com/AnshRaj112/tripboard-backend/internal/store"

// MissingItemDescription is shown for packing documents without an item.
const MissingItemDescription = "No item description available"

type PackingItem struct {
	ID      string `json:"id"`
	Item    string `json:"item"`
	Checked bool   `json:"checked"`
}

func (p PackingItem) Fields() store.Fields {
	return store.Fields{"item": p.Item, "checked": p.Checked}
}

func PackingItemFromFields(id string, doc store.Fields) PackingItem {
	return PackingItem{
		ID:      id,
		Item:    doc.StringOr("item", MissingItemDescription),
		Checked: doc.Bool("checked"),
	}
}

// PackingForm adds or edits an item. New items start unchecked.
type PackingForm struct {
	Item    string `json:"item" yaml:"item" validate:"required"`
	Checked bool   `json:"checked" yaml:"checked"`
}

func PackingFormFrom(p PackingItem) PackingForm {
	return PackingForm{Item: p.Item, Checked: p.Checked}
}

func (f PackingForm) PackingItem() (PackingItem, error) {
	if err := check(f, "Please write an item before saving."); err != nil {
		return PackingItem{}, err
	}
	return PackingItem{Item: f.Item, Checked: f.Checked}, nil
}
