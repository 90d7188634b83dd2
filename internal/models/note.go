package models

import "github.com/AnshRaj112/tripboard-backend/internal/store"

// Defaults for notes missing a field.
const (
	UntitledSection = "Untitled"
	EmptySubsection = "No content"
)

type Note struct {
	ID         string `json:"id"`
	Section    string `json:"section"`
	Subsection string `json:"subsection"`
}

func (n Note) Fields() store.Fields {
	return store.Fields{"section": n.Section, "subsection": n.Subsection}
}

func NoteFromFields(id string, doc store.Fields) Note {
	return Note{
		ID:         id,
		Section:    doc.StringOr("section", UntitledSection),
		Subsection: doc.StringOr("subsection", EmptySubsection),
	}
}

type NoteForm struct {
	Section    string `json:"section" yaml:"section" validate:"required"`
	Subsection string `json:"subsection" yaml:"subsection" validate:"required"`
}

func NoteFormFrom(n Note) NoteForm {
	return NoteForm{Section: n.Section, Subsection: n.Subsection}
}

func (f NoteForm) Note() (Note, error) {
	if err := check(f, "Both fields must be filled!"); err != nil {
		return Note{}, err
	}
	return Note{Section: f.Section, Subsection: f.Subsection}, nil
}
