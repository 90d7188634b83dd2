// Package views holds the screen controllers. Every section follows the same
// cycle: list the collection, render one edit form per record keyed by id,
// render an empty add form, and turn each submitted action into one store
// call followed by a fresh render.
package views

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/AnshRaj112/tripboard-backend/internal/apperror"
	"github.com/AnshRaj112/tripboard-backend/internal/logger"
	"github.com/AnshRaj112/tripboard-backend/internal/store"
)

// Notice levels.
const (
	LevelError   = "error"
	LevelWarning = "warning"
)

// Notice is the inline message shown above a section.
type Notice struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Outcome reports the result of one action. Form echoes the submitted input
// when the action was rejected.
type Outcome struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
	Form    any               `json:"form,omitempty"`
}

// EditForm is the pre-filled form of one record.
type EditForm[F any] struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Values F      `json:"values"`
}

// SectionView is the rendered state of a section.
type SectionView[R any, F any] struct {
	Section   string        `json:"section"`
	Title     string        `json:"title"`
	Records   []R           `json:"records"`
	EditForms []EditForm[F] `json:"edit_forms"`
	AddForm   F             `json:"add_form"`
	Notice    *Notice       `json:"notice,omitempty"`
}

// Messages builds the success messages of a section.
type Messages[R any] struct {
	Added   func(R) string
	Updated func(R) string
	Removed func(R) string
}

// Schema describes one entity type to the generic Section controller.
type Schema[R any, F any] struct {
	Collection string
	Slug       string
	Title      string
	// Empty is shown as a warning when the collection has no records.
	Empty string

	Decode  func(id string, doc store.Fields) R
	Encode  func(R) store.Fields
	ID      func(R) string
	Build   func(F) (R, error)
	Prefill func(R) F
	Label   func(R) string
	Less    func(a, b R) bool

	// Echo returns the form sent back after Build rejected it. Nil echoes
	// the input unchanged.
	Echo func(F, error) F
	// PrepareAdd adjusts a built record before it is created.
	PrepareAdd func(R) R

	Messages Messages[R]
}

// Section is the generic CRUD controller over one collection.
type Section[R any, F any] struct {
	schema Schema[R, F]
	store  store.Store
	log    *zap.Logger
}

func NewSection[R any, F any](schema Schema[R, F], st store.Store, log *zap.Logger) *Section[R, F] {
	return &Section[R, F]{
		schema: schema,
		store:  st,
		log:    logger.Named(log, schema.Slug),
	}
}

func (s *Section[R, F]) Schema() Schema[R, F] { return s.schema }

// Render lists the collection. A failed read degrades to an empty section
// with an error notice.
func (s *Section[R, F]) Render(ctx context.Context) SectionView[R, F] {
	view := SectionView[R, F]{
		Section:   s.schema.Slug,
		Title:     s.schema.Title,
		Records:   []R{},
		EditForms: []EditForm[F]{},
	}

	records, err := s.records(ctx)
	if err != nil {
		s.log.Warn("failed to list records", zap.Error(err))
		view.Notice = &Notice{Level: LevelError, Message: fmt.Sprintf("Error retrieving data: %v", err)}
		return view
	}
	if len(records) == 0 && s.schema.Empty != "" {
		view.Notice = &Notice{Level: LevelWarning, Message: s.schema.Empty}
	}

	for _, r := range records {
		view.Records = append(view.Records, r)
		view.EditForms = append(view.EditForms, EditForm[F]{
			ID:     s.schema.ID(r),
			Label:  s.schema.Label(r),
			Values: s.schema.Prefill(r),
		})
	}
	return view
}

// Add validates form and creates a new record.
func (s *Section[R, F]) Add(ctx context.Context, form F) (Outcome, error) {
	rec, err := s.schema.Build(form)
	if err != nil {
		return s.rejected(form, err), err
	}
	if s.schema.PrepareAdd != nil {
		rec = s.schema.PrepareAdd(rec)
	}

	id, err := s.store.Create(ctx, s.schema.Collection, s.schema.Encode(rec))
	if err != nil {
		s.log.Error("failed to create record", zap.Error(err))
		return Outcome{Message: fmt.Sprintf("Error saving data: %v", err)}, err
	}
	s.log.Info("record created", zap.String("id", id))
	return Outcome{Success: true, Message: s.schema.Messages.Added(rec)}, nil
}

// Save validates form and overwrites the record at id with it.
func (s *Section[R, F]) Save(ctx context.Context, id string, form F) (Outcome, error) {
	if id == "" {
		err := apperror.Invalid("Missing record id.")
		return Outcome{Message: err.Message}, err
	}
	rec, err := s.schema.Build(form)
	if err != nil {
		return s.rejected(form, err), err
	}

	if err := s.store.Set(ctx, s.schema.Collection, id, s.schema.Encode(rec)); err != nil {
		s.log.Error("failed to update record", zap.String("id", id), zap.Error(err))
		return Outcome{Message: fmt.Sprintf("Error saving data: %v", err)}, err
	}
	s.log.Info("record updated", zap.String("id", id))
	return Outcome{Success: true, Message: s.schema.Messages.Updated(rec)}, nil
}

// Remove deletes the record at id. Deleting an unknown id succeeds.
func (s *Section[R, F]) Remove(ctx context.Context, id string) (Outcome, error) {
	if id == "" {
		err := apperror.Invalid("Missing record id.")
		return Outcome{Message: err.Message}, err
	}

	// The label is only for the message; a failed lookup does not block the delete.
	message := fmt.Sprintf("Document %s deleted successfully.", id)
	if docs, err := s.store.List(ctx, s.schema.Collection); err == nil {
		if doc, ok := docs[id]; ok {
			message = s.schema.Messages.Removed(s.schema.Decode(id, doc))
		}
	}

	if err := s.store.Delete(ctx, s.schema.Collection, id); err != nil {
		s.log.Error("failed to delete record", zap.String("id", id), zap.Error(err))
		return Outcome{Message: fmt.Sprintf("Error deleting document: %v", err)}, err
	}
	s.log.Info("record deleted", zap.String("id", id))
	return Outcome{Success: true, Message: message}, nil
}

// records lists and decodes the collection, ordered by Less then id.
func (s *Section[R, F]) records(ctx context.Context) ([]R, error) {
	docs, err := s.store.List(ctx, s.schema.Collection)
	if err != nil {
		return nil, err
	}
	out := make([]R, 0, len(docs))
	for id, doc := range docs {
		out = append(out, s.schema.Decode(id, doc))
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if s.schema.Less != nil {
			if s.schema.Less(a, b) {
				return true
			}
			if s.schema.Less(b, a) {
				return false
			}
		}
		return s.schema.ID(a) < s.schema.ID(b)
	})
	return out, nil
}

func (s *Section[R, F]) rejected(form F, err error) Outcome {
	if s.schema.Echo != nil {
		form = s.schema.Echo(form, err)
	}
	out := rejectedOutcome(form, err)
	s.log.Debug("action rejected", zap.String("reason", out.Message))
	return out
}

// rejectedOutcome reports a validation failure and echoes form.
func rejectedOutcome(form any, err error) Outcome {
	out := Outcome{Message: err.Error(), Form: form}
	var ve *apperror.ValidationError
	if errors.As(err, &ve) {
		out.Message = ve.Message
		if len(ve.Fields) > 0 {
			out.Fields = ve.Fields
		}
	}
	return out
}
