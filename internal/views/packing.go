package views

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/AnshRaj112/tripboard-backend/internal/models"
	"github.com/AnshRaj112/tripboard-backend/internal/store"
)

// Packing is the packing list section plus the bulk checkbox save.
type Packing struct {
	*Section[models.PackingItem, models.PackingForm]
}

func NewPacking(st store.Store, log *zap.Logger) *Packing {
	return &Packing{Section: NewSection(PackingSchema(), st, log)}
}

// SaveChecks writes the checked state of every listed item, overwriting each
// document at its id. Ids that are not in the list are skipped and reported.
func (p *Packing) SaveChecks(ctx context.Context, checks map[string]bool) (Outcome, error) {
	docs, err := p.store.List(ctx, p.schema.Collection)
	if err != nil {
		p.log.Error("failed to list packing items", zap.Error(err))
		return Outcome{Message: fmt.Sprintf("Error retrieving data: %v", err)}, err
	}

	ids := make([]string, 0, len(checks))
	for id := range checks {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var skipped []string
	for _, id := range ids {
		doc, ok := docs[id]
		if !ok {
			skipped = append(skipped, id)
			continue
		}
		if doc.Bool("checked") == checks[id] {
			continue
		}
		// Other fields are written back as stored.
		updated := doc.Clone()
		updated["checked"] = checks[id]
		if err := p.store.Set(ctx, p.schema.Collection, id, updated); err != nil {
			p.log.Error("failed to save packing item", zap.String("id", id), zap.Error(err))
			return Outcome{Message: fmt.Sprintf("Error saving data: %v", err)}, err
		}
	}

	message := "Packing list updated!"
	if len(skipped) > 0 {
		p.log.Warn("unknown packing items skipped", zap.Strings("ids", skipped))
		message += fmt.Sprintf(" Skipped unknown items: %s.", strings.Join(skipped, ", "))
	}
	return Outcome{Success: true, Message: message}, nil
}
