package inv

import (
	"context"
	"fmt"
	"strings"
)

type assetChange struct {
	category MovementCategory
	before   string
	after    string
}

// diffAssets returns one change per category whose values differ.
func diffAssets(before, after *Asset) []assetChange {
	var changes []assetChange
	if before.Responsible != after.Responsible {
		changes = append(changes, assetChange{MovementResponsibleChange, before.Responsible.String(), after.Responsible.String()})
	}
	if before.Location != after.Location || before.LocationID != after.LocationID {
		changes = append(changes, assetChange{MovementLocationChange, before.Location, after.Location})
	}

	var b, a []string
	field := func(name, x, y string) {
		if x != y {
			b = append(b, name+"="+x)
			a = append(a, name+"="+y)
		}
	}
	field("tag", before.Tag, after.Tag)
	field("description", before.Description, after.Description)
	field("classification", string(before.Classification), string(after.Classification))
	field("brand", before.Brand, after.Brand)
	field("model", before.Model, after.Model)
	field("serial_number", before.SerialNumber, after.SerialNumber)
	field("invoice_number", before.InvoiceNumber, after.InvoiceNumber)
	field("notes", before.Notes, after.Notes)
	field("condition", string(before.Condition), string(after.Condition))
	field("acquisition_cost", formatCost(before.AcquisitionCost), formatCost(after.AcquisitionCost))
	field("supplier", before.SupplierID, after.SupplierID)
	field("state", string(before.State), string(after.State))
	if len(b) > 0 {
		changes = append(changes, assetChange{MovementOther, strings.Join(b, "; "), strings.Join(a, "; ")})
	}
	return changes
}

// ChangedCategories lists the movement categories that differ between two
// versions of an asset, in log order.
func ChangedCategories(before, after *Asset) []MovementCategory {
	changes := diffAssets(before, after)
	cats := make([]MovementCategory, len(changes))
	for i, c := range changes {
		cats[i] = c.category
	}
	return cats
}

// recordMovements appends one entry per changed category through tx.
// It returns the number of entries written.
func (s *InvService) recordMovements(ctx context.Context, tx Store, actorID string, before, after *Asset, reason string) (int, error) {
	changes := diffAssets(before, after)
	now := s.clock.Now()
	for _, c := range changes {
		entry := &MovementEntry{
			ID:        s.idgen.New(),
			AssetID:   after.ID,
			ActorID:   actorID,
			Category:  c.category,
			Before:    c.before,
			After:     c.after,
			Reason:    reason,
			CreatedAt: now,
		}
		if err := tx.AppendMovement(ctx, entry); err != nil {
			return 0, fmt.Errorf("appending %s movement: %w", c.category, err)
		}
	}
	return len(changes), nil
}
