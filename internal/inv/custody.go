package inv

import (
	"context"
	"fmt"
)

// ReassignCustody hands an ACTIVE asset to a new responsible party. The
// current ACTIVE record must already carry cancellation evidence. In one
// transaction the record is canceled, the asset snapshot is updated and a new
// DRAFT record is opened; it becomes ACTIVE once its signed evidence arrives.
func (s *InvService) ReassignCustody(ctx context.Context, id Identity, cmd ReassignCustody) (*CustodyRecord, error) {
	if err := s.gate.Require(id, CapCustodyWrite); err != nil {
		return nil, err
	}
	if err := s.gate.RequireElevated(id, "custody reassignment"); err != nil {
		return nil, err
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	party, err := s.resolveParty(ctx, cmd.ResponsiblePersonID, cmd.Responsible)
	if err != nil {
		return nil, err
	}

	var pending *CustodyRecord
	err = s.db.Update(ctx, func(tx Store) error {
		asset, err := requireAsset(ctx, tx, cmd.AssetID)
		if err != nil {
			return err
		}
		if asset.State != AssetActive {
			return StateError(CodeInvalidState, "asset %s is %s; only ACTIVE assets can be reassigned", asset.Tag, asset.State)
		}

		current, err := tx.OpenCustodyRecord(ctx, asset.ID)
		if err != nil {
			return fmt.Errorf("loading custody record: %w", err)
		}
		if current == nil {
			return StateError(CodeInvalidState, "asset %s has no open custody record", asset.Tag)
		}
		if current.State == CustodyDraft {
			return StateError(CodePendingCustody, "custody record %s is still awaiting signed evidence", current.ID)
		}

		n, err := tx.CountEvidence(ctx, OwnerCustody, current.ID, PurposeCustodyCancellation, "")
		if err != nil {
			return fmt.Errorf("counting cancellation evidence: %w", err)
		}
		if n == 0 {
			return PreconditionError(CodeMissingCancellation, "custody record %s has no cancellation evidence", current.ID)
		}

		now := s.clock.Now()
		current.State = CustodyCanceled
		current.CanceledBy = id.ActorID
		current.CanceledAt = &now
		if err := tx.UpdateCustodyRecord(ctx, current); err != nil {
			return fmt.Errorf("canceling custody record: %w", err)
		}

		before := *asset
		asset.Responsible = party
		if cmd.Location != nil {
			asset.Location = *cmd.Location
			asset.LocationID = ""
		}
		if cmd.LocationID != "" {
			loc, err := linkedLocation(ctx, tx, cmd.LocationID)
			if err != nil {
				return err
			}
			asset.LocationID = loc.ID
			asset.Location = loc.Name
		}
		asset.UpdatedAt = now
		if err := tx.UpdateAsset(ctx, asset); err != nil {
			return fmt.Errorf("updating asset: %w", err)
		}

		pending = &CustodyRecord{
			ID:          s.idgen.New(),
			AssetID:     asset.ID,
			State:       CustodyDraft,
			Responsible: party,
			Location:    asset.Location,
			CreatedBy:   id.ActorID,
			CreatedAt:   now,
		}
		if err := tx.InsertCustodyRecord(ctx, pending); err != nil {
			return fmt.Errorf("inserting custody record: %w", err)
		}

		_, err = s.recordMovements(ctx, tx, id.ActorID, &before, asset, cmd.Reason)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("custody reassigned", "asset", cmd.AssetID, "record", pending.ID, "actor", id.ActorID)
	return pending, nil
}

// ListCustody returns the asset's custody records, newest first.
func (s *InvService) ListCustody(ctx context.Context, id Identity, assetID string) ([]*CustodyRecord, error) {
	if err := s.gate.Require(id, CapAssetRead); err != nil {
		return nil, err
	}
	if _, err := requireAsset(ctx, s.db, assetID); err != nil {
		return nil, err
	}
	records, err := s.db.ListCustodyRecords(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("listing custody records: %w", err)
	}
	return records, nil
}
