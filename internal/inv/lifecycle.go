package inv

import (
	"context"
	"fmt"
)

const (
	defaultPageSize = 50
	maxPageSize     = 100
)

// CreateAsset registers an asset and its first custody record, both DRAFT,
// in one transaction.
func (s *InvService) CreateAsset(ctx context.Context, id Identity, cmd CreateAsset) (*Asset, error) {
	if err := s.gate.Require(id, CapAssetWrite); err != nil {
		return nil, err
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	party, err := s.resolveParty(ctx, cmd.ResponsiblePersonID, cmd.Responsible)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	asset := &Asset{
		ID:              s.idgen.New(),
		Tag:             cmd.Tag,
		Description:     cmd.Description,
		Classification:  cmd.Classification,
		Brand:           cmd.Brand,
		Model:           cmd.Model,
		SerialNumber:    cmd.SerialNumber,
		InvoiceNumber:   cmd.InvoiceNumber,
		Notes:           cmd.Notes,
		Location:        cmd.Location,
		Condition:       cmd.Condition,
		AcquisitionCost: cmd.AcquisitionCost,
		Responsible:     party,
		State:           AssetDraft,
		CreatedBy:       id.ActorID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	record := &CustodyRecord{
		ID:          s.idgen.New(),
		AssetID:     asset.ID,
		State:       CustodyDraft,
		Responsible: party,
		Location:    asset.Location,
		CreatedBy:   id.ActorID,
		CreatedAt:   now,
	}

	err = s.db.Update(ctx, func(tx Store) error {
		existing, err := tx.GetAssetByTag(ctx, asset.Tag)
		if err != nil {
			return fmt.Errorf("checking tag: %w", err)
		}
		if existing != nil {
			return ConflictError(CodeDuplicateTag, "tag %s is already registered", asset.Tag)
		}
		if cmd.LocationID != "" {
			loc, err := linkedLocation(ctx, tx, cmd.LocationID)
			if err != nil {
				return err
			}
			asset.LocationID = loc.ID
			asset.Location = loc.Name
			record.Location = loc.Name
		}
		if cmd.SupplierID != "" {
			if _, err := linkedSupplier(ctx, tx, cmd.SupplierID); err != nil {
				return err
			}
			asset.SupplierID = cmd.SupplierID
		}
		if err := tx.InsertAsset(ctx, asset); err != nil {
			return fmt.Errorf("inserting asset: %w", err)
		}
		if err := tx.InsertCustodyRecord(ctx, record); err != nil {
			return fmt.Errorf("inserting custody record: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("asset created", "asset", asset.ID, "tag", asset.Tag, "actor", id.ActorID)
	return asset, nil
}

// ActivateAsset moves a DRAFT asset and its DRAFT custody record to ACTIVE.
// The asset needs an acquisition document and the custody record needs its
// signed evidence.
func (s *InvService) ActivateAsset(ctx context.Context, id Identity, assetID string) (*Asset, error) {
	if err := s.gate.Require(id, CapAssetWrite); err != nil {
		return nil, err
	}

	var out *Asset
	err := s.db.Update(ctx, func(tx Store) error {
		asset, err := requireAsset(ctx, tx, assetID)
		if err != nil {
			return err
		}
		if asset.State != AssetDraft {
			return StateError(CodeInvalidState, "asset %s is %s; only DRAFT assets can be activated", asset.Tag, asset.State)
		}
		if err := s.gate.RequireOwnerOrElevated(id, asset.CreatedBy, "activating an asset"); err != nil {
			return err
		}

		n, err := tx.CountEvidence(ctx, OwnerAsset, asset.ID, PurposeAcquisition, EvidenceDocument)
		if err != nil {
			return fmt.Errorf("counting acquisition evidence: %w", err)
		}
		if n == 0 {
			return PreconditionError(CodeMissingAcquisition, "asset %s has no acquisition document", asset.Tag)
		}

		record, err := tx.OpenCustodyRecord(ctx, asset.ID)
		if err != nil {
			return fmt.Errorf("loading custody record: %w", err)
		}
		if record == nil || record.State != CustodyDraft {
			return PreconditionError(CodeMissingCustodySign, "asset %s has no draft custody record", asset.Tag)
		}
		n, err = tx.CountEvidence(ctx, OwnerCustody, record.ID, PurposeCustodySigned, "")
		if err != nil {
			return fmt.Errorf("counting custody evidence: %w", err)
		}
		if n == 0 {
			return PreconditionError(CodeMissingCustodySign, "custody record %s has no signed evidence", record.ID)
		}

		before := *asset
		asset.State = AssetActive
		asset.UpdatedAt = s.clock.Now()
		if err := tx.UpdateAsset(ctx, asset); err != nil {
			return fmt.Errorf("updating asset: %w", err)
		}
		record.State = CustodyActive
		if err := tx.UpdateCustodyRecord(ctx, record); err != nil {
			return fmt.Errorf("updating custody record: %w", err)
		}
		if _, err := s.recordMovements(ctx, tx, id.ActorID, &before, asset, "activation"); err != nil {
			return err
		}
		out = asset
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("asset activated", "asset", out.ID, "tag", out.Tag, "actor", id.ActorID)
	return out, nil
}

// EditAsset applies a patch. Responsible-party changes on a DRAFT asset also
// rewrite the open custody record; on an ACTIVE asset they are rejected.
func (s *InvService) EditAsset(ctx context.Context, id Identity, cmd EditAsset) (*Asset, error) {
	if err := s.gate.Require(id, CapAssetWrite); err != nil {
		return nil, err
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var party *ResponsibleParty
	if cmd.ResponsiblePersonID != nil {
		p, err := s.resolveParty(ctx, *cmd.ResponsiblePersonID, ResponsibleParty{})
		if err != nil {
			return nil, err
		}
		party = &p
	} else if cmd.Responsible != nil {
		p := *cmd.Responsible
		p.PersonID = ""
		party = &p
	}

	var out *Asset
	err := s.db.Update(ctx, func(tx Store) error {
		asset, err := requireAsset(ctx, tx, cmd.AssetID)
		if err != nil {
			return err
		}
		if err := s.gate.CheckAssetEdit(id, asset, cmd.TouchesResponsible()); err != nil {
			return err
		}

		before := *asset
		applyAssetPatch(asset, &cmd)
		if party != nil {
			asset.Responsible = *party
		}
		if err := applyCatalogLinks(ctx, tx, asset, &cmd); err != nil {
			return err
		}
		changes := diffAssets(&before, asset)
		if len(changes) == 0 {
			out = asset
			return nil
		}

		if asset.Tag != before.Tag {
			existing, err := tx.GetAssetByTag(ctx, asset.Tag)
			if err != nil {
				return fmt.Errorf("checking tag: %w", err)
			}
			if existing != nil {
				return ConflictError(CodeDuplicateTag, "tag %s is already registered", asset.Tag)
			}
		}

		asset.UpdatedAt = s.clock.Now()
		if err := tx.UpdateAsset(ctx, asset); err != nil {
			return fmt.Errorf("updating asset: %w", err)
		}

		if asset.State == AssetDraft && (asset.Responsible != before.Responsible || asset.Location != before.Location) {
			record, err := tx.OpenCustodyRecord(ctx, asset.ID)
			if err != nil {
				return fmt.Errorf("loading custody record: %w", err)
			}
			if record != nil && record.State == CustodyDraft {
				record.Responsible = asset.Responsible
				record.Location = asset.Location
				if err := tx.UpdateCustodyRecord(ctx, record); err != nil {
					return fmt.Errorf("updating custody record: %w", err)
				}
			}
		}

		if _, err := s.recordMovements(ctx, tx, id.ActorID, &before, asset, cmd.Reason); err != nil {
			return err
		}
		out = asset
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("asset edited", "asset", out.ID, "actor", id.ActorID)
	return out, nil
}

func applyAssetPatch(a *Asset, cmd *EditAsset) {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&a.Tag, cmd.Tag)
	set(&a.Description, cmd.Description)
	set(&a.Brand, cmd.Brand)
	set(&a.Model, cmd.Model)
	set(&a.SerialNumber, cmd.SerialNumber)
	set(&a.InvoiceNumber, cmd.InvoiceNumber)
	set(&a.Notes, cmd.Notes)
	set(&a.Location, cmd.Location)
	if cmd.Classification != nil {
		a.Classification = *cmd.Classification
	}
	if cmd.Condition != nil {
		a.Condition = *cmd.Condition
	}
	if cmd.AcquisitionCost != nil {
		a.AcquisitionCost = *cmd.AcquisitionCost
	}
}

// applyCatalogLinks resolves the patch's catalog references through tx.
func applyCatalogLinks(ctx context.Context, tx Store, a *Asset, cmd *EditAsset) error {
	if cmd.Location != nil && cmd.LocationID == nil {
		a.LocationID = ""
	}
	if cmd.LocationID != nil {
		a.LocationID = ""
		if *cmd.LocationID != "" {
			loc, err := linkedLocation(ctx, tx, *cmd.LocationID)
			if err != nil {
				return err
			}
			a.LocationID = loc.ID
			a.Location = loc.Name
		}
	}
	if cmd.SupplierID != nil {
		a.SupplierID = ""
		if *cmd.SupplierID != "" {
			if _, err := linkedSupplier(ctx, tx, *cmd.SupplierID); err != nil {
				return err
			}
			a.SupplierID = *cmd.SupplierID
		}
	}
	return nil
}

// DeleteAsset removes a DRAFT asset with its custody records, assessments,
// evidence records and movement entries. Stored evidence files are left in
// the evidence store.
func (s *InvService) DeleteAsset(ctx context.Context, id Identity, assetID string) error {
	if err := s.gate.Require(id, CapAssetDelete); err != nil {
		return err
	}

	var tag string
	err := s.db.Update(ctx, func(tx Store) error {
		asset, err := requireAsset(ctx, tx, assetID)
		if err != nil {
			return err
		}
		if asset.State != AssetDraft {
			return StateError(CodeInvalidState, "asset %s is %s; only DRAFT assets can be deleted", asset.Tag, asset.State)
		}
		tag = asset.Tag
		if err := tx.DeleteAsset(ctx, asset.ID); err != nil {
			return fmt.Errorf("deleting asset: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("asset deleted", "asset", assetID, "tag", tag, "actor", id.ActorID)
	return nil
}

// GetAsset returns the asset with its custody history, assessments,
// evidence and movement log.
func (s *InvService) GetAsset(ctx context.Context, id Identity, assetID string) (*AssetDetail, error) {
	if err := s.gate.Require(id, CapAssetRead); err != nil {
		return nil, err
	}
	asset, err := requireAsset(ctx, s.db, assetID)
	if err != nil {
		return nil, err
	}

	d := &AssetDetail{Asset: asset}
	if d.Custody, err = s.db.ListCustodyRecords(ctx, asset.ID); err != nil {
		return nil, fmt.Errorf("listing custody records: %w", err)
	}
	if d.Assessments, err = s.db.ListAssessments(ctx, AssessmentFilter{AssetID: asset.ID}); err != nil {
		return nil, fmt.Errorf("listing assessments: %w", err)
	}
	if d.Evidence, err = s.db.ListAssetEvidence(ctx, asset.ID); err != nil {
		return nil, fmt.Errorf("listing evidence: %w", err)
	}
	if d.Movements, err = s.db.ListMovements(ctx, asset.ID); err != nil {
		return nil, fmt.Errorf("listing movements: %w", err)
	}
	return d, nil
}

// ListAssets returns one page of assets matching filter.
func (s *InvService) ListAssets(ctx context.Context, id Identity, filter AssetFilter) ([]*Asset, error) {
	if err := s.gate.Require(id, CapAssetRead); err != nil {
		return nil, err
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageSize
	}
	if filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	assets, err := s.db.ListAssets(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}
	return assets, nil
}

// ListMovements returns the asset's movement log, oldest first.
func (s *InvService) ListMovements(ctx context.Context, id Identity, assetID string) ([]*MovementEntry, error) {
	if err := s.gate.Require(id, CapAssetRead); err != nil {
		return nil, err
	}
	if _, err := requireAsset(ctx, s.db, assetID); err != nil {
		return nil, err
	}
	entries, err := s.db.ListMovements(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("listing movements: %w", err)
	}
	return entries, nil
}
