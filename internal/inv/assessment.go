package inv

import (
	"context"
	"fmt"
)

// CreateAssessment opens a DRAFT write-off report on an ACTIVE asset. The
// coordination comes from the override or the asset classification and must
// resolve to a configured signer.
func (s *InvService) CreateAssessment(ctx context.Context, id Identity, cmd CreateAssessment) (*AssessmentRecord, error) {
	if err := s.gate.Require(id, CapAssessmentWrite); err != nil {
		return nil, err
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	asset, err := requireAsset(ctx, s.db, cmd.AssetID)
	if err != nil {
		return nil, err
	}
	if asset.State != AssetActive {
		return nil, StateError(CodeInvalidState, "asset %s is %s; assessments need an ACTIVE asset", asset.Tag, asset.State)
	}

	code := cmd.Coordination
	if code == "" {
		code = s.routing.Resolve(asset.Classification)
	}
	if _, err := s.resolveSigner(ctx, code); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	record := &AssessmentRecord{
		ID:                 s.idgen.New(),
		AssetID:            asset.ID,
		State:              AssessmentDraft,
		Coordination:       code,
		Body:               cmd.Body,
		AdministrativeUnit: cmd.AdministrativeUnit,
		PhysicalLocation:   cmd.PhysicalLocation,
		CreatedBy:          id.ActorID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if record.PhysicalLocation == "" {
		record.PhysicalLocation = asset.Location
	}

	err = s.db.Update(ctx, func(tx Store) error {
		current, err := requireAsset(ctx, tx, asset.ID)
		if err != nil {
			return err
		}
		if current.State != AssetActive {
			return StateError(CodeInvalidState, "asset %s is %s; assessments need an ACTIVE asset", current.Tag, current.State)
		}
		draft, err := tx.DraftAssessment(ctx, asset.ID)
		if err != nil {
			return fmt.Errorf("checking draft assessment: %w", err)
		}
		if draft != nil {
			return ConflictError(CodeDraftAssessment, "asset %s already has draft assessment %s", asset.Tag, draft.ID)
		}
		if err := tx.InsertAssessment(ctx, record); err != nil {
			return fmt.Errorf("inserting assessment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("assessment created", "assessment", record.ID, "asset", asset.ID, "coordination", code, "actor", id.ActorID)
	return record, nil
}

// EditAssessment patches a DRAFT assessment.
func (s *InvService) EditAssessment(ctx context.Context, id Identity, cmd EditAssessment) (*AssessmentRecord, error) {
	if err := s.gate.Require(id, CapAssessmentWrite); err != nil {
		return nil, err
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var out *AssessmentRecord
	err := s.db.Update(ctx, func(tx Store) error {
		record, err := requireAssessment(ctx, tx, cmd.AssessmentID)
		if err != nil {
			return err
		}
		if err := s.gate.CheckAssessmentChange(id, record, "editing"); err != nil {
			return err
		}
		if cmd.Body != nil {
			record.Body = *cmd.Body
		}
		if cmd.AdministrativeUnit != nil {
			record.AdministrativeUnit = *cmd.AdministrativeUnit
		}
		if cmd.PhysicalLocation != nil {
			record.PhysicalLocation = *cmd.PhysicalLocation
		}
		record.UpdatedAt = s.clock.Now()
		if err := tx.UpdateAssessment(ctx, record); err != nil {
			return fmt.Errorf("updating assessment: %w", err)
		}
		out = record
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SignAssessment signs a DRAFT assessment. In one transaction the record is
// SIGNED with the signer snapshot, the asset becomes RETIRED and every open
// custody record of the asset is CANCELED.
func (s *InvService) SignAssessment(ctx context.Context, id Identity, assessmentID string) (*AssessmentRecord, error) {
	if err := s.gate.Require(id, CapAssessmentWrite); err != nil {
		return nil, err
	}

	record, err := requireAssessment(ctx, s.db, assessmentID)
	if err != nil {
		return nil, err
	}
	if err := s.gate.CheckAssessmentChange(id, record, "signing"); err != nil {
		return nil, err
	}
	if err := s.requireReportEvidence(ctx, s.db, record); err != nil {
		return nil, err
	}
	signer, err := s.resolveSigner(ctx, record.Coordination)
	if err != nil {
		return nil, err
	}

	var out *AssessmentRecord
	err = s.db.Update(ctx, func(tx Store) error {
		record, err := requireAssessment(ctx, tx, assessmentID)
		if err != nil {
			return err
		}
		if err := s.gate.CheckAssessmentChange(id, record, "signing"); err != nil {
			return err
		}
		if err := s.requireReportEvidence(ctx, tx, record); err != nil {
			return err
		}
		asset, err := requireAsset(ctx, tx, record.AssetID)
		if err != nil {
			return err
		}
		if asset.State != AssetActive {
			return StateError(CodeInvalidState, "asset %s is %s and cannot be retired", asset.Tag, asset.State)
		}

		now := s.clock.Now()
		record.State = AssessmentSigned
		record.SignerName = signer.SignerName
		record.SignerTitle = signer.SignerTitle
		record.SignedBy = id.ActorID
		record.SignedAt = &now
		record.UpdatedAt = now
		if err := tx.UpdateAssessment(ctx, record); err != nil {
			return fmt.Errorf("signing assessment: %w", err)
		}

		before := *asset
		asset.State = AssetRetired
		asset.UpdatedAt = now
		if err := tx.UpdateAsset(ctx, asset); err != nil {
			return fmt.Errorf("retiring asset: %w", err)
		}

		records, err := tx.ListCustodyRecords(ctx, asset.ID)
		if err != nil {
			return fmt.Errorf("listing custody records: %w", err)
		}
		for _, r := range records {
			if !r.State.Open() {
				continue
			}
			r.State = CustodyCanceled
			r.CanceledBy = id.ActorID
			r.CanceledAt = &now
			if err := tx.UpdateCustodyRecord(ctx, r); err != nil {
				return fmt.Errorf("canceling custody record %s: %w", r.ID, err)
			}
		}

		if _, err := s.recordMovements(ctx, tx, id.ActorID, &before, asset, "assessment "+record.ID+" signed"); err != nil {
			return err
		}
		out = record
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("assessment signed", "assessment", out.ID, "asset", out.AssetID, "signer", out.SignerName, "actor", id.ActorID)
	return out, nil
}

func (s *InvService) requireReportEvidence(ctx context.Context, st Store, record *AssessmentRecord) error {
	n, err := st.CountEvidence(ctx, OwnerAssessment, record.ID, PurposeAssessmentReport, "")
	if err != nil {
		return fmt.Errorf("counting report evidence: %w", err)
	}
	if n == 0 {
		return PreconditionError(CodeMissingReport, "assessment %s has no document or photo attached", record.ID)
	}
	return nil
}

// CancelAssessment cancels a DRAFT assessment. Canceling a CANCELED record
// returns it unchanged. The asset is never touched.
func (s *InvService) CancelAssessment(ctx context.Context, id Identity, assessmentID string) (*AssessmentRecord, error) {
	if err := s.gate.Require(id, CapAssessmentWrite); err != nil {
		return nil, err
	}
	if err := s.gate.RequireElevated(id, "canceling an assessment"); err != nil {
		return nil, err
	}

	var out *AssessmentRecord
	changed := false
	err := s.db.Update(ctx, func(tx Store) error {
		record, err := requireAssessment(ctx, tx, assessmentID)
		if err != nil {
			return err
		}
		switch record.State {
		case AssessmentCanceled:
			out = record
			return nil
		case AssessmentSigned:
			return StateError(CodeInvalidState, "assessment %s is SIGNED and cannot be canceled", record.ID)
		}

		now := s.clock.Now()
		record.State = AssessmentCanceled
		record.CanceledBy = id.ActorID
		record.CanceledAt = &now
		record.UpdatedAt = now
		if err := tx.UpdateAssessment(ctx, record); err != nil {
			return fmt.Errorf("canceling assessment: %w", err)
		}
		out = record
		changed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	if changed {
		s.logger.Info("assessment canceled", "assessment", out.ID, "actor", id.ActorID)
	}
	return out, nil
}

// GetAssessment returns the assessment with its asset and evidence.
func (s *InvService) GetAssessment(ctx context.Context, id Identity, assessmentID string) (*AssessmentDetail, error) {
	if err := s.gate.Require(id, CapAssessmentRead); err != nil {
		return nil, err
	}
	record, err := requireAssessment(ctx, s.db, assessmentID)
	if err != nil {
		return nil, err
	}
	asset, err := requireAsset(ctx, s.db, record.AssetID)
	if err != nil {
		return nil, err
	}
	evidence, err := s.db.ListEvidence(ctx, OwnerAssessment, record.ID)
	if err != nil {
		return nil, fmt.Errorf("listing evidence: %w", err)
	}
	return &AssessmentDetail{Assessment: record, Asset: asset, Evidence: evidence}, nil
}

// ListAssessments returns assessments matching filter, newest first.
func (s *InvService) ListAssessments(ctx context.Context, id Identity, filter AssessmentFilter) ([]*AssessmentRecord, error) {
	if err := s.gate.Require(id, CapAssessmentRead); err != nil {
		return nil, err
	}
	if filter.Limit <= 0 || filter.Limit > maxPageSize {
		filter.Limit = maxPageSize
	}
	records, err := s.db.ListAssessments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing assessments: %w", err)
	}
	return records, nil
}
