package inv

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// evidenceTarget is the owner an evidence file is being attached to, loaded
// and authorized.
type evidenceTarget struct {
	asset   *Asset
	custody *CustodyRecord
	purpose EvidencePurpose
}

// AttachEvidence stores the file and records it against its owner. The file
// is streamed to the evidence store before the transaction opens; the
// transaction re-checks the owner's state so a concurrent transition cannot
// slip through. Signed evidence on the pending DRAFT record of an ACTIVE
// asset promotes that record to ACTIVE in the same transaction.
func (s *InvService) AttachEvidence(ctx context.Context, id Identity, cmd AttachEvidence) (*Evidence, error) {
	if err := s.gate.Require(id, CapEvidenceWrite); err != nil {
		return nil, err
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.evidenceTarget(ctx, s.db, id, &cmd); err != nil {
		return nil, err
	}

	stored, err := s.evidence.Put(ctx, cmd.OwnerID, cmd.Kind, cmd.FileName, cmd.Content, cmd.Size)
	if err != nil {
		var typed *Error
		if errors.As(err, &typed) {
			return nil, err
		}
		return nil, fmt.Errorf("storing evidence: %w", err)
	}

	var out *Evidence
	promoted := false
	err = s.db.Update(ctx, func(tx Store) error {
		target, err := s.evidenceTarget(ctx, tx, id, &cmd)
		if err != nil {
			return err
		}
		ev := &Evidence{
			ID:         s.idgen.New(),
			AssetID:    target.asset.ID,
			OwnerType:  cmd.OwnerType,
			OwnerID:    cmd.OwnerID,
			Kind:       cmd.Kind,
			Purpose:    target.purpose,
			FileName:   cmd.FileName,
			FileRef:    stored.Ref,
			Size:       stored.Size,
			Checksum:   stored.Checksum,
			UploadedBy: id.ActorID,
			UploadedAt: s.clock.Now(),
		}
		if err := tx.InsertEvidence(ctx, ev); err != nil {
			return fmt.Errorf("inserting evidence: %w", err)
		}

		if target.purpose == PurposeCustodySigned && target.asset.State == AssetActive && target.custody.State == CustodyDraft {
			target.custody.State = CustodyActive
			if err := tx.UpdateCustodyRecord(ctx, target.custody); err != nil {
				return fmt.Errorf("promoting custody record: %w", err)
			}
			promoted = true
		}
		out = ev
		return nil
	})
	if err != nil {
		s.logger.Warn("evidence stored but not recorded", "ref", stored.Ref, "error", err)
		return nil, err
	}

	s.logger.Info("evidence attached", "evidence", out.ID, "owner_type", out.OwnerType, "owner", out.OwnerID, "purpose", out.Purpose, "actor", id.ActorID)
	if promoted {
		s.logger.Info("custody record activated", "record", cmd.OwnerID, "asset", out.AssetID, "actor", id.ActorID)
	}
	return out, nil
}

// evidenceTarget loads the owner, resolves the purpose and applies the
// attach rules for the owner's current state.
func (s *InvService) evidenceTarget(ctx context.Context, st Store, id Identity, cmd *AttachEvidence) (*evidenceTarget, error) {
	switch cmd.OwnerType {
	case OwnerAsset:
		asset, err := requireAsset(ctx, st, cmd.OwnerID)
		if err != nil {
			return nil, err
		}
		if err := s.gate.CheckAssetEvidence(id, asset); err != nil {
			return nil, err
		}
		return &evidenceTarget{asset: asset, purpose: PurposeAcquisition}, nil

	case OwnerCustody:
		record, err := requireCustody(ctx, st, cmd.OwnerID)
		if err != nil {
			return nil, err
		}
		asset, err := requireAsset(ctx, st, record.AssetID)
		if err != nil {
			return nil, err
		}
		if err := s.gate.CheckCustodyEvidence(id, asset, record); err != nil {
			return nil, err
		}
		purpose := cmd.Purpose
		if purpose == "" {
			purpose = PurposeCustodySigned
			if record.State == CustodyActive {
				purpose = PurposeCustodyCancellation
			}
		}
		if purpose == PurposeCustodySigned && record.State != CustodyDraft {
			return nil, StateError(CodeInvalidState, "custody record %s is %s; signed evidence belongs on a DRAFT record", record.ID, record.State)
		}
		if purpose == PurposeCustodyCancellation && record.State != CustodyActive {
			return nil, StateError(CodeInvalidState, "custody record %s is %s; cancellation evidence belongs on an ACTIVE record", record.ID, record.State)
		}
		return &evidenceTarget{asset: asset, custody: record, purpose: purpose}, nil

	case OwnerAssessment:
		record, err := requireAssessment(ctx, st, cmd.OwnerID)
		if err != nil {
			return nil, err
		}
		if err := s.gate.CheckAssessmentEvidence(id, record); err != nil {
			return nil, err
		}
		asset, err := requireAsset(ctx, st, record.AssetID)
		if err != nil {
			return nil, err
		}
		return &evidenceTarget{asset: asset, purpose: PurposeAssessmentReport}, nil
	}
	return nil, ValidationError(CodeInvalidField, "invalid owner type: %q", cmd.OwnerType)
}

// OpenEvidence writes the stored content of an evidence record to w.
func (s *InvService) OpenEvidence(ctx context.Context, id Identity, evidenceID string, w io.Writer) (*Evidence, error) {
	if err := s.gate.Require(id, CapAssetRead); err != nil {
		return nil, err
	}
	ev, err := s.db.GetEvidence(ctx, evidenceID)
	if err != nil {
		return nil, fmt.Errorf("loading evidence: %w", err)
	}
	if ev == nil {
		return nil, NotFoundError(CodeEvidenceNotFound, "evidence %s not found", evidenceID)
	}
	if err := s.evidence.Get(ctx, ev.FileRef, w); err != nil {
		return nil, fmt.Errorf("reading evidence content: %w", err)
	}
	return ev, nil
}

// ListEvidence returns the evidence attached to one owner.
func (s *InvService) ListEvidence(ctx context.Context, id Identity, ownerType OwnerType, ownerID string) ([]*Evidence, error) {
	if err := s.gate.Require(id, CapAssetRead); err != nil {
		return nil, err
	}
	ownerType, err := ParseOwnerType(string(ownerType))
	if err != nil {
		return nil, err
	}
	evidence, err := s.db.ListEvidence(ctx, ownerType, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing evidence: %w", err)
	}
	return evidence, nil
}
