package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"inv-go/internal/database/sqlc"
	"inv-go/internal/inv"
)

// sqliteStore implements inv.Store over a set of sqlc queries. The same type
// serves plain connections and transactions.
type sqliteStore struct {
	q *sqlc.Queries
}

var _ inv.Store = (*sqliteStore)(nil)

// Asset operations

func (s *sqliteStore) GetAsset(ctx context.Context, id string) (*inv.Asset, error) {
	row, err := s.q.GetAsset(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding asset: %w", err)
	}
	return toAsset(row)
}

func (s *sqliteStore) GetAssetByTag(ctx context.Context, tag string) (*inv.Asset, error) {
	row, err := s.q.GetAssetByTag(ctx, tag)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding asset by tag: %w", err)
	}
	return toAsset(row)
}

func (s *sqliteStore) ListAssets(ctx context.Context, filter inv.AssetFilter) ([]*inv.Asset, error) {
	limit := int64(filter.Limit)
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.q.ListAssets(ctx, sqlc.ListAssetsParams{
		State:          string(filter.State),
		Classification: string(filter.Classification),
		Query:          filter.Query,
		Limit:          limit,
		Offset:         int64(filter.Offset),
		LocationID:     filter.LocationID,
	})
	if err != nil {
		return nil, fmt.Errorf("listing assets: %w", err)
	}

	result := make([]*inv.Asset, len(rows))
	for i := range rows {
		if result[i], err = toAsset(rows[i]); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *sqliteStore) InsertAsset(ctx context.Context, a *inv.Asset) error {
	err := s.q.InsertAsset(ctx, sqlc.InsertAssetParams{
		ID:                  a.ID,
		Tag:                 a.Tag,
		Description:         a.Description,
		Classification:      string(a.Classification),
		Brand:               a.Brand,
		Model:               a.Model,
		SerialNumber:        a.SerialNumber,
		InvoiceNumber:       a.InvoiceNumber,
		Notes:               a.Notes,
		Location:            a.Location,
		Condition:           string(a.Condition),
		AcquisitionCost:     costToNull(a.AcquisitionCost),
		ResponsiblePersonID: nullString(a.Responsible.PersonID),
		ResponsibleName:     a.Responsible.Name,
		ResponsibleTaxID:    a.Responsible.TaxID,
		ResponsiblePosition: a.Responsible.Position,
		State:               string(a.State),
		CreatedBy:           a.CreatedBy,
		CreatedAt:           a.CreatedAt,
		UpdatedAt:           a.UpdatedAt,
		LocationID:          nullString(a.LocationID),
		SupplierID:          nullString(a.SupplierID),
	})
	if err != nil {
		return uniqueViolation(err, inv.CodeDuplicateTag, "tag %s is already registered", a.Tag)
	}
	return nil
}

func (s *sqliteStore) UpdateAsset(ctx context.Context, a *inv.Asset) error {
	err := s.q.UpdateAsset(ctx, sqlc.UpdateAssetParams{
		ID:                  a.ID,
		Tag:                 a.Tag,
		Description:         a.Description,
		Classification:      string(a.Classification),
		Brand:               a.Brand,
		Model:               a.Model,
		SerialNumber:        a.SerialNumber,
		InvoiceNumber:       a.InvoiceNumber,
		Notes:               a.Notes,
		Location:            a.Location,
		Condition:           string(a.Condition),
		AcquisitionCost:     costToNull(a.AcquisitionCost),
		ResponsiblePersonID: nullString(a.Responsible.PersonID),
		ResponsibleName:     a.Responsible.Name,
		ResponsibleTaxID:    a.Responsible.TaxID,
		ResponsiblePosition: a.Responsible.Position,
		State:               string(a.State),
		UpdatedAt:           a.UpdatedAt,
		LocationID:          nullString(a.LocationID),
		SupplierID:          nullString(a.SupplierID),
	})
	if err != nil {
		return uniqueViolation(err, inv.CodeDuplicateTag, "tag %s is already registered", a.Tag)
	}
	return nil
}

// DeleteAsset removes the asset's dependents and then the asset row.
func (s *sqliteStore) DeleteAsset(ctx context.Context, id string) error {
	steps := []struct {
		what string
		fn   func(context.Context, string) error
	}{
		{"evidence", s.q.DeleteEvidenceByAsset},
		{"movements", s.q.DeleteMovementsByAsset},
		{"assessments", s.q.DeleteAssessmentsByAsset},
		{"custody records", s.q.DeleteCustodyRecordsByAsset},
		{"asset", s.q.DeleteAssetByID},
	}
	for _, step := range steps {
		if err := step.fn(ctx, id); err != nil {
			return fmt.Errorf("deleting %s: %w", step.what, err)
		}
	}
	return nil
}

// Custody record operations

func (s *sqliteStore) GetCustodyRecord(ctx context.Context, id string) (*inv.CustodyRecord, error) {
	row, err := s.q.GetCustodyRecord(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding custody record: %w", err)
	}
	return toCustodyRecord(row), nil
}

func (s *sqliteStore) OpenCustodyRecord(ctx context.Context, assetID string) (*inv.CustodyRecord, error) {
	row, err := s.q.GetOpenCustodyRecord(ctx, assetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding open custody record: %w", err)
	}
	return toCustodyRecord(row), nil
}

func (s *sqliteStore) ListCustodyRecords(ctx context.Context, assetID string) ([]*inv.CustodyRecord, error) {
	rows, err := s.q.ListCustodyRecordsByAsset(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("listing custody records: %w", err)
	}

	result := make([]*inv.CustodyRecord, len(rows))
	for i := range rows {
		result[i] = toCustodyRecord(rows[i])
	}
	return result, nil
}

func (s *sqliteStore) InsertCustodyRecord(ctx context.Context, r *inv.CustodyRecord) error {
	err := s.q.InsertCustodyRecord(ctx, sqlc.InsertCustodyRecordParams{
		ID:                  r.ID,
		AssetID:             r.AssetID,
		State:               string(r.State),
		ResponsiblePersonID: nullString(r.Responsible.PersonID),
		ResponsibleName:     r.Responsible.Name,
		ResponsibleTaxID:    r.Responsible.TaxID,
		ResponsiblePosition: r.Responsible.Position,
		Location:            r.Location,
		CreatedBy:           r.CreatedBy,
		CreatedAt:           r.CreatedAt,
		CanceledBy:          nullString(r.CanceledBy),
		CanceledAt:          nullTime(r.CanceledAt),
	})
	if err != nil {
		return uniqueViolation(err, inv.CodeOpenCustodyExists, "asset %s already has an open custody record", r.AssetID)
	}
	return nil
}

func (s *sqliteStore) UpdateCustodyRecord(ctx context.Context, r *inv.CustodyRecord) error {
	err := s.q.UpdateCustodyRecord(ctx, sqlc.UpdateCustodyRecordParams{
		ID:                  r.ID,
		State:               string(r.State),
		ResponsiblePersonID: nullString(r.Responsible.PersonID),
		ResponsibleName:     r.Responsible.Name,
		ResponsibleTaxID:    r.Responsible.TaxID,
		ResponsiblePosition: r.Responsible.Position,
		Location:            r.Location,
		CanceledBy:          nullString(r.CanceledBy),
		CanceledAt:          nullTime(r.CanceledAt),
	})
	if err != nil {
		return uniqueViolation(err, inv.CodeOpenCustodyExists, "asset %s already has an open custody record", r.AssetID)
	}
	return nil
}

// Assessment operations

func (s *sqliteStore) GetAssessment(ctx context.Context, id string) (*inv.AssessmentRecord, error) {
	row, err := s.q.GetAssessment(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding assessment: %w", err)
	}
	return toAssessment(row), nil
}

func (s *sqliteStore) DraftAssessment(ctx context.Context, assetID string) (*inv.AssessmentRecord, error) {
	row, err := s.q.GetDraftAssessmentByAsset(ctx, assetID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding draft assessment: %w", err)
	}
	return toAssessment(row), nil
}

func (s *sqliteStore) ListAssessments(ctx context.Context, filter inv.AssessmentFilter) ([]*inv.AssessmentRecord, error) {
	limit := int64(filter.Limit)
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.q.ListAssessments(ctx, sqlc.ListAssessmentsParams{
		AssetID:   filter.AssetID,
		State:     string(filter.State),
		CreatedBy: filter.CreatedBy,
		Limit:     limit,
	})
	if err != nil {
		return nil, fmt.Errorf("listing assessments: %w", err)
	}

	result := make([]*inv.AssessmentRecord, len(rows))
	for i := range rows {
		result[i] = toAssessment(rows[i])
	}
	return result, nil
}

func (s *sqliteStore) InsertAssessment(ctx context.Context, r *inv.AssessmentRecord) error {
	err := s.q.InsertAssessment(ctx, sqlc.InsertAssessmentParams{
		ID:                 r.ID,
		AssetID:            r.AssetID,
		State:              string(r.State),
		Coordination:       r.Coordination,
		Body:               r.Body,
		AdministrativeUnit: r.AdministrativeUnit,
		PhysicalLocation:   r.PhysicalLocation,
		SignerName:         r.SignerName,
		SignerTitle:        r.SignerTitle,
		SignedBy:           nullString(r.SignedBy),
		SignedAt:           nullTime(r.SignedAt),
		CanceledBy:         nullString(r.CanceledBy),
		CanceledAt:         nullTime(r.CanceledAt),
		CreatedBy:          r.CreatedBy,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	})
	if err != nil {
		return uniqueViolation(err, inv.CodeDraftAssessment, "asset %s already has a draft assessment", r.AssetID)
	}
	return nil
}

func (s *sqliteStore) UpdateAssessment(ctx context.Context, r *inv.AssessmentRecord) error {
	err := s.q.UpdateAssessment(ctx, sqlc.UpdateAssessmentParams{
		ID:                 r.ID,
		State:              string(r.State),
		Body:               r.Body,
		AdministrativeUnit: r.AdministrativeUnit,
		PhysicalLocation:   r.PhysicalLocation,
		SignerName:         r.SignerName,
		SignerTitle:        r.SignerTitle,
		SignedBy:           nullString(r.SignedBy),
		SignedAt:           nullTime(r.SignedAt),
		CanceledBy:         nullString(r.CanceledBy),
		CanceledAt:         nullTime(r.CanceledAt),
		UpdatedAt:          r.UpdatedAt,
	})
	if err != nil {
		return uniqueViolation(err, inv.CodeDraftAssessment, "asset %s already has a draft assessment", r.AssetID)
	}
	return nil
}

// Evidence operations

func (s *sqliteStore) GetEvidence(ctx context.Context, id string) (*inv.Evidence, error) {
	row, err := s.q.GetEvidence(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding evidence: %w", err)
	}
	return toEvidence(row), nil
}

func (s *sqliteStore) InsertEvidence(ctx context.Context, e *inv.Evidence) error {
	err := s.q.InsertEvidence(ctx, sqlc.InsertEvidenceParams{
		ID:         e.ID,
		AssetID:    e.AssetID,
		OwnerType:  string(e.OwnerType),
		OwnerID:    e.OwnerID,
		Kind:       string(e.Kind),
		Purpose:    string(e.Purpose),
		FileName:   e.FileName,
		FileRef:    e.FileRef,
		Size:       e.Size,
		Checksum:   e.Checksum,
		UploadedBy: e.UploadedBy,
		UploadedAt: e.UploadedAt,
	})
	if err != nil {
		return fmt.Errorf("inserting evidence: %w", err)
	}
	return nil
}

func (s *sqliteStore) ListEvidence(ctx context.Context, ownerType inv.OwnerType, ownerID string) ([]*inv.Evidence, error) {
	rows, err := s.q.ListEvidenceByOwner(ctx, sqlc.ListEvidenceByOwnerParams{
		OwnerType: string(ownerType),
		OwnerID:   ownerID,
	})
	if err != nil {
		return nil, fmt.Errorf("listing evidence: %w", err)
	}
	return toEvidenceList(rows), nil
}

func (s *sqliteStore) ListAssetEvidence(ctx context.Context, assetID string) ([]*inv.Evidence, error) {
	rows, err := s.q.ListEvidenceByAsset(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("listing asset evidence: %w", err)
	}
	return toEvidenceList(rows), nil
}

func (s *sqliteStore) CountEvidence(ctx context.Context, ownerType inv.OwnerType, ownerID string, purpose inv.EvidencePurpose, kind inv.EvidenceKind) (int, error) {
	n, err := s.q.CountEvidence(ctx, sqlc.CountEvidenceParams{
		OwnerType: string(ownerType),
		OwnerID:   ownerID,
		Purpose:   string(purpose),
		Kind:      string(kind),
	})
	if err != nil {
		return 0, fmt.Errorf("counting evidence: %w", err)
	}
	return int(n), nil
}

// Movement log operations

func (s *sqliteStore) AppendMovement(ctx context.Context, m *inv.MovementEntry) error {
	err := s.q.InsertMovement(ctx, sqlc.InsertMovementParams{
		ID:          m.ID,
		AssetID:     m.AssetID,
		ActorID:     m.ActorID,
		Category:    string(m.Category),
		BeforeValue: m.Before,
		AfterValue:  m.After,
		Reason:      m.Reason,
		CreatedAt:   m.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("appending movement: %w", err)
	}
	return nil
}

func (s *sqliteStore) ListMovements(ctx context.Context, assetID string) ([]*inv.MovementEntry, error) {
	rows, err := s.q.ListMovementsByAsset(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("listing movements: %w", err)
	}

	result := make([]*inv.MovementEntry, len(rows))
	for i, m := range rows {
		result[i] = &inv.MovementEntry{
			ID:        m.ID,
			AssetID:   m.AssetID,
			ActorID:   m.ActorID,
			Category:  inv.MovementCategory(m.Category),
			Before:    m.BeforeValue,
			After:     m.AfterValue,
			Reason:    m.Reason,
			CreatedAt: m.CreatedAt,
		}
	}
	return result, nil
}

// Directory operations

func (s *sqliteStore) GetPerson(ctx context.Context, id string) (*inv.Person, error) {
	row, err := s.q.GetPerson(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding person: %w", err)
	}
	return toPerson(row), nil
}

func (s *sqliteStore) ListPeople(ctx context.Context, includeInactive bool) ([]*inv.Person, error) {
	rows, err := s.q.ListPersonnel(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("listing personnel: %w", err)
	}

	result := make([]*inv.Person, len(rows))
	for i := range rows {
		result[i] = toPerson(rows[i])
	}
	return result, nil
}

func (s *sqliteStore) SavePerson(ctx context.Context, p *inv.Person) error {
	err := s.q.UpsertPerson(ctx, sqlc.UpsertPersonParams{
		ID:        p.ID,
		Name:      p.Name,
		TaxID:     p.TaxID,
		Position:  p.Position,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("saving person: %w", err)
	}
	return nil
}

func (s *sqliteStore) GetSignerConfig(ctx context.Context, coordination string) (*inv.SignerConfig, error) {
	row, err := s.q.GetSignerConfig(ctx, coordination)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding signer configuration: %w", err)
	}
	return toSignerConfig(row), nil
}

func (s *sqliteStore) ListSignerConfigs(ctx context.Context) ([]*inv.SignerConfig, error) {
	rows, err := s.q.ListSignerConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing signer configurations: %w", err)
	}

	result := make([]*inv.SignerConfig, len(rows))
	for i := range rows {
		result[i] = toSignerConfig(rows[i])
	}
	return result, nil
}

func (s *sqliteStore) SaveSignerConfig(ctx context.Context, c *inv.SignerConfig) error {
	err := s.q.UpsertSignerConfig(ctx, sqlc.UpsertSignerConfigParams{
		Coordination: c.Coordination,
		Title:        c.Title,
		SignerName:   c.SignerName,
		SignerTitle:  c.SignerTitle,
		Active:       c.Active,
		UpdatedAt:    c.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("saving signer configuration: %w", err)
	}
	return nil
}

// Catalog operations

func (s *sqliteStore) GetLocation(ctx context.Context, id string) (*inv.Location, error) {
	row, err := s.q.GetLocation(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding location: %w", err)
	}
	return toLocation(row), nil
}

func (s *sqliteStore) ListLocations(ctx context.Context) ([]*inv.Location, error) {
	rows, err := s.q.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}

	result := make([]*inv.Location, len(rows))
	for i := range rows {
		result[i] = toLocation(rows[i])
	}
	return result, nil
}

func (s *sqliteStore) SaveLocation(ctx context.Context, l *inv.Location) error {
	err := s.q.UpsertLocation(ctx, sqlc.UpsertLocationParams{
		ID:        l.ID,
		Code:      l.Code,
		Name:      l.Name,
		SortOrder: int64(l.Order),
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	})
	if err != nil {
		return uniqueViolation(err, inv.CodeDuplicateLocation, "location code %s is already in use", l.Code)
	}
	return nil
}

func (s *sqliteStore) DeleteLocation(ctx context.Context, id string) error {
	if err := s.q.DeleteLocation(ctx, id); err != nil {
		return fmt.Errorf("deleting location: %w", err)
	}
	return nil
}

func (s *sqliteStore) CountAssetsAtLocation(ctx context.Context, locationID string) (int, error) {
	n, err := s.q.CountAssetsByLocation(ctx, nullString(locationID))
	if err != nil {
		return 0, fmt.Errorf("counting assets at location: %w", err)
	}
	return int(n), nil
}

func (s *sqliteStore) GetSupplier(ctx context.Context, id string) (*inv.Supplier, error) {
	row, err := s.q.GetSupplier(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("finding supplier: %w", err)
	}
	return toSupplier(row), nil
}

func (s *sqliteStore) ListSuppliers(ctx context.Context) ([]*inv.Supplier, error) {
	rows, err := s.q.ListSuppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing suppliers: %w", err)
	}

	result := make([]*inv.Supplier, len(rows))
	for i := range rows {
		result[i] = toSupplier(rows[i])
	}
	return result, nil
}

func (s *sqliteStore) SaveSupplier(ctx context.Context, sup *inv.Supplier) error {
	err := s.q.UpsertSupplier(ctx, sqlc.UpsertSupplierParams{
		ID:        sup.ID,
		Name:      sup.Name,
		TaxID:     sup.TaxID,
		Phone:     sup.Phone,
		Email:     sup.Email,
		Address:   sup.Address,
		CreatedAt: sup.CreatedAt,
		UpdatedAt: sup.UpdatedAt,
	})
	if err != nil {
		return fmt.Errorf("saving supplier: %w", err)
	}
	return nil
}

func (s *sqliteStore) DeleteSupplier(ctx context.Context, id string) error {
	if err := s.q.DeleteSupplier(ctx, id); err != nil {
		return fmt.Errorf("deleting supplier: %w", err)
	}
	return nil
}

func (s *sqliteStore) CountAssetsBySupplier(ctx context.Context, supplierID string) (int, error) {
	n, err := s.q.CountAssetsBySupplier(ctx, nullString(supplierID))
	if err != nil {
		return 0, fmt.Errorf("counting assets by supplier: %w", err)
	}
	return int(n), nil
}

// LookupPerson returns the directory entry only while it is active.
func (s *sqliteStore) LookupPerson(ctx context.Context, personID string) (*inv.Person, error) {
	p, err := s.GetPerson(ctx, personID)
	if err != nil || p == nil || !p.Active {
		return nil, err
	}
	return p, nil
}

// SignerByCoordination returns the coordination's signer only while it is active.
func (s *sqliteStore) SignerByCoordination(ctx context.Context, code string) (*inv.SignerConfig, error) {
	c, err := s.GetSignerConfig(ctx, code)
	if err != nil || c == nil || !c.Active {
		return nil, err
	}
	return c, nil
}

// Row conversions

func toAsset(r sqlc.Asset) (*inv.Asset, error) {
	cost, err := costFromNull(r.AcquisitionCost)
	if err != nil {
		return nil, fmt.Errorf("asset %s: %w", r.ID, err)
	}
	return &inv.Asset{
		ID:              r.ID,
		Tag:             r.Tag,
		Description:     r.Description,
		Classification:  inv.Classification(r.Classification),
		Brand:           r.Brand,
		Model:           r.Model,
		SerialNumber:    r.SerialNumber,
		InvoiceNumber:   r.InvoiceNumber,
		Notes:           r.Notes,
		Location:        r.Location,
		LocationID:      r.LocationID.String,
		Condition:       inv.Condition(r.Condition),
		AcquisitionCost: cost,
		SupplierID:      r.SupplierID.String,
		Responsible: inv.ResponsibleParty{
			PersonID: r.ResponsiblePersonID.String,
			Name:     r.ResponsibleName,
			TaxID:    r.ResponsibleTaxID,
			Position: r.ResponsiblePosition,
		},
		State:     inv.AssetState(r.State),
		CreatedBy: r.CreatedBy,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}, nil
}

func toCustodyRecord(r sqlc.CustodyRecord) *inv.CustodyRecord {
	return &inv.CustodyRecord{
		ID:      r.ID,
		AssetID: r.AssetID,
		State:   inv.CustodyState(r.State),
		Responsible: inv.ResponsibleParty{
			PersonID: r.ResponsiblePersonID.String,
			Name:     r.ResponsibleName,
			TaxID:    r.ResponsibleTaxID,
			Position: r.ResponsiblePosition,
		},
		Location:   r.Location,
		CreatedBy:  r.CreatedBy,
		CreatedAt:  r.CreatedAt,
		CanceledBy: r.CanceledBy.String,
		CanceledAt: fromNullTime(r.CanceledAt),
	}
}

func toAssessment(r sqlc.Assessment) *inv.AssessmentRecord {
	return &inv.AssessmentRecord{
		ID:                 r.ID,
		AssetID:            r.AssetID,
		State:              inv.AssessmentState(r.State),
		Coordination:       r.Coordination,
		Body:               r.Body,
		AdministrativeUnit: r.AdministrativeUnit,
		PhysicalLocation:   r.PhysicalLocation,
		SignerName:         r.SignerName,
		SignerTitle:        r.SignerTitle,
		SignedBy:           r.SignedBy.String,
		SignedAt:           fromNullTime(r.SignedAt),
		CanceledBy:         r.CanceledBy.String,
		CanceledAt:         fromNullTime(r.CanceledAt),
		CreatedBy:          r.CreatedBy,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

func toEvidence(r sqlc.Evidence) *inv.Evidence {
	return &inv.Evidence{
		ID:         r.ID,
		AssetID:    r.AssetID,
		OwnerType:  inv.OwnerType(r.OwnerType),
		OwnerID:    r.OwnerID,
		Kind:       inv.EvidenceKind(r.Kind),
		Purpose:    inv.EvidencePurpose(r.Purpose),
		FileName:   r.FileName,
		FileRef:    r.FileRef,
		Size:       r.Size,
		Checksum:   r.Checksum,
		UploadedBy: r.UploadedBy,
		UploadedAt: r.UploadedAt,
	}
}

func toEvidenceList(rows []sqlc.Evidence) []*inv.Evidence {
	result := make([]*inv.Evidence, len(rows))
	for i := range rows {
		result[i] = toEvidence(rows[i])
	}
	return result
}

func toPerson(r sqlc.Personnel) *inv.Person {
	return &inv.Person{
		ID:        r.ID,
		Name:      r.Name,
		TaxID:     r.TaxID,
		Position:  r.Position,
		Active:    r.Active,
		CreatedAt: r.CreatedAt,
	}
}

func toSignerConfig(r sqlc.SignerConfig) *inv.SignerConfig {
	return &inv.SignerConfig{
		Coordination: r.Coordination,
		Title:        r.Title,
		SignerName:   r.SignerName,
		SignerTitle:  r.SignerTitle,
		Active:       r.Active,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toLocation(r sqlc.Location) *inv.Location {
	return &inv.Location{
		ID:        r.ID,
		Code:      r.Code,
		Name:      r.Name,
		Order:     int(r.SortOrder),
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toSupplier(r sqlc.Supplier) *inv.Supplier {
	return &inv.Supplier{
		ID:        r.ID,
		Name:      r.Name,
		TaxID:     r.TaxID,
		Phone:     r.Phone,
		Email:     r.Email,
		Address:   r.Address,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func fromNullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// Costs are stored as decimal text so no precision is lost.
func costToNull(d decimal.NullDecimal) sql.NullString {
	if !d.Valid {
		return sql.NullString{}
	}
	return sql.NullString{String: d.Decimal.String(), Valid: true}
}

func costFromNull(s sql.NullString) (decimal.NullDecimal, error) {
	if !s.Valid {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(s.String)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("parsing acquisition cost %q: %w", s.String, err)
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}
