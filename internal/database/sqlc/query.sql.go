// Queries for query.sql. Regenerate with sqlc (see ../generate.go) after
// changing the queries or the schema.

package sqlc

import (
	"context"
	"database/sql"
	"time"
)

const getAsset = `-- name: GetAsset :one
SELECT id, tag, description, classification, brand, model, serial_number, invoice_number, notes, location, condition, acquisition_cost, responsible_person_id, responsible_name, responsible_tax_id, responsible_position, state, created_by, created_at, updated_at, location_id, supplier_id
FROM assets WHERE id = ?1
`

func (q *Queries) GetAsset(ctx context.Context, id string) (Asset, error) {
	row := q.db.QueryRowContext(ctx, getAsset, id)
	var i Asset
	err := row.Scan(
		&i.ID,
		&i.Tag,
		&i.Description,
		&i.Classification,
		&i.Brand,
		&i.Model,
		&i.SerialNumber,
		&i.InvoiceNumber,
		&i.Notes,
		&i.Location,
		&i.Condition,
		&i.AcquisitionCost,
		&i.ResponsiblePersonID,
		&i.ResponsibleName,
		&i.ResponsibleTaxID,
		&i.ResponsiblePosition,
		&i.State,
		&i.CreatedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.LocationID,
		&i.SupplierID,
	)
	return i, err
}

const getAssetByTag = `-- name: GetAssetByTag :one
SELECT id, tag, description, classification, brand, model, serial_number, invoice_number, notes, location, condition, acquisition_cost, responsible_person_id, responsible_name, responsible_tax_id, responsible_position, state, created_by, created_at, updated_at, location_id, supplier_id
FROM assets WHERE tag = ?1
`

func (q *Queries) GetAssetByTag(ctx context.Context, tag string) (Asset, error) {
	row := q.db.QueryRowContext(ctx, getAssetByTag, tag)
	var i Asset
	err := row.Scan(
		&i.ID,
		&i.Tag,
		&i.Description,
		&i.Classification,
		&i.Brand,
		&i.Model,
		&i.SerialNumber,
		&i.InvoiceNumber,
		&i.Notes,
		&i.Location,
		&i.Condition,
		&i.AcquisitionCost,
		&i.ResponsiblePersonID,
		&i.ResponsibleName,
		&i.ResponsibleTaxID,
		&i.ResponsiblePosition,
		&i.State,
		&i.CreatedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.LocationID,
		&i.SupplierID,
	)
	return i, err
}

const listAssets = `-- name: ListAssets :many
SELECT id, tag, description, classification, brand, model, serial_number, invoice_number, notes, location, condition, acquisition_cost, responsible_person_id, responsible_name, responsible_tax_id, responsible_position, state, created_by, created_at, updated_at, location_id, supplier_id
FROM assets
WHERE (?1 = '' OR state = ?1)
  AND (?2 = '' OR classification = ?2)
  AND (?3 = '' OR tag LIKE '%' || ?3 || '%' OR description LIKE '%' || ?3 || '%' OR responsible_name LIKE '%' || ?3 || '%')
  AND (?6 = '' OR location_id = ?6)
ORDER BY created_at DESC, tag
LIMIT ?4 OFFSET ?5
`

type ListAssetsParams struct {
	State          string
	Classification string
	Query          string
	Limit          int64
	Offset         int64
	LocationID     string
}

func (q *Queries) ListAssets(ctx context.Context, arg ListAssetsParams) ([]Asset, error) {
	rows, err := q.db.QueryContext(ctx, listAssets,
		arg.State,
		arg.Classification,
		arg.Query,
		arg.Limit,
		arg.Offset,
		arg.LocationID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Asset
	for rows.Next() {
		var i Asset
		if err := rows.Scan(
			&i.ID,
			&i.Tag,
			&i.Description,
			&i.Classification,
			&i.Brand,
			&i.Model,
			&i.SerialNumber,
			&i.InvoiceNumber,
			&i.Notes,
			&i.Location,
			&i.Condition,
			&i.AcquisitionCost,
			&i.ResponsiblePersonID,
			&i.ResponsibleName,
			&i.ResponsibleTaxID,
			&i.ResponsiblePosition,
			&i.State,
			&i.CreatedBy,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.LocationID,
			&i.SupplierID,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const insertAsset = `-- name: InsertAsset :exec
INSERT INTO assets (id, tag, description, classification, brand, model, serial_number, invoice_number, notes, location, condition, acquisition_cost, responsible_person_id, responsible_name, responsible_tax_id, responsible_position, state, created_by, created_at, updated_at, location_id, supplier_id)
VALUES (?1, ?2, ?3, ?4, ?5, ?6, ?7, ?8, ?9, ?10, ?11, ?12, ?13, ?14, ?15, ?16, ?17, ?18, ?19, ?20, ?21, ?22)
`

type InsertAssetParams struct {
	ID                  string
	Tag                 string
	Description         string
	Classification      string
	Brand               string
	Model               string
	SerialNumber        string
	InvoiceNumber       string
	Notes               string
	Location            string
	Condition           string
	AcquisitionCost     sql.NullString
	ResponsiblePersonID sql.NullString
	ResponsibleName     string
	ResponsibleTaxID    string
	ResponsiblePosition string
	State               string
	CreatedBy           string
	CreatedAt           time.Time
	UpdatedAt           time.Time
	LocationID          sql.NullString
	SupplierID          sql.NullString
}

func (q *Queries) InsertAsset(ctx context.Context, arg InsertAssetParams) error {
	_, err := q.db.ExecContext(ctx, insertAsset,
		arg.ID,
		arg.Tag,
		arg.Description,
		arg.Classification,
		arg.Brand,
		arg.Model,
		arg.SerialNumber,
		arg.InvoiceNumber,
		arg.Notes,
		arg.Location,
		arg.Condition,
		arg.AcquisitionCost,
		arg.ResponsiblePersonID,
		arg.ResponsibleName,
		arg.ResponsibleTaxID,
		arg.ResponsiblePosition,
		arg.State,
		arg.CreatedBy,
		arg.CreatedAt,
		arg.UpdatedAt,
		arg.LocationID,
		arg.SupplierID,
	)
	return err
}

const updateAsset = `-- name: UpdateAsset :exec
UPDATE assets
SET tag = ?2, description = ?3, classification = ?4, brand = ?5, model = ?6, serial_number = ?7, invoice_number = ?8, notes = ?9, location = ?10, condition = ?11, acquisition_cost = ?12, responsible_person_id = ?13, responsible_name = ?14, responsible_tax_id = ?15, responsible_position = ?16, state = ?17, updated_at = ?18, location_id = ?19, supplier_id = ?20
WHERE id = ?1
`

type UpdateAssetParams struct {
	ID                  string
	Tag                 string
	Description         string
	Classification      string
	Brand               string
	Model               string
	SerialNumber        string
	InvoiceNumber       string
	Notes               string
	Location            string
	Condition           string
	AcquisitionCost     sql.NullString
	ResponsiblePersonID sql.NullString
	ResponsibleName     string
	ResponsibleTaxID    string
	ResponsiblePosition string
	State               string
	UpdatedAt           time.Time
	LocationID          sql.NullString
	SupplierID          sql.NullString
}

func (q *Queries) UpdateAsset(ctx context.Context, arg UpdateAssetParams) error {
	_, err := q.db.ExecContext(ctx, updateAsset,
		arg.ID,
		arg.Tag,
		arg.Description,
		arg.Classification,
		arg.Brand,
		arg.Model,
		arg.SerialNumber,
		arg.InvoiceNumber,
		arg.Notes,
		arg.Location,
		arg.Condition,
		arg.AcquisitionCost,
		arg.ResponsiblePersonID,
		arg.ResponsibleName,
		arg.ResponsibleTaxID,
		arg.ResponsiblePosition,
		arg.State,
		arg.UpdatedAt,
		arg.LocationID,
		arg.SupplierID,
	)
	return err
}

const deleteAssetByID = `-- name: DeleteAssetByID :exec
DELETE FROM assets WHERE id = ?1
`

func (q *Queries) DeleteAssetByID(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteAssetByID, id)
	return err
}

const getCustodyRecord = `-- name: GetCustodyRecord :one
SELECT id, asset_id, state, responsible_person_id, responsible_name, responsible_tax_id, responsible_position, location, created_by, created_at, canceled_by, canceled_at
FROM custody_records WHERE id = ?1
`

func (q *Queries) GetCustodyRecord(ctx context.Context, id string) (CustodyRecord, error) {
	row := q.db.QueryRowContext(ctx, getCustodyRecord, id)
	var i CustodyRecord
	err := row.Scan(
		&i.ID,
		&i.AssetID,
		&i.State,
		&i.ResponsiblePersonID,
		&i.ResponsibleName,
		&i.ResponsibleTaxID,
		&i.ResponsiblePosition,
		&i.Location,
		&i.CreatedBy,
		&i.CreatedAt,
		&i.CanceledBy,
		&i.CanceledAt,
	)
	return i, err
}

const getOpenCustodyRecord = `-- name: GetOpenCustodyRecord :one
SELECT id, asset_id, state, responsible_person_id, responsible_name, responsible_tax_id, responsible_position, location, created_by, created_at, canceled_by, canceled_at
FROM custody_records WHERE asset_id = ?1 AND state IN ('DRAFT', 'ACTIVE')
LIMIT 1
`

func (q *Queries) GetOpenCustodyRecord(ctx context.Context, assetID string) (CustodyRecord, error) {
	row := q.db.QueryRowContext(ctx, getOpenCustodyRecord, assetID)
	var i CustodyRecord
	err := row.Scan(
		&i.ID,
		&i.AssetID,
		&i.State,
		&i.ResponsiblePersonID,
		&i.ResponsibleName,
		&i.ResponsibleTaxID,
		&i.ResponsiblePosition,
		&i.Location,
		&i.CreatedBy,
		&i.CreatedAt,
		&i.CanceledBy,
		&i.CanceledAt,
	)
	return i, err
}

const listCustodyRecordsByAsset = `-- name: ListCustodyRecordsByAsset :many
SELECT id, asset_id, state, responsible_person_id, responsible_name, responsible_tax_id, responsible_position, location, created_by, created_at, canceled_by, canceled_at
FROM custody_records WHERE asset_id = ?1
ORDER BY created_at DESC, rowid DESC
`

func (q *Queries) ListCustodyRecordsByAsset(ctx context.Context, assetID string) ([]CustodyRecord, error) {
	rows, err := q.db.QueryContext(ctx, listCustodyRecordsByAsset, assetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CustodyRecord
	for rows.Next() {
		var i CustodyRecord
		if err := rows.Scan(
			&i.ID,
			&i.AssetID,
			&i.State,
			&i.ResponsiblePersonID,
			&i.ResponsibleName,
			&i.ResponsibleTaxID,
			&i.ResponsiblePosition,
			&i.Location,
			&i.CreatedBy,
			&i.CreatedAt,
			&i.CanceledBy,
			&i.CanceledAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const insertCustodyRecord = `-- name: InsertCustodyRecord :exec
INSERT INTO custody_records (id, asset_id, state, responsible_person_id, responsible_name, responsible_tax_id, responsible_position, location, created_by, created_at, canceled_by, canceled_at)
VALUES (?1, ?2, ?3, ?4, ?5, ?6, ?7, ?8, ?9, ?10, ?11, ?12)
`

type InsertCustodyRecordParams struct {
	ID                  string
	AssetID             string
	State               string
	ResponsiblePersonID sql.NullString
	ResponsibleName     string
	ResponsibleTaxID    string
	ResponsiblePosition string
	Location            string
	CreatedBy           string
	CreatedAt           time.Time
	CanceledBy          sql.NullString
	CanceledAt          sql.NullTime
}

func (q *Queries) InsertCustodyRecord(ctx context.Context, arg InsertCustodyRecordParams) error {
	_, err := q.db.ExecContext(ctx, insertCustodyRecord,
		arg.ID,
		arg.AssetID,
		arg.State,
		arg.ResponsiblePersonID,
		arg.ResponsibleName,
		arg.ResponsibleTaxID,
		arg.ResponsiblePosition,
		arg.Location,
		arg.CreatedBy,
		arg.CreatedAt,
		arg.CanceledBy,
		arg.CanceledAt,
	)
	return err
}

const updateCustodyRecord = `-- name: UpdateCustodyRecord :exec
UPDATE custody_records
SET state = ?2, responsible_person_id = ?3, responsible_name = ?4, responsible_tax_id = ?5, responsible_position = ?6, location = ?7, canceled_by = ?8, canceled_at = ?9
WHERE id = ?1
`

type UpdateCustodyRecordParams struct {
	ID                  string
	State               string
	ResponsiblePersonID sql.NullString
	ResponsibleName     string
	ResponsibleTaxID    string
	ResponsiblePosition string
	Location            string
	CanceledBy          sql.NullString
	CanceledAt          sql.NullTime
}

func (q *Queries) UpdateCustodyRecord(ctx context.Context, arg UpdateCustodyRecordParams) error {
	_, err := q.db.ExecContext(ctx, updateCustodyRecord,
		arg.ID,
		arg.State,
		arg.ResponsiblePersonID,
		arg.ResponsibleName,
		arg.ResponsibleTaxID,
		arg.ResponsiblePosition,
		arg.Location,
		arg.CanceledBy,
		arg.CanceledAt,
	)
	return err
}

const deleteCustodyRecordsByAsset = `-- name: DeleteCustodyRecordsByAsset :exec
DELETE FROM custody_records WHERE asset_id = ?1
`

func (q *Queries) DeleteCustodyRecordsByAsset(ctx context.Context, assetID string) error {
	_, err := q.db.ExecContext(ctx, deleteCustodyRecordsByAsset, assetID)
	return err
}

const getAssessment = `-- name: GetAssessment :one
SELECT id, asset_id, state, coordination, body, administrative_unit, physical_location, signer_name, signer_title, signed_by, signed_at, canceled_by, canceled_at, created_by, created_at, updated_at
FROM assessments WHERE id = ?1
`

func (q *Queries) GetAssessment(ctx context.Context, id string) (Assessment, error) {
	row := q.db.QueryRowContext(ctx, getAssessment, id)
	var i Assessment
	err := row.Scan(
		&i.ID,
		&i.AssetID,
		&i.State,
		&i.Coordination,
		&i.Body,
		&i.AdministrativeUnit,
		&i.PhysicalLocation,
		&i.SignerName,
		&i.SignerTitle,
		&i.SignedBy,
		&i.SignedAt,
		&i.CanceledBy,
		&i.CanceledAt,
		&i.CreatedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const getDraftAssessmentByAsset = `-- name: GetDraftAssessmentByAsset :one
SELECT id, asset_id, state, coordination, body, administrative_unit, physical_location, signer_name, signer_title, signed_by, signed_at, canceled_by, canceled_at, created_by, created_at, updated_at
FROM assessments WHERE asset_id = ?1 AND state = 'DRAFT'
LIMIT 1
`

func (q *Queries) GetDraftAssessmentByAsset(ctx context.Context, assetID string) (Assessment, error) {
	row := q.db.QueryRowContext(ctx, getDraftAssessmentByAsset, assetID)
	var i Assessment
	err := row.Scan(
		&i.ID,
		&i.AssetID,
		&i.State,
		&i.Coordination,
		&i.Body,
		&i.AdministrativeUnit,
		&i.PhysicalLocation,
		&i.SignerName,
		&i.SignerTitle,
		&i.SignedBy,
		&i.SignedAt,
		&i.CanceledBy,
		&i.CanceledAt,
		&i.CreatedBy,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listAssessments = `-- name: ListAssessments :many
SELECT id, asset_id, state, coordination, body, administrative_unit, physical_location, signer_name, signer_title, signed_by, signed_at, canceled_by, canceled_at, created_by, created_at, updated_at
FROM assessments
WHERE (?1 = '' OR asset_id = ?1)
  AND (?2 = '' OR state = ?2)
  AND (?3 = '' OR created_by = ?3)
ORDER BY created_at DESC, rowid DESC
LIMIT ?4
`

type ListAssessmentsParams struct {
	AssetID   string
	State     string
	CreatedBy string
	Limit     int64
}

func (q *Queries) ListAssessments(ctx context.Context, arg ListAssessmentsParams) ([]Assessment, error) {
	rows, err := q.db.QueryContext(ctx, listAssessments,
		arg.AssetID,
		arg.State,
		arg.CreatedBy,
		arg.Limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Assessment
	for rows.Next() {
		var i Assessment
		if err := rows.Scan(
			&i.ID,
			&i.AssetID,
			&i.State,
			&i.Coordination,
			&i.Body,
			&i.AdministrativeUnit,
			&i.PhysicalLocation,
			&i.SignerName,
			&i.SignerTitle,
			&i.SignedBy,
			&i.SignedAt,
			&i.CanceledBy,
			&i.CanceledAt,
			&i.CreatedBy,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const insertAssessment = `-- name: InsertAssessment :exec
INSERT INTO assessments (id, asset_id, state, coordination, body, administrative_unit, physical_location, signer_name, signer_title, signed_by, signed_at, canceled_by, canceled_at, created_by, created_at, updated_at)
VALUES (?1, ?2, ?3, ?4, ?5, ?6, ?7, ?8, ?9, ?10, ?11, ?12, ?13, ?14, ?15, ?16)
`

type InsertAssessmentParams struct {
	ID                 string
	AssetID            string
	State              string
	Coordination       string
	Body               string
	AdministrativeUnit string
	PhysicalLocation   string
	SignerName         string
	SignerTitle        string
	SignedBy           sql.NullString
	SignedAt           sql.NullTime
	CanceledBy         sql.NullString
	CanceledAt         sql.NullTime
	CreatedBy          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (q *Queries) InsertAssessment(ctx context.Context, arg InsertAssessmentParams) error {
	_, err := q.db.ExecContext(ctx, insertAssessment,
		arg.ID,
		arg.AssetID,
		arg.State,
		arg.Coordination,
		arg.Body,
		arg.AdministrativeUnit,
		arg.PhysicalLocation,
		arg.SignerName,
		arg.SignerTitle,
		arg.SignedBy,
		arg.SignedAt,
		arg.CanceledBy,
		arg.CanceledAt,
		arg.CreatedBy,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const updateAssessment = `-- name: UpdateAssessment :exec
UPDATE assessments
SET state = ?2, body = ?3, administrative_unit = ?4, physical_location = ?5, signer_name = ?6, signer_title = ?7, signed_by = ?8, signed_at = ?9, canceled_by = ?10, canceled_at = ?11, updated_at = ?12
WHERE id = ?1
`

type UpdateAssessmentParams struct {
	ID                 string
	State              string
	Body               string
	AdministrativeUnit string
	PhysicalLocation   string
	SignerName         string
	SignerTitle        string
	SignedBy           sql.NullString
	SignedAt           sql.NullTime
	CanceledBy         sql.NullString
	CanceledAt         sql.NullTime
	UpdatedAt          time.Time
}

func (q *Queries) UpdateAssessment(ctx context.Context, arg UpdateAssessmentParams) error {
	_, err := q.db.ExecContext(ctx, updateAssessment,
		arg.ID,
		arg.State,
		arg.Body,
		arg.AdministrativeUnit,
		arg.PhysicalLocation,
		arg.SignerName,
		arg.SignerTitle,
		arg.SignedBy,
		arg.SignedAt,
		arg.CanceledBy,
		arg.CanceledAt,
		arg.UpdatedAt,
	)
	return err
}

const deleteAssessmentsByAsset = `-- name: DeleteAssessmentsByAsset :exec
DELETE FROM assessments WHERE asset_id = ?1
`

func (q *Queries) DeleteAssessmentsByAsset(ctx context.Context, assetID string) error {
	_, err := q.db.ExecContext(ctx, deleteAssessmentsByAsset, assetID)
	return err
}

const getEvidence = `-- name: GetEvidence :one
SELECT id, asset_id, owner_type, owner_id, kind, purpose, file_name, file_ref, size, checksum, uploaded_by, uploaded_at
FROM evidence WHERE id = ?1
`

func (q *Queries) GetEvidence(ctx context.Context, id string) (Evidence, error) {
	row := q.db.QueryRowContext(ctx, getEvidence, id)
	var i Evidence
	err := row.Scan(
		&i.ID,
		&i.AssetID,
		&i.OwnerType,
		&i.OwnerID,
		&i.Kind,
		&i.Purpose,
		&i.FileName,
		&i.FileRef,
		&i.Size,
		&i.Checksum,
		&i.UploadedBy,
		&i.UploadedAt,
	)
	return i, err
}

const insertEvidence = `-- name: InsertEvidence :exec
INSERT INTO evidence (id, asset_id, owner_type, owner_id, kind, purpose, file_name, file_ref, size, checksum, uploaded_by, uploaded_at)
VALUES (?1, ?2, ?3, ?4, ?5, ?6, ?7, ?8, ?9, ?10, ?11, ?12)
`

type InsertEvidenceParams struct {
	ID         string
	AssetID    string
	OwnerType  string
	OwnerID    string
	Kind       string
	Purpose    string
	FileName   string
	FileRef    string
	Size       int64
	Checksum   string
	UploadedBy string
	UploadedAt time.Time
}

func (q *Queries) InsertEvidence(ctx context.Context, arg InsertEvidenceParams) error {
	_, err := q.db.ExecContext(ctx, insertEvidence,
		arg.ID,
		arg.AssetID,
		arg.OwnerType,
		arg.OwnerID,
		arg.Kind,
		arg.Purpose,
		arg.FileName,
		arg.FileRef,
		arg.Size,
		arg.Checksum,
		arg.UploadedBy,
		arg.UploadedAt,
	)
	return err
}

const listEvidenceByOwner = `-- name: ListEvidenceByOwner :many
SELECT id, asset_id, owner_type, owner_id, kind, purpose, file_name, file_ref, size, checksum, uploaded_by, uploaded_at
FROM evidence WHERE owner_type = ?1 AND owner_id = ?2
ORDER BY uploaded_at, rowid
`

type ListEvidenceByOwnerParams struct {
	OwnerType string
	OwnerID   string
}

func (q *Queries) ListEvidenceByOwner(ctx context.Context, arg ListEvidenceByOwnerParams) ([]Evidence, error) {
	rows, err := q.db.QueryContext(ctx, listEvidenceByOwner,
		arg.OwnerType,
		arg.OwnerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Evidence
	for rows.Next() {
		var i Evidence
		if err := rows.Scan(
			&i.ID,
			&i.AssetID,
			&i.OwnerType,
			&i.OwnerID,
			&i.Kind,
			&i.Purpose,
			&i.FileName,
			&i.FileRef,
			&i.Size,
			&i.Checksum,
			&i.UploadedBy,
			&i.UploadedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const listEvidenceByAsset = `-- name: ListEvidenceByAsset :many
SELECT id, asset_id, owner_type, owner_id, kind, purpose, file_name, file_ref, size, checksum, uploaded_by, uploaded_at
FROM evidence WHERE asset_id = ?1
ORDER BY uploaded_at, rowid
`

func (q *Queries) ListEvidenceByAsset(ctx context.Context, assetID string) ([]Evidence, error) {
	rows, err := q.db.QueryContext(ctx, listEvidenceByAsset, assetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Evidence
	for rows.Next() {
		var i Evidence
		if err := rows.Scan(
			&i.ID,
			&i.AssetID,
			&i.OwnerType,
			&i.OwnerID,
			&i.Kind,
			&i.Purpose,
			&i.FileName,
			&i.FileRef,
			&i.Size,
			&i.Checksum,
			&i.UploadedBy,
			&i.UploadedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countEvidence = `-- name: CountEvidence :one
SELECT COUNT(*) FROM evidence
WHERE owner_type = ?1 AND owner_id = ?2 AND purpose = ?3 AND (?4 = '' OR kind = ?4)
`

type CountEvidenceParams struct {
	OwnerType string
	OwnerID   string
	Purpose   string
	Kind      string
}

func (q *Queries) CountEvidence(ctx context.Context, arg CountEvidenceParams) (int64, error) {
	row := q.db.QueryRowContext(ctx, countEvidence,
		arg.OwnerType,
		arg.OwnerID,
		arg.Purpose,
		arg.Kind,
	)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const deleteEvidenceByAsset = `-- name: DeleteEvidenceByAsset :exec
DELETE FROM evidence WHERE asset_id = ?1
`

func (q *Queries) DeleteEvidenceByAsset(ctx context.Context, assetID string) error {
	_, err := q.db.ExecContext(ctx, deleteEvidenceByAsset, assetID)
	return err
}

const insertMovement = `-- name: InsertMovement :exec
INSERT INTO movements (id, asset_id, actor_id, category, before_value, after_value, reason, seq, created_at)
VALUES (?1, ?2, ?3, ?4, ?5, ?6, ?7, (SELECT COALESCE(MAX(seq), 0) + 1 FROM movements WHERE asset_id = ?2), ?8)
`

type InsertMovementParams struct {
	ID          string
	AssetID     string
	ActorID     string
	Category    string
	BeforeValue string
	AfterValue  string
	Reason      string
	CreatedAt   time.Time
}

func (q *Queries) InsertMovement(ctx context.Context, arg InsertMovementParams) error {
	_, err := q.db.ExecContext(ctx, insertMovement,
		arg.ID,
		arg.AssetID,
		arg.ActorID,
		arg.Category,
		arg.BeforeValue,
		arg.AfterValue,
		arg.Reason,
		arg.CreatedAt,
	)
	return err
}

const listMovementsByAsset = `-- name: ListMovementsByAsset :many
SELECT id, asset_id, actor_id, category, before_value, after_value, reason, seq, created_at
FROM movements WHERE asset_id = ?1
ORDER BY seq
`

func (q *Queries) ListMovementsByAsset(ctx context.Context, assetID string) ([]Movement, error) {
	rows, err := q.db.QueryContext(ctx, listMovementsByAsset, assetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Movement
	for rows.Next() {
		var i Movement
		if err := rows.Scan(
			&i.ID,
			&i.AssetID,
			&i.ActorID,
			&i.Category,
			&i.BeforeValue,
			&i.AfterValue,
			&i.Reason,
			&i.Seq,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const deleteMovementsByAsset = `-- name: DeleteMovementsByAsset :exec
DELETE FROM movements WHERE asset_id = ?1
`

func (q *Queries) DeleteMovementsByAsset(ctx context.Context, assetID string) error {
	_, err := q.db.ExecContext(ctx, deleteMovementsByAsset, assetID)
	return err
}

const getPerson = `-- name: GetPerson :one
SELECT id, name, tax_id, position, active, created_at FROM personnel WHERE id = ?1
`

func (q *Queries) GetPerson(ctx context.Context, id string) (Personnel, error) {
	row := q.db.QueryRowContext(ctx, getPerson, id)
	var i Personnel
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.TaxID,
		&i.Position,
		&i.Active,
		&i.CreatedAt,
	)
	return i, err
}

const listPersonnel = `-- name: ListPersonnel :many
SELECT id, name, tax_id, position, active, created_at FROM personnel
WHERE ?1 OR active = 1
ORDER BY name, id
`

func (q *Queries) ListPersonnel(ctx context.Context, includeInactive interface{}) ([]Personnel, error) {
	rows, err := q.db.QueryContext(ctx, listPersonnel, includeInactive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Personnel
	for rows.Next() {
		var i Personnel
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.TaxID,
			&i.Position,
			&i.Active,
			&i.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const upsertPerson = `-- name: UpsertPerson :exec
INSERT INTO personnel (id, name, tax_id, position, active, created_at)
VALUES (?1, ?2, ?3, ?4, ?5, ?6)
ON CONFLICT (id) DO UPDATE SET name = excluded.name, tax_id = excluded.tax_id, position = excluded.position, active = excluded.active
`

type UpsertPersonParams struct {
	ID        string
	Name      string
	TaxID     string
	Position  string
	Active    bool
	CreatedAt time.Time
}

func (q *Queries) UpsertPerson(ctx context.Context, arg UpsertPersonParams) error {
	_, err := q.db.ExecContext(ctx, upsertPerson,
		arg.ID,
		arg.Name,
		arg.TaxID,
		arg.Position,
		arg.Active,
		arg.CreatedAt,
	)
	return err
}

const getSignerConfig = `-- name: GetSignerConfig :one
SELECT coordination, title, signer_name, signer_title, active, updated_at FROM signer_configs WHERE coordination = ?1
`

func (q *Queries) GetSignerConfig(ctx context.Context, coordination string) (SignerConfig, error) {
	row := q.db.QueryRowContext(ctx, getSignerConfig, coordination)
	var i SignerConfig
	err := row.Scan(
		&i.Coordination,
		&i.Title,
		&i.SignerName,
		&i.SignerTitle,
		&i.Active,
		&i.UpdatedAt,
	)
	return i, err
}

const listSignerConfigs = `-- name: ListSignerConfigs :many
SELECT coordination, title, signer_name, signer_title, active, updated_at FROM signer_configs ORDER BY coordination
`

func (q *Queries) ListSignerConfigs(ctx context.Context) ([]SignerConfig, error) {
	rows, err := q.db.QueryContext(ctx, listSignerConfigs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SignerConfig
	for rows.Next() {
		var i SignerConfig
		if err := rows.Scan(
			&i.Coordination,
			&i.Title,
			&i.SignerName,
			&i.SignerTitle,
			&i.Active,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const upsertSignerConfig = `-- name: UpsertSignerConfig :exec
INSERT INTO signer_configs (coordination, title, signer_name, signer_title, active, updated_at)
VALUES (?1, ?2, ?3, ?4, ?5, ?6)
ON CONFLICT (coordination) DO UPDATE SET title = excluded.title, signer_name = excluded.signer_name, signer_title = excluded.signer_title, active = excluded.active, updated_at = excluded.updated_at
`

type UpsertSignerConfigParams struct {
	Coordination string
	Title        string
	SignerName   string
	SignerTitle  string
	Active       bool
	UpdatedAt    time.Time
}

func (q *Queries) UpsertSignerConfig(ctx context.Context, arg UpsertSignerConfigParams) error {
	_, err := q.db.ExecContext(ctx, upsertSignerConfig,
		arg.Coordination,
		arg.Title,
		arg.SignerName,
		arg.SignerTitle,
		arg.Active,
		arg.UpdatedAt,
	)
	return err
}

const getLocation = `-- name: GetLocation :one
SELECT id, code, name, sort_order, created_at, updated_at FROM locations WHERE id = ?1
`

func (q *Queries) GetLocation(ctx context.Context, id string) (Location, error) {
	row := q.db.QueryRowContext(ctx, getLocation, id)
	var i Location
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.Name,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listLocations = `-- name: ListLocations :many
SELECT id, code, name, sort_order, created_at, updated_at FROM locations
ORDER BY sort_order, name, id
`

func (q *Queries) ListLocations(ctx context.Context) ([]Location, error) {
	rows, err := q.db.QueryContext(ctx, listLocations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Location
	for rows.Next() {
		var i Location
		if err := rows.Scan(
			&i.ID,
			&i.Code,
			&i.Name,
			&i.SortOrder,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const upsertLocation = `-- name: UpsertLocation :exec
INSERT INTO locations (id, code, name, sort_order, created_at, updated_at)
VALUES (?1, ?2, ?3, ?4, ?5, ?6)
ON CONFLICT (id) DO UPDATE SET code = excluded.code, name = excluded.name, sort_order = excluded.sort_order, updated_at = excluded.updated_at
`

type UpsertLocationParams struct {
	ID        string
	Code      string
	Name      string
	SortOrder int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) UpsertLocation(ctx context.Context, arg UpsertLocationParams) error {
	_, err := q.db.ExecContext(ctx, upsertLocation,
		arg.ID,
		arg.Code,
		arg.Name,
		arg.SortOrder,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const deleteLocation = `-- name: DeleteLocation :exec
DELETE FROM locations WHERE id = ?1
`

func (q *Queries) DeleteLocation(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteLocation, id)
	return err
}

const countAssetsByLocation = `-- name: CountAssetsByLocation :one
SELECT COUNT(*) FROM assets WHERE location_id = ?1
`

func (q *Queries) CountAssetsByLocation(ctx context.Context, locationID sql.NullString) (int64, error) {
	row := q.db.QueryRowContext(ctx, countAssetsByLocation, locationID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const getSupplier = `-- name: GetSupplier :one
SELECT id, name, tax_id, phone, email, address, created_at, updated_at FROM suppliers WHERE id = ?1
`

func (q *Queries) GetSupplier(ctx context.Context, id string) (Supplier, error) {
	row := q.db.QueryRowContext(ctx, getSupplier, id)
	var i Supplier
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.TaxID,
		&i.Phone,
		&i.Email,
		&i.Address,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listSuppliers = `-- name: ListSuppliers :many
SELECT id, name, tax_id, phone, email, address, created_at, updated_at FROM suppliers
ORDER BY name, id
`

func (q *Queries) ListSuppliers(ctx context.Context) ([]Supplier, error) {
	rows, err := q.db.QueryContext(ctx, listSuppliers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Supplier
	for rows.Next() {
		var i Supplier
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.TaxID,
			&i.Phone,
			&i.Email,
			&i.Address,
			&i.CreatedAt,
			&i.UpdatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const upsertSupplier = `-- name: UpsertSupplier :exec
INSERT INTO suppliers (id, name, tax_id, phone, email, address, created_at, updated_at)
VALUES (?1, ?2, ?3, ?4, ?5, ?6, ?7, ?8)
ON CONFLICT (id) DO UPDATE SET name = excluded.name, tax_id = excluded.tax_id, phone = excluded.phone, email = excluded.email, address = excluded.address, updated_at = excluded.updated_at
`

type UpsertSupplierParams struct {
	ID        string
	Name      string
	TaxID     string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (q *Queries) UpsertSupplier(ctx context.Context, arg UpsertSupplierParams) error {
	_, err := q.db.ExecContext(ctx, upsertSupplier,
		arg.ID,
		arg.Name,
		arg.TaxID,
		arg.Phone,
		arg.Email,
		arg.Address,
		arg.CreatedAt,
		arg.UpdatedAt,
	)
	return err
}

const deleteSupplier = `-- name: DeleteSupplier :exec
DELETE FROM suppliers WHERE id = ?1
`

func (q *Queries) DeleteSupplier(ctx context.Context, id string) error {
	_, err := q.db.ExecContext(ctx, deleteSupplier, id)
	return err
}

const countAssetsBySupplier = `-- name: CountAssetsBySupplier :one
SELECT COUNT(*) FROM assets WHERE supplier_id = ?1
`

func (q *Queries) CountAssetsBySupplier(ctx context.Context, supplierID sql.NullString) (int64, error) {
	row := q.db.QueryRowContext(ctx, countAssetsBySupplier, supplierID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const insertOperation = `-- name: InsertOperation :one
INSERT INTO operations (operation, actor_id, parameters, started_at, status)
VALUES (?1, ?2, ?3, ?4, 'running')
RETURNING id, operation, actor_id, parameters, started_at, finished_at, status
`

type InsertOperationParams struct {
	Operation  string
	ActorID    string
	Parameters string
	StartedAt  time.Time
}

func (q *Queries) InsertOperation(ctx context.Context, arg InsertOperationParams) (Operation, error) {
	row := q.db.QueryRowContext(ctx, insertOperation,
		arg.Operation,
		arg.ActorID,
		arg.Parameters,
		arg.StartedAt,
	)
	var i Operation
	err := row.Scan(
		&i.ID,
		&i.Operation,
		&i.ActorID,
		&i.Parameters,
		&i.StartedAt,
		&i.FinishedAt,
		&i.Status,
	)
	return i, err
}

const updateOperationFinished = `-- name: UpdateOperationFinished :exec
UPDATE operations SET finished_at = ?2, status = ?3 WHERE id = ?1
`

type UpdateOperationFinishedParams struct {
	ID         int64
	FinishedAt sql.NullTime
	Status     string
}

func (q *Queries) UpdateOperationFinished(ctx context.Context, arg UpdateOperationFinishedParams) error {
	_, err := q.db.ExecContext(ctx, updateOperationFinished,
		arg.ID,
		arg.FinishedAt,
		arg.Status,
	)
	return err
}

const listOperations = `-- name: ListOperations :many
SELECT id, operation, actor_id, parameters, started_at, finished_at, status
FROM operations ORDER BY id DESC LIMIT ?1
`

func (q *Queries) ListOperations(ctx context.Context, limit int64) ([]Operation, error) {
	rows, err := q.db.QueryContext(ctx, listOperations, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Operation
	for rows.Next() {
		var i Operation
		if err := rows.Scan(
			&i.ID,
			&i.Operation,
			&i.ActorID,
			&i.Parameters,
			&i.StartedAt,
			&i.FinishedAt,
			&i.Status,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
