package httpapi

import (
	"time"

	"inv-go/internal/inv"
)

// JSON views of the core records. The core types carry no wire tags.

type partyView struct {
	PersonID string `json:"person_id,omitempty"`
	Name     string `json:"name"`
	TaxID    string `json:"tax_id,omitempty"`
	Position string `json:"position,omitempty"`
}

func newPartyView(p inv.ResponsibleParty) partyView {
	return partyView{PersonID: p.PersonID, Name: p.Name, TaxID: p.TaxID, Position: p.Position}
}

type assetView struct {
	ID              string    `json:"id"`
	Tag             string    `json:"tag"`
	Description     string    `json:"description"`
	Classification  string    `json:"classification"`
	Brand           string    `json:"brand,omitempty"`
	Model           string    `json:"model,omitempty"`
	SerialNumber    string    `json:"serial_number,omitempty"`
	InvoiceNumber   string    `json:"invoice_number,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Location        string    `json:"location"`
	LocationID      string    `json:"location_id,omitempty"`
	SupplierID      string    `json:"supplier_id,omitempty"`
	Condition       string    `json:"condition"`
	AcquisitionCost *string   `json:"acquisition_cost"`
	Responsible     partyView `json:"responsible"`
	State           string    `json:"state"`
	CreatedBy       string    `json:"created_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func newAssetView(a *inv.Asset) assetView {
	v := assetView{
		ID:             a.ID,
		Tag:            a.Tag,
		Description:    a.Description,
		Classification: string(a.Classification),
		Brand:          a.Brand,
		Model:          a.Model,
		SerialNumber:   a.SerialNumber,
		InvoiceNumber:  a.InvoiceNumber,
		Notes:          a.Notes,
		Location:       a.Location,
		LocationID:     a.LocationID,
		SupplierID:     a.SupplierID,
		Condition:      string(a.Condition),
		Responsible:    newPartyView(a.Responsible),
		State:          string(a.State),
		CreatedBy:      a.CreatedBy,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
	if a.AcquisitionCost.Valid {
		cost := a.AcquisitionCost.Decimal.StringFixed(2)
		v.AcquisitionCost = &cost
	}
	return v
}

type custodyView struct {
	ID          string     `json:"id"`
	AssetID     string     `json:"asset_id"`
	State       string     `json:"state"`
	Responsible partyView  `json:"responsible"`
	Location    string     `json:"location"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	CanceledBy  string     `json:"canceled_by,omitempty"`
	CanceledAt  *time.Time `json:"canceled_at,omitempty"`
}

func newCustodyView(c *inv.CustodyRecord) custodyView {
	return custodyView{
		ID:          c.ID,
		AssetID:     c.AssetID,
		State:       string(c.State),
		Responsible: newPartyView(c.Responsible),
		Location:    c.Location,
		CreatedBy:   c.CreatedBy,
		CreatedAt:   c.CreatedAt,
		CanceledBy:  c.CanceledBy,
		CanceledAt:  c.CanceledAt,
	}
}

type assessmentView struct {
	ID                 string     `json:"id"`
	AssetID            string     `json:"asset_id"`
	State              string     `json:"state"`
	Coordination       string     `json:"coordination"`
	Body               string     `json:"body"`
	AdministrativeUnit string     `json:"administrative_unit,omitempty"`
	PhysicalLocation   string     `json:"physical_location,omitempty"`
	SignerName         string     `json:"signer_name"`
	SignerTitle        string     `json:"signer_title,omitempty"`
	SignedBy           string     `json:"signed_by,omitempty"`
	SignedAt           *time.Time `json:"signed_at,omitempty"`
	CanceledBy         string     `json:"canceled_by,omitempty"`
	CanceledAt         *time.Time `json:"canceled_at,omitempty"`
	CreatedBy          string     `json:"created_by"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func newAssessmentView(a *inv.AssessmentRecord) assessmentView {
	return assessmentView{
		ID:                 a.ID,
		AssetID:            a.AssetID,
		State:              string(a.State),
		Coordination:       a.Coordination,
		Body:               a.Body,
		AdministrativeUnit: a.AdministrativeUnit,
		PhysicalLocation:   a.PhysicalLocation,
		SignerName:         a.SignerName,
		SignerTitle:        a.SignerTitle,
		SignedBy:           a.SignedBy,
		SignedAt:           a.SignedAt,
		CanceledBy:         a.CanceledBy,
		CanceledAt:         a.CanceledAt,
		CreatedBy:          a.CreatedBy,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

type movementView struct {
	ID        string    `json:"id"`
	AssetID   string    `json:"asset_id"`
	ActorID   string    `json:"actor_id"`
	Category  string    `json:"category"`
	Before    string    `json:"before"`
	After     string    `json:"after"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func newMovementView(m *inv.MovementEntry) movementView {
	return movementView{
		ID:        m.ID,
		AssetID:   m.AssetID,
		ActorID:   m.ActorID,
		Category:  string(m.Category),
		Before:    m.Before,
		After:     m.After,
		Reason:    m.Reason,
		CreatedAt: m.CreatedAt,
	}
}

type evidenceView struct {
	ID         string    `json:"id"`
	AssetID    string    `json:"asset_id"`
	OwnerType  string    `json:"owner_type"`
	OwnerID    string    `json:"owner_id"`
	Kind       string    `json:"kind"`
	Purpose    string    `json:"purpose"`
	FileName   string    `json:"file_name"`
	Size       int64     `json:"size"`
	Checksum   string    `json:"checksum"`
	UploadedBy string    `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

func newEvidenceView(e *inv.Evidence) evidenceView {
	return evidenceView{
		ID:         e.ID,
		AssetID:    e.AssetID,
		OwnerType:  string(e.OwnerType),
		OwnerID:    e.OwnerID,
		Kind:       string(e.Kind),
		Purpose:    string(e.Purpose),
		FileName:   e.FileName,
		Size:       e.Size,
		Checksum:   e.Checksum,
		UploadedBy: e.UploadedBy,
		UploadedAt: e.UploadedAt,
	}
}

type personView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id,omitempty"`
	Position  string    `json:"position,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

func newPersonView(p *inv.Person) personView {
	return personView{ID: p.ID, Name: p.Name, TaxID: p.TaxID, Position: p.Position, Active: p.Active, CreatedAt: p.CreatedAt}
}

type signerView struct {
	Coordination string    `json:"coordination"`
	Title        string    `json:"title,omitempty"`
	SignerName   string    `json:"signer_name"`
	SignerTitle  string    `json:"signer_title,omitempty"`
	Active       bool      `json:"active"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func newSignerView(c *inv.SignerConfig) signerView {
	return signerView{
		Coordination: c.Coordination,
		Title:        c.Title,
		SignerName:   c.SignerName,
		SignerTitle:  c.SignerTitle,
		Active:       c.Active,
		UpdatedAt:    c.UpdatedAt,
	}
}

// mapViews converts a slice of records with the given view constructor.
func mapViews[T any, V any](items []*T, fn func(*T) V) []V {
	out := make([]V, len(items))
	for i, item := range items {
		out[i] = fn(item)
	}
	return out
}

type locationView struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Order     int       `json:"order"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newLocationView(l *inv.Location) locationView {
	return locationView{ID: l.ID, Code: l.Code, Name: l.Name, Order: l.Order, UpdatedAt: l.UpdatedAt}
}

type supplierView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TaxID     string    `json:"tax_id,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Address   string    `json:"address,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

func newSupplierView(sup *inv.Supplier) supplierView {
	return supplierView{
		ID:        sup.ID,
		Name:      sup.Name,
		TaxID:     sup.TaxID,
		Phone:     sup.Phone,
		Email:     sup.Email,
		Address:   sup.Address,
		UpdatedAt: sup.UpdatedAt,
	}
}
