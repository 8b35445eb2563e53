package inv

import (
	"io"
	"net/mail"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

// Commands are built and validated at the boundary (CLI flags, HTTP bodies).
// The service calls Validate again before doing any work.

// CreateAsset registers a new asset together with its first custody record.
// The responsible party comes from the Personnel Directory when
// ResponsiblePersonID is set, otherwise from Responsible. A LocationID takes
// the location name from the Location Catalog.
type CreateAsset struct {
	Tag                 string
	Description         string
	Classification      Classification
	Brand               string
	Model               string
	SerialNumber        string
	InvoiceNumber       string
	Notes               string
	Location            string
	LocationID          string
	Condition           Condition
	AcquisitionCost     decimal.NullDecimal
	SupplierID          string
	ResponsiblePersonID string
	Responsible         ResponsibleParty
}

func (c *CreateAsset) Validate() error {
	c.Tag = strings.TrimSpace(c.Tag)
	c.Description = strings.TrimSpace(c.Description)
	c.Location = strings.TrimSpace(c.Location)
	c.LocationID = strings.TrimSpace(c.LocationID)
	c.SupplierID = strings.TrimSpace(c.SupplierID)
	c.ResponsiblePersonID = strings.TrimSpace(c.ResponsiblePersonID)
	c.Responsible = trimParty(c.Responsible)

	if c.Tag == "" {
		return ValidationError(CodeMissingField, "tag is required")
	}
	if c.Description == "" {
		return ValidationError(CodeMissingField, "description is required")
	}
	if c.Classification == "" {
		c.Classification = ClassificationGeneral
	}
	var err error
	if c.Classification, err = ParseClassification(string(c.Classification)); err != nil {
		return err
	}
	if c.Condition == "" {
		c.Condition = ConditionGood
	}
	if c.Condition, err = ParseCondition(string(c.Condition)); err != nil {
		return err
	}
	if err := validateCost(c.AcquisitionCost); err != nil {
		return err
	}
	return validateParty(c.ResponsiblePersonID, c.Responsible)
}

// EditAsset is a patch: nil fields are left unchanged. An empty LocationID or
// SupplierID removes the catalog link. Setting Location alone unlinks the
// asset from the Location Catalog.
type EditAsset struct {
	AssetID             string
	Tag                 *string
	Description         *string
	Classification      *Classification
	Brand               *string
	Model               *string
	SerialNumber        *string
	InvoiceNumber       *string
	Notes               *string
	Location            *string
	LocationID          *string
	Condition           *Condition
	AcquisitionCost     *decimal.NullDecimal
	SupplierID          *string
	ResponsiblePersonID *string
	Responsible         *ResponsibleParty
	Reason              string
}

// TouchesResponsible reports whether the patch changes the responsible party.
func (c *EditAsset) TouchesResponsible() bool {
	return c.ResponsiblePersonID != nil || c.Responsible != nil
}

func (c *EditAsset) Validate() error {
	c.AssetID = strings.TrimSpace(c.AssetID)
	if c.AssetID == "" {
		return ValidationError(CodeMissingField, "asset id is required")
	}
	for _, f := range []struct {
		name string
		v    *string
	}{{"tag", c.Tag}, {"description", c.Description}} {
		if f.v == nil {
			continue
		}
		*f.v = strings.TrimSpace(*f.v)
		if *f.v == "" {
			return ValidationError(CodeMissingField, "%s cannot be empty", f.name)
		}
	}
	if c.Classification != nil {
		v, err := ParseClassification(string(*c.Classification))
		if err != nil {
			return err
		}
		*c.Classification = v
	}
	if c.Condition != nil {
		v, err := ParseCondition(string(*c.Condition))
		if err != nil {
			return err
		}
		*c.Condition = v
	}
	if c.AcquisitionCost != nil {
		if err := validateCost(*c.AcquisitionCost); err != nil {
			return err
		}
	}
	for _, v := range []*string{c.Location, c.LocationID, c.SupplierID} {
		if v != nil {
			*v = strings.TrimSpace(*v)
		}
	}
	if c.ResponsiblePersonID != nil && c.Responsible != nil {
		return ValidationError(CodeInvalidField, "give either a directory person or a manual responsible party, not both")
	}
	if c.ResponsiblePersonID != nil {
		*c.ResponsiblePersonID = strings.TrimSpace(*c.ResponsiblePersonID)
		if *c.ResponsiblePersonID == "" {
			return ValidationError(CodeMissingField, "responsible person id cannot be empty")
		}
	}
	if c.Responsible != nil {
		*c.Responsible = trimParty(*c.Responsible)
		if err := validateParty("", *c.Responsible); err != nil {
			return err
		}
	}
	return nil
}

// ReassignCustody hands an active asset to a new responsible party.
type ReassignCustody struct {
	AssetID             string
	ResponsiblePersonID string
	Responsible         ResponsibleParty
	Location            *string
	LocationID          string
	Reason              string
}

func (c *ReassignCustody) Validate() error {
	c.AssetID = strings.TrimSpace(c.AssetID)
	if c.AssetID == "" {
		return ValidationError(CodeMissingField, "asset id is required")
	}
	c.ResponsiblePersonID = strings.TrimSpace(c.ResponsiblePersonID)
	c.Responsible = trimParty(c.Responsible)
	if c.Location != nil {
		*c.Location = strings.TrimSpace(*c.Location)
	}
	c.LocationID = strings.TrimSpace(c.LocationID)
	return validateParty(c.ResponsiblePersonID, c.Responsible)
}

// CreateAssessment opens a write-off report on an active asset.
// Coordination overrides the classification route when set.
type CreateAssessment struct {
	AssetID            string
	Body               string
	AdministrativeUnit string
	PhysicalLocation   string
	Coordination       string
}

func (c *CreateAssessment) Validate() error {
	c.AssetID = strings.TrimSpace(c.AssetID)
	c.Body = strings.TrimSpace(c.Body)
	c.Coordination = strings.ToUpper(strings.TrimSpace(c.Coordination))
	if c.AssetID == "" {
		return ValidationError(CodeMissingField, "asset id is required")
	}
	if c.Body == "" {
		return ValidationError(CodeMissingField, "report body is required")
	}
	return nil
}

// EditAssessment is a patch on a draft assessment.
type EditAssessment struct {
	AssessmentID       string
	Body               *string
	AdministrativeUnit *string
	PhysicalLocation   *string
}

func (c *EditAssessment) Validate() error {
	c.AssessmentID = strings.TrimSpace(c.AssessmentID)
	if c.AssessmentID == "" {
		return ValidationError(CodeMissingField, "assessment id is required")
	}
	if c.Body != nil {
		*c.Body = strings.TrimSpace(*c.Body)
		if *c.Body == "" {
			return ValidationError(CodeMissingField, "report body cannot be empty")
		}
	}
	return nil
}

// AttachEvidence uploads a file and records it against an owner. Purpose may
// be left empty; it then defaults from the owner type and, for custody
// records, from the record state.
type AttachEvidence struct {
	OwnerType OwnerType
	OwnerID   string
	Kind      EvidenceKind
	Purpose   EvidencePurpose
	FileName  string
	Size      int64
	Content   io.Reader
}

func (c *AttachEvidence) Validate() error {
	c.OwnerID = strings.TrimSpace(c.OwnerID)
	c.FileName = filepath.Base(strings.TrimSpace(c.FileName))
	var err error
	if c.OwnerType, err = ParseOwnerType(string(c.OwnerType)); err != nil {
		return err
	}
	if c.OwnerID == "" {
		return ValidationError(CodeMissingField, "owner id is required")
	}
	if c.Kind, err = ParseEvidenceKind(string(c.Kind)); err != nil {
		return err
	}
	if c.Purpose != "" {
		if c.Purpose, err = ParseEvidencePurpose(string(c.Purpose)); err != nil {
			return err
		}
		if c.Purpose.OwnerType() != c.OwnerType {
			return ValidationError(CodeEvidenceOwner, "%s evidence cannot be attached to a %s", c.Purpose, c.OwnerType)
		}
	}
	if c.FileName == "" || c.FileName == "." || c.FileName == string(filepath.Separator) {
		return ValidationError(CodeMissingField, "file name is required")
	}
	if c.Content == nil {
		return ValidationError(CodeMissingField, "file content is required")
	}
	if c.Size <= 0 {
		return ValidationError(CodeInvalidField, "file is empty")
	}
	return nil
}

// SaveLocation adds a Location Catalog entry when ID is empty, otherwise
// updates it. A nil Order keeps the current order (99 for new entries).
type SaveLocation struct {
	ID    string
	Code  string
	Name  string
	Order *int
}

func (c *SaveLocation) Validate() error {
	c.ID = strings.TrimSpace(c.ID)
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	c.Name = strings.TrimSpace(c.Name)
	if c.Code == "" {
		return ValidationError(CodeMissingField, "location code is required")
	}
	if c.Name == "" {
		return ValidationError(CodeMissingField, "location name is required")
	}
	if c.Order != nil && *c.Order < 0 {
		return ValidationError(CodeInvalidField, "order cannot be negative")
	}
	return nil
}

// SaveSupplier adds a Supplier Catalog entry when ID is empty, otherwise
// replaces it.
type SaveSupplier struct {
	ID      string
	Name    string
	TaxID   string
	Phone   string
	Email   string
	Address string
}

func (c *SaveSupplier) Validate() error {
	c.ID = strings.TrimSpace(c.ID)
	c.Name = strings.TrimSpace(c.Name)
	c.TaxID = strings.ToUpper(strings.TrimSpace(c.TaxID))
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.TrimSpace(c.Email)
	c.Address = strings.TrimSpace(c.Address)
	if c.Name == "" {
		return ValidationError(CodeMissingField, "supplier name is required")
	}
	if c.Email != "" {
		if _, err := mail.ParseAddress(c.Email); err != nil {
			return ValidationError(CodeInvalidField, "email %q is not valid", c.Email)
		}
	}
	return nil
}

func trimParty(p ResponsibleParty) ResponsibleParty {
	return ResponsibleParty{
		PersonID: strings.TrimSpace(p.PersonID),
		Name:     strings.TrimSpace(p.Name),
		TaxID:    strings.ToUpper(strings.TrimSpace(p.TaxID)),
		Position: strings.TrimSpace(p.Position),
	}
}

func validateParty(personID string, p ResponsibleParty) error {
	if personID != "" {
		if p.Name != "" {
			return ValidationError(CodeInvalidField, "give either a directory person or a manual responsible party, not both")
		}
		return nil
	}
	if p.Name == "" {
		return ValidationError(CodeMissingField, "responsible party is required")
	}
	return nil
}

func validateCost(c decimal.NullDecimal) error {
	if c.Valid && c.Decimal.IsNegative() {
		return ValidationError(CodeInvalidField, "acquisition cost cannot be negative")
	}
	return nil
}
