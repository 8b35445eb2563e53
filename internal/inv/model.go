package inv

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AssetState is the lifecycle state of an Asset. RETIRED is terminal.
type AssetState string

const (
	AssetDraft   AssetState = "DRAFT"
	AssetActive  AssetState = "ACTIVE"
	AssetRetired AssetState = "RETIRED"
)

// CustodyState is the state of a CustodyRecord. CANCELED records are history.
type CustodyState string

const (
	CustodyDraft    CustodyState = "DRAFT"
	CustodyActive   CustodyState = "ACTIVE"
	CustodyCanceled CustodyState = "CANCELED"
)

// Open reports whether the record still counts against the one-open-record rule.
func (s CustodyState) Open() bool {
	return s == CustodyDraft || s == CustodyActive
}

// AssessmentState is the state of an AssessmentRecord. SIGNED and CANCELED are terminal.
type AssessmentState string

const (
	AssessmentDraft    AssessmentState = "DRAFT"
	AssessmentSigned   AssessmentState = "SIGNED"
	AssessmentCanceled AssessmentState = "CANCELED"
)

// Classification groups assets and selects the coordination that signs their assessments.
type Classification string

const (
	ClassificationGeneral Classification = "GENERAL"
	ClassificationIT      Classification = "IT"
)

// Condition is the physical condition recorded for an asset.
type Condition string

const (
	ConditionNew       Condition = "NEW"
	ConditionExcellent Condition = "EXCELLENT"
	ConditionVeryGood  Condition = "VERY_GOOD"
	ConditionGood      Condition = "GOOD"
	ConditionFair      Condition = "FAIR"
	ConditionPoor      Condition = "POOR"
	ConditionUnusable  Condition = "UNUSABLE"
	ConditionInRepair  Condition = "IN_REPAIR"
)

// MovementCategory classifies a Movement Log entry.
type MovementCategory string

const (
	MovementResponsibleChange MovementCategory = "RESPONSIBLE_CHANGE"
	MovementLocationChange    MovementCategory = "LOCATION_CHANGE"
	MovementOther             MovementCategory = "OTHER"
)

// EvidenceKind is the media kind of an uploaded evidence file.
type EvidenceKind string

const (
	EvidenceDocument EvidenceKind = "DOCUMENT"
	EvidencePhoto    EvidenceKind = "PHOTO"
)

// EvidencePurpose says which transition an evidence file substantiates.
type EvidencePurpose string

const (
	PurposeAcquisition         EvidencePurpose = "ACQUISITION"
	PurposeCustodySigned       EvidencePurpose = "CUSTODY_SIGNED"
	PurposeCustodyCancellation EvidencePurpose = "CUSTODY_CANCELLATION"
	PurposeAssessmentReport    EvidencePurpose = "ASSESSMENT_REPORT"
)

// OwnerType identifies the record an evidence file is attached to.
type OwnerType string

const (
	OwnerAsset      OwnerType = "ASSET"
	OwnerCustody    OwnerType = "CUSTODY"
	OwnerAssessment OwnerType = "ASSESSMENT"
)

// OwnerType returns the only owner type that may carry evidence of this purpose.
func (p EvidencePurpose) OwnerType() OwnerType {
	switch p {
	case PurposeAcquisition:
		return OwnerAsset
	case PurposeCustodySigned, PurposeCustodyCancellation:
		return OwnerCustody
	case PurposeAssessmentReport:
		return OwnerAssessment
	}
	return ""
}

var (
	assetStates      = []AssetState{AssetDraft, AssetActive, AssetRetired}
	custodyStates    = []CustodyState{CustodyDraft, CustodyActive, CustodyCanceled}
	assessmentStates = []AssessmentState{AssessmentDraft, AssessmentSigned, AssessmentCanceled}
	classifications  = []Classification{ClassificationGeneral, ClassificationIT}
	conditions       = []Condition{
		ConditionNew, ConditionExcellent, ConditionVeryGood, ConditionGood,
		ConditionFair, ConditionPoor, ConditionUnusable, ConditionInRepair,
	}
	evidenceKinds    = []EvidenceKind{EvidenceDocument, EvidencePhoto}
	evidencePurposes = []EvidencePurpose{
		PurposeAcquisition, PurposeCustodySigned, PurposeCustodyCancellation, PurposeAssessmentReport,
	}
	ownerTypes = []OwnerType{OwnerAsset, OwnerCustody, OwnerAssessment}
)

// parseEnum normalizes raw (trim, uppercase, '-' and ' ' to '_') and matches it
// against the closed set of allowed values.
func parseEnum[T ~string](field, raw string, allowed []T) (T, error) {
	norm := strings.ToUpper(strings.TrimSpace(raw))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	for _, v := range allowed {
		if string(v) == norm {
			return v, nil
		}
	}
	var zero T
	return zero, ValidationError(CodeInvalidField, "invalid %s: %q", field, raw)
}

// ParseAssetState normalizes raw and returns the matching AssetState.
func ParseAssetState(raw string) (AssetState, error) {
	return parseEnum("asset state", raw, assetStates)
}

// ParseCustodyState normalizes raw and returns the matching CustodyState.
func ParseCustodyState(raw string) (CustodyState, error) {
	return parseEnum("custody state", raw, custodyStates)
}

// ParseAssessmentState normalizes raw and returns the matching AssessmentState.
func ParseAssessmentState(raw string) (AssessmentState, error) {
	return parseEnum("assessment state", raw, assessmentStates)
}

// ParseClassification accepts "it", "General" and the like.
func ParseClassification(raw string) (Classification, error) {
	return parseEnum("classification", raw, classifications)
}

// ParseCondition accepts "very good", "very-good" or "VERY_GOOD".
func ParseCondition(raw string) (Condition, error) {
	return parseEnum("condition", raw, conditions)
}

// ParseEvidenceKind normalizes raw and returns the matching EvidenceKind.
func ParseEvidenceKind(raw string) (EvidenceKind, error) {
	return parseEnum("evidence kind", raw, evidenceKinds)
}

// ParseEvidencePurpose normalizes raw and returns the matching EvidencePurpose.
func ParseEvidencePurpose(raw string) (EvidencePurpose, error) {
	return parseEnum("evidence purpose", raw, evidencePurposes)
}

// ParseOwnerType normalizes raw and returns the matching OwnerType.
func ParseOwnerType(raw string) (OwnerType, error) {
	return parseEnum("owner type", raw, ownerTypes)
}

// ResponsibleParty is the snapshot of the person entrusted with an asset.
// PersonID is set only when the snapshot came from the Personnel Directory.
type ResponsibleParty struct {
	PersonID string
	Name     string
	TaxID    string
	Position string
}

// IsZero reports whether no responsible party has been set.
func (p ResponsibleParty) IsZero() bool {
	return p == ResponsibleParty{}
}

func (p ResponsibleParty) String() string {
	s := p.Name
	if p.TaxID != "" {
		s += " (" + p.TaxID + ")"
	}
	if p.Position != "" {
		s += ", " + p.Position
	}
	return s
}

// Asset is a physical item tracked by a unique inventory tag. Location is the
// display name; LocationID links it to the Location Catalog when set.
type Asset struct {
	ID              string
	Tag             string
	Description     string
	Classification  Classification
	Brand           string
	Model           string
	SerialNumber    string
	InvoiceNumber   string
	Notes           string
	Location        string
	LocationID      string
	Condition       Condition
	AcquisitionCost decimal.NullDecimal
	SupplierID      string
	Responsible     ResponsibleParty
	State           AssetState
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// CustodyRecord records who is entrusted with an asset and where it is kept.
type CustodyRecord struct {
	ID          string
	AssetID     string
	State       CustodyState
	Responsible ResponsibleParty
	Location    string
	CreatedBy   string
	CreatedAt   time.Time
	CanceledBy  string
	CanceledAt  *time.Time
}

// AssessmentRecord is a technical write-off report. Signing it retires the asset.
type AssessmentRecord struct {
	ID                 string
	AssetID            string
	State              AssessmentState
	Coordination       string
	Body               string
	AdministrativeUnit string
	PhysicalLocation   string
	SignerName         string
	SignerTitle        string
	SignedBy           string
	SignedAt           *time.Time
	CanceledBy         string
	CanceledAt         *time.Time
	CreatedBy          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// MovementEntry is one immutable line of an asset's audit trail.
type MovementEntry struct {
	ID        string
	AssetID   string
	ActorID   string
	Category  MovementCategory
	Before    string
	After     string
	Reason    string
	CreatedAt time.Time
}

// Evidence is an uploaded file attached to an asset, custody record or assessment.
// AssetID is always the asset the owner belongs to.
type Evidence struct {
	ID         string
	AssetID    string
	OwnerType  OwnerType
	OwnerID    string
	Kind       EvidenceKind
	Purpose    EvidencePurpose
	FileName   string
	FileRef    string
	Size       int64
	Checksum   string
	UploadedBy string
	UploadedAt time.Time
}

// Person is a Personnel Directory entry.
type Person struct {
	ID        string
	Name      string
	TaxID     string
	Position  string
	Active    bool
	CreatedAt time.Time
}

// Snapshot copies the directory entry into a responsible-party snapshot.
func (p *Person) Snapshot() ResponsibleParty {
	return ResponsibleParty{PersonID: p.ID, Name: p.Name, TaxID: p.TaxID, Position: p.Position}
}

// SignerConfig names who signs assessments for a coordination.
type SignerConfig struct {
	Coordination string
	Title        string
	SignerName   string
	SignerTitle  string
	Active       bool
	UpdatedAt    time.Time
}

// Location is a Location Catalog entry. Order sorts the catalog for display.
type Location struct {
	ID        string
	Code      string
	Name      string
	Order     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Supplier is a Supplier Catalog entry.
type Supplier struct {
	ID        string
	Name      string
	TaxID     string
	Phone     string
	Email     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Operation is a journal entry for a command run against the store.
type Operation struct {
	ID         int64
	Operation  string
	ActorID    string
	Parameters string
	StartedAt  time.Time
	FinishedAt *time.Time
	Status     string
}

// AssetDetail bundles an asset with everything attached to it.
type AssetDetail struct {
	Asset       *Asset
	Custody     []*CustodyRecord
	Assessments []*AssessmentRecord
	Evidence    []*Evidence
	Movements   []*MovementEntry
}

// AssessmentDetail bundles an assessment with its evidence.
type AssessmentDetail struct {
	Assessment *AssessmentRecord
	Asset      *Asset
	Evidence   []*Evidence
}

func formatCost(d decimal.NullDecimal) string {
	if !d.Valid {
		return ""
	}
	return d.Decimal.StringFixed(2)
}
