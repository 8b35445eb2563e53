package inv

import "context"

// AssetFilter narrows ListAssets. Zero values match everything.
type AssetFilter struct {
	// Query matches tag, description or responsible name (substring, case-insensitive).
	Query          string
	State          AssetState
	Classification Classification
	LocationID     string
	Limit          int
	Offset         int
}

// AssessmentFilter narrows ListAssessments. Zero values match everything.
type AssessmentFilter struct {
	AssetID   string
	State     AssessmentState
	CreatedBy string
	Limit     int
}

// Store is the record-level persistence interface. Finders return (nil, nil)
// when the record does not exist. Writes that would break a uniqueness rule
// return a ConflictError.
type Store interface {
	// Assets

	GetAsset(ctx context.Context, id string) (*Asset, error)
	GetAssetByTag(ctx context.Context, tag string) (*Asset, error)
	ListAssets(ctx context.Context, filter AssetFilter) ([]*Asset, error)
	InsertAsset(ctx context.Context, asset *Asset) error
	UpdateAsset(ctx context.Context, asset *Asset) error

	// DeleteAsset removes the asset and every record that references it.
	DeleteAsset(ctx context.Context, id string) error

	// Custody records

	GetCustodyRecord(ctx context.Context, id string) (*CustodyRecord, error)

	// OpenCustodyRecord returns the asset's DRAFT or ACTIVE record, if any.
	OpenCustodyRecord(ctx context.Context, assetID string) (*CustodyRecord, error)

	// ListCustodyRecords returns the asset's records, newest first.
	ListCustodyRecords(ctx context.Context, assetID string) ([]*CustodyRecord, error)
	InsertCustodyRecord(ctx context.Context, record *CustodyRecord) error
	UpdateCustodyRecord(ctx context.Context, record *CustodyRecord) error

	// Assessments

	GetAssessment(ctx context.Context, id string) (*AssessmentRecord, error)
	DraftAssessment(ctx context.Context, assetID string) (*AssessmentRecord, error)
	ListAssessments(ctx context.Context, filter AssessmentFilter) ([]*AssessmentRecord, error)
	InsertAssessment(ctx context.Context, record *AssessmentRecord) error
	UpdateAssessment(ctx context.Context, record *AssessmentRecord) error

	// Evidence

	GetEvidence(ctx context.Context, id string) (*Evidence, error)
	InsertEvidence(ctx context.Context, evidence *Evidence) error
	ListEvidence(ctx context.Context, ownerType OwnerType, ownerID string) ([]*Evidence, error)
	ListAssetEvidence(ctx context.Context, assetID string) ([]*Evidence, error)

	// CountEvidence counts the owner's evidence of the given purpose.
	// An empty kind matches every kind.
	CountEvidence(ctx context.Context, ownerType OwnerType, ownerID string, purpose EvidencePurpose, kind EvidenceKind) (int, error)

	// Movement log

	AppendMovement(ctx context.Context, entry *MovementEntry) error

	// ListMovements returns the asset's entries in the order they were appended.
	ListMovements(ctx context.Context, assetID string) ([]*MovementEntry, error)

	// Directories

	GetPerson(ctx context.Context, id string) (*Person, error)
	ListPeople(ctx context.Context, includeInactive bool) ([]*Person, error)
	SavePerson(ctx context.Context, person *Person) error
	GetSignerConfig(ctx context.Context, coordination string) (*SignerConfig, error)
	ListSignerConfigs(ctx context.Context) ([]*SignerConfig, error)
	SaveSignerConfig(ctx context.Context, cfg *SignerConfig) error

	// Catalogs

	GetLocation(ctx context.Context, id string) (*Location, error)
	ListLocations(ctx context.Context) ([]*Location, error)
	SaveLocation(ctx context.Context, location *Location) error
	DeleteLocation(ctx context.Context, id string) error
	CountAssetsAtLocation(ctx context.Context, locationID string) (int, error)
	GetSupplier(ctx context.Context, id string) (*Supplier, error)
	ListSuppliers(ctx context.Context) ([]*Supplier, error)
	SaveSupplier(ctx context.Context, supplier *Supplier) error
	DeleteSupplier(ctx context.Context, id string) error
	CountAssetsBySupplier(ctx context.Context, supplierID string) (int, error)
}

// Database is a Store that can run atomic units of work.
type Database interface {
	Store

	// Update runs fn inside one write transaction. The transaction commits
	// only if fn returns nil; any error rolls back everything fn wrote.
	Update(ctx context.Context, fn func(tx Store) error) error

	// Operation journal

	StartOperation(ctx context.Context, operation, actorID, parameters string) (int64, error)
	FinishOperation(ctx context.Context, id int64, status string) error
	ListOperations(ctx context.Context, limit int) ([]*Operation, error)

	// Close closes the database connection.
	Close() error
}
