// Row types for the tables in schema.sql.

package sqlc

import (
	"database/sql"
	"time"
)

type Assessment struct {
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

type Asset struct {
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

type CustodyRecord struct {
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

type Evidence struct {
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

type Location struct {
	ID        string
	Code      string
	Name      string
	SortOrder int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Movement struct {
	ID          string
	AssetID     string
	ActorID     string
	Category    string
	BeforeValue string
	AfterValue  string
	Reason      string
	Seq         int64
	CreatedAt   time.Time
}

type Operation struct {
	ID         int64
	Operation  string
	ActorID    string
	Parameters string
	StartedAt  time.Time
	FinishedAt sql.NullTime
	Status     string
}

type Personnel struct {
	ID        string
	Name      string
	TaxID     string
	Position  string
	Active    bool
	CreatedAt time.Time
}

type SignerConfig struct {
	Coordination string
	Title        string
	SignerName   string
	SignerTitle  string
	Active       bool
	UpdatedAt    time.Time
}

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
