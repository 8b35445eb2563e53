package inv

import (
	"context"
	"fmt"
)

// Policy carries the site-specific rules the service enforces.
type Policy struct {
	Gate    *Gate
	Routing CoordinationRouting
}

// DefaultPolicy uses the built-in role grants and coordination routing.
func DefaultPolicy() Policy {
	return Policy{Gate: NewGate(nil), Routing: DefaultRouting()}
}

// InvService runs every asset, custody and assessment operation. Each
// operation authorizes the caller, validates its command and applies all of
// its writes, movement entries included, in one transaction.
type InvService struct {
	db       Database
	evidence EvidenceStore
	people   PersonnelDirectory
	signers  SignerDirectory
	gate     *Gate
	routing  CoordinationRouting
	logger   Logger
	clock    Clock
	idgen    IDGenerator
}

// NewInvService creates an InvService. A zero Policy falls back to DefaultPolicy.
func NewInvService(db Database, evidence EvidenceStore, people PersonnelDirectory, signers SignerDirectory, policy Policy, logger Logger, clock Clock, idgen IDGenerator) *InvService {
	if policy.Gate == nil {
		policy.Gate = NewGate(nil)
	}
	if len(policy.Routing) == 0 {
		policy.Routing = DefaultRouting()
	}
	return &InvService{
		db:       db,
		evidence: evidence,
		people:   people,
		signers:  signers,
		gate:     policy.Gate,
		routing:  policy.Routing,
		logger:   logger,
		clock:    clock,
		idgen:    idgen,
	}
}

func requireAsset(ctx context.Context, st Store, id string) (*Asset, error) {
	a, err := st.GetAsset(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading asset: %w", err)
	}
	if a == nil {
		return nil, NotFoundError(CodeAssetNotFound, "asset %s not found", id)
	}
	return a, nil
}

func requireCustody(ctx context.Context, st Store, id string) (*CustodyRecord, error) {
	r, err := st.GetCustodyRecord(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading custody record: %w", err)
	}
	if r == nil {
		return nil, NotFoundError(CodeCustodyNotFound, "custody record %s not found", id)
	}
	return r, nil
}

func requireAssessment(ctx context.Context, st Store, id string) (*AssessmentRecord, error) {
	r, err := st.GetAssessment(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading assessment: %w", err)
	}
	if r == nil {
		return nil, NotFoundError(CodeAssessmentNotFound, "assessment %s not found", id)
	}
	return r, nil
}

// linkedLocation resolves a Location Catalog reference held by an asset.
func linkedLocation(ctx context.Context, st Store, id string) (*Location, error) {
	l, err := st.GetLocation(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading location: %w", err)
	}
	if l == nil {
		return nil, ValidationError(CodeUnknownLocation, "location %s is not in the catalog", id)
	}
	return l, nil
}

// linkedSupplier resolves a Supplier Catalog reference held by an asset.
func linkedSupplier(ctx context.Context, st Store, id string) (*Supplier, error) {
	sup, err := st.GetSupplier(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading supplier: %w", err)
	}
	if sup == nil {
		return nil, ValidationError(CodeUnknownSupplier, "supplier %s is not in the catalog", id)
	}
	return sup, nil
}

// resolveParty turns a directory reference or a manual entry into a snapshot.
func (s *InvService) resolveParty(ctx context.Context, personID string, manual ResponsibleParty) (ResponsibleParty, error) {
	if personID == "" {
		manual.PersonID = ""
		return manual, nil
	}
	p, err := s.people.LookupPerson(ctx, personID)
	if err != nil {
		return ResponsibleParty{}, fmt.Errorf("looking up person: %w", err)
	}
	if p == nil {
		return ResponsibleParty{}, ValidationError(CodeUnknownPerson, "person %s is not an active directory entry", personID)
	}
	return p.Snapshot(), nil
}

// resolveSigner fails with a ValidationError when no signer is configured for code.
func (s *InvService) resolveSigner(ctx context.Context, code string) (*SignerConfig, error) {
	if code == "" {
		return nil, ValidationError(CodeUnknownSigner, "no coordination resolved")
	}
	cfg, err := s.signers.SignerByCoordination(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("looking up signer: %w", err)
	}
	if cfg == nil {
		return nil, ValidationError(CodeUnknownSigner, "no signer configured for coordination %s", code)
	}
	return cfg, nil
}
