package testutil

import (
	"context"
	"strings"
	"testing"

	"inv-go/internal/database"
	"inv-go/internal/evidence"
	"inv-go/internal/inv"
)

// Identities for each role, used across service and adapter tests.
var (
	Admin        = inv.Identity{ActorID: "admin", Role: inv.RoleAdmin}
	Control      = inv.Identity{ActorID: "control", Role: inv.RoleAssetControl}
	Auxiliary    = inv.Identity{ActorID: "aux", Role: inv.RoleAssetAuxiliary}
	Maintenance  = inv.Identity{ActorID: "maint", Role: inv.RoleMaintenance}
	Technology   = inv.Identity{ActorID: "tech", Role: inv.RoleTechnology}
	Collaborator = inv.Identity{ActorID: "collab", Role: inv.RoleCollaborator}
)

// Env is an InvService wired to an in-memory database and evidence store
// with a fixed clock and sequential IDs.
type Env struct {
	Service  *inv.InvService
	DB       *database.SQLiteDatabase
	Evidence *evidence.MemoryStore
	Clock    *StubClock
	IDs      *StubIDGenerator
}

// NewEnv creates an Env with the default policy.
func NewEnv(t *testing.T) *Env {
	t.Helper()
	return NewEnvWithPolicy(t, inv.DefaultPolicy())
}

func NewEnvWithPolicy(t *testing.T, policy inv.Policy) *Env {
	t.Helper()
	return newEnv(NewTestDatabase(t), policy)
}

// NewFileEnv creates an Env backed by a database file, for tests that run
// service calls from several goroutines.
func NewFileEnv(t *testing.T) *Env {
	t.Helper()
	return newEnv(NewFileTestDatabase(t), inv.DefaultPolicy())
}

func newEnv(db *database.SQLiteDatabase, policy inv.Policy) *Env {
	store := NewTestEvidenceStore()
	clock := FixedClock()
	ids := NewStubIDGenerator()
	svc := inv.NewInvService(db, store, db, db, policy, inv.NewNopLogger(), clock, ids)
	return &Env{Service: svc, DB: db, Evidence: store, Clock: clock, IDs: ids}
}

// SeedPerson adds an active Personnel Directory entry.
func (e *Env) SeedPerson(t *testing.T, name, taxID string) *inv.Person {
	t.Helper()
	p := &inv.Person{
		ID:        e.IDs.New(),
		Name:      name,
		TaxID:     taxID,
		Position:  "Clerk",
		Active:    true,
		CreatedAt: e.Clock.Now(),
	}
	if err := e.DB.SavePerson(context.Background(), p); err != nil {
		t.Fatalf("SavePerson() error = %v", err)
	}
	return p
}

// SeedSigner configures an active signer for coordination.
func (e *Env) SeedSigner(t *testing.T, coordination, name string) *inv.SignerConfig {
	t.Helper()
	cfg := &inv.SignerConfig{
		Coordination: coordination,
		Title:        "Coordinator",
		SignerName:   name,
		SignerTitle:  "Head of " + strings.ToLower(coordination),
		Active:       true,
		UpdatedAt:    e.Clock.Now(),
	}
	if err := e.DB.SaveSignerConfig(context.Background(), cfg); err != nil {
		t.Fatalf("SaveSignerConfig() error = %v", err)
	}
	return cfg
}

// SeedLocation adds a Location Catalog entry.
func (e *Env) SeedLocation(t *testing.T, code, name string) *inv.Location {
	t.Helper()
	now := e.Clock.Now()
	l := &inv.Location{ID: e.IDs.New(), Code: code, Name: name, Order: 1, CreatedAt: now, UpdatedAt: now}
	if err := e.DB.SaveLocation(context.Background(), l); err != nil {
		t.Fatalf("SaveLocation() error = %v", err)
	}
	return l
}

// SeedSupplier adds a Supplier Catalog entry.
func (e *Env) SeedSupplier(t *testing.T, name string) *inv.Supplier {
	t.Helper()
	now := e.Clock.Now()
	sup := &inv.Supplier{ID: e.IDs.New(), Name: name, CreatedAt: now, UpdatedAt: now}
	if err := e.DB.SaveSupplier(context.Background(), sup); err != nil {
		t.Fatalf("SaveSupplier() error = %v", err)
	}
	return sup
}

// Attach uploads content as evidence and fails the test on error.
func (e *Env) Attach(t *testing.T, id inv.Identity, ownerType inv.OwnerType, ownerID string, kind inv.EvidenceKind, purpose inv.EvidencePurpose, content string) *inv.Evidence {
	t.Helper()
	name := "evidence.pdf"
	if purpose != "" {
		name = strings.ToLower(string(purpose)) + ".pdf"
	}
	ev, err := e.Service.AttachEvidence(context.Background(), id, inv.AttachEvidence{
		OwnerType: ownerType,
		OwnerID:   ownerID,
		Kind:      kind,
		Purpose:   purpose,
		FileName:  name,
		Size:      int64(len(content)),
		Content:   strings.NewReader(content),
	})
	if err != nil {
		t.Fatalf("AttachEvidence(%s %s) error = %v", ownerType, ownerID, err)
	}
	return ev
}

// NewDraftAsset creates a DRAFT asset with a manual responsible party.
func (e *Env) NewDraftAsset(t *testing.T, id inv.Identity, tag string) *inv.Asset {
	t.Helper()
	a, err := e.Service.CreateAsset(context.Background(), id, inv.CreateAsset{
		Tag:         tag,
		Description: "Desk " + tag,
		Location:    "Room 101",
		Responsible: inv.ResponsibleParty{Name: "Ana Souza", TaxID: "123"},
	})
	if err != nil {
		t.Fatalf("CreateAsset(%s) error = %v", tag, err)
	}
	return a
}

// OpenCustody returns the asset's open custody record and fails if there is none.
func (e *Env) OpenCustody(t *testing.T, assetID string) *inv.CustodyRecord {
	t.Helper()
	rec, err := e.DB.OpenCustodyRecord(context.Background(), assetID)
	if err != nil {
		t.Fatalf("OpenCustodyRecord() error = %v", err)
	}
	if rec == nil {
		t.Fatalf("asset %s has no open custody record", assetID)
	}
	return rec
}

// NewActiveAsset creates an asset as Admin, attaches the acquisition and
// signed custody evidence, and activates it.
func (e *Env) NewActiveAsset(t *testing.T, tag string) *inv.Asset {
	t.Helper()
	a := e.NewDraftAsset(t, Admin, tag)
	e.Attach(t, Admin, inv.OwnerAsset, a.ID, inv.EvidenceDocument, inv.PurposeAcquisition, "invoice")
	rec := e.OpenCustody(t, a.ID)
	e.Attach(t, Admin, inv.OwnerCustody, rec.ID, inv.EvidenceDocument, inv.PurposeCustodySigned, "signed form")
	active, err := e.Service.ActivateAsset(context.Background(), Admin, a.ID)
	if err != nil {
		t.Fatalf("ActivateAsset(%s) error = %v", tag, err)
	}
	return active
}
