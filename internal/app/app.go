package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"inv-go/internal/config"
	"inv-go/internal/database"
	"inv-go/internal/encryption"
	"inv-go/internal/evidence"
	"inv-go/internal/fs"
	"inv-go/internal/inv"
)

// InvApp is the application layer between the adapters (CLI, HTTP) and
// InvService. It constructs all dependencies from config, journals mutating
// operations and owns the DB lifecycle.
type InvApp struct {
	cfg      *config.Config
	db       *database.SQLiteDatabase
	evidence inv.EvidenceStore
	files    fs.Files
	service  *inv.InvService
	op       *Operation
	logger   *slog.Logger
	logFile  *os.File
}

// NewInvApp creates a fully wired InvApp from the given config.
// operation identifies the command being run (e.g. "CreateAsset", "Serve").
// The caller must call Close when done.
func NewInvApp(cfg *config.Config, operation string) (*InvApp, error) {
	policy, err := PolicyFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	enc, err := encryption.NewEncryptorFromConfig(cfg.Encryption)
	if err != nil {
		return nil, fmt.Errorf("creating encryptor: %w", err)
	}

	store, err := evidence.NewEvidenceStoreFromConfig(context.Background(), cfg.Evidence, enc)
	if err != nil {
		return nil, fmt.Errorf("creating evidence store: %w", err)
	}

	db, err := database.NewDatabaseFromConfig(cfg.Database, cfg.SiteID)
	if err != nil {
		return nil, fmt.Errorf("creating database: %w", err)
	}

	if err := db.CheckMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database schema out of date: %w", err)
	}

	environment, err := LoadEnvironment()
	if err != nil {
		db.Close()
		return nil, err
	}

	opID := time.Now().UTC().Format("20060102T150405Z")
	logger, logFile, err := newLogger(cfg.LogDir, opID, parseLevel(environment.LogLevel))
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	svc := inv.NewInvService(db, store, db, db, policy, &slogAdapter{l: logger}, inv.RealClock{}, inv.UUIDGenerator{})

	return &InvApp{
		cfg:      cfg,
		db:       db,
		evidence: store,
		files:    fs.NewOSFiles(),
		service:  svc,
		op:       NewOperation(operation),
		logger:   logger,
		logFile:  logFile,
	}, nil
}

// PolicyFromConfig builds the permission grants and coordination routing
// from the [permissions] and [coordinations] sections.
func PolicyFromConfig(cfg *config.Config) (inv.Policy, error) {
	var overrides map[inv.Role][]inv.Capability
	if len(cfg.Permissions) > 0 {
		overrides = make(map[inv.Role][]inv.Capability, len(cfg.Permissions))
		for rawRole, rawCaps := range cfg.Permissions {
			role, err := inv.ParseRole(rawRole)
			if err != nil {
				return inv.Policy{}, fmt.Errorf("permissions: %w", err)
			}
			caps := make([]inv.Capability, 0, len(rawCaps))
			for _, rc := range rawCaps {
				c, err := inv.ParseCapability(rc)
				if err != nil {
					return inv.Policy{}, fmt.Errorf("permissions for %s: %w", role, err)
				}
				caps = append(caps, c)
			}
			overrides[role] = caps
		}
	}

	routing := inv.DefaultRouting()
	for rawClass, code := range cfg.Coordinations {
		class, err := inv.ParseClassification(rawClass)
		if err != nil {
			return inv.Policy{}, fmt.Errorf("coordinations: %w", err)
		}
		routing[class] = strings.ToUpper(strings.TrimSpace(code))
	}

	return inv.Policy{Gate: inv.NewGate(overrides), Routing: routing}, nil
}

// Identity returns the caller identity, taking each part from the flags when
// set and from the [identity] section otherwise.
func (a *InvApp) Identity(actorID, role string) (inv.Identity, error) {
	if actorID == "" {
		actorID = a.cfg.Identity.ActorID
	}
	if role == "" {
		role = a.cfg.Identity.Role
	}
	id, err := inv.NewIdentity(actorID, role)
	if err != nil {
		return inv.Identity{}, fmt.Errorf("identity: %w", err)
	}
	return id, nil
}

// Service exposes the core service for read operations and adapters.
func (a *InvApp) Service() *inv.InvService {
	return a.service
}

// Logger returns the application logger.
func (a *InvApp) Logger() *slog.Logger {
	return a.logger
}

// Config returns the config the app was built from.
func (a *InvApp) Config() *config.Config {
	return a.cfg
}

// Evidence returns the configured evidence store.
func (a *InvApp) Evidence() inv.EvidenceStore {
	return a.evidence
}

// journal persists the operation on first use and records a failure status.
// Only DB-mutating commands call it.
func (a *InvApp) journal(ctx context.Context, id inv.Identity, parameters string, fn func() error) error {
	if !a.op.Persisted() {
		a.op.ActorID = id.ActorID
		a.op.Parameters = parameters
		opID, err := a.db.StartOperation(ctx, a.op.Operation, id.ActorID, parameters)
		if err != nil {
			return fmt.Errorf("persisting operation: %w", err)
		}
		a.op.ID = opID
	}
	if err := fn(); err != nil {
		a.op.Status = StatusError
		return err
	}
	return nil
}

// Mutating operations

func (a *InvApp) CreateAsset(ctx context.Context, id inv.Identity, cmd inv.CreateAsset) (*inv.Asset, error) {
	var out *inv.Asset
	err := a.journal(ctx, id, "tag="+cmd.Tag, func() (err error) {
		out, err = a.service.CreateAsset(ctx, id, cmd)
		return err
	})
	return out, err
}

func (a *InvApp) EditAsset(ctx context.Context, id inv.Identity, cmd inv.EditAsset) (*inv.Asset, error) {
	var out *inv.Asset
	err := a.journal(ctx, id, "asset="+cmd.AssetID, func() (err error) {
		out, err = a.service.EditAsset(ctx, id, cmd)
		return err
	})
	return out, err
}

func (a *InvApp) ActivateAsset(ctx context.Context, id inv.Identity, assetID string) (*inv.Asset, error) {
	var out *inv.Asset
	err := a.journal(ctx, id, "asset="+assetID, func() (err error) {
		out, err = a.service.ActivateAsset(ctx, id, assetID)
		return err
	})
	return out, err
}

func (a *InvApp) DeleteAsset(ctx context.Context, id inv.Identity, assetID string) error {
	return a.journal(ctx, id, "asset="+assetID, func() error {
		return a.service.DeleteAsset(ctx, id, assetID)
	})
}

func (a *InvApp) ReassignCustody(ctx context.Context, id inv.Identity, cmd inv.ReassignCustody) (*inv.CustodyRecord, error) {
	var out *inv.CustodyRecord
	err := a.journal(ctx, id, "asset="+cmd.AssetID, func() (err error) {
		out, err = a.service.ReassignCustody(ctx, id, cmd)
		return err
	})
	return out, err
}

func (a *InvApp) CreateAssessment(ctx context.Context, id inv.Identity, cmd inv.CreateAssessment) (*inv.AssessmentRecord, error) {
	var out *inv.AssessmentRecord
	err := a.journal(ctx, id, "asset="+cmd.AssetID, func() (err error) {
		out, err = a.service.CreateAssessment(ctx, id, cmd)
		return err
	})
	return out, err
}

func (a *InvApp) EditAssessment(ctx context.Context, id inv.Identity, cmd inv.EditAssessment) (*inv.AssessmentRecord, error) {
	var out *inv.AssessmentRecord
	err := a.journal(ctx, id, "assessment="+cmd.AssessmentID, func() (err error) {
		out, err = a.service.EditAssessment(ctx, id, cmd)
		return err
	})
	return out, err
}

func (a *InvApp) SignAssessment(ctx context.Context, id inv.Identity, assessmentID string) (*inv.AssessmentRecord, error) {
	var out *inv.AssessmentRecord
	err := a.journal(ctx, id, "assessment="+assessmentID, func() (err error) {
		out, err = a.service.SignAssessment(ctx, id, assessmentID)
		return err
	})
	return out, err
}

func (a *InvApp) CancelAssessment(ctx context.Context, id inv.Identity, assessmentID string) (*inv.AssessmentRecord, error) {
	var out *inv.AssessmentRecord
	err := a.journal(ctx, id, "assessment="+assessmentID, func() (err error) {
		out, err = a.service.CancelAssessment(ctx, id, assessmentID)
		return err
	})
	return out, err
}

func (a *InvApp) SavePerson(ctx context.Context, id inv.Identity, cmd inv.SavePerson) (*inv.Person, error) {
	var out *inv.Person
	err := a.journal(ctx, id, "person="+cmd.Name, func() (err error) {
		out, err = a.service.SavePerson(ctx, id, cmd)
		return err
	})
	return out, err
}

func (a *InvApp) SetSigner(ctx context.Context, id inv.Identity, cmd inv.SetSigner) (*inv.SignerConfig, error) {
	var out *inv.SignerConfig
	err := a.journal(ctx, id, "coordination="+cmd.Coordination, func() (err error) {
		out, err = a.service.SetSigner(ctx, id, cmd)
		return err
	})
	return out, err
}

func (a *InvApp) SaveLocation(ctx context.Context, id inv.Identity, cmd inv.SaveLocation) (*inv.Location, error) {
	var out *inv.Location
	err := a.journal(ctx, id, "location="+cmd.Code, func() (err error) {
		out, err = a.service.SaveLocation(ctx, id, cmd)
		return err
	})
	return out, err
}

func (a *InvApp) DeleteLocation(ctx context.Context, id inv.Identity, locationID string) error {
	return a.journal(ctx, id, "location="+locationID, func() error {
		return a.service.DeleteLocation(ctx, id, locationID)
	})
}

func (a *InvApp) SaveSupplier(ctx context.Context, id inv.Identity, cmd inv.SaveSupplier) (*inv.Supplier, error) {
	var out *inv.Supplier
	err := a.journal(ctx, id, "supplier="+cmd.Name, func() (err error) {
		out, err = a.service.SaveSupplier(ctx, id, cmd)
		return err
	})
	return out, err
}

func (a *InvApp) DeleteSupplier(ctx context.Context, id inv.Identity, supplierID string) error {
	return a.journal(ctx, id, "supplier="+supplierID, func() error {
		return a.service.DeleteSupplier(ctx, id, supplierID)
	})
}

// AttachFile resolves a local file and attaches it as evidence. An empty
// kind is guessed from the file extension.
func (a *InvApp) AttachFile(ctx context.Context, id inv.Identity, ownerType inv.OwnerType, ownerID string, kind inv.EvidenceKind, purpose inv.EvidencePurpose, rawPath string) (*inv.Evidence, error) {
	f, err := a.files.Resolve(rawPath)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	if kind == "" {
		kind = fs.KindFor(f.Name)
	}

	var out *inv.Evidence
	err = a.journal(ctx, id, fmt.Sprintf("%s=%s file=%s", strings.ToLower(string(ownerType)), ownerID, f.Name), func() error {
		rc, err := a.files.Open(f)
		if err != nil {
			return fmt.Errorf("opening file: %w", err)
		}
		defer rc.Close()

		out, err = a.service.AttachEvidence(ctx, id, inv.AttachEvidence{
			OwnerType: ownerType,
			OwnerID:   ownerID,
			Kind:      kind,
			Purpose:   purpose,
			FileName:  f.Name,
			Size:      f.Size,
			Content:   rc,
		})
		return err
	})
	return out, err
}

// EvidenceEncrypted reports whether reading evidence requires a passphrase.
func (a *InvApp) EvidenceEncrypted() bool {
	return evidence.IsEncrypted(a.evidence)
}

// UnlockEvidence unlocks encrypted evidence for the lifetime of the app.
func (a *InvApp) UnlockEvidence(passphrase string) error {
	return evidence.Unlock(a.evidence, passphrase)
}

// SaveEvidence writes the content of an evidence record to outPath. A
// partially written file is removed on failure.
func (a *InvApp) SaveEvidence(ctx context.Context, id inv.Identity, evidenceID, outPath string, overwrite bool) (*inv.Evidence, error) {
	out, err := fs.CreateOutput(outPath, overwrite)
	if err != nil {
		return nil, err
	}
	ev, err := a.service.OpenEvidence(ctx, id, evidenceID, out)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("closing output file: %w", cerr)
	}
	if err != nil {
		os.Remove(outPath)
		return nil, err
	}
	return ev, nil
}

// WriteEvidence streams the content of an evidence record to w.
func (a *InvApp) WriteEvidence(ctx context.Context, id inv.Identity, evidenceID string, w io.Writer) (*inv.Evidence, error) {
	return a.service.OpenEvidence(ctx, id, evidenceID, w)
}

// GetHistory returns the most recent journaled operations.
func (a *InvApp) GetHistory(ctx context.Context, limit int) ([]*inv.Operation, error) {
	return a.db.ListOperations(ctx, limit)
}

// BackupDatabase writes a consistent copy of the database to destPath.
func (a *InvApp) BackupDatabase(destPath string) error {
	return a.db.BackupTo(destPath)
}

// Close finalizes the operation record and closes all resources.
func (a *InvApp) Close() error {
	var firstErr error

	if a.op.Persisted() {
		if err := a.db.FinishOperation(context.Background(), a.op.ID, a.op.Status); err != nil {
			firstErr = fmt.Errorf("finishing operation: %w", err)
		}
	}

	if err := a.db.Close(); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("closing database: %w", err)
	}

	if a.logFile != nil {
		a.logFile.Close()
	}

	return firstErr
}

// CheckEvidence verifies that the configured evidence store is reachable and writable.
func (a *InvApp) CheckEvidence() error {
	if err := a.evidence.ValidateSetup(); err != nil {
		return fmt.Errorf("evidence store: %w", err)
	}
	return nil
}
