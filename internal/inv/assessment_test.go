package inv_test

import (
	"context"
	"errors"
	"testing"

	"inv-go/internal/inv"
	"inv-go/internal/testutil"
)

// Scenario D: assessments need an ACTIVE asset and at most one DRAFT.
func TestCreateAssessment(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	env.SeedSigner(t, "MAINTENANCE", "Fabio Neri")

	draft := env.NewDraftAsset(t, testutil.Admin, "INV-001")
	_, err := env.Service.CreateAssessment(ctx, testutil.Maintenance, inv.CreateAssessment{AssetID: draft.ID, Body: "broken"})
	if !errors.Is(err, inv.ErrState) {
		t.Fatalf("CreateAssessment() on DRAFT asset error = %v, want STATE", err)
	}

	active := env.NewActiveAsset(t, "INV-002")
	rec, err := env.Service.CreateAssessment(ctx, testutil.Maintenance, inv.CreateAssessment{AssetID: active.ID, Body: "broken leg"})
	if err != nil {
		t.Fatalf("CreateAssessment() error = %v", err)
	}
	if rec.State != inv.AssessmentDraft || rec.Coordination != "MAINTENANCE" {
		t.Errorf("record = %s/%s, want DRAFT/MAINTENANCE", rec.State, rec.Coordination)
	}
	if rec.PhysicalLocation != active.Location {
		t.Errorf("PhysicalLocation = %q, want asset location %q", rec.PhysicalLocation, active.Location)
	}

	_, err = env.Service.CreateAssessment(ctx, testutil.Maintenance, inv.CreateAssessment{AssetID: active.ID, Body: "again"})
	if !errors.Is(err, inv.ErrConflict) || inv.CodeOf(err) != inv.CodeDraftAssessment {
		t.Errorf("second CreateAssessment() error = %v, want %s", err, inv.CodeDraftAssessment)
	}

	t.Run("unconfigured coordination", func(t *testing.T) {
		other := env.NewActiveAsset(t, "INV-003")
		_, err := env.Service.CreateAssessment(ctx, testutil.Maintenance, inv.CreateAssessment{AssetID: other.ID, Body: "x", Coordination: "technology"})
		if inv.CodeOf(err) != inv.CodeUnknownSigner {
			t.Errorf("CreateAssessment() error = %v, want %s", err, inv.CodeUnknownSigner)
		}
	})

	t.Run("missing body", func(t *testing.T) {
		_, err := env.Service.CreateAssessment(ctx, testutil.Maintenance, inv.CreateAssessment{AssetID: active.ID})
		if !errors.Is(err, inv.ErrValidation) {
			t.Errorf("CreateAssessment() error = %v, want VALIDATION", err)
		}
	})

	t.Run("technology cannot write", func(t *testing.T) {
		_, err := env.Service.CreateAssessment(ctx, testutil.Technology, inv.CreateAssessment{AssetID: active.ID, Body: "x"})
		if inv.CodeOf(err) != inv.CodeCapabilityDenied {
			t.Errorf("CreateAssessment() error = %v, want %s", err, inv.CodeCapabilityDenied)
		}
	})
}

func TestCreateAssessment_Routing(t *testing.T) {
	ctx := context.Background()
	routing := inv.CoordinationRouting{inv.ClassificationGeneral: "FACILITIES", inv.ClassificationIT: "IT_DESK"}
	env := testutil.NewEnvWithPolicy(t, inv.Policy{Routing: routing})
	env.SeedSigner(t, "IT_DESK", "Gil")

	a := env.NewDraftAsset(t, testutil.Admin, "INV-001")
	it := inv.ClassificationIT
	if _, err := env.Service.EditAsset(ctx, testutil.Admin, inv.EditAsset{AssetID: a.ID, Classification: &it}); err != nil {
		t.Fatalf("EditAsset() error = %v", err)
	}
	env.Attach(t, testutil.Admin, inv.OwnerAsset, a.ID, inv.EvidenceDocument, "", "invoice")
	env.Attach(t, testutil.Admin, inv.OwnerCustody, env.OpenCustody(t, a.ID).ID, inv.EvidenceDocument, "", "signed")
	if _, err := env.Service.ActivateAsset(ctx, testutil.Admin, a.ID); err != nil {
		t.Fatalf("ActivateAsset() error = %v", err)
	}

	rec, err := env.Service.CreateAssessment(ctx, testutil.Admin, inv.CreateAssessment{AssetID: a.ID, Body: "dead screen"})
	if err != nil {
		t.Fatalf("CreateAssessment() error = %v", err)
	}
	if rec.Coordination != "IT_DESK" {
		t.Errorf("Coordination = %q, want IT_DESK", rec.Coordination)
	}
}

// Scenario E: signing needs report evidence, then retires the asset and
// cancels every open custody record in one transaction.
func TestSignAssessment(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	env.SeedSigner(t, "MAINTENANCE", "Fabio Neri")
	a := env.NewActiveAsset(t, "INV-001")

	// Leave a pending DRAFT custody record next to the canceled one.
	env.Attach(t, testutil.Admin, inv.OwnerCustody, env.OpenCustody(t, a.ID).ID, inv.EvidenceDocument, "", "cancel")
	if _, err := env.Service.ReassignCustody(ctx, testutil.Admin, inv.ReassignCustody{AssetID: a.ID, Responsible: inv.ResponsibleParty{Name: "Eva"}}); err != nil {
		t.Fatalf("ReassignCustody() error = %v", err)
	}

	rec, err := env.Service.CreateAssessment(ctx, testutil.Maintenance, inv.CreateAssessment{AssetID: a.ID, Body: "rusted"})
	if err != nil {
		t.Fatalf("CreateAssessment() error = %v", err)
	}

	_, err = env.Service.SignAssessment(ctx, testutil.Maintenance, rec.ID)
	if !errors.Is(err, inv.ErrPrecondition) || inv.CodeOf(err) != inv.CodeMissingReport {
		t.Fatalf("SignAssessment() without evidence error = %v, want %s", err, inv.CodeMissingReport)
	}

	env.Attach(t, testutil.Maintenance, inv.OwnerAssessment, rec.ID, inv.EvidencePhoto, "", "photo")

	_, err = env.Service.SignAssessment(ctx, testutil.Auxiliary, rec.ID)
	if inv.CodeOf(err) != inv.CodeNotOwner {
		t.Errorf("SignAssessment() by non-creator error = %v, want %s", err, inv.CodeNotOwner)
	}

	signed, err := env.Service.SignAssessment(ctx, testutil.Maintenance, rec.ID)
	if err != nil {
		t.Fatalf("SignAssessment() error = %v", err)
	}
	if signed.State != inv.AssessmentSigned || signed.SignerName != "Fabio Neri" || signed.SignedAt == nil {
		t.Errorf("signed = %s by %q at %v", signed.State, signed.SignerName, signed.SignedAt)
	}

	asset, _ := env.DB.GetAsset(ctx, a.ID)
	if asset.State != inv.AssetRetired {
		t.Errorf("asset State = %s, want RETIRED", asset.State)
	}
	assertRetiredInvariant(t, env, a.ID)

	t.Run("retired asset rejects further work", func(t *testing.T) {
		_, err := env.Service.EditAsset(ctx, testutil.Admin, inv.EditAsset{AssetID: a.ID, Notes: strPtr("x")})
		if !errors.Is(err, inv.ErrState) {
			t.Errorf("EditAsset() error = %v, want STATE", err)
		}
		_, err = env.Service.CreateAssessment(ctx, testutil.Admin, inv.CreateAssessment{AssetID: a.ID, Body: "x"})
		if !errors.Is(err, inv.ErrState) {
			t.Errorf("CreateAssessment() error = %v, want STATE", err)
		}
		_, err = env.Service.SignAssessment(ctx, testutil.Admin, rec.ID)
		if !errors.Is(err, inv.ErrState) {
			t.Errorf("SignAssessment() again error = %v, want STATE", err)
		}
	})
}

func TestSignAssessment_SignerRemoved(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	signer := env.SeedSigner(t, "MAINTENANCE", "Fabio Neri")
	a := env.NewActiveAsset(t, "INV-001")
	rec, err := env.Service.CreateAssessment(ctx, testutil.Admin, inv.CreateAssessment{AssetID: a.ID, Body: "x"})
	if err != nil {
		t.Fatalf("CreateAssessment() error = %v", err)
	}
	env.Attach(t, testutil.Admin, inv.OwnerAssessment, rec.ID, inv.EvidenceDocument, "", "report")

	signer.Active = false
	if err := env.DB.SaveSignerConfig(ctx, signer); err != nil {
		t.Fatal(err)
	}

	_, err = env.Service.SignAssessment(ctx, testutil.Admin, rec.ID)
	if inv.CodeOf(err) != inv.CodeUnknownSigner {
		t.Errorf("SignAssessment() error = %v, want %s", err, inv.CodeUnknownSigner)
	}
	asset, _ := env.DB.GetAsset(ctx, a.ID)
	if asset.State != inv.AssetActive {
		t.Errorf("asset State = %s, want ACTIVE", asset.State)
	}
}

func TestEditAssessment(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	env.SeedSigner(t, "MAINTENANCE", "Fabio Neri")
	a := env.NewActiveAsset(t, "INV-001")
	rec, err := env.Service.CreateAssessment(ctx, testutil.Maintenance, inv.CreateAssessment{AssetID: a.ID, Body: "draft text"})
	if err != nil {
		t.Fatalf("CreateAssessment() error = %v", err)
	}

	edited, err := env.Service.EditAssessment(ctx, testutil.Maintenance, inv.EditAssessment{AssessmentID: rec.ID, Body: strPtr("final text"), AdministrativeUnit: strPtr("Unit 3")})
	if err != nil {
		t.Fatalf("EditAssessment() error = %v", err)
	}
	if edited.Body != "final text" || edited.AdministrativeUnit != "Unit 3" {
		t.Errorf("edited = %q / %q", edited.Body, edited.AdministrativeUnit)
	}

	_, err = env.Service.EditAssessment(ctx, testutil.Auxiliary, inv.EditAssessment{AssessmentID: rec.ID, Body: strPtr("hijack")})
	if inv.CodeOf(err) != inv.CodeNotOwner {
		t.Errorf("EditAssessment() by non-creator error = %v, want %s", err, inv.CodeNotOwner)
	}

	if _, err := env.Service.CancelAssessment(ctx, testutil.Admin, rec.ID); err != nil {
		t.Fatalf("CancelAssessment() error = %v", err)
	}
	_, err = env.Service.EditAssessment(ctx, testutil.Maintenance, inv.EditAssessment{AssessmentID: rec.ID, Body: strPtr("late")})
	if !errors.Is(err, inv.ErrState) {
		t.Errorf("EditAssessment() on CANCELED error = %v, want STATE", err)
	}
}

func TestCancelAssessment(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	env.SeedSigner(t, "MAINTENANCE", "Fabio Neri")
	a := env.NewActiveAsset(t, "INV-001")
	rec, err := env.Service.CreateAssessment(ctx, testutil.Maintenance, inv.CreateAssessment{AssetID: a.ID, Body: "x"})
	if err != nil {
		t.Fatalf("CreateAssessment() error = %v", err)
	}

	_, err = env.Service.CancelAssessment(ctx, testutil.Maintenance, rec.ID)
	if inv.CodeOf(err) != inv.CodeElevatedOnly {
		t.Errorf("CancelAssessment() by non-elevated error = %v, want %s", err, inv.CodeElevatedOnly)
	}

	first, err := env.Service.CancelAssessment(ctx, testutil.Admin, rec.ID)
	if err != nil {
		t.Fatalf("CancelAssessment() error = %v", err)
	}
	if first.State != inv.AssessmentCanceled || first.CanceledAt == nil {
		t.Fatalf("first cancel = %s at %v, want CANCELED", first.State, first.CanceledAt)
	}

	movesBefore, err := env.Service.ListMovements(ctx, testutil.Admin, a.ID)
	if err != nil {
		t.Fatalf("ListMovements() error = %v", err)
	}

	env.Clock.Advance(1)
	second, err := env.Service.CancelAssessment(ctx, testutil.Admin, rec.ID)
	if err != nil {
		t.Fatalf("second CancelAssessment() error = %v", err)
	}
	if !second.CanceledAt.Equal(*first.CanceledAt) || !second.UpdatedAt.Equal(first.UpdatedAt) {
		t.Errorf("second cancel changed the record: %v -> %v", first.CanceledAt, second.CanceledAt)
	}
	movesAfter, err := env.Service.ListMovements(ctx, testutil.Admin, a.ID)
	if err != nil {
		t.Fatalf("ListMovements() error = %v", err)
	}
	if len(movesAfter) != len(movesBefore) {
		t.Errorf("second cancel logged movements: %d -> %d entries", len(movesBefore), len(movesAfter))
	}

	asset, _ := env.DB.GetAsset(ctx, a.ID)
	if asset.State != inv.AssetActive {
		t.Errorf("asset State = %s, want ACTIVE after cancel", asset.State)
	}

	t.Run("a new draft can follow a canceled one", func(t *testing.T) {
		if _, err := env.Service.CreateAssessment(ctx, testutil.Maintenance, inv.CreateAssessment{AssetID: a.ID, Body: "again"}); err != nil {
			t.Errorf("CreateAssessment() error = %v", err)
		}
	})

	t.Run("signed cannot be canceled", func(t *testing.T) {
		other := env.NewActiveAsset(t, "INV-002")
		r, err := env.Service.CreateAssessment(ctx, testutil.Admin, inv.CreateAssessment{AssetID: other.ID, Body: "x"})
		if err != nil {
			t.Fatalf("CreateAssessment() error = %v", err)
		}
		env.Attach(t, testutil.Admin, inv.OwnerAssessment, r.ID, inv.EvidenceDocument, "", "report")
		if _, err := env.Service.SignAssessment(ctx, testutil.Admin, r.ID); err != nil {
			t.Fatalf("SignAssessment() error = %v", err)
		}
		if _, err := env.Service.CancelAssessment(ctx, testutil.Admin, r.ID); !errors.Is(err, inv.ErrState) {
			t.Errorf("CancelAssessment() on SIGNED error = %v, want STATE", err)
		}
	})
}

func TestGetAndListAssessments(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	env.SeedSigner(t, "MAINTENANCE", "Fabio Neri")
	a := env.NewActiveAsset(t, "INV-001")
	rec, err := env.Service.CreateAssessment(ctx, testutil.Maintenance, inv.CreateAssessment{AssetID: a.ID, Body: "x"})
	if err != nil {
		t.Fatalf("CreateAssessment() error = %v", err)
	}
	env.Attach(t, testutil.Maintenance, inv.OwnerAssessment, rec.ID, inv.EvidencePhoto, "", "photo")

	detail, err := env.Service.GetAssessment(ctx, testutil.Technology, rec.ID)
	if err != nil {
		t.Fatalf("GetAssessment() error = %v", err)
	}
	if detail.Asset.ID != a.ID || len(detail.Evidence) != 1 {
		t.Errorf("detail asset = %s, evidence = %d", detail.Asset.ID, len(detail.Evidence))
	}

	tests := []struct {
		name   string
		filter inv.AssessmentFilter
		want   int
	}{
		{name: "all", filter: inv.AssessmentFilter{}, want: 1},
		{name: "by state", filter: inv.AssessmentFilter{State: inv.AssessmentSigned}, want: 0},
		{name: "by creator", filter: inv.AssessmentFilter{CreatedBy: testutil.Maintenance.ActorID}, want: 1},
		{name: "by asset", filter: inv.AssessmentFilter{AssetID: "other"}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := env.Service.ListAssessments(ctx, testutil.Technology, tt.filter)
			if err != nil {
				t.Fatalf("ListAssessments() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("ListAssessments() returned %d, want %d", len(got), tt.want)
			}
		})
	}

	if _, err := env.Service.GetAssessment(ctx, testutil.Collaborator, rec.ID); inv.CodeOf(err) != inv.CodeCapabilityDenied {
		t.Errorf("GetAssessment() by collaborator error = %v, want %s", err, inv.CodeCapabilityDenied)
	}
}

// assertRetiredInvariant checks that a RETIRED asset has no open custody
// record and a SIGNED assessment.
func assertRetiredInvariant(t *testing.T, env *testutil.Env, assetID string) {
	t.Helper()
	ctx := context.Background()
	records, err := env.DB.ListCustodyRecords(ctx, assetID)
	if err != nil {
		t.Fatalf("ListCustodyRecords() error = %v", err)
	}
	for _, r := range records {
		if r.State != inv.CustodyCanceled {
			t.Errorf("custody record %s is %s, want CANCELED", r.ID, r.State)
		}
	}
	signed, err := env.DB.ListAssessments(ctx, inv.AssessmentFilter{AssetID: assetID, State: inv.AssessmentSigned})
	if err != nil {
		t.Fatalf("ListAssessments() error = %v", err)
	}
	if len(signed) != 1 {
		t.Errorf("got %d SIGNED assessments, want 1", len(signed))
	}
}
