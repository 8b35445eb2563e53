package inv_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"inv-go/internal/inv"
	"inv-go/internal/testutil"
)

func intPtr(n int) *int { return &n }

func TestSaveLocation(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)

	created, err := env.Service.SaveLocation(ctx, testutil.Control, inv.SaveLocation{Code: " b1 ", Name: "Building 1"})
	if err != nil {
		t.Fatalf("SaveLocation() error = %v", err)
	}
	if created.ID == "" || created.Code != "B1" || created.Order != 99 {
		t.Errorf("created = %+v, want new ID, code B1, order 99", created)
	}

	env.Clock.Advance(time.Minute)
	updated, err := env.Service.SaveLocation(ctx, testutil.Control, inv.SaveLocation{ID: created.ID, Code: "B1", Name: "Building 1 (north)", Order: intPtr(1)})
	if err != nil {
		t.Fatalf("SaveLocation() update error = %v", err)
	}
	if updated.ID != created.ID || updated.Order != 1 || !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("updated = %+v, want same ID and CreatedAt with order 1", updated)
	}

	if _, err := env.Service.SaveLocation(ctx, testutil.Admin, inv.SaveLocation{Code: "A0", Name: "Annex"}); err != nil {
		t.Fatalf("SaveLocation() error = %v", err)
	}
	list, err := env.Service.ListLocations(ctx, testutil.Collaborator)
	if err != nil {
		t.Fatalf("ListLocations() error = %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("ListLocations() returned %d entries, want 2", len(list))
	}
	if list[0].Code != "B1" {
		t.Errorf("first location = %q, want B1 by order", list[0].Code)
	}

	tests := []struct {
		name     string
		id       inv.Identity
		cmd      inv.SaveLocation
		wantCode string
	}{
		{"duplicate code", testutil.Admin, inv.SaveLocation{Code: "b1", Name: "Other"}, inv.CodeDuplicateLocation},
		{"unknown id", testutil.Admin, inv.SaveLocation{ID: "nope", Code: "X", Name: "X"}, inv.CodeLocationNotFound},
		{"missing name", testutil.Admin, inv.SaveLocation{Code: "X"}, inv.CodeMissingField},
		{"auxiliary", testutil.Auxiliary, inv.SaveLocation{Code: "X", Name: "X"}, inv.CodeCapabilityDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.Service.SaveLocation(ctx, tt.id, tt.cmd)
			if inv.CodeOf(err) != tt.wantCode {
				t.Errorf("SaveLocation() error = %v, want %s", err, tt.wantCode)
			}
		})
	}
}

func TestDeleteLocation(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	used := env.SeedLocation(t, "HQ", "Headquarters")
	free := env.SeedLocation(t, "ST", "Storage")

	a, err := env.Service.CreateAsset(ctx, testutil.Admin, inv.CreateAsset{
		Tag: "INV-001", Description: "Printer", LocationID: used.ID, Responsible: inv.ResponsibleParty{Name: "A"},
	})
	if err != nil {
		t.Fatalf("CreateAsset() error = %v", err)
	}

	err = env.Service.DeleteLocation(ctx, testutil.Admin, used.ID)
	if !errors.Is(err, inv.ErrConflict) || inv.CodeOf(err) != inv.CodeCatalogInUse {
		t.Errorf("DeleteLocation() in use error = %v, want %s", err, inv.CodeCatalogInUse)
	}
	if err := env.Service.DeleteLocation(ctx, testutil.Admin, "nope"); inv.CodeOf(err) != inv.CodeLocationNotFound {
		t.Errorf("DeleteLocation() unknown error = %v, want %s", err, inv.CodeLocationNotFound)
	}
	if err := env.Service.DeleteLocation(ctx, testutil.Collaborator, free.ID); inv.CodeOf(err) != inv.CodeCapabilityDenied {
		t.Errorf("DeleteLocation() collaborator error = %v, want %s", err, inv.CodeCapabilityDenied)
	}
	if err := env.Service.DeleteLocation(ctx, testutil.Admin, free.ID); err != nil {
		t.Fatalf("DeleteLocation() error = %v", err)
	}
	if got, _ := env.DB.GetLocation(ctx, free.ID); got != nil {
		t.Error("location still exists after DeleteLocation()")
	}

	// Unlinking the asset frees the entry.
	if _, err := env.Service.EditAsset(ctx, testutil.Admin, inv.EditAsset{AssetID: a.ID, Location: strPtr("Headquarters")}); err != nil {
		t.Fatalf("EditAsset() error = %v", err)
	}
	if err := env.Service.DeleteLocation(ctx, testutil.Admin, used.ID); err != nil {
		t.Errorf("DeleteLocation() after unlink error = %v", err)
	}
}

func TestListAssets_ByLocation(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	hq := env.SeedLocation(t, "HQ", "Headquarters")
	env.NewDraftAsset(t, testutil.Admin, "INV-001")
	for _, tag := range []string{"INV-002", "INV-003"} {
		if _, err := env.Service.CreateAsset(ctx, testutil.Admin, inv.CreateAsset{
			Tag: tag, Description: "Chair", LocationID: hq.ID, Responsible: inv.ResponsibleParty{Name: "A"},
		}); err != nil {
			t.Fatalf("CreateAsset(%s) error = %v", tag, err)
		}
	}

	got, err := env.Service.ListAssets(ctx, testutil.Collaborator, inv.AssetFilter{LocationID: hq.ID})
	if err != nil {
		t.Fatalf("ListAssets() error = %v", err)
	}
	if len(got) != 2 {
		t.Errorf("ListAssets() returned %d assets, want 2", len(got))
	}
	for _, a := range got {
		if a.LocationID != hq.ID {
			t.Errorf("asset %s LocationID = %q, want %q", a.Tag, a.LocationID, hq.ID)
		}
	}
}

func TestReassignCustody_ToCatalogLocation(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)
	lab := env.SeedLocation(t, "LAB", "Laboratory")
	a := env.NewActiveAsset(t, "INV-001")
	current := env.OpenCustody(t, a.ID)
	env.Attach(t, testutil.Admin, inv.OwnerCustody, current.ID, inv.EvidenceDocument, "", "cancellation")

	pending, err := env.Service.ReassignCustody(ctx, testutil.Admin, inv.ReassignCustody{
		AssetID:     a.ID,
		Responsible: inv.ResponsibleParty{Name: "Eva"},
		LocationID:  lab.ID,
		Reason:      "moved to lab",
	})
	if err != nil {
		t.Fatalf("ReassignCustody() error = %v", err)
	}
	if pending.Location != "Laboratory" {
		t.Errorf("new record Location = %q, want Laboratory", pending.Location)
	}
	stored, err := env.DB.GetAsset(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetAsset() error = %v", err)
	}
	if stored.LocationID != lab.ID || stored.Location != "Laboratory" {
		t.Errorf("asset location = %q %q, want %q Laboratory", stored.LocationID, stored.Location, lab.ID)
	}

	moves, _ := env.DB.ListMovements(ctx, a.ID)
	var found bool
	for _, m := range moves {
		if m.Category == inv.MovementLocationChange {
			found = true
		}
	}
	if !found {
		t.Errorf("no LOCATION_CHANGE movement in %d entries", len(moves))
	}
}

func TestSupplierCatalog(t *testing.T) {
	ctx := context.Background()
	env := testutil.NewEnv(t)

	sup, err := env.Service.SaveSupplier(ctx, testutil.Control, inv.SaveSupplier{Name: "Acme", TaxID: "acm-1", Email: "sales@acme.test"})
	if err != nil {
		t.Fatalf("SaveSupplier() error = %v", err)
	}
	if sup.TaxID != "ACM-1" {
		t.Errorf("TaxID = %q, want ACM-1", sup.TaxID)
	}

	got, err := env.Service.GetSupplier(ctx, testutil.Collaborator, sup.ID)
	if err != nil {
		t.Fatalf("GetSupplier() error = %v", err)
	}
	if got.Email != "sales@acme.test" {
		t.Errorf("Email = %q, want sales@acme.test", got.Email)
	}

	if _, err := env.Service.SaveSupplier(ctx, testutil.Control, inv.SaveSupplier{ID: sup.ID, Name: "Acme Ltd", Phone: "555-0100"}); err != nil {
		t.Fatalf("SaveSupplier() update error = %v", err)
	}
	list, err := env.Service.ListSuppliers(ctx, testutil.Collaborator)
	if err != nil {
		t.Fatalf("ListSuppliers() error = %v", err)
	}
	if len(list) != 1 || list[0].Name != "Acme Ltd" || list[0].Email != "" {
		t.Errorf("ListSuppliers() = %+v, want the replaced entry", list)
	}

	a, err := env.Service.CreateAsset(ctx, testutil.Admin, inv.CreateAsset{
		Tag: "INV-001", Description: "Router", SupplierID: sup.ID, Responsible: inv.ResponsibleParty{Name: "A"},
	})
	if err != nil {
		t.Fatalf("CreateAsset() error = %v", err)
	}
	if err := env.Service.DeleteSupplier(ctx, testutil.Admin, sup.ID); inv.CodeOf(err) != inv.CodeCatalogInUse {
		t.Errorf("DeleteSupplier() in use error = %v, want %s", err, inv.CodeCatalogInUse)
	}
	if err := env.Service.DeleteAsset(ctx, testutil.Admin, a.ID); err != nil {
		t.Fatalf("DeleteAsset() error = %v", err)
	}
	if err := env.Service.DeleteSupplier(ctx, testutil.Admin, sup.ID); err != nil {
		t.Fatalf("DeleteSupplier() error = %v", err)
	}
	if _, err := env.Service.GetSupplier(ctx, testutil.Admin, sup.ID); inv.CodeOf(err) != inv.CodeSupplierNotFound {
		t.Errorf("GetSupplier() after delete error = %v, want %s", err, inv.CodeSupplierNotFound)
	}
	if _, err := env.Service.SaveSupplier(ctx, testutil.Maintenance, inv.SaveSupplier{Name: "X"}); inv.CodeOf(err) != inv.CodeCapabilityDenied {
		t.Errorf("SaveSupplier() maintenance error = %v, want %s", err, inv.CodeCapabilityDenied)
	}
}
