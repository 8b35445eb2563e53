package database

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"inv-go/internal/inv"
)

// newTestDB creates a new in-memory database with schema applied.
func newTestDB(t *testing.T) *SQLiteDatabase {
	t.Helper()

	db, err := NewSQLiteDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}

	if _, err := db.db.Exec(Schema); err != nil {
		db.Close()
		t.Fatalf("failed to apply schema: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}

var testTime = time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

func newAsset(id, tag string) *inv.Asset {
	return &inv.Asset{
		ID:             id,
		Tag:            tag,
		Description:    "Office chair",
		Classification: inv.ClassificationGeneral,
		Condition:      inv.ConditionGood,
		Location:       "Room 101",
		Responsible:    inv.ResponsibleParty{Name: "Ana Ruiz", TaxID: "RUAA800101"},
		State:          inv.AssetDraft,
		CreatedBy:      "user-1",
		CreatedAt:      testTime,
		UpdatedAt:      testTime,
	}
}

func newCustody(id, assetID string, state inv.CustodyState) *inv.CustodyRecord {
	return &inv.CustodyRecord{
		ID:          id,
		AssetID:     assetID,
		State:       state,
		Responsible: inv.ResponsibleParty{Name: "Ana Ruiz"},
		Location:    "Room 101",
		CreatedBy:   "user-1",
		CreatedAt:   testTime,
	}
}

func mustInsertAsset(t *testing.T, db *SQLiteDatabase, a *inv.Asset) {
	t.Helper()
	if err := db.InsertAsset(context.Background(), a); err != nil {
		t.Fatalf("InsertAsset() error = %v", err)
	}
}

func TestSQLiteDatabase_Assets(t *testing.T) {
	ctx := context.Background()

	t.Run("returns nil when asset not found", func(t *testing.T) {
		db := newTestDB(t)

		a, err := db.GetAsset(ctx, "missing")
		if err != nil {
			t.Fatalf("GetAsset() error = %v", err)
		}
		if a != nil {
			t.Errorf("GetAsset() = %v, want nil", a)
		}
	})

	t.Run("round trips every field", func(t *testing.T) {
		db := newTestDB(t)

		a := newAsset("a-1", "INV-001")
		a.AcquisitionCost = decimal.NewNullDecimal(decimal.RequireFromString("1234.50"))
		a.Responsible.PersonID = "p-1"
		mustInsertAsset(t, db, a)

		got, err := db.GetAssetByTag(ctx, "INV-001")
		if err != nil {
			t.Fatalf("GetAssetByTag() error = %v", err)
		}
		if got == nil {
			t.Fatal("GetAssetByTag() returned nil")
		}
		if got.ID != "a-1" || got.Description != "Office chair" || got.Location != "Room 101" {
			t.Errorf("GetAssetByTag() = %+v", got)
		}
		if !got.AcquisitionCost.Valid || !got.AcquisitionCost.Decimal.Equal(decimal.RequireFromString("1234.5")) {
			t.Errorf("AcquisitionCost = %v, want 1234.5", got.AcquisitionCost)
		}
		if got.Responsible != a.Responsible {
			t.Errorf("Responsible = %+v, want %+v", got.Responsible, a.Responsible)
		}
		if !got.CreatedAt.Equal(testTime) {
			t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, testTime)
		}
	})

	t.Run("missing cost stays null", func(t *testing.T) {
		db := newTestDB(t)
		mustInsertAsset(t, db, newAsset("a-1", "INV-001"))

		got, err := db.GetAsset(ctx, "a-1")
		if err != nil {
			t.Fatalf("GetAsset() error = %v", err)
		}
		if got.AcquisitionCost.Valid {
			t.Errorf("AcquisitionCost = %v, want null", got.AcquisitionCost)
		}
	})

	t.Run("duplicate tag is a conflict", func(t *testing.T) {
		db := newTestDB(t)
		mustInsertAsset(t, db, newAsset("a-1", "INV-001"))

		err := db.InsertAsset(ctx, newAsset("a-2", "INV-001"))
		if !errors.Is(err, inv.ErrConflict) {
			t.Fatalf("InsertAsset() error = %v, want conflict", err)
		}
		if inv.CodeOf(err) != inv.CodeDuplicateTag {
			t.Errorf("CodeOf() = %q, want %q", inv.CodeOf(err), inv.CodeDuplicateTag)
		}
	})

	t.Run("update persists changes", func(t *testing.T) {
		db := newTestDB(t)
		a := newAsset("a-1", "INV-001")
		mustInsertAsset(t, db, a)

		a.Location = "Room 202"
		a.State = inv.AssetActive
		a.UpdatedAt = testTime.Add(time.Hour)
		if err := db.UpdateAsset(ctx, a); err != nil {
			t.Fatalf("UpdateAsset() error = %v", err)
		}

		got, _ := db.GetAsset(ctx, "a-1")
		if got.Location != "Room 202" || got.State != inv.AssetActive {
			t.Errorf("GetAsset() = %+v", got)
		}
	})
}

func TestSQLiteDatabase_ListAssets(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	for i, tag := range []string{"INV-001", "INV-002", "IT-001"} {
		a := newAsset(fmt.Sprintf("a-%d", i), tag)
		a.CreatedAt = testTime.Add(time.Duration(i) * time.Minute)
		if tag == "IT-001" {
			a.Classification = inv.ClassificationIT
			a.Description = "Laptop"
			a.State = inv.AssetActive
		}
		mustInsertAsset(t, db, a)
	}

	tests := []struct {
		name   string
		filter inv.AssetFilter
		want   []string
	}{
		{"everything newest first", inv.AssetFilter{}, []string{"IT-001", "INV-002", "INV-001"}},
		{"by state", inv.AssetFilter{State: inv.AssetDraft}, []string{"INV-002", "INV-001"}},
		{"by classification", inv.AssetFilter{Classification: inv.ClassificationIT}, []string{"IT-001"}},
		{"by query on description", inv.AssetFilter{Query: "laptop"}, []string{"IT-001"}},
		{"by query on responsible", inv.AssetFilter{Query: "ruiz"}, []string{"IT-001", "INV-002", "INV-001"}},
		{"paged", inv.AssetFilter{Limit: 1, Offset: 1}, []string{"INV-002"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := db.ListAssets(ctx, tt.filter)
			if err != nil {
				t.Fatalf("ListAssets() error = %v", err)
			}
			var tags []string
			for _, a := range got {
				tags = append(tags, a.Tag)
			}
			if fmt.Sprint(tags) != fmt.Sprint(tt.want) {
				t.Errorf("ListAssets() tags = %v, want %v", tags, tt.want)
			}
		})
	}
}

func TestSQLiteDatabase_CustodyRecords(t *testing.T) {
	ctx := context.Background()

	t.Run("only one open record per asset", func(t *testing.T) {
		db := newTestDB(t)
		mustInsertAsset(t, db, newAsset("a-1", "INV-001"))

		if err := db.InsertCustodyRecord(ctx, newCustody("c-1", "a-1", inv.CustodyActive)); err != nil {
			t.Fatalf("InsertCustodyRecord() error = %v", err)
		}
		err := db.InsertCustodyRecord(ctx, newCustody("c-2", "a-1", inv.CustodyDraft))
		if !errors.Is(err, inv.ErrConflict) {
			t.Fatalf("InsertCustodyRecord() error = %v, want conflict", err)
		}
		if inv.CodeOf(err) != inv.CodeOpenCustodyExists {
			t.Errorf("CodeOf() = %q, want %q", inv.CodeOf(err), inv.CodeOpenCustodyExists)
		}
	})

	t.Run("canceled records do not count as open", func(t *testing.T) {
		db := newTestDB(t)
		mustInsertAsset(t, db, newAsset("a-1", "INV-001"))

		old := newCustody("c-1", "a-1", inv.CustodyCanceled)
		canceledAt := testTime
		old.CanceledAt = &canceledAt
		old.CanceledBy = "admin"
		if err := db.InsertCustodyRecord(ctx, old); err != nil {
			t.Fatalf("InsertCustodyRecord() error = %v", err)
		}
		if err := db.InsertCustodyRecord(ctx, newCustody("c-2", "a-1", inv.CustodyDraft)); err != nil {
			t.Fatalf("InsertCustodyRecord() error = %v", err)
		}

		open, err := db.OpenCustodyRecord(ctx, "a-1")
		if err != nil {
			t.Fatalf("OpenCustodyRecord() error = %v", err)
		}
		if open == nil || open.ID != "c-2" {
			t.Errorf("OpenCustodyRecord() = %+v, want c-2", open)
		}

		got, err := db.GetCustodyRecord(ctx, "c-1")
		if err != nil {
			t.Fatalf("GetCustodyRecord() error = %v", err)
		}
		if got.CanceledAt == nil || !got.CanceledAt.Equal(testTime) || got.CanceledBy != "admin" {
			t.Errorf("GetCustodyRecord() = %+v", got)
		}

		all, err := db.ListCustodyRecords(ctx, "a-1")
		if err != nil {
			t.Fatalf("ListCustodyRecords() error = %v", err)
		}
		if len(all) != 2 || all[0].ID != "c-2" {
			t.Errorf("ListCustodyRecords() = %v, want c-2 first", all)
		}
	})

	t.Run("no open record", func(t *testing.T) {
		db := newTestDB(t)
		mustInsertAsset(t, db, newAsset("a-1", "INV-001"))

		open, err := db.OpenCustodyRecord(ctx, "a-1")
		if err != nil {
			t.Fatalf("OpenCustodyRecord() error = %v", err)
		}
		if open != nil {
			t.Errorf("OpenCustodyRecord() = %+v, want nil", open)
		}
	})
}

func TestSQLiteDatabase_Assessments(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	mustInsertAsset(t, db, newAsset("a-1", "INV-001"))

	draft := &inv.AssessmentRecord{
		ID:           "as-1",
		AssetID:      "a-1",
		State:        inv.AssessmentDraft,
		Coordination: "MAINTENANCE",
		Body:         "Broken beyond repair",
		CreatedBy:    "user-1",
		CreatedAt:    testTime,
		UpdatedAt:    testTime,
	}
	if err := db.InsertAssessment(ctx, draft); err != nil {
		t.Fatalf("InsertAssessment() error = %v", err)
	}

	second := *draft
	second.ID = "as-2"
	err := db.InsertAssessment(ctx, &second)
	if !errors.Is(err, inv.ErrConflict) || inv.CodeOf(err) != inv.CodeDraftAssessment {
		t.Fatalf("InsertAssessment() error = %v, want draft assessment conflict", err)
	}

	got, err := db.DraftAssessment(ctx, "a-1")
	if err != nil {
		t.Fatalf("DraftAssessment() error = %v", err)
	}
	if got == nil || got.ID != "as-1" {
		t.Fatalf("DraftAssessment() = %+v, want as-1", got)
	}

	signedAt := testTime.Add(time.Hour)
	got.State = inv.AssessmentSigned
	got.SignerName = "Luis Soto"
	got.SignedBy = "admin"
	got.SignedAt = &signedAt
	if err := db.UpdateAssessment(ctx, got); err != nil {
		t.Fatalf("UpdateAssessment() error = %v", err)
	}

	if d, _ := db.DraftAssessment(ctx, "a-1"); d != nil {
		t.Errorf("DraftAssessment() after signing = %+v, want nil", d)
	}
	list, err := db.ListAssessments(ctx, inv.AssessmentFilter{AssetID: "a-1", State: inv.AssessmentSigned})
	if err != nil {
		t.Fatalf("ListAssessments() error = %v", err)
	}
	if len(list) != 1 || list[0].SignedAt == nil || !list[0].SignedAt.Equal(signedAt) {
		t.Errorf("ListAssessments() = %+v", list)
	}
}

func TestSQLiteDatabase_Evidence(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	mustInsertAsset(t, db, newAsset("a-1", "INV-001"))

	for i, kind := range []inv.EvidenceKind{inv.EvidencePhoto, inv.EvidenceDocument} {
		err := db.InsertEvidence(ctx, &inv.Evidence{
			ID:         fmt.Sprintf("e-%d", i),
			AssetID:    "a-1",
			OwnerType:  inv.OwnerAsset,
			OwnerID:    "a-1",
			Kind:       kind,
			Purpose:    inv.PurposeAcquisition,
			FileName:   "invoice.pdf",
			FileRef:    "a-1/ref",
			Size:       10,
			Checksum:   "abc",
			UploadedBy: "user-1",
			UploadedAt: testTime,
		})
		if err != nil {
			t.Fatalf("InsertEvidence() error = %v", err)
		}
	}

	tests := []struct {
		name string
		kind inv.EvidenceKind
		want int
	}{
		{"any kind", "", 2},
		{"documents only", inv.EvidenceDocument, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := db.CountEvidence(ctx, inv.OwnerAsset, "a-1", inv.PurposeAcquisition, tt.kind)
			if err != nil {
				t.Fatalf("CountEvidence() error = %v", err)
			}
			if n != tt.want {
				t.Errorf("CountEvidence() = %d, want %d", n, tt.want)
			}
		})
	}

	list, err := db.ListEvidence(ctx, inv.OwnerAsset, "a-1")
	if err != nil {
		t.Fatalf("ListEvidence() error = %v", err)
	}
	if len(list) != 2 || list[0].ID != "e-0" {
		t.Errorf("ListEvidence() = %+v", list)
	}
	if ev, _ := db.GetEvidence(ctx, "missing"); ev != nil {
		t.Errorf("GetEvidence() = %+v, want nil", ev)
	}
}

func TestSQLiteDatabase_Movements(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	mustInsertAsset(t, db, newAsset("a-1", "INV-001"))

	// Same timestamp for every entry; order must still follow appends.
	for i := 0; i < 3; i++ {
		err := db.AppendMovement(ctx, &inv.MovementEntry{
			ID:        fmt.Sprintf("m-%d", 3-i),
			AssetID:   "a-1",
			ActorID:   "user-1",
			Category:  inv.MovementOther,
			After:     fmt.Sprintf("step %d", i),
			CreatedAt: testTime,
		})
		if err != nil {
			t.Fatalf("AppendMovement() error = %v", err)
		}
	}

	got, err := db.ListMovements(ctx, "a-1")
	if err != nil {
		t.Fatalf("ListMovements() error = %v", err)
	}
	for i, m := range got {
		if want := fmt.Sprintf("step %d", i); m.After != want {
			t.Errorf("ListMovements()[%d].After = %q, want %q", i, m.After, want)
		}
	}
}

func TestSQLiteDatabase_DeleteAsset(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	mustInsertAsset(t, db, newAsset("a-1", "INV-001"))
	mustInsertAsset(t, db, newAsset("a-2", "INV-002"))

	if err := db.InsertCustodyRecord(ctx, newCustody("c-1", "a-1", inv.CustodyDraft)); err != nil {
		t.Fatalf("InsertCustodyRecord() error = %v", err)
	}
	if err := db.InsertCustodyRecord(ctx, newCustody("c-2", "a-2", inv.CustodyDraft)); err != nil {
		t.Fatalf("InsertCustodyRecord() error = %v", err)
	}
	if err := db.AppendMovement(ctx, &inv.MovementEntry{ID: "m-1", AssetID: "a-1", Category: inv.MovementOther, CreatedAt: testTime}); err != nil {
		t.Fatalf("AppendMovement() error = %v", err)
	}

	if err := db.DeleteAsset(ctx, "a-1"); err != nil {
		t.Fatalf("DeleteAsset() error = %v", err)
	}

	if a, _ := db.GetAsset(ctx, "a-1"); a != nil {
		t.Error("asset a-1 still exists")
	}
	if c, _ := db.GetCustodyRecord(ctx, "c-1"); c != nil {
		t.Error("custody record c-1 still exists")
	}
	if m, _ := db.ListMovements(ctx, "a-1"); len(m) != 0 {
		t.Errorf("movements for a-1 = %d, want 0", len(m))
	}
	if c, _ := db.GetCustodyRecord(ctx, "c-2"); c == nil {
		t.Error("custody record c-2 of another asset was deleted")
	}
}

func TestSQLiteDatabase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("commits when fn succeeds", func(t *testing.T) {
		db := newTestDB(t)

		err := db.Update(ctx, func(tx inv.Store) error {
			if err := tx.InsertAsset(ctx, newAsset("a-1", "INV-001")); err != nil {
				return err
			}
			return tx.InsertCustodyRecord(ctx, newCustody("c-1", "a-1", inv.CustodyDraft))
		})
		if err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if a, _ := db.GetAsset(ctx, "a-1"); a == nil {
			t.Error("asset not committed")
		}
	})

	t.Run("rolls back and returns fn error unchanged", func(t *testing.T) {
		db := newTestDB(t)
		want := inv.PreconditionError(inv.CodeMissingAcquisition, "no document")

		err := db.Update(ctx, func(tx inv.Store) error {
			if err := tx.InsertAsset(ctx, newAsset("a-1", "INV-001")); err != nil {
				return err
			}
			return want
		})
		if err != want {
			t.Fatalf("Update() error = %v, want %v", err, want)
		}
		if a, _ := db.GetAsset(ctx, "a-1"); a != nil {
			t.Error("asset written despite rollback")
		}
	})

	t.Run("constraint failure inside transaction rolls back earlier writes", func(t *testing.T) {
		db := newTestDB(t)
		mustInsertAsset(t, db, newAsset("a-1", "INV-001"))

		err := db.Update(ctx, func(tx inv.Store) error {
			if err := tx.InsertAsset(ctx, newAsset("a-2", "INV-002")); err != nil {
				return err
			}
			return tx.InsertAsset(ctx, newAsset("a-3", "INV-001"))
		})
		if !errors.Is(err, inv.ErrConflict) {
			t.Fatalf("Update() error = %v, want conflict", err)
		}
		if a, _ := db.GetAsset(ctx, "a-2"); a != nil {
			t.Error("asset a-2 written despite rollback")
		}
	})
}

func TestSQLiteDatabase_Directories(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	people := []*inv.Person{
		{ID: "p-1", Name: "Ana Ruiz", Active: true, CreatedAt: testTime},
		{ID: "p-2", Name: "Bruno Diaz", Active: false, CreatedAt: testTime},
	}
	for _, p := range people {
		if err := db.SavePerson(ctx, p); err != nil {
			t.Fatalf("SavePerson() error = %v", err)
		}
	}

	if p, err := db.LookupPerson(ctx, "p-1"); err != nil || p == nil {
		t.Errorf("LookupPerson(p-1) = %v, %v; want active person", p, err)
	}
	if p, err := db.LookupPerson(ctx, "p-2"); err != nil || p != nil {
		t.Errorf("LookupPerson(p-2) = %v, %v; want nil for inactive person", p, err)
	}

	active, _ := db.ListPeople(ctx, false)
	all, _ := db.ListPeople(ctx, true)
	if len(active) != 1 || len(all) != 2 {
		t.Errorf("ListPeople() active=%d all=%d, want 1 and 2", len(active), len(all))
	}

	people[1].Active = true
	if err := db.SavePerson(ctx, people[1]); err != nil {
		t.Fatalf("SavePerson() error = %v", err)
	}
	if p, _ := db.LookupPerson(ctx, "p-2"); p == nil {
		t.Error("LookupPerson(p-2) = nil after reactivation")
	}

	signer := &inv.SignerConfig{Coordination: "TECHNOLOGY", SignerName: "Luis Soto", Active: false, UpdatedAt: testTime}
	if err := db.SaveSignerConfig(ctx, signer); err != nil {
		t.Fatalf("SaveSignerConfig() error = %v", err)
	}
	if s, _ := db.SignerByCoordination(ctx, "TECHNOLOGY"); s != nil {
		t.Errorf("SignerByCoordination() = %+v, want nil for inactive signer", s)
	}
	signer.Active = true
	if err := db.SaveSignerConfig(ctx, signer); err != nil {
		t.Fatalf("SaveSignerConfig() error = %v", err)
	}
	if s, _ := db.SignerByCoordination(ctx, "TECHNOLOGY"); s == nil || s.SignerName != "Luis Soto" {
		t.Errorf("SignerByCoordination() = %+v, want Luis Soto", s)
	}
}

func TestSQLiteDatabase_Catalogs(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	hq := &inv.Location{ID: "l-1", Code: "HQ", Name: "Headquarters", Order: 2, CreatedAt: testTime, UpdatedAt: testTime}
	annex := &inv.Location{ID: "l-2", Code: "AX", Name: "Annex", Order: 1, CreatedAt: testTime, UpdatedAt: testTime}
	for _, l := range []*inv.Location{hq, annex} {
		if err := db.SaveLocation(ctx, l); err != nil {
			t.Fatalf("SaveLocation(%s) error = %v", l.Code, err)
		}
	}
	err := db.SaveLocation(ctx, &inv.Location{ID: "l-3", Code: "HQ", Name: "Copy", CreatedAt: testTime, UpdatedAt: testTime})
	if !errors.Is(err, inv.ErrConflict) || inv.CodeOf(err) != inv.CodeDuplicateLocation {
		t.Errorf("SaveLocation() duplicate code error = %v, want %s", err, inv.CodeDuplicateLocation)
	}

	locations, err := db.ListLocations(ctx)
	if err != nil {
		t.Fatalf("ListLocations() error = %v", err)
	}
	if len(locations) != 2 || locations[0].ID != "l-2" {
		t.Errorf("ListLocations() = %v, want annex first by order", locations)
	}

	sup := &inv.Supplier{ID: "s-1", Name: "Acme", Email: "sales@acme.test", CreatedAt: testTime, UpdatedAt: testTime}
	if err := db.SaveSupplier(ctx, sup); err != nil {
		t.Fatalf("SaveSupplier() error = %v", err)
	}

	a := newAsset("a-1", "INV-001")
	a.LocationID = hq.ID
	a.SupplierID = sup.ID
	mustInsertAsset(t, db, a)

	got, err := db.GetAsset(ctx, "a-1")
	if err != nil {
		t.Fatalf("GetAsset() error = %v", err)
	}
	if got.LocationID != hq.ID || got.SupplierID != sup.ID {
		t.Errorf("GetAsset() links = %q %q, want %q %q", got.LocationID, got.SupplierID, hq.ID, sup.ID)
	}
	if n, _ := db.CountAssetsAtLocation(ctx, hq.ID); n != 1 {
		t.Errorf("CountAssetsAtLocation() = %d, want 1", n)
	}
	if n, _ := db.CountAssetsBySupplier(ctx, sup.ID); n != 1 {
		t.Errorf("CountAssetsBySupplier() = %d, want 1", n)
	}
	if err := db.DeleteLocation(ctx, hq.ID); err == nil {
		t.Error("DeleteLocation() of a linked location succeeded, want foreign key error")
	}

	bad := newAsset("a-2", "INV-002")
	bad.LocationID = "missing"
	if err := db.InsertAsset(ctx, bad); err == nil {
		t.Error("InsertAsset() with unknown location succeeded, want foreign key error")
	}

	if err := db.DeleteSupplier(ctx, "s-1"); err == nil {
		t.Error("DeleteSupplier() of a linked supplier succeeded, want foreign key error")
	}
	a.SupplierID = ""
	if err := db.UpdateAsset(ctx, a); err != nil {
		t.Fatalf("UpdateAsset() error = %v", err)
	}
	if err := db.DeleteSupplier(ctx, "s-1"); err != nil {
		t.Errorf("DeleteSupplier() error = %v", err)
	}
	if s, _ := db.GetSupplier(ctx, "s-1"); s != nil {
		t.Errorf("GetSupplier() = %+v after delete, want nil", s)
	}
}

func TestSQLiteDatabase_CheckConstraints(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	a := newAsset("a-1", "INV-001")
	a.Condition = "good"
	if err := db.InsertAsset(ctx, a); err == nil {
		t.Error("InsertAsset() with lowercase condition succeeded, want CHECK failure")
	}

	mustInsertAsset(t, db, newAsset("a-2", "INV-002"))
	err := db.InsertEvidence(ctx, &inv.Evidence{
		ID:         "e-1",
		AssetID:    "a-2",
		OwnerType:  inv.OwnerAsset,
		OwnerID:    "a-2",
		Kind:       inv.EvidenceDocument,
		Purpose:    "acquisition",
		FileName:   "invoice.pdf",
		FileRef:    "a-2/ref",
		Size:       10,
		Checksum:   "abc",
		UploadedBy: "user-1",
		UploadedAt: testTime,
	})
	if err == nil {
		t.Error("InsertEvidence() with lowercase purpose succeeded, want CHECK failure")
	}
}

func TestSQLiteDatabase_Operations(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	id, err := db.StartOperation(ctx, "asset create", "user-1", "INV-001")
	if err != nil {
		t.Fatalf("StartOperation() error = %v", err)
	}
	if err := db.FinishOperation(ctx, id, "success"); err != nil {
		t.Fatalf("FinishOperation() error = %v", err)
	}
	if _, err := db.StartOperation(ctx, "asset activate", "user-1", "INV-001"); err != nil {
		t.Fatalf("StartOperation() error = %v", err)
	}

	ops, err := db.ListOperations(ctx, 10)
	if err != nil {
		t.Fatalf("ListOperations() error = %v", err)
	}
	if len(ops) != 2 {
		t.Fatalf("ListOperations() returned %d, want 2", len(ops))
	}
	if ops[0].Operation != "asset activate" || ops[0].Status != "running" || ops[0].FinishedAt != nil {
		t.Errorf("ops[0] = %+v", ops[0])
	}
	if ops[1].Status != "success" || ops[1].FinishedAt == nil {
		t.Errorf("ops[1] = %+v", ops[1])
	}
}

func TestSQLiteDatabase_BackupTo(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	mustInsertAsset(t, db, newAsset("a-1", "INV-001"))

	dest := filepath.Join(t.TempDir(), "backup.db")
	if err := db.BackupTo(dest); err != nil {
		t.Fatalf("BackupTo() error = %v", err)
	}

	restored, err := NewSQLiteDatabase(dest)
	if err != nil {
		t.Fatalf("NewSQLiteDatabase() error = %v", err)
	}
	defer restored.Close()

	if a, err := restored.GetAsset(ctx, "a-1"); err != nil || a == nil {
		t.Errorf("GetAsset() on backup = %v, %v", a, err)
	}
}
