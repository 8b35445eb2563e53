package main

import (
	"fmt"
	"time"

	"inv-go/internal/inv"
)

const timeFormat = "2006-01-02 15:04:05"

func formatTime(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(timeFormat)
}

func printAsset(a *inv.Asset) {
	fmt.Printf("ID:             %s\n", a.ID)
	fmt.Printf("Tag:            %s\n", a.Tag)
	fmt.Printf("Description:    %s\n", a.Description)
	fmt.Printf("State:          %s\n", a.State)
	fmt.Printf("Classification: %s\n", a.Classification)
	fmt.Printf("Condition:      %s\n", a.Condition)
	fmt.Printf("Location:       %s\n", a.Location)
	if a.LocationID != "" {
		fmt.Printf("Location ID:    %s\n", a.LocationID)
	}
	if a.SupplierID != "" {
		fmt.Printf("Supplier ID:    %s\n", a.SupplierID)
	}
	fmt.Printf("Responsible:    %s\n", a.Responsible)
	if a.Brand != "" || a.Model != "" {
		fmt.Printf("Brand/Model:    %s %s\n", a.Brand, a.Model)
	}
	if a.SerialNumber != "" {
		fmt.Printf("Serial:         %s\n", a.SerialNumber)
	}
	if a.InvoiceNumber != "" {
		fmt.Printf("Invoice:        %s\n", a.InvoiceNumber)
	}
	if a.AcquisitionCost.Valid {
		fmt.Printf("Cost:           %s\n", a.AcquisitionCost.Decimal.StringFixed(2))
	}
	if a.Notes != "" {
		fmt.Printf("Notes:          %s\n", a.Notes)
	}
	fmt.Printf("Created:        %s by %s\n", a.CreatedAt.Format(timeFormat), a.CreatedBy)
}

func printAssetLine(a *inv.Asset) {
	fmt.Printf("%-36s  %-12s  %-7s  %-8s  %s\n", a.ID, a.Tag, a.State, a.Classification, a.Description)
}

func printCustodyLine(r *inv.CustodyRecord) {
	fmt.Printf("%-36s  %-8s  %s  %-20s  %s\n", r.ID, r.State, r.CreatedAt.Format(timeFormat), r.Location, r.Responsible)
}

func printAssessment(r *inv.AssessmentRecord) {
	fmt.Printf("ID:           %s\n", r.ID)
	fmt.Printf("Asset:        %s\n", r.AssetID)
	fmt.Printf("State:        %s\n", r.State)
	fmt.Printf("Coordination: %s\n", r.Coordination)
	fmt.Printf("Unit:         %s\n", r.AdministrativeUnit)
	fmt.Printf("Location:     %s\n", r.PhysicalLocation)
	fmt.Printf("Created:      %s by %s\n", r.CreatedAt.Format(timeFormat), r.CreatedBy)
	if r.SignedAt != nil {
		fmt.Printf("Signed:       %s by %s (%s, %s)\n", formatTime(r.SignedAt), r.SignedBy, r.SignerName, r.SignerTitle)
	}
	if r.CanceledAt != nil {
		fmt.Printf("Canceled:     %s by %s\n", formatTime(r.CanceledAt), r.CanceledBy)
	}
	fmt.Printf("\n%s\n", r.Body)
}

func printAssessmentLine(r *inv.AssessmentRecord) {
	fmt.Printf("%-36s  %-36s  %-8s  %-12s  %s\n", r.ID, r.AssetID, r.State, r.Coordination, r.CreatedAt.Format(timeFormat))
}

func printEvidenceLine(e *inv.Evidence) {
	fmt.Printf("%-36s  %-10s %-36s  %-20s  %-8s  %8d  %s\n", e.ID, e.OwnerType, e.OwnerID, e.Purpose, e.Kind, e.Size, e.FileName)
}

func printMovementLine(m *inv.MovementEntry) {
	reason := ""
	if m.Reason != "" {
		reason = "  (" + m.Reason + ")"
	}
	fmt.Printf("%s  %-10s  %-14s  %q -> %q%s\n", m.CreatedAt.Format(timeFormat), m.ActorID, m.Category, m.Before, m.After, reason)
}
