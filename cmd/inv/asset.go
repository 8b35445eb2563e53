package main

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"inv-go/internal/inv"
)

var assetCmd = &cobra.Command{
	Use:   "asset",
	Short: "Register and manage assets",
}

// addPartyFlags registers the responsible-party flags shared by asset and
// custody commands.
func addPartyFlags(cmd *cobra.Command) {
	cmd.Flags().String("person", "", "Personnel Directory id of the responsible party")
	cmd.Flags().String("responsible", "", "Responsible party name (when not in the directory)")
	cmd.Flags().String("tax-id", "", "Responsible party tax id")
	cmd.Flags().String("position", "", "Responsible party position")
}

func readParty(cmd *cobra.Command) (string, inv.ResponsibleParty) {
	personID, _ := cmd.Flags().GetString("person")
	name, _ := cmd.Flags().GetString("responsible")
	taxID, _ := cmd.Flags().GetString("tax-id")
	position, _ := cmd.Flags().GetString("position")
	return personID, inv.ResponsibleParty{Name: name, TaxID: taxID, Position: position}
}

func addAssetFlags(cmd *cobra.Command) {
	cmd.Flags().String("tag", "", "Inventory tag")
	cmd.Flags().String("description", "", "Description")
	cmd.Flags().String("classification", "", "GENERAL or IT")
	cmd.Flags().String("brand", "", "Brand")
	cmd.Flags().String("model", "", "Model")
	cmd.Flags().String("serial", "", "Serial number")
	cmd.Flags().String("invoice", "", "Invoice number")
	cmd.Flags().String("notes", "", "Notes")
	cmd.Flags().String("location", "", "Physical location")
	cmd.Flags().String("location-id", "", "Location Catalog entry; overrides --location")
	cmd.Flags().String("supplier-id", "", "Supplier Catalog entry")
	cmd.Flags().String("condition", "", "Physical condition (e.g. NEW, GOOD, POOR)")
	cmd.Flags().String("cost", "", "Acquisition cost")
	addPartyFlags(cmd)
}

func parseCost(raw string) (decimal.NullDecimal, error) {
	if raw == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("invalid cost %q: %w", raw, err)
	}
	return decimal.NewNullDecimal(d), nil
}

// changed returns the flag value when the flag was given on the command line.
func changed(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

var assetCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Register a DRAFT asset with its first custody record",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("CreateAsset")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}

		c := inv.CreateAsset{}
		c.Tag, _ = cmd.Flags().GetString("tag")
		c.Description, _ = cmd.Flags().GetString("description")
		c.Brand, _ = cmd.Flags().GetString("brand")
		c.Model, _ = cmd.Flags().GetString("model")
		c.SerialNumber, _ = cmd.Flags().GetString("serial")
		c.InvoiceNumber, _ = cmd.Flags().GetString("invoice")
		c.Notes, _ = cmd.Flags().GetString("notes")
		c.Location, _ = cmd.Flags().GetString("location")
		c.LocationID, _ = cmd.Flags().GetString("location-id")
		c.SupplierID, _ = cmd.Flags().GetString("supplier-id")
		c.ResponsiblePersonID, c.Responsible = readParty(cmd)
		if raw, _ := cmd.Flags().GetString("classification"); raw != "" {
			if c.Classification, err = inv.ParseClassification(raw); err != nil {
				return err
			}
		}
		if raw, _ := cmd.Flags().GetString("condition"); raw != "" {
			if c.Condition, err = inv.ParseCondition(raw); err != nil {
				return err
			}
		}
		rawCost, _ := cmd.Flags().GetString("cost")
		if c.AcquisitionCost, err = parseCost(rawCost); err != nil {
			return err
		}

		asset, err := a.CreateAsset(cmd.Context(), id, c)
		if err != nil {
			return err
		}
		fmt.Printf("Created asset %s (%s)\n", asset.Tag, asset.ID)
		return nil
	},
}

var assetEditCmd = &cobra.Command{
	Use:   "edit ASSET_ID",
	Short: "Change asset fields; only the flags given are applied",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("EditAsset")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}

		c := inv.EditAsset{
			AssetID:             args[0],
			Tag:                 changed(cmd, "tag"),
			Description:         changed(cmd, "description"),
			Brand:               changed(cmd, "brand"),
			Model:               changed(cmd, "model"),
			SerialNumber:        changed(cmd, "serial"),
			InvoiceNumber:       changed(cmd, "invoice"),
			Notes:               changed(cmd, "notes"),
			Location:            changed(cmd, "location"),
			LocationID:          changed(cmd, "location-id"),
			SupplierID:          changed(cmd, "supplier-id"),
			ResponsiblePersonID: changed(cmd, "person"),
		}
		c.Reason, _ = cmd.Flags().GetString("reason")
		if raw := changed(cmd, "classification"); raw != nil {
			class, err := inv.ParseClassification(*raw)
			if err != nil {
				return err
			}
			c.Classification = &class
		}
		if raw := changed(cmd, "condition"); raw != nil {
			cond, err := inv.ParseCondition(*raw)
			if err != nil {
				return err
			}
			c.Condition = &cond
		}
		if raw := changed(cmd, "cost"); raw != nil {
			cost, err := parseCost(*raw)
			if err != nil {
				return err
			}
			c.AcquisitionCost = &cost
		}
		if cmd.Flags().Changed("responsible") || cmd.Flags().Changed("tax-id") || cmd.Flags().Changed("position") {
			_, party := readParty(cmd)
			c.Responsible = &party
		}

		asset, err := a.EditAsset(cmd.Context(), id, c)
		if err != nil {
			return err
		}
		fmt.Printf("Updated asset %s\n", asset.Tag)
		return nil
	},
}

var assetActivateCmd = &cobra.Command{
	Use:   "activate ASSET_ID",
	Short: "Activate a DRAFT asset once its evidence is in place",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ActivateAsset")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}
		asset, err := a.ActivateAsset(cmd.Context(), id, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Asset %s is %s\n", asset.Tag, asset.State)
		return nil
	},
}

var assetDeleteCmd = &cobra.Command{
	Use:   "delete ASSET_ID",
	Short: "Delete a DRAFT asset and everything attached to it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("DeleteAsset")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}
		if err := a.DeleteAsset(cmd.Context(), id, args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted asset %s\n", args[0])
		return nil
	},
}

var assetShowCmd = &cobra.Command{
	Use:   "show ASSET_ID",
	Short: "Show an asset with its custody, assessments and evidence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("GetAsset")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}
		detail, err := a.Service().GetAsset(cmd.Context(), id, args[0])
		if err != nil {
			return err
		}

		printAsset(detail.Asset)
		if len(detail.Custody) > 0 {
			fmt.Println("\nCustody:")
			for _, r := range detail.Custody {
				printCustodyLine(r)
			}
		}
		if len(detail.Assessments) > 0 {
			fmt.Println("\nAssessments:")
			for _, r := range detail.Assessments {
				printAssessmentLine(r)
			}
		}
		if len(detail.Evidence) > 0 {
			fmt.Println("\nEvidence:")
			for _, e := range detail.Evidence {
				printEvidenceLine(e)
			}
		}
		return nil
	},
}

var assetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List assets",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListAssets")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}

		filter := inv.AssetFilter{}
		filter.Query, _ = cmd.Flags().GetString("query")
		filter.Limit, _ = cmd.Flags().GetInt("limit")
		filter.Offset, _ = cmd.Flags().GetInt("offset")
		filter.LocationID, _ = cmd.Flags().GetString("location-id")
		if raw, _ := cmd.Flags().GetString("state"); raw != "" {
			if filter.State, err = inv.ParseAssetState(raw); err != nil {
				return err
			}
		}
		if raw, _ := cmd.Flags().GetString("classification"); raw != "" {
			if filter.Classification, err = inv.ParseClassification(raw); err != nil {
				return err
			}
		}

		assets, err := a.Service().ListAssets(cmd.Context(), id, filter)
		if err != nil {
			return err
		}
		if len(assets) == 0 {
			fmt.Println("No assets found.")
			return nil
		}
		for _, asset := range assets {
			printAssetLine(asset)
		}
		return nil
	},
}

var assetLogCmd = &cobra.Command{
	Use:   "log ASSET_ID",
	Short: "View the movement log of an asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListMovements")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}
		entries, err := a.Service().ListMovements(cmd.Context(), id, args[0])
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No movements recorded.")
			return nil
		}
		for _, m := range entries {
			printMovementLine(m)
		}
		return nil
	},
}

// custody command
var custodyCmd = &cobra.Command{
	Use:   "custody",
	Short: "Manage custody records",
}

var custodyReassignCmd = &cobra.Command{
	Use:   "reassign ASSET_ID",
	Short: "Hand an ACTIVE asset to a new responsible party",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ReassignCustody")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}

		c := inv.ReassignCustody{AssetID: args[0], Location: changed(cmd, "location")}
		c.LocationID, _ = cmd.Flags().GetString("location-id")
		c.ResponsiblePersonID, c.Responsible = readParty(cmd)
		c.Reason, _ = cmd.Flags().GetString("reason")

		record, err := a.ReassignCustody(cmd.Context(), id, c)
		if err != nil {
			return err
		}
		fmt.Printf("Opened custody record %s for %s\n", record.ID, record.Responsible)
		fmt.Println("Attach the signed custody form to activate it.")
		return nil
	},
}

var custodyListCmd = &cobra.Command{
	Use:   "list ASSET_ID",
	Short: "List the custody records of an asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListCustody")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}
		records, err := a.Service().ListCustody(cmd.Context(), id, args[0])
		if err != nil {
			return err
		}
		for _, r := range records {
			printCustodyLine(r)
		}
		return nil
	},
}

func init() {
	addAssetFlags(assetCreateCmd)
	addAssetFlags(assetEditCmd)
	assetEditCmd.Flags().String("reason", "", "Reason recorded in the movement log")

	assetListCmd.Flags().StringP("query", "q", "", "Match tag, description or responsible name")
	assetListCmd.Flags().String("state", "", "DRAFT, ACTIVE or RETIRED")
	assetListCmd.Flags().String("classification", "", "GENERAL or IT")
	assetListCmd.Flags().String("location-id", "", "Only assets linked to this Location Catalog entry")
	assetListCmd.Flags().IntP("limit", "n", 50, "Maximum number of assets")
	assetListCmd.Flags().Int("offset", 0, "Skip this many assets")

	assetCmd.AddCommand(assetCreateCmd)
	assetCmd.AddCommand(assetEditCmd)
	assetCmd.AddCommand(assetActivateCmd)
	assetCmd.AddCommand(assetDeleteCmd)
	assetCmd.AddCommand(assetShowCmd)
	assetCmd.AddCommand(assetListCmd)
	assetCmd.AddCommand(assetLogCmd)

	addPartyFlags(custodyReassignCmd)
	custodyReassignCmd.Flags().String("location", "", "New location")
	custodyReassignCmd.Flags().String("location-id", "", "New location from the Location Catalog")
	custodyReassignCmd.Flags().String("reason", "", "Reason recorded in the movement log")
	custodyCmd.AddCommand(custodyReassignCmd)
	custodyCmd.AddCommand(custodyListCmd)

	rootCmd.AddCommand(assetCmd)
	rootCmd.AddCommand(custodyCmd)
}
