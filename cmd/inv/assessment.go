package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"inv-go/internal/inv"
)

var assessmentCmd = &cobra.Command{
	Use:   "assessment",
	Short: "Technical write-off assessments",
}

var assessmentCreateCmd = &cobra.Command{
	Use:   "create ASSET_ID",
	Short: "Open a DRAFT assessment on an ACTIVE asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("CreateAssessment")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}

		c := inv.CreateAssessment{AssetID: args[0]}
		c.Body, _ = cmd.Flags().GetString("body")
		c.AdministrativeUnit, _ = cmd.Flags().GetString("unit")
		c.PhysicalLocation, _ = cmd.Flags().GetString("location")
		c.Coordination, _ = cmd.Flags().GetString("coordination")

		record, err := a.CreateAssessment(cmd.Context(), id, c)
		if err != nil {
			return err
		}
		fmt.Printf("Created assessment %s (coordination %s)\n", record.ID, record.Coordination)
		return nil
	},
}

var assessmentEditCmd = &cobra.Command{
	Use:   "edit ASSESSMENT_ID",
	Short: "Change a DRAFT assessment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("EditAssessment")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}

		record, err := a.EditAssessment(cmd.Context(), id, inv.EditAssessment{
			AssessmentID:       args[0],
			Body:               changed(cmd, "body"),
			AdministrativeUnit: changed(cmd, "unit"),
			PhysicalLocation:   changed(cmd, "location"),
		})
		if err != nil {
			return err
		}
		fmt.Printf("Updated assessment %s\n", record.ID)
		return nil
	},
}

var assessmentSignCmd = &cobra.Command{
	Use:   "sign ASSESSMENT_ID",
	Short: "Sign an assessment and retire its asset",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SignAssessment")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}
		record, err := a.SignAssessment(cmd.Context(), id, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Assessment %s signed by %s; asset %s retired\n", record.ID, record.SignerName, record.AssetID)
		return nil
	},
}

var assessmentCancelCmd = &cobra.Command{
	Use:   "cancel ASSESSMENT_ID",
	Short: "Cancel a DRAFT assessment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("CancelAssessment")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}
		record, err := a.CancelAssessment(cmd.Context(), id, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Assessment %s is %s\n", record.ID, record.State)
		return nil
	},
}

var assessmentShowCmd = &cobra.Command{
	Use:   "show ASSESSMENT_ID",
	Short: "Show an assessment with its evidence",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("GetAssessment")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}
		detail, err := a.Service().GetAssessment(cmd.Context(), id, args[0])
		if err != nil {
			return err
		}
		printAssessment(detail.Assessment)
		fmt.Printf("\nAsset: %s %s (%s)\n", detail.Asset.Tag, detail.Asset.Description, detail.Asset.State)
		if len(detail.Evidence) > 0 {
			fmt.Println("\nEvidence:")
			for _, e := range detail.Evidence {
				printEvidenceLine(e)
			}
		}
		return nil
	},
}

var assessmentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List assessments",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListAssessments")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}

		filter := inv.AssessmentFilter{}
		filter.AssetID, _ = cmd.Flags().GetString("asset")
		filter.CreatedBy, _ = cmd.Flags().GetString("created-by")
		filter.Limit, _ = cmd.Flags().GetInt("limit")
		if raw, _ := cmd.Flags().GetString("state"); raw != "" {
			if filter.State, err = inv.ParseAssessmentState(raw); err != nil {
				return err
			}
		}

		records, err := a.Service().ListAssessments(cmd.Context(), id, filter)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No assessments found.")
			return nil
		}
		for _, r := range records {
			printAssessmentLine(r)
		}
		return nil
	},
}

func init() {
	assessmentCreateCmd.Flags().String("body", "", "Technical report text")
	assessmentCreateCmd.Flags().String("unit", "", "Administrative unit")
	assessmentCreateCmd.Flags().String("location", "", "Physical location (defaults to the asset location)")
	assessmentCreateCmd.Flags().String("coordination", "", "Coordination code (defaults by classification)")

	assessmentEditCmd.Flags().String("body", "", "Technical report text")
	assessmentEditCmd.Flags().String("unit", "", "Administrative unit")
	assessmentEditCmd.Flags().String("location", "", "Physical location")

	assessmentListCmd.Flags().String("asset", "", "Only assessments of this asset")
	assessmentListCmd.Flags().String("state", "", "DRAFT, SIGNED or CANCELED")
	assessmentListCmd.Flags().String("created-by", "", "Only assessments created by this actor")
	assessmentListCmd.Flags().IntP("limit", "n", 50, "Maximum number of assessments")

	assessmentCmd.AddCommand(assessmentCreateCmd)
	assessmentCmd.AddCommand(assessmentEditCmd)
	assessmentCmd.AddCommand(assessmentSignCmd)
	assessmentCmd.AddCommand(assessmentCancelCmd)
	assessmentCmd.AddCommand(assessmentShowCmd)
	assessmentCmd.AddCommand(assessmentListCmd)

	rootCmd.AddCommand(assessmentCmd)
}
