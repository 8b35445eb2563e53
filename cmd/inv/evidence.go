package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"inv-go/internal/inv"
)

var evidenceCmd = &cobra.Command{
	Use:   "evidence",
	Short: "Attach and retrieve evidence files",
}

var evidenceAttachCmd = &cobra.Command{
	Use:   "attach OWNER_TYPE OWNER_ID PATH",
	Short: "Attach a file to an asset, custody record or assessment",
	Long: `Attach a file as evidence. OWNER_TYPE is asset, custody or assessment.
The purpose defaults from the owner: ACQUISITION for assets, ASSESSMENT_REPORT
for assessments, and CUSTODY_SIGNED or CUSTODY_CANCELLATION for custody records
depending on their state.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ownerType, err := inv.ParseOwnerType(args[0])
		if err != nil {
			return err
		}
		var kind inv.EvidenceKind
		if raw, _ := cmd.Flags().GetString("kind"); raw != "" {
			if kind, err = inv.ParseEvidenceKind(raw); err != nil {
				return err
			}
		}
		var purpose inv.EvidencePurpose
		if raw, _ := cmd.Flags().GetString("purpose"); raw != "" {
			if purpose, err = inv.ParseEvidencePurpose(raw); err != nil {
				return err
			}
		}

		a, err := newApp("AttachEvidence")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}
		ev, err := a.AttachFile(cmd.Context(), id, ownerType, args[1], kind, purpose, args[2])
		if err != nil {
			return err
		}
		fmt.Printf("Attached %s as %s evidence %s (%d bytes, sha256 %s)\n", ev.FileName, ev.Purpose, ev.ID, ev.Size, ev.Checksum[:12])
		return nil
	},
}

var evidenceGetCmd = &cobra.Command{
	Use:   "get EVIDENCE_ID",
	Short: "Save the content of an evidence file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
		force, _ := cmd.Flags().GetBool("force")

		a, err := newApp("GetEvidence")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}

		if a.EvidenceEncrypted() {
			pass, err := readPassphrase("Evidence passphrase: ")
			if err != nil {
				return err
			}
			if err := a.UnlockEvidence(pass); err != nil {
				return err
			}
		}

		if out == "" || out == "-" {
			_, err := a.WriteEvidence(cmd.Context(), id, args[0], cmd.OutOrStdout())
			return err
		}
		ev, err := a.SaveEvidence(cmd.Context(), id, args[0], out, force)
		if err != nil {
			return err
		}
		fmt.Printf("Saved %s to %s\n", ev.FileName, out)
		return nil
	},
}

var evidenceListCmd = &cobra.Command{
	Use:   "list OWNER_TYPE OWNER_ID",
	Short: "List the evidence attached to a record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ownerType, err := inv.ParseOwnerType(args[0])
		if err != nil {
			return err
		}

		a, err := newApp("ListEvidence")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}
		items, err := a.Service().ListEvidence(cmd.Context(), id, ownerType, args[1])
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("No evidence attached.")
			return nil
		}
		for _, e := range items {
			printEvidenceLine(e)
		}
		return nil
	},
}

var evidenceCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the evidence store is reachable and writable",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("CheckEvidence")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.CheckEvidence(); err != nil {
			return err
		}
		encrypted := ""
		if a.EvidenceEncrypted() {
			encrypted = " (encrypted)"
		}
		fmt.Printf("Evidence store %s is ready%s\n", a.Config().Evidence.Type, encrypted)
		return nil
	},
}

func init() {
	evidenceAttachCmd.Flags().String("kind", "", "DOCUMENT or PHOTO (default: from the file extension)")
	evidenceAttachCmd.Flags().String("purpose", "", "Evidence purpose (default: from the owner)")

	evidenceGetCmd.Flags().StringP("output", "o", "", "Output file (default: stdout)")
	evidenceGetCmd.Flags().BoolP("force", "f", false, "Overwrite an existing output file")

	evidenceCmd.AddCommand(evidenceAttachCmd)
	evidenceCmd.AddCommand(evidenceGetCmd)
	evidenceCmd.AddCommand(evidenceListCmd)
	evidenceCmd.AddCommand(evidenceCheckCmd)

	rootCmd.AddCommand(evidenceCmd)
}
