package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"inv-go/internal/inv"
)

// personnel command
var personnelCmd = &cobra.Command{
	Use:   "personnel",
	Short: "Manage the Personnel Directory",
}

var personnelAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a person to the directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SavePerson")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}

		c := inv.SavePerson{Active: true}
		c.Name, _ = cmd.Flags().GetString("name")
		c.TaxID, _ = cmd.Flags().GetString("tax-id")
		c.Position, _ = cmd.Flags().GetString("position")

		p, err := a.SavePerson(cmd.Context(), id, c)
		if err != nil {
			return err
		}
		fmt.Printf("Added %s (%s)\n", p.Name, p.ID)
		return nil
	},
}

// findPerson looks up a directory entry, active or not.
func findPerson(people []*inv.Person, personID string) (*inv.Person, error) {
	for _, p := range people {
		if p.ID == personID {
			return p, nil
		}
	}
	return nil, inv.NotFoundError(inv.CodeUnknownPerson, "person %s not found", personID)
}

var personnelUpdateCmd = &cobra.Command{
	Use:   "update PERSON_ID",
	Short: "Change a directory entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SavePerson")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}
		people, err := a.Service().ListPeople(cmd.Context(), id, true)
		if err != nil {
			return err
		}
		p, err := findPerson(people, args[0])
		if err != nil {
			return err
		}

		c := inv.SavePerson{ID: p.ID, Name: p.Name, TaxID: p.TaxID, Position: p.Position, Active: p.Active}
		if v := changed(cmd, "name"); v != nil {
			c.Name = *v
		}
		if v := changed(cmd, "tax-id"); v != nil {
			c.TaxID = *v
		}
		if v := changed(cmd, "position"); v != nil {
			c.Position = *v
		}

		saved, err := a.SavePerson(cmd.Context(), id, c)
		if err != nil {
			return err
		}
		fmt.Printf("Updated %s (%s)\n", saved.Name, saved.ID)
		return nil
	},
}

// newPersonnelSetActiveCmd builds the enable and disable commands.
func newPersonnelSetActiveCmd(use, short string, active bool) *cobra.Command {
	return &cobra.Command{
		Use:   use + " PERSON_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp("SavePerson")
			if err != nil {
				return err
			}
			defer a.Close()

			id, err := callerIdentity(cmd, a)
			if err != nil {
				return err
			}
			people, err := a.Service().ListPeople(cmd.Context(), id, true)
			if err != nil {
				return err
			}
			p, err := findPerson(people, args[0])
			if err != nil {
				return err
			}

			saved, err := a.SavePerson(cmd.Context(), id, inv.SavePerson{
				ID:       p.ID,
				Name:     p.Name,
				TaxID:    p.TaxID,
				Position: p.Position,
				Active:   active,
			})
			if err != nil {
				return err
			}
			state := "inactive"
			if saved.Active {
				state = "active"
			}
			fmt.Printf("%s is now %s\n", saved.Name, state)
			return nil
		},
	}
}

var personnelListCmd = &cobra.Command{
	Use:   "list",
	Short: "List directory entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")

		a, err := newApp("ListPeople")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}
		people, err := a.Service().ListPeople(cmd.Context(), id, all)
		if err != nil {
			return err
		}
		if len(people) == 0 {
			fmt.Println("No people in the directory.")
			return nil
		}
		for _, p := range people {
			active := ""
			if !p.Active {
				active = "  [inactive]"
			}
			fmt.Printf("%-36s  %-30s  %-14s  %s%s\n", p.ID, p.Name, p.TaxID, p.Position, active)
		}
		return nil
	},
}

// signer command
var signerCmd = &cobra.Command{
	Use:   "signer",
	Short: "Configure assessment signers per coordination",
}

var signerSetCmd = &cobra.Command{
	Use:   "set COORDINATION",
	Short: "Set who signs assessments for a coordination",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SetSigner")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}

		c := inv.SetSigner{Coordination: args[0]}
		c.SignerName, _ = cmd.Flags().GetString("name")
		c.SignerTitle, _ = cmd.Flags().GetString("title")
		c.Title, _ = cmd.Flags().GetString("heading")
		inactive, _ := cmd.Flags().GetBool("inactive")
		c.Active = !inactive

		cfg, err := a.SetSigner(cmd.Context(), id, c)
		if err != nil {
			return err
		}
		fmt.Printf("%s assessments are signed by %s\n", cfg.Coordination, cfg.SignerName)
		return nil
	},
}

var signerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List signer configurations",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListSigners")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}
		cfgs, err := a.Service().ListSigners(cmd.Context(), id)
		if err != nil {
			return err
		}
		if len(cfgs) == 0 {
			fmt.Println("No signers configured.")
			return nil
		}
		for _, c := range cfgs {
			active := ""
			if !c.Active {
				active = "  [inactive]"
			}
			fmt.Printf("%-14s  %-30s  %s%s\n", c.Coordination, c.SignerName, c.SignerTitle, active)
		}
		return nil
	},
}

func init() {
	personnelAddCmd.Flags().String("name", "", "Full name")
	personnelAddCmd.Flags().String("tax-id", "", "Tax id")
	personnelAddCmd.Flags().String("position", "", "Position")
	personnelUpdateCmd.Flags().String("name", "", "Full name")
	personnelUpdateCmd.Flags().String("tax-id", "", "Tax id")
	personnelUpdateCmd.Flags().String("position", "", "Position")
	personnelListCmd.Flags().BoolP("all", "a", false, "Include inactive entries")

	personnelCmd.AddCommand(personnelAddCmd)
	personnelCmd.AddCommand(personnelUpdateCmd)
	personnelCmd.AddCommand(newPersonnelSetActiveCmd("disable", "Mark a person inactive", false))
	personnelCmd.AddCommand(newPersonnelSetActiveCmd("enable", "Mark a person active again", true))
	personnelCmd.AddCommand(personnelListCmd)

	signerSetCmd.Flags().String("name", "", "Signer name")
	signerSetCmd.Flags().String("title", "", "Signer title")
	signerSetCmd.Flags().String("heading", "", "Title printed on assessments")
	signerSetCmd.Flags().Bool("inactive", false, "Disable signing for this coordination")

	signerCmd.AddCommand(signerSetCmd)
	signerCmd.AddCommand(signerListCmd)

	rootCmd.AddCommand(personnelCmd)
	rootCmd.AddCommand(signerCmd)
}
