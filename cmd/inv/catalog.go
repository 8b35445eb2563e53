package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"inv-go/internal/inv"
)

// location command
var locationCmd = &cobra.Command{
	Use:   "location",
	Short: "Manage the Location Catalog",
}

var locationAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a location",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SaveLocation")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}

		c := inv.SaveLocation{}
		c.Code, _ = cmd.Flags().GetString("code")
		c.Name, _ = cmd.Flags().GetString("name")
		if cmd.Flags().Changed("order") {
			order, _ := cmd.Flags().GetInt("order")
			c.Order = &order
		}

		l, err := a.SaveLocation(cmd.Context(), id, c)
		if err != nil {
			return err
		}
		fmt.Printf("Added %s %s (%s)\n", l.Code, l.Name, l.ID)
		return nil
	},
}

func findLocation(locations []*inv.Location, locationID string) (*inv.Location, error) {
	for _, l := range locations {
		if l.ID == locationID {
			return l, nil
		}
	}
	return nil, inv.NotFoundError(inv.CodeLocationNotFound, "location %s not found", locationID)
}

var locationUpdateCmd = &cobra.Command{
	Use:   "update LOCATION_ID",
	Short: "Change a location",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SaveLocation")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}
		locations, err := a.Service().ListLocations(cmd.Context(), id)
		if err != nil {
			return err
		}
		l, err := findLocation(locations, args[0])
		if err != nil {
			return err
		}

		c := inv.SaveLocation{ID: l.ID, Code: l.Code, Name: l.Name}
		if v := changed(cmd, "code"); v != nil {
			c.Code = *v
		}
		if v := changed(cmd, "name"); v != nil {
			c.Name = *v
		}
		if cmd.Flags().Changed("order") {
			order, _ := cmd.Flags().GetInt("order")
			c.Order = &order
		}

		saved, err := a.SaveLocation(cmd.Context(), id, c)
		if err != nil {
			return err
		}
		fmt.Printf("Updated %s %s\n", saved.Code, saved.Name)
		return nil
	},
}

var locationDeleteCmd = &cobra.Command{
	Use:   "delete LOCATION_ID",
	Short: "Remove a location no asset links to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("DeleteLocation")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}
		if err := a.DeleteLocation(cmd.Context(), id, args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted location %s\n", args[0])
		return nil
	},
}

var locationListCmd = &cobra.Command{
	Use:   "list",
	Short: "List locations",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListLocations")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}
		locations, err := a.Service().ListLocations(cmd.Context(), id)
		if err != nil {
			return err
		}
		if len(locations) == 0 {
			fmt.Println("No locations in the catalog.")
			return nil
		}
		for _, l := range locations {
			fmt.Printf("%-36s  %-10s  %3d  %s\n", l.ID, l.Code, l.Order, l.Name)
		}
		return nil
	},
}

// supplier command
var supplierCmd = &cobra.Command{
	Use:   "supplier",
	Short: "Manage the Supplier Catalog",
}

func readSupplier(cmd *cobra.Command, c *inv.SaveSupplier) {
	if v := changed(cmd, "name"); v != nil {
		c.Name = *v
	}
	if v := changed(cmd, "tax-id"); v != nil {
		c.TaxID = *v
	}
	if v := changed(cmd, "phone"); v != nil {
		c.Phone = *v
	}
	if v := changed(cmd, "email"); v != nil {
		c.Email = *v
	}
	if v := changed(cmd, "address"); v != nil {
		c.Address = *v
	}
}

var supplierAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a supplier",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SaveSupplier")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}

		var c inv.SaveSupplier
		readSupplier(cmd, &c)
		sup, err := a.SaveSupplier(cmd.Context(), id, c)
		if err != nil {
			return err
		}
		fmt.Printf("Added %s (%s)\n", sup.Name, sup.ID)
		return nil
	},
}

var supplierUpdateCmd = &cobra.Command{
	Use:   "update SUPPLIER_ID",
	Short: "Change a supplier; only the flags given are applied",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("SaveSupplier")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}
		sup, err := a.Service().GetSupplier(cmd.Context(), id, args[0])
		if err != nil {
			return err
		}

		c := inv.SaveSupplier{
			ID:      sup.ID,
			Name:    sup.Name,
			TaxID:   sup.TaxID,
			Phone:   sup.Phone,
			Email:   sup.Email,
			Address: sup.Address,
		}
		readSupplier(cmd, &c)
		saved, err := a.SaveSupplier(cmd.Context(), id, c)
		if err != nil {
			return err
		}
		fmt.Printf("Updated %s\n", saved.Name)
		return nil
	},
}

var supplierShowCmd = &cobra.Command{
	Use:   "show SUPPLIER_ID",
	Short: "Show a supplier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("GetSupplier")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}
		sup, err := a.Service().GetSupplier(cmd.Context(), id, args[0])
		if err != nil {
			return err
		}
		fmt.Printf("ID:       %s\n", sup.ID)
		fmt.Printf("Name:     %s\n", sup.Name)
		fmt.Printf("Tax ID:   %s\n", sup.TaxID)
		fmt.Printf("Phone:    %s\n", sup.Phone)
		fmt.Printf("Email:    %s\n", sup.Email)
		fmt.Printf("Address:  %s\n", sup.Address)
		return nil
	},
}

var supplierDeleteCmd = &cobra.Command{
	Use:   "delete SUPPLIER_ID",
	Short: "Remove a supplier no asset links to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("DeleteSupplier")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}
		if err := a.DeleteSupplier(cmd.Context(), id, args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted supplier %s\n", args[0])
		return nil
	},
}

var supplierListCmd = &cobra.Command{
	Use:   "list",
	Short: "List suppliers",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("ListSuppliers")
		if err != nil {
			return err
		}
		defer a.Close()

		id, err := callerIdentity(cmd, a)
		if err != nil {
			return err
		}
		suppliers, err := a.Service().ListSuppliers(cmd.Context(), id)
		if err != nil {
			return err
		}
		if len(suppliers) == 0 {
			fmt.Println("No suppliers in the catalog.")
			return nil
		}
		for _, sup := range suppliers {
			fmt.Printf("%-36s  %-30s  %-14s  %s\n", sup.ID, sup.Name, sup.TaxID, sup.Email)
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{locationAddCmd, locationUpdateCmd} {
		c.Flags().String("code", "", "Short code, unique in the catalog")
		c.Flags().String("name", "", "Display name copied onto assets")
		c.Flags().Int("order", 0, "Display order")
	}

	locationCmd.AddCommand(locationAddCmd)
	locationCmd.AddCommand(locationUpdateCmd)
	locationCmd.AddCommand(locationDeleteCmd)
	locationCmd.AddCommand(locationListCmd)

	for _, c := range []*cobra.Command{supplierAddCmd, supplierUpdateCmd} {
		c.Flags().String("name", "", "Supplier name")
		c.Flags().String("tax-id", "", "Tax id")
		c.Flags().String("phone", "", "Phone")
		c.Flags().String("email", "", "Email")
		c.Flags().String("address", "", "Address")
	}

	supplierCmd.AddCommand(supplierAddCmd)
	supplierCmd.AddCommand(supplierUpdateCmd)
	supplierCmd.AddCommand(supplierShowCmd)
	supplierCmd.AddCommand(supplierDeleteCmd)
	supplierCmd.AddCommand(supplierListCmd)

	rootCmd.AddCommand(locationCmd)
	rootCmd.AddCommand(supplierCmd)
}
