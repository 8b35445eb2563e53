package inv

import (
	"context"
	"fmt"
)

const defaultLocationOrder = 99

// SaveLocation creates the catalog entry when ID is empty, otherwise updates
// it. Renaming an entry does not rewrite the location names already copied
// onto assets and custody records.
func (s *InvService) SaveLocation(ctx context.Context, id Identity, cmd SaveLocation) (*Location, error) {
	if err := s.gate.Require(id, CapDirectoryWrite); err != nil {
		return nil, err
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var out *Location
	err := s.db.Update(ctx, func(tx Store) error {
		now := s.clock.Now()
		l := &Location{ID: cmd.ID, Order: defaultLocationOrder, CreatedAt: now}
		if cmd.ID == "" {
			l.ID = s.idgen.New()
		} else {
			existing, err := tx.GetLocation(ctx, cmd.ID)
			if err != nil {
				return fmt.Errorf("loading location: %w", err)
			}
			if existing == nil {
				return NotFoundError(CodeLocationNotFound, "location %s not found", cmd.ID)
			}
			l.Order = existing.Order
			l.CreatedAt = existing.CreatedAt
		}
		l.Code = cmd.Code
		l.Name = cmd.Name
		if cmd.Order != nil {
			l.Order = *cmd.Order
		}
		l.UpdatedAt = now
		if err := tx.SaveLocation(ctx, l); err != nil {
			return fmt.Errorf("saving location: %w", err)
		}
		out = l
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("location saved", "location", out.ID, "code", out.Code, "actor", id.ActorID)
	return out, nil
}

// ListLocations returns the catalog in display order.
func (s *InvService) ListLocations(ctx context.Context, id Identity) ([]*Location, error) {
	if err := s.gate.Require(id, CapAssetRead); err != nil {
		return nil, err
	}
	locations, err := s.db.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing locations: %w", err)
	}
	return locations, nil
}

// DeleteLocation removes a catalog entry no asset links to.
func (s *InvService) DeleteLocation(ctx context.Context, id Identity, locationID string) error {
	if err := s.gate.Require(id, CapDirectoryWrite); err != nil {
		return err
	}

	err := s.db.Update(ctx, func(tx Store) error {
		l, err := tx.GetLocation(ctx, locationID)
		if err != nil {
			return fmt.Errorf("loading location: %w", err)
		}
		if l == nil {
			return NotFoundError(CodeLocationNotFound, "location %s not found", locationID)
		}
		n, err := tx.CountAssetsAtLocation(ctx, l.ID)
		if err != nil {
			return err
		}
		if n > 0 {
			return ConflictError(CodeCatalogInUse, "location %s is linked to %d assets", l.Code, n)
		}
		return tx.DeleteLocation(ctx, l.ID)
	})
	if err != nil {
		return err
	}
	s.logger.Info("location deleted", "location", locationID, "actor", id.ActorID)
	return nil
}

// SaveSupplier creates the catalog entry when ID is empty, otherwise replaces it.
func (s *InvService) SaveSupplier(ctx context.Context, id Identity, cmd SaveSupplier) (*Supplier, error) {
	if err := s.gate.Require(id, CapDirectoryWrite); err != nil {
		return nil, err
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var out *Supplier
	err := s.db.Update(ctx, func(tx Store) error {
		now := s.clock.Now()
		sup := &Supplier{ID: cmd.ID, CreatedAt: now}
		if cmd.ID == "" {
			sup.ID = s.idgen.New()
		} else {
			existing, err := tx.GetSupplier(ctx, cmd.ID)
			if err != nil {
				return fmt.Errorf("loading supplier: %w", err)
			}
			if existing == nil {
				return NotFoundError(CodeSupplierNotFound, "supplier %s not found", cmd.ID)
			}
			sup.CreatedAt = existing.CreatedAt
		}
		sup.Name = cmd.Name
		sup.TaxID = cmd.TaxID
		sup.Phone = cmd.Phone
		sup.Email = cmd.Email
		sup.Address = cmd.Address
		sup.UpdatedAt = now
		if err := tx.SaveSupplier(ctx, sup); err != nil {
			return fmt.Errorf("saving supplier: %w", err)
		}
		out = sup
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("supplier saved", "supplier", out.ID, "actor", id.ActorID)
	return out, nil
}

// GetSupplier returns one catalog entry.
func (s *InvService) GetSupplier(ctx context.Context, id Identity, supplierID string) (*Supplier, error) {
	if err := s.gate.Require(id, CapAssetRead); err != nil {
		return nil, err
	}
	sup, err := s.db.GetSupplier(ctx, supplierID)
	if err != nil {
		return nil, fmt.Errorf("loading supplier: %w", err)
	}
	if sup == nil {
		return nil, NotFoundError(CodeSupplierNotFound, "supplier %s not found", supplierID)
	}
	return sup, nil
}

// ListSuppliers returns the catalog sorted by name.
func (s *InvService) ListSuppliers(ctx context.Context, id Identity) ([]*Supplier, error) {
	if err := s.gate.Require(id, CapAssetRead); err != nil {
		return nil, err
	}
	suppliers, err := s.db.ListSuppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing suppliers: %w", err)
	}
	return suppliers, nil
}

// DeleteSupplier removes a catalog entry no asset links to.
func (s *InvService) DeleteSupplier(ctx context.Context, id Identity, supplierID string) error {
	if err := s.gate.Require(id, CapDirectoryWrite); err != nil {
		return err
	}

	err := s.db.Update(ctx, func(tx Store) error {
		sup, err := tx.GetSupplier(ctx, supplierID)
		if err != nil {
			return fmt.Errorf("loading supplier: %w", err)
		}
		if sup == nil {
			return NotFoundError(CodeSupplierNotFound, "supplier %s not found", supplierID)
		}
		n, err := tx.CountAssetsBySupplier(ctx, sup.ID)
		if err != nil {
			return err
		}
		if n > 0 {
			return ConflictError(CodeCatalogInUse, "supplier %s is linked to %d assets", sup.Name, n)
		}
		return tx.DeleteSupplier(ctx, sup.ID)
	})
	if err != nil {
		return err
	}
	s.logger.Info("supplier deleted", "supplier", supplierID, "actor", id.ActorID)
	return nil
}
