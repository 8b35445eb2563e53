package inv

import (
	"context"
	"fmt"
	"strings"
)

// SavePerson adds or updates a Personnel Directory entry.
type SavePerson struct {
	ID       string
	Name     string
	TaxID    string
	Position string
	Active   bool
}

func (c *SavePerson) Validate() error {
	c.ID = strings.TrimSpace(c.ID)
	c.Name = strings.TrimSpace(c.Name)
	c.TaxID = strings.ToUpper(strings.TrimSpace(c.TaxID))
	c.Position = strings.TrimSpace(c.Position)
	if c.Name == "" {
		return ValidationError(CodeMissingField, "name is required")
	}
	return nil
}

// SetSigner configures who signs assessments for a coordination.
type SetSigner struct {
	Coordination string
	Title        string
	SignerName   string
	SignerTitle  string
	Active       bool
}

func (c *SetSigner) Validate() error {
	c.Coordination = strings.ToUpper(strings.TrimSpace(c.Coordination))
	c.SignerName = strings.TrimSpace(c.SignerName)
	c.SignerTitle = strings.TrimSpace(c.SignerTitle)
	if c.Coordination == "" {
		return ValidationError(CodeMissingField, "coordination is required")
	}
	if c.SignerName == "" {
		return ValidationError(CodeMissingField, "signer name is required")
	}
	return nil
}

// SavePerson creates the entry when ID is empty, otherwise replaces it.
func (s *InvService) SavePerson(ctx context.Context, id Identity, cmd SavePerson) (*Person, error) {
	if err := s.gate.Require(id, CapDirectoryWrite); err != nil {
		return nil, err
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var out *Person
	err := s.db.Update(ctx, func(tx Store) error {
		p := &Person{ID: cmd.ID, CreatedAt: s.clock.Now()}
		if cmd.ID == "" {
			p.ID = s.idgen.New()
		} else {
			existing, err := tx.GetPerson(ctx, cmd.ID)
			if err != nil {
				return fmt.Errorf("loading person: %w", err)
			}
			if existing != nil {
				p.CreatedAt = existing.CreatedAt
			}
		}
		p.Name = cmd.Name
		p.TaxID = cmd.TaxID
		p.Position = cmd.Position
		p.Active = cmd.Active
		if err := tx.SavePerson(ctx, p); err != nil {
			return fmt.Errorf("saving person: %w", err)
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("person saved", "person", out.ID, "active", out.Active, "actor", id.ActorID)
	return out, nil
}

// ListPeople returns directory entries, inactive ones only when asked.
func (s *InvService) ListPeople(ctx context.Context, id Identity, includeInactive bool) ([]*Person, error) {
	if err := s.gate.Require(id, CapAssetRead); err != nil {
		return nil, err
	}
	people, err := s.db.ListPeople(ctx, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("listing people: %w", err)
	}
	return people, nil
}

// SetSigner creates or replaces the signer configuration for a coordination.
func (s *InvService) SetSigner(ctx context.Context, id Identity, cmd SetSigner) (*SignerConfig, error) {
	if err := s.gate.Require(id, CapDirectoryWrite); err != nil {
		return nil, err
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	cfg := &SignerConfig{
		Coordination: cmd.Coordination,
		Title:        cmd.Title,
		SignerName:   cmd.SignerName,
		SignerTitle:  cmd.SignerTitle,
		Active:       cmd.Active,
		UpdatedAt:    s.clock.Now(),
	}
	if err := s.db.SaveSignerConfig(ctx, cfg); err != nil {
		return nil, fmt.Errorf("saving signer configuration: %w", err)
	}
	s.logger.Info("signer configured", "coordination", cfg.Coordination, "signer", cfg.SignerName, "actor", id.ActorID)
	return cfg, nil
}

// ListSigners returns every signer configuration.
func (s *InvService) ListSigners(ctx context.Context, id Identity) ([]*SignerConfig, error) {
	if err := s.gate.Require(id, CapAssessmentRead); err != nil {
		return nil, err
	}
	cfgs, err := s.db.ListSignerConfigs(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing signer configurations: %w", err)
	}
	return cfgs, nil
}
