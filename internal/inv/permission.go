package inv

import (
	"fmt"
	"strings"
)

// Role is the closed set of roles a caller can act under.
type Role string

const (
	RoleAdmin          Role = "ADMIN"
	RoleAssetControl   Role = "ASSET_CONTROL"
	RoleAssetAuxiliary Role = "ASSET_AUXILIARY"
	RoleMaintenance    Role = "MAINTENANCE"
	RoleTechnology     Role = "TECHNOLOGY"
	RoleCollaborator   Role = "COLLABORATOR"
)

var roles = []Role{RoleAdmin, RoleAssetControl, RoleAssetAuxiliary, RoleMaintenance, RoleTechnology, RoleCollaborator}

// ParseRole normalizes raw and returns the matching Role.
func ParseRole(raw string) (Role, error) {
	return parseEnum("role", raw, roles)
}

// Capability is a static permission string granted to a role.
type Capability string

const (
	CapAssetRead       Capability = "asset:read"
	CapAssetWrite      Capability = "asset:write"
	CapAssetDelete     Capability = "asset:delete"
	CapCustodyWrite    Capability = "custody:write"
	CapAssessmentRead  Capability = "assessment:read"
	CapAssessmentWrite Capability = "assessment:write"
	CapEvidenceWrite   Capability = "evidence:write"
	CapDirectoryWrite  Capability = "directory:write"
)

var capabilities = []Capability{
	CapAssetRead, CapAssetWrite, CapAssetDelete, CapCustodyWrite,
	CapAssessmentRead, CapAssessmentWrite, CapEvidenceWrite, CapDirectoryWrite,
}

// ParseCapability accepts capability strings case-insensitively.
func ParseCapability(raw string) (Capability, error) {
	norm := strings.ToLower(strings.TrimSpace(raw))
	for _, c := range capabilities {
		if string(c) == norm {
			return c, nil
		}
	}
	return "", ValidationError(CodeInvalidField, "invalid capability: %q", raw)
}

// Identity is the caller context every operation runs under. The core does
// not authenticate; it only authorizes.
type Identity struct {
	ActorID string
	Role    Role
}

// NewIdentity builds an Identity from raw boundary input.
func NewIdentity(actorID, role string) (Identity, error) {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return Identity{}, ValidationError(CodeMissingField, "actor id is required")
	}
	r, err := ParseRole(role)
	if err != nil {
		return Identity{}, err
	}
	return Identity{ActorID: actorID, Role: r}, nil
}

// DefaultGrants returns the static capability sets for every restricted role.
// ADMIN is unrestricted and needs no entry.
func DefaultGrants() map[Role][]Capability {
	return map[Role][]Capability{
		RoleAssetControl: {
			CapAssetRead, CapAssetWrite, CapAssessmentRead, CapAssessmentWrite,
			CapEvidenceWrite, CapDirectoryWrite,
		},
		RoleAssetAuxiliary: {
			CapAssetRead, CapAssetWrite, CapAssessmentRead, CapAssessmentWrite, CapEvidenceWrite,
		},
		RoleMaintenance: {
			CapAssetRead, CapAssessmentRead, CapAssessmentWrite, CapEvidenceWrite,
		},
		RoleTechnology: {
			CapAssetRead, CapAssessmentRead,
		},
		RoleCollaborator: {
			CapAssetRead,
		},
	}
}

// Gate decides whether an identity may run an operation. The static layer
// checks role capabilities; the dynamic layer checks record state and ownership.
type Gate struct {
	grants map[Role]map[Capability]bool
}

// NewGate builds a Gate from DefaultGrants, replacing the set of any role
// present in overrides.
func NewGate(overrides map[Role][]Capability) *Gate {
	g := &Gate{grants: make(map[Role]map[Capability]bool)}
	merged := DefaultGrants()
	for role, caps := range overrides {
		merged[role] = caps
	}
	for role, caps := range merged {
		set := make(map[Capability]bool, len(caps))
		for _, c := range caps {
			set[c] = true
		}
		g.grants[role] = set
	}
	return g
}

// Elevated reports whether id acts under the unrestricted role.
func (g *Gate) Elevated(id Identity) bool {
	return id.Role == RoleAdmin
}

// Can reports whether the role of id holds capability c.
func (g *Gate) Can(id Identity, c Capability) bool {
	if g.Elevated(id) {
		return true
	}
	return g.grants[id.Role][c]
}

// Require fails with a PermissionError unless id holds capability c.
func (g *Gate) Require(id Identity, c Capability) error {
	if !g.Can(id, c) {
		return PermissionError(CodeCapabilityDenied, "role %s lacks %s", id.Role, c)
	}
	return nil
}

// RequireElevated fails unless id acts under the unrestricted role.
func (g *Gate) RequireElevated(id Identity, action string) error {
	if !g.Elevated(id) {
		return PermissionError(CodeElevatedOnly, "%s requires an elevated role", action)
	}
	return nil
}

// RequireOwnerOrElevated fails unless id created the record or is elevated.
func (g *Gate) RequireOwnerOrElevated(id Identity, createdBy, action string) error {
	if g.Elevated(id) || id.ActorID == createdBy {
		return nil
	}
	return PermissionError(CodeNotOwner, "%s is limited to the creator or an elevated role", action)
}

// CheckAssetEdit applies the edit rules for an asset in its current state.
// touchesResponsible is true when the edit changes the responsible party.
func (g *Gate) CheckAssetEdit(id Identity, a *Asset, touchesResponsible bool) error {
	switch a.State {
	case AssetDraft:
		return g.RequireOwnerOrElevated(id, a.CreatedBy, "editing a draft asset")
	case AssetActive:
		if touchesResponsible {
			return StateError(CodeInvalidState, "responsible party of an active asset changes only through custody reassignment")
		}
		return g.RequireElevated(id, "editing an active asset")
	default:
		return StateError(CodeInvalidState, "asset %s is %s and cannot be edited", a.Tag, a.State)
	}
}

// CheckAssetEvidence applies the attach rules for evidence owned by an asset.
func (g *Gate) CheckAssetEvidence(id Identity, a *Asset) error {
	switch a.State {
	case AssetDraft:
		return g.RequireOwnerOrElevated(id, a.CreatedBy, "attaching evidence to a draft asset")
	case AssetActive:
		return g.RequireElevated(id, "attaching evidence to an active asset")
	default:
		return StateError(CodeInvalidState, "asset %s is %s", a.Tag, a.State)
	}
}

// CheckCustodyEvidence applies the attach rules for evidence owned by a
// custody record. A DRAFT record on an ACTIVE asset is a pending reassignment
// and only an elevated role may complete it.
func (g *Gate) CheckCustodyEvidence(id Identity, a *Asset, rec *CustodyRecord) error {
	if a.State == AssetRetired {
		return StateError(CodeInvalidState, "asset %s is %s", a.Tag, a.State)
	}
	switch rec.State {
	case CustodyDraft:
		if a.State == AssetDraft {
			return g.RequireOwnerOrElevated(id, rec.CreatedBy, "attaching evidence to a draft custody record")
		}
		return g.RequireElevated(id, "attaching evidence to a pending custody record")
	case CustodyActive:
		return g.RequireElevated(id, "attaching evidence to an active custody record")
	default:
		return StateError(CodeInvalidState, "custody record %s is %s", rec.ID, rec.State)
	}
}

// CheckAssessmentEvidence applies the attach rules for evidence owned by an assessment.
func (g *Gate) CheckAssessmentEvidence(id Identity, rec *AssessmentRecord) error {
	switch rec.State {
	case AssessmentDraft:
		return g.RequireOwnerOrElevated(id, rec.CreatedBy, "attaching evidence to a draft assessment")
	case AssessmentSigned:
		return g.RequireElevated(id, "attaching evidence to a signed assessment")
	default:
		return StateError(CodeInvalidState, "assessment %s is %s", rec.ID, rec.State)
	}
}

// CheckAssessmentChange applies the edit and sign rules: DRAFT only, creator or elevated.
func (g *Gate) CheckAssessmentChange(id Identity, rec *AssessmentRecord, action string) error {
	if rec.State != AssessmentDraft {
		return StateError(CodeInvalidState, "assessment %s is %s", rec.ID, rec.State)
	}
	return g.RequireOwnerOrElevated(id, rec.CreatedBy, fmt.Sprintf("%s an assessment", action))
}
