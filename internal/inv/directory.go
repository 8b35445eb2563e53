package inv

import "context"

// PersonnelDirectory resolves people who can be made responsible for assets.
type PersonnelDirectory interface {
	// LookupPerson returns nil when the person is missing or inactive.
	LookupPerson(ctx context.Context, personID string) (*Person, error)
}

// SignerDirectory resolves the signer configured for a coordination.
type SignerDirectory interface {
	// SignerByCoordination returns nil when no active signer is configured.
	SignerByCoordination(ctx context.Context, code string) (*SignerConfig, error)
}

// CoordinationRouting maps an asset classification to the coordination code
// whose signer handles its assessments.
type CoordinationRouting map[Classification]string

// DefaultRouting sends IT equipment to the technology coordination and
// everything else to maintenance.
func DefaultRouting() CoordinationRouting {
	return CoordinationRouting{
		ClassificationGeneral: "MAINTENANCE",
		ClassificationIT:      "TECHNOLOGY",
	}
}

// Resolve returns the coordination for c, falling back to the GENERAL route.
func (r CoordinationRouting) Resolve(c Classification) string {
	if code, ok := r[c]; ok && code != "" {
		return code
	}
	return r[ClassificationGeneral]
}
