package evidence

import (
	"context"
	"fmt"

	"inv-go/internal/config"
	"inv-go/internal/inv"
)

// NewEvidenceStoreFromConfig creates the configured store. The result
// enforces cfg.MaxSize and, when cfg.Encrypt is set, seals content with enc.
func NewEvidenceStoreFromConfig(ctx context.Context, cfg config.EvidenceConfig, enc inv.Encryptor) (inv.EvidenceStore, error) {
	var store inv.EvidenceStore
	switch cfg.Type {
	case "memory":
		store = NewMemoryStore()
	case "filesystem":
		if cfg.Root == "" {
			return nil, fmt.Errorf("filesystem evidence store requires root")
		}
		fsStore, err := NewFileSystemStore(cfg.Root)
		if err != nil {
			return nil, err
		}
		store = fsStore
	case "s3":
		s3Store, err := NewS3StoreFromConfig(ctx, cfg)
		if err != nil {
			return nil, err
		}
		store = s3Store
	default:
		return nil, fmt.Errorf("unknown evidence store type: %q", cfg.Type)
	}

	if cfg.Encrypt {
		if enc == nil {
			return nil, fmt.Errorf("evidence encryption requires an encryptor")
		}
		store = NewEncryptingStore(store, enc)
	}

	maxSize := cfg.MaxSize
	if maxSize <= 0 {
		maxSize = config.DefaultMaxEvidenceSize
	}
	return NewLimitedStore(store, maxSize), nil
}
