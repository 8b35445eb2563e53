package evidence

import (
	"context"
	"testing"

	"inv-go/internal/config"
	"inv-go/internal/encryption"
	"inv-go/internal/inv"
)

func TestNewEvidenceStoreFromConfig(t *testing.T) {
	tests := []struct {
		name          string
		cfg           config.EvidenceConfig
		withEncryptor bool
		wantErr       bool
		wantEncrypted bool
	}{
		{
			name: "memory store",
			cfg:  config.EvidenceConfig{Type: "memory"},
		},
		{
			name: "filesystem store",
			cfg:  config.EvidenceConfig{Type: "filesystem", Root: t.TempDir()},
		},
		{
			name:    "filesystem store without root",
			cfg:     config.EvidenceConfig{Type: "filesystem"},
			wantErr: true,
		},
		{
			name:    "s3 store without bucket",
			cfg:     config.EvidenceConfig{Type: "s3"},
			wantErr: true,
		},
		{
			name:          "encrypted memory store",
			cfg:           config.EvidenceConfig{Type: "memory", Encrypt: true},
			withEncryptor: true,
			wantEncrypted: true,
		},
		{
			name:    "encryption without encryptor",
			cfg:     config.EvidenceConfig{Type: "memory", Encrypt: true},
			wantErr: true,
		},
		{
			name:    "unknown type",
			cfg:     config.EvidenceConfig{Type: "tape"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var enc inv.Encryptor
			if tt.withEncryptor {
				enc = encryption.NewTestEncryptor()
			}
			got, err := NewEvidenceStoreFromConfig(context.Background(), tt.cfg, enc)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewEvidenceStoreFromConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			limited, ok := got.(*LimitedStore)
			if !ok {
				t.Fatalf("NewEvidenceStoreFromConfig() = %T, want *LimitedStore", got)
			}
			if limited.MaxSize != config.DefaultMaxEvidenceSize {
				t.Errorf("MaxSize = %d, want %d", limited.MaxSize, config.DefaultMaxEvidenceSize)
			}
			if IsEncrypted(limited) != tt.wantEncrypted {
				t.Errorf("IsEncrypted() = %v, want %v", IsEncrypted(limited), tt.wantEncrypted)
			}
		})
	}
}
