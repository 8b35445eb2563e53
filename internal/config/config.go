package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the main configuration for inv.
type Config struct {
	SiteID     string           `toml:"site_id"`
	BaseDir    string           `toml:"base_dir"`
	LogDir     string           `toml:"log_dir"`
	Database   DatabaseConfig   `toml:"database"`
	Evidence   EvidenceConfig   `toml:"evidence"`
	Encryption EncryptionConfig `toml:"encryption"`
	Server     ServerConfig     `toml:"server"`
	Identity   IdentityConfig   `toml:"identity"`

	// Coordinations maps an asset classification to the coordination code
	// whose signer handles its assessments. Missing entries use the defaults.
	Coordinations map[string]string `toml:"coordinations,omitempty"`

	// Permissions replaces the capability set of the named roles.
	Permissions map[string][]string `toml:"permissions,omitempty"`
}

// DatabaseConfig represents configuration for the asset database.
// This uses a tagged union pattern - the Type field determines which other fields are relevant.
type DatabaseConfig struct {
	Type    string `toml:"type"`               // "sqlite" or "memory"
	DataDir string `toml:"data_dir,omitempty"` // only used for type=sqlite
}

// EvidenceConfig represents configuration for the evidence store.
// This uses a tagged union pattern - the Type field determines which other fields are relevant.
type EvidenceConfig struct {
	Type    string `toml:"type"`     // "memory", "filesystem" or "s3"
	MaxSize int64  `toml:"max_size"` // largest accepted upload in bytes; defaults to 25 MiB
	Encrypt bool   `toml:"encrypt"`  // encrypt file contents with the configured age key

	// FileSystem-specific fields (only used when Type == "filesystem")
	Root string `toml:"root,omitempty"`

	// S3-specific fields (only used when Type == "s3")
	S3Bucket       string `toml:"s3_bucket,omitempty"`
	S3Prefix       string `toml:"s3_prefix,omitempty"`
	S3Region       string `toml:"s3_region,omitempty"`
	S3Endpoint     string `toml:"s3_endpoint,omitempty"`
	S3AccessKey    string `toml:"s3_access_key,omitempty"`
	S3SecretKey    string `toml:"s3_secret_key,omitempty"`
	S3UsePathStyle bool   `toml:"s3_use_path_style,omitempty"`
}

// EncryptionConfig holds paths to the age key pair used for evidence encryption.
type EncryptionConfig struct {
	Type           string `toml:"type"` // "age" (default) or "test"
	PublicKeyPath  string `toml:"public_key_path"`
	PrivateKeyPath string `toml:"private_key_path"`
}

// ServerConfig configures the HTTP adapter.
type ServerConfig struct {
	Addr string `toml:"addr"`
	// JWTSecret signs and verifies bearer tokens. INV_JWT_SECRET overrides it.
	JWTSecret string `toml:"jwt_secret,omitempty"`
}

// IdentityConfig is the default identity for CLI commands.
type IdentityConfig struct {
	ActorID string `toml:"actor_id"`
	Role    string `toml:"role"`
}

// DefaultMaxEvidenceSize is the upload limit used when none is configured.
const DefaultMaxEvidenceSize = 25 << 20

// NewConfig creates a new Config with the provided values and default paths.
func NewConfig(siteID, baseDir string) *Config {
	return &Config{
		SiteID:  siteID,
		BaseDir: baseDir,
		LogDir:  filepath.Join(baseDir, "log"),
		Database: DatabaseConfig{
			Type:    "sqlite",
			DataDir: filepath.Join(baseDir, "db"),
		},
		Evidence: EvidenceConfig{
			Type:    "filesystem",
			MaxSize: DefaultMaxEvidenceSize,
			Root:    filepath.Join(baseDir, "evidence"),
		},
		Encryption: EncryptionConfig{
			Type:           "age",
			PublicKeyPath:  filepath.Join(baseDir, "keys", "inv.pub"),
			PrivateKeyPath: filepath.Join(baseDir, "keys", "inv.key"),
		},
		Server: ServerConfig{Addr: "127.0.0.1:8080"},
	}
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ReadFromFile reads a Config from the specified file path.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

func writeToFile(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// The file may carry the JWT secret and S3 credentials.
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	if err := m.Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Init initializes a new config file at the specified path with the provided Config.
func Init(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := writeToFile(path, cfg); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}
