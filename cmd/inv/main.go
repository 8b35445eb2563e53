package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"inv-go/internal/app"
	"inv-go/internal/config"
	"inv-go/internal/database"
	"inv-go/internal/encryption"
	"inv-go/internal/httpapi"
	"inv-go/internal/inv"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	defaults, err := app.GetDefaults()
	if err != nil {
		return nil, fmt.Errorf("getting defaults: %w", err)
	}

	cfg, err := config.ReadFromFile(defaults["config_path"])
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return cfg, nil
}

// newApp reads the config and creates an InvApp. The caller must defer app.Close().
// operation identifies the CLI command being run (e.g. "CreateAsset", "SignAssessment").
func newApp(operation string) (*app.InvApp, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	a, err := app.NewInvApp(cfg, operation)
	if err != nil {
		return nil, fmt.Errorf("initializing app: %w", err)
	}

	return a, nil
}

// callerIdentity resolves --actor/--role against the [identity] section.
func callerIdentity(cmd *cobra.Command, a *app.InvApp) (inv.Identity, error) {
	actor, _ := cmd.Flags().GetString("actor")
	role, _ := cmd.Flags().GetString("role")
	return a.Identity(actor, role)
}

// readPassphrase prompts on stderr and reads without echo when stdin is a terminal.
func readPassphrase(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading passphrase: %w", err)
		}
		return string(b), nil
	}
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

var rootCmd = &cobra.Command{
	Use:          "inv",
	Short:        "Asset custody and write-off register",
	SilenceUsage: true,
}

// config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		siteID, _ := cmd.Flags().GetString("site")
		if siteID == "" {
			siteID = uuid.New().String()
		}

		cfg := config.NewConfig(siteID, defaults["base_dir"])
		cfg.Identity.ActorID, _ = cmd.Flags().GetString("actor")
		cfg.Identity.Role, _ = cmd.Flags().GetString("role")

		if err := config.Init(defaults["config_path"], cfg); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		fmt.Printf("Configuration initialized at %s\n", defaults["config_path"])
		fmt.Printf("Site ID:  %s\n", siteID)
		fmt.Printf("Base Dir: %s\n", defaults["base_dir"])
		fmt.Println("Run 'inv db migrate' to create the database.")
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "View configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaults, err := app.GetDefaults()
		if err != nil {
			return fmt.Errorf("failed to get defaults: %w", err)
		}

		cfg, err := config.ReadFromFile(defaults["config_path"])
		if err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		fmt.Printf("Configuration from %s:\n\n", defaults["config_path"])
		fmt.Printf("Site ID:    %s\n", cfg.SiteID)
		fmt.Printf("Base Dir:   %s\n", cfg.BaseDir)
		fmt.Printf("Log Dir:    %s\n", cfg.LogDir)
		fmt.Printf("Database:   %s %s\n", cfg.Database.Type, cfg.Database.DataDir)
		fmt.Printf("Evidence:   %s (encrypt=%t, max %d bytes)\n", cfg.Evidence.Type, cfg.Evidence.Encrypt, cfg.Evidence.MaxSize)
		fmt.Printf("Encryption: %s\n", cfg.Encryption.Type)
		fmt.Printf("Server:     %s\n", cfg.Server.Addr)
		fmt.Printf("Identity:   %s (%s)\n", cfg.Identity.ActorID, cfg.Identity.Role)
		for class, code := range cfg.Coordinations {
			fmt.Printf("Route:      %s -> %s\n", class, code)
		}
		for role, caps := range cfg.Permissions {
			fmt.Printf("Grant:      %s: %s\n", role, strings.Join(caps, ", "))
		}
		return nil
	},
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Generate the evidence encryption key pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		enc, err := encryption.NewEncryptorFromConfig(cfg.Encryption)
		if err != nil {
			return err
		}

		pass, err := readPassphrase("New passphrase: ")
		if err != nil {
			return err
		}
		confirm, err := readPassphrase("Repeat passphrase: ")
		if err != nil {
			return err
		}
		if pass != confirm {
			return fmt.Errorf("passphrases do not match")
		}

		if err := enc.Setup(pass); err != nil {
			if errors.Is(err, encryption.ErrKeysExist) {
				return fmt.Errorf("%w; remove them first to start over", err)
			}
			return fmt.Errorf("generating keys: %w", err)
		}

		if ae, ok := enc.(*encryption.AgeEncryptor); ok {
			pub, err := ae.PublicKey()
			if err != nil {
				return err
			}
			fmt.Printf("Public key: %s\n", pub)
		}
		fmt.Println("Set 'encrypt = true' under [evidence] to encrypt new uploads.")
		return nil
	},
}

// db command
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the database",
}

// openDatabase opens the configured database without the migration check.
func openDatabase() (*database.SQLiteDatabase, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return database.NewDatabaseFromConfig(cfg.Database, cfg.SiteID)
}

var dbMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending schema migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := db.Migrate(); err != nil {
			return fmt.Errorf("migrating: %w", err)
		}
		st, err := db.MigrationStatus()
		if err != nil {
			return err
		}
		fmt.Printf("Database at version %d (%s)\n", st.Version, db.Path())
		return nil
	},
}

var dbStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		st, err := db.MigrationStatus()
		if err != nil {
			return err
		}
		switch {
		case st.Fresh:
			fmt.Printf("Database %s has no schema (latest is %d). Run 'inv db migrate'.\n", db.Path(), st.Latest)
		case st.Dirty:
			fmt.Printf("Database %s is dirty at version %d.\n", db.Path(), st.Version)
		default:
			fmt.Printf("Database %s at version %d of %d.\n", db.Path(), st.Version, st.Latest)
		}
		return nil
	},
}

var dbBackupCmd = &cobra.Command{
	Use:   "backup PATH",
	Short: "Write a consistent copy of the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Backup")
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.BackupDatabase(args[0]); err != nil {
			return err
		}
		fmt.Printf("Database copied to %s\n", args[0])
		return nil
	},
}

// history command
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View operation history",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		a, err := newApp("GetHistory")
		if err != nil {
			return err
		}
		defer a.Close()

		ops, err := a.GetHistory(cmd.Context(), limit)
		if err != nil {
			return err
		}

		if len(ops) == 0 {
			fmt.Println("No operations recorded.")
			return nil
		}

		for _, op := range ops {
			duration := ""
			if op.FinishedAt != nil {
				duration = op.FinishedAt.Sub(op.StartedAt).Truncate(time.Millisecond).String()
			}
			fmt.Printf("#%d  %-18s  %-10s  %s  %-8s  %-8s  %s\n",
				op.ID,
				op.Operation,
				op.ActorID,
				op.StartedAt.Format("2006-01-02 15:04:05"),
				op.Status,
				duration,
				op.Parameters,
			)
		}
		return nil
	},
}

// serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp("Serve")
		if err != nil {
			return err
		}
		defer a.Close()

		cfg := a.Config()
		environment, err := app.LoadEnvironment()
		if err != nil {
			return err
		}
		secret := cfg.Server.JWTSecret
		if environment.JWTSecret != "" {
			secret = environment.JWTSecret
		}
		auth, err := httpapi.NewAuthenticator(secret, nil)
		if err != nil {
			return fmt.Errorf("%w (set [server] jwt_secret or INV_JWT_SECRET)", err)
		}

		if err := a.CheckEvidence(); err != nil {
			return err
		}
		if a.EvidenceEncrypted() && term.IsTerminal(int(os.Stdin.Fd())) {
			pass, err := readPassphrase("Evidence passphrase (empty to serve uploads only): ")
			if err != nil {
				return err
			}
			if pass != "" {
				if err := a.UnlockEvidence(pass); err != nil {
					return err
				}
			}
		}

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = cfg.Server.Addr
		}

		srv := &http.Server{
			Addr:              addr,
			Handler:           httpapi.NewServer(a.Service(), auth, a.Logger(), cfg.Evidence.MaxSize).Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errc := make(chan error, 1)
		go func() {
			a.Logger().Info("listening", "addr", addr)
			errc <- srv.ListenAndServe()
		}()

		select {
		case err := <-errc:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("serving: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("actor", "", "Actor id (defaults to [identity] actor_id)")
	rootCmd.PersistentFlags().String("role", "", "Role (defaults to [identity] role)")

	// config subcommands
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().String("site", "", "Site id (default: random UUID)")
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configKeysCmd)

	// db subcommands
	dbCmd.AddCommand(dbMigrateCmd)
	dbCmd.AddCommand(dbStatusCmd)
	dbCmd.AddCommand(dbBackupCmd)

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(dbCmd)
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntP("limit", "n", 50, "Maximum number of operations to show")
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (defaults to [server] addr)")
}
