// cmd/gwctl/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/dangerclosesec/goodworks/internal/app"
	"github.com/dangerclosesec/goodworks/internal/auth"
	"github.com/dangerclosesec/goodworks/internal/config"
	"github.com/dangerclosesec/goodworks/internal/database"
	"github.com/dangerclosesec/goodworks/internal/metrics"
	"github.com/dangerclosesec/goodworks/internal/model"
	"github.com/dangerclosesec/goodworks/internal/repository"
	"github.com/dangerclosesec/goodworks/internal/service"
)

var (
	actorID string
	verbose bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	ngoStatusCmd.Flags().StringVar(&actorID, "actor", "", "Platform admin user id performing the transition")
	ngoStatusCmd.MarkFlagRequired("actor")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(grantRoleCmd)
	rootCmd.AddCommand(ngoStatusCmd)
	rootCmd.AddCommand(tokenCmd)
}

var rootCmd = &cobra.Command{
	Use:   "gwctl",
	Short: "gwctl administers a goodworks deployment",
	Long:  `gwctl migrates the schema, seeds roles, moderates NGOs, and issues tokens for a goodworks deployment.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustConfig()
		db, err := database.Open(cmd.Context(), cfg, database.GormLevel(cfg.LogLevel))
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer database.Close(db)

		if err := repository.Migrate(db); err != nil {
			log.Fatalf("Failed to migrate: %v", err)
		}
		fmt.Println("Schema migrated successfully")
	},
}

var grantRoleCmd = &cobra.Command{
	Use:   "grant-role [user-id] [role]",
	Short: "Grant a role to a user without a policy check",
	Long:  `Grant a role directly in the database. Use this to seed the first platform_admin.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		userID := mustUUID(args[0])
		role := model.Role(args[1])
		if !role.Valid() {
			log.Fatalf("Unknown role %q", args[1])
		}

		withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
			return a.Bootstrap(ctx, userID, role)
		})
		fmt.Printf("Granted %s to %s\n", role, userID)
	},
}

var ngoStatusCmd = &cobra.Command{
	Use:   "ngo-status [ngo-id] [approved|rejected]",
	Short: "Approve or reject a pending NGO",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ngoID := mustUUID(args[0])
		actor := mustUUID(actorID)

		withApp(cmd.Context(), func(ctx context.Context, a *app.App) error {
			ctx = auth.WithIdentity(ctx, &auth.Identity{ID: actor})
			ngo, err := a.Facade.NGOs.Transition(ctx, ngoID, service.TransitionNGOInput{
				Status: model.NGOStatus(args[1]),
			})
			if err != nil {
				return err
			}
			fmt.Printf("NGO %s (%s) is now %s\n", ngo.ID, ngo.Name, ngo.Status)
			return nil
		})
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token [user-id] [email]",
	Short: "Issue a bearer token for a user",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustConfig()
		userID := mustUUID(args[0])

		tm := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)
		token, err := tm.Generate(userID.String(), args[1])
		if err != nil {
			log.Fatalf("Failed to generate token: %v", err)
		}
		fmt.Println(token)
	},
}

func withApp(ctx context.Context, fn func(ctx context.Context, a *app.App) error) {
	cfg := mustConfig()
	db, err := database.Open(ctx, cfg, database.GormLevel(cfg.LogLevel))
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	a, err := app.New(ctx, cfg, db, metrics.New(nil))
	if err != nil {
		log.Fatalf("Failed to assemble services: %v", err)
	}

	err = fn(ctx, a)
	a.Close()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func mustConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func mustUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		log.Fatalf("Invalid id %q: %v", s, err)
	}
	return id
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
