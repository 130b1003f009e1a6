package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ariebrainware/chiro-directory/config"
	"github.com/ariebrainware/chiro-directory/model"
	"github.com/ariebrainware/chiro-directory/server"
	"github.com/ariebrainware/chiro-directory/util"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const sentryFlushTimeout = 2 * time.Second

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "chirodir",
		Short:         "Sports chiropractor directory",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.AddCommand(newServeCmd(), newInitDBCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Initialize the store if needed and serve the directory over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func newInitDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "initdb",
		Short: "Create and seed the store if it does not exist yet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, seeded, err := openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer config.CloseDatabase(db)

			if seeded {
				cmd.Println("Store created and seeded with demo chiropractors.")
			} else {
				cmd.Println("Store already exists, nothing to do.")
			}

			n, err := model.NewChiropractorRepository(db).Count(cmd.Context())
			if err != nil {
				return fmt.Errorf("error counting chiropractors: %w", err)
			}
			cmd.Printf("Store holds %d chiropractors.\n", n)
			return nil
		},
	}
}

// openStore connects to the configured database and runs the seed initializer.
func openStore(ctx context.Context) (*gorm.DB, bool, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := config.ConnectDatabase()
	if err != nil {
		return nil, false, fmt.Errorf("error connecting to database: %w", err)
	}

	seeded, err := model.InitChiropractorStore(ctx, db)
	if err != nil {
		_ = config.CloseDatabase(db)
		return nil, false, fmt.Errorf("error initializing store: %w", err)
	}
	return db, seeded, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load the configuration
	cfg := config.LoadConfig()

	db, _, err := openStore(cmd.Context())
	if err != nil {
		// The store is a hard requirement; never serve without it.
		log.Fatalf("%v", err)
	}
	defer config.CloseDatabase(db)

	if err := util.InitSentry(cfg.SentryDSN, cfg.AppEnv, "1.0.0"); err != nil {
		log.Printf("Sentry disabled: %v", err)
	}
	defer sentry.Flush(sentryFlushTimeout)

	if _, err := config.ConnectRedis(); err != nil {
		log.Printf("Redis unavailable, rate limiting submissions in process: %v", err)
	}
	defer config.CloseRedis()

	// Set Gin mode from config
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	router := server.NewRouter(db, cfg)

	address := fmt.Sprintf(":%d", cfg.AppPort)
	log.Printf("%s listening on %s", cfg.AppName, address)
	if err := router.Run(address); err != nil {
		return fmt.Errorf("error starting server: %w", err)
	}
	return nil
}
