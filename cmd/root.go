package cmd

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/Lulu77Donc/reggie-take-out/configs"
	"github.com/Lulu77Donc/reggie-take-out/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:   "reggie",
	Short: "reggie take-out backend",
	Long:  "reggie runs the take-out back office and customer API, and manages its database.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd(), migrateCmd(), seedCmd())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// bootstrap loads config, starts the logger and opens the database.
func bootstrap() (*configs.Config, *gorm.DB, error) {
	cfg := configs.LoadConfig()
	if err := logger.Init(cfg.Log); err != nil {
		return nil, nil, errors.Wrap(err, "init logger")
	}
	db, err := configs.ConnectionDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, db, nil
}

func migrateAndSeed(ctx context.Context, db *gorm.DB, cfg *configs.Config) error {
	if err := configs.SetupDatabase(db); err != nil {
		return err
	}
	if err := configs.SeedAdmin(ctx, db, cfg); err != nil {
		return err
	}
	return configs.SeedCategories(ctx, db)
}
