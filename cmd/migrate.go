package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Lulu77Donc/reggie-take-out/configs"
	"github.com/Lulu77Donc/reggie-take-out/pkg/logger"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()
			if err := configs.SetupDatabase(db); err != nil {
				return err
			}
			logger.S().Info("schema migrated")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Migrate, then insert the admin account and starter categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := bootstrap()
			if err != nil {
				return err
			}
			defer logger.Sync()
			return migrateAndSeed(cmd.Context(), db, cfg)
		},
	}
}
