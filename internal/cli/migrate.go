package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ElkinVA/MyBiz-Project/internal/config"
	"github.com/ElkinVA/MyBiz-Project/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		db, err := database.Open(cfg.DBDSN)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.ApplySchema(db); err != nil {
			return err
		}
		fmt.Println("schema applied")
		return nil
	},
}
