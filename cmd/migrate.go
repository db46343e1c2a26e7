package cmd

import (
	"errors"
	"fmt"
	"stepwise_backend/pkg/database"
	"stepwise_backend/pkg/logger"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "只执行数据库迁移，完成后退出",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger.InitLogger(cfg)
		defer logger.Log.Sync()

		db, err := database.Open(&cfg.Database, false)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		if db == nil {
			return errors.New("database.driver is not configured")
		}
		if sqlDB, err := db.DB(); err == nil {
			defer sqlDB.Close()
		}

		if err := database.Migrate(db); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		fmt.Println("数据库迁移完成")
		return nil
	},
}
