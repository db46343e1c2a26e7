package cmd

import (
	"stepwise_backend/internal/app"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "启动 HTTP 服务",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cfg.ForceMigrate, _ = cmd.Flags().GetBool("migrate")

		application, err := app.NewApp(cfg)
		if err != nil {
			return err
		}
		defer application.Close()

		return application.Run()
	},
}

func init() {
	serveCmd.Flags().Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
}
