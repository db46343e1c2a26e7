package cmd

import (
	"errors"
	"fmt"
	"stepwise_backend/internal/app"
	"stepwise_backend/internal/config"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "stepwise",
	Short:         "数学解题分步提示后端",
	Long:          "Stepwise 后端：从题目与解答图片抽取步骤，按需生成 AI 提示与引导问题，并记录学习进度。",
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "configs", "配置文件 config.yaml 所在目录")
	rootCmd.Flags().Bool("migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(refreshTextsCmd)
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	dir, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadConfig(dir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// openApp 维护命令共用的初始化，要求已配置数据库
func openApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cfg.Database.Offline() {
		return nil, errors.New("database.driver is not configured")
	}

	application, err := app.NewApp(cfg)
	if err != nil {
		return nil, err
	}
	return application, nil
}
