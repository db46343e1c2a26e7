package cmd

import (
	"fmt"
	"stepwise_backend/internal/model"

	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "写入用户并签发会话令牌",
	Long:  "按 openId 写入或更新用户并打印会话令牌。openId 与 auth.owner_open_id 相同时用户为管理员。",
	RunE: func(cmd *cobra.Command, args []string) error {
		openID, _ := cmd.Flags().GetString("open-id")
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		method, _ := cmd.Flags().GetString("login-method")

		application, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer application.Close()

		user, token, err := application.Services.Auth.Login(cmd.Context(), model.Identity{
			OpenID:      openID,
			Name:        name,
			Email:       email,
			LoginMethod: method,
		})
		if err != nil {
			return fmt.Errorf("login: %w", err)
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "user %d (%s) role=%s\n", user.ID, user.OpenID, user.Role)
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().String("open-id", "", "登录方提供的用户标识")
	tokenCmd.Flags().String("name", "", "用户名")
	tokenCmd.Flags().String("email", "", "邮箱")
	tokenCmd.Flags().String("login-method", "cli", "登录方式")
	tokenCmd.MarkFlagRequired("open-id")
}
