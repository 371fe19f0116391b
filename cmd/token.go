package cmd

import (
	"fmt"

	internalApp "github.com/haierkeys/note-folder-service/internal/app"
	pkgapp "github.com/haierkeys/note-folder-service/pkg/app"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type tokenFlags struct {
	config   string
	uid      string
	nickname string
}

func init() {
	tokenEnv := new(tokenFlags)

	var tokenCommand = &cobra.Command{
		Use:   "token --uid <user id> [-c config_file]",
		Short: "Issue a bearer token for a user id // 为用户签发 Token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if tokenEnv.uid == "" {
				return fmt.Errorf("--uid is required")
			}
			cfg, _, err := internalApp.LoadConfig(tokenEnv.config)
			if err != nil {
				bootstrapLogger.Error("failed to load config", zap.String("path", tokenEnv.config), zap.Error(err))
				return err
			}

			tm := pkgapp.NewTokenManager(pkgapp.TokenConfig{
				SecretKey: cfg.Security.AuthTokenKey,
				Issuer:    pkgapp.DefaultTokenIssuer,
				Expiry:    cfg.GetTokenExpiry(),
			})
			token, err := tm.Generate(tokenEnv.uid, tokenEnv.nickname, "")
			if err != nil {
				return err
			}
			fmt.Println(token)
			return nil
		},
	}

	rootCmd.AddCommand(tokenCommand)
	fs := tokenCommand.Flags()
	fs.StringVarP(&tokenEnv.config, "config", "c", "config/config.yaml", "config file")
	fs.StringVar(&tokenEnv.uid, "uid", "", "user id")
	fs.StringVar(&tokenEnv.nickname, "nickname", "", "nickname carried in the token")
}
