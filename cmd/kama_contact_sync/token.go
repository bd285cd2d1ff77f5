package main

import (
	"errors"

	"github.com/spf13/cobra"

	"kama_contact_sync/internal/dto/respond"
	"kama_contact_sync/pkg/util/jwt"
)

func newTokenCmd(a *app) *cobra.Command {
	var clientID string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for a sync client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.conf.JWTConfig.Secret == "" {
				return errors.New("jwtConfig.secret is required to issue tokens")
			}
			jwt.Init(a.conf.JWTConfig.Secret, a.conf.JWTConfig.AccessTokenExpiry)
			token, err := jwt.GenerateAccessToken(clientID)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), respond.IssueTokenRespond{ClientId: clientID, AccessToken: token})
		},
	}
	cmd.Flags().StringVar(&clientID, "client", "", "Client (device) id; deletion watermarks are kept per client")
	_ = cmd.MarkFlagRequired("client")
	return cmd
}
