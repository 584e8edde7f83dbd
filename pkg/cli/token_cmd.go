package cli

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var (
		subject string
		role    string
		secret  string
		expires time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a dev-mode access token without a running server",
		Long:  "Sign an HS256 access token locally for development and testing. The secret must match the server's JWT_SECRET.",
		Example: `  # Mint a token for user_a with the default dev secret
  ordersctl token --subject user_a --secret dev-secret-change-in-production

  # Mint an admin token with a custom expiry
  ordersctl token --subject admin --role admin --secret mysecret --expires 48h`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if role != "user" && role != "admin" {
				return fmt.Errorf("role must be 'user' or 'admin', got %q", role)
			}

			now := time.Now()
			claims := jwt.MapClaims{
				"sub":  subject,
				"role": role,
				"iat":  now.Unix(),
				"exp":  now.Add(expires).Unix(),
			}
			token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
			signed, err := token.SignedString([]byte(secret))
			if err != nil {
				return fmt.Errorf("sign token: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), signed)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Token subject (sub claim)")
	cmd.Flags().StringVar(&role, "role", "user", "Token role: user or admin")
	cmd.Flags().StringVar(&secret, "secret", "", "JWT signing secret (HS256)")
	cmd.Flags().DurationVar(&expires, "expires", 30*time.Minute, "Token expiry duration")
	_ = cmd.MarkFlagRequired("subject")
	_ = cmd.MarkFlagRequired("secret")

	return cmd
}
