package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var (
		host         string
		username     string
		password     string
		clientID     string
		clientSecret string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Obtain an access token from a running server",
		Long:  "Exchange a username/password or client_id/client_secret pair for a bearer token via POST /auth/token.",
		Example: `  # Password grant
  ordersctl login --host http://localhost:8080 --username user_a --password password_a

  # Client-credentials grant
  ordersctl login --host http://localhost:8080 --client-id service_account --client-secret service_secret`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			grant := map[string]string{}
			switch {
			case username != "":
				grant["grant_type"] = "password"
				grant["username"] = username
				grant["password"] = password
			case clientID != "":
				grant["grant_type"] = "client_credentials"
				grant["client_id"] = clientID
				grant["client_secret"] = clientSecret
			default:
				return fmt.Errorf("either --username or --client-id is required")
			}

			body, err := json.Marshal(grant)
			if err != nil {
				return err
			}

			client := &http.Client{Timeout: 10 * time.Second}
			resp, err := client.Post(host+"/auth/token", "application/json", bytes.NewReader(body))
			if err != nil {
				return fmt.Errorf("request token: %w", err)
			}
			defer resp.Body.Close() //nolint:errcheck

			raw, err := io.ReadAll(resp.Body)
			if err != nil {
				return fmt.Errorf("read response: %w", err)
			}
			if resp.StatusCode != http.StatusOK {
				var errBody struct {
					Detail string `json:"detail"`
				}
				if json.Unmarshal(raw, &errBody) == nil && errBody.Detail != "" {
					return fmt.Errorf("server returned %d: %s", resp.StatusCode, errBody.Detail)
				}
				return fmt.Errorf("server returned %d", resp.StatusCode)
			}

			var tokenResp struct {
				AccessToken string `json:"access_token"`
			}
			if err := json.Unmarshal(raw, &tokenResp); err != nil {
				return fmt.Errorf("parse response: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), tokenResp.AccessToken)
			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", "http://localhost:8080", "Server base URL")
	cmd.Flags().StringVar(&username, "username", "", "Username for the password grant")
	cmd.Flags().StringVar(&password, "password", "", "Password for the password grant")
	cmd.Flags().StringVar(&clientID, "client-id", "", "Client ID for the client_credentials grant")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "Client secret for the client_credentials grant")

	return cmd
}
