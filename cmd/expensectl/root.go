package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/polkiloo/expense-tracker/internal/adapter/api"
)

const defaultAPIURL = "http://localhost:8080"

type options struct {
	apiURL    string
	tokenFile string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "expensectl",
		Short:         "Expense tracker CLI",
		Long:          "Command line interface for the expense tracker API.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", envOr("EXPENSE_API_URL", defaultAPIURL), "expense tracker API base URL")
	cmd.PersistentFlags().StringVar(&opts.tokenFile, "token-file", defaultTokenPath(), "file storing the access token")

	cmd.AddCommand(
		registerCmd(opts),
		loginCmd(opts),
		expensesCmd(opts),
	)
	return cmd
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (o *options) client() (*api.HTTPClient, error) {
	return api.NewHTTPClient(o.apiURL, nil)
}

// authedClient loads the stored token into a new client.
func (o *options) authedClient() (*api.HTTPClient, error) {
	token, err := loadToken(o.tokenFile)
	if err != nil {
		return nil, err
	}
	client, err := o.client()
	if err != nil {
		return nil, err
	}
	client.SetToken(token)
	return client, nil
}
