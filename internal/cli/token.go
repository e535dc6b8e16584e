package cli

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-slide-form/internal/config"
	"github.com/MKhiriev/go-slide-form/internal/service"
	"github.com/spf13/cobra"
)

const defaultTokenDuration = 24 * time.Hour

type tokenOptions struct {
	ownerID  string
	duration time.Duration
}

func newTokenCommand(root *rootOptions) *cobra.Command {
	opts := &tokenOptions{}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an owner token",
		Long: `Mint a bearer token for publishing forms and listing responses.

The signing key and issuer must match the form store's APP_TOKEN_SIGN_KEY
and APP_TOKEN_ISSUER settings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToken(cmd, root, opts)
		},
	}

	cmd.Flags().StringVar(&opts.ownerID, "owner", "", "owner identifier put into the token subject")
	cmd.Flags().DurationVar(&opts.duration, "duration", 0, "token lifetime (default APP_TOKEN_DURATION or 24h)")

	return cmd
}

func runToken(cmd *cobra.Command, root *rootOptions, opts *tokenOptions) error {
	if opts.ownerID == "" {
		return errNoOwnerID
	}

	cfg, err := config.LoadStructuredConfig(root.configPath, &config.StructuredConfig{
		App: config.App{TokenDuration: opts.duration},
	})
	if err != nil {
		return err
	}
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return errTokenConfig
	}
	if cfg.App.TokenDuration <= 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}

	token, err := service.NewAuthService(cfg.App, root.logger).CreateToken(cmd.Context(), opts.ownerID)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token.String())
	printSuccess(cmd.ErrOrStderr(), "token for %s valid until %s", highlight(opts.ownerID),
		time.Now().Add(cfg.App.TokenDuration).Format(time.RFC3339))
	return nil
}
