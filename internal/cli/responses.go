package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-slide-form/internal/config"
	"github.com/MKhiriev/go-slide-form/internal/crypto"
	"github.com/MKhiriev/go-slide-form/internal/owner"
	"github.com/MKhiriev/go-slide-form/internal/validators"
	"github.com/MKhiriev/go-slide-form/models"
	"github.com/spf13/cobra"
)

type decryptOptions struct {
	privateKey string
	vaultPath  string
	vaultField string
	output     string
}

func newResponsesCommand(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "responses",
		Short: "Work with collected responses",
	}
	cmd.AddCommand(newDecryptCommand(root))
	return cmd
}

func newDecryptCommand(root *rootOptions) *cobra.Command {
	opts := &decryptOptions{}

	cmd := &cobra.Command{
		Use:   "decrypt <form-id>",
		Short: "Download and decrypt the responses of a form",
		Long: `Download every response of a form and open it with the owner private key.
Responses are written as JSON lines. A response that cannot be opened is
still written, with its "error" field set.

The private key is read from --private-key or from a Vault KV secret
(--vault-path, using VAULT_ADDR and VAULT_TOKEN).`,
		Example: `  slideform responses decrypt 0190a5c4-7f1e-7000-8000-000000000001 --private-key owner.pem
  slideform responses decrypt 0190a5c4-7f1e-7000-8000-000000000001 --vault-path secret/data/slideform`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecrypt(cmd, root, opts, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.privateKey, "private-key", "", "owner private key PEM file")
	cmd.Flags().StringVar(&opts.vaultPath, "vault-path", "", "Vault KV path holding the private key")
	cmd.Flags().StringVar(&opts.vaultField, "vault-field", "", "field of the Vault secret (default private_key)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write JSON lines to a file instead of stdout")

	return cmd
}

func runDecrypt(cmd *cobra.Command, root *rootOptions, opts *decryptOptions, formID string) error {
	if err := validators.ValidateFormID(formID); err != nil {
		return err
	}

	cfg, err := root.clientConfig(&config.StructuredConfig{
		Crypto: config.Crypto{
			PrivateKeyFile: opts.privateKey,
			VaultPath:      opts.vaultPath,
			VaultField:     opts.vaultField,
		},
	})
	if err != nil {
		return err
	}
	if cfg.Adapter.Token == "" {
		return errNoToken
	}

	scheme, err := crypto.ParseScheme(cfg.Crypto.Scheme)
	if err != nil {
		return err
	}
	keySource, err := owner.NewKeySource(cfg.Crypto)
	if err != nil {
		return err
	}
	unwrapper, err := owner.LoadUnwrapper(cmd.Context(), keySource, scheme)
	if err != nil {
		return err
	}

	services, err := newClientServices(cfg, root)
	if err != nil {
		return err
	}

	responses, decryptErr := services.OwnerService.DecryptResponses(cmd.Context(), formID, unwrapper)
	if decryptErr != nil && responses == nil {
		return fmt.Errorf("list responses: %w", decryptErr)
	}

	failed, err := writeResponses(cmd.OutOrStdout(), opts.output, responses)
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	printSuccess(errOut, "%d of %d responses decrypted", len(responses)-failed, len(responses))
	if failed > 0 {
		root.logger.Warn().Err(decryptErr).Str("form_id", formID).Int("failed", failed).Msg("responses could not be opened")
		printFailure(errOut, "%d responses could not be opened, see their %s field", failed, highlight("error"))
		return errPartialDecryption
	}
	return nil
}

// writeResponses writes to path, or to stdout when path is empty. A failed
// close of the output file is reported, since it may drop buffered lines.
func writeResponses(stdout io.Writer, path string, responses []models.DecryptedResponse) (failed int, err error) {
	if path == "" {
		return writeJSONLines(stdout, responses)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return 0, fmt.Errorf("create output file: %w", err)
	}
	return writeAndClose(f, responses)
}

func writeAndClose(wc io.WriteCloser, responses []models.DecryptedResponse) (failed int, err error) {
	failed, err = writeJSONLines(wc, responses)
	if closeErr := wc.Close(); closeErr != nil && err == nil {
		err = fmt.Errorf("close output file: %w", closeErr)
	}
	return failed, err
}

// writeJSONLines writes one response per line and counts the failed ones.
func writeJSONLines(w io.Writer, responses []models.DecryptedResponse) (failed int, err error) {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)

	for _, r := range responses {
		if r.Error != "" {
			failed++
		}
		if err = encoder.Encode(r); err != nil {
			return failed, fmt.Errorf("write response %s: %w", r.ID, err)
		}
	}
	return failed, nil
}
