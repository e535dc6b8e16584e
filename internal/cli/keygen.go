package cli

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/MKhiriev/go-slide-form/internal/crypto"
	"github.com/MKhiriev/go-slide-form/internal/owner"
	"github.com/spf13/cobra"
)

const (
	defaultRSABits  = 3072
	publicKeySuffix = ".pub"
)

type keygenOptions struct {
	out  string
	bits int
	copy bool
}

func newKeygenCommand(root *rootOptions) *cobra.Command {
	opts := &keygenOptions{}

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate the owner key pair",
		Long: `Generate the key pair responses are encrypted to.

The private key is written as PEM to --out and must stay with the owner.
The public key is written next to it with a .pub suffix; it goes into
share links.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeygen(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "owner.pem", "private key file, the public key goes to <out>.pub")
	cmd.Flags().IntVar(&opts.bits, "bits", defaultRSABits, "RSA key size")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "copy the public key to the clipboard")

	return cmd
}

func runKeygen(cmd *cobra.Command, root *rootOptions, opts *keygenOptions) error {
	scheme, err := crypto.ParseScheme(schemeOrDefault(root.scheme))
	if err != nil {
		return err
	}

	keys, err := crypto.GenerateOwnerKeys(scheme, opts.bits)
	if err != nil {
		return err
	}

	if err = owner.WritePrivateKey(opts.out, keys.PrivateKeyPEM); err != nil {
		return err
	}

	publicKey := base64.RawURLEncoding.EncodeToString(keys.PublicKey)
	pubPath := opts.out + publicKeySuffix
	if err = os.WriteFile(pubPath, []byte(publicKey+"\n"), 0o644); err != nil {
		return fmt.Errorf("write public key file: %w", err)
	}

	root.logger.Debug().Str("scheme", string(scheme)).Str("out", opts.out).Msg("owner keys generated")

	errOut := cmd.ErrOrStderr()
	printSuccess(errOut, "%s key pair generated", scheme)
	printHint(errOut, "Private key: %s (keep it secret)", highlight(opts.out))
	printHint(errOut, "Public key: %s", highlight(pubPath))
	fmt.Fprintln(cmd.OutOrStdout(), publicKey)

	if opts.copy {
		copyOrWarn(cmd, root, "public key", publicKey)
	}
	return nil
}
