package cli

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-slide-form/internal/adapter"
	"github.com/MKhiriev/go-slide-form/internal/config"
	"github.com/MKhiriev/go-slide-form/internal/crypto"
	"github.com/MKhiriev/go-slide-form/internal/owner"
	"github.com/MKhiriev/go-slide-form/internal/service"
	"github.com/spf13/cobra"
)

type publishOptions struct {
	file          string
	publicKey     string
	contentKey    string
	linkBase      string
	copyLink      bool
	printFragment bool
}

func newPublishCommand(root *rootOptions) *cobra.Command {
	opts := &publishOptions{}

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Encrypt a form definition and publish it",
		Long: `Encrypt a YAML or JSON form definition with a content key and publish it
to the form store. The share link printed at the end carries the content key
and the owner public key in its fragment; the store never sees either.

Pass --content-key to keep using the same content key when a form is
republished, so links handed out earlier keep working.`,
		Example: `  slideform publish -f survey.yaml --public-key owner.pem.pub --content-key survey.key`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublish(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "form definition (.yaml, .yml or .json)")
	cmd.Flags().StringVar(&opts.publicKey, "public-key", "", "owner public key file written by keygen")
	cmd.Flags().StringVar(&opts.contentKey, "content-key", "", "content key file, created when missing")
	cmd.Flags().StringVar(&opts.linkBase, "link-base", "", "base URL of share links (default the store URL)")
	cmd.Flags().BoolVar(&opts.copyLink, "copy", false, "copy the share link to the clipboard")
	cmd.Flags().BoolVar(&opts.printFragment, "fragment", false, "print only the link fragment")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runPublish(cmd *cobra.Command, root *rootOptions, opts *publishOptions) error {
	log := root.logger

	cfg, err := root.clientConfig()
	if err != nil {
		return err
	}
	if cfg.Adapter.Token == "" {
		return errNoToken
	}

	def, err := owner.LoadDefinition(opts.file)
	if err != nil {
		return err
	}

	scheme, err := crypto.ParseScheme(cfg.Crypto.Scheme)
	if err != nil {
		return err
	}
	publicKey, err := readPublicKey(opts.publicKey, scheme)
	if err != nil {
		return err
	}
	contentKey, created, err := loadOrCreateContentKey(opts.contentKey)
	if err != nil {
		return err
	}

	services, err := newClientServices(cfg, root)
	if err != nil {
		return err
	}

	request, response, err := services.OwnerService.Publish(cmd.Context(), contentKey, def)
	if err != nil {
		return fmt.Errorf("publish form: %w", err)
	}

	formID := response.FormID
	if formID == "" {
		formID = request.Form.ID
	}
	log.Debug().Str("form_id", formID).Int("questions", response.Questions).Msg("form published")

	fragment := crypto.BuildFragment(crypto.Config{
		ContentKeyParam: cfg.Crypto.ContentKeyParam,
		PublicKeyParam:  cfg.Crypto.PublicKeyParam,
	}, contentKey, publicKey)

	linkBase := opts.linkBase
	if linkBase == "" {
		linkBase = cfg.Adapter.HTTPAddress
	}
	link, err := crypto.BuildShareLink(linkBase, formID, fragment)
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	printSuccess(errOut, "form %s published with %d questions", highlight(formID), len(request.Questions))
	if created {
		printHint(errOut, "Content key saved to %s, reuse it when republishing", highlight(opts.contentKey))
	}
	if def.ID == "" {
		printHint(errOut, "Add %s to the definition to republish the same form", highlight("id: "+formID))
	}

	if opts.printFragment {
		fmt.Fprintln(cmd.OutOrStdout(), fragment)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), link)
	}

	if opts.copyLink {
		copyOrWarn(cmd, root, "share link", link)
	}
	return nil
}

func newClientServices(cfg *config.ClientConfig, root *rootOptions) (*service.ClientServices, error) {
	formStore, err := adapter.NewHTTPFormStore(cfg.Adapter, root.logger)
	if err != nil {
		return nil, err
	}
	return service.NewClientServices(formStore, *cfg, root.logger)
}

// readPublicKey reads a base64 public key file and checks that it parses for
// scheme, so a broken key never ends up in a share link.
func readPublicKey(path string, scheme crypto.Scheme) ([]byte, error) {
	if path == "" {
		return nil, errNoPublicKey
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read public key file: %w", err)
	}

	publicKey, err := crypto.DecodeBase64(string(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", crypto.ErrInvalidKey, err)
	}
	if _, err = crypto.ParsePublicKey(scheme, publicKey); err != nil {
		return nil, err
	}
	return publicKey, nil
}

// loadOrCreateContentKey reads the content key at path. A missing file is
// created with a fresh key. An empty path yields a key that is not saved.
func loadOrCreateContentKey(path string) (key []byte, created bool, err error) {
	if path != "" {
		data, readErr := os.ReadFile(path)
		switch {
		case readErr == nil:
			key, err = crypto.DecodeBase64(string(data))
			if err != nil || len(key) != crypto.ContentKeySize {
				return nil, false, fmt.Errorf("%w: content key file %s", crypto.ErrInvalidKey, path)
			}
			return key, false, nil
		case !errors.Is(readErr, os.ErrNotExist):
			return nil, false, fmt.Errorf("read content key file: %w", readErr)
		}
	}

	key, err = crypto.GenerateContentKey(nil)
	if err != nil {
		return nil, false, err
	}
	if path == "" {
		return key, false, nil
	}

	encoded := base64.RawURLEncoding.EncodeToString(key) + "\n"
	if err = owner.WritePrivateKey(path, []byte(encoded)); err != nil {
		return nil, false, err
	}
	return key, true, nil
}
