package cli

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-slide-form/internal/config"
	"github.com/MKhiriev/go-slide-form/internal/logger"
	"github.com/MKhiriev/go-slide-form/models"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

// rootOptions are the flags shared by every command. Empty values fall back
// to the environment and the JSON config file.
type rootOptions struct {
	configPath string
	store      string
	token      string
	scheme     string
	verbose    bool

	logger *logger.Logger
	// copyText puts text on the system clipboard.
	copyText func(string) error
}

// overrides turns the flags into the highest priority config source.
func (o *rootOptions) overrides() *config.StructuredConfig {
	return &config.StructuredConfig{
		Adapter: config.Adapter{HTTPAddress: o.store, Token: o.token},
		Crypto:  config.Crypto{Scheme: o.scheme},
	}
}

func (o *rootOptions) clientConfig(extra ...*config.StructuredConfig) (*config.ClientConfig, error) {
	return config.LoadClientConfig(o.configPath, append([]*config.StructuredConfig{o.overrides()}, extra...)...)
}

// NewRootCommand assembles the slideform command tree.
func NewRootCommand(build models.AppBuildInfo) *cobra.Command {
	return newRootCommand(build, clipboard.WriteAll)
}

func newRootCommand(build models.AppBuildInfo, copyText func(string) error) *cobra.Command {
	opts := &rootOptions{copyText: copyText}

	rootCmd := &cobra.Command{
		Use:   "slideform",
		Short: "Publish end-to-end encrypted forms and read their responses",
		Long: `slideform is the form owner's tool. Form content is encrypted with a
content key before it leaves this machine, and responses can only be
opened with the owner's private key.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.logger = logger.NewCLILogger("slideform", opts.verbose)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "JSON config file path")
	flags.StringVar(&opts.store, "store", "", "form store base URL")
	flags.StringVar(&opts.token, "token", "", "owner bearer token")
	flags.StringVar(&opts.scheme, "scheme", "", "key wrap scheme (RSA-OAEP-256, X25519-SEALED-BOX)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print debug logs to stderr")

	rootCmd.AddCommand(
		newKeygenCommand(opts),
		newPublishCommand(opts),
		newTokenCommand(opts),
		newResponsesCommand(opts),
		newVersionCommand(build),
	)

	return rootCmd
}

// Execute runs the command tree and exits non-zero on failure.
func Execute(build models.AppBuildInfo) {
	rootCmd := NewRootCommand(build)
	if err := rootCmd.Execute(); err != nil {
		printFailure(rootCmd.ErrOrStderr(), "%v", err)
		os.Exit(1)
	}
}

func schemeOrDefault(name string) string {
	if name == "" {
		return "RSA-OAEP-256"
	}
	return name
}

func copyOrWarn(cmd *cobra.Command, opts *rootOptions, what, text string) {
	if err := opts.copyText(text); err != nil {
		printFailure(cmd.ErrOrStderr(), "could not copy %s to the clipboard: %v", what, err)
		return
	}
	printSuccess(cmd.ErrOrStderr(), "%s copied to the clipboard", what)
}

func versionString(build models.AppBuildInfo) string {
	return fmt.Sprintf("slideform %s (%s, %s)", build.BuildVersion(), build.BuildCommit(), build.BuildDate())
}
