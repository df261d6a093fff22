package main

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/truongteam/medusa-admin/internal/adapters/clients"
	"github.com/truongteam/medusa-admin/internal/adapters/clients/acl"
	"github.com/truongteam/medusa-admin/internal/adapters/notify"
	"github.com/truongteam/medusa-admin/internal/app"
	"github.com/truongteam/medusa-admin/internal/platform/config"
	"github.com/truongteam/medusa-admin/internal/platform/logging"
)

// streams are the terminal the commands talk to.
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer

	// interactive reports whether in is a terminal a human can answer on.
	interactive func() bool
}

func defaultStreams() streams {
	return streams{
		in:  os.Stdin,
		out: os.Stdout,
		err: os.Stderr,
		interactive: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
}

type rootOptions struct {
	profile   string
	configDir string
	verbose   bool
}

func newRootCmd(s streams) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "giftcardctl",
		Short: "Edit and publish gift cards in the store",
		Long: `giftcardctl loads a gift card from the store admin API, applies edits and
sends them back as a sparse update, the same way the editor service does.

Configuration is read from <config-dir>/base.yaml, <config-dir>/<profile>.yaml
and APP_ environment variables. The store token is usually passed as
APP_SERVICES__STORE__API_TOKEN.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetIn(s.in)
	root.SetOut(s.out)
	root.SetErr(s.err)

	root.PersistentFlags().StringVar(&opts.profile, "profile", cmp.Or(os.Getenv("APP_ENVIRONMENT"), "local"), "configuration profile")
	root.PersistentFlags().StringVar(&opts.configDir, "config-dir", config.DefaultConfigDir, "directory holding base.yaml and the profiles")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log store calls to stderr")

	root.AddCommand(
		newShowCmd(opts, s),
		newEditCmd(opts, s),
		newTogglePublishCmd(opts, s),
		newDeleteCmd(opts, s),
	)

	return root
}

// openEditor builds an editor for id that prints its notifications and
// navigation to out, and loads the card.
func openEditor(cmd *cobra.Command, opts *rootOptions, s streams, id string) (*app.Editor, error) {
	cfg, err := config.LoadFrom(opts.configDir, opts.profile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logCfg := logging.FromConfig(cfg)
	logCfg.Format = "text"
	logCfg.File.Enabled = false
	logCfg.Level = "warn"

	if opts.verbose {
		logCfg.Level = "debug"
	}

	logger := logging.NewWithWriter(logCfg, s.err).With(slog.String("command", cmd.Name()))

	client, err := clients.New(clients.StoreConfig(cfg.Services.Store, cfg.Client, logger))
	if err != nil {
		return nil, fmt.Errorf("creating store client: %w", err)
	}

	store := acl.NewStoreAdapter(acl.StoreAdapterConfig{Client: client, Logger: logger})
	printer := notify.Printer{W: s.out}

	editor := app.NewEditor(app.EditorConfig{
		GiftCardID:  id,
		Store:       store,
		Settings:    store,
		Catalog:     store,
		Notifier:    printer,
		Navigator:   printer,
		Decode:      acl.DecodeError,
		ListingPath: cfg.Editor.ListingPath,
		Logger:      logger,
	})

	if err := editor.Load(cmd.Context()); err != nil {
		return nil, err
	}

	return editor, nil
}
