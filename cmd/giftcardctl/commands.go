package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/truongteam/medusa-admin/internal/app"
	"github.com/truongteam/medusa-admin/internal/domain"
)

var (
	errNothingToChange = errors.New("nothing to change: pass at least one field flag")
	errNotConfirmed    = errors.New("delete not confirmed")
	errNeedsYes        = errors.New("refusing to delete without --yes when stdin is not a terminal")
)

func newShowCmd(opts *rootOptions, s streams) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Print a gift card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			editor, err := openEditor(cmd, opts, s, args[0])
			if err != nil {
				return err
			}

			return printEditor(s.out, editor)
		},
	}
}

type editOptions struct {
	fields    map[domain.Field]*string
	typ       string
	clearType bool
	tags      []string
}

func newEditCmd(opts *rootOptions, s streams) *cobra.Command {
	eo := &editOptions{fields: make(map[domain.Field]*string, len(domain.Fields))}

	cmd := &cobra.Command{
		Use:   "edit ID",
		Short: "Change gift card details and save them",
		Example: `  giftcardctl edit prod_01 --title "Holiday card" --tags gift,seasonal
  giftcardctl edit prod_01 --clear-type`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := false
			for _, f := range domain.Fields {
				changed = changed || cmd.Flags().Changed(string(f))
			}

			for _, name := range []string{"type", "clear-type", "tags"} {
				changed = changed || cmd.Flags().Changed(name)
			}

			if !changed {
				return errNothingToChange
			}

			editor, err := openEditor(cmd, opts, s, args[0])
			if err != nil {
				return err
			}

			form := editor.Form()

			for _, f := range domain.Fields {
				if cmd.Flags().Changed(string(f)) {
					form.SetField(f, *eo.fields[f])
				}
			}

			switch {
			case eo.clearType:
				form.ClearClassification()
			case cmd.Flags().Changed("type"):
				form.SetClassification(eo.typ)
			}

			if cmd.Flags().Changed("tags") {
				form.SetTags(eo.tags)
			}

			return editor.Submit(cmd.Context())
		},
	}

	for _, f := range domain.Fields {
		eo.fields[f] = new(string)
		cmd.Flags().StringVar(eo.fields[f], string(f), "", "new "+string(f))
	}

	cmd.Flags().StringVar(&eo.typ, "type", "", "classification (product type) value")
	cmd.Flags().BoolVar(&eo.clearType, "clear-type", false, "remove the classification")
	cmd.Flags().StringSliceVar(&eo.tags, "tags", nil, "replace the tags (comma separated)")
	cmd.MarkFlagsMutuallyExclusive("type", "clear-type")

	return cmd
}

func newTogglePublishCmd(opts *rootOptions, s streams) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-publish ID",
		Short: "Publish a gift card, or unpublish it when it is published",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			editor, err := openEditor(cmd, opts, s, args[0])
			if err != nil {
				return err
			}

			return editor.TogglePublish(cmd.Context())
		},
	}
}

func newDeleteCmd(opts *rootOptions, s streams) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a gift card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				if err := confirm(s, args[0]); err != nil {
					return err
				}
			}

			editor, err := openEditor(cmd, opts, s, args[0])
			if err != nil {
				return err
			}

			return editor.Remove(cmd.Context())
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}

func confirm(s streams, id string) error {
	if s.interactive == nil || !s.interactive() {
		return errNeedsYes
	}

	_, _ = fmt.Fprintf(s.out, "Delete gift card %s? [y/N] ", id)

	answer, err := bufio.NewReader(s.in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return nil
	default:
		return errNotConfirmed
	}
}

func printEditor(w io.Writer, editor *app.Editor) error {
	snap := editor.Form().Snapshot()
	card := snap.Card

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	row := func(k, v string) { _, _ = fmt.Fprintf(tw, "%s:\t%s\n", k, v) }

	row("ID", card.ID)

	for _, f := range domain.Fields {
		row(strings.ToUpper(string(f[:1]))+string(f[1:]), text(snap.Fields[f]))
	}

	typ := "-"
	if snap.Classification != nil {
		typ = snap.Classification.Label
	}

	row("Type", typ)
	row("Tags", orDash(strings.Join(snap.Tags, ", ")))

	status := string(card.Status)
	if p, ok := card.Status.Present(); ok {
		status = p.Label
	}

	row("Status", status)
	row("Action", domain.ToggleActionLabel(card.Status))

	den := editor.Denominations()
	row("Currency", orDash(den.DefaultCurrency))

	for _, d := range den.Denominations {
		prices := make([]string, 0, len(d.Prices))
		for _, p := range d.Prices {
			prices = append(prices, fmt.Sprintf("%d %s", p.Amount, strings.ToUpper(p.CurrencyCode)))
		}

		row("Denomination "+d.Title, strings.Join(prices, ", "))
	}

	if opts := editor.ClassificationOptions(); len(opts) > 0 {
		row("Known types", strings.Join(opts, ", "))
	}

	return tw.Flush()
}

func text(v *string) string {
	if v == nil {
		return "-"
	}

	return orDash(*v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}

	return s
}
