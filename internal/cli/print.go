package cli

import (
	"fmt"
	"io"

	"github.com/sandeepkv93/shoplist/internal/intent"
	"github.com/sandeepkv93/shoplist/internal/model"
	"github.com/sandeepkv93/shoplist/internal/views"
	"github.com/spf13/cobra"
)

const (
	formatText     = "text"
	formatMarkdown = "markdown"
	formatHTML     = "html"

	defaultTitle = "Shopping list"
)

type printOptions struct {
	Format        string
	Add           []string
	HideCompleted bool
	Search        string
	Title         string
}

func newPrintCmd(app *App) *cobra.Command {
	opts := printOptions{Format: formatText, Title: defaultTitle}
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Apply changes to the seed list and print the visible items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrint(cmd, app, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Format, "format", opts.Format, "output format: text, markdown or html")
	cmd.Flags().StringArrayVar(&opts.Add, "add", nil, "add an item before printing (repeatable)")
	cmd.Flags().BoolVar(&opts.HideCompleted, "hide-completed", false, "hide checked items")
	cmd.Flags().StringVar(&opts.Search, "search", "", "only show items whose name contains this text")
	cmd.Flags().StringVar(&opts.Title, "title", opts.Title, "heading for markdown output")
	return cmd
}

func runPrint(cmd *cobra.Command, app *App, opts printOptions) error {
	ctx := cmd.Context()
	s, err := openSession(ctx, app.Config)
	if err != nil {
		return err
	}
	defer s.Close()

	events := make([]intent.Event, 0, len(opts.Add)+2)
	for _, name := range opts.Add {
		events = append(events, intent.ItemAdded(name))
	}
	if opts.HideCompleted {
		events = append(events, intent.HideFilterToggled())
	}
	if opts.Search != "" {
		events = append(events, intent.SearchSubmitted(opts.Search))
	}
	for _, ev := range events {
		if err := s.Dispatcher.Dispatch(ctx, ev); err != nil {
			return err
		}
	}
	return writeList(cmd.OutOrStdout(), opts, s.Screen.Rows())
}

func writeList(w io.Writer, opts printOptions, rows []model.Item) error {
	var out string
	switch opts.Format {
	case formatText, "":
		out = views.RenderList(rows, views.ListOptions{Cursor: -1})
	case formatMarkdown:
		out = views.RenderMarkdown(views.Markdown(opts.Title, rows))
	case formatHTML:
		markup, err := views.RenderMarkup(rows)
		if err != nil {
			return fmt.Errorf("render markup: %w", err)
		}
		out = markup
	default:
		return fmt.Errorf("unknown format %q", opts.Format)
	}
	_, err := fmt.Fprintln(w, out)
	return err
}
