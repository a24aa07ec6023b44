package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/sandeepkv93/shoplist/internal/config"
	"github.com/sandeepkv93/shoplist/internal/update"
	"github.com/spf13/cobra"
)

type App struct {
	Config config.RuntimeConfig
}

func NewRootCmd() *cobra.Command {
	app := &App{Config: config.RuntimeConfigFromEnv(config.DefaultRuntimeConfig())}

	cmd := &cobra.Command{
		Use:           "shoplist",
		Short:         "In-memory shopping list for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Start the interactive list
  shoplist

  # Print the list without the UI
  shoplist print --hide-completed --format markdown

  # Start from your own list
  shoplist --seed weekly.yaml
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isTerminal(cmd.OutOrStdout()) {
				return runPrint(cmd, app, printOptions{Format: formatText, Title: defaultTitle})
			}
			return runTUI(cmd, app)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&app.Config.Backend, "backend", app.Config.Backend, "item backend: memory or sqlite (in-memory database)")
	flags.StringVar(&app.Config.IDScheme, "ids", app.Config.IDScheme, "id scheme: uuid or seq")
	flags.StringVar(&app.Config.SeedFile, "seed", app.Config.SeedFile, "YAML file with the initial items")
	flags.StringVar(&app.Config.LogFile, "log-file", app.Config.LogFile, "write JSON logs to this file")
	flags.StringVar(&app.Config.LogLevel, "log-level", app.Config.LogLevel, "log level: debug, info, warn, error")
	flags.BoolVar(&app.Config.TrimInput, "trim", app.Config.TrimInput, "trim whitespace from names and search terms")
	flags.BoolVar(&app.Config.RejectBlankNames, "reject-blank", app.Config.RejectBlankNames, "reject empty item names")

	cmd.AddCommand(newPrintCmd(app))
	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	ctx := cmd.Context()
	s, err := openSession(ctx, app.Config)
	if err != nil {
		return err
	}
	defer s.Close()

	program := tea.NewProgram(update.NewModel(ctx, s.Dispatcher, s.Screen), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
