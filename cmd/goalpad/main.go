package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/akyairhashvil/goalpad/internal/config"
	"github.com/akyairhashvil/goalpad/internal/goals"
	"github.com/akyairhashvil/goalpad/internal/tui"
	"github.com/akyairhashvil/goalpad/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("goalpad needs an interactive terminal")

type app struct {
	Theme      string
	IDs        string
	ReportsDir string
	LogFile    string
	NoMouse    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          config.AppName,
		Short:        "Keep a list of goals in your terminal",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(a)
		},
	}

	cmd.PersistentFlags().StringVar(&a.Theme, "theme", envOr(config.EnvTheme, config.DefaultTheme), "Color theme ("+strings.Join(tui.ThemeNames(), "|")+")")
	cmd.PersistentFlags().StringVar(&a.IDs, "ids", envOr(config.EnvIDs, config.IDSchemeUUID), "Goal id scheme (uuid|counter)")
	cmd.PersistentFlags().StringVar(&a.ReportsDir, "reports-dir", envOr(config.EnvReportsDir, util.ReportsDir(config.AppName)), "Directory for exported PDF reports")
	cmd.PersistentFlags().StringVar(&a.LogFile, "log-file", envOr(config.EnvLogFile, ""), "Write debug logs to this file")
	cmd.Flags().BoolVar(&a.NoMouse, "no-mouse", false, "Disable mouse support")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", config.AppName, tui.VersionLabel())
		},
	}
}

// prepare validates the configuration and builds the session's goal store.
func prepare(a *app) (*goals.Store, error) {
	if !tui.SetTheme(a.Theme) {
		return nil, fmt.Errorf("unknown theme %q (available: %s)", a.Theme, strings.Join(tui.ThemeNames(), ", "))
	}
	newID, err := goals.IDFuncFor(a.IDs)
	if err != nil {
		return nil, err
	}
	return goals.NewStore(goals.WithIDFunc(newID)), nil
}

func runTUI(a *app) error {
	store, err := prepare(a)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}
	logs, err := setupLogging(a.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logs.Close()

	util.Logf("starting %s %s", config.AppName, tui.VersionLabel())
	return tui.Run(store, tui.Options{
		ReportsDir: a.ReportsDir,
		Mouse:      !a.NoMouse,
	})
}

// setupLogging points the standard logger at path, or discards logs when
// path is empty; stdout belongs to the TUI.
func setupLogging(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	return tea.LogToFile(path, config.AppName)
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
