package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"todo-list.com/todo-list/internal/client"
	config "todo-list.com/todo-list/internal/configs"
	"todo-list.com/todo-list/internal/tasklist"
	"todo-list.com/todo-list/internal/tui"
)

var logFile string

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive task list",
	Long: `Open the interactive task list against the API at API_URL.

Keyboard shortcuts:
  a          - Add a task
  space/x    - Toggle the selected task
  e          - Edit the selected title (enter saves, esc reverts)
  d          - Delete the selected task
  ↑/k ↓/j    - Move the selection
  ←/h →/l    - Previous / next page
  home/end   - First / last page
  tab, 1/2/3 - Status filter (all, active, completed)
  t          - Cycle date range (today, week, month, all)
  r          - Refresh
  q/Ctrl+C   - Quit`,
	RunE: runTUI,
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	logger := config.NewLogger(f, cfg.LogLevel)

	api, err := client.New(cfg.APIURL, time.Duration(cfg.HTTPTimeoutSeconds)*time.Second)
	if err != nil {
		return err
	}

	toasts := tui.NewToastNotifier(16)
	controller := tasklist.NewController(api, toasts, cfg.DefaultDateQuery, tasklist.WithLogger(logger))

	logger.Info("starting tui", "api", cfg.APIURL, "page_size", cfg.PageSize)

	p := tea.NewProgram(tui.NewModel(controller, toasts.C(), cfg.PageSize), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

func init() {
	defaultLog := filepath.Join(os.TempDir(), "todo-tui.log")
	tuiCmd.Flags().StringVar(&logFile, "log-file", defaultLog, "where the TUI writes its logs")
	rootCmd.Flags().StringVar(&logFile, "log-file", defaultLog, "where the TUI writes its logs")
	rootCmd.AddCommand(tuiCmd)
}
