package cmd

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	config "todo-list.com/todo-list/internal/configs"
	"todo-list.com/todo-list/internal/tasklist"
)

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "Task list for today, this week and beyond",
	Long: `todo keeps a list of tasks behind a small REST API.

Run "todo serve" to start the API, then "todo" (or "todo tui") to open the
interactive list, or script it with "todo tasks".`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd, args)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// operation failures were already shown to the user
		var opErr *tasklist.OperationError
		if !errors.As(err, &opErr) && !errors.Is(err, tasklist.ErrTitleRequired) {
			log.Error(err)
		}
		os.Exit(1)
	}
}

func loadConfig() config.Config {
	if err := godotenv.Load(); err != nil {
		log.Debug(".env file not found, using environment variables")
	}
	return config.Load()
}
