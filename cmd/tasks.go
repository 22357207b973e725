package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"todo-list.com/todo-list/cmd/output"
	"todo-list.com/todo-list/internal/client"
	config "todo-list.com/todo-list/internal/configs"
	"todo-list.com/todo-list/internal/constants"
	"todo-list.com/todo-list/internal/tasklist"
)

var (
	taskDate   string
	taskFilter string
	taskPage   int
	taskOutput string
)

var tasksCmd = &cobra.Command{
	Use:   "tasks",
	Short: "Manage tasks from the command line",
	Long: `List, add, rename, toggle and remove tasks without the TUI.

Examples:
  # This week's active tasks, second page
  todo tasks list --date week --filter active --page 2

  # Everything as JSON
  todo tasks list --date all -o json

  todo tasks add "Buy milk"
  todo tasks rename 3f2a... "Buy oat milk"
  todo tasks toggle 3f2a...
  todo tasks rm 3f2a...`,
}

var tasksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List one page of tasks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := output.ParseFormat(taskOutput)
		if err != nil {
			return err
		}
		filter := constants.TaskFilter(taskFilter)
		if !filter.IsValid() {
			return fmt.Errorf("invalid filter %q: must be one of: all, active, completed", taskFilter)
		}

		cfg, controller, printer, err := newTaskController()
		if err != nil {
			return err
		}

		col, err := controller.FetchTasks(cmd.Context(), controller.DateQuery())
		if err != nil {
			return err
		}

		view := tasklist.NewProjector(cfg.PageSize).Project(col.Tasks, filter, taskPage)
		if format != output.FormatText {
			return output.NewFormatter(format, os.Stdout).Print(output.NewTaskPage(col, filter, view))
		}

		printer.Header("%s: %d active, %d completed", col.DateQuery.Label(), col.ActiveCount, col.CompleteCount)
		if len(view.Tasks) == 0 {
			printer.Subtle("no %s tasks", filter)
			return nil
		}

		rows := make([][]string, len(view.Tasks))
		for i, task := range view.Tasks {
			status, title := "[ ]", task.Title
			if task.IsComplete() {
				status, title = "[x]", printer.Done(task.Title)
			}
			rows[i] = []string{task.ID, status, title, task.CreatedAt.Local().Format(time.DateTime)}
		}
		printer.Table([]string{"ID", "DONE", "TITLE", "CREATED"}, rows)
		printer.Subtle("page %d of %d", view.Page, view.TotalPages)
		return nil
	},
}

var tasksAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, controller, _, err := newTaskController()
		if err != nil {
			return err
		}
		_, err = controller.CreateTask(cmd.Context(), strings.Join(args, " "))
		return err
	},
}

var tasksRenameCmd = &cobra.Command{
	Use:   "rename <id> <title>",
	Short: "Rename a task",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, controller, _, err := newTaskController()
		if err != nil {
			return err
		}
		return controller.UpdateTitle(cmd.Context(), args[0], strings.Join(args[1:], " "))
	},
}

var tasksToggleCmd = &cobra.Command{
	Use:   "toggle <id>",
	Short: "Mark a task complete, or active again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, controller, _, err := newTaskController()
		if err != nil {
			return err
		}

		// the status to flip is read from the server, across all dates
		col, err := controller.FetchTasks(cmd.Context(), constants.DateAll)
		if err != nil {
			return err
		}
		for _, task := range col.Tasks {
			if task.ID == args[0] {
				return controller.ToggleStatus(cmd.Context(), task)
			}
		}
		return fmt.Errorf("task %s not found", args[0])
	},
}

var tasksRemoveCmd = &cobra.Command{
	Use:     "rm <id>",
	Aliases: []string{"delete"},
	Short:   "Delete a task",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, controller, _, err := newTaskController()
		if err != nil {
			return err
		}
		return controller.DeleteTask(cmd.Context(), args[0])
	},
}

func newTaskController() (config.Config, *tasklist.Controller, *output.Printer, error) {
	cfg := loadConfig()
	logger := config.NewLogger(os.Stderr, cfg.LogLevel)

	query := cfg.DefaultDateQuery
	if taskDate != "" {
		query = constants.DateQuery(taskDate)
		if !query.IsValid() {
			return cfg, nil, nil, fmt.Errorf("invalid date %q: must be one of: today, week, month, all", taskDate)
		}
	}

	api, err := client.New(cfg.APIURL, time.Duration(cfg.HTTPTimeoutSeconds)*time.Second)
	if err != nil {
		return cfg, nil, nil, err
	}

	printer := output.DefaultPrinter()
	controller := tasklist.NewController(api, printer, query, tasklist.WithLogger(logger))
	return cfg, controller, printer, nil
}

func init() {
	tasksCmd.PersistentFlags().StringVar(&taskDate, "date", "", "date range: today, week, month, all (default DEFAULT_DATE_QUERY)")
	tasksListCmd.Flags().StringVar(&taskFilter, "filter", string(constants.FilterAll), "status filter: all, active, completed")
	tasksListCmd.Flags().IntVar(&taskPage, "page", 1, "page to show")
	tasksListCmd.Flags().StringVarP(&taskOutput, "output", "o", "text", "output format: text, json, yaml")

	tasksCmd.AddCommand(tasksListCmd, tasksAddCmd, tasksRenameCmd, tasksToggleCmd, tasksRemoveCmd)
	rootCmd.AddCommand(tasksCmd)
}
