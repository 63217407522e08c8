package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexvidal/xptrack/internal/app"
	"github.com/alexvidal/xptrack/internal/cli/formatter"
	"github.com/alexvidal/xptrack/internal/dateutil"
	"github.com/alexvidal/xptrack/internal/domain"
	"github.com/alexvidal/xptrack/internal/view"
)

func newTaskCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		newTaskAddCmd(a),
		newTaskListCmd(a),
		newTaskShowCmd(a),
		newTaskUpdateCmd(a),
		newTaskToggleCmd(a),
		newTaskSubtaskCmd(a),
		newTaskMoveCmd(a),
		newTaskRemoveCmd(a),
		newTaskUndoCmd(a),
	)

	return cmd
}

func taskInputFlags(cmd *cobra.Command, in *taskFlagValues) {
	cmd.Flags().StringVar(&in.title, "title", "", "Task title")
	cmd.Flags().StringVar(&in.description, "desc", "", "Task description")
	cmd.Flags().StringVar(&in.due, "due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.priority, "priority", "", "Priority (low|medium|high)")
	cmd.Flags().StringVar(&in.tags, "tags", "", "Comma-separated tags")
	cmd.Flags().StringArrayVar(&in.subtasks, "subtask", nil, "Subtask text (repeatable)")
}

type taskFlagValues struct {
	title       string
	description string
	due         string
	priority    string
	tags        string
	subtasks    []string
}

func (f taskFlagValues) validateDue() error {
	if f.due == "" {
		return nil
	}
	if _, err := time.Parse(dateutil.LayoutKey, f.due); err != nil {
		return fmt.Errorf("invalid due date %q: %w", f.due, err)
	}
	return nil
}

func newTaskAddCmd(a *App) *cobra.Command {
	var in taskFlagValues

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new task",
		RunE: func(cmd *cobra.Command, args []string) error {
			if promptForInput(cmd, a, "title") {
				vals := taskFormValues{
					Title:       in.title,
					Description: in.description,
					Due:         in.due,
					Priority:    in.priority,
					Tags:        in.tags,
					Subtasks:    strings.Join(in.subtasks, "\n"),
				}
				done, err := runForm(taskForm(&SharedState{App: a}, &vals))
				if err != nil || !done {
					return err
				}
				in.title = vals.Title
				in.description = vals.Description
				in.due = vals.Due
				in.priority = vals.Priority
				in.tags = vals.Tags
				in.subtasks = splitLines(vals.Subtasks)
			}
			if err := in.validateDue(); err != nil {
				return err
			}
			task, err := a.State.CreateTask(cmd.Context(), app.TaskInput{
				Title:       in.title,
				Description: in.description,
				DueDate:     in.due,
				Priority:    domain.Priority(in.priority),
				Tags:        in.tags,
				Subtasks:    in.subtasks,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.T("tasks.created", map[string]any{"title": task.Title}))
			return nil
		},
	}

	taskInputFlags(cmd, &in)

	return cmd
}

// filterFlag constrains --filter to the known set at parse time.
type filterFlag struct {
	filter domain.TaskFilter
}

var _ pflag.Value = (*filterFlag)(nil)

func (f *filterFlag) String() string { return string(f.filter) }
func (f *filterFlag) Type() string   { return "filter" }

func (f *filterFlag) Set(s string) error {
	if !domain.ValidTaskFilters[s] {
		return fmt.Errorf("unknown filter %q (all|today|high|completed)", s)
	}
	f.filter = domain.TaskFilter(s)
	return nil
}

func newTaskListCmd(a *App) *cobra.Command {
	filter := &filterFlag{filter: domain.FilterAll}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks := view.TaskList(a.State.Tasks(), filter.filter, a.Today())
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskList(tasks, a.Today(), a.Bundle()))
			return nil
		},
	}

	cmd.Flags().Var(filter, "filter", "Filter (all|today|high|completed)")

	return cmd
}

func newTaskShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show REF",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := resolveTaskID(a, args[0])
			if err != nil {
				return err
			}
			task, err := a.State.FindTask(taskID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTaskDetail(task, a.Today(), a.Bundle()))
			return nil
		},
	}
}

func newTaskUpdateCmd(a *App) *cobra.Command {
	var in taskFlagValues

	cmd := &cobra.Command{
		Use:   "update REF",
		Short: "Update a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := resolveTaskID(a, args[0])
			if err != nil {
				return err
			}
			task, err := a.State.FindTask(taskID)
			if err != nil {
				return err
			}
			if err := in.validateDue(); err != nil {
				return err
			}

			// Unchanged flags keep the current values.
			input := app.TaskInput{
				Title:       task.Title,
				Description: task.Description,
				DueDate:     task.DueDate,
				Priority:    task.Priority,
				Tags:        joinTags(task.Tags),
				Subtasks:    subtaskLines(task.Subtasks),
			}
			if cmd.Flags().Changed("title") {
				input.Title = in.title
			}
			if cmd.Flags().Changed("desc") {
				input.Description = in.description
			}
			if cmd.Flags().Changed("due") {
				input.DueDate = in.due
			}
			if cmd.Flags().Changed("priority") {
				input.Priority = domain.Priority(in.priority)
			}
			if cmd.Flags().Changed("tags") {
				input.Tags = in.tags
			}
			if cmd.Flags().Changed("subtask") {
				input.Subtasks = in.subtasks
			}

			if err := a.State.UpdateTask(cmd.Context(), taskID, input); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.T("tasks.updated", map[string]any{"title": input.Title}))
			return nil
		},
	}

	taskInputFlags(cmd, &in)

	return cmd
}

func newTaskToggleCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle REF",
		Short: "Toggle task completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := resolveTaskID(a, args[0])
			if err != nil {
				return err
			}
			a.State.ToggleTask(cmd.Context(), taskID)
			task, err := a.State.FindTask(taskID)
			if err != nil {
				return err
			}
			if task.Done {
				fmt.Fprintln(cmd.OutOrStdout(), a.T("tasks.completed"))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), a.T("tasks.reopened"))
			}
			return nil
		},
	}
}

func newTaskSubtaskCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "subtask REF INDEX",
		Short: "Toggle a subtask by its 1-based position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := resolveTaskID(a, args[0])
			if err != nil {
				return err
			}
			task, err := a.State.FindTask(taskID)
			if err != nil {
				return err
			}
			var index int
			if _, err := fmt.Sscanf(args[1], "%d", &index); err != nil || index < 1 || index > len(task.Subtasks) {
				return fmt.Errorf("invalid subtask position %q (task has %d)", args[1], len(task.Subtasks))
			}
			a.State.ToggleSubtask(cmd.Context(), taskID, task.Subtasks[index-1].ID)
			return nil
		},
	}
}

func newTaskMoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move REF up|down",
		Short: "Move a task in the manual order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := resolveTaskID(a, args[0])
			if err != nil {
				return err
			}
			switch args[1] {
			case "up":
				a.State.MoveTask(cmd.Context(), taskID, -1)
			case "down":
				a.State.MoveTask(cmd.Context(), taskID, 1)
			default:
				return fmt.Errorf("direction must be up or down, got %q", args[1])
			}
			return nil
		},
	}
}

func newTaskRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove REF",
		Short: "Delete a task (undoable for a few seconds)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taskID, err := resolveTaskID(a, args[0])
			if err != nil {
				return err
			}
			a.State.DeleteTask(cmd.Context(), taskID)
			fmt.Fprintln(cmd.OutOrStdout(), a.T("tasks.deleted"))
			return nil
		},
	}
}

func newTaskUndoCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Restore the most recently deleted task",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.State.Undo(cmd.Context()) {
				return fmt.Errorf("nothing to undo")
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.T("tasks.restored"))
			return nil
		},
	}
}

func joinTags(tags []string) string {
	out := ""
	for i, tag := range tags {
		if i > 0 {
			out += ", "
		}
		out += tag
	}
	return out
}

func subtaskLines(subtasks []domain.Subtask) []string {
	lines := make([]string, len(subtasks))
	for i, s := range subtasks {
		lines[i] = s.Text
	}
	return lines
}
