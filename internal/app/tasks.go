package app

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/alexvidal/xptrack/internal/dateutil"
	"github.com/alexvidal/xptrack/internal/domain"
)

// TaskInput carries the user-editable fields of a task. Tags is a
// comma-separated string and Subtasks is one line per subtask, matching the
// form surfaces.
type TaskInput struct {
	Title       string
	Description string
	DueDate     string
	Priority    domain.Priority
	Tags        string
	Subtasks    []string
}

// CreateTask validates the input and appends a new task at the end of the
// manual order.
func (a *App) CreateTask(ctx context.Context, in TaskInput) (domain.Task, error) {
	task := domain.Task{
		ID:          a.newID(),
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		DueDate:     in.DueDate,
		Priority:    in.Priority,
		Tags:        domain.SplitTags(in.Tags),
		Subtasks:    a.buildSubtasks(in.Subtasks, nil),
		Order:       a.nextTaskOrder(),
	}
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	if err := task.Validate(); err != nil {
		return domain.Task{}, err
	}
	a.tasks = append(a.tasks, task)
	a.persistTasks(ctx)
	a.emit("task_create", map[string]any{"id": task.ID, "title": task.Title})
	return task, nil
}

// UpdateTask rewrites the editable fields of an existing task. Subtasks are
// reconciled by text: an unchanged line keeps its identity and done state,
// new lines start fresh. An unknown id is a silent no-op.
func (a *App) UpdateTask(ctx context.Context, taskID string, in TaskInput) error {
	idx := a.taskIndex(taskID)
	if idx < 0 {
		return nil
	}
	updated := a.tasks[idx]
	updated.Title = strings.TrimSpace(in.Title)
	updated.Description = strings.TrimSpace(in.Description)
	updated.DueDate = in.DueDate
	updated.Priority = in.Priority
	updated.Tags = domain.SplitTags(in.Tags)
	updated.Subtasks = a.buildSubtasks(in.Subtasks, a.tasks[idx].Subtasks)
	if err := updated.Validate(); err != nil {
		return err
	}
	a.tasks[idx] = updated
	a.persistTasks(ctx)
	a.emit("task_update", map[string]any{"id": updated.ID, "title": updated.Title})
	return nil
}

// ToggleTask flips completion. Marking a task done raises a celebration.
func (a *App) ToggleTask(ctx context.Context, taskID string) {
	idx := a.taskIndex(taskID)
	if idx < 0 {
		return
	}
	a.tasks[idx].Done = !a.tasks[idx].Done
	if a.tasks[idx].Done {
		a.tasks[idx].CompletedAt = a.now().UnixMilli()
	} else {
		a.tasks[idx].CompletedAt = 0
	}
	a.persistTasks(ctx)
	status := "pending"
	if a.tasks[idx].Done {
		status = "done"
	}
	a.emit("task_toggle", map[string]any{"id": taskID, "title": a.tasks[idx].Title, "status": status})
	if a.tasks[idx].Done {
		a.emit("celebration", map[string]any{"reason": "task_complete", "id": taskID})
	}
}

// ToggleSubtask flips one subtask's done state. Unknown ids are no-ops.
func (a *App) ToggleSubtask(ctx context.Context, taskID, subtaskID string) {
	idx := a.taskIndex(taskID)
	if idx < 0 {
		return
	}
	for i := range a.tasks[idx].Subtasks {
		if a.tasks[idx].Subtasks[i].ID == subtaskID {
			a.tasks[idx].Subtasks[i].Done = !a.tasks[idx].Subtasks[i].Done
			a.persistTasks(ctx)
			return
		}
	}
}

// DeleteTask removes a task and arms the undo slot so the deletion can be
// reverted within a few seconds.
func (a *App) DeleteTask(ctx context.Context, taskID string) {
	idx := a.taskIndex(taskID)
	if idx < 0 {
		return
	}
	removed := a.tasks[idx]
	a.tasks = append(a.tasks[:idx], a.tasks[idx+1:]...)
	a.armUndo(func(ctx context.Context) {
		a.tasks = slices.Insert(a.tasks, min(idx, len(a.tasks)), removed)
		a.persistTasks(ctx)
		a.emit("task_restore", map[string]any{"id": removed.ID, "title": removed.Title})
	})
	a.persistTasks(ctx)
	a.emit("task_delete", map[string]any{"id": removed.ID, "title": removed.Title})
}

// MoveTask shifts a task one position up (delta -1) or down (delta +1) in
// the manual order. Moves past either end are no-ops.
func (a *App) MoveTask(ctx context.Context, taskID string, delta int) {
	if delta != -1 && delta != 1 {
		return
	}
	ordered := make([]*domain.Task, 0, len(a.tasks))
	for i := range a.tasks {
		ordered = append(ordered, &a.tasks[i])
	}
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Order < ordered[j].Order })

	pos := -1
	for i, t := range ordered {
		if t.ID == taskID {
			pos = i
			break
		}
	}
	if pos < 0 {
		return
	}
	target := pos + delta
	if target < 0 || target >= len(ordered) {
		return
	}
	ordered[pos].Order, ordered[target].Order = ordered[target].Order, ordered[pos].Order
	a.persistTasks(ctx)
}

// DueTodayCount returns how many incomplete tasks are due today.
func (a *App) DueTodayCount() int {
	today := dateutil.DateKey(a.now())
	n := 0
	for _, t := range a.tasks {
		if !t.Done && t.DueToday(today) {
			n++
		}
	}
	return n
}

func (a *App) taskIndex(taskID string) int {
	for i := range a.tasks {
		if a.tasks[i].ID == taskID {
			return i
		}
	}
	return -1
}

func (a *App) nextTaskOrder() int {
	next := 0
	for _, t := range a.tasks {
		if t.Order >= next {
			next = t.Order + 1
		}
	}
	return next
}

// buildSubtasks turns form lines into subtasks, carrying over the identity
// and done state of previous subtasks. A line with identical text keeps its
// subtask outright; a reworded line keeps the identity of the subtask that
// previously occupied the same position, so editing the wording does not
// reset the done flag.
func (a *App) buildSubtasks(lines []string, previous []domain.Subtask) []domain.Subtask {
	matched := make([]bool, len(previous))
	prevByText := make(map[string]int, len(previous))
	for i, s := range previous {
		if _, taken := prevByText[s.Text]; !taken {
			prevByText[s.Text] = i
		}
	}

	subtasks := make([]domain.Subtask, 0, len(lines))
	var reworded []int
	for _, line := range lines {
		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		if i, ok := prevByText[text]; ok && !matched[i] {
			matched[i] = true
			subtasks = append(subtasks, previous[i])
			continue
		}
		reworded = append(reworded, len(subtasks))
		subtasks = append(subtasks, domain.Subtask{ID: a.newID(), Text: text})
	}

	for _, p := range reworded {
		if p < len(previous) && !matched[p] {
			subtasks[p].ID = previous[p].ID
			subtasks[p].Done = previous[p].Done
			matched[p] = true
		}
	}
	return subtasks
}

// Tasks returns a copy of the task collection.
func (a *App) Tasks() []domain.Task {
	out := make([]domain.Task, len(a.tasks))
	copy(out, a.tasks)
	return out
}

// FindTask looks a task up by id.
func (a *App) FindTask(taskID string) (domain.Task, error) {
	idx := a.taskIndex(taskID)
	if idx < 0 {
		return domain.Task{}, fmt.Errorf("task %q not found", taskID)
	}
	return a.tasks[idx], nil
}
