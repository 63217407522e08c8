package formatter

import (
	"fmt"
	"strings"

	"github.com/alexvidal/xptrack/internal/domain"
	"github.com/alexvidal/xptrack/internal/i18n"
)

// FormatTaskList renders tasks as aligned rows: check mark, title,
// priority badge, due date and tags. The caller passes the tasks already
// filtered and sorted for display.
func FormatTaskList(tasks []domain.Task, today string, tr *i18n.Bundle) string {
	if len(tasks) == 0 {
		return Dim(tr.T("tasks.empty"))
	}

	var b strings.Builder
	for _, t := range tasks {
		titleStyle := StyleFg
		if t.Done {
			titleStyle = StyleDim
		}
		line := fmt.Sprintf("%s %s  %s  %s",
			CheckMark(t.Done),
			titleStyle.Render(PadRight(t.Title, 34)),
			PriorityBadge(t.Priority),
			DueDateStyled(t.DueDate, today),
		)
		if tags := TagList(t.Tags); tags != "" {
			line += "  " + tags
		}
		b.WriteString(line + "\n")
		if done, total := subtaskProgress(t); total > 0 {
			b.WriteString("  " + Dim(tr.T("tasks.subtasks", map[string]any{"done": done, "total": total})) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatTaskDetail renders one task with its description and subtasks.
func FormatTaskDetail(t domain.Task, today string, tr *i18n.Bundle) string {
	var b strings.Builder
	b.WriteString(Header(t.Title) + "\n")
	b.WriteString(fmt.Sprintf("%s  %s  %s\n",
		CheckMark(t.Done), PriorityBadge(t.Priority), DueDateStyled(t.DueDate, today)))
	if t.Description != "" {
		b.WriteString("\n" + StyleFg.Render(t.Description) + "\n")
	}
	if len(t.Subtasks) > 0 {
		b.WriteString("\n")
		for _, s := range t.Subtasks {
			b.WriteString(fmt.Sprintf("  %s %s\n", CheckMark(s.Done), s.Text))
		}
	}
	if tags := TagList(t.Tags); tags != "" {
		b.WriteString("\n" + tags + "\n")
	}
	b.WriteString("\n" + TruncID(t.ID))
	return b.String()
}

func subtaskProgress(t domain.Task) (done, total int) {
	for _, s := range t.Subtasks {
		if s.Done {
			done++
		}
	}
	return done, len(t.Subtasks)
}
