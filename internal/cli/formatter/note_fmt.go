package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/alexvidal/xptrack/internal/dateutil"
	"github.com/alexvidal/xptrack/internal/domain"
	"github.com/alexvidal/xptrack/internal/i18n"
)

// FormatNoteList renders notes as rows with their relative update time and
// tags. The caller passes the notes already searched and sorted.
func FormatNoteList(notes []domain.Note, now time.Time, tr *i18n.Bundle) string {
	if len(notes) == 0 {
		return Dim(tr.T("notes.empty"))
	}

	var b strings.Builder
	for _, n := range notes {
		line := fmt.Sprintf("%s  %s",
			StyleFg.Render(PadRight(n.Title, 34)),
			UpdatedStamp(n.UpdatedAt, now),
		)
		if tags := TagList(n.Tags); tags != "" {
			line += "  " + tags
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderMarkdown renders a note body as styled terminal markdown. On any
// renderer failure the raw markdown is returned so the note is never lost.
func RenderMarkdown(body string, width int) string {
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return body
	}
	out, err := renderer.Render(body)
	if err != nil {
		return body
	}
	return strings.TrimRight(out, "\n")
}

// FormatNoteDetail renders one note: header, rendered markdown body, tags.
func FormatNoteDetail(n domain.Note, now time.Time, width int, tr *i18n.Bundle) string {
	var b strings.Builder
	b.WriteString(Header(n.Title) + "\n")
	b.WriteString(Dim(tr.T("notes.updated_at", map[string]any{
		"when": dateutil.RelativeTime(time.UnixMilli(n.UpdatedAt), now),
	})) + "\n\n")
	b.WriteString(RenderMarkdown(n.BodyMarkdown, width))
	if tags := TagList(n.Tags); tags != "" {
		b.WriteString("\n\n" + tags)
	}
	return b.String()
}
