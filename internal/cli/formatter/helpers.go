package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexvidal/xptrack/internal/dateutil"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		inner := StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content
		return boxStyle.Render(inner)
	}
	return boxStyle.Render(content)
}

// DueDateStyled renders a date key with urgency coloring relative to today:
// overdue and today in red, tomorrow in yellow, anything later plain.
func DueDateStyled(dueKey, todayKey string) string {
	if dueKey == "" {
		return StyleDim.Render("—")
	}
	switch {
	case dueKey < todayKey:
		return StyleRed.Render(dueKey + " (overdue)")
	case dueKey == todayKey:
		return StyleRed.Render("today")
	default:
		due, err := time.Parse(dateutil.LayoutKey, dueKey)
		today, err2 := time.Parse(dateutil.LayoutKey, todayKey)
		if err == nil && err2 == nil && due.Sub(today) <= 24*time.Hour {
			return StyleYellow.Render("tomorrow")
		}
		return StyleFg.Render(dueKey)
	}
}

// UpdatedStamp renders a millisecond note timestamp relative to now.
func UpdatedStamp(unixMilli int64, now time.Time) string {
	return StyleDim.Render(dateutil.RelativeTime(time.UnixMilli(unixMilli), now))
}

// CheckMark renders a completion cell.
func CheckMark(done bool) string {
	if done {
		return StyleGreen.Render("✔")
	}
	return StyleDim.Render("○")
}

// Money renders an amount with its currency code.
func Money(amount float64, currency string) string {
	return fmt.Sprintf("%.2f %s", amount, currency)
}

// TagList renders tags as dimmed #hashtags, or empty when there are none.
func TagList(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, len(tags))
	for i, tag := range tags {
		parts[i] = "#" + tag
	}
	return StyleDim.Render(strings.Join(parts, " "))
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// PadRight pads a string to a minimum visible width, truncating if needed.
func PadRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(runes))
}
