package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexvidal/xptrack/internal/app"
	"github.com/alexvidal/xptrack/internal/cli/formatter"
	"github.com/alexvidal/xptrack/internal/domain"
	"github.com/alexvidal/xptrack/internal/view"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// notesView lists notes sorted by recency, with incremental search.
type notesView struct {
	state  *SharedState
	cursor int

	searching bool
	search    textinput.Model
}

func newNotesView(state *SharedState) *notesView {
	ti := textinput.New()
	ti.Prompt = formatter.StyleYellow.Render("/ ")
	ti.CharLimit = 64
	return &notesView{state: state, search: ti}
}

func (v *notesView) ID() ViewID    { return ViewNotes }
func (v *notesView) Title() string { return v.state.T("notes.title") }

// capturesInput routes all keys here while the search prompt is open.
func (v *notesView) capturesInput() bool { return v.searching }

func (v *notesView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "→")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "🔍")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "+")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "✎")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "✗")),
	}
}

func (v *notesView) Init() tea.Cmd { return nil }

func (v *notesView) visibleNotes() []domain.Note {
	return view.Notes(v.state.App.State.Notes(), v.search.Value())
}

func (v *notesView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		if n := len(v.visibleNotes()); v.cursor >= n && n > 0 {
			v.cursor = n - 1
		}
		return v, nil

	case tea.KeyMsg:
		if v.searching {
			return v.updateSearch(msg)
		}
		return v.updateNormal(msg)
	}
	return v, nil
}

func (v *notesView) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		v.searching = false
		v.search.SetValue("")
		v.search.Blur()
		v.cursor = 0
		return v, nil
	case tea.KeyEnter:
		v.searching = false
		v.search.Blur()
		return v, nil
	}

	var cmd tea.Cmd
	v.search, cmd = v.search.Update(msg)
	v.cursor = 0
	return v, cmd
}

func (v *notesView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	st := v.state.App.State
	visible := v.visibleNotes()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}

	case "down", "j":
		if v.cursor < len(visible)-1 {
			v.cursor++
		}

	case "/":
		v.searching = true
		v.search.SetValue("")
		v.cursor = 0
		return v, v.search.Focus()

	case "enter":
		if v.cursor < len(visible) {
			return v, pushView(newNoteDetailView(v.state, visible[v.cursor].ID))
		}

	case "a":
		vals := &noteFormValues{}
		return v, startFormCmd(v.state, v.Title(), noteForm(v.state, vals), func() tea.Cmd {
			_, err := st.CreateNote(ctx, app.NoteInput{
				Title:        vals.Title,
				BodyMarkdown: vals.Body,
				Tags:         vals.Tags,
			})
			if err != nil {
				return toast(formatter.StyleRed.Render(err.Error()))
			}
			return toast(v.state.T("notes.created", map[string]any{"title": vals.Title}))
		})

	case "e":
		if v.cursor >= len(visible) {
			break
		}
		n := visible[v.cursor]
		vals := &noteFormValues{
			Title: n.Title,
			Body:  n.BodyMarkdown,
			Tags:  strings.Join(n.Tags, ", "),
		}
		return v, startFormCmd(v.state, v.Title(), noteForm(v.state, vals), func() tea.Cmd {
			err := st.UpdateNote(ctx, n.ID, app.NoteInput{
				Title:        vals.Title,
				BodyMarkdown: vals.Body,
				Tags:         vals.Tags,
			})
			if err != nil {
				return toast(formatter.StyleRed.Render(err.Error()))
			}
			return toast(v.state.T("notes.updated"))
		})

	case "d":
		if v.cursor < len(visible) {
			st.DeleteNote(ctx, visible[v.cursor].ID)
			return v, tea.Batch(refreshViews(), toast(v.state.T("notes.deleted")))
		}
	}

	return v, nil
}

func (v *notesView) View() string {
	visible := v.visibleNotes()
	tr := v.state.Bundle()
	now := v.state.App.State.Now()

	var b strings.Builder
	b.WriteString("\n")

	if v.searching {
		b.WriteString("  " + v.search.View() + "\n\n")
	}

	if len(visible) == 0 {
		if query := v.search.Value(); query != "" {
			b.WriteString("  " + formatter.Dim(tr.T("notes.no_results", map[string]any{"query": query})) + "\n")
		} else {
			b.WriteString("  " + formatter.Dim(tr.T("notes.empty")) + "\n")
		}
		return b.String()
	}

	for i, n := range visible {
		cursor := "  "
		titleStyle := formatter.StyleFg
		if i == v.cursor {
			cursor = formatter.StyleGreen.Render("▸ ")
			titleStyle = formatter.StyleBold
		}

		b.WriteString(fmt.Sprintf("%s%s  %s  %s\n",
			cursor,
			titleStyle.Render(formatter.PadRight(n.Title, 34)),
			formatter.UpdatedStamp(n.UpdatedAt, now),
			formatter.TagList(n.Tags),
		))
	}

	return b.String()
}

// noteDetailView renders one note's markdown body in a scrollable viewport.
type noteDetailView struct {
	state  *SharedState
	noteID string
	vp     viewport.Model
}

func newNoteDetailView(state *SharedState, noteID string) *noteDetailView {
	return &noteDetailView{state: state, noteID: noteID, vp: viewport.New(0, 0)}
}

func (v *noteDetailView) ID() ViewID { return ViewNoteDetail }

func (v *noteDetailView) Title() string {
	if n, ok := v.state.App.State.FindNote(v.noteID); ok {
		return n.Title
	}
	return v.state.T("notes.title")
}

func (v *noteDetailView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "✎")),
	}
}

func (v *noteDetailView) Init() tea.Cmd { return nil }

func (v *noteDetailView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	if keyMsg.String() != "e" {
		// Scroll keys go to the viewport.
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}

	n, found := v.state.App.State.FindNote(v.noteID)
	if !found {
		return v, nil
	}
	vals := &noteFormValues{
		Title: n.Title,
		Body:  n.BodyMarkdown,
		Tags:  strings.Join(n.Tags, ", "),
	}
	return v, startFormCmd(v.state, v.Title(), noteForm(v.state, vals), func() tea.Cmd {
		err := v.state.App.State.UpdateNote(context.Background(), n.ID, app.NoteInput{
			Title:        vals.Title,
			BodyMarkdown: vals.Body,
			Tags:         vals.Tags,
		})
		if err != nil {
			return toast(formatter.StyleRed.Render(err.Error()))
		}
		return toast(v.state.T("notes.updated"))
	})
}

func (v *noteDetailView) View() string {
	n, ok := v.state.App.State.FindNote(v.noteID)
	if !ok {
		return "\n  " + formatter.Dim(v.state.T("notes.empty")) + "\n"
	}

	width := v.state.Width - 4
	if width < 20 || width > 100 {
		width = 80
	}
	v.vp.Width = width
	v.vp.Height = v.state.ContentHeight()
	v.vp.SetContent(formatter.FormatNoteDetail(n, v.state.App.State.Now(), width, v.state.Bundle()))
	return "\n" + v.vp.View()
}
