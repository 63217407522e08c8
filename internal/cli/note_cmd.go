package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexvidal/xptrack/internal/app"
	"github.com/alexvidal/xptrack/internal/cli/formatter"
	"github.com/alexvidal/xptrack/internal/view"
)

func newNoteCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage markdown notes",
	}

	cmd.AddCommand(
		newNoteAddCmd(a),
		newNoteListCmd(a),
		newNoteShowCmd(a),
		newNoteUpdateCmd(a),
		newNoteRemoveCmd(a),
	)

	return cmd
}

// noteBody resolves the note body from either --body or --file.
func noteBody(body, file string) (string, error) {
	if file == "" {
		return body, nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("reading note body: %w", err)
	}
	return string(data), nil
}

func newNoteAddCmd(a *App) *cobra.Command {
	var title, body, file, tags string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new note",
		RunE: func(cmd *cobra.Command, args []string) error {
			markdown, err := noteBody(body, file)
			if err != nil {
				return err
			}
			if promptForInput(cmd, a, "title") {
				vals := noteFormValues{Title: title, Body: markdown, Tags: tags}
				done, err := runForm(noteForm(&SharedState{App: a}, &vals))
				if err != nil || !done {
					return err
				}
				title, markdown, tags = vals.Title, vals.Body, vals.Tags
			}
			note, err := a.State.CreateNote(cmd.Context(), app.NoteInput{
				Title: title, BodyMarkdown: markdown, Tags: tags,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.T("notes.created", map[string]any{"title": note.Title}))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Note title")
	cmd.Flags().StringVar(&body, "body", "", "Markdown body")
	cmd.Flags().StringVar(&file, "file", "", "Read the body from a markdown file")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags")

	return cmd
}

func newNoteListCmd(a *App) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, most recently updated first",
		RunE: func(cmd *cobra.Command, args []string) error {
			notes := view.Notes(a.State.Notes(), query)
			if len(notes) == 0 && query != "" {
				fmt.Fprintln(cmd.OutOrStdout(), a.T("notes.no_results", map[string]any{"query": query}))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatNoteList(notes, a.State.Now(), a.Bundle()))
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "search", "", "Match against title, body and tags")

	return cmd
}

func newNoteShowCmd(a *App) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "show REF",
		Short: "Render a note as terminal markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noteID, err := resolveNoteID(a, args[0])
			if err != nil {
				return err
			}
			note, ok := a.State.FindNote(noteID)
			if !ok {
				return fmt.Errorf("note not found: %s", noteID)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatNoteDetail(note, a.State.Now(), width, a.Bundle()))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 80, "Render width")

	return cmd
}

func newNoteUpdateCmd(a *App) *cobra.Command {
	var title, body, file, tags string

	cmd := &cobra.Command{
		Use:   "update REF",
		Short: "Update a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noteID, err := resolveNoteID(a, args[0])
			if err != nil {
				return err
			}
			note, ok := a.State.FindNote(noteID)
			if !ok {
				return fmt.Errorf("note not found: %s", noteID)
			}

			input := app.NoteInput{
				Title:        note.Title,
				BodyMarkdown: note.BodyMarkdown,
				Tags:         strings.Join(note.Tags, ", "),
			}
			if cmd.Flags().Changed("title") {
				input.Title = title
			}
			if cmd.Flags().Changed("body") || cmd.Flags().Changed("file") {
				markdown, err := noteBody(body, file)
				if err != nil {
					return err
				}
				input.BodyMarkdown = markdown
			}
			if cmd.Flags().Changed("tags") {
				input.Tags = tags
			}

			if err := a.State.UpdateNote(cmd.Context(), noteID, input); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.T("notes.updated"))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Note title")
	cmd.Flags().StringVar(&body, "body", "", "Markdown body")
	cmd.Flags().StringVar(&file, "file", "", "Read the body from a markdown file")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags")

	return cmd
}

func newNoteRemoveCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove REF",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			noteID, err := resolveNoteID(a, args[0])
			if err != nil {
				return err
			}
			a.State.DeleteNote(cmd.Context(), noteID)
			fmt.Fprintln(cmd.OutOrStdout(), a.T("notes.deleted"))
			return nil
		},
	}
}
