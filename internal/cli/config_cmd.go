package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexvidal/xptrack/internal/i18n"
)

func newLangCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "lang [CODE]",
		Short: "Show or set the UI language (es|en)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), a.State.Language())
				return nil
			}
			lang := strings.ToLower(args[0])
			if !i18n.IsSupported(lang) {
				return fmt.Errorf("unsupported language %q (supported: %s)",
					args[0], strings.Join(i18n.Supported, ", "))
			}
			if err := a.State.SetLanguage(cmd.Context(), lang); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.State.Language())
			return nil
		},
	}
}

func newThemeCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "theme",
		Short: "Toggle between light and dark theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			theme := a.State.ToggleTheme(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), string(theme))
			return nil
		},
	}
}
