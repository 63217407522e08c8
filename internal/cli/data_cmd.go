package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexvidal/xptrack/internal/importer"
)

func newDataCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Export, import and reset the stored data",
	}

	cmd.AddCommand(
		newDataExportCmd(a),
		newDataImportCmd(a),
		newDataResetCmd(a),
	)

	return cmd
}

func newDataExportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "export FILE",
		Short: "Write all collections to a JSON backup",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backup := a.State.ExportBackup()
			data, err := importer.MarshalBackup(&backup)
			if err != nil {
				return err
			}
			if err := os.WriteFile(args[0], data, 0o644); err != nil {
				return fmt.Errorf("writing backup: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.T("data.exported", map[string]any{"path": args[0]}))
			return nil
		},
	}
}

func newDataImportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace all collections from a JSON backup",
		RunE: func(cmd *cobra.Command, args []string) error {
			backup, err := importer.LoadBackup(args[0])
			if err != nil {
				return err
			}
			if err := a.State.ImportBackup(cmd.Context(), *backup); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.T("data.imported", map[string]any{
				"tasks":   len(backup.Tasks),
				"habits":  len(backup.Habits),
				"budgets": len(backup.Budgets),
				"notes":   len(backup.Notes),
			}))
			return nil
		},
		Args: cobra.ExactArgs(1),
	}
}

func newDataResetCmd(a *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "reset-demo",
		Short: "Discard everything and reinstate the demo data",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				return fmt.Errorf("this discards all data; re-run with --force")
			}
			if err := a.State.ResetToDemo(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.T("data.demo_reset"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm the reset")

	return cmd
}
