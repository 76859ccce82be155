package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/dylan/commitlabels/labels"
	"github.com/dylan/commitlabels/nvim"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	resetYes     bool
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configExportCmd, configImportCmd, configResetCmd, configEditCmd)
	configExportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	configResetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip the confirmation prompt")
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the label configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show settings and commit types",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(true)
		if err != nil {
			return err
		}
		defer e.close()

		cfg, err := labels.Load(e.kv)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
		cfgPath := e.cfgPath
		if cfgPath == "" {
			cfgPath = "(defaults)"
		}
		fmt.Fprintf(w, "Config:\t%s\n", cfgPath)
		fmt.Fprintf(w, "Store:\t%s\n", e.kv.Path())
		fmt.Fprintf(w, "Show scope:\t%t\n", cfg.ShowScope)
		fmt.Fprintf(w, "Remove prefix:\t%t\n", cfg.RemovePrefix)
		fmt.Fprintf(w, "Tooltips:\t%t\n", cfg.EnableTooltips)
		fmt.Fprintf(w, "Labels visible:\t%t\n", cfg.LabelsVisible)
		fmt.Fprintf(w, "Toggle button:\t%t\n", cfg.ShowFloatingButton)
		fmt.Fprintln(w)

		fmt.Fprintln(w, "TYPES\tEMOJI\tLABEL\tCOLOR\tDESCRIPTION")
		for _, g := range labels.NewRegistry(cfg.CommitTypes).Groups() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Join(g.Aliases, ", "), g.Style.Emoji, g.Style.Label, g.Style.Color, g.Style.Description)
		}
		return w.Flush()
	},
}

var configExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the configuration as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(true)
		if err != nil {
			return err
		}
		defer e.close()

		cfg, err := labels.Load(e.kv)
		if err != nil {
			return err
		}
		data, err := labels.Export(cfg)
		if err != nil {
			return err
		}
		data = append(data, '\n')

		if exportOutput == "" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
			return fmt.Errorf("writing export: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "exported to %s\n", exportOutput)
		return nil
	},
}

var configImportCmd = &cobra.Command{
	Use:   "import <file|->",
	Short: "Replace the configuration with JSON",
	Long:  "Replace the configuration with a JSON export. Invalid input leaves the stored configuration unchanged.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(true)
		if err != nil {
			return err
		}
		defer e.close()

		var data []byte
		if args[0] == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(args[0])
		}
		if err != nil {
			return fmt.Errorf("reading import: %w", err)
		}

		cfg, err := labels.ImportAndSave(e.kv, data)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d commit types\n", len(cfg.CommitTypes))
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(true)
		if err != nil {
			return err
		}
		defer e.close()

		if !resetYes {
			fmt.Fprint(cmd.OutOrStdout(), "Reset label configuration to defaults? [y/N] ")
			answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
				fmt.Fprintln(cmd.OutOrStdout(), "aborted")
				return nil
			}
		}

		if _, err := labels.Reset(e.kv); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "configuration reset to defaults")
		return nil
	},
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the configuration JSON in $EDITOR",
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(true)
		if err != nil {
			return err
		}
		defer e.close()

		cfg, err := labels.Load(e.kv)
		if err != nil {
			return err
		}
		before, err := labels.Export(cfg)
		if err != nil {
			return err
		}

		after, err := nvim.Edit(string(before), "commitlabels-*.json")
		if err != nil {
			return err
		}
		if strings.TrimSpace(after) == strings.TrimSpace(string(before)) {
			fmt.Fprintln(cmd.OutOrStdout(), "no changes")
			return nil
		}

		saved, err := labels.ImportAndSave(e.kv, []byte(after))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "saved %d commit types\n", len(saved.CommitTypes))
		return nil
	},
}
