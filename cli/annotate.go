package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/dylan/commitlabels/labels"
	"github.com/dylan/commitlabels/logging"
	"github.com/dylan/commitlabels/page"
	"github.com/dylan/commitlabels/system"
	"github.com/spf13/cobra"
)

var (
	annotateOutput string
	annotateForce  bool
	annotateTheme  string
)

func init() {
	rootCmd.AddCommand(annotateCmd)
	annotateCmd.Flags().StringVarP(&annotateOutput, "output", "o", "", "write the annotated page here (default: stdout)")
	annotateCmd.Flags().BoolVar(&annotateForce, "force", false, "annotate even when the page is not a commit page")
	annotateCmd.Flags().StringVar(&annotateTheme, "system-theme", "", "OS appearance for auto color mode: light or dark (default: detect)")
}

var annotateCmd = &cobra.Command{
	Use:   "annotate <file|->",
	Short: "Label the commits of a saved HTML page",
	Long: `Insert commit labels into a saved GitHub commits page.

The page's data-color-mode, data-light-theme and data-dark-theme attributes
pick the label colors. Running annotate on its own output changes nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(true)
		if err != nil {
			return err
		}
		defer e.close()
		log := logging.Component("annotate")

		dark, err := systemDark()
		if err != nil {
			return err
		}
		p, err := readPage(args[0], cmd.InOrStdin())
		if err != nil {
			return err
		}

		if p.IsCommitPage() || annotateForce {
			cfg, err := labels.Load(e.kv)
			if err != nil {
				return err
			}
			stats, theme, err := page.Annotate(cmd.Context(), p, cfg, dark)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "labeled %d of %d commits (%s theme)\n", stats.Labeled, stats.Discovered, theme)
		} else {
			log.Info().Str("url", p.URL()).Msg("not a commit page, leaving it unchanged")
		}

		out := cmd.OutOrStdout()
		if annotateOutput != "" {
			f, err := os.Create(annotateOutput)
			if err != nil {
				return fmt.Errorf("creating output: %w", err)
			}
			defer f.Close()
			out = f
		}
		return p.Render(out)
	},
}

func readPage(name string, stdin io.Reader) (*page.Page, error) {
	if name == "-" {
		return page.Parse(stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	defer f.Close()
	return page.Parse(f)
}

func systemDark() (bool, error) {
	switch annotateTheme {
	case "":
		return system.New().IsDark(), nil
	case labels.ModeDark:
		return true, nil
	case labels.ModeLight:
		return false, nil
	}
	return false, fmt.Errorf("--system-theme must be light or dark, got %q", annotateTheme)
}
