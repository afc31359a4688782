package cli

import (
	"fmt"

	"github.com/agentx-labs/welcome/internal/walkthrough"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var checkVerbose bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load built-in content and extensions and report problems",
	Long: `Build the walkthrough catalog the same way the editor does at startup and
report what was registered and which manifests were skipped.

A registration error (for example a task whose category does not exist)
fails the command.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "Print every registration as it happens")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	opts := optionsFromConfig()
	if checkVerbose {
		opts.Observe = func(reg *walkthrough.Registry) {
			reg.OnCategoryAdded(func(c *walkthrough.Category) {
				fmt.Fprintf(out, "+ category %s\n", c.ID)
			})
			reg.OnTaskAdded(func(t *walkthrough.Task) {
				fmt.Fprintf(out, "+ task     %s [%s #%d]\n", t.ID, t.Category, t.Order)
			})
		}
	}

	reg, report, err := loadRegistry(opts)
	if err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(out, "%d categories, %d tasks, %d extensions\n",
		len(reg.Categories()), reg.TaskCount(), len(report.Extensions))
	for _, s := range report.Skipped {
		fmt.Fprintf(out, "skipped %s: %v\n", s.Path, s.Err)
	}
	return nil
}
