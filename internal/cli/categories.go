package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/agentx-labs/welcome/internal/walkthrough"
	"github.com/spf13/cobra"
)

const (
	sortRegistration = "registration"
	sortTitle        = "title"
)

var (
	categoriesJSON    bool
	categoriesSort    string
	categoriesContext []string
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List Getting Started categories",
	Long: `List every registered category in registration order.

With --context, only categories whose when clause holds for the given
context keys are shown.

Example:
  welcome categories --sort title
  welcome categories --context config.git.enabled=true --context git.missing=false`,
	Args: cobra.NoArgs,
	RunE: runCategories,
}

func init() {
	categoriesCmd.Flags().BoolVar(&categoriesJSON, "json", false, "Output in JSON format")
	categoriesCmd.Flags().StringVar(&categoriesSort, "sort", sortRegistration, "Sort order (registration, title)")
	categoriesCmd.Flags().StringArrayVar(&categoriesContext, "context", nil, "Context key=value used to evaluate when clauses (repeatable)")
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, args []string) error {
	if categoriesSort != sortRegistration && categoriesSort != sortTitle {
		return fmt.Errorf("unknown sort order %q (want %s or %s)", categoriesSort, sortRegistration, sortTitle)
	}

	reg, _, err := loadRegistry(optionsFromConfig())
	if err != nil {
		return err
	}

	cats, err := visibleCategories(reg, categoriesContext)
	if err != nil {
		return err
	}
	if categoriesSort == sortTitle {
		sortByTitle(cats)
	}

	views := make([]categoryView, 0, len(cats))
	for _, c := range cats {
		views = append(views, newCategoryView(c))
	}

	if categoriesJSON {
		return printJSON(cmd, views)
	}
	if len(views) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No categories registered.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tKIND\tTASKS")
	for _, v := range views {
		tasks := fmt.Sprint(v.Tasks)
		if v.Kind == "start" {
			tasks = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.ID, v.Title, v.Kind, tasks)
	}
	return w.Flush()
}

// visibleCategories returns the registered categories, filtered by their
// when clause when context pairs are given.
func visibleCategories(reg *walkthrough.Registry, pairs []string) ([]*walkthrough.Category, error) {
	cats := reg.Categories()
	if len(pairs) == 0 {
		return cats, nil
	}
	ctx, err := parseContext(pairs)
	if err != nil {
		return nil, err
	}
	var out []*walkthrough.Category
	for _, c := range cats {
		if c.When.Eval(ctx) {
			out = append(out, c)
		}
	}
	return out, nil
}
