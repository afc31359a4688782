package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	tasksJSON    bool
	tasksContext []string
)

var tasksCmd = &cobra.Command{
	Use:   "tasks <category>",
	Short: "List the tasks of a category",
	Args:  cobra.ExactArgs(1),
	RunE:  runTasks,
}

func init() {
	tasksCmd.Flags().BoolVar(&tasksJSON, "json", false, "Output in JSON format")
	tasksCmd.Flags().StringArrayVar(&tasksContext, "context", nil, "Context key=value used to evaluate when clauses (repeatable)")
	rootCmd.AddCommand(tasksCmd)
}

func runTasks(cmd *cobra.Command, args []string) error {
	reg, _, err := loadRegistry(optionsFromConfig())
	if err != nil {
		return err
	}

	cat, ok := reg.Category(args[0])
	if !ok {
		return fmt.Errorf("category %q not found", args[0])
	}
	items, ok := cat.Items()
	if !ok {
		return fmt.Errorf("category %q is a start entry and has no tasks", args[0])
	}

	tasks := items.Tasks()
	if len(tasksContext) > 0 {
		ctx, err := parseContext(tasksContext)
		if err != nil {
			return err
		}
		filtered := tasks[:0]
		for _, t := range tasks {
			if t.When.Eval(ctx) {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	views := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, newTaskView(t))
	}

	if tasksJSON {
		return printJSON(cmd, views)
	}
	if len(views) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No tasks in %s.\n", cat.ID)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ORDER\tID\tTITLE\tDONE ON")
	for _, v := range views {
		doneOn := v.DoneOn
		if doneOn == "" {
			doneOn = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", v.Order, v.ID, v.Title, doneOn)
	}
	return w.Flush()
}
