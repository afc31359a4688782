package cli

import (
	"fmt"
	"io"

	"github.com/agentx-labs/welcome/internal/walkthrough"
	"github.com/spf13/cobra"
)

var taskJSON bool

var taskCmd = &cobra.Command{
	Use:   "task <id>",
	Short: "Show a single task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := loadRegistry(optionsFromConfig())
		if err != nil {
			return err
		}
		t, err := reg.Task(args[0])
		if err != nil {
			return err
		}

		if taskJSON {
			return printJSON(cmd, newTaskView(t))
		}
		printTask(cmd.OutOrStdout(), t)
		return nil
	},
}

func init() {
	taskCmd.Flags().BoolVar(&taskJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(taskCmd)
}

func printTask(out io.Writer, t *walkthrough.Task) {
	v := newTaskView(t)
	fmt.Fprintf(out, "ID:          %s\n", v.ID)
	fmt.Fprintf(out, "Title:       %s\n", v.Title)
	fmt.Fprintf(out, "Category:    %s (order %d)\n", v.Category, v.Order)
	fmt.Fprintf(out, "Description: %s\n", v.Description)
	fmt.Fprintf(out, "When:        %s\n", v.When)
	if v.Button.Link != "" {
		fmt.Fprintf(out, "Button:      %s -> %s\n", v.Button.Title, v.Button.Link)
	} else {
		fmt.Fprintf(out, "Button:      %s -> %s\n", v.Button.Title, v.Button.Command)
	}
	if v.DoneOn != "" {
		fmt.Fprintf(out, "Done on:     %s\n", v.DoneOn)
	}

	if t.Media.Path.IsZero() {
		fmt.Fprintln(out, "Media:       -")
		return
	}
	fmt.Fprintf(out, "Media:       %s\n", v.Media.Light)
	if v.Media.Dark != v.Media.Light || v.Media.HC != v.Media.Light {
		fmt.Fprintf(out, "  dark:      %s\n", v.Media.Dark)
		fmt.Fprintf(out, "  hc:        %s\n", v.Media.HC)
	}
}
