package cli

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/agentx-labs/welcome/internal/config"
	"github.com/agentx-labs/welcome/internal/extension"
	"github.com/agentx-labs/welcome/internal/manifest"
	"github.com/spf13/cobra"
)

func init() {
	extensionCmd.AddCommand(extensionAddCmd)
	extensionCmd.AddCommand(extensionRemoveCmd)
	extensionCmd.AddCommand(extensionListCmd)
	rootCmd.AddCommand(extensionCmd)
}

var extensionCmd = &cobra.Command{
	Use:     "extension",
	Aliases: []string{"ext"},
	Short:   "Manage extensions that contribute walkthroughs",
	Long: `Manage the extensions declared in extensions.yaml.

Declared extensions are read before the user extension directory
(~/.welcome/extensions/), so a declared extension wins over a user
installed copy with the same id.`,
}

var extensionAddCmd = &cobra.Command{
	Use:   "add <name> [path]",
	Short: "Declare an extension directory",
	Long: `Declare an extension in extensions.yaml. When path is omitted the
extension is expected under ~/.welcome/extensions/<name>/.

Example:
  welcome extension add acme-go ./vendor/acme-go`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ExtensionsConfigPath()
		cfg, err := extension.LoadConfigOrDefault(path)
		if err != nil {
			return err
		}

		ext := extension.Extension{Name: args[0]}
		if len(args) == 2 {
			abs, err := filepath.Abs(args[1])
			if err != nil {
				return fmt.Errorf("resolving %s: %w", args[1], err)
			}
			if _, err := manifest.Find(abs); err != nil {
				return err
			}
			ext.Path = abs
		}

		if err := cfg.AddExtension(ext); err != nil {
			return err
		}
		if err := extension.SaveConfig(path, cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Extension %q added.\n", ext.Name)
		return nil
	},
}

var extensionRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a declared extension",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ExtensionsConfigPath()
		cfg, err := extension.LoadConfig(path)
		if err != nil {
			return err
		}
		if err := cfg.RemoveExtension(args[0]); err != nil {
			return err
		}
		if err := extension.SaveConfig(path, cfg); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Extension %q removed.\n", args[0])
		return nil
	},
}

var extensionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List discovered extensions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := extension.LoadConfigOrDefault(config.ExtensionsConfigPath())
		if err != nil {
			return err
		}
		dir := config.Dir()
		found, err := extension.Discover(extension.BuildSources(cfg, dir, filepath.Join(dir, config.UserExtensionsDir)))
		if err != nil {
			return err
		}

		if len(found.Manifests) == 0 && len(found.Skipped) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No extensions found.")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tVERSION\tENGINE\tPATH")
		for _, m := range found.Manifests {
			version := "-"
			if v, err := m.SemVer(); err == nil {
				version = v.String()
			}
			engine := m.Engines[manifest.EngineName]
			if engine == "" {
				engine = "*"
			}
			status := ""
			if err := m.CheckEngine(buildVersion); err != nil {
				status = " (incompatible)"
			}
			fmt.Fprintf(w, "%s\t%s\t%s%s\t%s\n", m.ID(), version, engine, status, m.Dir())
		}
		if err := w.Flush(); err != nil {
			return err
		}

		for _, s := range found.Skipped {
			fmt.Fprintf(cmd.OutOrStdout(), "skipped %s: %v\n", s.Path, s.Err)
		}
		return nil
	},
}
