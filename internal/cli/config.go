package cli

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/bnema/navkit/internal/config"
)

// NewConfigCmd creates the config command
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage navkit configuration",
		Long:  `Open the configuration file in your editor or print its path.`,
		RunE:  openConfig,
	}

	cmd.Flags().Bool("path", false, "Print the full path of the config file")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as TOML",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := config.Init(); err != nil {
				return err
			}
			out, err := config.Render(config.Get())
			if err != nil {
				return fmt.Errorf("failed to render configuration: %w", err)
			}
			fmt.Print(string(out))
			return nil
		},
	}

	schemaCmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema for the configuration file",
		RunE: func(_ *cobra.Command, _ []string) error {
			out, err := config.Schema()
			if err != nil {
				return fmt.Errorf("failed to generate schema: %w", err)
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.AddCommand(showCmd)
	cmd.AddCommand(schemaCmd)

	return cmd
}

// openConfig opens the config file in the user's editor or prints its path
func openConfig(cmd *cobra.Command, _ []string) error {
	configPath, err := config.GetConfigFile()
	if err != nil {
		return fmt.Errorf("failed to get config file path: %w", err)
	}

	printPath, _ := cmd.Flags().GetBool("path")
	if printPath {
		fmt.Println(configPath)
		return nil
	}

	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		return fmt.Errorf("no editor defined: set $VISUAL or $EDITOR environment variable")
	}

	editorCmd := exec.Command(editor, configPath)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}

	return nil
}
