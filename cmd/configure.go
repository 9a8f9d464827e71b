package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configCmd represents the config command group.
var configCmd = newConfigCmd()

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the textutils configuration file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default textutils.yaml configuration file",
		Long: `Create a textutils.yaml in the current working directory populated with
the current defaults so it can be edited manually.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			err := viper.SafeWriteConfigAs(targetPath)
			if err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			return nil
		},
	}
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long:  "Display every configuration key with its effective value, after merging defaults, the config file, environment variables and flags.",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Print(renderSettingsTable())
		},
	}
}

func renderSettingsTable() string {
	keys := viper.AllKeys()
	sort.Strings(keys)

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Key", "Value"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, key := range keys {
		table.Append([]string{key, fmt.Sprintf("%v", viper.Get(key))})
	}

	table.Render()

	return tableBuffer.String()
}

func init() {
	rootCmd.AddCommand(configCmd)
}
