package cmd

import (
	"github.com/spf13/cobra"

	"github.com/miglja/textutils/internal/domain"
)

// echoCmd represents the echo command.
var echoCmd = newEchoCmd()

func newEchoCmd() *cobra.Command {
	var omitNewline bool

	cmd := &cobra.Command{
		Use:   "echo [-n] TEXT...",
		Short: "Print literal text",
		Long: `Join the TEXT arguments with single spaces and print them, followed by a
newline unless -n is given.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return newEngine(cmd).Echo(cmd.Context(), domain.EchoArgs{
				Tokens:      args,
				OmitNewline: omitNewline,
			})
		},
	}

	cmd.Flags().BoolVarP(&omitNewline, "omit-newline", "n", false, "do not print the trailing newline")

	// Only flags before the first TEXT argument are interpreted, so tokens
	// like "-x" pass through as literal text.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func init() {
	rootCmd.AddCommand(echoCmd)
}
