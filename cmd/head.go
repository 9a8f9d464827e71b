package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/miglja/textutils/internal/domain"
)

const headLongDescription = `Write the first part of each FILE to standard output: the first N lines
by default, or the first N bytes with --bytes. With more than one FILE,
each block is preceded by a "==> name <==" header.

` + sourceSemanticsHelp

// headCmd represents the head command.
var headCmd = newHeadCmd()

func newHeadCmd() *cobra.Command {
	var lineLimit, byteLimit int

	cmd := &cobra.Command{
		Use:   "head [flags] [FILE...]",
		Short: "Output the first part of sources",
		Long:  headLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			headArgs := domain.HeadArgs{Names: parseSources(args)}

			if cmd.Flags().Changed(headBytesFlagName) {
				if byteLimit < 1 {
					return fmt.Errorf("invalid byte count: %d", byteLimit)
				}

				headArgs.Bytes = byteLimit
			} else {
				lines := lineLimit
				if !cmd.Flags().Changed(headLinesFlagName) {
					lines = viper.GetInt(headLinesKey)
				}

				if lines < 1 {
					return fmt.Errorf("invalid line count: %d", lines)
				}

				headArgs.Lines = lines
			}

			return newEngine(cmd).Head(cmd.Context(), headArgs)
		},
	}

	configureHeadFlags(cmd, &lineLimit, &byteLimit)

	return cmd
}

const (
	headLinesFlagName = "lines"
	headBytesFlagName = "bytes"
)

func configureHeadFlags(cmd *cobra.Command, lineLimit, byteLimit *int) {
	cmd.Flags().IntVarP(lineLimit, headLinesFlagName, "n", defaultHeadLines, "number of lines to emit per source")
	bindFlagToConfig(cmd.Flags().Lookup(headLinesFlagName), headLinesKey)

	cmd.Flags().IntVarP(byteLimit, headBytesFlagName, "c", 0, "number of bytes to emit per source")

	cmd.MarkFlagsMutuallyExclusive(headLinesFlagName, headBytesFlagName)
}

func init() {
	rootCmd.AddCommand(headCmd)
}
