package cmd

import (
	"github.com/spf13/cobra"

	"github.com/miglja/textutils/internal/domain"
	m "github.com/miglja/textutils/internal/model"
)

const wcLongDescription = `Count lines, words and bytes (or characters) for each FILE, one row per
source, and a final total row when more than one FILE is given. With no
selector flags the traditional line, word and byte counts are printed.

` + sourceSemanticsHelp

// wcCmd represents the wc command.
var wcCmd = newWcCmd()

func newWcCmd() *cobra.Command {
	var kinds m.CountKinds

	cmd := &cobra.Command{
		Use:   "wc [flags] [FILE...]",
		Short: "Count lines, words, bytes and characters",
		Long:  wcLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newEngine(cmd).Count(cmd.Context(), domain.CountArgs{
				Names: parseSources(args),
				Kinds: kinds,
			})
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&kinds.Lines, "lines", "l", false, "print the line counts")
	f.BoolVarP(&kinds.Words, "words", "w", false, "print the word counts")
	f.BoolVarP(&kinds.Bytes, "bytes", "c", false, "print the byte counts")
	f.BoolVarP(&kinds.Chars, "chars", "m", false, "print the character counts")

	cmd.MarkFlagsMutuallyExclusive("bytes", "chars")

	return cmd
}

func init() {
	rootCmd.AddCommand(wcCmd)
}
