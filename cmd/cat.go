package cmd

import (
	"github.com/spf13/cobra"

	"github.com/miglja/textutils/internal/domain"
	m "github.com/miglja/textutils/internal/model"
)

const catLongDescription = `Read each FILE in order and write it to standard output, applying the
selected per-line transformations.

` + sourceSemanticsHelp

// catCmd represents the cat command.
var catCmd = newCatCmd()

func newCatCmd() *cobra.Command {
	var opts m.DisplayOptions

	cmd := &cobra.Command{
		Use:   "cat [flags] [FILE...]",
		Short: "Concatenate sources to standard output",
		Long:  catLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newEngine(cmd).Display(cmd.Context(), domain.DisplayArgs{
				Names:   parseSources(args),
				Options: opts,
			})
		},
	}

	f := cmd.Flags()
	f.BoolVarP(&opts.ShowAll, "show-all", "A", false, "equivalent to -vET")
	f.BoolVarP(&opts.NumberNonblank, "number-nonblank", "b", false, "number nonempty output lines")
	f.BoolVarP(&opts.NonprintEnds, "nonprint-ends", "e", false, "equivalent to -vE")
	f.BoolVarP(&opts.ShowEnds, "show-ends", "E", false, "display $ at end of each line")
	f.BoolVarP(&opts.NumberAll, "number", "n", false, "number all output lines")
	f.BoolVarP(&opts.SqueezeBlank, "squeeze-blank", "s", false, "suppress repeated empty output lines")
	f.BoolVarP(&opts.NonprintTabs, "nonprint-tabs", "t", false, "equivalent to -vT")
	f.BoolVarP(&opts.ShowTabs, "show-tabs", "T", false, "display TAB characters as ^I")
	f.BoolVarP(&opts.ShowNonprinting, "show-nonprinting", "v", false, "use ^ notation, except for LFD and TAB")

	cmd.MarkFlagsMutuallyExclusive("number", "number-nonblank")

	return cmd
}

func init() {
	rootCmd.AddCommand(catCmd)
}
