// Package cmd provides the root command and CLI setup for textutils.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/miglja/textutils/internal/adapter"
	"github.com/miglja/textutils/internal/domain"
	m "github.com/miglja/textutils/internal/model"
)

// verboseFlag switches the log file to debug detail.
var verboseFlag bool

// logFileFlag overrides the rotating log file location.
var logFileFlag string

const sourceSemanticsHelp = `Sources are processed strictly in the order given. The name - stands for
standard input and is assumed when no FILE is given. A source that cannot
be opened is reported on standard error and skipped; the remaining sources
are still processed.`

const rootLongDescription = `Textutils bundles the classic line-oriented text utilities (cat, head, wc
and echo) behind one streaming engine. Each tool reads its sources without
loading whole files into memory and writes formatted text to standard
output.

` + sourceSemanticsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "textutils",
		Short: "Classic line-oriented text utilities",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&verboseFlag, verboseFlagName, defaultLogVerbose, "log debug detail to the log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, defaultLogFilename, "path of the rotating log file")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a cobra flag to a viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// newEngine builds an engine bound to the command's streams, so tests can
// substitute buffers for the sinks and a reader for standard input.
func newEngine(cmd *cobra.Command) domain.Engine {
	opener := adapter.NewLocalSourceOpener(cmd.InOrStdin())

	return domain.NewEngine(opener, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

// parseSources converts positional arguments into source names, defaulting
// to a single stdin entry when none are given.
func parseSources(args []string) []m.SourceName {
	if len(args) == 0 {
		return []m.SourceName{m.Stdin}
	}

	names := make([]m.SourceName, 0, len(args))
	for _, arg := range args {
		names = append(names, m.SourceName(arg))
	}

	return names
}
