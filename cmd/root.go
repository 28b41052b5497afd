package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger *zap.Logger

var rootCmd = &cobra.Command{
	Use:              "matcha",
	Short:            "matcha - human-readable pattern matching",
	Long: `matcha matches text with readable [type:range:length] tokens instead of
regular expressions. Run "matcha demo" for a quick tour of the syntax.`,
	TraverseChildren: true, // Prioritize subcommands
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func Execute() error {
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}

func init() {
	logger, _ = zap.NewProduction()

	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(findAllCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(demoCmd)
}
