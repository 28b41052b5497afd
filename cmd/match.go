package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/libmatcha/matcha"
)

var matchCmd = &cobra.Command{
	Use:   "match PATTERN TEXT",
	Short: "Test whether TEXT fully matches PATTERN",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := matcha.Compile(args[0])
		if err != nil {
			logger.Fatal("Invalid pattern", zap.String("pattern", args[0]), zap.Error(err))
		}

		if p.MatchString(args[1]) {
			fmt.Println(matchStyle.Sprint("match"))
			return
		}
		fmt.Println(errorStyle.Sprint("no match"))
		os.Exit(1)
	},
}
