package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/libmatcha/matcha"
	"github.com/libmatcha/matcha/pattern"
)

var (
	inputFile      string
	findJsonOutput bool
	outPath        string
)

var findCmd = &cobra.Command{
	Use:   "find PATTERN [TEXT]",
	Short: "Print the first match of PATTERN in the input",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		p, text := compileInput(args)

		m, ok := p.FindMatch(text)
		if !ok {
			fmt.Println(errorStyle.Sprint("no match"))
			os.Exit(1)
		}
		fmt.Printf("%s %s\n", spanStyle.Sprintf("[%d:%d]", m.Start, m.End), matchStyle.Sprint(m.Value))
	},
}

var findAllCmd = &cobra.Command{
	Use:   "findall PATTERN [TEXT]",
	Short: "Print all non-overlapping matches of PATTERN in the input",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		p, text := compileInput(args)

		matches := p.FindAllMatches(text)
		if findJsonOutput {
			printMatchesJSON(matches)
			return
		}

		fmt.Println(headStyle.Sprintf("%d match(es)", len(matches)))
		for i, m := range matches {
			fmt.Printf("%3d. %s %s\n", i+1, spanStyle.Sprintf("[%d:%d]", m.Start, m.End), m.Value)
		}
		if len(matches) > 0 && inputFile == "" {
			fmt.Println()
			fmt.Println(highlightMatches(text, matches))
		}
	},
}

func init() {
	for _, c := range []*cobra.Command{findCmd, findAllCmd} {
		c.Flags().StringVarP(&inputFile, "file", "f", "", "Read the input text from a file")
	}
	findAllCmd.Flags().BoolVar(&findJsonOutput, "json", false, "Output matches in JSON format")
	findAllCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
}

// compileInput compiles the pattern argument and resolves the input text,
// either from the second positional argument or from --file.
func compileInput(args []string) (*matcha.Pattern, string) {
	p, err := matcha.Compile(args[0])
	if err != nil {
		logger.Fatal("Invalid pattern", zap.String("pattern", args[0]), zap.Error(err))
	}

	if inputFile != "" {
		data, err := os.ReadFile(inputFile)
		if err != nil {
			logger.Fatal("Error reading input file", zap.String("file", inputFile), zap.Error(err))
		}
		return p, string(data)
	}
	if len(args) < 2 {
		fmt.Println("error: provide TEXT or --file")
		os.Exit(1)
	}
	return p, args[1]
}

func printMatchesJSON(matches []pattern.Match) {
	d, err := json.Marshal(matches)
	if err != nil {
		logger.Error("Error marshalling matches to JSON", zap.Error(err))
		return
	}
	if outPath == "" {
		fmt.Println(string(d))
		return
	}
	if err := os.WriteFile(outPath, d, 0o644); err != nil {
		logger.Error("Error writing JSON output file", zap.Error(err))
	}
}
