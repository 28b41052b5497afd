package cmd

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/libmatcha/matcha"
	"github.com/libmatcha/matcha/internal/extract"
)

var benchIterations int

type benchCase struct {
	name    string
	expr    string // matcha pattern
	regex   string // equivalent stdlib regexp
	text    string
	findAll bool // find all matches instead of a full match
}

var benchCases = []benchCase{
	{
		name:  "email full match",
		expr:  "[anum:a-zA-Z0-9._%+-:]@[anum:a-zA-Z0-9.-:]",
		regex: `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+$`,
		text:  "example@domain.com",
	},
	{
		name:  "hex color full match",
		expr:  "#[hex::6]",
		regex: `^#[0-9a-fA-F]{6}$`,
		text:  "#ff00aa",
	},
	{
		name:    "digit runs",
		expr:    "[dec::]",
		regex:   `[0-9]+`,
		text:    strings.Repeat("abc123def456ghi789 ", 50),
		findAll: true,
	},
	{
		name:    "emails in corpus",
		expr:    "[anum:a-zA-Z0-9._+:]@[anum:a-zA-Z0-9.:]",
		regex:   `[a-zA-Z0-9._+]+@[a-zA-Z0-9.]+`,
		text:    extract.SampleText,
		findAll: true,
	},
	{
		name:    "phone numbers in corpus",
		expr:    "[dec::>=3]-[dec::3]-[dec::>=3]",
		regex:   `[0-9]{3,}-[0-9]{3}-[0-9]{3,}`,
		text:    extract.SampleText,
		findAll: true,
	},
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Compare matcha against the standard regexp package",
	Run: func(cmd *cobra.Command, args []string) {
		runBenchmarks(benchIterations)
	},
}

func init() {
	benchCmd.Flags().IntVarP(&benchIterations, "iterations", "n", 1000, "Iterations per case")
}

func runBenchmarks(iterations int) {
	fmt.Println(headStyle.Sprint("matcha vs regexp"))

	for _, bc := range benchCases {
		p, err := matcha.Compile(bc.expr)
		if err != nil {
			logger.Fatal("Invalid benchmark pattern", zap.String("pattern", bc.expr), zap.Error(err))
		}
		re, err := regexp.Compile(bc.regex)
		if err != nil {
			logger.Fatal("Invalid benchmark regexp", zap.String("regexp", bc.regex), zap.Error(err))
		}

		bar := progressbar.NewOptions(iterations,
			progressbar.OptionSetDescription(bc.name),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))

		var matchaTotal, regexpTotal time.Duration
		for i := 0; i < iterations; i++ {
			start := time.Now()
			if bc.findAll {
				p.FindAllStrings(bc.text)
			} else {
				p.MatchString(bc.text)
			}
			matchaTotal += time.Since(start)

			start = time.Now()
			if bc.findAll {
				re.FindAllString(bc.text, -1)
			} else {
				re.MatchString(bc.text)
			}
			regexpTotal += time.Since(start)

			_ = bar.Add(1)
		}
		_ = bar.Finish()
		fmt.Println()

		matchaAvg := matchaTotal / time.Duration(iterations)
		regexpAvg := regexpTotal / time.Duration(iterations)
		ratio := float64(matchaTotal) / float64(regexpTotal)
		fmt.Printf("  matcha %10v   regexp %10v   %s\n",
			matchaAvg, regexpAvg, spanStyle.Sprintf("%.1fx", ratio))
	}
}
