package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/libmatcha/matcha/internal/extract"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Extract emails, URLs and phone numbers from the sample corpus",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Corpus: %d characters\n\n", len(extract.SampleText))

		printSection("EMAILS", extract.Emails(extract.SampleText))
		printSection("URLS", extract.URLs(extract.SampleText))
		printSection("PHONE NUMBERS", extract.Phones(extract.SampleText))
	},
}

func printSection(title string, items []string) {
	fmt.Println(headStyle.Sprint(title))
	fmt.Printf("Found %d:\n", len(items))
	for i, item := range items {
		fmt.Printf("  %2d. %s\n", i+1, item)
	}
	fmt.Println()
}
