// Package extract bundles the stock extraction patterns used by the matcha
// demo command: email addresses, URLs, and phone numbers.
package extract

import "github.com/libmatcha/matcha"

var (
	// alphanumerics plus the separators common in mailbox names, then a
	// domain of alphanumerics and dots
	emailPattern = matcha.MustCompile("[anum:a-zA-Z0-9._+:]@[anum:a-zA-Z0-9.:]")

	// http, an optional s, then domain and path segments
	urlPattern = matcha.MustCompile("http[str:s:>=0<=1]://[anum:a-zA-Z0-9.-:]/[anum:a-zA-Z0-9./-:]")

	// URLs with no path after the domain
	bareURLPattern = matcha.MustCompile("http[str:s:>=0<=1]://[anum:a-zA-Z0-9.-:]")

	// NNN-NNN-NNNN style, tolerant of longer prefixes and line numbers
	phonePattern = matcha.MustCompile("[dec::>=3]-[dec::3]-[dec::>=3]")
)

// Emails returns every email address found in text.
func Emails(text string) []string {
	return emailPattern.FindAllStrings(text)
}

// URLs returns every URL with a path component found in text.
func URLs(text string) []string {
	return urlPattern.FindAllStrings(text)
}

// BareURLs returns every URL found in text, path or not.
func BareURLs(text string) []string {
	return bareURLPattern.FindAllStrings(text)
}

// Phones returns every phone number found in text.
func Phones(text string) []string {
	return phonePattern.FindAllStrings(text)
}
