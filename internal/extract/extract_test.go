package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmails(t *testing.T) {
	emails := Emails(SampleText)
	assert.Len(t, emails, 11)
	assert.Contains(t, emails, "sarah.johnson@techcorp.com")
	assert.Contains(t, emails, "mike_chen123@devstudio.io")
	assert.Contains(t, emails, "team+support@consulting.firm.com")
}

func TestURLs(t *testing.T) {
	urls := URLs(SampleText)
	assert.Len(t, urls, 7)
	assert.Contains(t, urls, "https://docs.techcorp.com/api/v2/guide")
	assert.Contains(t, urls, "http://legacy.oldpartner.net/deprecated")

	// the homepage has no path component, so only the bare scan sees it
	assert.NotContains(t, urls, "https://www.techcorp.com")
	assert.Contains(t, BareURLs(SampleText), "https://www.techcorp.com")
}

func TestPhones(t *testing.T) {
	phones := Phones(SampleText)
	assert.Equal(t, []string{"555-010-0199", "020-555-0931", "1800-555-440022"}, phones)
}
