package extract

// SampleText is the demo corpus: a fictional company email with addresses,
// URLs, and phone numbers scattered through it.
const SampleText = `
Dear Team,

Please find below the contact information for the upcoming project
collaboration:

Project Lead: Sarah Johnson - sarah.johnson@techcorp.com
Technical Architect: Mike Chen - mike_chen123@devstudio.io
QA Manager: Anna Williams - anna.w@qualitytest.org

For billing inquiries, contact our finance department at billing@company.co
or accounts_payable@company.co.uk. Urgent matters go straight to
emergency_support@techcorp.com, or call the hotline at 555-010-0199.

External consultants:
- Dr. James Smith: j.smith@university.edu
- Prof. Maria Garcia: maria.garcia2024@research.ac.uk
- Consultant Team: team+support@consulting.firm.com

Regional offices can be reached at 020-555-0931 (Berlin),
03-555-0110 (Tokyo) and 1800-555-440022 (Sydney).

USEFUL LINKS:

Company Website: https://www.techcorp.com
Documentation: https://docs.techcorp.com/api/v2/guide
Support Portal: https://support.techcorp.com/tickets
Developer Hub: https://developers.techcorp.io/getting-started
Legacy Portal: http://legacy.oldpartner.net/deprecated

Partner sites:
- https://partner1.example.com/integration
- https://api.partner2.io/v1/docs

This email was sent from noreply@automated.techcorp.com.
To unsubscribe, contact unsubscribe@mailinglist.techcorp.com or visit
https://techcorp.com/unsubscribe for more options.
`
