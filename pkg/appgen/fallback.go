package appgen

import (
	"fmt"
	"strings"
)

// FallbackReadme renders the deterministic README used whenever the model
// reply carries no documentation block. Pure function of its inputs.
func FallbackReadme(brief string, checks []string, attachmentSummary string, round int) string {
	checksText := strings.Join(checks, "\n")
	return fmt.Sprintf(`# Auto-generated README (Round %d)

**Project brief:** %s

**Attachments:**
%s

**Checks to meet:**
%s

## Setup
1. Open `+"`index.html`"+` in a browser.
2. No build steps required.

## Notes
This README was generated as a fallback because the model did not return an explicit README.
`, round, brief, attachmentSummary, checksText)
}

// fallbackResponse mimics a well-formed model reply, so the failure path is
// handled by the exact same extraction code as a successful call.
func fallbackResponse(brief string, checks []string, attachmentSummary string, round int) string {
	var b strings.Builder
	b.WriteString("```html\n")
	b.WriteString("<html>\n")
	b.WriteString("  <head><title>Fallback App</title></head>\n")
	b.WriteString("  <body>\n")
	b.WriteString("    <h1>Hello (fallback)</h1>\n")
	fmt.Fprintf(&b, "    <p>This app was generated as a fallback because the model call failed. Brief: %s</p>\n", brief)
	b.WriteString("  </body>\n")
	b.WriteString("</html>\n")
	b.WriteString("```\n")
	b.WriteString("```markdown\n")
	b.WriteString(FallbackReadme(brief, checks, attachmentSummary, round))
	b.WriteString("\n```\n")
	return b.String()
}
