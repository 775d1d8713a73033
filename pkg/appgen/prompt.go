package appgen

import (
	"fmt"
	"strings"
)

const promptRole = "You are a professional web developer assistant."

const promptFormatRules = `### Output format rules
1. Produce a complete web app (HTML/JS/CSS inline if needed) satisfying the brief.
2. Your output MUST contain two markdown code blocks ONLY: one for ` + "`index.html`" + ` and one for ` + "`README.md`" + `.
3. The ` + "`README.md`" + ` block must start on a new line immediately after the ` + "`index.html`" + ` block.
4. The ` + "`README.md`" + ` must include: Overview, Setup, and Usage sections. If Round 2, describe improvements.
5. Open each block with a triple backtick and a language tag (html, then markdown).
6. Do not include any other text or commentary outside of these two code blocks.`

// buildPrompt composes the generation prompt: round, brief, optional
// revision context, attachment summary, checks, and the fixed format rules
// the extractor depends on.
func buildPrompt(brief string, checks []string, attachmentSummary string, round int, prevReadme string) string {
	contextNote := ""
	if round == 2 && prevReadme != "" {
		contextNote = fmt.Sprintf("### Previous README.md\n%s\n\nRevise and enhance this project according to the new brief below.\n", prevReadme)
	}

	var b strings.Builder
	b.WriteString(promptRole)
	b.WriteString("\n\n### Round\n")
	fmt.Fprintf(&b, "%d\n", round)
	b.WriteString("\n### Task\n")
	b.WriteString(brief)
	b.WriteString("\n")
	if contextNote != "" {
		b.WriteString("\n")
		b.WriteString(contextNote)
	}
	b.WriteString("\n### Attachments (if any)\n")
	b.WriteString(attachmentSummary)
	b.WriteString("\n")
	b.WriteString("\n### Evaluation checks\n")
	b.WriteString(strings.Join(checks, "\n"))
	b.WriteString("\n\n")
	b.WriteString(promptFormatRules)
	b.WriteString("\n")
	return b.String()
}
