package appgen

import (
	"fmt"
	"os"
	"strings"
)

const (
	previewCharLimit = 1000
	csvPreviewLines  = 3
)

var textExtensions = []string{".md", ".txt", ".json", ".csv"}

// SummarizeAttachments renders one line per decoded attachment, in input
// order, for inclusion in the model prompt. Textual attachments get a short
// content preview; everything else is reported by size. A failed read turns
// into an inline note, never an error.
func SummarizeAttachments(attachments []DecodedAttachment) string {
	lines := make([]string, 0, len(attachments))
	for _, att := range attachments {
		lines = append(lines, summarize(att))
	}
	return strings.Join(lines, "\n")
}

func summarize(att DecodedAttachment) string {
	if !isTextual(att) {
		return fmt.Sprintf("- %s (%s): %d bytes", att.Name, att.Mime, att.Size)
	}

	data, err := os.ReadFile(att.Path)
	if err != nil {
		return fmt.Sprintf("- %s (%s): (could not read preview: %v)", att.Name, att.Mime, err)
	}

	// Invalid UTF-8 is replaced, not rejected; previews are best-effort.
	content := strings.ToValidUTF8(string(data), "�")

	var preview string
	if strings.HasSuffix(att.Name, ".csv") {
		preview = csvPreview(content)
	} else {
		preview = truncateRunes(content, previewCharLimit)
	}
	return fmt.Sprintf("- %s (%s): preview: %s", att.Name, att.Mime, preview)
}

func isTextual(att DecodedAttachment) bool {
	if strings.HasPrefix(att.Mime, "text") {
		return true
	}
	for _, ext := range textExtensions {
		if strings.HasSuffix(att.Name, ext) {
			return true
		}
	}
	return false
}

// csvPreview keeps the header rows: the first few lines, trimmed.
func csvPreview(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) > csvPreviewLines {
		lines = lines[:csvPreviewLines]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
