package appgen

import "strings"

const fenceMarker = "```"

// FencedBlock is one complete triple-backtick block from a model reply.
// Tag is the language hint from the opening line, possibly empty.
type FencedBlock struct {
	Tag     string
	Content string
}

// ScanFencedBlocks walks the text and returns every complete fenced block in
// order. The scan alternates between outside-fence and inside-fence states on
// each marker; an opening fence that is never closed emits no block. Content
// is trimmed with the language hint removed.
func ScanFencedBlocks(text string) []FencedBlock {
	var blocks []FencedBlock
	rest := text
	for {
		open := strings.Index(rest, fenceMarker)
		if open < 0 {
			return blocks
		}
		rest = rest[open+len(fenceMarker):]

		end := strings.Index(rest, fenceMarker)
		if end < 0 {
			// Unterminated fence; nothing more to emit.
			return blocks
		}
		inner := rest[:end]
		rest = rest[end+len(fenceMarker):]

		tag, content := splitFenceTag(inner)
		blocks = append(blocks, FencedBlock{Tag: tag, Content: strings.TrimSpace(content)})
	}
}

// splitFenceTag separates the opening-line language hint from the body.
// A fence whose first character is a newline has no hint.
func splitFenceTag(inner string) (tag, content string) {
	nl := strings.IndexByte(inner, '\n')
	if nl < 0 {
		// Single-line fence: treat the whole run as a hint with no body.
		return strings.TrimSpace(inner), ""
	}
	return strings.TrimSpace(inner[:nl]), inner[nl+1:]
}

// StripFence returns the inner content of text's outermost fenced region:
// everything between the first marker (skipping a language hint on its line)
// and the last marker. Text without a usable fence comes back whole, trimmed.
func StripFence(text string) string {
	i := strings.Index(text, fenceMarker)
	if i < 0 {
		return strings.TrimSpace(text)
	}
	start := i + len(fenceMarker)
	if start < len(text) && text[start] != '\n' {
		nl := strings.IndexByte(text[start:], '\n')
		if nl < 0 {
			return strings.TrimSpace(text)
		}
		start += nl + 1
	}
	end := strings.LastIndex(text, fenceMarker)
	if end > start {
		return strings.TrimSpace(text[start:end])
	}
	return strings.TrimSpace(text)
}
