package appgen

// ExtractionResult holds the two artifacts recovered from a model reply.
type ExtractionResult struct {
	Source string
	Docs   string
}

// ExtractArtifacts parses a model reply into application source and
// documentation. The first complete fenced block is the source and the
// second the documentation; any further blocks are ignored, as is text
// outside the fences. A reply with fewer than two complete blocks degrades:
// the source becomes a best-effort strip of the whole reply and the
// documentation falls back to fallbackDocs. The docs field is never empty
// as long as fallbackDocs is not.
func ExtractArtifacts(reply string, fallbackDocs string) ExtractionResult {
	blocks := ScanFencedBlocks(reply)
	if len(blocks) >= 2 {
		docs := blocks[1].Content
		if docs == "" {
			docs = fallbackDocs
		}
		return ExtractionResult{Source: blocks[0].Content, Docs: docs}
	}
	return ExtractionResult{Source: StripFence(reply), Docs: fallbackDocs}
}
