package appgen

import (
	"strings"
	"testing"
)

func TestScanFencedBlocks(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []FencedBlock
	}{
		{
			name: "no fences",
			text: "just prose",
			want: nil,
		},
		{
			name: "two tagged blocks",
			text: "```html\n<p>hi</p>\n```\n```markdown\n# Doc\n```",
			want: []FencedBlock{
				{Tag: "html", Content: "<p>hi</p>"},
				{Tag: "markdown", Content: "# Doc"},
			},
		},
		{
			name: "untagged block",
			text: "```\nplain\n```",
			want: []FencedBlock{{Tag: "", Content: "plain"}},
		},
		{
			name: "unterminated fence emits nothing",
			text: "```html\n<p>open</p>",
			want: nil,
		},
		{
			name: "complete block followed by unterminated fence",
			text: "```html\n<p>hi</p>\n```\n```markdown\n# half",
			want: []FencedBlock{{Tag: "html", Content: "<p>hi</p>"}},
		},
		{
			name: "three blocks all reported",
			text: "```a\n1\n```\n```b\n2\n```\n```c\n3\n```",
			want: []FencedBlock{
				{Tag: "a", Content: "1"},
				{Tag: "b", Content: "2"},
				{Tag: "c", Content: "3"},
			},
		},
		{
			name: "prose around the fences is dropped",
			text: "Sure! Here you go:\n```html\n<p>x</p>\n```\nand docs:\n```markdown\ny\n```\nEnjoy!",
			want: []FencedBlock{
				{Tag: "html", Content: "<p>x</p>"},
				{Tag: "markdown", Content: "y"},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ScanFencedBlocks(tc.text)
			if len(got) != len(tc.want) {
				t.Fatalf("got %d blocks, want %d: %+v", len(got), len(tc.want), got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("block %d = %+v, want %+v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestStripFence(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"no fence", "  plain text  ", "plain text"},
		{"tagged fence", "```html\n<p>hi</p>\n```", "<p>hi</p>"},
		{"untagged fence", "```\ncontent\n```", "content"},
		{"single marker only", "before ``` after", "before ``` after"},
		{"fence at end of text", "look: ```", "look: ```"},
		{"opening line never ends", "```html", "```html"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripFence(tc.text); got != tc.want {
				t.Fatalf("StripFence(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestExtractArtifactsWellFormed(t *testing.T) {
	reply := "```html\n<p>hi</p>\n```\n```markdown\n# Doc\n```"
	got := ExtractArtifacts(reply, "FALLBACK")

	if got.Source != "<p>hi</p>" {
		t.Fatalf("source = %q", got.Source)
	}
	if got.Docs != "# Doc" {
		t.Fatalf("docs = %q", got.Docs)
	}
}

func TestExtractArtifactsSingleBlockFallsBackForDocs(t *testing.T) {
	reply := "```html\n<p>hi</p>\n```"
	fallback := FallbackReadme("a landing page", nil, "", 1)
	got := ExtractArtifacts(reply, fallback)

	if got.Source != "<p>hi</p>" {
		t.Fatalf("source = %q", got.Source)
	}
	if got.Docs != fallback {
		t.Fatalf("docs = %q, want fallback README", got.Docs)
	}
	if !strings.Contains(got.Docs, "a landing page") {
		t.Fatalf("fallback docs missing brief: %q", got.Docs)
	}
}

func TestExtractArtifactsIgnoresExtraBlocks(t *testing.T) {
	reply := "```html\n<p>app</p>\n```\n```markdown\n# Docs\n```\n```js\nconsole.log(1)\n```"
	got := ExtractArtifacts(reply, "FALLBACK")

	if got.Source != "<p>app</p>" || got.Docs != "# Docs" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestExtractArtifactsNoFences(t *testing.T) {
	got := ExtractArtifacts("  <p>bare html</p>  ", "FALLBACK")

	if got.Source != "<p>bare html</p>" {
		t.Fatalf("source = %q", got.Source)
	}
	if got.Docs != "FALLBACK" {
		t.Fatalf("docs = %q", got.Docs)
	}
}

func TestExtractArtifactsEmptyDocsBlockFallsBack(t *testing.T) {
	reply := "```html\n<p>hi</p>\n```\n```markdown\n```"
	got := ExtractArtifacts(reply, "FALLBACK")

	if got.Docs != "FALLBACK" {
		t.Fatalf("docs = %q, want fallback", got.Docs)
	}
}
