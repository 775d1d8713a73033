package appgen

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestDecoderSavesDataURI(t *testing.T) {
	dec := Decoder{Dir: t.TempDir(), Logger: quietLogger()}

	saved := dec.Decode([]AttachmentInput{
		{Name: "a.txt", URL: "data:text/plain;base64,aGVsbG8="},
	})

	if len(saved) != 1 {
		t.Fatalf("expected 1 decoded attachment, got %d", len(saved))
	}
	att := saved[0]
	if att.Name != "a.txt" || att.Mime != "text/plain" || att.Size != 5 {
		t.Fatalf("unexpected record: %+v", att)
	}
	data, err := os.ReadFile(att.Path)
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(data) != "hello" {
		t.Fatalf("saved contents = %q, want %q", data, "hello")
	}
}

func TestDecoderSkipsNonDataURLs(t *testing.T) {
	dec := Decoder{Dir: t.TempDir(), Logger: quietLogger()}

	saved := dec.Decode([]AttachmentInput{
		{Name: "remote.png", URL: "https://example.com/remote.png"},
		{Name: "empty", URL: ""},
	})

	if len(saved) != 0 {
		t.Fatalf("expected no decoded attachments, got %d", len(saved))
	}
}

func TestDecoderDropsBadEntriesAndKeepsRest(t *testing.T) {
	dec := Decoder{Dir: t.TempDir(), Logger: quietLogger()}

	saved := dec.Decode([]AttachmentInput{
		{Name: "bad.bin", URL: "data:application/octet-stream;base64,!!!notbase64!!!"},
		{Name: "nocomma", URL: "data:text/plain;base64aGVsbG8="},
		{Name: "good.txt", URL: "data:text/plain;base64,d29ybGQ="},
	})

	if len(saved) != 1 {
		t.Fatalf("expected 1 decoded attachment, got %d", len(saved))
	}
	if saved[0].Name != "good.txt" || saved[0].Size != 5 {
		t.Fatalf("unexpected record: %+v", saved[0])
	}
}

func TestDecoderDefaultsMissingName(t *testing.T) {
	dir := t.TempDir()
	dec := Decoder{Dir: dir, Logger: quietLogger()}

	saved := dec.Decode([]AttachmentInput{
		{URL: "data:text/plain;base64,aGk="},
	})

	if len(saved) != 1 {
		t.Fatalf("expected 1 decoded attachment, got %d", len(saved))
	}
	if saved[0].Name != "attachment" {
		t.Fatalf("expected default name, got %q", saved[0].Name)
	}
	if saved[0].Path != filepath.Join(dir, "attachment") {
		t.Fatalf("unexpected path: %q", saved[0].Path)
	}
}

func TestDecoderHandlesNilInput(t *testing.T) {
	dec := Decoder{Dir: t.TempDir(), Logger: quietLogger()}
	if saved := dec.Decode(nil); len(saved) != 0 {
		t.Fatalf("expected empty result for nil input, got %d", len(saved))
	}
}

func TestDecoderMimeWithoutParameters(t *testing.T) {
	dec := Decoder{Dir: t.TempDir(), Logger: quietLogger()}

	saved := dec.Decode([]AttachmentInput{
		{Name: "img.png", URL: "data:image/png;base64,iVBORw0KGgo="},
	})

	if len(saved) != 1 {
		t.Fatalf("expected 1 decoded attachment, got %d", len(saved))
	}
	if saved[0].Mime != "image/png" {
		t.Fatalf("mime = %q, want image/png", saved[0].Mime)
	}
}
