// Package appgen generates a small web application from a natural-language
// brief by prompting a text model and extracting the reply into two
// artifacts: the application source and a README. Every failure mode along
// the way degrades to a deterministic fallback instead of surfacing an error.
package appgen

import (
	"encoding/base64"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const dataURIPrefix = "data:"

// AttachmentInput is a caller-supplied attachment. URL carries the payload
// inline as data:<mime>;base64,<bytes>; anything else is ignored.
type AttachmentInput struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// DecodedAttachment describes an attachment persisted to scratch storage.
type DecodedAttachment struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Mime string `json:"mime"`
	Size int    `json:"size"`
}

// Decoder writes data-URI attachments into Dir. The caller owns the
// directory's lifecycle; the decoder only creates it when needed.
type Decoder struct {
	Dir    string
	Logger *log.Logger
}

// Decode saves each data-URI attachment to disk and returns a record per
// success, in input order. Inputs without a data: URL are skipped silently;
// a decode or write error drops that attachment (logged) without affecting
// the rest. Files are named after the attachment, so duplicate names within
// one directory overwrite each other.
func (d Decoder) Decode(inputs []AttachmentInput) []DecodedAttachment {
	saved := make([]DecodedAttachment, 0, len(inputs))
	for _, in := range inputs {
		name := in.Name
		if name == "" {
			name = "attachment"
		}
		if !strings.HasPrefix(in.URL, dataURIPrefix) {
			continue
		}

		header, payload, found := strings.Cut(in.URL, ",")
		if !found {
			d.logf("failed to decode attachment %s: missing payload separator", name)
			continue
		}
		mimeType := header
		if i := strings.IndexByte(mimeType, ';'); i >= 0 {
			mimeType = mimeType[:i]
		}
		mimeType = strings.TrimPrefix(mimeType, dataURIPrefix)

		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			d.logf("failed to decode attachment %s: %v", name, err)
			continue
		}

		if err := os.MkdirAll(d.Dir, 0o755); err != nil {
			d.logf("failed to decode attachment %s: %v", name, err)
			continue
		}
		path := filepath.Join(d.Dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			d.logf("failed to decode attachment %s: %v", name, err)
			continue
		}

		saved = append(saved, DecodedAttachment{
			Name: name,
			Path: path,
			Mime: mimeType,
			Size: len(data),
		})
	}
	return saved
}

func (d Decoder) logf(format string, args ...any) {
	if d.Logger != nil {
		d.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}
