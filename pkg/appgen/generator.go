package appgen

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Protocol-Lattice/appforge/pkg/models"
)

// Request describes one generation invocation. Round 1 builds from scratch;
// round 2 revises using PrevReadme as context (absence of PrevReadme on
// round 2 is tolerated and simply produces no revision context).
type Request struct {
	Brief       string            `json:"brief"`
	Attachments []AttachmentInput `json:"attachments,omitempty"`
	Checks      []string          `json:"checks,omitempty"`
	Round       int               `json:"round,omitempty"`
	PrevReadme  string            `json:"prev_readme,omitempty"`
}

// Result is the artifact bundle returned to the caller. Files always holds
// non-empty "index.html" and "README.md" entries.
type Result struct {
	Files       map[string]string   `json:"files"`
	Attachments []DecodedAttachment `json:"attachments"`
}

// Options configure a new Generator.
type Options struct {
	// Model produces the application from the composed prompt. Required.
	// If it also implements models.Checker, availability is probed before
	// each call and an unavailable model routes straight to the fallback.
	Model models.Agent

	// ScratchDir is the base directory for decoded attachments. Each
	// invocation writes into its own subdirectory. Defaults to
	// <os temp>/appforge_attachments.
	ScratchDir string

	Logger *log.Logger
}

// Generator runs the brief-to-webapp pipeline: decode attachments, summarize
// them, prompt the model, extract the two artifacts.
type Generator struct {
	model      models.Agent
	scratchDir string
	logger     *log.Logger
}

// New creates a Generator with the provided options.
func New(opts Options) (*Generator, error) {
	if opts.Model == nil {
		return nil, errors.New("generator requires a language model")
	}
	scratch := opts.ScratchDir
	if scratch == "" {
		scratch = filepath.Join(os.TempDir(), "appforge_attachments")
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr, "appgen: ", log.LstdFlags)
	}
	return &Generator{
		model:      opts.Model,
		scratchDir: scratch,
		logger:     logger,
	}, nil
}

// Generate runs one synchronous generation pass and always returns a
// complete result: model unavailability, call errors, and malformed replies
// all degrade to the deterministic fallback artifacts.
func (g *Generator) Generate(ctx context.Context, req Request) *Result {
	round := req.Round
	if round < 1 {
		round = 1
	}

	// Namespace this invocation's attachments so concurrent or repeated
	// calls with identical file names cannot clobber each other.
	dec := Decoder{
		Dir:    filepath.Join(g.scratchDir, uuid.NewString()),
		Logger: g.logger,
	}
	saved := dec.Decode(req.Attachments)
	summary := SummarizeAttachments(saved)

	reply := g.callModel(ctx, buildPrompt(req.Brief, req.Checks, summary, round, req.PrevReadme))
	if reply == "" {
		reply = fallbackResponse(req.Brief, req.Checks, summary, round)
	}

	fallbackDocs := FallbackReadme(req.Brief, req.Checks, summary, round)
	extracted := ExtractArtifacts(reply, fallbackDocs)
	if strings.TrimSpace(extracted.Source) == "" {
		// A reply with no recoverable source at all: rebuild from the
		// fallback response through the same extraction path.
		extracted = ExtractArtifacts(fallbackResponse(req.Brief, req.Checks, summary, round), fallbackDocs)
	}

	return &Result{
		Files: map[string]string{
			"index.html": extracted.Source,
			"README.md":  extracted.Docs,
		},
		Attachments: saved,
	}
}

// callModel invokes the external generator once. Any failure, including a
// negative availability probe, yields the fallback response text.
func (g *Generator) callModel(ctx context.Context, prompt string) string {
	if chk, ok := g.model.(models.Checker); ok && !chk.IsAvailable(ctx) {
		g.logger.Printf("model unavailable, using fallback response")
		return ""
	}
	completion, err := g.model.Generate(ctx, prompt)
	if err != nil {
		g.logger.Printf("model call failed, using fallback response: %v", err)
		return ""
	}
	return models.ResponseText(completion)
}
