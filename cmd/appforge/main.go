// appforge — generate a small web app from a natural-language brief.
//
// Trailing CLI args are local files sent along as data-URI attachments.
//
// Examples:
//
//	export GOOGLE_API_KEY=...   # or GEMINI_API_KEY
//	go run ./cmd/appforge -brief "A pomodoro timer" notes.md
//
//	export OPENAI_API_KEY=...
//	go run ./cmd/appforge -provider openai -model gpt-4o-mini -brief "A quiz app" -checks "loads,mobile friendly"
//
//	go run ./cmd/appforge -provider dummy -brief "Offline smoke test" -out ./out
package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Protocol-Lattice/appforge/pkg/appgen"
	"github.com/Protocol-Lattice/appforge/pkg/models"
)

var (
	flagProvider   = flag.String("provider", "gemini", "LLM provider: openai|gemini|anthropic|ollama|dummy")
	flagModel      = flag.String("model", "gemini-2.5-flash", "Model ID for the selected provider")
	flagBrief      = flag.String("brief", "", "Natural-language brief for the app to generate")
	flagRound      = flag.Int("round", 1, "Generation round: 1 builds, 2 revises")
	flagPrevReadme = flag.String("prev-readme", "", "Path to the previous README.md (round 2)")
	flagChecks     = flag.String("checks", "", "Comma-separated evaluation checks")
	flagOut        = flag.String("out", "", "Directory to write index.html and README.md (optional)")
	flagScratch    = flag.String("scratch-dir", "", "Base directory for decoded attachments")
	flagTimeout    = flag.Duration("timeout", 120*time.Second, "Overall request timeout")
)

func main() {
	flag.Parse()

	if strings.TrimSpace(*flagBrief) == "" {
		fail(fmt.Errorf("a -brief is required"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *flagTimeout)
	defer cancel()

	model, err := models.NewLLMProvider(ctx, strings.ToLower(*flagProvider), *flagModel)
	if err != nil {
		fail(err)
	}
	model = models.TryCreateCachedLLM(model)

	gen, err := appgen.New(appgen.Options{
		Model:      model,
		ScratchDir: *flagScratch,
	})
	if err != nil {
		fail(err)
	}

	attachments, err := loadAttachments(flag.Args()...)
	if err != nil {
		fail(err)
	}

	prevReadme := ""
	if *flagPrevReadme != "" {
		data, err := os.ReadFile(*flagPrevReadme)
		if err != nil {
			fail(fmt.Errorf("read %s: %w", *flagPrevReadme, err))
		}
		prevReadme = string(data)
	}

	res := gen.Generate(ctx, appgen.Request{
		Brief:       *flagBrief,
		Attachments: attachments,
		Checks:      splitChecks(*flagChecks),
		Round:       *flagRound,
		PrevReadme:  prevReadme,
	})

	if *flagOut != "" {
		if err := writeFiles(*flagOut, res.Files); err != nil {
			fail(err)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		fail(err)
	}
}

// loadAttachments converts local paths into data-URI attachment inputs with
// best-effort MIME detection.
func loadAttachments(paths ...string) ([]appgen.AttachmentInput, error) {
	var out []appgen.AttachmentInput
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		m := mime.TypeByExtension(strings.ToLower(filepath.Ext(p)))
		if m == "" {
			peek := data
			if len(peek) > 512 {
				peek = peek[:512]
			}
			m = http.DetectContentType(peek)
		}
		if i := strings.IndexByte(m, ';'); i >= 0 {
			m = strings.TrimSpace(m[:i])
		}
		out = append(out, appgen.AttachmentInput{
			Name: filepath.Base(p),
			URL:  fmt.Sprintf("data:%s;base64,%s", m, base64.StdEncoding.EncodeToString(data)),
		})
	}
	return out, nil
}

func splitChecks(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	checks := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			checks = append(checks, t)
		}
	}
	return checks
}

func writeFiles(dir string, files map[string]string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return err
		}
	}
	return nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
