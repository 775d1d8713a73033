// appforge-server — HTTP front for the generation pipeline.
//
//	export GOOGLE_API_KEY=...
//	go run ./cmd/appforge-server -addr :8080
//
//	curl -s localhost:8080/api/generate -d '{"brief":"A pomodoro timer"}'
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/Protocol-Lattice/appforge/pkg/appgen"
	"github.com/Protocol-Lattice/appforge/pkg/httpapi"
	"github.com/Protocol-Lattice/appforge/pkg/models"
)

var (
	flagAddr     = flag.String("addr", ":8080", "Listen address")
	flagProvider = flag.String("provider", "gemini", "LLM provider: openai|gemini|anthropic|ollama|dummy")
	flagModel    = flag.String("model", "gemini-2.5-flash", "Model ID for the selected provider")
	flagScratch  = flag.String("scratch-dir", "", "Base directory for decoded attachments")
	flagTimeout  = flag.Duration("timeout", 120*time.Second, "Per-request generation timeout")
)

func main() {
	flag.Parse()

	logger := log.New(os.Stderr, "appforge-server: ", log.LstdFlags)

	model, err := models.NewLLMProvider(context.Background(), strings.ToLower(*flagProvider), *flagModel)
	if err != nil {
		fail(err)
	}
	model = models.TryCreateCachedLLM(model)

	gen, err := appgen.New(appgen.Options{
		Model:      model,
		ScratchDir: *flagScratch,
		Logger:     logger,
	})
	if err != nil {
		fail(err)
	}

	router := httpapi.NewHandler(gen, *flagTimeout).Router()

	logger.Printf("listening on %s (provider=%s model=%s)", *flagAddr, *flagProvider, *flagModel)
	if err := router.Run(*flagAddr); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
