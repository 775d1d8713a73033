// Package httpapi exposes the generation pipeline over HTTP. It serves the
// generator itself; the generated application is returned to the caller,
// never hosted here.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Protocol-Lattice/appforge/pkg/appgen"
)

const defaultRequestTimeout = 120 * time.Second

// Handler wires the appgen pipeline into a gin router.
type Handler struct {
	gen     *appgen.Generator
	timeout time.Duration
}

// NewHandler creates a Handler. A non-positive timeout falls back to the
// default per-request budget.
func NewHandler(gen *appgen.Generator, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &Handler{gen: gen, timeout: timeout}
}

// Router builds the HTTP routes.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/healthz", h.health)
	r.POST("/api/generate", h.generate)
	return r
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) generate(c *gin.Context) {
	var req appgen.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	// Generate never fails; model and parsing errors degrade to the
	// deterministic fallback artifacts inside the pipeline.
	c.JSON(http.StatusOK, h.gen.Generate(ctx, req))
}
