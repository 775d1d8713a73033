package models

import (
	"context"
	"fmt"
	"strings"
)

// DummyLLM is a lightweight model implementation useful for local testing
// without API calls. It honors the two-fenced-block output protocol the
// generation pipeline expects, echoing the last non-empty prompt line.
type DummyLLM struct {
	Prefix string
}

func NewDummyLLM(prefix string) *DummyLLM {
	if strings.TrimSpace(prefix) == "" {
		prefix = "Dummy response:"
	}
	return &DummyLLM{Prefix: prefix}
}

func (d *DummyLLM) Generate(_ context.Context, prompt string) (any, error) {
	lines := strings.Split(prompt, "\n")
	var last string
	for i := len(lines) - 1; i >= 0; i-- {
		candidate := strings.TrimSpace(lines[i])
		if candidate != "" {
			last = candidate
			break
		}
	}
	if last == "" {
		last = "<empty prompt>"
	}
	echo := fmt.Sprintf("%s %s", d.Prefix, last)

	return fmt.Sprintf("```html\n<html>\n  <body>\n    <p>%s</p>\n  </body>\n</html>\n```\n```markdown\n# Dummy App\n\n%s\n```\n", echo, echo), nil
}

// IsAvailable always reports true; the dummy never needs a backend.
func (d *DummyLLM) IsAvailable(context.Context) bool { return true }

var _ Agent = (*DummyLLM)(nil)
var _ Checker = (*DummyLLM)(nil)
