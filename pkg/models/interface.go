package models

import (
	"context"
	"fmt"
)

// Agent is the text-generation collaborator: one prompt in, one completion out.
// Implementations return their provider-native value; use ResponseText to
// flatten it to a string.
type Agent interface {
	Generate(context.Context, string) (any, error)
}

// Checker is an optional probe an Agent may implement to report whether its
// configured model can actually be called. Callers type-assert for it and
// treat a missing implementation as "assume available".
type Checker interface {
	IsAvailable(context.Context) bool
}

// ResponseText flattens a completion value to plain text.
func ResponseText(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
